// Package model defines domain models for proof-of-creation records.
package model

import (
	"encoding/hex"
	"fmt"
)

// DigestSize is the length in bytes of a content digest.
const DigestSize = 32

// Digest is the SHA-256 fingerprint of the exact content bytes.
type Digest [DigestSize]byte

// String returns the lowercase hex form of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether the digest was never set.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

// ParseDigest decodes a 64 character hex digest.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if len(s) != hex.EncodedLen(DigestSize) {
		return d, fmt.Errorf("%w: digest must be %d hex characters, got %d", ErrInvalidArgument, hex.EncodedLen(DigestSize), len(s))
	}
	if _, err := hex.Decode(d[:], []byte(s)); err != nil {
		return d, fmt.Errorf("%w: decode digest: %v", ErrInvalidArgument, err)
	}
	return d, nil
}
