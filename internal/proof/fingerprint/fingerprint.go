// Package fingerprint computes content digests over exact file bytes.
package fingerprint

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Sum returns the SHA-256 digest of the whole content.
func Sum(content []byte) model.Digest {
	return model.Digest(chainhash.HashH(content))
}

// FromReader hashes everything r yields. Read failures are reported as
// model.ErrContentUnreadable since no digest can be produced.
func FromReader(r io.Reader) (model.Digest, error) {
	var d model.Digest
	if r == nil {
		return d, fmt.Errorf("%w: nil reader", model.ErrContentUnreadable)
	}
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return d, fmt.Errorf("%w: %v", model.ErrContentUnreadable, err)
	}
	copy(d[:], h.Sum(nil))
	return d, nil
}

// Matches reports whether content hashes to want.
func Matches(content []byte, want model.Digest) bool {
	return Sum(content) == want
}
