// Package address derives deterministic proof addresses from an owner key
// and a content digest.
//
// The derivation matches the program-derived address scheme used by the
// on-chain proof program: the seeds are a fixed namespace, the owner key and
// the digest; the first bump from 255 downwards whose hash falls off the
// ed25519 curve wins.
package address

import (
	"errors"
	"fmt"

	"filippo.io/edwards25519"
	"github.com/Matousse/Rebel-sub000/internal/proof/model"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// Namespace is the constant seed that domain-separates proof addresses.
	Namespace = "proof-of-creation"
	// DefaultProgramID is the id of the deployed proof program.
	DefaultProgramID = "8Hh439HNMKGRTD1gmnifrJ2RrP6y8PsKwHRRQyponubt"

	pdaMarker = "ProgramDerivedAddress"
)

// ErrNoViableBump is returned when every bump lands on the curve.
var ErrNoViableBump = errors.New("no viable bump seed")

// Deriver maps (owner, digest) pairs to proof addresses.
type Deriver struct {
	programID [model.KeySize]byte
}

// NewDeriver creates a deriver bound to programID.
func NewDeriver(programID [model.KeySize]byte) *Deriver {
	return &Deriver{programID: programID}
}

// ParseProgramID decodes a base58 program id.
func ParseProgramID(s string) ([model.KeySize]byte, error) {
	var id [model.KeySize]byte
	raw := base58.Decode(s)
	if len(raw) != model.KeySize {
		return id, fmt.Errorf("%w: program id %q does not decode to %d bytes", model.ErrInvalidArgument, s, model.KeySize)
	}
	copy(id[:], raw)
	return id, nil
}

// ProgramID returns the base58 form of the program id.
func (d *Deriver) ProgramID() string {
	return base58.Encode(d.programID[:])
}

// Derive returns the address for (owner, digest). Malformed owners fail
// with model.ErrInvalidIdentity.
func (d *Deriver) Derive(owner model.OwnerIdentity, digest model.Digest) (model.Address, error) {
	key, err := owner.Key()
	if err != nil {
		return model.Address{}, err
	}
	return d.derive(key, digest)
}

func (d *Deriver) derive(owner [model.KeySize]byte, digest model.Digest) (model.Address, error) {
	buf := make([]byte, 0, len(Namespace)+2*model.KeySize+model.DigestSize+1+len(pdaMarker))
	buf = append(buf, Namespace...)
	buf = append(buf, owner[:]...)
	buf = append(buf, digest[:]...)
	bumpAt := len(buf)
	buf = append(buf, 0)
	buf = append(buf, d.programID[:]...)
	buf = append(buf, pdaMarker...)

	for bump := 255; bump >= 0; bump-- {
		buf[bumpAt] = byte(bump)
		candidate := chainhash.HashH(buf)
		if !onCurve(candidate[:]) {
			return model.Address{Key: candidate, Bump: uint8(bump)}, nil
		}
	}
	return model.Address{}, ErrNoViableBump
}

// Verify reports whether address is the one derived for (owner, digest).
func (d *Deriver) Verify(owner model.OwnerIdentity, digest model.Digest, address string) (bool, error) {
	derived, err := d.Derive(owner, digest)
	if err != nil {
		return false, err
	}
	return derived.String() == address, nil
}

func onCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return err == nil
}
