package model

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// KeySize is the length in bytes of an owner public key and of a derived address.
const KeySize = 32

// OwnerIdentity is the base58 text form of a 32 byte owner public key.
type OwnerIdentity string

// NewOwnerIdentity encodes a raw public key.
func NewOwnerIdentity(key [KeySize]byte) OwnerIdentity {
	return OwnerIdentity(base58.Encode(key[:]))
}

// ParseOwnerIdentity validates the format of an owner identity.
// Authenticity is not checked here.
func ParseOwnerIdentity(s string) (OwnerIdentity, error) {
	o := OwnerIdentity(s)
	if _, err := o.Key(); err != nil {
		return "", err
	}
	return o, nil
}

// Key decodes the identity into its raw public key bytes.
func (o OwnerIdentity) Key() ([KeySize]byte, error) {
	var key [KeySize]byte
	if o == "" {
		return key, fmt.Errorf("%w: empty owner identity", ErrInvalidIdentity)
	}
	raw := base58.Decode(string(o))
	if len(raw) != KeySize {
		return key, fmt.Errorf("%w: %q does not decode to a %d byte key", ErrInvalidIdentity, string(o), KeySize)
	}
	if base58.Encode(raw) != string(o) {
		return key, fmt.Errorf("%w: %q is not canonical base58", ErrInvalidIdentity, string(o))
	}
	copy(key[:], raw)
	return key, nil
}

func (o OwnerIdentity) String() string {
	return string(o)
}
