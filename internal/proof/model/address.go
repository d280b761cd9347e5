package model

import "github.com/btcsuite/btcd/btcutil/base58"

// Address is a program-derived proof address together with the bump seed
// that produced it.
type Address struct {
	Key  [KeySize]byte
	Bump uint8
}

// String returns the base58 text form of the address.
func (a Address) String() string {
	return base58.Encode(a.Key[:])
}
