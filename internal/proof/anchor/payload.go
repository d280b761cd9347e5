package anchor

import "github.com/Matousse/Rebel-sub000/internal/proof/model"

// PayloadMagic prefixes every notarized payload.
const PayloadMagic = "POC1"

// Payload returns the bytes notarized for an address.
func Payload(address model.Address) []byte {
	out := make([]byte, 0, len(PayloadMagic)+model.KeySize)
	out = append(out, PayloadMagic...)
	return append(out, address.Key[:]...)
}
