package anchor

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/Matousse/Rebel-sub000/internal/clock"
	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

const localStampSize = 8

// LocalNotary references payloads by a hash of the payload and the
// notarization time. It has no external witness: the reference carries its
// own timestamp so Confirm can recompute it from the payload.
type LocalNotary struct {
	clock clock.Clock
}

// NewLocalNotary constructs a LocalNotary using clk for timestamps.
func NewLocalNotary(clk clock.Clock) *LocalNotary {
	if clk == nil {
		clk = clock.System{}
	}
	return &LocalNotary{clock: clk}
}

// Notarize returns base58(unix nanos || SHA-256(payload || unix nanos)).
func (n *LocalNotary) Notarize(_ context.Context, payload []byte) (string, error) {
	if len(payload) == 0 {
		return "", errors.New("empty payload")
	}
	var ts [localStampSize]byte
	binary.BigEndian.PutUint64(ts[:], uint64(n.clock.Now().UnixNano()))
	return base58.Encode(localReference(ts[:], payload)), nil
}

// Confirm reports whether reference was produced by Notarize for payload.
// Malformed references are not confirmed.
func (n *LocalNotary) Confirm(_ context.Context, reference string, payload []byte) (bool, error) {
	if len(payload) == 0 {
		return false, fmt.Errorf("empty payload: %w", model.ErrInvalidArgument)
	}
	raw := base58.Decode(reference)
	if len(raw) != localStampSize+sha256.Size {
		return false, nil
	}
	return bytes.Equal(raw, localReference(raw[:localStampSize], payload)), nil
}

func localReference(stamp, payload []byte) []byte {
	h := sha256.New()
	h.Write(payload)
	h.Write(stamp)
	return h.Sum(append([]byte(nil), stamp...))
}
