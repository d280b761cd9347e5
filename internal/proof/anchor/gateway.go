// Package anchor records (owner, digest) bindings at their derived
// addresses in a write-once store.
package anchor

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Matousse/Rebel-sub000/internal/clock"
	"github.com/Matousse/Rebel-sub000/internal/proof/address"
	"github.com/Matousse/Rebel-sub000/internal/proof/model"
	"github.com/Matousse/Rebel-sub000/pkg/keylock"
)

// Gateway anchors proofs in a Store, witnessed by a Notary.
type Gateway struct {
	deriver *address.Deriver
	store   Store
	notary  Notary
	clock   clock.Clock
	locks   *keylock.Locker
	logger  *zap.Logger
}

// NewGateway wires a Gateway. A nil notary falls back to LocalNotary.
func NewGateway(deriver *address.Deriver, store Store, notary Notary, clk clock.Clock, logger *zap.Logger) (*Gateway, error) {
	if deriver == nil {
		return nil, errors.New("deriver is required")
	}
	if store == nil {
		return nil, errors.New("anchor store is required")
	}
	if clk == nil {
		clk = clock.System{}
	}
	if notary == nil {
		notary = NewLocalNotary(clk)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		deriver: deriver,
		store:   store,
		notary:  notary,
		clock:   clk,
		locks:   keylock.New(),
		logger:  logger.Named("anchor_gateway"),
	}, nil
}

// Anchor records the binding of owner and digest at its derived address.
// When the address is already anchored it returns the existing receipt
// together with model.ErrAlreadyAnchored.
func (g *Gateway) Anchor(ctx context.Context, owner model.OwnerIdentity, digest model.Digest) (model.AnchorReceipt, error) {
	addr, err := g.deriver.Derive(owner, digest)
	if err != nil {
		return model.AnchorReceipt{}, fmt.Errorf("derive address: %w", err)
	}
	key := addr.String()

	unlock := g.locks.Lock(key)
	defer unlock()

	existing, ok, err := g.store.AnchorByAddress(ctx, key)
	if err != nil {
		return model.AnchorReceipt{}, fmt.Errorf("lookup anchor %s: %w", key, err)
	}
	if ok {
		return model.AnchorReceipt{
			Address:    addr,
			Reference:  existing.Reference,
			AnchoredAt: existing.AnchoredAt,
		}, fmt.Errorf("address %s: %w", key, model.ErrAlreadyAnchored)
	}

	reference, err := g.notary.Notarize(ctx, Payload(addr))
	if err != nil {
		return model.AnchorReceipt{}, fmt.Errorf("notarize %s: %w", key, err)
	}

	record := model.AnchorRecord{
		Address:       key,
		Bump:          addr.Bump,
		Owner:         owner,
		ContentDigest: digest,
		Reference:     reference,
		AnchoredAt:    g.clock.Now(),
	}
	if err := g.store.InsertAnchor(ctx, record); err != nil {
		return model.AnchorReceipt{}, fmt.Errorf("insert anchor %s: %w", key, err)
	}

	g.logger.Info("proof anchored",
		zap.String("address", key),
		zap.String("reference", reference),
		zap.String("owner", owner.String()),
	)
	return model.AnchorReceipt{
		Address:    addr,
		Reference:  reference,
		AnchoredAt: record.AnchoredAt,
	}, nil
}

// AddressExists reports whether the derived address of (owner, digest) is
// already anchored, returning the stored record when it is.
func (g *Gateway) AddressExists(ctx context.Context, owner model.OwnerIdentity, digest model.Digest) (model.AnchorRecord, bool, error) {
	addr, err := g.deriver.Derive(owner, digest)
	if err != nil {
		return model.AnchorRecord{}, false, fmt.Errorf("derive address: %w", err)
	}
	record, ok, err := g.store.AnchorByAddress(ctx, addr.String())
	if err != nil {
		return model.AnchorRecord{}, false, fmt.Errorf("lookup anchor %s: %w", addr, err)
	}
	return record, ok, nil
}

// ConfirmPresence reports whether address holds an anchor whose record
// re-derives to the same address and whose notary reference checks out.
func (g *Gateway) ConfirmPresence(ctx context.Context, address string) (bool, error) {
	record, ok, err := g.store.AnchorByAddress(ctx, address)
	if err != nil {
		return false, fmt.Errorf("lookup anchor %s: %w", address, err)
	}
	if !ok {
		return false, nil
	}

	addr, err := g.deriver.Derive(record.Owner, record.ContentDigest)
	if err != nil {
		return false, fmt.Errorf("derive address: %w", err)
	}
	if addr.String() != address {
		g.logger.Warn("anchor record does not re-derive to its address",
			zap.String("address", address),
			zap.String("derived", addr.String()),
		)
		return false, nil
	}
	if record.Reference == "" {
		return true, nil
	}

	confirmed, err := g.notary.Confirm(ctx, record.Reference, Payload(addr))
	if err != nil {
		return false, fmt.Errorf("confirm reference %s: %w", record.Reference, err)
	}
	return confirmed, nil
}
