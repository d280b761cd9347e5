package anchor

import (
	"context"
	"errors"
	"time"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

// Observed decorates an Anchorer with per-operation metrics.
type Observed struct {
	next    Anchorer
	metrics Metrics
}

// NewObserved wraps next with metrics.
func NewObserved(next Anchorer, metrics Metrics) *Observed {
	return &Observed{next: next, metrics: metrics}
}

// Anchor delegates to the wrapped gateway. A duplicate anchor is counted
// as success.
func (o *Observed) Anchor(ctx context.Context, owner model.OwnerIdentity, digest model.Digest) (receipt model.AnchorReceipt, err error) {
	started := time.Now()
	defer func() {
		observed := err
		if errors.Is(err, model.ErrAlreadyAnchored) {
			observed = nil
		}
		o.metrics.Observe("anchor", observed, started)
	}()
	return o.next.Anchor(ctx, owner, digest)
}

// AddressExists delegates to the wrapped gateway.
func (o *Observed) AddressExists(ctx context.Context, owner model.OwnerIdentity, digest model.Digest) (record model.AnchorRecord, exists bool, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("address_exists", err, started)
	}()
	return o.next.AddressExists(ctx, owner, digest)
}

// ConfirmPresence delegates to the wrapped gateway.
func (o *Observed) ConfirmPresence(ctx context.Context, address string) (confirmed bool, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("confirm_presence", err, started)
	}()
	return o.next.ConfirmPresence(ctx, address)
}
