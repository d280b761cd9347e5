//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
package anchor

import (
	"context"
	"time"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

type (
	// Store is a write-once ledger of anchor records keyed by address.
	Store interface {
		AnchorByAddress(ctx context.Context, address string) (model.AnchorRecord, bool, error)
		InsertAnchor(ctx context.Context, record model.AnchorRecord) error
	}

	// Notary timestamps anchor payloads with an external witness and
	// returns a reference that can be checked later.
	Notary interface {
		Notarize(ctx context.Context, payload []byte) (string, error)
		Confirm(ctx context.Context, reference string, payload []byte) (bool, error)
	}

	// Anchorer is the gateway contract consumed by the proof ledger.
	Anchorer interface {
		Anchor(ctx context.Context, owner model.OwnerIdentity, digest model.Digest) (model.AnchorReceipt, error)
		AddressExists(ctx context.Context, owner model.OwnerIdentity, digest model.Digest) (model.AnchorRecord, bool, error)
		ConfirmPresence(ctx context.Context, address string) (bool, error)
	}

	// Metrics records gateway call outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
