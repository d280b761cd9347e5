package service

import (
	"context"
	"time"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ProofRepository interface {
		ProofByID(ctx context.Context, id string) (model.Proof, bool, error)
		PutProof(ctx context.Context, proof model.Proof) error
		ProofsByLineage(ctx context.Context, lineageID string) ([]model.Proof, error)
		ProofsByOwner(ctx context.Context, owner model.OwnerIdentity) ([]model.Proof, error)
		CountByLineage(ctx context.Context, lineageID string) (uint32, error)
		RetryableProofs(ctx context.Context, pendingBefore time.Time, limit int) ([]model.Proof, error)
	}
	AnchorGateway interface {
		Anchor(ctx context.Context, owner model.OwnerIdentity, digest model.Digest) (model.AnchorReceipt, error)
		AddressExists(ctx context.Context, owner model.OwnerIdentity, digest model.Digest) (model.AnchorRecord, bool, error)
		ConfirmPresence(ctx context.Context, address string) (bool, error)
	}
	EventRepository interface {
		InsertEvents(ctx context.Context, events []model.ProofEvent) error
	}
	// EventPublisher receives proof lifecycle events. Publishing never fails
	// the operation that produced the event.
	EventPublisher interface {
		Publish(ctx context.Context, event model.ProofEvent)
	}
	Reanchorer interface {
		Reanchor(ctx context.Context, proofID string) (model.Proof, error)
	}

	LedgerMetrics interface {
		ObserveOperation(operation string, err error, started time.Time)
		ObserveAnchor(outcome string, started time.Time)
	}
	VerifierMetrics interface {
		ObserveVerify(outcome string, started time.Time)
	}
	SweeperMetrics interface {
		ObserveFetch(err error, proofs int, started time.Time)
		ObserveReanchor(result string, started time.Time)
	}
	EventWriterMetrics interface {
		ObserveEnqueue(err error)
		ObserveFlush(err error, size int, started time.Time)
	}
)
