package model

import "time"

// ProofEventKind names a lifecycle transition.
type ProofEventKind string

var (
	EventCreated   ProofEventKind = "created"
	EventPaid      ProofEventKind = "paid"
	EventConfirmed ProofEventKind = "confirmed"
	EventFailed    ProofEventKind = "failed"
)

// ProofEvent is an append-only audit entry for a proof transition.
type ProofEvent struct {
	ProofID    string
	LineageID  string
	Owner      OwnerIdentity
	Kind       ProofEventKind
	Status     ProofStatus
	Version    uint32
	Reason     string
	OccurredAt time.Time
}

// NewProofEvent captures the current state of p as an event of the given kind.
func NewProofEvent(p Proof, kind ProofEventKind, at time.Time) ProofEvent {
	return ProofEvent{
		ProofID:    p.ID,
		LineageID:  p.LineageID,
		Owner:      p.Owner,
		Kind:       kind,
		Status:     p.Status,
		Version:    p.Version,
		Reason:     p.FailureReason,
		OccurredAt: at,
	}
}
