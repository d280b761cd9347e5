package model

import "time"

// ProofStatus describes the anchoring state of a proof.
type ProofStatus string

var (
	// ProofPending marks a proof that has not been anchored yet.
	ProofPending ProofStatus = "PENDING"
	// ProofConfirmed marks a proof anchored at its derived address.
	ProofConfirmed ProofStatus = "CONFIRMED"
	// ProofFailed marks a proof whose last anchoring attempt failed.
	ProofFailed ProofStatus = "FAILED"
)

// Proof is a single versioned claim of creation within a lineage.
type Proof struct {
	ID        string
	LineageID string
	Owner     OwnerIdentity
	// SubstitutedFrom holds the rejected owner value when the substitute
	// identity policy replaced it.
	SubstitutedFrom string
	Title           string
	ContentDigest   Digest
	Version         uint32
	Status          ProofStatus
	IsPaid          bool
	Cost            uint64
	AnchorAddress   string
	AnchorBump      uint8
	AnchorReference string
	FailureReason   string
	Attempts        uint32
	// Revision increases on every write of the record.
	Revision  uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAnchored reports whether the proof is confirmed at a known address.
func (p Proof) IsAnchored() bool {
	return p.Status == ProofConfirmed && p.AnchorAddress != ""
}

// Summary returns the externally visible projection of the proof.
func (p Proof) Summary() Summary {
	return Summary{
		ID:              p.ID,
		LineageID:       p.LineageID,
		Owner:           p.Owner,
		Status:          p.Status,
		Version:         p.Version,
		IsPaid:          p.IsPaid,
		Cost:            p.Cost,
		ContentDigest:   p.ContentDigest.String(),
		AnchorAddress:   p.AnchorAddress,
		AnchorReference: p.AnchorReference,
		FailureReason:   p.FailureReason,
		CreatedAt:       p.CreatedAt,
	}
}

// Summary is the proof shape returned to the application layer.
type Summary struct {
	ID              string        `json:"id"`
	LineageID       string        `json:"lineage_id"`
	Owner           OwnerIdentity `json:"owner_id"`
	Status          ProofStatus   `json:"status"`
	Version         uint32        `json:"version"`
	IsPaid          bool          `json:"is_paid"`
	Cost            uint64        `json:"cost"`
	ContentDigest   string        `json:"content_digest"`
	AnchorAddress   string        `json:"anchor_address,omitempty"`
	AnchorReference string        `json:"anchor_reference,omitempty"`
	FailureReason   string        `json:"failure_reason,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

// Summaries projects a list of proofs preserving order.
func Summaries(proofs []Proof) []Summary {
	out := make([]Summary, 0, len(proofs))
	for _, p := range proofs {
		out = append(out, p.Summary())
	}
	return out
}
