package model

import "time"

const (
	DetailsNoProof           = "no proof for lineage"
	DetailsHashMismatch      = "content hash mismatch"
	DetailsChainVerified     = "content matches, proof verified on chain"
	DetailsChainUnverifiable = "content matches, proof not verifiable on chain"
	DetailsLocalOnly         = "content matches, proof verified locally only"

	// DetailsDocumentVerified is reported by offline document checks.
	DetailsDocumentVerified = "content matches, document address re-derived"
	// DetailsDocumentMismatch is reported when a document address does not re-derive.
	DetailsDocumentMismatch = "content matches, document address does not re-derive"
)

// VerificationResult is the verdict of re-checking content against the
// latest proof of a lineage.
type VerificationResult struct {
	IsValid           bool       `json:"is_valid"`
	OnChain           bool       `json:"on_chain"`
	ChainVerified     bool       `json:"chain_verified"`
	ProofID           string     `json:"proof_id,omitempty"`
	Version           uint32     `json:"version,omitempty"`
	OriginalTimestamp *time.Time `json:"original_timestamp,omitempty"`
	Address           string     `json:"address,omitempty"`
	Details           string     `json:"details"`
}
