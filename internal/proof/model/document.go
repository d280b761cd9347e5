package model

// ProofDocument is the portable artifact of a confirmed proof. It carries
// everything needed to re-derive the anchor address offline.
type ProofDocument struct {
	Owner           OwnerIdentity     `json:"owner_id"`
	ContentDigest   string            `json:"content_digest"`
	LineageID       string            `json:"lineage_id"`
	Title           string            `json:"title"`
	Version         uint32            `json:"version"`
	Timestamp       DocumentTimestamp `json:"timestamp"`
	AnchorAddress   string            `json:"anchor_address"`
	AnchorReference string            `json:"anchor_reference,omitempty"`
	Derivation      Derivation        `json:"derivation"`
}

// DocumentTimestamp holds the creation time in two textual forms derived
// from the same millisecond instant.
type DocumentTimestamp struct {
	Unix int64  `json:"unix"`
	ISO  string `json:"iso"`
}

// Derivation describes how the anchor address was derived.
type Derivation struct {
	Namespace string `json:"namespace"`
	ProgramID string `json:"program_id"`
	Bump      uint8  `json:"bump"`
}
