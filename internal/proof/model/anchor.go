package model

import "time"

// AnchorReceipt is returned by a gateway after a successful anchoring.
type AnchorReceipt struct {
	Address    Address
	Reference  string
	AnchoredAt time.Time
}

// AnchorRecord is a single write-once entry of the anchor ledger.
type AnchorRecord struct {
	Address       string
	Bump          uint8
	Owner         OwnerIdentity
	ContentDigest Digest
	Reference     string
	AnchoredAt    time.Time
}
