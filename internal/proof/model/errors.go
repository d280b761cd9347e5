package model

import "errors"

var (
	// ErrInvalidIdentity is returned for malformed owner identities.
	ErrInvalidIdentity = errors.New("invalid owner identity")
	// ErrNotFound is returned when a proof or lineage is unknown.
	ErrNotFound = errors.New("not found")
	// ErrContentUnreadable is returned when content bytes cannot be read.
	ErrContentUnreadable = errors.New("content unreadable")
	// ErrPaymentRequired is returned when anchoring is requested for an unpaid proof.
	ErrPaymentRequired = errors.New("payment required")
	// ErrAlreadyAnchored is returned by an anchor gateway for a duplicate (owner, digest) pair.
	ErrAlreadyAnchored = errors.New("already anchored")
	// ErrInvalidArgument is returned for malformed caller input.
	ErrInvalidArgument = errors.New("invalid argument")
)
