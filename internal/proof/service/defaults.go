package service

import "time"

const (
	// DefaultFixedFee is charged for every version after the first.
	DefaultFixedFee uint64 = 10
	// MaxTitleLength bounds proof titles, counted in runes after trimming.
	MaxTitleLength = 100

	proofIDPrefix = "proof_"

	defaultSweepInterval  = 30 * time.Second
	defaultPendingGrace   = 5 * time.Minute
	defaultSweepLimit     = 500
	defaultSweepWorkers   = 8
	defaultEventFlushSize = 500
	defaultEventInterval  = 5 * time.Second
)

const (
	anchorOutcomeAnchored = "anchored"
	anchorOutcomeExisting = "existing"
	anchorOutcomeFailed   = "failed"

	verifyOutcomeError = "error"
)
