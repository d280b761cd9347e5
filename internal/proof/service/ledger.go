// Package service implements the proof-of-creation ledger, verification and
// document export on top of pluggable storage and anchoring.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Matousse/Rebel-sub000/internal/clock"
	"github.com/Matousse/Rebel-sub000/internal/proof/address"
	"github.com/Matousse/Rebel-sub000/internal/proof/fingerprint"
	"github.com/Matousse/Rebel-sub000/internal/proof/model"
	"github.com/Matousse/Rebel-sub000/pkg/keylock"
)

// Policy holds the pricing and identity rules applied by the ledger.
type Policy struct {
	FixedFee uint64
	Identity IdentityPolicy
}

// Ledger owns proof records and their PENDING -> CONFIRMED/FAILED lifecycle.
type Ledger struct {
	repo     ProofRepository
	gateway  AnchorGateway
	deriver  *address.Deriver
	payments PaymentGate
	identity IdentityPolicy
	events   EventPublisher
	metrics  LedgerMetrics
	clock    clock.Clock
	newID    func() string
	logger   *zap.Logger

	lineageLocks *keylock.Locker
	proofLocks   *keylock.Locker
}

// NewLedger wires a Ledger. events and clk are optional.
func NewLedger(
	repo ProofRepository,
	gateway AnchorGateway,
	deriver *address.Deriver,
	policy Policy,
	events EventPublisher,
	metrics LedgerMetrics,
	clk clock.Clock,
	logger *zap.Logger,
) (*Ledger, error) {
	if repo == nil {
		return nil, errors.New("proof repository is required")
	}
	if gateway == nil {
		return nil, errors.New("anchor gateway is required")
	}
	if deriver == nil {
		return nil, errors.New("address deriver is required")
	}
	if metrics == nil {
		return nil, errors.New("ledger metrics are required")
	}
	if events == nil {
		events = NopPublisher{}
	}
	if clk == nil {
		clk = clock.System{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	identity := policy.Identity
	if identity.mode == "" {
		identity, _ = NewIdentityPolicy(IdentityReject, logger)
	}

	return &Ledger{
		repo:         repo,
		gateway:      gateway,
		deriver:      deriver,
		payments:     NewPaymentGate(policy.FixedFee),
		identity:     identity,
		events:       events,
		metrics:      metrics,
		clock:        clk,
		newID:        func() string { return proofIDPrefix + uuid.NewString() },
		logger:       logger.Named("ledger"),
		lineageLocks: keylock.New(),
		proofLocks:   keylock.New(),
	}, nil
}

// CreateProof records a new version of lineageID for content. Version 1 is
// free and anchored immediately; later versions wait for PayForProof.
// Anchoring failures are reported through the returned proof status.
func (l *Ledger) CreateProof(ctx context.Context, lineageID, ownerID, title string, content []byte) (proof model.Proof, err error) {
	started := time.Now()
	defer func() {
		l.metrics.ObserveOperation("create_proof", err, started)
	}()

	lineageID, title, err = normalizeInput(lineageID, title)
	if err != nil {
		return model.Proof{}, err
	}
	return l.create(ctx, lineageID, ownerID, title, fingerprint.Sum(content))
}

// CreateProofFromReader is CreateProof for streamed content. A read failure
// is returned as model.ErrContentUnreadable and no proof is recorded.
func (l *Ledger) CreateProofFromReader(ctx context.Context, lineageID, ownerID, title string, r io.Reader) (proof model.Proof, err error) {
	started := time.Now()
	defer func() {
		l.metrics.ObserveOperation("create_proof", err, started)
	}()

	lineageID, title, err = normalizeInput(lineageID, title)
	if err != nil {
		return model.Proof{}, err
	}
	digest, err := fingerprint.FromReader(r)
	if err != nil {
		return model.Proof{}, err
	}
	return l.create(ctx, lineageID, ownerID, title, digest)
}

func (l *Ledger) create(ctx context.Context, lineageID, ownerID, title string, digest model.Digest) (model.Proof, error) {
	owner, substitutedFrom, err := l.identity.Resolve(ownerID)
	if err != nil {
		return model.Proof{}, err
	}
	if _, err := l.deriver.Derive(owner, digest); err != nil {
		return model.Proof{}, fmt.Errorf("derive address: %w", err)
	}

	proof, err := l.reserveVersion(ctx, lineageID, owner, substitutedFrom, title, digest)
	if err != nil {
		return model.Proof{}, err
	}
	l.logger.Info("proof created",
		zap.String("proof_id", proof.ID),
		zap.String("lineage_id", proof.LineageID),
		zap.Uint32("version", proof.Version),
		zap.Bool("is_paid", proof.IsPaid),
	)
	l.events.Publish(ctx, model.NewProofEvent(proof, model.EventCreated, proof.CreatedAt))

	if !l.payments.CanAnchor(proof) {
		return proof, nil
	}
	return l.attemptAnchor(ctx, proof.ID)
}

// reserveVersion assigns the next version of a lineage and persists the
// proof in PENDING while holding the lineage lock.
func (l *Ledger) reserveVersion(
	ctx context.Context,
	lineageID string,
	owner model.OwnerIdentity,
	substitutedFrom, title string,
	digest model.Digest,
) (model.Proof, error) {
	unlock := l.lineageLocks.Lock(lineageID)
	defer unlock()

	count, err := l.repo.CountByLineage(ctx, lineageID)
	if err != nil {
		return model.Proof{}, fmt.Errorf("count lineage %s: %w", lineageID, err)
	}
	version := count + 1
	isPaid, cost := l.payments.Terms(version)
	now := l.clock.Now()

	proof := model.Proof{
		ID:              l.newID(),
		LineageID:       lineageID,
		Owner:           owner,
		SubstitutedFrom: substitutedFrom,
		Title:           title,
		ContentDigest:   digest,
		Version:         version,
		Status:          model.ProofPending,
		IsPaid:          isPaid,
		Cost:            cost,
		Revision:        1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := l.repo.PutProof(ctx, proof); err != nil {
		return model.Proof{}, fmt.Errorf("store proof: %w", err)
	}
	return proof, nil
}

// PayForProof marks an unpaid proof as paid and anchors it. Paying for an
// already paid proof returns it unchanged.
func (l *Ledger) PayForProof(ctx context.Context, proofID string) (proof model.Proof, err error) {
	started := time.Now()
	defer func() {
		l.metrics.ObserveOperation("pay_for_proof", err, started)
	}()

	proof, changed, err := l.markPaid(ctx, proofID)
	if err != nil || !changed {
		return proof, err
	}
	l.events.Publish(ctx, model.NewProofEvent(proof, model.EventPaid, proof.UpdatedAt))
	return l.attemptAnchor(ctx, proofID)
}

func (l *Ledger) markPaid(ctx context.Context, proofID string) (model.Proof, bool, error) {
	unlock := l.proofLocks.Lock(proofID)
	defer unlock()

	proof, err := l.load(ctx, proofID)
	if err != nil {
		return model.Proof{}, false, err
	}
	if proof.IsPaid {
		return proof, false, nil
	}

	proof.IsPaid = true
	proof.Revision++
	proof.UpdatedAt = l.clock.Now()
	if err := l.repo.PutProof(ctx, proof); err != nil {
		return model.Proof{}, false, fmt.Errorf("store proof: %w", err)
	}
	return proof, true, nil
}

// Reanchor retries anchoring of a paid proof that is PENDING or FAILED.
// A confirmed proof is returned unchanged.
func (l *Ledger) Reanchor(ctx context.Context, proofID string) (proof model.Proof, err error) {
	started := time.Now()
	defer func() {
		l.metrics.ObserveOperation("reanchor", err, started)
	}()

	proof, err = l.load(ctx, proofID)
	if err != nil {
		return model.Proof{}, err
	}
	if proof.Status == model.ProofConfirmed {
		return proof, nil
	}
	if !l.payments.CanAnchor(proof) {
		return proof, fmt.Errorf("proof %s: %w", proofID, model.ErrPaymentRequired)
	}
	return l.attemptAnchor(ctx, proofID)
}

// attemptAnchor runs one anchoring attempt for a proof. The attempt is
// detached from caller cancellation and serialized per proof.
func (l *Ledger) attemptAnchor(ctx context.Context, proofID string) (model.Proof, error) {
	ctx = context.WithoutCancel(ctx)
	started := time.Now()

	unlock := l.proofLocks.Lock(proofID)
	defer unlock()

	proof, err := l.load(ctx, proofID)
	if err != nil {
		return model.Proof{}, err
	}
	if proof.Status == model.ProofConfirmed {
		return proof, nil
	}
	if !l.payments.CanAnchor(proof) {
		return proof, fmt.Errorf("proof %s: %w", proofID, model.ErrPaymentRequired)
	}

	target, err := l.deriver.Derive(proof.Owner, proof.ContentDigest)
	if err != nil {
		return model.Proof{}, fmt.Errorf("derive address: %w", err)
	}

	proof.Attempts++
	outcome, reference, anchorErr := l.anchor(ctx, proof)
	if anchorErr != nil {
		proof.Status = model.ProofFailed
		proof.FailureReason = anchorErr.Error()
		l.logger.Warn("anchoring failed",
			zap.String("proof_id", proof.ID),
			zap.Uint32("attempts", proof.Attempts),
			zap.Error(anchorErr),
		)
	} else {
		proof.Status = model.ProofConfirmed
		proof.AnchorAddress = target.String()
		proof.AnchorBump = target.Bump
		proof.AnchorReference = reference
		proof.FailureReason = ""
	}
	proof.Revision++
	proof.UpdatedAt = l.clock.Now()

	if err := l.repo.PutProof(ctx, proof); err != nil {
		l.metrics.ObserveAnchor(anchorOutcomeFailed, started)
		return model.Proof{}, fmt.Errorf("store proof: %w", err)
	}
	l.metrics.ObserveAnchor(outcome, started)

	kind := model.EventConfirmed
	if proof.Status == model.ProofFailed {
		kind = model.EventFailed
	}
	l.events.Publish(ctx, model.NewProofEvent(proof, kind, proof.UpdatedAt))
	return proof, nil
}

// anchor registers the proof binding unless its address already exists.
func (l *Ledger) anchor(ctx context.Context, proof model.Proof) (outcome, reference string, err error) {
	existing, exists, err := l.gateway.AddressExists(ctx, proof.Owner, proof.ContentDigest)
	if err != nil {
		return anchorOutcomeFailed, "", fmt.Errorf("check address: %w", err)
	}
	if exists {
		return anchorOutcomeExisting, existing.Reference, nil
	}

	receipt, err := l.gateway.Anchor(ctx, proof.Owner, proof.ContentDigest)
	switch {
	case errors.Is(err, model.ErrAlreadyAnchored):
		return anchorOutcomeExisting, receipt.Reference, nil
	case err != nil:
		return anchorOutcomeFailed, "", fmt.Errorf("anchor: %w", err)
	default:
		return anchorOutcomeAnchored, receipt.Reference, nil
	}
}

// GetProof returns the proof stored under proofID.
func (l *Ledger) GetProof(ctx context.Context, proofID string) (proof model.Proof, found bool, err error) {
	started := time.Now()
	defer func() {
		l.metrics.ObserveOperation("get_proof", err, started)
	}()

	proof, found, err = l.repo.ProofByID(ctx, proofID)
	if err != nil {
		return model.Proof{}, false, fmt.Errorf("load proof %s: %w", proofID, err)
	}
	return proof, found, nil
}

// ListByLineage returns the proofs of a lineage by ascending version.
func (l *Ledger) ListByLineage(ctx context.Context, lineageID string) (proofs []model.Proof, err error) {
	started := time.Now()
	defer func() {
		l.metrics.ObserveOperation("list_by_lineage", err, started)
	}()

	proofs, err = l.repo.ProofsByLineage(ctx, lineageKey(lineageID))
	if err != nil {
		return nil, fmt.Errorf("list lineage %s: %w", lineageID, err)
	}
	return proofs, nil
}

// ListByOwner returns the proofs of an owner, newest first.
func (l *Ledger) ListByOwner(ctx context.Context, ownerID string) (proofs []model.Proof, err error) {
	started := time.Now()
	defer func() {
		l.metrics.ObserveOperation("list_by_owner", err, started)
	}()

	proofs, err = l.repo.ProofsByOwner(ctx, model.OwnerIdentity(strings.TrimSpace(ownerID)))
	if err != nil {
		return nil, fmt.Errorf("list owner %s: %w", ownerID, err)
	}
	return proofs, nil
}

func (l *Ledger) load(ctx context.Context, proofID string) (model.Proof, error) {
	proof, found, err := l.repo.ProofByID(ctx, proofID)
	if err != nil {
		return model.Proof{}, fmt.Errorf("load proof %s: %w", proofID, err)
	}
	if !found {
		return model.Proof{}, fmt.Errorf("proof %s: %w", proofID, model.ErrNotFound)
	}
	return proof, nil
}

// lineageKey is the form under which a lineage id is stored and looked up.
func lineageKey(lineageID string) string {
	return strings.TrimSpace(lineageID)
}

func normalizeInput(lineageID, title string) (string, string, error) {
	lineageID = lineageKey(lineageID)
	title = strings.TrimSpace(title)
	if lineageID == "" {
		return "", "", fmt.Errorf("lineage id is empty: %w", model.ErrInvalidArgument)
	}
	if title == "" {
		return "", "", fmt.Errorf("title is empty: %w", model.ErrInvalidArgument)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return "", "", fmt.Errorf("title longer than %d characters: %w", MaxTitleLength, model.ErrInvalidArgument)
	}
	return lineageID, title, nil
}
