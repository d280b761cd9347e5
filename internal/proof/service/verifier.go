package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Matousse/Rebel-sub000/internal/proof/address"
	"github.com/Matousse/Rebel-sub000/internal/proof/fingerprint"
	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

const (
	verifyOutcomeNoProof           = "no_proof"
	verifyOutcomeMismatch          = "mismatch"
	verifyOutcomeChainVerified     = "chain_verified"
	verifyOutcomeChainUnverifiable = "chain_unverifiable"
	verifyOutcomeLocalOnly         = "local_only"
)

// Verifier checks content against the latest proof of a lineage.
type Verifier struct {
	repo    ProofRepository
	gateway AnchorGateway
	deriver *address.Deriver
	metrics VerifierMetrics
	logger  *zap.Logger
}

// NewVerifier wires a Verifier.
func NewVerifier(repo ProofRepository, gateway AnchorGateway, deriver *address.Deriver, metrics VerifierMetrics, logger *zap.Logger) (*Verifier, error) {
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
		return nil, errors.New("verifier metrics are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Verifier{
		repo:    repo,
		gateway: gateway,
		deriver: deriver,
		metrics: metrics,
		logger:  logger.Named("verifier"),
	}, nil
}

// Verify re-fingerprints content and compares it with the latest version of
// lineageID. Confirmed proofs are additionally checked at their anchor.
func (v *Verifier) Verify(ctx context.Context, lineageID string, content []byte) (model.VerificationResult, error) {
	started := time.Now()

	lineageID = lineageKey(lineageID)
	proofs, err := v.repo.ProofsByLineage(ctx, lineageID)
	if err != nil {
		v.metrics.ObserveVerify(verifyOutcomeError, started)
		return model.VerificationResult{}, fmt.Errorf("list lineage %s: %w", lineageID, err)
	}
	if len(proofs) == 0 {
		v.metrics.ObserveVerify(verifyOutcomeNoProof, started)
		return model.VerificationResult{Details: model.DetailsNoProof}, nil
	}

	latest := latestVersion(proofs)
	createdAt := latest.CreatedAt
	result := model.VerificationResult{
		ProofID:           latest.ID,
		Version:           latest.Version,
		OriginalTimestamp: &createdAt,
		Address:           latest.AnchorAddress,
	}

	if !fingerprint.Matches(content, latest.ContentDigest) {
		result.Details = model.DetailsHashMismatch
		v.metrics.ObserveVerify(verifyOutcomeMismatch, started)
		return result, nil
	}

	result.OnChain = latest.IsAnchored()
	if !result.OnChain {
		result.IsValid = true
		result.Details = model.DetailsLocalOnly
		v.metrics.ObserveVerify(verifyOutcomeLocalOnly, started)
		return result, nil
	}

	result.ChainVerified = v.confirmOnChain(ctx, latest)
	result.IsValid = result.ChainVerified
	if result.ChainVerified {
		result.Details = model.DetailsChainVerified
		v.metrics.ObserveVerify(verifyOutcomeChainVerified, started)
	} else {
		result.Details = model.DetailsChainUnverifiable
		v.metrics.ObserveVerify(verifyOutcomeChainUnverifiable, started)
	}
	return result, nil
}

// confirmOnChain requires both a re-derivable address and a present anchor.
// Gateway errors count as unverifiable.
func (v *Verifier) confirmOnChain(ctx context.Context, p model.Proof) bool {
	logger := v.logger.With(zap.String("proof_id", p.ID), zap.String("address", p.AnchorAddress))

	derived, err := v.deriver.Verify(p.Owner, p.ContentDigest, p.AnchorAddress)
	if err != nil {
		logger.Warn("address re-derivation failed", zap.Error(err))
		return false
	}
	if !derived {
		logger.Warn("stored anchor address does not re-derive")
		return false
	}

	present, err := v.gateway.ConfirmPresence(ctx, p.AnchorAddress)
	if err != nil {
		logger.Warn("anchor presence not confirmed", zap.Error(err))
		return false
	}
	return present
}

// VerifyDocument checks a proof document against content without touching
// the ledger: the digest must match and the address must re-derive from the
// document's own derivation parameters.
func VerifyDocument(doc model.ProofDocument, content []byte) (model.VerificationResult, error) {
	digest, err := model.ParseDigest(doc.ContentDigest)
	if err != nil {
		return model.VerificationResult{}, fmt.Errorf("document digest: %w", err)
	}
	if doc.Derivation.Namespace != address.Namespace {
		return model.VerificationResult{}, fmt.Errorf("unsupported namespace %q: %w", doc.Derivation.Namespace, model.ErrInvalidArgument)
	}
	programID, err := address.ParseProgramID(doc.Derivation.ProgramID)
	if err != nil {
		return model.VerificationResult{}, fmt.Errorf("document program id: %w", err)
	}

	result := model.VerificationResult{
		Version: doc.Version,
		Address: doc.AnchorAddress,
		OnChain: doc.AnchorAddress != "",
	}
	if ts, err := time.Parse(documentTimeLayout, doc.Timestamp.ISO); err == nil {
		result.OriginalTimestamp = &ts
	}

	if !fingerprint.Matches(content, digest) {
		result.Details = model.DetailsHashMismatch
		return result, nil
	}

	derived, err := address.NewDeriver(programID).Derive(doc.Owner, digest)
	if err != nil {
		return model.VerificationResult{}, fmt.Errorf("derive address: %w", err)
	}
	if derived.String() != doc.AnchorAddress || derived.Bump != doc.Derivation.Bump {
		result.Details = model.DetailsDocumentMismatch
		return result, nil
	}
	result.IsValid = true
	result.Details = model.DetailsDocumentVerified
	return result, nil
}

func latestVersion(proofs []model.Proof) model.Proof {
	latest := proofs[0]
	for _, p := range proofs[1:] {
		if p.Version > latest.Version {
			latest = p
		}
	}
	return latest
}
