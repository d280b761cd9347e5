package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

// Service is the application-facing surface of the proof core.
type Service struct {
	ledger    *Ledger
	verifier  *Verifier
	documents *DocumentBuilder
}

// New assembles a Service from its parts.
func New(ledger *Ledger, verifier *Verifier, documents *DocumentBuilder) (*Service, error) {
	if ledger == nil || verifier == nil || documents == nil {
		return nil, errors.New("ledger, verifier and document builder are required")
	}
	return &Service{ledger: ledger, verifier: verifier, documents: documents}, nil
}

// CreateProof records a new version of a lineage.
func (s *Service) CreateProof(ctx context.Context, lineageID, ownerID, title string, content []byte) (model.Summary, error) {
	proof, err := s.ledger.CreateProof(ctx, lineageID, ownerID, title, content)
	if err != nil {
		return model.Summary{}, err
	}
	return proof.Summary(), nil
}

// CreateProofFromReader records a new version of a lineage from streamed content.
func (s *Service) CreateProofFromReader(ctx context.Context, lineageID, ownerID, title string, r io.Reader) (model.Summary, error) {
	proof, err := s.ledger.CreateProofFromReader(ctx, lineageID, ownerID, title, r)
	if err != nil {
		return model.Summary{}, err
	}
	return proof.Summary(), nil
}

// PayForProof pays for and anchors a proof.
func (s *Service) PayForProof(ctx context.Context, proofID string) (model.Summary, error) {
	proof, err := s.ledger.PayForProof(ctx, proofID)
	if err != nil {
		return model.Summary{}, err
	}
	return proof.Summary(), nil
}

// Reanchor retries anchoring of a paid proof.
func (s *Service) Reanchor(ctx context.Context, proofID string) (model.Summary, error) {
	proof, err := s.ledger.Reanchor(ctx, proofID)
	if err != nil {
		return model.Summary{}, err
	}
	return proof.Summary(), nil
}

// Verify checks content against the latest version of a lineage.
func (s *Service) Verify(ctx context.Context, lineageID string, content []byte) (model.VerificationResult, error) {
	return s.verifier.Verify(ctx, lineageID, content)
}

// GetProofDocument returns the portable document of a confirmed proof.
func (s *Service) GetProofDocument(ctx context.Context, proofID string) (model.ProofDocument, bool, error) {
	return s.documents.Build(ctx, proofID)
}

// GetProof returns the summary of a single proof.
func (s *Service) GetProof(ctx context.Context, proofID string) (model.Summary, error) {
	proof, found, err := s.ledger.GetProof(ctx, proofID)
	if err != nil {
		return model.Summary{}, err
	}
	if !found {
		return model.Summary{}, fmt.Errorf("proof %s: %w", proofID, model.ErrNotFound)
	}
	return proof.Summary(), nil
}

// ListProofsForLineage returns the lineage history by ascending version.
func (s *Service) ListProofsForLineage(ctx context.Context, lineageID string) ([]model.Summary, error) {
	proofs, err := s.ledger.ListByLineage(ctx, lineageID)
	if err != nil {
		return nil, err
	}
	return model.Summaries(proofs), nil
}

// ListProofsForOwner returns the proofs of an owner, newest first.
func (s *Service) ListProofsForOwner(ctx context.Context, ownerID string) ([]model.Summary, error) {
	proofs, err := s.ledger.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return model.Summaries(proofs), nil
}
