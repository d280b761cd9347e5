package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Matousse/Rebel-sub000/internal/proof/address"
	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

// documentTimeLayout is RFC 3339 in UTC with millisecond precision.
const documentTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// DocumentBuilder exports confirmed proofs as portable documents.
type DocumentBuilder struct {
	repo    ProofRepository
	deriver *address.Deriver
}

// NewDocumentBuilder wires a DocumentBuilder.
func NewDocumentBuilder(repo ProofRepository, deriver *address.Deriver) (*DocumentBuilder, error) {
	if repo == nil {
		return nil, errors.New("proof repository is required")
	}
	if deriver == nil {
		return nil, errors.New("address deriver is required")
	}
	return &DocumentBuilder{repo: repo, deriver: deriver}, nil
}

// Build returns the document of proofID. ok is false while the proof is
// not confirmed; an unknown id fails with model.ErrNotFound.
func (b *DocumentBuilder) Build(ctx context.Context, proofID string) (doc model.ProofDocument, ok bool, err error) {
	proof, found, err := b.repo.ProofByID(ctx, proofID)
	if err != nil {
		return model.ProofDocument{}, false, fmt.Errorf("load proof %s: %w", proofID, err)
	}
	if !found {
		return model.ProofDocument{}, false, fmt.Errorf("proof %s: %w", proofID, model.ErrNotFound)
	}
	if !proof.IsAnchored() {
		return model.ProofDocument{}, false, nil
	}
	return b.document(proof), true, nil
}

func (b *DocumentBuilder) document(p model.Proof) model.ProofDocument {
	ms := p.CreatedAt.UnixMilli()
	return model.ProofDocument{
		Owner:           p.Owner,
		ContentDigest:   p.ContentDigest.String(),
		LineageID:       p.LineageID,
		Title:           p.Title,
		Version:         p.Version,
		Timestamp:       documentTimestamp(ms),
		AnchorAddress:   p.AnchorAddress,
		AnchorReference: p.AnchorReference,
		Derivation: model.Derivation{
			Namespace: address.Namespace,
			ProgramID: b.deriver.ProgramID(),
			Bump:      p.AnchorBump,
		},
	}
}

// documentTimestamp renders both forms from the same millisecond instant.
func documentTimestamp(ms int64) model.DocumentTimestamp {
	return model.DocumentTimestamp{
		Unix: floorDiv(ms, 1000),
		ISO:  time.UnixMilli(ms).UTC().Format(documentTimeLayout),
	}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
