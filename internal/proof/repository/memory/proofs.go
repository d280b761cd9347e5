// Package memory holds in-process implementations of the proof stores.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

// ProofRepository keeps proofs in process memory. Records are stored and
// returned by value, so readers never share state with writers.
type ProofRepository struct {
	mu        sync.RWMutex
	proofs    map[string]model.Proof
	byLineage map[string][]string
	byOwner   map[model.OwnerIdentity][]string
}

// NewProofRepository constructs an empty repository.
func NewProofRepository() *ProofRepository {
	return &ProofRepository{
		proofs:    make(map[string]model.Proof),
		byLineage: make(map[string][]string),
		byOwner:   make(map[model.OwnerIdentity][]string),
	}
}

// ProofByID returns the proof stored under id.
func (r *ProofRepository) ProofByID(_ context.Context, id string) (model.Proof, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.proofs[id]
	return p, ok, nil
}

// PutProof inserts or replaces a proof.
func (r *ProofRepository) PutProof(_ context.Context, proof model.Proof) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.proofs[proof.ID]; !ok {
		r.byLineage[proof.LineageID] = append(r.byLineage[proof.LineageID], proof.ID)
		r.byOwner[proof.Owner] = append(r.byOwner[proof.Owner], proof.ID)
	}
	r.proofs[proof.ID] = proof
	return nil
}

// ProofsByLineage returns the proofs of a lineage ordered by version.
func (r *ProofRepository) ProofsByLineage(_ context.Context, lineageID string) ([]model.Proof, error) {
	r.mu.RLock()
	out := r.collect(r.byLineage[lineageID])
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Version < out[j].Version
	})
	return out, nil
}

// ProofsByOwner returns the proofs of an owner, newest first.
func (r *ProofRepository) ProofsByOwner(_ context.Context, owner model.OwnerIdentity) ([]model.Proof, error) {
	r.mu.RLock()
	out := r.collect(r.byOwner[owner])
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// CountByLineage returns the number of proofs recorded for a lineage.
func (r *ProofRepository) CountByLineage(_ context.Context, lineageID string) (uint32, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return uint32(len(r.byLineage[lineageID])), nil
}

// RetryableProofs returns paid proofs that failed, or are still pending
// and were last touched before pendingBefore, oldest first.
func (r *ProofRepository) RetryableProofs(_ context.Context, pendingBefore time.Time, limit int) ([]model.Proof, error) {
	r.mu.RLock()
	out := make([]model.Proof, 0)
	for _, p := range r.proofs {
		if isRetryable(p, pendingBefore) {
			out = append(out, p)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.Before(out[j].UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *ProofRepository) collect(ids []string) []model.Proof {
	out := make([]model.Proof, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.proofs[id])
	}
	return out
}

func isRetryable(p model.Proof, pendingBefore time.Time) bool {
	if !p.IsPaid {
		return false
	}
	switch p.Status {
	case model.ProofFailed:
		return true
	case model.ProofPending:
		return p.UpdatedAt.Before(pendingBefore)
	default:
		return false
	}
}
