package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

// AnchorStore is a write-once in-memory anchor ledger.
type AnchorStore struct {
	mu      sync.RWMutex
	anchors map[string]model.AnchorRecord
}

// NewAnchorStore constructs an empty store.
func NewAnchorStore() *AnchorStore {
	return &AnchorStore{anchors: make(map[string]model.AnchorRecord)}
}

// AnchorByAddress returns the record anchored at address.
func (s *AnchorStore) AnchorByAddress(_ context.Context, address string) (model.AnchorRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.anchors[address]
	return rec, ok, nil
}

// InsertAnchor stores record unless its address is already taken.
func (s *AnchorStore) InsertAnchor(_ context.Context, record model.AnchorRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.anchors[record.Address]; ok {
		return fmt.Errorf("address %s: %w", record.Address, model.ErrAlreadyAnchored)
	}
	s.anchors[record.Address] = record
	return nil
}

// Len returns the number of anchored addresses.
func (s *AnchorStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.anchors)
}
