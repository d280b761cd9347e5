package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

// ProofsByOwner returns the proofs of an owner, newest first.
func (r *Repository) ProofsByOwner(ctx context.Context, owner model.OwnerIdentity) (proofs []model.Proof, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("proofs_by_owner", err, start)
	}()

	const query = `
SELECT` + proofColumns + `
FROM proofs FINAL
WHERE owner_id = ?
ORDER BY created_at DESC, id DESC`

	rows, err := r.conn.Query(ctx, query, owner.String())
	if err != nil {
		return nil, fmt.Errorf("query proofs by owner: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	return collectProofs(rows)
}
