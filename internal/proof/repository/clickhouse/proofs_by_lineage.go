package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

// ProofsByLineage returns the proofs of a lineage ordered by version.
func (r *Repository) ProofsByLineage(ctx context.Context, lineageID string) (proofs []model.Proof, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("proofs_by_lineage", err, start)
	}()

	const query = `
SELECT` + proofColumns + `
FROM proofs FINAL
WHERE lineage_id = ?
ORDER BY version ASC`

	rows, err := r.conn.Query(ctx, query, lineageID)
	if err != nil {
		return nil, fmt.Errorf("query proofs by lineage: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	return collectProofs(rows)
}
