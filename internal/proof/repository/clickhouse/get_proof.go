package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

// ProofByID returns the latest revision of a proof.
func (r *Repository) ProofByID(ctx context.Context, id string) (proof model.Proof, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("proof_by_id", err, start)
	}()

	const query = `
SELECT` + proofColumns + `
FROM proofs FINAL
WHERE id = ?
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, id)
	if err != nil {
		return model.Proof{}, false, fmt.Errorf("query proof by id: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Proof{}, false, fmt.Errorf("iterate proof by id: %w", err)
		}
		return model.Proof{}, false, nil
	}
	if proof, err = scanProof(rows); err != nil {
		return model.Proof{}, false, err
	}
	if err = rows.Err(); err != nil {
		return model.Proof{}, false, fmt.Errorf("iterate proof by id: %w", err)
	}
	return proof, true, nil
}
