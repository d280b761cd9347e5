package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

const defaultRetryableLimit = 1000

// RetryableProofs returns paid proofs that failed, or are still pending and
// were last written before pendingBefore, oldest first.
func (r *Repository) RetryableProofs(ctx context.Context, pendingBefore time.Time, limit int) (proofs []model.Proof, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("retryable_proofs", err, start)
	}()

	if limit <= 0 {
		limit = defaultRetryableLimit
	}

	const query = `
SELECT` + proofColumns + `
FROM proofs FINAL
WHERE is_paid
  AND (status = ? OR (status = ? AND updated_at < ?))
ORDER BY updated_at ASC, id ASC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query,
		string(model.ProofFailed),
		string(model.ProofPending),
		pendingBefore,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query retryable proofs: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	return collectProofs(rows)
}
