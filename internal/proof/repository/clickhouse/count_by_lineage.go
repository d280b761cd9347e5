package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Matousse/Rebel-sub000/pkg/safe"
)

// CountByLineage returns the number of distinct proofs of a lineage.
func (r *Repository) CountByLineage(ctx context.Context, lineageID string) (count uint32, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("count_by_lineage", err, start)
	}()

	const query = `
SELECT count() AS total
FROM proofs FINAL
WHERE lineage_id = ?`

	rows, err := r.conn.Query(ctx, query, lineageID)
	if err != nil {
		return 0, fmt.Errorf("query count by lineage: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, fmt.Errorf("count by lineage not found")
	}
	var total uint64
	if err = rows.Scan(&total); err != nil {
		return 0, fmt.Errorf("scan count by lineage: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate count by lineage: %w", err)
	}

	if count, err = safe.Uint32(total); err != nil {
		return 0, fmt.Errorf("count by lineage: %w", err)
	}
	return count, nil
}
