package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

// InsertEvents stores proof lifecycle events.
func (r *Repository) InsertEvents(ctx context.Context, events []model.ProofEvent) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO proof_events (
	proof_id,
	lineage_id,
	owner_id,
	kind,
	status,
	version,
	reason,
	occurred_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare events batch: %w", err)
	}

	for _, e := range events {
		if err = batch.Append(
			e.ProofID,
			e.LineageID,
			e.Owner.String(),
			string(e.Kind),
			string(e.Status),
			e.Version,
			e.Reason,
			e.OccurredAt,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert events: %w", err)
	}
	return nil
}
