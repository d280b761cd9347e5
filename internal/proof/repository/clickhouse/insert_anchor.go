package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

// InsertAnchor appends an anchor record. The earliest record per address wins
// on read.
func (r *Repository) InsertAnchor(ctx context.Context, record model.AnchorRecord) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_anchor", err, start)
	}()

	const query = `
INSERT INTO proof_anchors (
	address,
	bump,
	owner_id,
	content_digest,
	reference,
	anchored_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare anchor batch: %w", err)
	}

	if err = batch.Append(
		record.Address,
		record.Bump,
		record.Owner.String(),
		record.ContentDigest.String(),
		record.Reference,
		record.AnchoredAt,
	); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append anchor: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert anchor: %w", err)
	}
	return nil
}
