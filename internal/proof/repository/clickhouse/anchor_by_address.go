package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

// AnchorByAddress returns the first record anchored at address.
func (r *Repository) AnchorByAddress(ctx context.Context, address string) (record model.AnchorRecord, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("anchor_by_address", err, start)
	}()

	const query = `
SELECT
	address,
	bump,
	owner_id,
	content_digest,
	reference,
	anchored_at
FROM proof_anchors
WHERE address = ?
ORDER BY anchored_at ASC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, address)
	if err != nil {
		return model.AnchorRecord{}, false, fmt.Errorf("query anchor by address: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.AnchorRecord{}, false, fmt.Errorf("iterate anchor by address: %w", err)
		}
		return model.AnchorRecord{}, false, nil
	}

	var owner, digest string
	if err = rows.Scan(
		&record.Address,
		&record.Bump,
		&owner,
		&digest,
		&record.Reference,
		&record.AnchoredAt,
	); err != nil {
		return model.AnchorRecord{}, false, fmt.Errorf("scan anchor: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.AnchorRecord{}, false, fmt.Errorf("iterate anchor by address: %w", err)
	}

	if record.ContentDigest, err = model.ParseDigest(digest); err != nil {
		return model.AnchorRecord{}, false, fmt.Errorf("anchor %s: %w", record.Address, err)
	}
	record.Owner = model.OwnerIdentity(owner)
	record.AnchoredAt = record.AnchoredAt.UTC()
	return record, true, nil
}
