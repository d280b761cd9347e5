package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

// PutProof appends a proof revision. Readers see the highest revision per id.
func (r *Repository) PutProof(ctx context.Context, proof model.Proof) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("put_proof", err, start)
	}()

	const query = `
INSERT INTO proofs (` + proofColumns + `
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare proof batch: %w", err)
	}

	if err = batch.Append(
		proof.ID,
		proof.LineageID,
		proof.Owner.String(),
		proof.SubstitutedFrom,
		proof.Title,
		proof.ContentDigest.String(),
		proof.Version,
		string(proof.Status),
		proof.IsPaid,
		proof.Cost,
		proof.AnchorAddress,
		proof.AnchorBump,
		proof.AnchorReference,
		proof.FailureReason,
		proof.Attempts,
		proof.Revision,
		proof.CreatedAt,
		proof.UpdatedAt,
	); err != nil {
		_ = batch.Abort()
		return fmt.Errorf("append proof: %w", err)
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert proof: %w", err)
	}
	return nil
}
