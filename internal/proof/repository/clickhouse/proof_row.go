package clickhouse

import (
	"fmt"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

const proofColumns = `
	id,
	lineage_id,
	owner_id,
	substituted_from,
	title,
	content_digest,
	version,
	status,
	is_paid,
	cost,
	anchor_address,
	anchor_bump,
	anchor_reference,
	failure_reason,
	attempts,
	revision,
	created_at,
	updated_at`

func scanProof(rows Rows) (model.Proof, error) {
	var (
		p      model.Proof
		owner  string
		digest string
		status string
	)
	if err := rows.Scan(
		&p.ID,
		&p.LineageID,
		&owner,
		&p.SubstitutedFrom,
		&p.Title,
		&digest,
		&p.Version,
		&status,
		&p.IsPaid,
		&p.Cost,
		&p.AnchorAddress,
		&p.AnchorBump,
		&p.AnchorReference,
		&p.FailureReason,
		&p.Attempts,
		&p.Revision,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return model.Proof{}, fmt.Errorf("scan proof: %w", err)
	}

	d, err := model.ParseDigest(digest)
	if err != nil {
		return model.Proof{}, fmt.Errorf("proof %s: %w", p.ID, err)
	}
	p.ContentDigest = d
	p.Owner = model.OwnerIdentity(owner)
	p.Status = model.ProofStatus(status)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}

func collectProofs(rows Rows) ([]model.Proof, error) {
	var out []model.Proof
	for rows.Next() {
		p, err := scanProof(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate proofs: %w", err)
	}
	return out, nil
}
