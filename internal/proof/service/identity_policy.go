package service

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"go.uber.org/zap"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

// IdentityMode selects how malformed owner identities are handled.
type IdentityMode string

const (
	// IdentityReject fails malformed identities with model.ErrInvalidIdentity.
	IdentityReject IdentityMode = "reject"
	// IdentitySubstitute replaces malformed identities with a freshly
	// generated key and records the rejected value on the proof.
	IdentitySubstitute IdentityMode = "substitute"
)

// IdentityPolicy validates owner identities.
type IdentityPolicy struct {
	mode     IdentityMode
	generate func() (model.OwnerIdentity, error)
	logger   *zap.Logger
}

// NewIdentityPolicy builds a policy for mode. An empty mode means reject.
func NewIdentityPolicy(mode IdentityMode, logger *zap.Logger) (IdentityPolicy, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch mode {
	case "":
		mode = IdentityReject
	case IdentityReject, IdentitySubstitute:
	default:
		return IdentityPolicy{}, fmt.Errorf("unknown identity policy %q: %w", mode, model.ErrInvalidArgument)
	}
	return IdentityPolicy{
		mode:     mode,
		generate: generateIdentity,
		logger:   logger.Named("identity_policy"),
	}, nil
}

// Mode returns the configured mode.
func (p IdentityPolicy) Mode() IdentityMode {
	return p.mode
}

// Resolve returns the identity to record for raw. substitutedFrom is set
// only when the substitute mode replaced a malformed value.
func (p IdentityPolicy) Resolve(raw string) (owner model.OwnerIdentity, substitutedFrom string, err error) {
	owner, err = model.ParseOwnerIdentity(raw)
	if err == nil {
		return owner, "", nil
	}
	if p.mode != IdentitySubstitute {
		return "", "", err
	}

	owner, genErr := p.generate()
	if genErr != nil {
		return "", "", fmt.Errorf("generate substitute identity: %w", genErr)
	}
	p.logger.Warn("substituted malformed owner identity",
		zap.String("rejected", raw),
		zap.String("substitute", owner.String()),
	)
	return owner, raw, nil
}

func generateIdentity() (model.OwnerIdentity, error) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", err
	}
	var key [model.KeySize]byte
	copy(key[:], pub)
	return model.NewOwnerIdentity(key), nil
}
