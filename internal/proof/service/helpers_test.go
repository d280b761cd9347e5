package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Matousse/Rebel-sub000/internal/clock"
	"github.com/Matousse/Rebel-sub000/internal/metrics"
	"github.com/Matousse/Rebel-sub000/internal/proof/address"
	"github.com/Matousse/Rebel-sub000/internal/proof/anchor"
	"github.com/Matousse/Rebel-sub000/internal/proof/model"
	"github.com/Matousse/Rebel-sub000/internal/proof/repository/memory"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 123000000, time.UTC)

var errGatewayDown = errors.New("gateway unavailable")

func testDeriver(t *testing.T) *address.Deriver {
	t.Helper()
	id, err := address.ParseProgramID(address.DefaultProgramID)
	require.NoError(t, err)
	return address.NewDeriver(id)
}

func testOwner(seed byte) model.OwnerIdentity {
	var key [model.KeySize]byte
	for i := range key {
		key[i] = seed ^ byte(i*13)
	}
	return model.NewOwnerIdentity(key)
}

// tickingClock advances by a millisecond on every read so records created
// in a test get distinct timestamps.
type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTickingClock() *tickingClock {
	return &tickingClock{now: fixedNow}
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

// switchGateway fails Anchor while down is set.
type switchGateway struct {
	AnchorGateway
	down atomic.Bool
}

func (g *switchGateway) Anchor(ctx context.Context, owner model.OwnerIdentity, digest model.Digest) (model.AnchorReceipt, error) {
	if g.down.Load() {
		return model.AnchorReceipt{}, errGatewayDown
	}
	return g.AnchorGateway.Anchor(ctx, owner, digest)
}

type stack struct {
	repo     *memory.ProofRepository
	anchors  *memory.AnchorStore
	gateway  *switchGateway
	ledger   *Ledger
	verifier *Verifier
	docs     *DocumentBuilder
	service  *Service
	clock    clock.Clock
}

type stackOption func(*Policy)

func withFee(fee uint64) stackOption {
	return func(p *Policy) { p.FixedFee = fee }
}

func withIdentity(t *testing.T, mode IdentityMode) stackOption {
	return func(p *Policy) {
		policy, err := NewIdentityPolicy(mode, zap.NewNop())
		require.NoError(t, err)
		p.Identity = policy
	}
}

// newStack wires the full core over the in-memory stores and a local notary.
func newStack(t *testing.T, opts ...stackOption) *stack {
	t.Helper()

	deriver := testDeriver(t)
	clk := newTickingClock()
	repo := memory.NewProofRepository()
	anchors := memory.NewAnchorStore()

	gw, err := anchor.NewGateway(deriver, anchors, nil, clk, zap.NewNop())
	require.NoError(t, err)
	gateway := &switchGateway{AnchorGateway: gw}

	var policy Policy
	for _, opt := range opts {
		opt(&policy)
	}

	ledger, err := NewLedger(repo, gateway, deriver, policy, nil, metrics.NewLedger(), clk, zap.NewNop())
	require.NoError(t, err)
	verifier, err := NewVerifier(repo, gateway, deriver, metrics.NewVerifier(), zap.NewNop())
	require.NoError(t, err)
	docs, err := NewDocumentBuilder(repo, deriver)
	require.NoError(t, err)
	svc, err := New(ledger, verifier, docs)
	require.NoError(t, err)

	return &stack{
		repo:     repo,
		anchors:  anchors,
		gateway:  gateway,
		ledger:   ledger,
		verifier: verifier,
		docs:     docs,
		service:  svc,
		clock:    clk,
	}
}
