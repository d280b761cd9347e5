package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Matousse/Rebel-sub000/internal/clock"
	"github.com/Matousse/Rebel-sub000/internal/metrics"
	rpcclient2 "github.com/Matousse/Rebel-sub000/internal/pkg/btcd/rpcclient"
	"github.com/Matousse/Rebel-sub000/internal/proof/address"
	"github.com/Matousse/Rebel-sub000/internal/proof/anchor"
	"github.com/Matousse/Rebel-sub000/internal/proof/bitcoin"
	"github.com/Matousse/Rebel-sub000/internal/proof/repository/clickhouse"
	"github.com/Matousse/Rebel-sub000/internal/proof/repository/memory"
	"github.com/Matousse/Rebel-sub000/internal/proof/service"
)

// Core is an assembled proof core.
type Core struct {
	Service *service.Service
	Ledger  *service.Ledger
	Proofs  service.ProofRepository

	closers []func() error
}

type stores struct {
	proofs  service.ProofRepository
	anchors anchor.Store
	events  service.EventRepository
}

// Build wires the proof core described by opts. Close releases what Build
// opened and flushes buffered events.
func Build(ctx context.Context, opts Options, logger *zap.Logger) (*Core, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	core := &Core{}
	ok := false
	defer func() {
		if !ok {
			_ = core.Close()
		}
	}()

	programID, err := address.ParseProgramID(opts.ProgramID)
	if err != nil {
		return nil, err
	}
	deriver := address.NewDeriver(programID)

	identity, err := service.NewIdentityPolicy(service.IdentityMode(opts.IdentityPolicy), logger)
	if err != nil {
		return nil, err
	}

	st, err := core.openStores(opts, logger)
	if err != nil {
		return nil, err
	}

	notary, err := core.openNotary(opts, logger)
	if err != nil {
		return nil, err
	}

	gw, err := anchor.NewGateway(deriver, st.anchors, notary, clock.System{}, logger)
	if err != nil {
		return nil, fmt.Errorf("init anchor gateway: %w", err)
	}
	gateway := anchor.NewObserved(gw, metrics.NewAnchorGateway())

	var events service.EventPublisher = service.NopPublisher{}
	if st.events != nil {
		writer, err := service.NewEventWriter(st.events, service.EventWriterConfig{
			FlushSize:     opts.EventFlush,
			FlushInterval: opts.EventPeriod,
		}, metrics.NewEventWriter(), logger)
		if err != nil {
			return nil, fmt.Errorf("init event writer: %w", err)
		}
		writer.Start(ctx)
		core.closers = append(core.closers, func() error {
			writer.Stop()
			return nil
		})
		events = writer
	}

	ledger, err := service.NewLedger(st.proofs, gateway, deriver, service.Policy{
		FixedFee: opts.FixedFee,
		Identity: identity,
	}, events, metrics.NewLedger(), clock.System{}, logger)
	if err != nil {
		return nil, fmt.Errorf("init ledger: %w", err)
	}
	verifier, err := service.NewVerifier(st.proofs, gateway, deriver, metrics.NewVerifier(), logger)
	if err != nil {
		return nil, fmt.Errorf("init verifier: %w", err)
	}
	documents, err := service.NewDocumentBuilder(st.proofs, deriver)
	if err != nil {
		return nil, fmt.Errorf("init document builder: %w", err)
	}
	svc, err := service.New(ledger, verifier, documents)
	if err != nil {
		return nil, err
	}

	core.Service = svc
	core.Ledger = ledger
	core.Proofs = st.proofs
	ok = true
	return core, nil
}

func (c *Core) openStores(opts Options, logger *zap.Logger) (stores, error) {
	switch opts.Storage {
	case "", StorageMemory:
		logger.Warn("using in-memory storage, proofs are lost on exit")
		return stores{proofs: memory.NewProofRepository(), anchors: memory.NewAnchorStore()}, nil
	case StorageClickhouse:
		repo, err := clickhouse.NewRepository(opts.ClickhouseDSN, metrics.NewRepository(StorageClickhouse))
		if err != nil {
			return stores{}, fmt.Errorf("init repository: %w", err)
		}
		// the event writer is stopped before the connection closes
		c.closers = append(c.closers, repo.Close)
		return stores{proofs: repo, anchors: repo, events: repo}, nil
	default:
		return stores{}, fmt.Errorf("unknown storage %q", opts.Storage)
	}
}

func (c *Core) openNotary(opts Options, logger *zap.Logger) (anchor.Notary, error) {
	switch opts.Notary {
	case "", NotaryLocal:
		return anchor.NewLocalNotary(clock.System{}), nil
	case NotaryBitcoin:
		params, err := bitcoin.ChainParams(opts.Bitcoin.Network)
		if err != nil {
			return nil, err
		}
		client, err := newRPCClient(opts.Bitcoin.RPCURL, opts.Bitcoin.RPCUser, opts.Bitcoin.RPCPassword)
		if err != nil {
			return nil, fmt.Errorf("init bitcoin rpc client: %w", err)
		}
		c.closers = append(c.closers, func() error {
			client.Shutdown()
			client.WaitForShutdown()
			return nil
		})
		observed := rpcclient2.NewObservedClient(client, metrics.NewRPCClient(params.Name))
		notary, err := bitcoin.NewNotary(observed, params, bitcoin.Config{
			MinConfirmations: opts.Bitcoin.MinConfirmations,
			ChangeAddress:    opts.Bitcoin.ChangeAddress,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("init bitcoin notary: %w", err)
		}
		return notary, nil
	default:
		return nil, fmt.Errorf("unknown notary %q", opts.Notary)
	}
}

// Close releases resources in reverse order of acquisition.
func (c *Core) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
