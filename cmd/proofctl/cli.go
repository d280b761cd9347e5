package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/Matousse/Rebel-sub000/internal/proof/app"
	"github.com/Matousse/Rebel-sub000/internal/proof/model"
	"github.com/Matousse/Rebel-sub000/internal/proof/service"
)

type cli struct {
	Options app.Options `group:"proof core" env-namespace:"PROOFCTL"`

	logger *zap.Logger
	stdin  io.Reader
	stdout io.Writer
}

func newCLI(logger *zap.Logger, stdin io.Reader, stdout io.Writer) *cli {
	return &cli{Options: app.DefaultOptions(), logger: logger, stdin: stdin, stdout: stdout}
}

func (c *cli) parser() *flags.Parser {
	p := flags.NewParser(c, flags.Default)
	p.LongDescription = "Records, anchors, verifies and exports proofs of creation."
	commands := []struct {
		name, short string
		data        any
	}{
		{"create", "Record a new version of a lineage", &createCommand{cli: c}},
		{"pay", "Pay for a proof and anchor it", &payCommand{cli: c}},
		{"reanchor", "Retry anchoring of a paid proof", &reanchorCommand{cli: c}},
		{"verify", "Verify content against the latest version of a lineage", &verifyCommand{cli: c}},
		{"document", "Export the proof document of a confirmed proof", &documentCommand{cli: c}},
		{"check-document", "Check a proof document against content offline", &checkDocumentCommand{cli: c}},
		{"lineage", "List the versions of a lineage", &lineageCommand{cli: c}},
		{"owner", "List the proofs of an owner", &ownerCommand{cli: c}},
		{"show", "Show a single proof", &showCommand{cli: c}},
	}
	for _, cmd := range commands {
		if _, err := p.AddCommand(cmd.name, cmd.short, "", cmd.data); err != nil {
			panic(err)
		}
	}
	return p
}

// run executes fn against a freshly built core and prints its result.
func (c *cli) run(fn func(context.Context, *service.Service) (any, error)) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	core, err := app.Build(ctx, c.Options, c.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := core.Close(); err != nil {
			c.logger.Error("close proof core", zap.Error(err))
		}
	}()

	v, err := fn(ctx, core.Service)
	if err != nil {
		return err
	}
	return c.print(v)
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// open returns the content at path; "-" reads stdin.
func (c *cli) open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(c.stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrContentUnreadable, err)
	}
	return f, nil
}

func (c *cli) readAll(path string) ([]byte, error) {
	r, err := c.open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrContentUnreadable, err)
	}
	return content, nil
}
