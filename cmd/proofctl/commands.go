package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
	"github.com/Matousse/Rebel-sub000/internal/proof/service"
)

type createCommand struct {
	cli *cli

	Lineage string `long:"lineage" required:"true" description:"lineage id"`
	Owner   string `long:"owner" required:"true" description:"base58 owner public key"`
	Title   string `long:"title" required:"true" description:"proof title"`
	File    string `long:"file" default:"-" description:"content file, - reads stdin"`
}

func (c *createCommand) Execute([]string) error {
	return c.cli.run(func(ctx context.Context, svc *service.Service) (any, error) {
		r, err := c.cli.open(c.File)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return svc.CreateProofFromReader(ctx, c.Lineage, c.Owner, c.Title, r)
	})
}

type payCommand struct {
	cli *cli

	ID string `long:"id" required:"true" description:"proof id"`
}

func (c *payCommand) Execute([]string) error {
	return c.cli.run(func(ctx context.Context, svc *service.Service) (any, error) {
		return svc.PayForProof(ctx, c.ID)
	})
}

type reanchorCommand struct {
	cli *cli

	ID string `long:"id" required:"true" description:"proof id"`
}

func (c *reanchorCommand) Execute([]string) error {
	return c.cli.run(func(ctx context.Context, svc *service.Service) (any, error) {
		return svc.Reanchor(ctx, c.ID)
	})
}

type verifyCommand struct {
	cli *cli

	Lineage string `long:"lineage" required:"true" description:"lineage id"`
	File    string `long:"file" default:"-" description:"content file, - reads stdin"`
}

func (c *verifyCommand) Execute([]string) error {
	content, err := c.cli.readAll(c.File)
	if err != nil {
		return err
	}
	return c.cli.run(func(ctx context.Context, svc *service.Service) (any, error) {
		return svc.Verify(ctx, c.Lineage, content)
	})
}

type documentCommand struct {
	cli *cli

	ID string `long:"id" required:"true" description:"proof id"`
}

func (c *documentCommand) Execute([]string) error {
	return c.cli.run(func(ctx context.Context, svc *service.Service) (any, error) {
		doc, ok, err := svc.GetProofDocument(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("proof %s is not confirmed yet", c.ID)
		}
		return doc, nil
	})
}

type checkDocumentCommand struct {
	cli *cli

	Document string `long:"document" required:"true" description:"proof document JSON file"`
	File     string `long:"file" default:"-" description:"content file, - reads stdin"`
}

func (c *checkDocumentCommand) Execute([]string) error {
	raw, err := c.cli.readAll(c.Document)
	if err != nil {
		return err
	}
	var doc model.ProofDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode proof document: %w", err)
	}
	content, err := c.cli.readAll(c.File)
	if err != nil {
		return err
	}

	res, err := service.VerifyDocument(doc, content)
	if err != nil {
		return err
	}
	return c.cli.print(res)
}

type lineageCommand struct {
	cli *cli

	ID string `long:"id" required:"true" description:"lineage id"`
}

func (c *lineageCommand) Execute([]string) error {
	return c.cli.run(func(ctx context.Context, svc *service.Service) (any, error) {
		return svc.ListProofsForLineage(ctx, c.ID)
	})
}

type ownerCommand struct {
	cli *cli

	ID string `long:"id" required:"true" description:"owner id"`
}

func (c *ownerCommand) Execute([]string) error {
	return c.cli.run(func(ctx context.Context, svc *service.Service) (any, error) {
		return svc.ListProofsForOwner(ctx, c.ID)
	})
}

type showCommand struct {
	cli *cli

	ID string `long:"id" required:"true" description:"proof id"`
}

func (c *showCommand) Execute([]string) error {
	return c.cli.run(func(ctx context.Context, svc *service.Service) (any, error) {
		return svc.GetProof(ctx, c.ID)
	})
}
