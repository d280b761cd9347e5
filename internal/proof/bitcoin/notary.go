// Package bitcoin notarizes anchor payloads in Bitcoin OP_RETURN outputs.
package bitcoin

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"go.uber.org/zap"

	"github.com/Matousse/Rebel-sub000/internal/proof/model"
)

// ErrIncompleteSignature is returned when the wallet could not sign every
// input of a notarization transaction.
var ErrIncompleteSignature = errors.New("wallet returned incomplete signature")

// Config tunes a Notary.
type Config struct {
	// MinConfirmations is the depth required before Confirm reports true.
	MinConfirmations uint64
	// ChangeAddress optionally pins the wallet change output.
	ChangeAddress string
}

// Notary publishes payloads as zero-value OP_RETURN outputs funded and
// signed by the node wallet. The reference is the transaction id.
type Notary struct {
	client     WalletClient
	params     *chaincfg.Params
	minConf    uint64
	changeAddr *string
	logger     *zap.Logger
}

// NewNotary validates cfg against params and constructs a Notary.
func NewNotary(client WalletClient, params *chaincfg.Params, cfg Config, logger *zap.Logger) (*Notary, error) {
	if client == nil {
		return nil, errors.New("wallet client is required")
	}
	if params == nil {
		return nil, errors.New("chain params are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	n := &Notary{
		client:  client,
		params:  params,
		minConf: cfg.MinConfirmations,
		logger:  logger.Named("bitcoin_notary").With(zap.String("network", params.Name)),
	}
	if n.minConf == 0 {
		n.minConf = 1
	}
	if cfg.ChangeAddress != "" {
		addr, err := btcutil.DecodeAddress(cfg.ChangeAddress, params)
		if err != nil {
			return nil, fmt.Errorf("decode change address: %w", err)
		}
		if !addr.IsForNet(params) {
			return nil, fmt.Errorf("change address %s is not for %s", cfg.ChangeAddress, params.Name)
		}
		encoded := addr.EncodeAddress()
		n.changeAddr = &encoded
	}
	return n, nil
}

// Notarize embeds payload in an OP_RETURN output and broadcasts the
// transaction. It returns the transaction id.
func (n *Notary) Notarize(ctx context.Context, payload []byte) (string, error) {
	script, err := txscript.NullDataScript(payload)
	if err != nil {
		return "", fmt.Errorf("build null data script: %w", err)
	}

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxOut(wire.NewTxOut(0, script))

	if err := ctx.Err(); err != nil {
		return "", err
	}
	funded, err := n.client.FundRawTransaction(tx, btcjson.FundRawTransactionOpts{ChangeAddress: n.changeAddr}, nil)
	if err != nil {
		return "", fmt.Errorf("fund raw transaction: %w", err)
	}
	if funded == nil || funded.Transaction == nil {
		return "", errors.New("fund raw transaction: empty result")
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	signed, complete, err := n.client.SignRawTransactionWithWallet(funded.Transaction)
	if err != nil {
		return "", fmt.Errorf("sign raw transaction: %w", err)
	}
	if !complete {
		return "", ErrIncompleteSignature
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	hash, err := n.client.SendRawTransaction(signed, false)
	if err != nil {
		return "", fmt.Errorf("send raw transaction: %w", err)
	}

	n.logger.Info("notarization broadcast",
		zap.String("txid", hash.String()),
		zap.Int64("fee_sat", int64(funded.Fee)),
	)
	return hash.String(), nil
}

// Confirm reports whether the transaction behind reference carries payload
// and is buried at least MinConfirmations deep.
func (n *Notary) Confirm(ctx context.Context, reference string, payload []byte) (bool, error) {
	hash, err := chainhash.NewHashFromStr(reference)
	if err != nil {
		return false, fmt.Errorf("parse txid %q: %w", reference, model.ErrInvalidArgument)
	}
	if len(payload) == 0 {
		return false, fmt.Errorf("empty payload: %w", model.ErrInvalidArgument)
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	res, err := n.client.GetRawTransactionVerbose(hash)
	if err != nil {
		return false, fmt.Errorf("get raw transaction %s: %w", reference, err)
	}
	if res == nil || res.Confirmations < n.minConf {
		return false, nil
	}

	if carriesPayload(res, payload) {
		return true, nil
	}
	n.logger.Warn("transaction does not carry payload", zap.String("txid", reference))
	return false, nil
}
