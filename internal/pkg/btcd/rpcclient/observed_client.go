//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
package rpcclient

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// WalletClient is the subset of the btcd rpcclient used to publish and
	// look up notarization transactions.
	WalletClient interface {
		FundRawTransaction(tx *wire.MsgTx, opts btcjson.FundRawTransactionOpts, isWitness *bool) (*btcjson.FundRawTransactionResult, error)
		SignRawTransactionWithWallet(tx *wire.MsgTx) (*wire.MsgTx, bool, error)
		SendRawTransaction(tx *wire.MsgTx, allowHighFees bool) (*chainhash.Hash, error)
		GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error)
	}
)

type ObservedClient struct {
	client     WalletClient
	rpcMetrics RPCMetrics
}

func NewObservedClient(client WalletClient, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) FundRawTransaction(tx *wire.MsgTx, opts btcjson.FundRawTransactionOpts, isWitness *bool) (res *btcjson.FundRawTransactionResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("fund_raw_transaction", err, started)
	}()
	return r.client.FundRawTransaction(tx, opts, isWitness)
}

func (r *ObservedClient) SignRawTransactionWithWallet(tx *wire.MsgTx) (signed *wire.MsgTx, complete bool, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("sign_raw_transaction_with_wallet", err, started)
	}()
	return r.client.SignRawTransactionWithWallet(tx)
}

func (r *ObservedClient) SendRawTransaction(tx *wire.MsgTx, allowHighFees bool) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("send_raw_transaction", err, started)
	}()
	return r.client.SendRawTransaction(tx, allowHighFees)
}

func (r *ObservedClient) GetRawTransactionVerbose(txHash *chainhash.Hash) (res *btcjson.TxRawResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_transaction_verbose", err, started)
	}()
	return r.client.GetRawTransactionVerbose(txHash)
}
