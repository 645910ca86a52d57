package app

import (
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/errors"
)

// BaseApp adds DeliverTx and CheckTx handlers to the storage and query
// functionality of StoreApp.
type BaseApp struct {
	*StoreApp
	decoder clasp.TxDecoder
	handler clasp.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp constructs a basic abci application.
func NewBaseApp(
	store *StoreApp,
	decoder clasp.TxDecoder,
	handler clasp.Handler,
	debug bool,
) BaseApp {
	return BaseApp{
		StoreApp: store,
		decoder:  decoder,
		handler:  handler,
		debug:    debug,
	}
}

// DeliverTx - ABCI - dispatches to the handler. The transaction hash
// in the context is seeded from the raw transaction bytes; the
// signature decorator later narrows it to the identity of the signed
// content, which the replay guard and the pending transfers key on.
func (b BaseApp) DeliverTx(txBytes []byte) abci.ResponseDeliverTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return clasp.DeliverTxError(err, b.debug)
	}

	ctx := clasp.WithTxHash(b.BlockContext(), clasp.TxHash(txBytes))
	ctx = clasp.WithLogInfo(ctx,
		"call", "deliver_tx",
		"path", clasp.GetPath(tx))

	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return clasp.DeliverOrError(res, err, b.debug)
}

// CheckTx - ABCI - dispatches to the handler.
func (b BaseApp) CheckTx(txBytes []byte) abci.ResponseCheckTx {
	tx, err := b.loadTx(txBytes)
	if err != nil {
		return clasp.CheckTxError(err, b.debug)
	}

	ctx := clasp.WithTxHash(b.BlockContext(), clasp.TxHash(txBytes))
	ctx = clasp.WithLogInfo(ctx,
		"call", "check_tx",
		"path", clasp.GetPath(tx))

	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return clasp.CheckOrError(res, err, b.debug)
}

// loadTx calls the decoder, and captures any panics.
func (b BaseApp) loadTx(txBytes []byte) (tx clasp.Tx, err error) {
	defer errors.Recover(&err)
	tx, err = b.decoder(txBytes)
	return
}
