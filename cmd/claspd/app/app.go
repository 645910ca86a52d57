/*
Package app wires together the currency ledger components into a
complete abci application: the signature and replay guard decorator
stack, the message router, the query router and the iavl backed
storage.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/app"
	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/orm"
	"github.com/clasp-net/clasp/store/iavl"
	"github.com/clasp-net/clasp/x"
	"github.com/clasp-net/clasp/x/dedup"
	"github.com/clasp-net/clasp/x/sigs"
	"github.com/clasp-net/clasp/x/utils"
	"github.com/clasp-net/clasp/x/wallet"
)

// Authenticator returns the typical authentication,
// just using public key signatures.
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// WalletControl returns a controller for the ledger functions, using
// the default approver policy.
func WalletControl() *wallet.Controller {
	return wallet.NewController(nil)
}

// Chain returns a chain of decorators to handle logging, recovery,
// signature verification and replay protection.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		dedup.NewDecorator(),
		// on DeliverTx, failed tx roll back together with their
		// replay guard mark
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns the ledger message router.
func Router(authFn x.Authenticator, ctrl *wallet.Controller) *app.Router {
	r := app.NewRouter()
	wallet.RegisterRoutes(r, authFn, ctrl)
	return r
}

// QueryRouter returns a query router serving the wallet buckets and
// raw keys under "/".
func QueryRouter() clasp.QueryRouter {
	r := clasp.NewQueryRouter()
	r.RegisterAll(
		wallet.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with the standard decorator chain.
// This can be passed into BaseApp.
func Stack() clasp.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn, WalletControl()))
}

// Application constructs a basic ABCI application with the given
// arguments. If you are not sure what to use for the Handler, just
// use Stack().
func Application(name string, h clasp.Handler,
	tx clasp.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	return app.NewBaseApp(store, tx, h, debug), nil
}

// CommitKVStore returns an initialized KVStore that persists the data
// to the named path.
func CommitKVStore(dbPath string) (clasp.CommitKVStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
