package app

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/app"
	"github.com/clasp-net/clasp/crypto"
	"github.com/clasp-net/clasp/crypto/bech32"
	"github.com/clasp-net/clasp/x/wallet"
)

// GenInitOptions produces genesis app options with one pre-funded
// wallet, for dev mode.
//
// Arguments: [name] [address]. If no address is given a fresh keypair
// is generated and its address printed.
func GenInitOptions(args []string) (json.RawMessage, error) {
	name := "faucet"
	if len(args) > 0 {
		name = args[0]
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		address, err := GenerateWalletKey()
		if err != nil {
			return nil, err
		}
		addr = address.String()
		display, err := bech32.Encode("clasp", address)
		if err != nil {
			return nil, err
		}
		fmt.Printf("generated wallet address: %s (%s)\n", addr, display)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)
	return json.Marshal(dict{
		"wallet": array{
			dict{
				"address": addr,
				"name":    name,
				"balance": 123456789,
			},
		},
	})
}

// GenerateApp is used to create a stub for the server start command.
func GenerateApp(home string, logger log.Logger, debug bool) (app.BaseApp, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if home != "" {
		dbPath = filepath.Join(home, "abci.db")
	}

	stack := Stack()
	application, err := Application("clasp", stack, TxDecoder, dbPath, debug)
	if err != nil {
		return app.BaseApp{}, err
	}

	return DecorateApp(application, logger), nil
}

// DecorateApp adds initializers and the logger to the basic
// application.
func DecorateApp(application app.BaseApp, logger log.Logger) app.BaseApp {
	application.WithInit(app.ChainInitializers(
		&wallet.Initializer{},
	))
	application.WithLogger(logger)
	return application
}

// InlineApp is a relaunchable constructor for the block replay
// command, building the application around an already open store.
func InlineApp(kv clasp.CommitKVStore, logger log.Logger, debug bool) abci.Application {
	stack := Stack()
	store := app.NewStoreApp("clasp", kv, QueryRouter(), context.Background())
	base := app.NewBaseApp(store, TxDecoder, stack, debug)
	return DecorateApp(base, logger)
}

// GenerateWalletKey creates a new private key and returns the ledger
// address of its public key. The private key is discarded, this only
// seeds dev-mode genesis files.
func GenerateWalletKey() (clasp.Address, error) {
	privKey := crypto.GenPrivKeyEd25519()
	return privKey.PublicKey().Address(), nil
}
