package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/clasp-net/clasp/cmd/claspd/app"
	"github.com/clasp-net/clasp/commands/server"
)

var (
	flagHome = "home"
	varHome  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".claspd")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")
}

func helpMessage() {
	fmt.Println("claspd")
	fmt.Println("          Currency Ledger ABCI Application")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Initialize app options in genesis file")
	fmt.Println("start     Run the abci server")
	fmt.Println("getblock  Extract a block from block store")
	fmt.Println("retry     Replay a block against the abci state and compare hashes")
	fmt.Println("testgen   Generate example genesis options")
	fmt.Println("version   Print the app version")
}

// generateApp adapts app.GenerateApp to the server.AppGenerator
// signature, which returns the abci.Application interface.
func generateApp(home string, logger log.Logger, debug bool) (abci.Application, error) {
	return app.GenerateApp(home, logger, debug)
}

func main() {
	flag.Parse()

	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "claspd")

	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	var err error
	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(app.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = server.StartCmd(generateApp, logger, *varHome, rest)
	case "getblock":
		err = server.GetBlockCmd(logger, *varHome, rest)
	case "retry":
		err = server.RetryCmd(app.InlineApp, logger, *varHome, rest)
	case "testgen":
		var opts []byte
		if opts, err = app.GenInitOptions(rest); err == nil {
			fmt.Println(string(opts))
		}
	case "version":
		fmt.Println(version)
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n", err)
		helpMessage()
		os.Exit(1)
	}
}
