package server

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clasp-net/clasp/x/wallet"
)

func writeGenesis(t *testing.T, appState string) string {
	t.Helper()
	tmp, err := ioutil.TempFile("", "genesis-*.json")
	require.NoError(t, err)
	_, err = tmp.WriteString(`{"chain_id": "demo-chain-1", "app_state": ` + appState + `}`)
	require.NoError(t, err)
	require.NoError(t, tmp.Close())
	return tmp.Name()
}

func TestValidateGenesis(t *testing.T) {
	good := writeGenesis(t, `{"wallet": [
		{"address": "C0CACC2894D273A7B6F1C097A772E0A88C29B76F6FBDEE6C58C21F15BF465F26", "name": "alice", "balance": 100}
	]}`)
	defer os.Remove(good)

	// short address cannot identify a wallet
	bad := writeGenesis(t, `{"wallet": [
		{"address": "C0CA", "name": "alice", "balance": 100}
	]}`)
	defer os.Remove(bad)

	var ini wallet.Initializer
	assert.NoError(t, ValidateGenesis(&ini, []string{good}))
	assert.Error(t, ValidateGenesis(&ini, []string{good, bad}))
	assert.Error(t, ValidateGenesis(&ini, []string{"/does/not/exist.json"}))
}
