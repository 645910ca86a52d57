package app

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/store"
	"github.com/clasp-net/clasp/x/wallet"
)

func TestGenInitOptions(t *testing.T) {
	cases := map[string]struct {
		args    []string
		name    string
		address string
	}{
		"no args":          {nil, "faucet", ""},
		"name only":        {[]string{"dev"}, "dev", ""},
		"name and address": {[]string{"dev", "C0CACC2894D273A7B6F1C097A772E0A88C29B76F6FBDEE6C58C21F15BF465F26"}, "dev", "C0CACC2894D273A7B6F1C097A772E0A88C29B76F6FBDEE6C58C21F15BF465F26"},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			raw, err := GenInitOptions(tc.args)
			require.NoError(t, err)

			var doc struct {
				Wallet []struct {
					Address clasp.Address `json:"address"`
					Name    string        `json:"name"`
					Balance uint64        `json:"balance"`
				} `json:"wallet"`
			}
			require.NoError(t, json.Unmarshal(raw, &doc))
			require.Equal(t, 1, len(doc.Wallet))
			acct := doc.Wallet[0]

			assert.Equal(t, tc.name, acct.Name)
			assert.NoError(t, acct.Address.Validate())
			if tc.address != "" {
				assert.Equal(t, tc.address, acct.Address.String())
			}
			assert.True(t, acct.Balance > 0)

			// the options must load through the wallet initializer
			var opts clasp.Options
			require.NoError(t, json.Unmarshal(raw, &opts))
			db := store.MemStore()
			var ini wallet.Initializer
			require.NoError(t, ini.FromGenesis(opts, db))

			var w wallet.Wallet
			require.NoError(t, wallet.NewWalletBucket().One(db, acct.Address, &w))
			assert.Equal(t, tc.name, w.Name)
			assert.Equal(t, acct.Balance, w.Balance)
		})
	}
}

func TestGenerateWalletKey(t *testing.T) {
	a, err := GenerateWalletKey()
	require.NoError(t, err)
	assert.NoError(t, a.Validate())

	b, err := GenerateWalletKey()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
