package wallet

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/clasptest/assert"
	"github.com/clasp-net/clasp/store"
)

func TestGenesisWallets(t *testing.T) {
	db := store.MemStore()
	alice, bob := addr(1), addr(2)

	genesis := fmt.Sprintf(`[
		{"address": %q, "name": "alice", "balance": 100},
		{"address": %q, "name": "bob", "balance": 50}
	]`, alice, bob)
	opts := clasp.Options{"wallet": json.RawMessage(genesis)}

	var ini Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))

	c := NewController(nil)
	w, err := c.Wallet(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(100), w.Balance)
	assert.Equal(t, uint64(0), w.HistoryLen)

	w, err = c.Wallet(db, bob)
	assert.Nil(t, err)
	assert.Equal(t, "bob", w.Name)

	// conservation holds from the start
	issued, err := c.TotalIssued(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(150), issued)
}

func TestGenesisEmpty(t *testing.T) {
	db := store.MemStore()
	var ini Initializer
	assert.Nil(t, ini.FromGenesis(clasp.Options{}, db))

	issued, err := NewController(nil).TotalIssued(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), issued)
}

func TestGenesisRejectsBadAddress(t *testing.T) {
	db := store.MemStore()
	opts := clasp.Options{
		"wallet": json.RawMessage(`[{"address": "0badc0de", "name": "x", "balance": 1}]`),
	}
	var ini Initializer
	if err := ini.FromGenesis(opts, db); err == nil {
		t.Fatal("genesis with a short address must fail")
	}
}
