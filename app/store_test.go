package app

import (
	"context"
	"testing"

	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/clasptest/assert"
	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/store"
	"github.com/clasp-net/clasp/store/iavl"
)

func TestCommitStoreIsolation(t *testing.T) {
	cs := NewCommitStore(iavl.MockCommitStore())

	k, v := []byte("currency"), []byte("ledger")
	if err := cs.DeliverStore().Set(k, v); err != nil {
		t.Fatalf("cannot write: %+v", err)
	}

	// check runs on its own cache and cannot see uncommitted writes
	has, err := cs.CheckStore().Has(k)
	assert.Nil(t, err)
	assert.Equal(t, false, has)

	id, err := cs.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)

	// after a commit both caches serve the persisted state
	for _, db := range []clasp.ReadOnlyKVStore{cs.CheckStore(), cs.DeliverStore()} {
		got, err := db.Get(k)
		assert.Nil(t, err)
		assert.Equal(t, v, got)
	}
}

func TestChainID(t *testing.T) {
	db := store.MemStore()

	assert.Equal(t, "", mustLoadChainID(db))

	if err := saveChainID(db, "bad:chain"); !errors.ErrInput.Is(err) {
		t.Fatalf("want invalid chain id to be refused, got %+v", err)
	}
	assert.Nil(t, saveChainID(db, "clasp-chain-1"))
	assert.Equal(t, "clasp-chain-1", mustLoadChainID(db))

	if err := saveChainID(db, "clasp-chain-2"); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want chain id overwrite to be refused, got %+v", err)
	}
	assert.Equal(t, "clasp-chain-1", mustLoadChainID(db))
}

func TestStoreAppLifecycle(t *testing.T) {
	qr := clasp.NewQueryRouter()
	qr.Register("/", rawQueryHandler{})

	s := NewStoreApp("ledger", iavl.MockCommitStore(), qr, context.Background()).
		WithInit(setKVInitializer{})

	// genesis feeds the initializer and pins the chain id
	s.InitChain(abci.RequestInitChain{
		ChainId:       "test-ledger-1",
		AppStateBytes: []byte(`{"k": "genesis value"}`),
	})
	assert.Equal(t, "test-ledger-1", s.GetChainID())

	info := s.Info(abci.RequestInfo{})
	assert.Equal(t, "ledger", info.Data)
	assert.Equal(t, int64(0), info.LastBlockHeight)

	s.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 1}})
	height, ok := clasp.GetHeight(s.BlockContext())
	assert.Equal(t, true, ok)
	assert.Equal(t, int64(1), height)

	cres := s.Commit()
	if len(cres.Data) == 0 {
		t.Fatal("commit must return an app hash")
	}

	// only committed state is visible to queries
	q := s.Query(abci.RequestQuery{Path: "/", Data: []byte("k")})
	assert.Equal(t, uint32(0), q.Code)
	var value ResultSet
	assert.Nil(t, value.Unmarshal(q.Value))
	assert.Equal(t, 1, len(value.Results))
	assert.Equal(t, []byte("genesis value"), value.Results[0])

	// unknown query paths report not found
	q = s.Query(abci.RequestQuery{Path: "/nothing", Data: []byte("k")})
	assert.Equal(t, errors.ErrNotFound.ABCICode(), q.Code)

	// a second genesis must be refused
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("second init chain must panic")
			}
		}()
		s.InitChain(abci.RequestInitChain{
			ChainId:       "test-ledger-2",
			AppStateBytes: []byte(`{}`),
		})
	}()
}

// setKVInitializer writes the value of the "k" genesis option under the
// key "k".
type setKVInitializer struct{}

var _ clasp.Initializer = setKVInitializer{}

func (setKVInitializer) FromGenesis(opts clasp.Options, kv clasp.KVStore) error {
	var value string
	if err := opts.ReadOptions("k", &value); err != nil {
		return err
	}
	return kv.Set([]byte("k"), []byte(value))
}

// rawQueryHandler returns the raw value stored under the requested key.
type rawQueryHandler struct{}

var _ clasp.QueryHandler = rawQueryHandler{}

func (rawQueryHandler) Query(db clasp.ReadOnlyKVStore, mod string, data []byte) ([]clasp.Model, error) {
	value, err := db.Get(data)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, nil
	}
	return []clasp.Model{{Key: data, Value: value}}, nil
}
