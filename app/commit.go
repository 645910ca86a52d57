package app

import (
	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/errors"
)

// CommitStore handles loading from a CommitKVStore, maintaining
// different CacheWraps for Deliver and Check, and returning useful
// state info.
type CommitStore struct {
	committed clasp.CommitKVStore
	deliver   clasp.KVCacheWrap
	check     clasp.KVCacheWrap
}

// NewCommitStore loads the CommitKVStore from disk or panics. It sets
// up the deliver and check caches.
func NewCommitStore(store clasp.CommitKVStore) *CommitStore {
	if err := store.LoadLatestVersion(); err != nil {
		panic(err)
	}
	return &CommitStore{
		committed: store,
		deliver:   store.CacheWrap(),
		check:     store.CacheWrap(),
	}
}

// CommitInfo returns the current height and hash.
func (cs *CommitStore) CommitInfo() (clasp.CommitID, error) {
	return cs.committed.LatestVersion()
}

// Commit will flush deliver to the underlying store and commit it to
// disk. It then regenerates new deliver/check caches.
func (cs *CommitStore) Commit() (clasp.CommitID, error) {
	// flush deliver to store and discard check
	if err := cs.deliver.Write(); err != nil {
		return clasp.CommitID{}, err
	}
	cs.check.Discard()

	// write the store to disk
	res, err := cs.committed.Commit()
	if err != nil {
		return res, err
	}

	// set up new caches
	cs.deliver = cs.committed.CacheWrap()
	cs.check = cs.committed.CacheWrap()
	return res, nil
}

// CheckStore returns a store implementation that must be used during
// the checking phase.
func (cs *CommitStore) CheckStore() clasp.CacheableKVStore {
	return cs.check
}

// DeliverStore returns a store implementation that must be used during
// the delivery phase.
func (cs *CommitStore) DeliverStore() clasp.CacheableKVStore {
	return cs.deliver
}

//------- storing chainID ---------

// _cl: is a prefix for internal data.
const chainIDKey = "_cl:chainID"

// mustLoadChainID returns the chain id stored if any, panics on db
// error.
func mustLoadChainID(kv clasp.KVStore) string {
	v, err := kv.Get([]byte(chainIDKey))
	if err != nil {
		panic(err)
	}
	return string(v)
}

// saveChainID stores a chain id in the kv store. Returns error if
// already set, or invalid name.
func saveChainID(kv clasp.KVStore, chainID string) error {
	if !clasp.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}
	k := []byte(chainIDKey)
	exists, err := kv.Has(k)
	if err != nil {
		return errors.Wrap(err, "load chainID")
	}
	if exists {
		return errors.Wrap(errors.ErrUnauthorized, "can't modify chain id after genesis init")
	}
	if err := kv.Set(k, []byte(chainID)); err != nil {
		return errors.Wrap(err, "save chainID")
	}
	return nil
}
