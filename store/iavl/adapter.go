package iavl

import (
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"

	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/store"
)

// DefaultCacheSize is how many nodes the iavl tree keeps in memory.
var DefaultCacheSize = 10000

// CommitStore manages a iavl committed state.
type CommitStore struct {
	tree *iavl.MutableTree
	// numHistory is how many old versions we hold on disk before
	// pruning. 0 means keep everything.
	numHistory int64
}

var _ store.CommitKVStore = CommitStore{}

// NewCommitStore creates a new store with disk backing.
func NewCommitStore(dir, name string) CommitStore {
	db := dbm.NewDB(name, dbm.GoLevelDBBackend, dir)
	return CommitStoreFromDB(db)
}

// MockCommitStore creates a new in-memory store, only for tests.
func MockCommitStore() CommitStore {
	return CommitStoreFromDB(dbm.NewMemDB())
}

// CommitStoreFromDB wraps a CommitStore around an open database.
func CommitStoreFromDB(db dbm.DB) CommitStore {
	tree := iavl.NewMutableTree(db, DefaultCacheSize)
	return CommitStore{
		tree:       tree,
		numHistory: 20,
	}
}

// CommitStoreFromTree wraps a CommitStore around an already loaded
// tree. Used by the block replay command to rerun blocks against a
// rolled back state.
func CommitStoreFromTree(tree *iavl.MutableTree) CommitStore {
	return CommitStore{
		tree:       tree,
		numHistory: 0,
	}
}

// Get returns the value at the last committed state.
// Returns nil iff key doesn't exist.
func (s CommitStore) Get(key []byte) ([]byte, error) {
	version := s.tree.Version()
	_, val := s.tree.GetVersioned(key, version)
	return val, nil
}

// Commit the next version to disk, and returns info.
func (s CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}

	// release an old version of history
	if s.numHistory > 0 && s.numHistory < version {
		toRelease := version - s.numHistory
		// not all versions must exist, ignore missing ones
		if s.tree.VersionExists(toRelease) {
			if err := s.tree.DeleteVersion(toRelease); err != nil {
				return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
			}
		}
	}

	return store.CommitID{
		Version: version,
		Hash:    hash,
	}, nil
}

// LoadLatestVersion loads the latest persisted version. If there was a
// crash during the last commit, it is guaranteed to return a stable
// state, even if older.
func (s CommitStore) LoadLatestVersion() error {
	_, err := s.tree.Load()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

// LatestVersion returns info on the latest version saved to disk.
func (s CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{
		Version: s.tree.Version(),
		Hash:    s.tree.Hash(),
	}, nil
}

// Adapter returns the working tree as a cacheable store. All writes go
// straight into the tree and become part of the next Commit.
func (s CommitStore) Adapter() store.CacheableKVStore {
	return store.BTreeCacheable{KVStore: treeWriter{s.tree}}
}

// CacheWrap gives us a savepoint to perform actions on.
func (s CommitStore) CacheWrap() store.KVCacheWrap {
	return s.Adapter().CacheWrap()
}

// treeWriter exposes the working iavl tree as a KVStore. Writes happen
// directly, the btree cache above handles the staging.
type treeWriter struct {
	tree *iavl.MutableTree
}

var _ store.KVStore = treeWriter{}

// Set sets a key in the working tree.
func (t treeWriter) Set(key, value []byte) error {
	t.tree.Set(key, value)
	return nil
}

// Delete removes a key from the working tree.
func (t treeWriter) Delete(key []byte) error {
	t.tree.Remove(key)
	return nil
}

// Get returns nil iff key doesn't exist. Panics on nil key.
func (t treeWriter) Get(key []byte) ([]byte, error) {
	_, val := t.tree.Get(key)
	return val, nil
}

// Has checks if a key exists. Panics on nil key.
func (t treeWriter) Has(key []byte) (bool, error) {
	return t.tree.Has(key), nil
}

// Iterator over a domain of keys in ascending order. End is exclusive.
func (t treeWriter) Iterator(start, end []byte) (store.Iterator, error) {
	iter := newLazyIterator()
	go func() {
		t.tree.IterateRange(start, end, true, iter.add)
		iter.finished()
	}()
	if err := iter.Next(); err != nil {
		return nil, err
	}
	return iter, nil
}

// ReverseIterator over a domain of keys in descending order. End is
// exclusive.
func (t treeWriter) ReverseIterator(start, end []byte) (store.Iterator, error) {
	iter := newLazyIterator()
	go func() {
		t.tree.IterateRange(start, end, false, iter.add)
		iter.finished()
	}()
	if err := iter.Next(); err != nil {
		return nil, err
	}
	return iter, nil
}

// NewBatch returns a batch that can write multiple ops atomically.
func (t treeWriter) NewBatch() store.Batch {
	return store.NewNonAtomicBatch(t)
}
