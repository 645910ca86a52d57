package clasp

// ReadOnlyKVStore is a simple interface to read data.
type ReadOnlyKVStore interface {
	// Get returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) ([]byte, error)

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) (bool, error)

	// Iterator over a domain of keys in ascending order. End is
	// exclusive. Start must be less than end, or the Iterator is
	// invalid. CONTRACT: No writes may happen within a domain while
	// an iterator exists over it.
	Iterator(start, end []byte) (Iterator, error)

	// ReverseIterator over a domain of keys in descending order.
	// End is exclusive. Start must be greater than end, or the
	// Iterator is invalid.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// SetDeleter is a minimal interface for writing.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is a simple interface to get/set data.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter

	// NewBatch returns a batch that can write multiple ops
	// atomically.
	NewBatch() Batch
}

// Batch can write multiple ops atomically to an underlying KVStore.
type Batch interface {
	SetDeleter
	Write() error
}

// Iterator allows iteration over a set of key value pairs.
type Iterator interface {
	// Valid returns whether the current position is valid. Once
	// invalid, an Iterator is forever invalid.
	Valid() bool

	// Next moves the iterator to the next sequential key in the
	// database. Panics if Valid returns false.
	Next() error

	// Key returns the key of the cursor. Panics if Valid returns
	// false. CONTRACT: key is readonly.
	Key() []byte

	// Value returns the value of the cursor. Panics if Valid
	// returns false. CONTRACT: value is readonly.
	Value() []byte

	// Close releases the Iterator.
	Close()
}

// CacheableKVStore is a KVStore that supports CacheWrapping.
//
// CacheWrap() does not return a Committer, since Commit() on
// cache-wraps makes no sense.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a scratch-pad of uncommitted data that is visible to
// all queries on it. At the end, call Write to flush it to the parent
// store, or Discard to drop it. This is the transactional boundary of
// the ledger: a transaction's mutations either Write together or are
// Discarded together.
type KVCacheWrap interface {
	// CacheableKVStore allows cache wraps to nest.
	CacheableKVStore

	// Write syncs with the underlying store.
	Write() error

	// Discard invalidates this CacheWrap and releases all data.
	Discard()
}

// CommitKVStore is a store that can persist state to disk, load it on
// start up, and report the version history.
type CommitKVStore interface {
	// Get returns the value at the last committed state. Returns
	// nil iff key doesn't exist.
	Get(key []byte) ([]byte, error)

	// CacheWrap returns a scratch-pad to perform actions on.
	CacheWrap() KVCacheWrap

	// Commit the next version to disk, and return its identity.
	Commit() (CommitID, error)

	// LoadLatestVersion loads the latest persisted version. If
	// there was a crash during the last commit, it is guaranteed to
	// return a stable state, even if older.
	LoadLatestVersion() error

	// LatestVersion returns info on the latest version saved to
	// disk.
	LatestVersion() (CommitID, error)
}

// CommitID contains the tree version number and its merkle root.
type CommitID struct {
	Version int64
	Hash    []byte
}
