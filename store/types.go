//nolint
package store

import "github.com/clasp-net/clasp"

// Move references for all storage types into this package
// for shorter names everywhere.

type ReadOnlyKVStore = clasp.ReadOnlyKVStore
type KVStore = clasp.KVStore
type SetDeleter = clasp.SetDeleter
type Batch = clasp.Batch
type Iterator = clasp.Iterator
type CacheableKVStore = clasp.CacheableKVStore
type KVCacheWrap = clasp.KVCacheWrap
type CommitKVStore = clasp.CommitKVStore
type CommitID = clasp.CommitID
type Model = clasp.Model
