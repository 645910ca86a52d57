package store

import (
	"bytes"
	"crypto/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBTreeCacheGetSet does basic sanity checks on our cache
//
// Other tests should handle deletes, setting same value,
// iterating over ranges, and general fuzzing
func TestBTreeCacheGetSet(t *testing.T) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}

	// base is the root of our data, we can layer on top and
	// all queries should work
	base := devnull.CacheWrap()

	// make sure the btree is empty at start but returns results
	// that are writen to it
	k, v := []byte("french"), []byte("fry")
	assertGet(t, base, k, nil)
	assertHas(t, base, k, false)
	require.NoError(t, base.Set(k, v))
	assertGet(t, base, k, v)
	assertHas(t, base, k, true)

	// now layer another btree on top and make sure that we get
	// base data
	cache := base.CacheWrap()
	assertGet(t, cache, k, v)
	assertHas(t, cache, k, true)

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	assertGet(t, cache, k2, nil)
	assertHas(t, cache, k2, false)
	require.NoError(t, cache.Set(k2, v2))
	assertGet(t, cache, k2, v2)
	assertGet(t, base, k2, nil)
	assertHas(t, cache, k2, true)
	assertHas(t, base, k2, false)

	// we can write the cache to the base layer...
	require.NoError(t, cache.Write())
	assertGet(t, base, k, v)
	assertGet(t, base, k2, v2)
	assertHas(t, base, k, true)
	assertHas(t, base, k2, true)

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	assertGet(t, c2, k, v)
	assertGet(t, c2, k2, v2)
	require.NoError(t, c2.Set(k3, v3))
	c2.Discard()

	// and commit another
	c3 := base.CacheWrap()
	assertGet(t, c3, k, v)
	assertGet(t, c3, k2, v2)
	require.NoError(t, c3.Delete(k))
	require.NoError(t, c3.Write())

	// make sure it commits proper
	assertGet(t, base, k, nil)
	assertGet(t, base, k2, v2)
	assertGet(t, base, k3, nil)

	// and to test devnull....
	require.NoError(t, base.Write())
	assertGet(t, devnull, k2, nil)
}

func assertGet(t testing.TB, db ReadOnlyKVStore, key, want []byte) {
	t.Helper()
	got, err := db.Get(key)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func assertHas(t testing.TB, db ReadOnlyKVStore, key []byte, want bool) {
	t.Helper()
	got, err := db.Has(key)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestBTreeCacheConflicts checks that we can handle
// overwriting values and deleting underlying values
func TestBTreeCacheConflicts(t *testing.T) {
	// devnull is a black hole... just to keep our types proper
	devnull := BTreeCacheable{EmptyKVStore{}}

	// make 10 keys and 20 values....
	ks := randKeys(10, 16)
	vs := randKeys(20, 40)

	cases := [...]struct {
		parentOps     []Op
		childOps      []Op
		parentQueries []Model // Key is what we query, Value is what we expect
		childQueries  []Model // Key is what we query, Value is what we expect
	}{
		// overwrite one, delete another, add a third
		0: {
			[]Op{SetOp(ks[1], vs[1]), SetOp(ks[2], vs[2])},
			[]Op{SetOp(ks[1], vs[11]), SetOp(ks[3], vs[7]), DelOp(ks[2])},
			[]Model{pair(ks[1], vs[1]), pair(ks[2], vs[2]), pair(ks[3], nil)},
			[]Model{pair(ks[1], vs[11]), pair(ks[2], nil), pair(ks[3], vs[7])},
		},
	}

	for i, tc := range cases {
		parent := devnull.CacheWrap()
		for _, op := range tc.parentOps {
			require.NoError(t, op.Apply(parent))
		}

		child := parent.CacheWrap()
		for _, op := range tc.childOps {
			require.NoError(t, op.Apply(child))
		}

		// now check the parent is unaffected
		for j, q := range tc.parentQueries {
			res, err := parent.Get(q.Key)
			require.NoError(t, err)
			assert.Equal(t, q.Value, res, "%d / %d", i, j)
			has, err := parent.Has(q.Key)
			require.NoError(t, err)
			assert.Equal(t, q.Value != nil, has, "%d / %d", i, j)
		}

		// the child shows changes
		for j, q := range tc.childQueries {
			res, err := child.Get(q.Key)
			require.NoError(t, err)
			assert.Equal(t, q.Value, res, "%d / %d", i, j)
			has, err := child.Has(q.Key)
			require.NoError(t, err)
			assert.Equal(t, q.Value != nil, has, "%d / %d", i, j)
		}

		// write child to parent and make sure it also shows proper data
		require.NoError(t, child.Write())
		for j, q := range tc.childQueries {
			res, err := parent.Get(q.Key)
			require.NoError(t, err)
			assert.Equal(t, q.Value, res, "%d / %d", i, j)
			has, err := parent.Has(q.Key)
			require.NoError(t, err)
			assert.Equal(t, q.Value != nil, has, "%d / %d", i, j)
		}
	}
}

func pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// TestSliceIterator makes sure the basic slice iterator works
func TestSliceIterator(t *testing.T) {
	const Size = 10

	ks := randKeys(Size, 8)
	vs := randKeys(Size, 40)

	models := make([]Model, Size)
	for i := 0; i < Size; i++ {
		models[i].Key = ks[i]
		models[i].Value = vs[i]
	}

	// make sure proper iteration works
	iter, i := NewSliceIterator(models), 0
	for ; iter.Valid(); require.NoError(t, iter.Next()) {
		assert.True(t, i < Size)
		assert.Equal(t, ks[i], iter.Key())
		assert.Equal(t, vs[i], iter.Value())
		i++
	}

	// iterator is invalid after close
	trash := NewSliceIterator(models)
	assert.True(t, trash.Valid())
	trash.Close()
	assert.False(t, trash.Valid())
}

// TestBTreeCacheBasicIterator makes sure the basic iterator
// works. Includes random deletes, but not nested iterators.
func TestBTreeCacheBasicIterator(t *testing.T) {
	const Size = 50
	const DeleteCount = 20
	const TotalSize = Size + DeleteCount

	models := make([]Model, TotalSize)
	for i := 0; i < TotalSize; i++ {
		models[i].Key = randBytes(8)
		models[i].Value = randBytes(40)
	}

	devnull := BTreeCacheable{EmptyKVStore{}}
	base := devnull.CacheWrap()
	// add them all to the cache
	for i := 0; i < TotalSize; i++ {
		require.NoError(t, base.Set(models[i].Key, models[i].Value))
	}
	// delete the first chunk
	for i := 0; i < DeleteCount; i++ {
		require.NoError(t, base.Delete(models[i].Key))
	}
	models = models[DeleteCount:]

	// sort all remaining key/value pairs... this is our expected results
	sort.Slice(models, func(i, j int) bool {
		return bytes.Compare(models[i].Key, models[j].Key) < 0
	})

	// iterate over everything
	verifyIterator(t, models, iterate(t, base, nil, nil, false))
	// iterate with lower end defined
	verifyIterator(t, models[10:], iterate(t, base, models[10].Key, nil, false))
	// iterate with upper end defined
	verifyIterator(t, models[:Size-8], iterate(t, base, nil, models[Size-8].Key, false))
	// iterate with both ends defined
	verifyIterator(t, models[17:28], iterate(t, base, models[17].Key, models[28].Key, false))

	// and now in reverse....
	verifyIterator(t, reverse(models), iterate(t, base, nil, nil, true))
	// iterate with lower end defined
	verifyIterator(t, reverse(models[34:]), iterate(t, base, models[34].Key, nil, true))
	// iterate with upper end defined
	verifyIterator(t, reverse(models[:19]), iterate(t, base, nil, models[19].Key, true))
	// iterate with both ends defined
	verifyIterator(t, reverse(models[6:26]), iterate(t, base, models[6].Key, models[26].Key, true))
}

// TestBTreeCacheWrapIterator iterates over ranges that span both
// the parent and child caches, combining new values, overwrites,
// and deletes.
func TestBTreeCacheWrapIterator(t *testing.T) {
	devnull := BTreeCacheable{EmptyKVStore{}}
	parent := devnull.CacheWrap()

	pairs := []Model{
		pair([]byte("aaa"), []byte("1")),
		pair([]byte("ccc"), []byte("2")),
		pair([]byte("eee"), []byte("3")),
		pair([]byte("ggg"), []byte("4")),
	}
	for _, p := range pairs {
		require.NoError(t, parent.Set(p.Key, p.Value))
	}

	child := parent.CacheWrap()
	// new key between existing ones
	require.NoError(t, child.Set([]byte("bbb"), []byte("5")))
	// overwrite an existing key
	require.NoError(t, child.Set([]byte("ccc"), []byte("6")))
	// delete an existing key
	require.NoError(t, child.Delete([]byte("eee")))

	expect := []Model{
		pair([]byte("aaa"), []byte("1")),
		pair([]byte("bbb"), []byte("5")),
		pair([]byte("ccc"), []byte("6")),
		pair([]byte("ggg"), []byte("4")),
	}

	verifyIterator(t, expect, iterate(t, child, nil, nil, false))
	verifyIterator(t, reverse(expect), iterate(t, child, nil, nil, true))

	// the parent is unaffected until the child is written
	verifyIterator(t, pairs, iterate(t, parent, nil, nil, false))
	require.NoError(t, child.Write())
	verifyIterator(t, expect, iterate(t, parent, nil, nil, false))
}

func iterate(t testing.TB, db ReadOnlyKVStore, start, end []byte, reverse bool) Iterator {
	t.Helper()
	var (
		iter Iterator
		err  error
	)
	if reverse {
		iter, err = db.ReverseIterator(start, end)
	} else {
		iter, err = db.Iterator(start, end)
	}
	require.NoError(t, err)
	return iter
}

func verifyIterator(t *testing.T, models []Model, iter Iterator) {
	t.Helper()
	// make sure proper iteration works
	for i := 0; i < len(models); i++ {
		require.True(t, iter.Valid(), "%d", i)
		assert.Equal(t, models[i].Key, iter.Key(), "%d", i)
		assert.Equal(t, models[i].Value, iter.Value(), "%d", i)
		require.NoError(t, iter.Next())
	}
	assert.False(t, iter.Valid())
	iter.Close()
}

// reverse returns a copy of the slice with elements in reverse order
func reverse(models []Model) []Model {
	max := len(models)
	res := make([]Model, max)
	for i := 0; i < max; i++ {
		res[i] = models[max-1-i]
	}
	return res
}

// randKeys returns a slice of count keys, all of length
func randKeys(count, length int) [][]byte {
	res := make([][]byte, count)
	for i := 0; i < count; i++ {
		res[i] = randBytes(length)
	}
	return res
}

func randBytes(length int) []byte {
	res := make([]byte, length)
	rand.Read(res)
	return res
}
