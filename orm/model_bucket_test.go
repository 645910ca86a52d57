package orm

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/store"
)

// counter is a test model, persisted as 8 bytes big endian.
type counter struct {
	count int64
}

var _ Model = (*counter)(nil)

func (c *counter) Marshal() ([]byte, error) {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(c.count))
	return raw, nil
}

func (c *counter) Unmarshal(raw []byte) error {
	if len(raw) != 8 {
		return errors.Wrapf(errors.ErrInput, "invalid length: %d", len(raw))
	}
	c.count = int64(binary.BigEndian.Uint64(raw))
	return nil
}

func (c *counter) Validate() error {
	if c.count < 0 {
		return errors.Wrap(errors.ErrState, "negative count")
	}
	return nil
}

func (c *counter) Copy() CloneableData {
	return &counter{count: c.count}
}

func newCounterBucket() ModelBucket {
	obj := NewSimpleObj(nil, &counter{})
	return NewModelBucket(NewBucket("cnts", obj))
}

func TestModelBucketPutGet(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	require.NoError(t, b.Put(db, []byte("c1"), &counter{count: 1}))

	var c counter
	require.NoError(t, b.One(db, []byte("c1"), &c))
	assert.Equal(t, int64(1), c.count)

	// overwrite is allowed
	require.NoError(t, b.Put(db, []byte("c1"), &counter{count: 2}))
	require.NoError(t, b.One(db, []byte("c1"), &c))
	assert.Equal(t, int64(2), c.count)
}

func TestModelBucketOneMissing(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	var c counter
	err := b.One(db, []byte("nope"), &c)
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)
}

func TestModelBucketPutInvalid(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	err := b.Put(db, []byte("c1"), &counter{count: -1})
	assert.True(t, errors.ErrState.Is(err), "%+v", err)
}

func TestModelBucketHas(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	require.NoError(t, b.Put(db, []byte("c1"), &counter{count: 1}))

	assert.NoError(t, b.Has(db, []byte("c1")))
	err := b.Has(db, []byte("unknown"))
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)
}

func TestModelBucketDelete(t *testing.T) {
	db := store.MemStore()
	b := newCounterBucket()

	require.NoError(t, b.Put(db, []byte("c1"), &counter{count: 1}))
	require.NoError(t, b.Delete(db, []byte("c1")))

	err := b.Has(db, []byte("c1"))
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)

	// deleting a missing entity reports not found
	err = b.Delete(db, []byte("c1"))
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)
}

func TestBucketQuery(t *testing.T) {
	db := store.MemStore()
	obj := NewSimpleObj(nil, &counter{})
	bucket := NewBucket("cnts", obj)
	b := NewModelBucket(bucket)

	require.NoError(t, b.Put(db, []byte("aa"), &counter{count: 5}))
	require.NoError(t, b.Put(db, []byte("ab"), &counter{count: 6}))
	require.NoError(t, b.Put(db, []byte("zz"), &counter{count: 7}))

	qr := clasp.NewQueryRouter()
	b.Register("counters", qr)
	h := qr.Handler("/counters")
	require.NotNil(t, h)

	// exact key query
	res, err := h.Query(db, clasp.KeyQueryMod, []byte("aa"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, bucket.DBKey([]byte("aa")), res[0].Key)

	// miss returns nothing
	res, err = h.Query(db, clasp.KeyQueryMod, []byte("na"))
	require.NoError(t, err)
	assert.Len(t, res, 0)

	// prefix query returns all matches in order
	res, err = h.Query(db, clasp.PrefixQueryMod, []byte("a"))
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, bucket.DBKey([]byte("aa")), res[0].Key)
	assert.Equal(t, bucket.DBKey([]byte("ab")), res[1].Key)
}

func TestPrefixRange(t *testing.T) {
	cases := map[string]struct {
		prefix    []byte
		wantStart []byte
		wantEnd   []byte
	}{
		"empty prefix covers everything": {
			prefix:    nil,
			wantStart: nil,
			wantEnd:   nil,
		},
		"simple increment": {
			prefix:    []byte{1, 3, 4},
			wantStart: []byte{1, 3, 4},
			wantEnd:   []byte{1, 3, 5},
		},
		"carry on overflow": {
			prefix:    []byte{1, 3, 0xff},
			wantStart: []byte{1, 3, 0xff},
			wantEnd:   []byte{1, 4},
		},
		"all 0xff has no upper bound": {
			prefix:    []byte{0xff, 0xff},
			wantStart: []byte{0xff, 0xff},
			wantEnd:   nil,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			start, end := prefixRange(tc.prefix)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}
