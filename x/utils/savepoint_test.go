package utils

import (
	"context"
	"testing"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/clasptest"
	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/store"
)

// writeHandler writes the given key, value pair to the store and
// returns the preset error.
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

func (h writeHandler) Check(ctx clasp.Context, db clasp.KVStore, tx clasp.Tx) (*clasp.CheckResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &clasp.CheckResult{}, h.err
}

func (h writeHandler) Deliver(ctx clasp.Context, db clasp.KVStore, tx clasp.Tx) (*clasp.DeliverResult, error) {
	if err := db.Set(h.key, h.value); err != nil {
		return nil, err
	}
	return &clasp.DeliverResult{}, h.err
}

func TestSavepoint(t *testing.T) {
	cases := map[string]struct {
		save    Savepoint
		handler clasp.Handler
		check   bool
		wantErr error
		// key and value expected in the database after running, value
		// nil means the key must be missing
		key   []byte
		value []byte
	}{
		"check with no savepoint, error is written": {
			save:    NewSavepoint(),
			handler: writeHandler{key: []byte("a"), value: []byte("1"), err: errors.ErrState},
			check:   true,
			wantErr: errors.ErrState,
			key:     []byte("a"),
			value:   []byte("1"),
		},
		"check with savepoint, success is written": {
			save:    NewSavepoint().OnCheck(),
			handler: writeHandler{key: []byte("a"), value: []byte("1")},
			check:   true,
			key:     []byte("a"),
			value:   []byte("1"),
		},
		"check with savepoint, error is rolled back": {
			save:    NewSavepoint().OnCheck(),
			handler: writeHandler{key: []byte("a"), value: []byte("1"), err: errors.ErrState},
			check:   true,
			wantErr: errors.ErrState,
			key:     []byte("a"),
			value:   nil,
		},
		"deliver with savepoint, success is written": {
			save:    NewSavepoint().OnDeliver(),
			handler: writeHandler{key: []byte("b"), value: []byte("2")},
			key:     []byte("b"),
			value:   []byte("2"),
		},
		"deliver with savepoint, error is rolled back": {
			save:    NewSavepoint().OnDeliver(),
			handler: writeHandler{key: []byte("b"), value: []byte("2"), err: errors.ErrState},
			wantErr: errors.ErrState,
			key:     []byte("b"),
			value:   nil,
		},
		"deliver with check-only savepoint, error is written": {
			save:    NewSavepoint().OnCheck(),
			handler: writeHandler{key: []byte("b"), value: []byte("2"), err: errors.ErrState},
			wantErr: errors.ErrState,
			key:     []byte("b"),
			value:   []byte("2"),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ctx := context.Background()
			db := store.MemStore()

			var err error
			if tc.check {
				_, err = tc.save.Check(ctx, db, &clasptest.Tx{}, tc.handler)
			} else {
				_, err = tc.save.Deliver(ctx, db, &clasptest.Tx{}, tc.handler)
			}
			if tc.wantErr != nil {
				if !errors.ErrState.Is(err) {
					t.Fatalf("want ErrState, got %+v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %+v", err)
			}

			got, err := db.Get(tc.key)
			if err != nil {
				t.Fatalf("cannot read %q: %s", tc.key, err)
			}
			if string(got) != string(tc.value) {
				t.Fatalf("want %q at %q, got %q", tc.value, tc.key, got)
			}
		})
	}
}
