package utils

import (
	"context"
	"testing"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/clasptest"
	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/store"
)

type panicHandler struct{}

func (panicHandler) Check(ctx clasp.Context, db clasp.KVStore, tx clasp.Tx) (*clasp.CheckResult, error) {
	panic("check boom")
}

func (panicHandler) Deliver(ctx clasp.Context, db clasp.KVStore, tx clasp.Tx) (*clasp.DeliverResult, error) {
	panic("deliver boom")
}

func TestRecovery(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	r := NewRecovery()

	if _, err := r.Check(ctx, db, &clasptest.Tx{}, panicHandler{}); !errors.ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
	if _, err := r.Deliver(ctx, db, &clasptest.Tx{}, panicHandler{}); !errors.ErrPanic.Is(err) {
		t.Fatalf("want ErrPanic, got %+v", err)
	}
}

func TestRecoveryPassesThrough(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()
	r := NewRecovery()
	h := &clasptest.Handler{}

	if _, err := r.Check(ctx, db, &clasptest.Tx{}, h); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if _, err := r.Deliver(ctx, db, &clasptest.Tx{}, h); err != nil {
		t.Fatalf("unexpected error: %+v", err)
	}
	if h.CallCount() != 2 {
		t.Fatalf("want 2 calls, got %d", h.CallCount())
	}
}
