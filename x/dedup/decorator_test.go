package dedup

import (
	"context"
	"testing"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/clasptest"
	"github.com/clasp-net/clasp/clasptest/assert"
	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/store"
)

func ctxWithTx(height int64, raw []byte) clasp.Context {
	ctx := clasp.WithHeight(context.Background(), height)
	return clasp.WithTxHash(ctx, clasp.TxHash(raw))
}

func TestDeliverRecordsAndRefuses(t *testing.T) {
	db := store.MemStore()
	d := NewDecorator()
	h := &clasptest.Handler{}
	tx := &clasptest.Tx{}

	ctx := ctxWithTx(5, []byte("raw tx bytes"))

	// first delivery passes and records the hash
	_, err := d.Deliver(ctx, db, tx, h)
	assert.Nil(t, err)
	assert.Equal(t, 1, h.DeliverCallCount())

	height, err := AppliedAt(db, clasp.TxHash([]byte("raw tx bytes")))
	assert.Nil(t, err)
	assert.Equal(t, int64(5), height)

	// the same hash is refused on both paths, at any height
	later := ctxWithTx(17, []byte("raw tx bytes"))
	_, err = d.Deliver(later, db, tx, h)
	assert.IsErr(t, ErrDuplicateTx, err)
	_, err = d.Check(later, db, tx, h)
	assert.IsErr(t, ErrDuplicateTx, err)
	assert.Equal(t, 1, h.DeliverCallCount())

	// a different transaction is still welcome
	other := ctxWithTx(17, []byte("other tx bytes"))
	_, err = d.Deliver(other, db, tx, h)
	assert.Nil(t, err)
	assert.Equal(t, 2, h.DeliverCallCount())
}

func TestCheckDoesNotRecord(t *testing.T) {
	db := store.MemStore()
	d := NewDecorator()
	h := &clasptest.Handler{}
	tx := &clasptest.Tx{}

	ctx := ctxWithTx(5, []byte("raw tx bytes"))

	// checking twice is fine, the mempool may revalidate
	_, err := d.Check(ctx, db, tx, h)
	assert.Nil(t, err)
	_, err = d.Check(ctx, db, tx, h)
	assert.Nil(t, err)

	_, err = AppliedAt(db, clasp.TxHash([]byte("raw tx bytes")))
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestFailedDeliveryIsNotRecorded(t *testing.T) {
	db := store.MemStore()
	d := NewDecorator()
	h := &clasptest.Handler{DeliverErr: errors.ErrState}
	tx := &clasptest.Tx{}

	ctx := ctxWithTx(5, []byte("raw tx bytes"))

	_, err := d.Deliver(ctx, db, tx, h)
	assert.IsErr(t, errors.ErrState, err)

	// a failed transaction may be fixed and submitted again
	_, err = AppliedAt(db, clasp.TxHash([]byte("raw tx bytes")))
	assert.IsErr(t, errors.ErrNotFound, err)

	h.DeliverErr = nil
	_, err = d.Deliver(ctx, db, tx, h)
	assert.Nil(t, err)
}
