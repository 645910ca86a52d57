package utils

import (
	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/errors"
)

// Savepoint runs the rest of the stack inside a cache wrap of the
// store and writes the cache back only when the call succeeds. An
// error discards every write made below it, so a failed transaction
// leaves no partial state.
type Savepoint struct {
	onCheck   bool
	onDeliver bool
}

var _ clasp.Decorator = Savepoint{}

// NewSavepoint returns a savepoint decorator that stays inactive until
// armed with OnCheck or OnDeliver.
func NewSavepoint() Savepoint {
	return Savepoint{}
}

// OnCheck arms the savepoint for CheckTx calls.
func (s Savepoint) OnCheck() Savepoint {
	return Savepoint{
		onCheck:   true,
		onDeliver: s.onDeliver,
	}
}

// OnDeliver arms the savepoint for DeliverTx calls.
func (s Savepoint) OnDeliver() Savepoint {
	return Savepoint{
		onCheck:   s.onCheck,
		onDeliver: true,
	}
}

// Check isolates the rest of the stack in a cache wrap when armed.
func (s Savepoint) Check(ctx clasp.Context, store clasp.KVStore, tx clasp.Tx, next clasp.Checker) (*clasp.CheckResult, error) {
	if !s.onCheck {
		return next.Check(ctx, store, tx)
	}
	cstore, ok := store.(clasp.CacheableKVStore)
	if !ok {
		return next.Check(ctx, store, tx)
	}

	cache := cstore.CacheWrap()
	res, err := next.Check(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "cannot write savepoint")
	}
	return res, nil
}

// Deliver isolates the rest of the stack in a cache wrap when armed.
func (s Savepoint) Deliver(ctx clasp.Context, store clasp.KVStore, tx clasp.Tx, next clasp.Deliverer) (*clasp.DeliverResult, error) {
	if !s.onDeliver {
		return next.Deliver(ctx, store, tx)
	}
	cstore, ok := store.(clasp.CacheableKVStore)
	if !ok {
		return next.Deliver(ctx, store, tx)
	}

	cache := cstore.CacheWrap()
	res, err := next.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		return nil, errors.Wrap(err, "cannot write savepoint")
	}
	return res, nil
}
