package utils

import (
	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/errors"
)

// Recovery turns a panic raised anywhere below it into a regular
// error, so one broken transaction cannot take down the node.
type Recovery struct{}

var _ clasp.Decorator = Recovery{}

// NewRecovery returns a panic recovering decorator.
func NewRecovery() Recovery {
	return Recovery{}
}

// Check converts a panic in the rest of the stack into an error.
func (r Recovery) Check(ctx clasp.Context, store clasp.KVStore, tx clasp.Tx, next clasp.Checker) (_ *clasp.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver converts a panic in the rest of the stack into an error.
func (r Recovery) Deliver(ctx clasp.Context, store clasp.KVStore, tx clasp.Tx, next clasp.Deliverer) (_ *clasp.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
