package dedup

import (
	"github.com/clasp-net/clasp/errors"
)

var (
	// ErrDuplicateTx is returned when a transaction with the same hash
	// was already executed on this chain.
	ErrDuplicateTx = errors.Register(1100, "transaction already executed")
)
