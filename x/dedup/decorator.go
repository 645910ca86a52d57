/*
Package dedup refuses any transaction whose identity was executed on
this chain before.

The identity is the transaction hash carried in the context. For
signed transactions the sigs decorator sets it to a digest of the sign
bytes and the signer set, so padding the envelope with unknown fields
or repeating a signature entry does not mint a fresh identity. The
decorator keeps a registry of applied identities and rejects repeats;
a captured transaction cannot be replayed. The registry mark is written
only after the wrapped execution succeeded, so a failed transaction
leaves no trace and may be retried.
*/
package dedup

import (
	"encoding/binary"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/errors"
)

// appliedPrefix is the registry namespace inside the kv store.
var appliedPrefix = []byte("applied:")

// Decorator rejects transactions that were already executed.
type Decorator struct{}

var _ clasp.Decorator = Decorator{}

// NewDecorator creates a replay protection decorator.
func NewDecorator() Decorator {
	return Decorator{}
}

// Check rejects transactions already recorded as applied. The hash is
// not recorded here: until the transaction is delivered it may still
// be resubmitted.
func (d Decorator) Check(ctx clasp.Context, store clasp.KVStore, tx clasp.Tx, next clasp.Checker) (*clasp.CheckResult, error) {
	key, err := registryKey(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := refuseApplied(store, key); err != nil {
		return nil, err
	}
	return next.Check(ctx, store, tx)
}

// Deliver rejects transactions already recorded as applied, and on
// success records this one. The mark is written only after the wrapped
// execution returned without error, so a failed transaction is never
// recorded as applied.
func (d Decorator) Deliver(ctx clasp.Context, store clasp.KVStore, tx clasp.Tx, next clasp.Deliverer) (*clasp.DeliverResult, error) {
	key, err := registryKey(ctx, tx)
	if err != nil {
		return nil, err
	}
	if err := refuseApplied(store, key); err != nil {
		return nil, err
	}

	res, err := next.Deliver(ctx, store, tx)
	if err != nil {
		return nil, err
	}

	height, _ := clasp.GetHeight(ctx)
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, uint64(height))
	if err := store.Set(key, value); err != nil {
		return nil, err
	}
	return res, nil
}

// AppliedAt returns the block height the transaction with the given
// hash was executed at, or ErrNotFound.
func AppliedAt(store clasp.ReadOnlyKVStore, txHash []byte) (int64, error) {
	raw, err := store.Get(append(appliedPrefix, txHash...))
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, errors.ErrNotFound
	}
	return int64(binary.BigEndian.Uint64(raw)), nil
}

// registryKey uses the transaction hash from the context. For signed
// transactions the sigs decorator runs first and has replaced it with
// the identity of the signed content, so the registry never keys on
// malleable envelope bytes.
func registryKey(ctx clasp.Context, tx clasp.Tx) ([]byte, error) {
	hash := clasp.GetTxHash(ctx)
	if hash == nil {
		// no precomputed hash, derive it from the serialized form
		raw, err := tx.Marshal()
		if err != nil {
			return nil, errors.Wrap(err, "cannot serialize tx")
		}
		hash = clasp.TxHash(raw)
	}
	return append(appliedPrefix, hash...), nil
}

func refuseApplied(store clasp.ReadOnlyKVStore, key []byte) error {
	ok, err := store.Has(key)
	if err != nil {
		return err
	}
	if ok {
		return errors.Wrap(ErrDuplicateTx, "refused by replay guard")
	}
	return nil
}
