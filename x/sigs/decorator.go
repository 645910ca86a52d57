/*
Package sigs provides basic authentication middleware to verify the
signatures on the transaction.

There are no nonces or sequences here. A transaction carries one or
more detached ed25519 signatures, each bundled with the public key that
verifies it. Replay protection is the job of the x/dedup extension,
which this package supplies with a replay-stable transaction identity
derived from the signed content.
*/
package sigs

import (
	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/errors"
)

const (
	signatureVerifyCost = 500
)

//----------------- Decorator ----------------
//
// This is just a binding from the functionality into the
// Application stack, not much business logic here.

// Decorator verifies the signatures and adds them to the context
type Decorator struct {
	allowMissingSigs bool
}

var _ clasp.Decorator = Decorator{}

// NewDecorator returns a default authentication decorator,
// which appends the chainID before checking the signature,
// and requires at least one signature to be present
func NewDecorator() Decorator {
	return Decorator{
		allowMissingSigs: false,
	}
}

// AllowMissingSigs allows us to pass along items with no signatures
func (d Decorator) AllowMissingSigs() Decorator {
	d.allowMissingSigs = true
	return d
}

// Check verifies signatures before calling down the stack.
func (d Decorator) Check(ctx clasp.Context, store clasp.KVStore, tx clasp.Tx, next clasp.Checker) (*clasp.CheckResult, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		return next.Check(ctx, store, tx)
	}

	chainID := clasp.GetChainID(ctx)
	signers, err := VerifyTxSignatures(stx, chainID)
	if err != nil {
		return nil, errors.Wrap(err, "cannot verify signatures")
	}
	if len(signers) == 0 && !d.allowMissingSigs {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}

	ctx, err = withVerified(ctx, stx, signers)
	if err != nil {
		return nil, err
	}

	res, err := next.Check(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	// The most expensive operation is the signature validation. We
	// must charge gas proportionally to the effort. We only charge for
	// the valid signatures. Invalid signatures are ignored.
	res.GasPayment += int64(len(signers) * signatureVerifyCost)
	return res, nil
}

// Deliver verifies signatures before calling down the stack.
func (d Decorator) Deliver(ctx clasp.Context, store clasp.KVStore, tx clasp.Tx, next clasp.Deliverer) (*clasp.DeliverResult, error) {
	stx, ok := tx.(SignedTx)
	if !ok {
		return next.Deliver(ctx, store, tx)
	}

	chainID := clasp.GetChainID(ctx)
	signers, err := VerifyTxSignatures(stx, chainID)
	if err != nil {
		return nil, errors.Wrap(err, "cannot verify signatures")
	}
	if len(signers) == 0 && !d.allowMissingSigs {
		return nil, errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}

	ctx, err = withVerified(ctx, stx, signers)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

// withVerified records the verified signers in the context and
// replaces the transaction hash with the replay-stable identity of the
// signed content. Everything downstream, the replay guard included,
// must key on this identity and never on the delivered bytes, which an
// observer can mutate without invalidating the signatures.
func withVerified(ctx clasp.Context, tx SignedTx, signers []clasp.Address) (clasp.Context, error) {
	ctx = withSigners(ctx, signers)
	identity, err := TxIdentity(tx, signers)
	if err != nil {
		return ctx, errors.Wrap(err, "cannot compute tx identity")
	}
	return clasp.WithTxHash(ctx, identity), nil
}
