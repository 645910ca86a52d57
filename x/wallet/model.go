package wallet

import (
	"crypto/sha256"

	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/orm"
)

var _ orm.Model = (*Wallet)(nil)

// Validate ensures the wallet is consistent: a proper owner address, a
// name, and a history digest matching the history length.
func (w *Wallet) Validate() error {
	if err := w.PubKey.Validate(); err != nil {
		return errors.Wrap(err, "pub key")
	}
	if w.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	switch {
	case w.HistoryLen == 0 && len(w.HistoryHash) != 0:
		return errors.Wrap(errors.ErrState, "history hash without entries")
	case w.HistoryLen > 0 && len(w.HistoryHash) != sha256.Size:
		return errors.Wrapf(errors.ErrState, "history hash length: %d", len(w.HistoryHash))
	}
	return nil
}

// Copy produces a deep copy of the wallet.
func (w *Wallet) Copy() orm.CloneableData {
	return &Wallet{
		PubKey:         w.PubKey.Clone(),
		Name:           w.Name,
		Balance:        w.Balance,
		RetainedAmount: w.RetainedAmount,
		HistoryLen:     w.HistoryLen,
		HistoryHash:    append([]byte(nil), w.HistoryHash...),
	}
}

var _ orm.Model = (*PendingTransfer)(nil)

// Validate ensures the pending transfer is consistent.
func (t *PendingTransfer) Validate() error {
	if err := t.From.Validate(); err != nil {
		return errors.Wrap(err, "from")
	}
	if err := t.To.Validate(); err != nil {
		return errors.Wrap(err, "to")
	}
	if err := t.Approver.Validate(); err != nil {
		return errors.Wrap(err, "approver")
	}
	if t.From.Equals(t.To) {
		return errors.Wrap(errors.ErrInput, "transfer to self")
	}
	if t.Amount == 0 {
		return errors.Wrap(ErrInvalidAmount, "zero amount")
	}
	return nil
}

// Copy produces a deep copy of the pending transfer.
func (t *PendingTransfer) Copy() orm.CloneableData {
	return &PendingTransfer{
		From:      t.From.Clone(),
		To:        t.To.Clone(),
		Approver:  t.Approver.Clone(),
		Amount:    t.Amount,
		Finalized: t.Finalized,
	}
}

var _ orm.Model = (*Supply)(nil)

// Validate always passes, any issued value is a valid supply record.
func (s *Supply) Validate() error {
	return nil
}

// Copy produces a copy of the supply record.
func (s *Supply) Copy() orm.CloneableData {
	return &Supply{Issued: s.Issued}
}

var _ orm.Model = (*HistoryEntry)(nil)

// Validate ensures the entry carries a proper transaction hash.
func (e *HistoryEntry) Validate() error {
	if len(e.TxHash) != sha256.Size {
		return errors.Wrapf(errors.ErrInput, "tx hash length: %d", len(e.TxHash))
	}
	return nil
}

// Copy produces a copy of the history entry.
func (e *HistoryEntry) Copy() orm.CloneableData {
	return &HistoryEntry{TxHash: append([]byte(nil), e.TxHash...)}
}

// NewWalletBucket returns a bucket for keeping wallets, keyed by the
// owner address.
func NewWalletBucket() orm.ModelBucket {
	return orm.NewModelBucket(orm.NewBucket("wallet", orm.NewSimpleObj(nil, &Wallet{})))
}

// NewTransferBucket returns a bucket for keeping pending transfers,
// keyed by the hash of the transfer transaction.
func NewTransferBucket() orm.ModelBucket {
	return orm.NewModelBucket(orm.NewBucket("ptrans", orm.NewSimpleObj(nil, &PendingTransfer{})))
}

// NewSupplyBucket returns a bucket holding the single total supply
// record.
func NewSupplyBucket() orm.ModelBucket {
	return orm.NewModelBucket(orm.NewBucket("supply", orm.NewSimpleObj(nil, &Supply{})))
}
