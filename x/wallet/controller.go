package wallet

import (
	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/orm"
)

// supplyKey is the only key used in the supply bucket.
var supplyKey = []byte("total")

// ApproverPolicy decides whether a transfer may name the given address
// as approver. It runs after the sender and receiver wallets were
// verified to exist.
type ApproverPolicy func(db clasp.ReadOnlyKVStore, from, to, approver clasp.Address) error

// DefaultApproverPolicy requires the approver to be an existing wallet
// distinct from the receiver. The sender may name itself and release
// the escrow later on its own. The receiver is refused, a receiver
// approving its own credit would make the escrow pointless.
func DefaultApproverPolicy() ApproverPolicy {
	wallets := NewWalletBucket()
	return func(db clasp.ReadOnlyKVStore, from, to, approver clasp.Address) error {
		if approver.Equals(to) {
			return errors.Wrap(ErrBadApprover, "approver is the receiver")
		}
		switch err := wallets.Has(db, approver); {
		case err == nil:
			return nil
		case errors.ErrNotFound.Is(err):
			return errors.Wrap(ErrBadApprover, "approver has no wallet")
		default:
			return err
		}
	}
}

// Controller implements the state transitions of the currency ledger.
// All methods mutate the store only through the given KVStore, so a
// surrounding savepoint makes each transition atomic.
type Controller struct {
	wallets   orm.ModelBucket
	transfers orm.ModelBucket
	supply    orm.ModelBucket
	history   HistoryBucket
	policy    ApproverPolicy
}

// NewController returns a controller using the given approver policy,
// or the default policy when nil is given.
func NewController(policy ApproverPolicy) *Controller {
	if policy == nil {
		policy = DefaultApproverPolicy()
	}
	return &Controller{
		wallets:   NewWalletBucket(),
		transfers: NewTransferBucket(),
		supply:    NewSupplyBucket(),
		history:   NewHistoryBucket(),
		policy:    policy,
	}
}

// CreateWallet registers a wallet for the owner and records the
// creating transaction as the first history entry.
func (c *Controller) CreateWallet(db clasp.KVStore, owner clasp.Address, name string, txHash []byte) (*Wallet, error) {
	switch err := c.wallets.Has(db, owner); {
	case err == nil:
		return nil, errors.Wrapf(ErrWalletExists, "address %s", owner)
	case errors.ErrNotFound.Is(err):
		// continue
	default:
		return nil, err
	}

	w := &Wallet{PubKey: owner, Name: name}
	if err := c.history.Append(db, w, txHash); err != nil {
		return nil, err
	}
	if err := c.wallets.Put(db, owner, w); err != nil {
		return nil, err
	}
	return w, nil
}

// Issue mints the amount into the owner wallet and accounts it in the
// total supply.
func (c *Controller) Issue(db clasp.KVStore, owner clasp.Address, amount uint64, txHash []byte) (*Wallet, error) {
	if amount == 0 {
		return nil, errors.Wrap(ErrInvalidAmount, "zero issue")
	}
	w, err := c.Wallet(db, owner)
	if err != nil {
		return nil, err
	}
	if w.Balance+amount < w.Balance {
		return nil, errors.Wrap(ErrInvalidAmount, "balance overflow")
	}
	supply, err := c.loadSupply(db)
	if err != nil {
		return nil, err
	}
	if supply.Issued+amount < supply.Issued {
		return nil, errors.Wrap(ErrInvalidAmount, "supply overflow")
	}

	w.Balance += amount
	supply.Issued += amount
	if err := c.history.Append(db, w, txHash); err != nil {
		return nil, err
	}
	if err := c.wallets.Put(db, owner, w); err != nil {
		return nil, err
	}
	if err := c.supply.Put(db, supplyKey, supply); err != nil {
		return nil, err
	}
	return w, nil
}

// Retain moves the transfer amount from the sender balance into the
// retained funds and records a pending transfer under the hash of the
// transfer transaction.
func (c *Controller) Retain(db clasp.KVStore, msg *TransferMsg, txHash []byte) (*PendingTransfer, error) {
	if msg.From.Equals(msg.To) {
		return nil, errors.Wrap(errors.ErrInput, "transfer to self")
	}
	sender, err := c.Wallet(db, msg.From)
	if err != nil {
		return nil, err
	}
	if _, err := c.Wallet(db, msg.To); err != nil {
		return nil, err
	}
	if err := c.policy(db, msg.From, msg.To, msg.Approver); err != nil {
		return nil, err
	}
	if sender.Balance < msg.Amount {
		return nil, errors.Wrapf(ErrInsufficientFunds, "balance %d, transfer %d", sender.Balance, msg.Amount)
	}
	if sender.RetainedAmount+msg.Amount < sender.RetainedAmount {
		return nil, errors.Wrap(ErrInvalidAmount, "retained overflow")
	}

	t := &PendingTransfer{
		From:     msg.From,
		To:       msg.To,
		Approver: msg.Approver,
		Amount:   msg.Amount,
	}
	sender.Balance -= msg.Amount
	sender.RetainedAmount += msg.Amount
	if err := c.history.Append(db, sender, txHash); err != nil {
		return nil, err
	}
	if err := c.wallets.Put(db, msg.From, sender); err != nil {
		return nil, err
	}
	if err := c.transfers.Put(db, txHash, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Release finalizes the pending transfer stored under transferTxHash,
// moving the retained funds of the sender to the receiver balance. The
// transfer record is kept, marked finalized.
func (c *Controller) Release(db clasp.KVStore, approver clasp.Address, transferTxHash, txHash []byte) (*PendingTransfer, error) {
	var t PendingTransfer
	switch err := c.transfers.One(db, transferTxHash, &t); {
	case err == nil:
		// continue
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrNoSuchTransfer, "transfer %X", transferTxHash)
	default:
		return nil, err
	}
	if t.Finalized {
		return nil, errors.Wrapf(ErrFinalized, "transfer %X", transferTxHash)
	}
	if !t.Approver.Equals(approver) {
		return nil, errors.Wrap(ErrBadApprover, "approver does not match the pending transfer")
	}

	sender, err := c.Wallet(db, t.From)
	if err != nil {
		return nil, err
	}
	receiver, err := c.Wallet(db, t.To)
	if err != nil {
		return nil, err
	}
	if sender.RetainedAmount < t.Amount {
		return nil, errors.Wrap(errors.ErrState, "retained funds below transfer amount")
	}
	if receiver.Balance+t.Amount < receiver.Balance {
		return nil, errors.Wrap(ErrInvalidAmount, "balance overflow")
	}

	sender.RetainedAmount -= t.Amount
	receiver.Balance += t.Amount
	t.Finalized = true
	if err := c.history.Append(db, sender, txHash); err != nil {
		return nil, err
	}
	if err := c.history.Append(db, receiver, txHash); err != nil {
		return nil, err
	}
	if err := c.wallets.Put(db, t.From, sender); err != nil {
		return nil, err
	}
	if err := c.wallets.Put(db, t.To, receiver); err != nil {
		return nil, err
	}
	if err := c.transfers.Put(db, transferTxHash, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Wallet loads the wallet of the given address, or ErrNoSuchWallet.
func (c *Controller) Wallet(db clasp.ReadOnlyKVStore, addr clasp.Address) (*Wallet, error) {
	var w Wallet
	switch err := c.wallets.One(db, addr, &w); {
	case err == nil:
		return &w, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrNoSuchWallet, "address %s", addr)
	default:
		return nil, err
	}
}

// Transfer loads the pending transfer stored under the hash of its
// transfer transaction, or ErrNoSuchTransfer.
func (c *Controller) Transfer(db clasp.ReadOnlyKVStore, transferTxHash []byte) (*PendingTransfer, error) {
	var t PendingTransfer
	switch err := c.transfers.One(db, transferTxHash, &t); {
	case err == nil:
		return &t, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrNoSuchTransfer, "transfer %X", transferTxHash)
	default:
		return nil, err
	}
}

// TotalIssued returns the amount of currency issued so far.
func (c *Controller) TotalIssued(db clasp.ReadOnlyKVStore) (uint64, error) {
	supply, err := c.loadSupply(db)
	if err != nil {
		return 0, err
	}
	return supply.Issued, nil
}

// History gives access to the wallet history entries and proofs.
func (c *Controller) History() HistoryBucket {
	return c.history
}

func (c *Controller) loadSupply(db clasp.ReadOnlyKVStore) (*Supply, error) {
	var s Supply
	switch err := c.supply.One(db, supplyKey, &s); {
	case err == nil:
		return &s, nil
	case errors.ErrNotFound.Is(err):
		return &Supply{}, nil
	default:
		return nil, err
	}
}
