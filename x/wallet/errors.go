package wallet

import (
	"github.com/clasp-net/clasp/errors"
)

var (
	// ErrNoSuchWallet is returned when an operation references an
	// address that no wallet was created for.
	ErrNoSuchWallet = errors.Register(1000, "no such wallet")

	// ErrWalletExists is returned when creating a wallet for an address
	// that already owns one.
	ErrWalletExists = errors.Register(1001, "wallet already exists")

	// ErrInvalidAmount is returned for a zero amount or an amount that
	// would overflow a balance or the total supply.
	ErrInvalidAmount = errors.Register(1002, "invalid amount")

	// ErrInsufficientFunds is returned when the sender balance does not
	// cover the transfer amount.
	ErrInsufficientFunds = errors.Register(1003, "insufficient funds")

	// ErrNoSuchTransfer is returned when an approval references an
	// unknown pending transfer.
	ErrNoSuchTransfer = errors.Register(1004, "no such pending transfer")

	// ErrFinalized is returned when approving a transfer that was
	// finalized before.
	ErrFinalized = errors.Register(1005, "transfer already finalized")

	// ErrBadApprover is returned when the named approver is not allowed
	// to finalize the transfer.
	ErrBadApprover = errors.Register(1006, "unauthorized approver")
)
