package wallet

import (
	"crypto/sha256"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/errors"
)

// Routing paths of the wallet messages.
const (
	pathCreateWallet = "wallet/create"
	pathIssue        = "wallet/issue"
	pathTransfer     = "wallet/transfer"
	pathApprove      = "wallet/approve"
)

var (
	_ clasp.Msg = (*CreateWalletMsg)(nil)
	_ clasp.Msg = (*IssueMsg)(nil)
	_ clasp.Msg = (*TransferMsg)(nil)
	_ clasp.Msg = (*ApproveMsg)(nil)
)

// Path returns the routing path of the message.
func (CreateWalletMsg) Path() string {
	return pathCreateWallet
}

// Validate ensures the message is well formed, without state access.
func (m *CreateWalletMsg) Validate() error {
	if m.Name == "" {
		return errors.Wrap(errors.ErrEmpty, "name")
	}
	return nil
}

// Path returns the routing path of the message.
func (IssueMsg) Path() string {
	return pathIssue
}

// Validate ensures the message is well formed, without state access.
func (m *IssueMsg) Validate() error {
	if m.Amount == 0 {
		return errors.Wrap(ErrInvalidAmount, "zero issue")
	}
	return nil
}

// Path returns the routing path of the message.
func (TransferMsg) Path() string {
	return pathTransfer
}

// Validate ensures the message is well formed, without state access.
func (m *TransferMsg) Validate() error {
	if err := m.From.Validate(); err != nil {
		return errors.Wrap(err, "from")
	}
	if err := m.To.Validate(); err != nil {
		return errors.Wrap(err, "to")
	}
	if err := m.Approver.Validate(); err != nil {
		return errors.Wrap(err, "approver")
	}
	if m.From.Equals(m.To) {
		return errors.Wrap(errors.ErrInput, "transfer to self")
	}
	if m.Amount == 0 {
		return errors.Wrap(ErrInvalidAmount, "zero transfer")
	}
	return nil
}

// Path returns the routing path of the message.
func (ApproveMsg) Path() string {
	return pathApprove
}

// Validate ensures the message is well formed, without state access.
func (m *ApproveMsg) Validate() error {
	if err := m.Approver.Validate(); err != nil {
		return errors.Wrap(err, "approver")
	}
	if len(m.TransferTxHash) != sha256.Size {
		return errors.Wrapf(errors.ErrInput, "transfer tx hash length: %d", len(m.TransferTxHash))
	}
	return nil
}
