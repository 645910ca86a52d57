package wallet

import (
	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/x"
)

// Gas costs charged per message type.
const (
	createWalletCost int64 = 100
	issueCost        int64 = 100
	transferCost     int64 = 200
	approveCost      int64 = 200
)

// RegisterRoutes instantiates all handlers of this package and
// registers them with the router.
func RegisterRoutes(r clasp.Registry, auth x.Authenticator, ctrl *Controller) {
	r.Handle(pathCreateWallet, CreateWalletHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathIssue, IssueHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathTransfer, TransferHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathApprove, ApproveHandler{auth: auth, ctrl: ctrl})
}

// RegisterQuery registers the buckets of this package for queries.
func RegisterQuery(qr clasp.QueryRouter) {
	NewWalletBucket().Register("wallets", qr)
	NewTransferBucket().Register("transfers", qr)
	NewSupplyBucket().Register("supply", qr)
	NewHistoryBucket().Register("history", qr)
}

// CreateWalletHandler creates a wallet for the transaction signer.
type CreateWalletHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ clasp.Handler = CreateWalletHandler{}

// Check verifies the transaction without applying it.
func (h CreateWalletHandler) Check(ctx clasp.Context, db clasp.KVStore, tx clasp.Tx) (*clasp.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &clasp.CheckResult{GasAllocated: createWalletCost}, nil
}

// Deliver creates the wallet.
func (h CreateWalletHandler) Deliver(ctx clasp.Context, db clasp.KVStore, tx clasp.Tx) (*clasp.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	txHash, err := txHashOf(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.CreateWallet(db, owner, msg.Name, txHash); err != nil {
		return nil, err
	}
	return &clasp.DeliverResult{Data: owner}, nil
}

func (h CreateWalletHandler) validate(ctx clasp.Context, tx clasp.Tx) (*CreateWalletMsg, clasp.Address, error) {
	var msg CreateWalletMsg
	if err := clasp.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	owner := x.MainSigner(ctx, h.auth)
	if owner == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return &msg, owner, nil
}

// IssueHandler mints new funds into the signer wallet.
type IssueHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ clasp.Handler = IssueHandler{}

// Check verifies the transaction without applying it.
func (h IssueHandler) Check(ctx clasp.Context, db clasp.KVStore, tx clasp.Tx) (*clasp.CheckResult, error) {
	if _, _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &clasp.CheckResult{GasAllocated: issueCost}, nil
}

// Deliver credits the signer wallet and the total supply.
func (h IssueHandler) Deliver(ctx clasp.Context, db clasp.KVStore, tx clasp.Tx) (*clasp.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	txHash, err := txHashOf(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.Issue(db, owner, msg.Amount, txHash); err != nil {
		return nil, err
	}
	return &clasp.DeliverResult{Data: owner}, nil
}

func (h IssueHandler) validate(ctx clasp.Context, tx clasp.Tx) (*IssueMsg, clasp.Address, error) {
	var msg IssueMsg
	if err := clasp.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	owner := x.MainSigner(ctx, h.auth)
	if owner == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return &msg, owner, nil
}

// TransferHandler escrows funds of the signer for a named receiver.
type TransferHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ clasp.Handler = TransferHandler{}

// Check verifies the transaction without applying it.
func (h TransferHandler) Check(ctx clasp.Context, db clasp.KVStore, tx clasp.Tx) (*clasp.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &clasp.CheckResult{GasAllocated: transferCost}, nil
}

// Deliver moves the amount into the retained funds of the sender and
// records the pending transfer. The key of the pending transfer, the
// hash of this transaction, is returned as data.
func (h TransferHandler) Deliver(ctx clasp.Context, db clasp.KVStore, tx clasp.Tx) (*clasp.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	txHash, err := txHashOf(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.Retain(db, msg, txHash); err != nil {
		return nil, err
	}
	return &clasp.DeliverResult{Data: txHash}, nil
}

func (h TransferHandler) validate(ctx clasp.Context, tx clasp.Tx) (*TransferMsg, error) {
	var msg TransferMsg
	if err := clasp.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.From) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "transfer sender did not sign")
	}
	return &msg, nil
}

// ApproveHandler finalizes a pending transfer.
type ApproveHandler struct {
	auth x.Authenticator
	ctrl *Controller
}

var _ clasp.Handler = ApproveHandler{}

// Check verifies the transaction without applying it.
func (h ApproveHandler) Check(ctx clasp.Context, db clasp.KVStore, tx clasp.Tx) (*clasp.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &clasp.CheckResult{GasAllocated: approveCost}, nil
}

// Deliver releases the escrowed funds to the receiver.
func (h ApproveHandler) Deliver(ctx clasp.Context, db clasp.KVStore, tx clasp.Tx) (*clasp.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	txHash, err := txHashOf(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.Release(db, msg.Approver, msg.TransferTxHash, txHash); err != nil {
		return nil, err
	}
	return &clasp.DeliverResult{Data: msg.TransferTxHash}, nil
}

func (h ApproveHandler) validate(ctx clasp.Context, tx clasp.Tx) (*ApproveMsg, error) {
	var msg ApproveMsg
	if err := clasp.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Approver) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "approver did not sign")
	}
	return &msg, nil
}

func txHashOf(ctx clasp.Context) ([]byte, error) {
	hash := clasp.GetTxHash(ctx)
	if hash == nil {
		return nil, errors.Wrap(errors.ErrHuman, "transaction hash missing in the context")
	}
	return hash, nil
}
