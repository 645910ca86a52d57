package wallet

import (
	"context"
	"testing"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/clasptest"
	"github.com/clasp-net/clasp/clasptest/assert"
	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/store"
	"github.com/clasp-net/clasp/x"
)

func ctxWithHash(txHash []byte) clasp.Context {
	return clasp.WithTxHash(context.Background(), txHash)
}

func TestCreateWalletHandler(t *testing.T) {
	db := store.MemStore()
	alice := addr(1)
	auth := &clasptest.Auth{Signer: alice}
	h := CreateWalletHandler{auth: auth, ctrl: NewController(nil)}

	tx := &clasptest.Tx{Msg: &CreateWalletMsg{Name: "alice"}}
	ctx := ctxWithHash(hash("create alice"))

	res, err := h.Check(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, createWalletCost, res.GasAllocated)

	dres, err := h.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, []byte(alice), dres.Data)

	w, err := h.ctrl.Wallet(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, "alice", w.Name)

	// creating twice must fail
	_, err = h.Deliver(ctxWithHash(hash("create again")), db, tx)
	assert.IsErr(t, ErrWalletExists, err)
}

func TestCreateWalletHandlerRequiresSigner(t *testing.T) {
	db := store.MemStore()
	h := CreateWalletHandler{auth: &clasptest.Auth{}, ctrl: NewController(nil)}
	tx := &clasptest.Tx{Msg: &CreateWalletMsg{Name: "alice"}}

	_, err := h.Check(ctxWithHash(hash("create")), db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestIssueHandler(t *testing.T) {
	db := store.MemStore()
	alice := addr(1)
	ctrl := NewController(nil)
	h := IssueHandler{auth: &clasptest.Auth{Signer: alice}, ctrl: ctrl}

	_, err := ctrl.CreateWallet(db, alice, "alice", hash("create alice"))
	assert.Nil(t, err)

	tx := &clasptest.Tx{Msg: &IssueMsg{Amount: 100, Seed: 1}}
	_, err = h.Deliver(ctxWithHash(hash("issue 100")), db, tx)
	assert.Nil(t, err)

	w, err := ctrl.Wallet(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(100), w.Balance)
}

func TestTransferHandlerRejectsWrongSender(t *testing.T) {
	db := store.MemStore()
	alice, bob := addr(1), addr(2)
	ctrl := NewController(nil)
	// bob signs a transfer naming alice as the sender
	h := TransferHandler{auth: &clasptest.Auth{Signer: bob}, ctrl: ctrl}

	tx := &clasptest.Tx{Msg: &TransferMsg{From: alice, To: bob, Approver: alice, Amount: 10, Seed: 1}}
	_, err := h.Check(ctxWithHash(hash("transfer")), db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)
	_, err = h.Deliver(ctxWithHash(hash("transfer")), db, tx)
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestTransferAndApproveHandlers(t *testing.T) {
	db := store.MemStore()
	alice, bob, carl := addr(1), addr(2), addr(3)
	ctrl := NewController(nil)

	for _, acc := range []struct {
		addr clasp.Address
		name string
	}{
		{alice, "alice"}, {bob, "bob"}, {carl, "carl"},
	} {
		_, err := ctrl.CreateWallet(db, acc.addr, acc.name, hash("create "+acc.name))
		assert.Nil(t, err)
	}
	_, err := ctrl.Issue(db, alice, 100, hash("issue alice"))
	assert.Nil(t, err)

	transfer := TransferHandler{auth: &clasptest.Auth{Signer: alice}, ctrl: ctrl}
	transferHash := hash("transfer 40")
	tx := &clasptest.Tx{Msg: &TransferMsg{From: alice, To: bob, Approver: carl, Amount: 40, Seed: 1}}
	dres, err := transfer.Deliver(ctxWithHash(transferHash), db, tx)
	assert.Nil(t, err)
	assert.Equal(t, transferHash, dres.Data)

	// the named approver must sign the approval
	approve := ApproveHandler{auth: &clasptest.Auth{Signer: bob}, ctrl: ctrl}
	approveTx := &clasptest.Tx{Msg: &ApproveMsg{Approver: carl, TransferTxHash: transferHash, Seed: 2}}
	_, err = approve.Deliver(ctxWithHash(hash("approve by bob")), db, approveTx)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	approve = ApproveHandler{auth: &clasptest.Auth{Signer: carl}, ctrl: ctrl}
	_, err = approve.Deliver(ctxWithHash(hash("approve by carl")), db, approveTx)
	assert.Nil(t, err)

	w, err := ctrl.Wallet(db, bob)
	assert.Nil(t, err)
	assert.Equal(t, uint64(40), w.Balance)
}

func TestRegisterRoutes(t *testing.T) {
	r := newRegistry()
	RegisterRoutes(r, &clasptest.Auth{}, NewController(nil))

	for _, path := range []string{pathCreateWallet, pathIssue, pathTransfer, pathApprove} {
		if r.handlers[path] == nil {
			t.Fatalf("no handler registered for %q", path)
		}
	}
}

type registry struct {
	handlers map[string]clasp.Handler
}

func newRegistry() *registry {
	return &registry{handlers: make(map[string]clasp.Handler)}
}

func (r *registry) Handle(path string, h clasp.Handler) {
	r.handlers[path] = h
}

var _ x.Authenticator = (*clasptest.Auth)(nil)
