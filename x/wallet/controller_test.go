package wallet

import (
	"math/rand"
	"testing"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/clasptest/assert"
	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/store"
)

func addr(b byte) clasp.Address {
	a := make(clasp.Address, clasp.AddressLength)
	for i := range a {
		a[i] = b
	}
	return a
}

func hash(s string) []byte {
	return clasp.TxHash([]byte(s))
}

func TestCreateWallet(t *testing.T) {
	db := store.MemStore()
	c := NewController(nil)
	alice := addr(1)

	w, err := c.CreateWallet(db, alice, "alice", hash("create alice"))
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), w.Balance)
	assert.Equal(t, uint64(0), w.RetainedAmount)
	// the creating transaction is the first history entry
	assert.Equal(t, uint64(1), w.HistoryLen)
	assert.Equal(t, ChainDigest(nil, hash("create alice")), w.HistoryHash)

	loaded, err := c.Wallet(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, w, loaded)

	_, err = c.CreateWallet(db, alice, "imposter", hash("create imposter"))
	assert.IsErr(t, ErrWalletExists, err)
}

func TestWalletMissing(t *testing.T) {
	db := store.MemStore()
	c := NewController(nil)

	_, err := c.Wallet(db, addr(9))
	assert.IsErr(t, ErrNoSuchWallet, err)
}

func TestIssue(t *testing.T) {
	db := store.MemStore()
	c := NewController(nil)
	alice := addr(1)

	_, err := c.CreateWallet(db, alice, "alice", hash("create alice"))
	assert.Nil(t, err)

	w, err := c.Issue(db, alice, 100, hash("issue 100"))
	assert.Nil(t, err)
	assert.Equal(t, uint64(100), w.Balance)
	assert.Equal(t, uint64(2), w.HistoryLen)

	issued, err := c.TotalIssued(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(100), issued)

	// issuing again adds up
	_, err = c.Issue(db, alice, 50, hash("issue 50"))
	assert.Nil(t, err)
	issued, err = c.TotalIssued(db)
	assert.Nil(t, err)
	assert.Equal(t, uint64(150), issued)
}

func TestIssueFailures(t *testing.T) {
	db := store.MemStore()
	c := NewController(nil)
	alice := addr(1)

	_, err := c.Issue(db, alice, 100, hash("issue"))
	assert.IsErr(t, ErrNoSuchWallet, err)

	_, err = c.CreateWallet(db, alice, "alice", hash("create alice"))
	assert.Nil(t, err)

	_, err = c.Issue(db, alice, 0, hash("issue zero"))
	assert.IsErr(t, ErrInvalidAmount, err)

	_, err = c.Issue(db, alice, ^uint64(0), hash("issue max"))
	assert.Nil(t, err)
	_, err = c.Issue(db, alice, 1, hash("issue one more"))
	assert.IsErr(t, ErrInvalidAmount, err)
}

// Escrowing a transfer debits only the sender and records a single
// history entry on the sender side.
func TestTransferEscrowsFunds(t *testing.T) {
	db := store.MemStore()
	c := NewController(nil)
	alice, bob := addr(1), addr(2)

	_, err := c.CreateWallet(db, alice, "alice", hash("create alice"))
	assert.Nil(t, err)
	_, err = c.CreateWallet(db, bob, "bob", hash("create bob"))
	assert.Nil(t, err)
	_, err = c.Issue(db, alice, 100, hash("issue alice"))
	assert.Nil(t, err)

	// alice names herself approver and keeps control over the escrow
	msg := &TransferMsg{From: alice, To: bob, Approver: alice, Amount: 30}
	pending, err := c.Retain(db, msg, hash("transfer 30"))
	assert.Nil(t, err)
	assert.Equal(t, false, pending.Finalized)

	sender, err := c.Wallet(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(70), sender.Balance)
	assert.Equal(t, uint64(30), sender.RetainedAmount)
	assert.Equal(t, uint64(3), sender.HistoryLen)

	// the receiver is untouched until approval
	receiver, err := c.Wallet(db, bob)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), receiver.Balance)
	assert.Equal(t, uint64(1), receiver.HistoryLen)
}

func TestTransferFailures(t *testing.T) {
	db := store.MemStore()
	c := NewController(nil)
	alice, bob, carl, nobody := addr(1), addr(2), addr(3), addr(9)

	for _, acc := range []struct {
		addr clasp.Address
		name string
	}{
		{alice, "alice"}, {bob, "bob"}, {carl, "carl"},
	} {
		_, err := c.CreateWallet(db, acc.addr, acc.name, hash("create "+acc.name))
		assert.Nil(t, err)
	}
	_, err := c.Issue(db, alice, 100, hash("issue alice"))
	assert.Nil(t, err)

	cases := map[string]struct {
		msg     *TransferMsg
		wantErr *errors.Error
	}{
		"unknown sender": {
			msg:     &TransferMsg{From: nobody, To: bob, Approver: carl, Amount: 10},
			wantErr: ErrNoSuchWallet,
		},
		"unknown receiver": {
			msg:     &TransferMsg{From: alice, To: nobody, Approver: carl, Amount: 10},
			wantErr: ErrNoSuchWallet,
		},
		"approver without a wallet": {
			msg:     &TransferMsg{From: alice, To: bob, Approver: nobody, Amount: 10},
			wantErr: ErrBadApprover,
		},
		"receiver as approver": {
			msg:     &TransferMsg{From: alice, To: bob, Approver: bob, Amount: 10},
			wantErr: ErrBadApprover,
		},
		"insufficient funds": {
			msg:     &TransferMsg{From: alice, To: bob, Approver: carl, Amount: 101},
			wantErr: ErrInsufficientFunds,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			_, err := c.Retain(db, tc.msg, hash(testName))
			assert.IsErr(t, tc.wantErr, err)

			// a rejected transfer must not change the sender
			w, err := c.Wallet(db, alice)
			assert.Nil(t, err)
			assert.Equal(t, uint64(100), w.Balance)
			assert.Equal(t, uint64(0), w.RetainedAmount)
		})
	}
}

// Approval releases the escrow to the receiver and appends a history
// entry to both sides. A second approval must fail.
func TestApproveReleasesFunds(t *testing.T) {
	db := store.MemStore()
	c := NewController(nil)
	alice, bob := addr(1), addr(2)

	_, err := c.CreateWallet(db, alice, "alice", hash("create alice"))
	assert.Nil(t, err)
	_, err = c.CreateWallet(db, bob, "bob", hash("create bob"))
	assert.Nil(t, err)
	_, err = c.Issue(db, alice, 100, hash("issue alice"))
	assert.Nil(t, err)

	transferHash := hash("transfer 30")
	msg := &TransferMsg{From: alice, To: bob, Approver: alice, Amount: 30}
	_, err = c.Retain(db, msg, transferHash)
	assert.Nil(t, err)

	approveHash := hash("approve transfer")
	released, err := c.Release(db, alice, transferHash, approveHash)
	assert.Nil(t, err)
	assert.Equal(t, true, released.Finalized)

	sender, err := c.Wallet(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(70), sender.Balance)
	assert.Equal(t, uint64(0), sender.RetainedAmount)
	assert.Equal(t, uint64(4), sender.HistoryLen)

	receiver, err := c.Wallet(db, bob)
	assert.Nil(t, err)
	assert.Equal(t, uint64(30), receiver.Balance)
	assert.Equal(t, uint64(2), receiver.HistoryLen)
	assert.Equal(t, ChainDigest(nil, hash("create bob"), approveHash), receiver.HistoryHash)

	// the record is terminal, funds are released at most once
	_, err = c.Release(db, alice, transferHash, hash("approve again"))
	assert.IsErr(t, ErrFinalized, err)
	receiver, err = c.Wallet(db, bob)
	assert.Nil(t, err)
	assert.Equal(t, uint64(30), receiver.Balance)
}

func TestApproveFailures(t *testing.T) {
	db := store.MemStore()
	c := NewController(nil)
	alice, bob, carl := addr(1), addr(2), addr(3)

	for _, acc := range []struct {
		addr clasp.Address
		name string
	}{
		{alice, "alice"}, {bob, "bob"}, {carl, "carl"},
	} {
		_, err := c.CreateWallet(db, acc.addr, acc.name, hash("create "+acc.name))
		assert.Nil(t, err)
	}
	_, err := c.Issue(db, alice, 100, hash("issue alice"))
	assert.Nil(t, err)

	transferHash := hash("transfer 30")
	msg := &TransferMsg{From: alice, To: bob, Approver: carl, Amount: 30}
	_, err = c.Retain(db, msg, transferHash)
	assert.Nil(t, err)

	_, err = c.Release(db, carl, hash("no such transfer"), hash("approve missing"))
	assert.IsErr(t, ErrNoSuchTransfer, err)

	// only the approver named by the transfer may release it
	_, err = c.Release(db, bob, transferHash, hash("approve by bob"))
	assert.IsErr(t, ErrBadApprover, err)
	_, err = c.Release(db, alice, transferHash, hash("approve by alice"))
	assert.IsErr(t, ErrBadApprover, err)

	w, err := c.Wallet(db, alice)
	assert.Nil(t, err)
	assert.Equal(t, uint64(30), w.RetainedAmount)
}

// Over any sequence of operations the sum of all balances and retained
// funds equals the issued supply, and no value ever underflows.
func TestConservationOfFunds(t *testing.T) {
	db := store.MemStore()
	c := NewController(nil)
	rng := rand.New(rand.NewSource(42))

	var owners []clasp.Address
	var pending [][]byte
	names := []string{"alice", "bob", "carl", "dora", "eric"}
	for i, name := range names {
		a := addr(byte(i + 1))
		_, err := c.CreateWallet(db, a, name, hash("create "+name))
		assert.Nil(t, err)
		owners = append(owners, a)
	}

	for i := 0; i < 500; i++ {
		from := owners[rng.Intn(len(owners))]
		to := owners[rng.Intn(len(owners))]
		approver := owners[rng.Intn(len(owners))]
		amount := uint64(rng.Intn(50) + 1)
		txHash := hash(string(rune(i)) + "-op")

		switch rng.Intn(3) {
		case 0:
			_, err := c.Issue(db, from, amount, txHash)
			assert.Nil(t, err)
		case 1:
			msg := &TransferMsg{From: from, To: to, Approver: approver, Amount: amount}
			if _, err := c.Retain(db, msg, txHash); err == nil {
				pending = append(pending, txHash)
			}
		case 2:
			if len(pending) == 0 {
				continue
			}
			transferHash := pending[rng.Intn(len(pending))]
			pt, err := c.Transfer(db, transferHash)
			assert.Nil(t, err)
			if _, err := c.Release(db, pt.Approver, transferHash, txHash); err != nil {
				assert.IsErr(t, ErrFinalized, err)
			}
		}

		var total uint64
		for _, owner := range owners {
			w, err := c.Wallet(db, owner)
			assert.Nil(t, err)
			total += w.Balance + w.RetainedAmount
		}
		issued, err := c.TotalIssued(db)
		assert.Nil(t, err)
		assert.Equal(t, issued, total)
	}
}
