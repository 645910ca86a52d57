package wallet

import (
	"testing"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/clasptest/assert"
	"github.com/clasp-net/clasp/errors"
)

func TestMsgValidate(t *testing.T) {
	alice, bob, carl := addr(1), addr(2), addr(3)

	cases := map[string]struct {
		msg     clasp.Msg
		wantErr *errors.Error
	}{
		"valid create wallet": {
			msg: &CreateWalletMsg{Name: "alice"},
		},
		"create wallet without a name": {
			msg:     &CreateWalletMsg{},
			wantErr: errors.ErrEmpty,
		},
		"valid issue": {
			msg: &IssueMsg{Amount: 1, Seed: 42},
		},
		"issue nothing": {
			msg:     &IssueMsg{Seed: 42},
			wantErr: ErrInvalidAmount,
		},
		"valid transfer": {
			msg: &TransferMsg{From: alice, To: bob, Approver: carl, Amount: 5},
		},
		"transfer with a short sender address": {
			msg:     &TransferMsg{From: alice[:5], To: bob, Approver: carl, Amount: 5},
			wantErr: errors.ErrInput,
		},
		"transfer to self": {
			msg:     &TransferMsg{From: alice, To: alice, Approver: carl, Amount: 5},
			wantErr: errors.ErrInput,
		},
		"transfer nothing": {
			msg:     &TransferMsg{From: alice, To: bob, Approver: carl},
			wantErr: ErrInvalidAmount,
		},
		"valid approve": {
			msg: &ApproveMsg{Approver: carl, TransferTxHash: hash("transfer"), Seed: 1},
		},
		"approve with a truncated hash": {
			msg:     &ApproveMsg{Approver: carl, TransferTxHash: hash("transfer")[:10]},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				assert.Nil(t, err)
			} else {
				assert.IsErr(t, tc.wantErr, err)
			}
		})
	}
}

func TestMsgPaths(t *testing.T) {
	assert.Equal(t, "wallet/create", (&CreateWalletMsg{}).Path())
	assert.Equal(t, "wallet/issue", (&IssueMsg{}).Path())
	assert.Equal(t, "wallet/transfer", (&TransferMsg{}).Path())
	assert.Equal(t, "wallet/approve", (&ApproveMsg{}).Path())
}
