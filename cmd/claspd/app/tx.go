package app

import (
	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/x/sigs"
)

// TxDecoder creates a Tx and unmarshals bytes into it.
func TxDecoder(bz []byte) (clasp.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

var (
	_ clasp.Tx      = (*Tx)(nil)
	_ sigs.SignedTx = (*Tx)(nil)
)

// GetMsg switches over all message types defined in the protobuf file.
func (tx *Tx) GetMsg() (clasp.Msg, error) {
	sum := tx.GetSum()
	if sum == nil {
		return nil, errors.Wrap(errors.ErrInput, "transaction without message")
	}

	switch t := sum.(type) {
	case *Tx_CreateWalletMsg:
		return t.CreateWalletMsg, nil
	case *Tx_IssueMsg:
		return t.IssueMsg, nil
	case *Tx_TransferMsg:
		return t.TransferMsg, nil
	case *Tx_ApproveMsg:
		return t.ApproveMsg, nil
	}

	// all messages from the protobuf file must be covered above
	return nil, errors.Wrapf(errors.ErrType, "unexpected message %T", sum)
}

// GetSignBytes returns the serialized transaction with the signatures
// stripped, the canonical payload to sign.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	tx.Signatures = sigs
	return bz, err
}
