package sigs

import (
	"bytes"
	"testing"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/clasptest"
	"github.com/clasp-net/clasp/clasptest/assert"
	"github.com/clasp-net/clasp/crypto"
	"github.com/clasp-net/clasp/errors"
)

// sigTx is a minimal SignedTx for testing, signing over raw payload
// bytes.
type sigTx struct {
	payload []byte
	sigs    []*StdSignature
}

var _ SignedTx = (*sigTx)(nil)
var _ clasp.Tx = (*sigTx)(nil)

func (tx *sigTx) GetMsg() (clasp.Msg, error) {
	return &clasptest.Msg{RoutePath: "test/payload", Serialized: tx.payload}, nil
}

func (tx *sigTx) GetSignBytes() ([]byte, error) {
	return tx.payload, nil
}

func (tx *sigTx) GetSignatures() []*StdSignature {
	return tx.sigs
}

func (tx *sigTx) Marshal() ([]byte, error) {
	panic("not implemented")
}

func (tx *sigTx) Unmarshal([]byte) error {
	panic("not implemented")
}

func TestSignAndVerifyTx(t *testing.T) {
	const chainID = "emerald-net"
	priv := clasptest.NewKey()

	tx := &sigTx{payload: []byte("transfer 50 to bert")}
	sig, err := SignTx(priv, tx, chainID)
	assert.Nil(t, err)
	tx.sigs = []*StdSignature{sig}

	signers, err := VerifyTxSignatures(tx, chainID)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(signers))
	assert.Equal(t, priv.PublicKey().Address(), signers[0])
}

func TestVerifyWrongChainID(t *testing.T) {
	priv := clasptest.NewKey()

	tx := &sigTx{payload: []byte("transfer 50 to bert")}
	sig, err := SignTx(priv, tx, "chain-one")
	assert.Nil(t, err)
	tx.sigs = []*StdSignature{sig}

	// a signature is bound to a chain, verification on another fails
	_, err = VerifyTxSignatures(tx, "chain-two")
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestVerifyTamperedPayload(t *testing.T) {
	const chainID = "emerald-net"
	priv := clasptest.NewKey()

	tx := &sigTx{payload: []byte("transfer 50 to bert")}
	sig, err := SignTx(priv, tx, chainID)
	assert.Nil(t, err)

	tampered := &sigTx{
		payload: []byte("transfer 5000 to bert"),
		sigs:    []*StdSignature{sig},
	}
	_, err = VerifyTxSignatures(tampered, chainID)
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestVerifyForeignSignature(t *testing.T) {
	const chainID = "emerald-net"

	tx := &sigTx{payload: []byte("transfer 50 to bert")}
	sig, err := SignTx(clasptest.NewKey(), tx, chainID)
	assert.Nil(t, err)

	// swap in another pubkey, the signature no longer verifies
	sig.Pubkey = clasptest.NewKey().PublicKey()
	tx.sigs = []*StdSignature{sig}

	_, err = VerifyTxSignatures(tx, chainID)
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestVerifyRejectsRepeatedSignature(t *testing.T) {
	const chainID = "emerald-net"
	priv := clasptest.NewKey()

	tx := &sigTx{payload: []byte("transfer 50 to bert")}
	sig, err := SignTx(priv, tx, chainID)
	assert.Nil(t, err)

	// a second copy of a valid signature adds no authority, it only
	// changes the serialized envelope
	tx.sigs = []*StdSignature{sig, sig}
	_, err = VerifyTxSignatures(tx, chainID)
	assert.IsErr(t, errors.ErrUnauthorized, err)
}

func TestTxIdentity(t *testing.T) {
	a := clasptest.RandAddress()
	b := clasptest.RandAddress()
	tx := &sigTx{payload: []byte("transfer 50 to bert")}

	id, err := TxIdentity(tx, []clasp.Address{a, b})
	assert.Nil(t, err)
	assert.Equal(t, 32, len(id))

	// the signer order does not matter
	flipped, err := TxIdentity(tx, []clasp.Address{b, a})
	assert.Nil(t, err)
	assert.Equal(t, id, flipped)

	// a different payload is a different transaction
	other, err := TxIdentity(&sigTx{payload: []byte("transfer 5000 to bert")}, []clasp.Address{a, b})
	assert.Nil(t, err)
	if bytes.Equal(id, other) {
		t.Fatal("different payloads map to the same identity")
	}

	// so is the same payload signed by someone else
	other, err = TxIdentity(tx, []clasp.Address{a})
	assert.Nil(t, err)
	if bytes.Equal(id, other) {
		t.Fatal("different signer sets map to the same identity")
	}
}

func TestBuildSignBytesRejectsBadChainID(t *testing.T) {
	_, err := BuildSignBytes([]byte("payload"), "no")
	assert.IsErr(t, errors.ErrInput, err)

	_, err = BuildSignBytes([]byte("payload"), "invalid;chars")
	assert.IsErr(t, errors.ErrInput, err)
}

func TestStdSignatureValidate(t *testing.T) {
	priv := clasptest.NewKey()

	cases := map[string]struct {
		sig     *StdSignature
		wantErr *errors.Error
	}{
		"missing pubkey": {
			sig:     &StdSignature{},
			wantErr: errors.ErrUnauthorized,
		},
		"short pubkey": {
			sig: &StdSignature{
				Pubkey: &crypto.PublicKey{Ed25519: []byte("too-short")},
			},
			wantErr: errors.ErrInput,
		},
		"missing signature": {
			sig: &StdSignature{
				Pubkey: priv.PublicKey(),
			},
			wantErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.IsErr(t, tc.wantErr, tc.sig.Validate())
		})
	}
}
