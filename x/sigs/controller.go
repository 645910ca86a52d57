package sigs

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"sort"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/crypto"
	"github.com/clasp-net/clasp/errors"
)

// SignCodeV1 is the current way to prefix the bytes we use to build
// a signature
var SignCodeV1 = []byte{0, 0xCA, 0xFE, 0}

//----------------- Controller ------------------
//
// Place actual business logic here.
// Anything that may be called from another extension can be public
// to encourage composition. Anything unsafe to be called from
// arbitrary extensions should be private.
//
// Controller should contain package-level functions, not
// objects with state, to make it easy to call from other extensions.

// VerifyTxSignatures checks all the signatures on the tx.
//
// Returns the list of signer addresses (possibly empty),
// or an error if any signature is invalid. Every signer may appear
// only once: a repeated signature entry adds no authority, it only
// changes the serialized bytes of the envelope.
func VerifyTxSignatures(tx SignedTx, chainID string) ([]clasp.Address, error) {
	bz, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	sigs := tx.GetSignatures()

	signers := make([]clasp.Address, 0, len(sigs))
	for _, sig := range sigs {
		signer, err := VerifySignature(sig, bz, chainID)
		if err != nil {
			return nil, err
		}
		for _, seen := range signers {
			if seen.Equals(signer) {
				return nil, errors.Wrapf(errors.ErrUnauthorized, "repeated signature by %s", signer)
			}
		}
		signers = append(signers, signer)
	}

	return signers, nil
}

// TxIdentity computes the replay-stable identity of a signed
// transaction: a hash over the hashed sign bytes and the sorted signer
// addresses. Serialized envelope bytes are not canonical, unknown
// fields or a repeated signature entry change them while every
// signature still verifies, so they must never identify a transaction.
// Signers are sorted so a permuted signature list maps to the same
// identity.
func TxIdentity(tx SignedTx, signers []clasp.Address) ([]byte, error) {
	bz, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	sorted := make([]clasp.Address, len(signers))
	copy(sorted, signers)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i], sorted[j]) < 0
	})

	// all written chunks are 32 bytes, no boundary ambiguity
	h := sha256.New()
	payload := sha256.Sum256(bz)
	h.Write(payload[:])
	for _, s := range sorted {
		h.Write(s)
	}
	return h.Sum(nil), nil
}

// VerifySignature checks one signature against signbytes and returns
// the address of the signer. Verification is stateless: the public key
// travels with the signature and doubles as the address.
func VerifySignature(sig *StdSignature, signBytes []byte, chainID string) (clasp.Address, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}

	toSign, err := BuildSignBytes(signBytes, chainID)
	if err != nil {
		return nil, err
	}

	if !sig.Pubkey.Verify(toSign, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}
	return sig.Pubkey.Address(), nil
}

/*
BuildSignBytes combines all info on the actual tx before signing.

We use the following format:

	version | len(chainID) | chainID      | signBytes
	4bytes  | uint8        | ascii string | serialized transaction

This is then prehashed with sha512 before fed into
the public key signing/verification step.
*/
func BuildSignBytes(signBytes []byte, chainID string) ([]byte, error) {
	if !clasp.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id: %v", chainID)
	}

	// concatenate everything
	output := make([]byte, 0, 4+1+len(chainID)+len(signBytes))
	output = append(output, SignCodeV1...)
	output = append(output, uint8(len(chainID)))
	output = append(output, []byte(chainID)...)
	output = append(output, signBytes...)

	// now, we take the sha512 hash of the result,
	// so we have a constant length output to feed into eddsa
	// which we need so ledger can support this as well
	hashed := sha512.Sum512(output)
	return hashed[:], nil
}

// BuildSignBytesTx calculates the sign bytes given a tx
func BuildSignBytesTx(tx SignedTx, chainID string) ([]byte, error) {
	signBytes, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	return BuildSignBytes(signBytes, chainID)
}

// SignTx creates a signature for the given tx
func SignTx(signer crypto.Signer, tx SignedTx, chainID string) (*StdSignature, error) {
	signBytes, err := BuildSignBytesTx(tx, chainID)
	if err != nil {
		return nil, err
	}

	sig, err := signer.Sign(signBytes)
	if err != nil {
		return nil, err
	}

	return &StdSignature{
		Pubkey:    signer.PublicKey(),
		Signature: sig,
	}, nil
}
