package clasptest

import (
	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/crypto"
)

// NewKey returns a newly generated random private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// RandAddress returns the address of a newly generated key.
func RandAddress() clasp.Address {
	return NewKey().PublicKey().Address()
}
