package clasptest

import (
	"context"
	"fmt"

	"github.com/clasp-net/clasp"
)

// Auth is a mock implementing x.Authenticator interface.
//
// This structure authenticates any of the referenced addresses.
// You can use either Signer or Signers (or both) attributes to
// reference addresses. This is for the convenience and each time all
// signers (regardless which attribute) are considered.
type Auth struct {
	// Signer represents an authentication of a single signer. This is
	// a convenience attribute when creating an authentication method
	// for a single signer.
	// When authenticating all signers declared on this structure are
	// considered.
	Signer clasp.Address

	// Signers represents an authentication of multiple signers.
	Signers []clasp.Address
}

func (a *Auth) GetSigners(clasp.Context) []clasp.Address {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx clasp.Context, addr clasp.Address) bool {
	for _, s := range a.Signers {
		if addr.Equals(s) {
			return true
		}
	}
	if a.Signer == nil {
		return false
	}
	return addr.Equals(a.Signer)
}

// CtxAuth is a mock implementing x.Authenticator interface.
//
// This implementation is using context to store and retrieve signers.
type CtxAuth struct {
	// Key used to set and retrieve signers from the context. For
	// convenience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetSigners(ctx clasp.Context, signers ...clasp.Address) clasp.Context {
	return context.WithValue(ctx, a.Key, signers)
}

func (a *CtxAuth) GetSigners(ctx clasp.Context) []clasp.Address {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	signers, ok := val.([]clasp.Address)
	if !ok {
		panic(fmt.Sprintf("instead of []clasp.Address got %T", ctx.Value(a.Key)))
	}
	return signers
}

func (a *CtxAuth) HasAddress(ctx clasp.Context, addr clasp.Address) bool {
	for _, s := range a.GetSigners(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}
