package clasp

import (
	"context"
	"regexp"

	"github.com/tendermint/tendermint/libs/log"
)

// Context is just a underlying context.Context, used to pass
// per-block and per-transaction information through the decorator
// stack without changing every signature.
//
// For every value XYZ of type T stored in the Context there are two
// functions:
//
//	WithXYZ(Context, T) Context
//	GetXYZ(Context) (val T)
type Context = context.Context

// DefaultLogger is used for all contexts that have not set anything
// themselves.
var DefaultLogger = log.NewNopLogger()

// IsValidChainID is the RegExp to ensure valid chain IDs.
var IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString

type contextKey int

const (
	contextKeyHeight contextKey = iota
	contextKeyChainID
	contextKeyLogger
	contextKeyTxHash
)

// WithHeight sets the block height into the Context.
func WithHeight(ctx Context, height int64) Context {
	return context.WithValue(ctx, contextKeyHeight, height)
}

// GetHeight returns the current block height and true, or false if
// not set.
func GetHeight(ctx Context) (int64, bool) {
	val, ok := ctx.Value(contextKeyHeight).(int64)
	return val, ok
}

// WithChainID sets the chain id into the Context. Panics on an invalid
// chain id.
func WithChainID(ctx Context, chainID string) Context {
	if !IsValidChainID(chainID) {
		panic("invalid chain id: " + chainID)
	}
	return context.WithValue(ctx, contextKeyChainID, chainID)
}

// GetChainID returns the chain id from the context. Panics if not set,
// as it is the responsibility of the application setup to provide it
// everywhere.
func GetChainID(ctx Context) string {
	val, ok := ctx.Value(contextKeyChainID).(string)
	if !ok {
		panic("chain id not set in context")
	}
	return val
}

// WithLogger sets the logger into the Context.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, contextKeyLogger, logger)
}

// GetLogger returns the logger from the context, or DefaultLogger if
// not set.
func GetLogger(ctx Context) log.Logger {
	if logger, ok := ctx.Value(contextKeyLogger).(log.Logger); ok {
		return logger
	}
	return DefaultLogger
}

// WithLogInfo accepts keyvalue pairs, and returns another context
// like this, after passing all the keyvals to the Logger.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	logger := GetLogger(ctx).With(keyvals...)
	return WithLogger(ctx, logger)
}

// WithTxHash sets the identity of the currently executed transaction
// into the Context. The application seeds it with a hash of the raw
// transaction bytes; once the signatures are verified the sigs
// decorator replaces it with the identity of the signed content, which
// does not change when the envelope bytes are mutated.
func WithTxHash(ctx Context, hash []byte) Context {
	return context.WithValue(ctx, contextKeyTxHash, hash)
}

// GetTxHash returns the content hash of the currently executed
// transaction, or nil if not set (eg. genesis initialization).
func GetTxHash(ctx Context) []byte {
	val, _ := ctx.Value(contextKeyTxHash).([]byte)
	return val
}
