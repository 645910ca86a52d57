package app

import (
	"fmt"
	"regexp"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/errors"
)

var isPath = regexp.MustCompile(`^[a-z]+(/[a-z]+)*$`).MatchString

// Router is a clasp.Handler that dispatches transactions to the
// handler registered for the message path.
type Router struct {
	handlers map[string]clasp.Handler
}

var (
	_ clasp.Registry = (*Router)(nil)
	_ clasp.Handler  = (*Router)(nil)
)

// NewRouter returns a router without any handlers registered.
func NewRouter() *Router {
	return &Router{
		handlers: make(map[string]clasp.Handler),
	}
}

// Handle registers a handler for the given message path. Registering
// two handlers for the same path, or an invalid path, is a programmer
// error.
func (r *Router) Handle(path string, h clasp.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.handlers[path]; ok {
		panic(fmt.Sprintf("re-registering route: %q", path))
	}
	r.handlers[path] = h
}

// Handler returns the handler registered for the path, or a handler
// that always fails with ErrNotFound.
func (r *Router) Handler(path string) clasp.Handler {
	h, ok := r.handlers[path]
	if !ok {
		return notFoundHandler(path)
	}
	return h
}

// Check dispatches the transaction by message path.
func (r *Router) Check(ctx clasp.Context, store clasp.KVStore, tx clasp.Tx) (*clasp.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg.Path()).Check(ctx, store, tx)
}

// Deliver dispatches the transaction by message path.
func (r *Router) Deliver(ctx clasp.Context, store clasp.KVStore, tx clasp.Tx) (*clasp.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg.Path()).Deliver(ctx, store, tx)
}

// notFoundHandler fails every transaction with a path not found error.
type notFoundHandler string

func (h notFoundHandler) Check(ctx clasp.Context, store clasp.KVStore, tx clasp.Tx) (*clasp.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", string(h))
}

func (h notFoundHandler) Deliver(ctx clasp.Context, store clasp.KVStore, tx clasp.Tx) (*clasp.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", string(h))
}
