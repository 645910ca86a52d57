package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/clasptest"
	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/store"
	"github.com/clasp-net/clasp/x/utils"
)

func TestChain(t *testing.T) {
	c1 := &clasptest.Decorator{}
	c2 := &clasptest.Decorator{}
	c3 := &clasptest.Decorator{}
	h := &clasptest.Handler{}

	stack := ChainDecorators(
		c1,
		utils.NewLogging(),
		utils.NewRecovery(),
		c2,
	).Chain(
		c3,
	).WithHandler(h)

	ctx := context.Background()
	db := store.MemStore()
	tx := &clasptest.Tx{Msg: &clasptest.Msg{RoutePath: "ok"}}

	_, err := stack.Check(ctx, db, tx)
	assert.NoError(t, err)
	_, err = stack.Deliver(ctx, db, tx)
	assert.NoError(t, err)

	assert.Equal(t, 2, c1.CallCount())
	assert.Equal(t, 2, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())

	// an erroring decorator stops the chain before the handler
	c2.CheckErr = errors.ErrUnauthorized
	c2.DeliverErr = errors.ErrUnauthorized

	_, err = stack.Check(ctx, db, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err))
	_, err = stack.Deliver(ctx, db, tx)
	assert.True(t, errors.ErrUnauthorized.Is(err))

	assert.Equal(t, 4, c1.CallCount())
	assert.Equal(t, 4, c2.CallCount())
	assert.Equal(t, 2, c3.CallCount())
	assert.Equal(t, 2, h.CallCount())
}

func TestChainRecoversPanic(t *testing.T) {
	stack := ChainDecorators(
		utils.NewRecovery(),
	).WithHandler(panicHandler{})

	ctx := context.Background()
	db := store.MemStore()
	tx := &clasptest.Tx{Msg: &clasptest.Msg{RoutePath: "boom"}}

	_, err := stack.Check(ctx, db, tx)
	assert.True(t, errors.ErrPanic.Is(err))
	_, err = stack.Deliver(ctx, db, tx)
	assert.True(t, errors.ErrPanic.Is(err))
}

func TestChainSkipsNilDecorators(t *testing.T) {
	var typedNil *clasptest.Decorator
	c := &clasptest.Decorator{}
	h := &clasptest.Handler{}

	stack := ChainDecorators(nil, c, typedNil).WithHandler(h)

	ctx := context.Background()
	db := store.MemStore()
	tx := &clasptest.Tx{Msg: &clasptest.Msg{RoutePath: "ok"}}

	_, err := stack.Check(ctx, db, tx)
	assert.NoError(t, err)
	assert.Equal(t, 1, c.CallCount())
	assert.Equal(t, 1, h.CallCount())
}

type panicHandler struct{}

var _ clasp.Handler = panicHandler{}

func (panicHandler) Check(ctx clasp.Context, db clasp.KVStore, tx clasp.Tx) (*clasp.CheckResult, error) {
	panic("check panic")
}

func (panicHandler) Deliver(ctx clasp.Context, db clasp.KVStore, tx clasp.Tx) (*clasp.DeliverResult, error) {
	panic("deliver panic")
}
