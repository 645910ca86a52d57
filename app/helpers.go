package app

import (
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/store"
)

// ABCIStore exposes the abci.Query interface as a ReadOnlyKVStore,
// so buckets can reuse their key and parse logic on top of a running
// application.
type ABCIStore struct {
	app abci.Application
}

var _ clasp.ReadOnlyKVStore = (*ABCIStore)(nil)

// NewABCIStore wraps an abci application.
func NewABCIStore(app abci.Application) *ABCIStore {
	return &ABCIStore{app: app}
}

// Get will query for exactly one value over the abci store.
func (a *ABCIStore) Get(key []byte) ([]byte, error) {
	query := a.app.Query(abci.RequestQuery{
		Path: "/",
		Data: key,
	})
	if query.Code != 0 {
		return nil, errors.Wrap(errors.ErrDatabase, query.Log)
	}
	var value ResultSet
	if err := value.Unmarshal(query.Value); err != nil {
		return nil, errors.Wrap(err, "unmarshal result set")
	}
	if len(value.Results) == 0 {
		return nil, nil
	}
	return value.Results[0], nil
}

// Has returns true if the given key is in the abci app store.
func (a *ABCIStore) Has(key []byte) (bool, error) {
	got, err := a.Get(key)
	if err != nil {
		return false, err
	}
	return len(got) > 0, nil
}

// Iterator attempts to do a range iteration over the store. Only a
// full range scan is serializable over the abci query interface, so
// any other bounds are refused.
func (a *ABCIStore) Iterator(start, end []byte) (clasp.Iterator, error) {
	if start != nil || end != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "iterator only implemented for entire range")
	}

	query := a.app.Query(abci.RequestQuery{
		Path: "/?prefix",
		Data: nil,
	})
	if query.Code != 0 {
		return nil, errors.Wrap(errors.ErrDatabase, query.Log)
	}
	models, err := toModels(query.Key, query.Value)
	if err != nil {
		return nil, errors.Wrap(err, "cannot convert to model")
	}

	return store.NewSliceIterator(models), nil
}

// ReverseIterator is not supported over the abci query interface.
func (a *ABCIStore) ReverseIterator(start, end []byte) (clasp.Iterator, error) {
	return nil, errors.Wrap(errors.ErrDatabase, "reverse iteration not supported over abci queries")
}

func toModels(keys, values []byte) ([]clasp.Model, error) {
	var k, v ResultSet
	if err := k.Unmarshal(keys); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal keys")
	}
	if err := v.Unmarshal(values); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal values")
	}
	return JoinResults(&k, &v)
}
