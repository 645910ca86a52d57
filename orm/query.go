package orm

import (
	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/errors"
)

// RegisterQuery exposes the whole store under the root path "/",
// serving raw keys without any bucket prefix handling.
func RegisterQuery(qr clasp.QueryRouter) {
	qr.Register("/", rawQuery{})
}

// rawQuery answers key and prefix queries against the unprefixed
// store.
type rawQuery struct{}

var _ clasp.QueryHandler = rawQuery{}

func (q rawQuery) Query(db clasp.ReadOnlyKVStore, mod string, data []byte) ([]clasp.Model, error) {
	switch mod {
	case clasp.KeyQueryMod:
		value, err := db.Get(data)
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, nil
		}
		return []clasp.Model{{Key: data, Value: value}}, nil
	case clasp.PrefixQueryMod:
		return queryPrefix(db, data)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query modifier: %q", mod)
	}
}

// ConsumeIterator will read all remaining data into an
// array and close the iterator
func ConsumeIterator(itr clasp.Iterator) ([]clasp.Model, error) {
	defer itr.Close()

	res := []clasp.Model{}
	for itr.Valid() {
		mod := clasp.Model{
			Key:   itr.Key(),
			Value: itr.Value(),
		}
		res = append(res, mod)
		if err := itr.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// queryPrefix returns all models under this key prefix, in ascending
// key order.
func queryPrefix(db clasp.ReadOnlyKVStore, prefix []byte) ([]clasp.Model, error) {
	start, end := prefixRange(prefix)
	itr, err := db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return ConsumeIterator(itr)
}

// prefixRange turns a prefix into (start, end) to create an iterator.
func prefixRange(prefix []byte) ([]byte, []byte) {
	// special case: no prefix is whole range
	if len(prefix) == 0 {
		return nil, nil
	}

	// copy the prefix and increment the last byte, carrying into the
	// preceding bytes on overflow
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return prefix, end[:i+1]
		}
	}
	// prefix was all 0xff, no upper bound
	return prefix, nil
}
