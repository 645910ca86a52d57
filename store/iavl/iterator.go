package iavl

import (
	"sync"

	"github.com/clasp-net/clasp/store"
)

// lazyIterator pulls key-value pairs out of a running IterateRange
// callback, one at a time, so we never materialize the whole range.
type lazyIterator struct {
	data    store.Model
	hasMore bool
	read    chan store.Model
	stop    chan struct{}
	once    sync.Once
}

var _ store.Iterator = (*lazyIterator)(nil)

func newLazyIterator() *lazyIterator {
	return &lazyIterator{
		read: make(chan store.Model),
		// buffered so Close never blocks after exhaustion
		stop: make(chan struct{}, 1),
	}
}

// add is the IterateRange callback. Returns true to abort iteration.
func (i *lazyIterator) add(key []byte, value []byte) bool {
	select {
	case i.read <- store.Model{Key: key, Value: value}:
		return false
	case <-i.stop:
		return true
	}
}

// finished is called by the producing goroutine when IterateRange
// returns, whether exhausted or aborted.
func (i *lazyIterator) finished() {
	close(i.read)
}

// Valid returns whether the current position holds data.
func (i *lazyIterator) Valid() bool {
	return i.hasMore
}

// Next pulls the next pair from the producing goroutine.
func (i *lazyIterator) Next() error {
	i.data, i.hasMore = <-i.read
	return nil
}

// Key returns the key of the cursor.
func (i *lazyIterator) Key() []byte {
	if !i.hasMore {
		panic("read after end of iterator")
	}
	return i.data.Key
}

// Value returns the value of the cursor.
func (i *lazyIterator) Value() []byte {
	if !i.hasMore {
		panic("read after end of iterator")
	}
	return i.data.Value
}

// Close aborts the producing goroutine.
func (i *lazyIterator) Close() {
	i.once.Do(func() {
		i.stop <- struct{}{}
	})
	i.hasMore = false
}
