package app

import (
	"github.com/clasp-net/clasp"
)

// ChainInitializers lets you initialize many extensions with one
// function.
func ChainInitializers(inits ...clasp.Initializer) clasp.Initializer {
	return chainInitializer{inits}
}

type chainInitializer struct {
	inits []clasp.Initializer
}

// FromGenesis will pass opts to all Initializers in the list, aborting
// at the first error.
func (c chainInitializer) FromGenesis(opts clasp.Options, kv clasp.KVStore) error {
	for _, i := range c.inits {
		if i == nil {
			continue
		}
		if err := i.FromGenesis(opts, kv); err != nil {
			return err
		}
	}
	return nil
}
