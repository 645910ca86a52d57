package server

import (
	"encoding/json"
	"io/ioutil"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/store"
)

// ValidateGenesis runs the given initializer over each genesis file,
// discarding the produced state. A non-nil error means the node would
// refuse to initialize from that file.
func ValidateGenesis(ini clasp.Initializer, genesisPaths []string) error {
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini clasp.Initializer, genesisPath string) error {
	b, err := ioutil.ReadFile(genesisPath)
	if err != nil {
		return errors.Wrap(err, "cannot read genesis file")
	}

	var genesis struct {
		State clasp.Options `json:"app_state"`
	}
	if err := json.Unmarshal(b, &genesis); err != nil {
		return errors.Wrap(err, "cannot JSON deserialize genesis")
	}

	// Use in memory store because we want to discard the result.
	db := store.MemStore()

	if err := ini.FromGenesis(genesis.State, db); err != nil {
		return errors.Wrap(err, "cannot initialize from genesis")
	}
	return nil
}
