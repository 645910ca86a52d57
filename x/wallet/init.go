package wallet

import (
	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/errors"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ clasp.Initializer = (*Initializer)(nil)

// FromGenesis initializes the pre-funded wallets declared in the
// genesis file and accounts their balances in the total supply.
//
//	"wallet": [
//	  {"address": "<hex>", "name": "alice", "balance": 100}
//	]
func (*Initializer) FromGenesis(opts clasp.Options, db clasp.KVStore) error {
	var accounts []struct {
		Address clasp.Address `json:"address"`
		Name    string        `json:"name"`
		Balance uint64        `json:"balance"`
	}
	if err := opts.ReadOptions("wallet", &accounts); err != nil {
		return errors.Wrap(err, "cannot load wallet genesis options")
	}

	wallets := NewWalletBucket()
	var issued uint64
	for i, acc := range accounts {
		if err := acc.Address.Validate(); err != nil {
			return errors.Wrapf(err, "wallet #%d address", i)
		}
		if issued+acc.Balance < issued {
			return errors.Wrapf(ErrInvalidAmount, "wallet #%d overflows the supply", i)
		}
		issued += acc.Balance

		w := &Wallet{
			PubKey:  acc.Address,
			Name:    acc.Name,
			Balance: acc.Balance,
		}
		if err := wallets.Put(db, acc.Address, w); err != nil {
			return errors.Wrapf(err, "cannot store wallet #%d", i)
		}
	}

	if issued > 0 {
		if err := NewSupplyBucket().Put(db, supplyKey, &Supply{Issued: issued}); err != nil {
			return errors.Wrap(err, "cannot store the supply")
		}
	}
	return nil
}
