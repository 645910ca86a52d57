/*
Package clasp defines the common interfaces that tie the ledger node
together: transactions and messages, the key-value store hierarchy,
handlers and decorators, and the context helpers used to pass
block-level information into the execution stack.

The packages in this repository implement a deterministic currency
ledger. Wallets hold spendable and escrowed funds, transfers move money
through a two-phase escrow-and-approval protocol, and every wallet
carries a hash-chained history of the transactions that touched it.
Transaction ordering is delegated to an external consensus engine via
ABCI; given the same ordered transactions and the same initial state,
every replica reaches an identical application hash.
*/
package clasp
