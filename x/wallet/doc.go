/*
Package wallet implements a currency ledger with escrowed transfers.

A wallet is created for a public key and holds a balance, funds
retained in pending transfers, and a hash chained history of the
transactions that touched it. Funds enter circulation through issue
transactions and move between wallets in two phases: a transfer escrows
the amount from the sender and names an approver, and the approval
releases the escrow to the receiver. At every point the sum of all
balances and retained funds equals the total issued supply.
*/
package wallet
