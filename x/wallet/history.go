package wallet

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"

	"github.com/clasp-net/clasp"
	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/orm"
)

// ChainDigest folds transaction hashes into a wallet history digest.
// Every appended hash advances the digest to SHA256(prior || txHash),
// so any change to an entry, its position, or the set of entries
// yields a different final digest. The digest of an empty history is
// empty.
func ChainDigest(prior []byte, txHashes ...[]byte) []byte {
	digest := prior
	for _, txHash := range txHashes {
		h := sha256.New()
		h.Write(digest)
		h.Write(txHash)
		digest = h.Sum(nil)
	}
	return digest
}

// HistoryBucket keeps the per wallet transaction history. Entries are
// keyed by the wallet address followed by the big endian entry index,
// so iterating the address prefix yields them in order.
type HistoryBucket struct {
	orm.Bucket
}

// NewHistoryBucket returns a bucket for keeping wallet histories.
func NewHistoryBucket() HistoryBucket {
	return HistoryBucket{
		Bucket: orm.NewBucket("history", orm.NewSimpleObj(nil, &HistoryEntry{})),
	}
}

// Append records the transaction hash as the next history entry of the
// wallet and advances the wallet digest. The wallet is updated in
// memory and must be saved by the caller.
func (hb HistoryBucket) Append(db clasp.KVStore, w *Wallet, txHash []byte) error {
	key := historyKey(w.PubKey, w.HistoryLen)
	obj := orm.NewSimpleObj(key, &HistoryEntry{TxHash: txHash})
	if err := hb.Save(db, obj); err != nil {
		return errors.Wrap(err, "cannot append history entry")
	}
	w.HistoryLen++
	w.HistoryHash = ChainDigest(w.HistoryHash, txHash)
	return nil
}

// Entries returns count transaction hashes recorded for the wallet,
// starting at the given index.
func (hb HistoryBucket) Entries(db clasp.ReadOnlyKVStore, addr clasp.Address, start, count uint64) ([][]byte, error) {
	res := make([][]byte, 0, count)
	for i := start; i < start+count; i++ {
		obj, err := hb.Get(db, historyKey(addr, i))
		if err != nil {
			return nil, err
		}
		if obj == nil {
			return nil, errors.Wrapf(errors.ErrNotFound, "history entry %d", i)
		}
		entry, ok := obj.Value().(*HistoryEntry)
		if !ok {
			return nil, errors.Wrapf(errors.ErrType, "%T", obj.Value())
		}
		res = append(res, entry.TxHash)
	}
	return res, nil
}

// NewInclusionProof builds a proof that the history entries of the
// wallet from start on are included in its digest.
func (hb HistoryBucket) NewInclusionProof(db clasp.ReadOnlyKVStore, w *Wallet, start uint64) (*Proof, error) {
	if start > w.HistoryLen {
		return nil, errors.Wrapf(errors.ErrInput, "start %d beyond history length %d", start, w.HistoryLen)
	}
	head, err := hb.Entries(db, w.PubKey, 0, start)
	if err != nil {
		return nil, err
	}
	tail, err := hb.Entries(db, w.PubKey, start, w.HistoryLen-start)
	if err != nil {
		return nil, err
	}
	return &Proof{
		Start:    start,
		Prior:    ChainDigest(nil, head...),
		TxHashes: tail,
	}, nil
}

// Proof shows that a run of transaction hashes is part of a wallet
// history. Prior is the digest over the first Start entries, TxHashes
// are the entries from Start to the end of the history.
type Proof struct {
	Start    uint64
	Prior    []byte
	TxHashes [][]byte
}

// Verify recomputes the digest from the proof and compares it against
// the history length and digest stored in a wallet. A modified,
// missing or reordered entry fails the comparison.
func (p *Proof) Verify(historyLen uint64, historyHash []byte) error {
	if p.Start+uint64(len(p.TxHashes)) != historyLen {
		return errors.Wrap(errors.ErrState, "history length mismatch")
	}
	if !bytes.Equal(ChainDigest(p.Prior, p.TxHashes...), historyHash) {
		return errors.Wrap(errors.ErrState, "history digest mismatch")
	}
	return nil
}

func historyKey(addr clasp.Address, index uint64) []byte {
	key := make([]byte, len(addr)+8)
	copy(key, addr)
	binary.BigEndian.PutUint64(key[len(addr):], index)
	return key
}
