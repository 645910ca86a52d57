package wallet

import (
	"testing"

	"github.com/clasp-net/clasp/clasptest/assert"
	"github.com/clasp-net/clasp/errors"
	"github.com/clasp-net/clasp/store"
)

func TestChainDigest(t *testing.T) {
	// an empty history has an empty digest
	assert.Equal(t, 0, len(ChainDigest(nil)))

	// folding step by step or all at once gives the same digest
	h1, h2, h3 := hash("one"), hash("two"), hash("three")
	step := ChainDigest(ChainDigest(ChainDigest(nil, h1), h2), h3)
	assert.Equal(t, ChainDigest(nil, h1, h2, h3), step)

	// order matters
	if string(step) == string(ChainDigest(nil, h2, h1, h3)) {
		t.Fatal("digest must depend on the entry order")
	}
}

func TestHistoryAppend(t *testing.T) {
	db := store.MemStore()
	hb := NewHistoryBucket()
	w := &Wallet{PubKey: addr(1), Name: "alice"}

	hashes := [][]byte{hash("one"), hash("two"), hash("three")}
	for _, h := range hashes {
		assert.Nil(t, hb.Append(db, w, h))
	}
	assert.Equal(t, uint64(3), w.HistoryLen)
	assert.Equal(t, ChainDigest(nil, hashes...), w.HistoryHash)

	entries, err := hb.Entries(db, w.PubKey, 0, w.HistoryLen)
	assert.Nil(t, err)
	assert.Equal(t, hashes, entries)

	_, err = hb.Entries(db, w.PubKey, 0, 4)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestInclusionProof(t *testing.T) {
	db := store.MemStore()
	hb := NewHistoryBucket()
	w := &Wallet{PubKey: addr(1), Name: "alice"}

	hashes := [][]byte{hash("one"), hash("two"), hash("three"), hash("four")}
	for _, h := range hashes {
		assert.Nil(t, hb.Append(db, w, h))
	}

	for start := uint64(0); start <= w.HistoryLen; start++ {
		proof, err := hb.NewInclusionProof(db, w, start)
		assert.Nil(t, err)
		assert.Nil(t, proof.Verify(w.HistoryLen, w.HistoryHash))
	}

	_, err := hb.NewInclusionProof(db, w, w.HistoryLen+1)
	assert.IsErr(t, errors.ErrInput, err)
}

// Any change to the proven entries must be detected.
func TestProofTamperEvidence(t *testing.T) {
	db := store.MemStore()
	hb := NewHistoryBucket()
	w := &Wallet{PubKey: addr(1), Name: "alice"}

	hashes := [][]byte{hash("one"), hash("two"), hash("three")}
	for _, h := range hashes {
		assert.Nil(t, hb.Append(db, w, h))
	}

	proof, err := hb.NewInclusionProof(db, w, 1)
	assert.Nil(t, err)

	replaced := &Proof{
		Start:    proof.Start,
		Prior:    proof.Prior,
		TxHashes: [][]byte{hash("forged"), proof.TxHashes[1]},
	}
	assert.IsErr(t, errors.ErrState, replaced.Verify(w.HistoryLen, w.HistoryHash))

	reordered := &Proof{
		Start:    proof.Start,
		Prior:    proof.Prior,
		TxHashes: [][]byte{proof.TxHashes[1], proof.TxHashes[0]},
	}
	assert.IsErr(t, errors.ErrState, reordered.Verify(w.HistoryLen, w.HistoryHash))

	dropped := &Proof{
		Start:    proof.Start,
		Prior:    proof.Prior,
		TxHashes: proof.TxHashes[:1],
	}
	assert.IsErr(t, errors.ErrState, dropped.Verify(w.HistoryLen, w.HistoryHash))
}
