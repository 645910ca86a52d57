package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clasp-net/clasp"
)

func TestSignAndVerify(t *testing.T) {
	priv := GenPrivKeyEd25519()
	pub := priv.PublicKey()

	msg := []byte("foobar")
	msg2 := []byte("dingbooms")

	sig, err := priv.Sign(msg)
	require.NoError(t, err)
	sig2, err := priv.Sign(msg2)
	require.NoError(t, err)
	assert.NotEqual(t, sig, sig2)

	assert.True(t, pub.Verify(msg, sig))
	assert.True(t, pub.Verify(msg2, sig2))

	// wrong message, wrong sig, missing sig all fail
	assert.False(t, pub.Verify(msg, sig2))
	assert.False(t, pub.Verify(msg2, sig))
	assert.False(t, pub.Verify(msg, nil))

	// a different key cannot verify
	pub2 := GenPrivKeyEd25519().PublicKey()
	assert.False(t, pub2.Verify(msg, sig))
}

func TestDeterministicFromSeed(t *testing.T) {
	seed := make([]byte, 32)
	copy(seed, []byte("super-secret-entropy"))

	a := PrivKeyEd25519FromSeed(seed)
	b := PrivKeyEd25519FromSeed(seed)
	assert.Equal(t, a.Ed25519, b.Ed25519)

	// signatures from the same seed are identical, so the same signed
	// transaction always serializes to the same bytes
	msg := []byte("payload")
	sigA, err := a.Sign(msg)
	require.NoError(t, err)
	sigB, err := b.Sign(msg)
	require.NoError(t, err)
	assert.Equal(t, sigA.Ed25519, sigB.Ed25519)
}

func TestAddressIsRawKey(t *testing.T) {
	priv := GenPrivKeyEd25519()
	pub := priv.PublicKey()

	addr := pub.Address()
	require.NoError(t, addr.Validate())
	assert.Equal(t, clasp.AddressLength, len(addr))
	assert.Equal(t, []byte(pub.Ed25519), []byte(addr))
}

func TestSerializeRoundTrip(t *testing.T) {
	pub := GenPrivKeyEd25519().PublicKey()

	bz, err := pub.Marshal()
	require.NoError(t, err)

	var loaded PublicKey
	require.NoError(t, loaded.Unmarshal(bz))
	assert.Equal(t, pub.Ed25519, loaded.Ed25519)
	require.NoError(t, loaded.Validate())
}
