package clasp

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/clasp-net/clasp/errors"
)

// AddressLength is the length of all account addresses. An address is
// the raw 32 byte ed25519 public key of the account owner, the same
// value stored in the wallet record.
const AddressLength = 32

// Msg is a request for the ledger to make a state transition. It is
// only the payload and must be validated by the handlers. All
// authentication information is in the wrapping Tx.
type Msg interface {
	Persistent

	// Validate performs the stateless sanity checks on the message
	// content. It must not access any state.
	Validate() error

	// Path returns the routing path of the message, used by the
	// router to locate the proper handler. Must be alphanumeric.
	Path() string
}

// Marshaller is anything that can be represented in binary.
type Marshaller interface {
	Marshal() ([]byte, error)
}

// Persistent supports Marshal and Unmarshal. Unmarshal almost always
// requires a pointer receiver, which is why it is separated from
// Marshaller.
type Persistent interface {
	Marshaller
	Unmarshal([]byte) error
}

// Tx represents the data sent from the user to the chain. It includes
// the actual message, along with information needed to authenticate
// the sender.
//
// The application must define its own Tx type embedding all the
// middleware payloads it wishes to support (eg. sigs.SignedTx).
type Tx interface {
	Persistent

	// GetMsg returns the action we wish to communicate.
	GetMsg() (Msg, error)
}

// TxDecoder can parse bytes into a Tx.
type TxDecoder func(txBytes []byte) (Tx, error)

// GetPath returns the path of the message, or (missing) if no message.
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// LoadMsg extracts the message from the transaction and unpacks it
// into the given destination. It also runs the stateless validation
// on the message, so a handler that received a message through
// LoadMsg can rely on it being well formed.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}

	raw, err := msg.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot serialize message")
	}
	if err := destination.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrType, "cannot deserialize message: %s", err)
	}
	return destination.Validate()
}

// TxHash computes the identity of a transaction: the SHA-256 digest
// over its full serialized form, signatures included. The signer's
// public key and the message seed are both covered, so two
// transactions share a hash only if they are byte for byte the same.
func TxHash(raw []byte) []byte {
	h := sha256.Sum256(raw)
	return h[:]
}

// Address identifies an account. It is the raw public key of the
// account owner and is of size AddressLength.
type Address []byte

// Equals checks if two addresses are the same.
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// Clone returns a copy of this address that can be modified safely.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	return append(Address{}, a...)
}

// String returns a human readable string. Currently upper-case hex.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Validate returns an error if the address is not the valid size.
func (a Address) Validate() error {
	if len(a) != AddressLength {
		return errors.Wrapf(errors.ErrInput, "address length: %d", len(a))
	}
	return nil
}

// MarshalJSON provides a hex representation for JSON, to override the
// standard base64 encoding of []byte.
func (a Address) MarshalJSON() ([]byte, error) {
	return []byte(`"` + hex.EncodeToString(a) + `"`), nil
}

// UnmarshalJSON parses JSON in hex representation.
func (a *Address) UnmarshalJSON(src []byte) error {
	raw := strings.Trim(string(src), `"`)
	if raw == "" || raw == "null" {
		*a = nil
		return nil
	}
	bz, err := hex.DecodeString(raw)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "invalid hex address: %s", err)
	}
	*a = bz
	return nil
}
