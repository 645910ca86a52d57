package bech32

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payload := []byte("wallet-address-payload")

	enc, err := Encode("clasp", payload)
	if err != nil {
		t.Fatalf("cannot encode: %s", err)
	}
	if !strings.HasPrefix(string(enc), "clasp1") {
		t.Fatalf("missing human readable prefix: %q", enc)
	}

	hrp, got, err := Decode(string(enc))
	if err != nil {
		t.Fatalf("cannot decode: %s", err)
	}
	if hrp != "clasp" {
		t.Fatalf("invalid human readable part: %q", hrp)
	}
	if !bytes.Equal(payload, got) {
		t.Logf("want %d", payload)
		t.Logf("got  %d", got)
		t.Fatal("invalid decode")
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, _, err := Decode("clasp1not-bech32-at-all"); err == nil {
		t.Fatal("decoding garbage must fail")
	}
}
