package sign

import (
	"bytes"
	"testing"
)

func TestSignVerify(t *testing.T) {
	key, err := GenerateKey(nil)
	if err != nil {
		t.Fatal(err)
	}

	message := []byte("test message")
	sig := key.Sign(message)

	pk, ok := key.Public()
	if !ok {
		t.Errorf("bad PK?")
	}

	if !pk.Verify(message, sig) {
		t.Errorf("valid signature rejected")
	}

	wrongMessage := []byte("wrong message")
	if pk.Verify(wrongMessage, sig) {
		t.Errorf("signature of different message accepted")
	}
}

func TestDeterministicKey(t *testing.T) {
	rnd := bytes.NewReader([]byte("deterministic tests need 256 bit"))
	key1, err := GenerateKey(rnd)
	if err != nil {
		t.Fatal(err)
	}
	rnd = bytes.NewReader([]byte("deterministic tests need 256 bit"))
	key2, err := GenerateKey(rnd)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(key1, key2) {
		t.Error("same seed produced different keys")
	}
}
