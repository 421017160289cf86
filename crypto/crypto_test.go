package crypto

import (
	"bytes"
	"testing"
)

func TestDigest(t *testing.T) {
	// Standard SHA-256 vectors.
	if got := EncodeHex(Digest(nil)); got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Error("wrong empty digest", got)
	}
	if got := EncodeHex(Digest([]byte("abc"))); got != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Error("wrong digest", got)
	}
	// Digest over multiple slices equals digest of the concatenation.
	if !bytes.Equal(Digest([]byte("ab"), []byte("c")), Digest([]byte("abc"))) {
		t.Error("digest is not a function of the concatenation")
	}
}

func TestHmac(t *testing.T) {
	// RFC 4231 test case 2.
	got := EncodeHex(Hmac([]byte("Jefe"), []byte("what do ya want for nothing?")))
	if got != "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843" {
		t.Error("wrong hmac", got)
	}
	if !bytes.Equal(
		Hmac([]byte("Jefe"), []byte("what do ya "), []byte("want for nothing?")),
		Hmac([]byte("Jefe"), []byte("what do ya want for nothing?"))) {
		t.Error("hmac is not a function of the concatenation")
	}
}

func TestDeriveKeys(t *testing.T) {
	accountKey := bytes.Repeat([]byte{0xab}, KeySizeByte)
	subkey := DeriveAccountSubkey(accountKey, "satoshi@mail.com", 1234)
	if got := EncodeHex(subkey); got != "acbf0b072454f47cf5432a68900226cba0e0a960a24151f9065f9e589ddaf7ea" {
		t.Error("wrong account subkey", got)
	}
	attKey := DeriveAttestationKey(subkey, 1000, 1234)
	if got := EncodeHex(attKey); got != "fc9b9fa340018132deb0a0c388c4d0fd17ad374249743014a5f3ee80dba5b6f5" {
		t.Error("wrong attestation key", got)
	}
}

func TestDecodeHex(t *testing.T) {
	b, err := DecodeHex("00ff10")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{0x00, 0xff, 0x10}) {
		t.Error("wrong decoding")
	}
	if _, err := DecodeHex("00FF10"); err != ErrUppercaseHex {
		t.Error("uppercase hex accepted:", err)
	}
	if _, err := DecodeHex("zz"); err == nil {
		t.Error("invalid hex accepted")
	}
	if _, err := DecodeHex("0"); err == nil {
		t.Error("odd-length hex accepted")
	}
}

func TestDecodeAccountUID(t *testing.T) {
	// base32("\x04\xd2") == "ATJA" unpadded; 0x04d2 == 1234.
	id, err := DecodeAccountUID("ATJA")
	if err != nil {
		t.Fatal(err)
	}
	if id != 1234 {
		t.Error("wrong account id:", id)
	}
	if _, err := DecodeAccountUID("1nope"); err == nil {
		t.Error("invalid base32 accepted")
	}
	// Nine decoded bytes cannot fit in 64 bits.
	if _, err := DecodeAccountUID("AEBAGBAFAYDQQCI"); err != ErrAccountUIDRange {
		t.Error("oversized UID accepted:", err)
	}
}

func TestRandUniform(t *testing.T) {
	if _, err := RandUniform(0); err != ErrBadRandomRange {
		t.Error("empty range accepted:", err)
	}
	r, err := RandUniform(1)
	if err != nil {
		t.Fatal(err)
	}
	if r != 1 {
		t.Error("RandUniform(1) must be 1, got", r)
	}
	for i := 0; i < 64; i++ {
		r, err := RandUniform(7)
		if err != nil {
			t.Fatal(err)
		}
		if r < 1 || r > 7 {
			t.Error("out of range:", r)
		}
	}
}

func TestMakeRand(t *testing.T) {
	r1, err := MakeRand()
	if err != nil {
		t.Fatal(err)
	}
	r2, err := MakeRand()
	if err != nil {
		t.Fatal(err)
	}
	if len(r1) != HashSizeByte {
		t.Error("wrong length")
	}
	if bytes.Equal(r1, r2) {
		t.Error("two random draws are equal")
	}
}
