package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math/big"
)

const (
	// HashSizeByte is the size of the hash output in bytes.
	HashSizeByte = 32
	// HashID identifies the used hash as a string.
	HashID = "SHA-256"
	// KeySizeByte is the size of account keys, account subkeys and
	// attestation keys in bytes.
	KeySizeByte = 32
)

// ErrBadRandomRange indicates that a uniform random integer was
// requested from an empty range.
var ErrBadRandomRange = errors.New("[crypto] Random upper bound must be positive")

// Digest hashes all passed byte slices with SHA-256.
// The passed slices won't be mutated.
func Digest(ms ...[]byte) []byte {
	h := sha256.New()
	for _, m := range ms {
		h.Write(m)
	}
	return h.Sum(nil)
}

// Hmac authenticates all passed byte slices with HMAC-SHA-256
// under the given key. The passed slices won't be mutated.
func Hmac(key []byte, ms ...[]byte) []byte {
	h := hmac.New(sha256.New, key)
	for _, m := range ms {
		h.Write(m)
	}
	return h.Sum(nil)
}

// MakeRand returns a random slice of bytes.
// It returns an error if there was a problem while generating
// the random slice.
// It is different from the 'standard' random byte generation as it
// hashes its output before returning it; by hashing the system's
// PRNG output before it is used, we aim to make the random output
// less predictable (even if the system's PRNG isn't as unpredictable
// as desired).
func MakeRand() ([]byte, error) {
	r := make([]byte, HashSizeByte)
	if _, err := rand.Read(r); err != nil {
		return nil, err
	}
	return Digest(r), nil
}

// RandUint64 returns a uniform random integer in [0, 2^64) from the
// system's cryptographically strong source.
func RandUint64() (uint64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// RandUniform returns a uniform random integer in [1, n] for n >= 1.
// The sampling is unbiased for every n; a plain modulo reduction
// would skew small values when n does not divide 2^64.
func RandUniform(n int64) (int64, error) {
	if n < 1 {
		return 0, ErrBadRandomRange
	}
	r, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		return 0, err
	}
	return r.Int64() + 1, nil
}
