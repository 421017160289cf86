// Package sign wraps the ed25519 signature scheme used to bind a
// published attestation root to the custodian's identity.
package sign

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/ed25519"
)

const (
	// PrivateKeySize is the size of a serialized private key in bytes.
	PrivateKeySize = 64
	// PublicKeySize is the size of a serialized public key in bytes.
	PublicKeySize = 32
	// SignatureSize is the size of a signature in bytes.
	SignatureSize = 64
)

type PrivateKey ed25519.PrivateKey
type PublicKey ed25519.PublicKey

// GenerateKey creates a new signing key pair from the given reader,
// or from the system's cryptographically strong source if rnd is nil.
func GenerateKey(rnd io.Reader) (PrivateKey, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	_, sk, err := ed25519.GenerateKey(rnd)
	return PrivateKey(sk), err
}

func (key PrivateKey) Sign(message []byte) []byte {
	return ed25519.Sign(ed25519.PrivateKey(key), message)
}

func (key PrivateKey) Public() (PublicKey, bool) {
	pk, ok := ed25519.PrivateKey(key).Public().(ed25519.PublicKey)
	return PublicKey(pk), ok
}

func (pk PublicKey) Verify(message, sig []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(pk), message, sig)
}
