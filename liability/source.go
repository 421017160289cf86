package liability

import (
	"github.com/pol-sys/pol-go/crypto"
)

// A Source supplies the randomness consumed by the obfuscation
// pipeline. Production code uses CryptoSource; tests that need a
// reproducible split or shuffle inject their own implementation.
type Source interface {
	// Uniform returns an unbiased random integer in [1, n] for n >= 1.
	Uniform(n int64) (int64, error)
	// Tag returns an independent random 64-bit shuffle tag.
	Tag() (uint64, error)
}

// CryptoSource draws from the system's cryptographically strong
// source. The zero value is ready to use.
type CryptoSource struct{}

var _ Source = CryptoSource{}

func (CryptoSource) Uniform(n int64) (int64, error) {
	return crypto.RandUniform(n)
}

func (CryptoSource) Tag() (uint64, error) {
	return crypto.RandUint64()
}
