package application

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/pol-sys/pol-go/crypto"
	"github.com/pol-sys/pol-go/crypto/sign"
	"github.com/pol-sys/pol-go/utils"
)

// AppConfig provides an abstraction of the
// underlying encoding format for the configs.
type AppConfig interface {
	Load(file, encoding string) error
	Save() error
	GetPath() string
}

// CommonConfig is the generic type used to specify the configuration
// of any kind of attestation executable (publisher, verifier etc.).
// It contains some common configuration values including the file
// path, logger configuration, and config loader.
type CommonConfig struct {
	Path     string
	Logger   *LoggerConfig `toml:"logger"`
	Encoding string
	loader   ConfigLoader
}

// NewCommonConfig initializes an application's config file path,
// its loader for the given encoding, and the logger configuration.
// Note: This constructor must be called in each Load() method
// implementation of an AppConfig.
func NewCommonConfig(file, encoding string, logger *LoggerConfig) *CommonConfig {
	return &CommonConfig{
		Path:     file,
		Logger:   logger,
		Encoding: encoding,
		loader:   newConfigLoader(encoding),
	}
}

// GetLoader returns the config's loader.
func (conf *CommonConfig) GetLoader() ConfigLoader {
	return conf.loader
}

// LoadSigningPubKey loads a public signing key at the given path
// specified in the given config file.
// If there is any parsing error or the key is malformed,
// LoadSigningPubKey() returns an error with a nil key.
func LoadSigningPubKey(path, file string) (sign.PublicKey, error) {
	signPath := utils.ResolvePath(path, file)
	signPubKey, err := ioutil.ReadFile(signPath)
	if err != nil {
		return nil, fmt.Errorf("Cannot read signing key: %v", err)
	}
	if len(signPubKey) != sign.PublicKeySize {
		return nil, fmt.Errorf("Signing public-key must be 32 bytes (got %d)", len(signPubKey))
	}
	return sign.PublicKey(signPubKey), nil
}

// LoadSigningKey loads a private signing key at the given path
// specified in the given config file.
func LoadSigningKey(path, file string) (sign.PrivateKey, error) {
	signPath := utils.ResolvePath(path, file)
	signKey, err := ioutil.ReadFile(signPath)
	if err != nil {
		return nil, fmt.Errorf("Cannot read signing key: %v", err)
	}
	if len(signKey) != sign.PrivateKeySize {
		return nil, fmt.Errorf("Signing key must be 64 bytes (got %d)", len(signKey))
	}
	return sign.PrivateKey(signKey), nil
}

// SaveSigningKeyPair generates a fresh signing key pair and writes
// the private and public halves to the two given paths.
func SaveSigningKeyPair(skPath, pkPath string) error {
	sk, err := sign.GenerateKey(nil)
	if err != nil {
		return err
	}
	pk, ok := sk.Public()
	if !ok {
		return fmt.Errorf("Cannot derive public key")
	}
	if err := utils.WriteFile(skPath, []byte(sk), 0600); err != nil {
		return err
	}
	return utils.WriteFile(pkPath, []byte(pk), 0644)
}

// LoadAccountKey reads and decodes the 64-lowercase-hex account key
// at the given path.
func LoadAccountKey(path, file string) ([]byte, error) {
	raw, err := ioutil.ReadFile(utils.ResolvePath(path, file))
	if err != nil {
		return nil, fmt.Errorf("Cannot read account key: %v", err)
	}
	return DecodeAccountKey(string(raw))
}

// DecodeAccountKey decodes a 64-lowercase-hex account key string,
// tolerating surrounding whitespace.
func DecodeAccountKey(s string) ([]byte, error) {
	key, err := crypto.DecodeHex(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	if len(key) != crypto.KeySizeByte {
		return nil, fmt.Errorf("Account key must be %d bytes (got %d)",
			crypto.KeySizeByte, len(key))
	}
	return key, nil
}
