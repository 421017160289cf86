package verifier

import (
	"github.com/pol-sys/pol-go/application"
	"github.com/pol-sys/pol-go/crypto/sign"
)

// Config contains the verifier's configuration: the paths of the
// proof file and of the accounts file, and optionally the custodian's
// signing public key and the detached root signature to check the
// proof against.
type Config struct {
	*application.CommonConfig

	ProofPath    string `toml:"proof_path"`
	AccountsPath string `toml:"accounts_path"`

	SignPubkeyPath string `toml:"sign_pubkey_path,omitempty"`
	RootSigPath    string `toml:"root_sig_path,omitempty"`

	SigningPubKey sign.PublicKey `toml:"-"`
}

var _ application.AppConfig = (*Config)(nil)

// NewConfig initializes a new verifier configuration at the given
// file path, with the given config encoding, proof file path,
// accounts file path, and signing public key path.
func NewConfig(file, encoding, proofPath, accountsPath,
	signPubkeyPath, rootSigPath string) *Config {
	var conf = Config{
		CommonConfig:   application.NewCommonConfig(file, encoding, nil),
		ProofPath:      proofPath,
		AccountsPath:   accountsPath,
		SignPubkeyPath: signPubkeyPath,
		RootSigPath:    rootSigPath,
	}
	return &conf
}

// Load initializes a verifier's configuration from the given file
// using the given encoding.
// When a signing public key path is configured, the key is read and
// parsed as well.
func (conf *Config) Load(file, encoding string) error {
	conf.CommonConfig = application.NewCommonConfig(file, encoding, nil)
	if err := conf.GetLoader().Decode(conf); err != nil {
		return err
	}
	if conf.SignPubkeyPath != "" {
		signPubKey, err := application.LoadSigningPubKey(conf.SignPubkeyPath, file)
		if err != nil {
			return err
		}
		conf.SigningPubKey = signPubKey
	}
	return nil
}

// Save writes a verifier's configuration.
func (conf *Config) Save() error {
	return conf.GetLoader().Encode(conf)
}

// GetPath returns the verifier's configuration file path.
func (conf *Config) GetPath() string {
	return conf.Path
}
