package publisher

import (
	"github.com/pol-sys/pol-go/application"
	"github.com/pol-sys/pol-go/attestation"
)

// Config contains the publisher's configuration: the path of the
// liabilities file to attest to, the directory the attestation store
// lives in, the path the signing private key is read from, the
// directory proof files are written to, and the split threshold in
// satoshis.
type Config struct {
	*application.CommonConfig

	LiabilitiesPath string `toml:"liabilities_path"`
	StorePath       string `toml:"store_path"`
	SignKeyPath     string `toml:"sign_key_path"`
	ProofDir        string `toml:"proof_dir"`
	Threshold       int64  `toml:"threshold"`
}

var _ application.AppConfig = (*Config)(nil)

// NewConfig initializes a new publisher configuration at the given
// file path, with the given config encoding, liabilities file path,
// attestation store path, signing key path, proof output directory,
// split threshold, and logger configuration.
func NewConfig(file, encoding, liabilitiesPath, storePath, signKeyPath,
	proofDir string, threshold int64, logConfig *application.LoggerConfig) *Config {
	var conf = Config{
		CommonConfig:    application.NewCommonConfig(file, encoding, logConfig),
		LiabilitiesPath: liabilitiesPath,
		StorePath:       storePath,
		SignKeyPath:     signKeyPath,
		ProofDir:        proofDir,
		Threshold:       threshold,
	}
	return &conf
}

// Load initializes a publisher's configuration from the given file
// using the given encoding.
func (conf *Config) Load(file, encoding string) error {
	conf.CommonConfig = application.NewCommonConfig(file, encoding, nil)
	if err := conf.GetLoader().Decode(conf); err != nil {
		return err
	}
	if conf.Threshold == 0 {
		conf.Threshold = attestation.DefaultThreshold
	}
	return nil
}

// Save writes a publisher's configuration.
func (conf *Config) Save() error {
	return conf.GetLoader().Encode(conf)
}

// GetPath returns the publisher's configuration file path.
func (conf *Config) GetPath() string {
	return conf.Path
}
