// Package publisher implements the custodian side of an attestation:
// it reads the liability export, builds the obfuscated Merkle Sum
// Tree for the requested block height, publishes the proof file, and
// records the attestation in the local store.
package publisher

import (
	"fmt"
	"os"
	"path"

	"github.com/pol-sys/pol-go/application"
	"github.com/pol-sys/pol-go/attestation"
	"github.com/pol-sys/pol-go/crypto"
	"github.com/pol-sys/pol-go/liability"
	"github.com/pol-sys/pol-go/merkletree"
	"github.com/pol-sys/pol-go/storage/kv/leveldbkv"
	"github.com/pol-sys/pol-go/utils"
)

// A Publisher builds and records attestations according to its
// configuration.
type Publisher struct {
	conf   *Config
	logger *application.Logger
}

// New creates a Publisher from a loaded configuration.
func New(conf *Config) *Publisher {
	return &Publisher{
		conf:   conf,
		logger: application.NewLogger(conf.Logger),
	}
}

// Publish runs one full attestation at the given block height and
// returns the path of the written proof file.
func (p *Publisher) Publish(blockHeight uint64) (string, error) {
	liabilities, err := ReadLiabilitiesFile(p.conf.LiabilitiesPath)
	if err != nil {
		return "", fmt.Errorf("reading liabilities: %v", err)
	}
	if len(liabilities) == 0 {
		return "", fmt.Errorf("liabilities file %s is empty", p.conf.LiabilitiesPath)
	}
	p.logger.Info("read liabilities",
		"path", p.conf.LiabilitiesPath, "accounts", len(liabilities))

	tree, err := attestation.Build(blockHeight, liabilities,
		p.conf.Threshold, liability.CryptoSource{})
	if err != nil {
		return "", err
	}
	root, err := tree.Root()
	if err != nil {
		return "", err
	}
	p.logger.Info("built attestation tree",
		"block_height", blockHeight,
		"leaves", len(tree.Leaves()),
		"total", root.Value)

	proofPath := path.Join(p.conf.ProofDir, fmt.Sprintf("attestation_%d.txt", blockHeight))
	f, err := os.Create(proofPath)
	if err != nil {
		return "", err
	}
	if err := attestation.WriteProof(f, blockHeight, tree); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	p.logger.Info("wrote proof file", "path", proofPath)

	if p.conf.StorePath != "" {
		if err := p.record(blockHeight, tree, root); err != nil {
			return "", err
		}
	}
	return proofPath, nil
}

// record persists the attestation, and its root signature when a
// signing key is configured.
func (p *Publisher) record(blockHeight uint64, tree *merkletree.Tree, root merkletree.Node) error {
	db, err := leveldbkv.OpenDB(p.conf.StorePath)
	if err != nil {
		return fmt.Errorf("opening attestation store: %v", err)
	}
	defer db.Close()

	if err := attestation.StoreProof(db, blockHeight, tree); err != nil {
		return err
	}
	p.logger.Info("stored attestation", "store", p.conf.StorePath)

	if p.conf.SignKeyPath == "" {
		return nil
	}
	sk, err := application.LoadSigningKey(p.conf.SignKeyPath, p.conf.Path)
	if err != nil {
		return err
	}
	sig := attestation.SignRoot(sk, blockHeight, root)
	if err := attestation.StoreRootSig(db, blockHeight, sig); err != nil {
		return err
	}
	sigPath := path.Join(p.conf.ProofDir, fmt.Sprintf("attestation_%d.sig", blockHeight))
	if err := utils.WriteFile(sigPath, []byte(crypto.EncodeHex(sig)+"\n"), 0644); err != nil {
		return err
	}
	p.logger.Info("signed attestation root",
		"block_height", blockHeight, "sig", sigPath)
	return nil
}
