// Package verifier implements the user side of an attestation: it
// parses a published proof file, checks the tree's integrity and,
// when the custodian's public key is available, the root signature,
// and recovers the balances of the user's accounts.
package verifier

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/pol-sys/pol-go/application"
	"github.com/pol-sys/pol-go/attestation"
	"github.com/pol-sys/pol-go/crypto"
	"github.com/pol-sys/pol-go/merkletree"
	"github.com/pol-sys/pol-go/utils"
)

// A Report is the outcome of verifying one proof file for a set of
// accounts. TreeOK reports whether the tree's levels are consistent
// with its leaves; a false value means the proof is not to be
// trusted, but is reported rather than raised. RootSigOK is nil when
// no public key or signature was available.
type Report struct {
	BlockHeight uint64
	Root        merkletree.Node
	TreeOK      bool
	RootSigOK   *bool
	Balances    []attestation.Balance
}

// A Verifier checks proof files according to its configuration.
type Verifier struct {
	conf   *Config
	logger *application.Logger
}

// New creates a Verifier from a loaded configuration.
func New(conf *Config) *Verifier {
	return &Verifier{
		conf:   conf,
		logger: application.NewLogger(conf.Logger),
	}
}

// Verify parses the configured proof file, checks it, and recovers
// the balances of the given accounts.
func (v *Verifier) Verify(accounts []attestation.Account) (*Report, error) {
	f, err := os.Open(v.conf.ProofPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	blockHeight, tree, err := attestation.ReadProof(f)
	if err != nil {
		return nil, err
	}
	root, err := tree.Root()
	if err != nil {
		return nil, err
	}
	v.logger.Info("parsed proof",
		"path", v.conf.ProofPath,
		"block_height", blockHeight,
		"leaves", len(tree.Leaves()))

	report := &Report{
		BlockHeight: blockHeight,
		Root:        root,
		TreeOK:      tree.Verify(),
	}
	if !report.TreeOK {
		v.logger.Warn("tree verification failed", "block_height", blockHeight)
	}

	if v.conf.SigningPubKey != nil && v.conf.RootSigPath != "" {
		ok, err := v.checkRootSig(blockHeight, root)
		if err != nil {
			return nil, err
		}
		report.RootSigOK = &ok
	}

	report.Balances = attestation.RecoverBalances(tree.Leaves(), blockHeight, accounts)
	return report, nil
}

func (v *Verifier) checkRootSig(blockHeight uint64, root merkletree.Node) (bool, error) {
	raw, err := ioutil.ReadFile(utils.ResolvePath(v.conf.RootSigPath, v.conf.Path))
	if err != nil {
		return false, fmt.Errorf("Cannot read root signature: %v", err)
	}
	sig, err := crypto.DecodeHex(strings.TrimSpace(string(raw)))
	if err != nil {
		return false, err
	}
	return attestation.VerifyRootSig(v.conf.SigningPubKey, blockHeight, root, sig), nil
}
