package cmd

import (
	"github.com/pol-sys/pol-go/cli"
)

// RootCmd represents the base "polverify" command when called without
// any subcommands (init, run, ...).
var RootCmd = cli.NewRootCommand("polverify",
	"Proof-of-liabilities verifier for users",
	`polverify checks a custodian's published attestation: it re-builds
the Merkle Sum Tree from the proof file's leaves, compares the root,
and privately recovers the balances of your accounts.`)
