package cmd

import (
	"github.com/pol-sys/pol-go/cli"
)

// RootCmd represents the base "polattest" command when called without
// any subcommands (init, run, ...).
var RootCmd = cli.NewRootCommand("polattest",
	"Proof-of-liabilities publisher for custodians",
	`polattest builds the Merkle Sum Tree attestation for a custodian's
liabilities at a given block height and publishes the proof file that
users verify their balances against.`)
