package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/pol-sys/pol-go/application/publisher"
	"github.com/pol-sys/pol-go/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = cli.NewRunCommand("an attestation",
	`Build and publish one attestation.

This reads the configured liabilities file, builds the obfuscated
Merkle Sum Tree for the given block height, and writes the proof file
users verify against.
	`, run)

func init() {
	RootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("config", "c", "config.toml", "Path to publisher configuration file")
	runCmd.Flags().Uint64P("height", "b", 0, "Block height identifying the attestation epoch")
	runCmd.MarkFlagRequired("height")
}

func run(cmd *cobra.Command, args []string) {
	confPath := cmd.Flag("config").Value.String()
	blockHeight, err := strconv.ParseUint(cmd.Flag("height").Value.String(), 10, 64)
	if err != nil {
		log.Fatal(err)
	}

	conf := &publisher.Config{}
	if err := conf.Load(confPath, "toml"); err != nil {
		log.Fatal(err)
	}

	proofPath, err := publisher.New(conf).Publish(blockHeight)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
	fmt.Println("Attestation published:", proofPath)
}
