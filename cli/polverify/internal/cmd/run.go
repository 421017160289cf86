package cmd

import (
	"fmt"
	"log"
	"os"
	"syscall"

	"github.com/pol-sys/pol-go/application/verifier"
	"github.com/pol-sys/pol-go/attestation"
	"github.com/pol-sys/pol-go/cli"
	"github.com/pol-sys/pol-go/crypto"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
)

// runCmd represents the run command
var runCmd = cli.NewRunCommand("a verification",
	`Verify a published attestation.

This parses the configured proof file, re-builds the tree from its
leaves, and recovers the balances of the accounts listed in the
accounts file. Accounts without a key in the file are prompted for it.
	`, run)

func init() {
	RootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("config", "c", "config.toml", "Path to verifier configuration file")
}

func run(cmd *cobra.Command, args []string) {
	confPath := cmd.Flag("config").Value.String()

	conf := &verifier.Config{}
	if err := conf.Load(confPath, "toml"); err != nil {
		log.Fatal(err)
	}

	entries, err := verifier.ReadAccountsFile(conf.AccountsPath)
	if err != nil {
		log.Fatal(err)
	}
	accounts := make([]attestation.Account, len(entries))
	for i, e := range entries {
		if e.Key == "" {
			e.Key = promptAccountKey(e.UID)
		}
		acct, err := e.Resolve()
		if err != nil {
			log.Fatal(err)
		}
		accounts[i] = acct
	}

	report, err := verifier.New(conf).Verify(accounts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
	printReport(report, entries)
	if !report.TreeOK {
		os.Exit(1)
	}
}

func promptAccountKey(uid string) string {
	fmt.Printf("Account key for %s: ", uid)
	key, err := terminal.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		log.Fatal(err)
	}
	return string(key)
}

func printReport(report *verifier.Report, entries []verifier.AccountEntry) {
	fmt.Println("block height: ", report.BlockHeight)
	fmt.Println("root hash:    ", crypto.EncodeHex(report.Root.Hash))
	fmt.Println("total owed:   ", report.Root.Value, "satoshi")
	if report.TreeOK {
		fmt.Println("tree:          OK")
	} else {
		fmt.Println("tree:          VERIFICATION FAILED")
	}
	if report.RootSigOK != nil {
		if *report.RootSigOK {
			fmt.Println("root sig:      OK")
		} else {
			fmt.Println("root sig:      VERIFICATION FAILED")
		}
	}
	for i, b := range report.Balances {
		fmt.Printf("%s: %d satoshi\n", entries[i].UID, b.Balance)
	}
}
