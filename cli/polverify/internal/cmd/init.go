package cmd

import (
	"fmt"
	"os"
	"path"

	"github.com/pol-sys/pol-go/application/verifier"
	"github.com/pol-sys/pol-go/cli"
	"github.com/spf13/cobra"
)

var initCmd = cli.NewInitCommand("a verifier", mkConfigOrExit)

func init() {
	RootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("dir", "d", ".",
		"Location of directory for storing generated files")
}

func mkConfigOrExit(cmd *cobra.Command, args []string) {
	dir := cmd.Flag("dir").Value.String()
	file := path.Join(dir, "config.toml")

	conf := verifier.NewConfig(file, "toml",
		path.Join(dir, "attestation.txt"),
		path.Join(dir, "accounts.toml"),
		"", "")

	if err := conf.Save(); err != nil {
		fmt.Println("Couldn't save config. Error message: [" +
			err.Error() + "]")
		os.Exit(-1)
	}
}
