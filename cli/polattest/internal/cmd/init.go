package cmd

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/pol-sys/pol-go/application"
	"github.com/pol-sys/pol-go/application/publisher"
	"github.com/pol-sys/pol-go/attestation"
	"github.com/pol-sys/pol-go/cli"
	"github.com/spf13/cobra"
)

var initCmd = cli.NewInitCommand("a publisher", mkConfigOrExit)

func init() {
	RootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("dir", "d", ".",
		"Location of directory for storing generated files")
	initCmd.Flags().BoolP("keygen", "k", true,
		"Generate a signing key pair for attestation roots")
}

func mkConfigOrExit(cmd *cobra.Command, args []string) {
	dir := cmd.Flag("dir").Value.String()
	file := path.Join(dir, "config.toml")

	logger := &application.LoggerConfig{
		Environment: "development",
		Path:        path.Join(dir, "polattest.log"),
	}
	conf := publisher.NewConfig(file, "toml",
		path.Join(dir, "liabilities.csv"),
		path.Join(dir, "attestations.db"),
		"sign.priv", dir,
		attestation.DefaultThreshold, logger)

	if err := conf.Save(); err != nil {
		fmt.Println("Couldn't save config. Error message: [" +
			err.Error() + "]")
		os.Exit(-1)
	}

	if keygen, _ := strconv.ParseBool(cmd.Flag("keygen").Value.String()); keygen {
		err := application.SaveSigningKeyPair(
			path.Join(dir, "sign.priv"), path.Join(dir, "sign.pub"))
		if err != nil {
			fmt.Println("Couldn't generate signing keys. Error message: [" +
				err.Error() + "]")
			os.Exit(-1)
		}
	}
}
