package cmd

import (
	"github.com/pol-sys/pol-go/cli"
)

func init() {
	RootCmd.AddCommand(cli.NewVersionCommand("polattest"))
}
