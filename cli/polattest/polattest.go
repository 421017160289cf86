// Executable proof-of-liabilities publisher for custodians. Run
// "polattest help" for usage instructions.
package main

import (
	"github.com/pol-sys/pol-go/cli"
	"github.com/pol-sys/pol-go/cli/polattest/internal/cmd"
)

func main() {
	cli.Execute(cmd.RootCmd)
}
