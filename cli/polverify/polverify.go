// Executable proof-of-liabilities verifier for users. Run
// "polverify help" for usage instructions.
package main

import (
	"github.com/pol-sys/pol-go/cli"
	"github.com/pol-sys/pol-go/cli/polverify/internal/cmd"
)

func main() {
	cli.Execute(cmd.RootCmd)
}
