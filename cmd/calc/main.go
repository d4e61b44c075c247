// Command calc is a keypad calculator for the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/keycalc/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "calc:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
