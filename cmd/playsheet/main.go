// Command playsheet browses playbook catalogs and maintains a tagged
// game-day playsheet.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/playsheet/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// ExitErrors have already been reported by the command.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
