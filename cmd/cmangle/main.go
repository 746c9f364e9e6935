// Cmangle obfuscates C source code.
package main

import (
	"os"

	"github.com/cmangle/cmangle/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
