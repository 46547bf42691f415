// Command intseq generates integer sequences from the command line.
//
//	intseq -start 1 -end 20 -p odd_prime
//	intseq -start 1 -end 100 -formula square_difference
//
// main is a deterministic boundary: all parsing, validation, and
// generation live in the cli package, which is tested black-box; the
// shim only forwards streams and the exit code.
package main

import (
	"os"

	"github.com/katalvlaran/intseq/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
