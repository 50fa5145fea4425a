// Command sparsemx adds, subtracts or multiplies two sparse matrices stored
// in text files and writes the result to ./result_outputs (see --output-dir).
//
//	sparsemx add a.txt b.txt
//	sparsemx run --op 3 a.txt b.txt
package main

import (
	"os"

	"github.com/katalvlaran/sparsemx/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
