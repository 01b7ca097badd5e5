// Command bugdrill runs the built-in verification harness and prints
// its report to standard output.
//
// No flags, environment variables or files are read. The exit code is
// always 0: the report text itself is the outcome.
package main

import (
	"os"

	"github.com/katalvlaran/bugdrill/drill"
)

func main() {
	drill.Run(os.Stdout)
}
