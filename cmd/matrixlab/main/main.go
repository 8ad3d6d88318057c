package main

import (
	"os"

	"github.com/arthur-debert/matrixlab/cmd/matrixlab"
)

func main() {
	// Errors are rendered by the command that returned them
	rootCmd := matrixlab.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
