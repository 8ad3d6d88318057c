package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/matrixlab/cmd/matrixlab"
	"github.com/arthur-debert/matrixlab/internal/version"
)

func main() {
	rootCmd := matrixlab.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "MATRIXLAB",
		Section: "1",
		Source:  "matrixlab " + version.Version,
		Manual:  "matrixlab manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
