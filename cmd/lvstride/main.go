// SPDX-License-Identifier: MIT

// Package main provides the entry point for the lvstride CLI.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvstride/cmd/lvstride/commands"
)

func main() {
	root := commands.NewRootCommand(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
