// Package main is the entry point for the sb CLI tool.
package main

import (
	"os"

	"github.com/calebmoore/sb/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
