// Package main provides the entry point for the tentapress CLI.
package main

import (
	"os"

	"github.com/tentapress/tentapress/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
