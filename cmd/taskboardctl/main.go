// Package main is the entry point for the taskboard operator CLI.
package main

import (
	"fmt"
	"os"

	"gym_backoffice_backend/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
