// Package main is the entry point for the justsplit CLI.
package main

import (
	"os"

	"github.com/mmynk/justsplit/cmd/justsplit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
