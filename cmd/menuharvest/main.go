// Package main is the entry point for the menuharvest CLI.
package main

import (
	"os"

	"github.com/menuharvest/menuharvest/cmd/menuharvest/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
