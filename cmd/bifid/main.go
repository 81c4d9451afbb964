package main

import (
	"os"

	"bifid/cmd/bifid/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
