package main

import (
	"os"

	"peerkey/cmd/peerkey/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
