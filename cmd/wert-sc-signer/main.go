package main

import (
	"os"

	"wertsigner/cmd/wert-sc-signer/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
