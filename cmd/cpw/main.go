package main

import (
	"os"

	"github.com/rnorris7756/CPW/cmd/cpw/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
