package main

import (
	"os"

	"github.com/almanachq/chinacal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
