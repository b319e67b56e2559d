package main

import (
	"os"

	"github.com/coreman2200/funtimes-sevenseg/cmd"
)

func main() {
	if err := cmd.Root.Execute(); err != nil {
		os.Exit(1)
	}
}
