package main

import (
	"os"

	"github.com/quantatutor/quanta/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
