package main

import (
	"os"

	"github.com/cadalog/cadalog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
