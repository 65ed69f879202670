package main

import (
	"os"

	"github.com/dharanetra/dhara/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
