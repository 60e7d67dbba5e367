package main

import (
	"os"

	"lako/cmd/lako/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(64)
	}
}
