package main

import (
	"os"

	"github.com/Nirdeo/AgenticHub/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
