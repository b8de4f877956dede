package main

import (
	"os"

	"github.com/fitchlang/fitch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
