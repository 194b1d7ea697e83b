package main

import (
	"os"

	"github.com/wnxy/LogLibrary/cmd/swlog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
