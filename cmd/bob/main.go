package main

import (
	"os"

	"github.com/example/bob/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
