package main

import (
	"os"

	"github.com/izouxv/goShamir/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
