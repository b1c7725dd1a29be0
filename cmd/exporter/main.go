package main

import (
	"os"

	"github.com/arthur-debert/exporter/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
