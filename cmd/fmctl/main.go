package main

import (
	"os"

	"github.com/findelmundo/core/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
