package main

import (
	"os"

	"github.com/lintang-b-s/Pyramidx/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
