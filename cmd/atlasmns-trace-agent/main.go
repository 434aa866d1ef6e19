package main

import (
	"os"

	"github.com/dreibh/atlasmns-trace-TESTONLY/internal/cli"
	"github.com/dreibh/atlasmns-trace-TESTONLY/internal/engine"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stderr, engine.NewHandoff()))
}
