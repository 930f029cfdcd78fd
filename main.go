package main

import (
	"os"

	"github.com/workspace-labs/create-workspace/internal/cli"
	"github.com/workspace-labs/create-workspace/internal/errors"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
