package main

import (
	"context"
	"os"

	"github.com/idilsaglam/checklist/internal/cli"
	"github.com/idilsaglam/checklist/internal/ui"
)

func main() {
	cmd := cli.NewRootCmd()
	err := cmd.ExecuteContext(context.Background())
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
	}
	os.Exit(cli.ExitCode(err))
}
