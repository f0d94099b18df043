// Package main implements the main entry point for the Sonic 3 save editor
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jcfieldsdev/sonic3-save-editor/internal/cli"
	"github.com/jcfieldsdev/sonic3-save-editor/internal/config"
	"github.com/retroenv/retrogolib/app"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	cmd := cli.NewRootCommand(cli.Build{
		Version: version,
		Commit:  commit,
		Date:    date,
	})

	if err := cmd.ExecuteContext(ctx); err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "Error: %s\n\n", usageErr)
			usageErr.ShowUsage()
			os.Exit(1)
		}

		logger := config.CreateLogger(false, false)
		logger.Error(err.Error())
		os.Exit(1)
	}
}
