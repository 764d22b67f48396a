package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/sanghyeon0114/argue-with-ai/internal/cmd"
	"github.com/sanghyeon0114/argue-with-ai/internal/config"
)

// Set via ldflags at build time
var (
	version = "dev"
	commit  = "none"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var cli cmd.CLI
	cli.SetSettings(settings)

	ctx := kong.Parse(&cli,
		kong.Name("arguewithai"),
		kong.Description("Watches short-form video usage and argues back."),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("%s (%s)", version, commit)},
	)
	defer cli.Close()

	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
