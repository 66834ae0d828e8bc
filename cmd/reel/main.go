package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/five82/reel/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "reel: %v\n", err)
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(stderr, "reel: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, output io.Writer) (app.Options, error) {
	var opts app.Options

	flags := pflag.NewFlagSet("reel", pflag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/reel/config.toml)")
	flags.StringVar(&opts.Catalog, "catalog", "", "catalog path or http(s) URL")
	flags.StringVar(&opts.DataDir, "data-dir", "", "directory for the catalog and inbox files")
	flags.StringVar(&opts.Lang, "lang", "", "interface language (en, de)")
	flags.BoolVar(&opts.NoSearch, "no-search", false, "hide the search field")
	flags.StringVar(&opts.LogFile, "log-file", "", "log file path")
	flags.BoolVar(&opts.Debug, "debug", false, "log filter passes and other debug output")

	if err := flags.Parse(args); err != nil {
		return app.Options{}, err
	}
	if extra := flags.Args(); len(extra) > 0 {
		return app.Options{}, fmt.Errorf("unexpected arguments: %v", extra)
	}
	return opts, nil
}
