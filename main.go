// Package main implements the main entry point of the disassembly data extractor
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrodex/internal/cli"
	"github.com/retroenv/retrodex/internal/config"
	"github.com/retroenv/retrodex/internal/fileprocessor"
	"github.com/retroenv/retrodex/internal/options"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Flags)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fileprocessor.PrintBanner(logger, opts, buildinfo.Version(version, commit, date))
			usageErr.ShowUsage()
		} else {
			logger.Error("Invalid options", log.Err(err))
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Flags)
	fileprocessor.PrintBanner(logger, opts, buildinfo.Version(version, commit, date))

	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Extraction failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	settings, err := config.LoadSettings(opts.Settings)
	if err != nil {
		return err
	}
	if opts.Disassembly != "" {
		settings.DisassemblyPath = opts.Disassembly
	}
	fileprocessor.PrintSettings(logger, settings)

	files, err := fileprocessor.GetFilesToProcess(opts, settings)
	if err != nil {
		return err
	}

	var failed error
	for _, file := range files {
		fileOpts := opts
		fileOpts.Input = file
		if opts.Batch != "" {
			fileOpts.Output = fileprocessor.GenerateOutputFilename(file, opts.Format)
		}

		if err := fileprocessor.ProcessFile(ctx, logger, fileOpts); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			logger.Error("Processing file failed", log.String("file", file), log.Err(err))
			failed = err
		}
	}
	return failed
}
