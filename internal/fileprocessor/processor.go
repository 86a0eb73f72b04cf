// Package fileprocessor handles file resolution and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/retrodex/internal/config"
	"github.com/retroenv/retrodex/internal/detector"
	"github.com/retroenv/retrodex/internal/options"
	"github.com/retroenv/retrodex/internal/pipeline"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile handles the complete file processing workflow. An output file
// is removed again if the processing fails.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) (err error) {
	writer, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	if file, ok := writer.(*os.File); ok && file != os.Stdout {
		defer func() {
			closeErr := file.Close()
			if err != nil {
				_ = os.Remove(opts.Output)
				return
			}
			if closeErr != nil {
				err = fmt.Errorf("closing output file %s: %w", opts.Output, closeErr)
			}
		}()
	}

	pipe := pipeline.New(logger)
	if _, err := pipe.Execute(ctx, opts, writer); err != nil {
		return fmt.Errorf("extracting constants: %w", err)
	}
	return nil
}

// GetFilesToProcess returns the list of constants files to process. Names are
// resolved relative to the disassembly path of the settings.
func GetFilesToProcess(opts options.Program, settings config.Settings) ([]string, error) {
	if opts.Batch != "" {
		pattern := settings.SourcePath(opts.Batch)
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files matching pattern '%s'", pattern)
		}
		return matches, nil
	}

	if opts.Input == "" {
		return []string{settings.ItemConstantsPath()}, nil
	}
	return []string{settings.SourcePath(opts.Input)}, nil
}

// GenerateOutputFilename generates the output filename for a given input
// file, using the extension of the output format.
func GenerateOutputFilename(inputFile, format string) string {
	ext := filepath.Ext(inputFile)
	return inputFile[:len(inputFile)-len(ext)] + detector.Extension(format)
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version string) {
	if opts.Quiet {
		return
	}
	logger.Info("retrodex - disassembly data extractor", log.String("version", version))
}

// PrintSettings logs where the disassembly sources are expected.
func PrintSettings(logger *log.Logger, settings config.Settings) {
	logger.Debug("Disassembly settings",
		log.String("repository", settings.DisassemblyRepo),
		log.String("path", settings.DisassemblyPath),
	)
}
