// Package detector handles output format detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrodex/internal/options"
	"github.com/retroenv/retrodex/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles output format detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new format detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the output format from options or the output file name.
// It first checks if a format is explicitly specified in options, otherwise
// attempts to detect the format from the output filename extension.
func (d *Detector) Detect(opts options.Program) string {
	if opts.Format != "" {
		return opts.Format
	}

	format := d.detectFromFile(opts.Output)
	d.logger.Debug("Auto-detected output format",
		log.String("format", format),
		log.String("file", opts.Output))
	return format
}

// detectFromFile determines the output format based on file extension.
func (d *Detector) detectFromFile(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".yaml", ".yml":
		return writer.YAML
	case ".txt", ".inc":
		return writer.Text
	default:
		// Default to JSON for unknown extensions and console output
		return writer.JSON
	}
}

// Extension returns the file extension used for a format.
func Extension(format string) string {
	switch format {
	case writer.YAML:
		return ".yaml"
	case writer.Text:
		return ".txt"
	default:
		return ".json"
	}
}
