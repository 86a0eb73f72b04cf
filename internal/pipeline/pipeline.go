// Package pipeline orchestrates the extraction workflow stages.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/retroenv/retrodex/internal/constants"
	"github.com/retroenv/retrodex/internal/detector"
	"github.com/retroenv/retrodex/internal/loader"
	"github.com/retroenv/retrodex/internal/options"
	"github.com/retroenv/retrodex/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete extraction workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
	parser   *constants.Parser
}

// New creates a new extraction pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
		parser:   constants.New(logger),
	}
}

// Execute loads the constants file named by opts.Input, resolves it and
// writes the result in the detected output format.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, w io.Writer) (*constants.Result, error) {
	format := p.detector.Detect(opts)

	lines, err := p.loader.Load(ctx, opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading constants: %w", err)
	}

	p.printInfo(opts, format, len(lines))

	result, err := p.parser.Parse(lines)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", opts.Input, err)
	}

	if err := p.printResult(result, format, w); err != nil {
		return nil, err
	}
	return result, nil
}

// printResult writes the result, the writer enables pretty output for terminals.
func (p *Pipeline) printResult(result *constants.Result, format string, w io.Writer) error {
	wr := writer.New(w, writer.Options{Format: format})
	if err := wr.Write(result); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	for _, alias := range result.UnresolvedAliases {
		p.logger.Debug("Unresolved alias",
			log.String("name", alias.Name),
			log.Int("target", alias.Target))
	}
	return nil
}

// printInfo prints information about the file being processed.
func (p *Pipeline) printInfo(opts options.Program, format string, lineCount int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing constants",
		log.String("file", opts.Input),
		log.Int("lines", lineCount),
		log.String("format", format),
	)
}
