// Package writer outputs resolved constant tables in the supported formats.
package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrodex/internal/constants"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	JSON = "json"
	YAML = "yaml"
	Text = "text"
)

// Formats lists all supported output formats.
var Formats = []string{JSON, YAML, Text}

const jsonIndent = "  "

// Writer writes a resolved result to an output.
type Writer struct {
	options Options
	writer  io.Writer
}

// Options of the writer.
type Options struct {
	Format string
	Pretty bool // indent JSON output, enabled automatically for terminals
}

// document is the serialized form of a result. Unnamed indexes are nil
// pointers to be output as null.
type document struct {
	Constants         []*string                `json:"constants" yaml:"constants"`
	Aliases           map[string]string        `json:"aliases" yaml:"aliases"`
	MachineMoves      map[string]string        `json:"machine_moves" yaml:"machine_moves"`
	MachineNumbers    []*string                `json:"machine_numbers" yaml:"machine_numbers"`
	ItemMachines      map[string]string        `json:"item_machines" yaml:"item_machines"`
	Specials          map[string]int           `json:"specials" yaml:"specials"`
	UnresolvedAliases []constants.PendingAlias `json:"unresolved_aliases,omitempty" yaml:"unresolved_aliases,omitempty"`
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	if IsTerminal(writer) {
		options.Pretty = true
	}
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// Write outputs the result in the configured format.
func (w Writer) Write(result *constants.Result) error {
	switch w.options.Format {
	case JSON, "":
		return w.writeJSON(result)
	case YAML:
		return w.writeYAML(result)
	case Text:
		return w.writeText(result)
	default:
		return fmt.Errorf("unsupported output format '%s'", w.options.Format)
	}
}

// IsTerminal returns whether the writer is a file connected to a terminal.
func IsTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func (w Writer) writeJSON(result *constants.Result) error {
	encoder := json.NewEncoder(w.writer)
	if w.options.Pretty {
		encoder.SetIndent("", jsonIndent)
	}
	if err := encoder.Encode(newDocument(result)); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func (w Writer) writeYAML(result *constants.Result) error {
	encoder := yaml.NewEncoder(w.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(newDocument(result)); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("closing yaml encoder: %w", err)
	}
	return nil
}

func newDocument(result *constants.Result) document {
	return document{
		Constants:         nullableNames(result.Constants),
		Aliases:           result.Aliases,
		MachineMoves:      result.MachineMoves,
		MachineNumbers:    nullableNames(result.MachineNumbers),
		ItemMachines:      result.ItemMachines,
		Specials:          result.Specials,
		UnresolvedAliases: result.UnresolvedAliases,
	}
}

func nullableNames(names []string) []*string {
	result := make([]*string, len(names))
	for i, name := range names {
		if name == "" {
			continue
		}
		result[i] = &names[i]
	}
	return result
}
