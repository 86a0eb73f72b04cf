package cli

import (
	"errors"
	"testing"

	"github.com/retroenv/retrodex/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

//nolint:funlen // test functions can be long
func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "no arguments",
			args: []string{"prog"},
			want: options.Program{},
		},
		{
			name: "positional input",
			args: []string{"prog", "constants/move_constants.asm"},
			want: options.Program{
				Parameters: options.Parameters{Input: "constants/move_constants.asm"},
			},
		},
		{
			name: "input flag wins over positional",
			args: []string{"prog", "-i", "a.asm", "b.asm"},
			want: options.Program{
				Parameters: options.Parameters{Input: "a.asm"},
			},
		},
		{
			name: "all flags",
			args: []string{"prog", "-o", "out.json", "-c", "retrodex.toml", "-d", "pokered",
				"-batch", "constants/*.asm", "-f", "TEXT", "-debug", "-q"},
			want: options.Program{
				Parameters: options.Parameters{
					Output:      "out.json",
					Settings:    "retrodex.toml",
					Disassembly: "pokered",
					Batch:       "constants/*.asm",
				},
				Flags: options.Flags{Format: "text", Debug: true, Quiet: true},
			},
		},
		{
			name: "yml alias",
			args: []string{"prog", "-f", "yml"},
			want: options.Program{
				Flags: options.Flags{Format: "yaml"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		usageError bool
	}{
		{name: "unknown flag", args: []string{"prog", "-x"}, usageError: true},
		{name: "flag after file", args: []string{"prog", "a.asm", "-q"}, usageError: true},
		{name: "two files", args: []string{"prog", "a.asm", "b.asm"}, usageError: true},
		{name: "unsupported format", args: []string{"prog", "-f", "xml"}, usageError: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(tt.args)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usageError, errors.As(err, &usageErr))
		})
	}
}
