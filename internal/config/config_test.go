package config

import (
	"testing"

	"github.com/retroenv/retrodex/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name  string
		flags options.Flags
	}{
		{name: "default", flags: options.Flags{}},
		{name: "debug", flags: options.Flags{Debug: true}},
		{name: "quiet", flags: options.Flags{Quiet: true}},
		{name: "debug and quiet", flags: options.Flags{Debug: true, Quiet: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, CreateLogger(tt.flags))
		})
	}
}
