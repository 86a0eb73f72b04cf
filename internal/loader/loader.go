// Package loader handles reading constants source files.
package loader

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Loader handles loading constants source files from disk.
type Loader struct{}

// New creates a new source loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the whole file and returns its lines. Windows line endings are
// converted, the content is not interpreted otherwise.
func (l *Loader) Load(ctx context.Context, fileName string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("loading file %s: %w", fileName, err)
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", fileName, err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}
