// Package symbols provides the ordered symbol table used by the constants resolver.
package symbols

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/set"
)

// NoName marks an index of the table that has no canonical name assigned.
const NoName = ""

var (
	// ErrDuplicateSymbol is returned when an index or a name is assigned twice.
	ErrDuplicateSymbol = errors.New("duplicate symbol")
	// ErrIndexOutOfRange is returned when an index outside of the table is assigned.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// Table is an ordered, sparse mapping from an integer index to a canonical name.
// Indexes without a name are kept as NoName placeholders so that the position
// of every entry matches the index in the source.
type Table struct {
	names   []string
	indexes map[string]int
	used    set.Set[string]
}

// New creates a new empty symbol table.
func New() *Table {
	return &Table{
		indexes: make(map[string]int),
		used:    set.New[string](),
	}
}

// EnsureLength pads the table with placeholders so that index is addressable.
func (t *Table) EnsureLength(index int) {
	if index < len(t.names) {
		return
	}
	padding := index + 1 - len(t.names)
	t.names = append(t.names, make([]string, padding)...)
}

// Assign sets the canonical name at the given index and registers the reverse lookup.
// EnsureLength has to be called for the index before.
func (t *Table) Assign(index int, name string) error {
	if index < 0 || index >= len(t.names) {
		return fmt.Errorf("%w: index %d for table of length %d", ErrIndexOutOfRange, index, len(t.names))
	}
	if existing := t.names[index]; existing != NoName {
		return fmt.Errorf("%w: index %d already named '%s'", ErrDuplicateSymbol, index, existing)
	}
	if t.used.Contains(name) {
		return fmt.Errorf("%w: name '%s' already assigned at index %d", ErrDuplicateSymbol, name, t.indexes[name])
	}

	t.names[index] = name
	t.indexes[name] = index
	t.used.Add(name)
	return nil
}

// Name returns the canonical name at the given index.
func (t *Table) Name(index int) (string, bool) {
	if index < 0 || index >= len(t.names) {
		return NoName, false
	}
	name := t.names[index]
	return name, name != NoName
}

// Index returns the index of the given canonical name.
func (t *Table) Index(name string) (int, bool) {
	index, ok := t.indexes[name]
	return index, ok
}

// Has returns whether the given canonical name is part of the table.
func (t *Table) Has(name string) bool {
	return t.used.Contains(name)
}

// Len returns the length of the table including placeholders.
func (t *Table) Len() int {
	return len(t.names)
}

// Count returns the number of named entries.
func (t *Table) Count() int {
	return len(t.indexes)
}

// Names returns a copy of the ordered names, unnamed indexes are NoName.
func (t *Table) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}
