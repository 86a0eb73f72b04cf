package writer

import (
	"fmt"
	"slices"

	"github.com/retroenv/retrodex/internal/constants"
)

func (w Writer) writeText(result *constants.Result) error {
	if err := w.writeIndexed("constants", result.Constants); err != nil {
		return err
	}
	if err := w.outputMap("aliases", result.Aliases); err != nil {
		return err
	}
	if err := w.outputMap("machine moves", result.MachineMoves); err != nil {
		return err
	}
	if err := w.writeIndexed("machine numbers", result.MachineNumbers); err != nil {
		return err
	}
	if err := w.outputMap("item machines", result.ItemMachines); err != nil {
		return err
	}
	if err := w.outputSpecials(result.Specials); err != nil {
		return err
	}

	for _, alias := range result.UnresolvedAliases {
		if _, err := fmt.Fprintf(w.writer, "; unresolved alias %s = $%02X\n", alias.Name, alias.Target); err != nil {
			return fmt.Errorf("writing unresolved alias: %w", err)
		}
	}
	return nil
}

func (w Writer) writeHeader(title string) error {
	if _, err := fmt.Fprintf(w.writer, "; %s\n", title); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// writeIndexed outputs the named entries of an indexed table, unnamed
// indexes are skipped.
func (w Writer) writeIndexed(title string, names []string) error {
	if err := w.writeHeader(title); err != nil {
		return err
	}
	for index, name := range names {
		if name == "" {
			continue
		}
		if _, err := fmt.Fprintf(w.writer, "$%02X %s\n", index, name); err != nil {
			return fmt.Errorf("writing %s entry: %w", title, err)
		}
	}
	if _, err := fmt.Fprintln(w.writer); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// outputMap outputs a name map sorted by key.
func (w Writer) outputMap(title string, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	if err := w.writeHeader(title); err != nil {
		return err
	}

	// sort the names before outputting to avoid random map order
	for _, name := range sortedKeys(values) {
		if _, err := fmt.Fprintf(w.writer, "%s = %s\n", name, values[name]); err != nil {
			return fmt.Errorf("writing %s entry: %w", title, err)
		}
	}

	if _, err := fmt.Fprintln(w.writer); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

func (w Writer) outputSpecials(specials map[string]int) error {
	if len(specials) == 0 {
		return nil
	}
	if err := w.writeHeader("specials"); err != nil {
		return err
	}

	for _, name := range sortedKeys(specials) {
		if _, err := fmt.Fprintf(w.writer, "%s = %d\n", name, specials[name]); err != nil {
			return fmt.Errorf("writing special: %w", err)
		}
	}

	if _, err := fmt.Fprintln(w.writer); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
