package constants

import "slices"

// Result contains the tables resolved from a constants source.
// Unnamed indexes in Constants and MachineNumbers are empty strings.
type Result struct {
	Constants         []string          // ordered canonical names
	Aliases           map[string]string // alias name -> canonical name
	MachineMoves      map[string]string // machine slot name -> move name
	MachineNumbers    []string          // machine number -> <MOVE>_TMNUM name
	ItemMachines      map[string]string // item name -> machine slot name
	Specials          map[string]int    // published derived constants
	UnresolvedAliases []PendingAlias    // aliases whose target never got a name
}

// Index returns the index of a canonical name or an alias.
func (r *Result) Index(name string) (int, bool) {
	if canonical, ok := r.Aliases[name]; ok {
		name = canonical
	}
	if name == "" {
		return 0, false
	}
	index := slices.Index(r.Constants, name)
	return index, index >= 0
}

// MachineNumber returns the machine number that teaches the move of the
// given TM or HM item.
func (r *Result) MachineNumber(item string) (int, bool) {
	slot, ok := r.ItemMachines[item]
	if !ok {
		return 0, false
	}
	move, ok := r.MachineMoves[slot]
	if !ok {
		return 0, false
	}
	number := slices.Index(r.MachineNumbers, move+machineNumberSuffix)
	return number, number >= 0
}
