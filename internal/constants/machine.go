package constants

import (
	"fmt"
	"slices"
)

// Numeric defines that drive the machine numbering.
const (
	// MachineCounter is the running machine number shared by TMs and HMs.
	MachineCounter = "__tmhm_value__"
	// TMCount is the total number of TMs, HM numbers are relative to it.
	TMCount = "NUM_TMS"
	// HMValue is published with the relative number of the last declared HM.
	HMValue = "HM_VALUE"
	// UnusedMachineSlot marks the machine number that no TM or HM uses.
	UnusedMachineSlot = "UNUSED_TMNUM"

	machineNumberSuffix = "_TMNUM"

	tmItemPrefix = "TM_"
	hmItemPrefix = "HM_"
	tmSlotFormat = "TM%02d_MOVE"
	hmSlotFormat = "HM%02d_MOVE"
)

// machines collects the TM/HM bookkeeping of a parse run.
type machines struct {
	moves    map[string]string // slot name -> move name
	items    map[string]string // item name -> slot name
	byNumber map[int]string    // machine number -> <MOVE>_TMNUM

	unusedSlot    int
	hasUnusedSlot bool
}

func newMachines() *machines {
	return &machines{
		moves:    make(map[string]string),
		items:    make(map[string]string),
		byNumber: make(map[int]string),
	}
}

func (m *machines) setUnusedSlot(value int) {
	m.unusedSlot = value
	m.hasUnusedSlot = true
}

func (s *state) handleAddTM(d directive) error {
	move, err := machineMove(d)
	if err != nil {
		return err
	}

	item := tmItemPrefix + move
	if err := s.assignNext(item); err != nil {
		return err
	}

	number, err := s.lookup(MachineCounter)
	if err != nil {
		return fmt.Errorf("numbering '%s': %w", item, err)
	}
	return s.recordMachine(item, move, fmt.Sprintf(tmSlotFormat, number), number)
}

// handleAddHM numbers the HM relative to the end of the TM block, while the
// machine number continues the counter shared with the TMs.
func (s *state) handleAddHM(d directive) error {
	move, err := machineMove(d)
	if err != nil {
		return err
	}

	item := hmItemPrefix + move
	if err := s.assignNext(item); err != nil {
		return err
	}

	tmCount, err := s.lookup(TMCount)
	if err != nil {
		return fmt.Errorf("numbering '%s': %w", item, err)
	}
	number, err := s.lookup(MachineCounter)
	if err != nil {
		return fmt.Errorf("numbering '%s': %w", item, err)
	}

	hmIndex := number - tmCount
	s.setDefine(HMValue, hmIndex, true)
	return s.recordMachine(item, move, fmt.Sprintf(hmSlotFormat, hmIndex), number)
}

func machineMove(d directive) (string, error) {
	if len(d.fields) < 2 {
		return "", fmt.Errorf("%w: %s requires a move name", ErrMalformedDirective, d.kind)
	}
	return d.fields[1], nil
}

// recordMachine links item, slot and move and advances the machine counter.
func (s *state) recordMachine(item, move, slot string, number int) error {
	if number < 0 || number > MaxIndex {
		return fmt.Errorf("%w: machine number %d for '%s' out of range 0..%d",
			ErrMalformedDirective, number, item, MaxIndex)
	}

	s.machines.moves[slot] = move
	s.machines.items[item] = slot

	numberName := move + machineNumberSuffix
	s.setDefine(numberName, number, false)
	s.machines.byNumber[number] = numberName

	s.setDefine(MachineCounter, number+1, true)
	return nil
}

// finish runs after the last line: it retries the pending aliases, claims
// the unused machine slot and builds the result.
func (s *state) finish() *Result {
	s.aliases.retry()

	if s.machines.hasUnusedSlot && s.machines.unusedSlot >= 0 {
		if _, claimed := s.machines.byNumber[s.machines.unusedSlot]; !claimed {
			s.machines.byNumber[s.machines.unusedSlot] = UnusedMachineSlot
		}
	}

	return &Result{
		Constants:         s.table.Names(),
		Aliases:           s.aliases.aliases,
		MachineMoves:      s.machines.moves,
		MachineNumbers:    s.machines.numbers(),
		ItemMachines:      s.machines.items,
		Specials:          s.specials,
		UnresolvedAliases: s.aliases.unresolved(),
	}
}

// numbers returns the dense machine number array, unclaimed numbers are
// left as symbols.NoName.
func (m *machines) numbers() []string {
	maxNumber := 0
	if len(m.byNumber) > 0 {
		keys := make([]int, 0, len(m.byNumber))
		for number := range m.byNumber {
			keys = append(keys, number)
		}
		maxNumber = slices.Max(keys)
	}

	numbers := make([]string, maxNumber+1)
	for number, name := range m.byNumber {
		numbers[number] = name
	}
	return numbers
}
