// Package constants resolves the constant tables of a disassembly project
// from its assembler sources.
//
// The resolver interprets the small directive dialect used by the item
// constants file: const_def, const_next, const_skip, const, add_tm, add_hm
// and DEF with =, += and EQU. It builds the ordered table of canonical names,
// the alias map and the machine (TM/HM) numbering in a single pass.
package constants

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrodex/internal/symbols"
	"github.com/retroenv/retrogolib/log"
)

// counterName is the numeric define that mirrors the const counter.
const counterName = "const_value"

// MaxIndex is the highest constant index and machine number accepted.
const MaxIndex = 0xFFFF

// Parser resolves constant tables from source lines.
type Parser struct {
	logger *log.Logger
}

// New returns a new parser. The logger is optional.
func New(logger *log.Logger) *Parser {
	return &Parser{
		logger: logger,
	}
}

// Parse interprets all lines and returns the resolved tables. Any error
// aborts the parse, no partial result is returned.
func (p *Parser) Parse(lines []string) (*Result, error) {
	s := newState()

	for i, raw := range lines {
		line, ok := Normalize(raw)
		if !ok {
			continue
		}

		if err := s.process(classify(line)); err != nil {
			return nil, &LineError{
				Line: i + 1,
				Text: line,
				Err:  err,
			}
		}
	}

	result := s.finish()

	if p.logger != nil {
		p.logger.Debug("Resolved constants",
			log.Int("lines", len(lines)),
			log.Int("constants", s.table.Count()),
			log.Int("aliases", len(result.Aliases)),
			log.Int("machines", len(result.ItemMachines)),
			log.Int("unresolved_aliases", len(result.UnresolvedAliases)),
		)
	}
	return result, nil
}

// Parse is a shortcut for parsing without a logger.
func Parse(lines []string) (*Result, error) {
	return New(nil).Parse(lines)
}

// state is owned by a single parse run.
type state struct {
	table    *symbols.Table
	aliases  *aliasResolver
	defines  defines
	specials map[string]int
	machines *machines

	counter     int
	counterSet  bool
	insideMacro bool
}

func newState() *state {
	table := symbols.New()
	return &state{
		table:    table,
		aliases:  newAliasResolver(table),
		defines:  make(defines),
		specials: make(map[string]int),
		machines: newMachines(),
	}
}

// process dispatches a classified line. Macro bodies are skipped, the skip
// flag is a plain boolean so nested macro blocks end at the first ENDM.
func (s *state) process(d directive) error {
	switch d.kind {
	case MacroBegin:
		s.insideMacro = true
		return nil
	case MacroEnd:
		s.insideMacro = false
		return nil
	}
	if s.insideMacro {
		return nil
	}

	switch d.kind {
	case ConstDef:
		return s.handleConstDef(d)
	case ConstNext:
		return s.handleConstNext(d)
	case ConstSkip:
		return s.handleConstSkip(d)
	case Const:
		return s.handleConst(d)
	case AddHM:
		return s.handleAddHM(d)
	case AddTM:
		return s.handleAddTM(d)
	case Def:
		return s.handleDef(d)
	default:
		return nil
	}
}

func (s *state) handleConstDef(d directive) error {
	start := 0
	if arg := d.argument(); arg != "" {
		// only the start value of "const_def start, step" is supported
		startExpression, _, _ := strings.Cut(arg, ",")
		value, err := s.defines.evaluate(startExpression)
		if err != nil {
			return fmt.Errorf("evaluating const_def start: %w", err)
		}
		start = value
	}
	if err := checkIndex(start, "const_def start"); err != nil {
		return err
	}

	s.setCounter(start)
	s.table.EnsureLength(start)
	return nil
}

func (s *state) handleConstNext(d directive) error {
	arg := d.argument()
	if arg == "" {
		return fmt.Errorf("%w: const_next requires a value", ErrMalformedDirective)
	}

	value, err := s.defines.evaluate(arg)
	if err != nil {
		return fmt.Errorf("evaluating const_next value: %w", err)
	}
	if err := checkIndex(value, "const_next value"); err != nil {
		return err
	}
	s.table.EnsureLength(value)
	s.setCounter(value)
	return nil
}

func (s *state) handleConstSkip(d directive) error {
	if !s.counterSet {
		return fmt.Errorf("%w: const_skip before const_def", ErrUninitializedCounter)
	}

	step := 1
	if arg := d.argument(); arg != "" {
		value, err := s.defines.evaluate(arg)
		if err != nil {
			return fmt.Errorf("evaluating const_skip value: %w", err)
		}
		step = value
	}
	if step < 0 || step > MaxIndex {
		return fmt.Errorf("%w: const_skip step %d out of range", ErrMalformedDirective, step)
	}
	if err := checkIndex(s.counter+step, "const_skip result"); err != nil {
		return err
	}
	s.setCounter(s.counter + step)
	return nil
}

func (s *state) handleConst(d directive) error {
	if len(d.fields) < 2 {
		return fmt.Errorf("%w: const requires a name", ErrMalformedDirective)
	}
	return s.assignNext(d.fields[1])
}

// assignNext assigns the name at the current counter value, publishes it as
// numeric define and advances the counter.
func (s *state) assignNext(name string) error {
	if !s.counterSet {
		return fmt.Errorf("%w: declaring '%s' before const_def", ErrUninitializedCounter, name)
	}

	index := s.counter
	if err := checkIndex(index, "index of '"+name+"'"); err != nil {
		return err
	}
	s.table.EnsureLength(index)
	if err := s.table.Assign(index, name); err != nil {
		return fmt.Errorf("assigning '%s': %w", name, err)
	}

	s.setDefine(name, index, false)
	s.setCounter(index + 1)
	s.aliases.retry()
	return nil
}

func (s *state) handleDef(d directive) error {
	if len(d.fields) < 4 {
		return fmt.Errorf("%w: DEF requires a name, an operator and a value", ErrMalformedDirective)
	}

	name := d.fields[1]
	operator := d.fields[2]
	expression := strings.Join(d.fields[3:], " ")

	switch strings.ToUpper(operator) {
	case "+=":
		return s.handleDefAdd(name, expression)
	case "=":
		return s.handleDefAssign(name, expression)
	case "EQU":
		return s.handleDefEqu(name, expression)
	default:
		return nil
	}
}

func (s *state) handleDefAdd(name, expression string) error {
	current, ok := s.defines[name]
	if !ok {
		return fmt.Errorf("%w '%s' in += directive", ErrUnknownSymbol, name)
	}
	increment, err := s.defines.evaluate(expression)
	if err != nil {
		return fmt.Errorf("evaluating increment of '%s': %w", name, err)
	}
	value := current + increment
	if err := checkDefine(name, value); err != nil {
		return err
	}
	s.setDefine(name, value, true)
	return nil
}

func (s *state) handleDefAssign(name, expression string) error {
	value, err := s.defines.evaluate(expression)
	if err != nil {
		return fmt.Errorf("evaluating value of '%s': %w", name, err)
	}
	if err := checkDefine(name, value); err != nil {
		return err
	}
	s.setDefine(name, value, true)
	return nil
}

// handleDefEqu treats a single term expression as an alias when the canonical
// name at its value is the term itself, or when the value has no canonical
// name yet. Everything else is a numeric define. Aliases are never special.
func (s *state) handleDefEqu(name, expression string) error {
	value, err := s.defines.evaluate(expression)
	if err != nil {
		return fmt.Errorf("evaluating value of '%s': %w", name, err)
	}
	if err := checkDefine(name, value); err != nil {
		return err
	}

	terms := tokenizeExpression(expression)
	if len(terms) != 1 || name == UnusedMachineSlot {
		s.setDefine(name, value, true)
		return nil
	}

	canonical, named := s.table.Name(value)
	switch {
	case named && canonical == terms[0]:
		s.setDefine(name, value, false)
		s.aliases.register(name, value)

	case !named:
		s.setDefine(name, value, false)
		s.aliases.register(name, value)

	default:
		s.setDefine(name, value, true)
	}
	return nil
}

func (s *state) setCounter(value int) {
	s.counter = value
	s.counterSet = true
	s.defines[counterName] = value
}

// setDefine stores a numeric define. Special defines are part of the result,
// except for the machine number helpers.
func (s *state) setDefine(name string, value int, special bool) {
	s.defines[name] = value
	if special && !strings.HasSuffix(name, machineNumberSuffix) {
		s.specials[name] = value
	}
	if name == UnusedMachineSlot {
		s.machines.setUnusedSlot(value)
	}
}

// checkIndex rejects indexes that can not be stored in a table.
func checkIndex(value int, what string) error {
	if value < 0 || value > MaxIndex {
		return fmt.Errorf("%w: %s %d out of range 0..%d", ErrMalformedDirective, what, value, MaxIndex)
	}
	return nil
}

// checkDefine validates the defines that are used as machine numbers.
func checkDefine(name string, value int) error {
	if name != UnusedMachineSlot {
		return nil
	}
	return checkIndex(value, "unused machine slot")
}

// lookup returns the value of a numeric define that the directive depends on.
func (s *state) lookup(name string) (int, error) {
	value, ok := s.defines[name]
	if !ok {
		return 0, fmt.Errorf("%w '%s'", ErrUnknownSymbol, name)
	}
	return value, nil
}
