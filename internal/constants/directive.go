package constants

import "strings"

// DirectiveKind is the classification of a normalized source line.
type DirectiveKind int

// Directive kinds, decided once per line by the leading token.
const (
	OtherDirective DirectiveKind = iota
	MacroBegin
	MacroEnd
	ConstDef
	ConstNext
	ConstSkip
	Const
	AddHM
	AddTM
	Def
	Assert
)

var directiveNames = map[DirectiveKind]string{
	OtherDirective: "other",
	MacroBegin:     "MACRO",
	MacroEnd:       "ENDM",
	ConstDef:       "const_def",
	ConstNext:      "const_next",
	ConstSkip:      "const_skip",
	Const:          "const",
	AddHM:          "add_hm",
	AddTM:          "add_tm",
	Def:            "DEF",
	Assert:         "assert",
}

// macro names are case-sensitive.
var macroDirectives = map[string]DirectiveKind{
	"const_def":  ConstDef,
	"const_next": ConstNext,
	"const_skip": ConstSkip,
	"const":      Const,
	"add_hm":     AddHM,
	"add_tm":     AddTM,
}

// assembler keywords are matched case-insensitively.
var keywordDirectives = map[string]DirectiveKind{
	"MACRO":  MacroBegin,
	"ENDM":   MacroEnd,
	"DEF":    Def,
	"ASSERT": Assert,
}

func (k DirectiveKind) String() string {
	return directiveNames[k]
}

// directive is a classified normalized line.
type directive struct {
	kind   DirectiveKind
	fields []string
	text   string
}

// classify splits a normalized line into fields and decides its kind.
func classify(line string) directive {
	d := directive{
		fields: strings.Fields(line),
		text:   line,
	}
	if len(d.fields) == 0 {
		return d
	}

	first := d.fields[0]
	if kind, ok := macroDirectives[first]; ok {
		d.kind = kind
		return d
	}
	if kind, ok := keywordDirectives[strings.ToUpper(first)]; ok {
		d.kind = kind
	}
	return d
}

// argument returns the text after the leading token.
func (d directive) argument() string {
	if len(d.fields) < 2 {
		return ""
	}
	return strings.Join(d.fields[1:], " ")
}
