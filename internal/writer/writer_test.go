package writer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrodex/internal/constants"
	"github.com/retroenv/retrogolib/assert"
)

func testResult(t *testing.T) *constants.Result {
	t.Helper()
	source := `const_def
	const NO_ITEM
	const_next 3
	DEF NUM_TMS = 1
	DEF __tmhm_value__ = 1
	add_tm PSYCHIC
	DEF TM_ALIAS EQU TM_PSYCHIC
	DEF FUTURE EQU $10`
	result, err := constants.Parse(strings.Split(source, "\n"))
	assert.NoError(t, err)
	return result
}

func TestWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf, Options{Format: JSON})
	assert.NoError(t, w.Write(testResult(t)))

	expected := `{"constants":["NO_ITEM",null,null,"TM_PSYCHIC"],` +
		`"aliases":{"TM_ALIAS":"TM_PSYCHIC"},` +
		`"machine_moves":{"TM01_MOVE":"PSYCHIC"},` +
		`"machine_numbers":[null,"PSYCHIC_TMNUM"],` +
		`"item_machines":{"TM_PSYCHIC":"TM01_MOVE"},` +
		`"specials":{"NUM_TMS":1,"__tmhm_value__":2},` +
		`"unresolved_aliases":[{"name":"FUTURE","target":16}]}` + "\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteJSONPretty(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf, Options{Format: JSON, Pretty: true})
	assert.NoError(t, w.Write(testResult(t)))

	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"constants\": [\n    \"NO_ITEM\",\n    null,"))
}

func TestWriteYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf, Options{Format: YAML})
	assert.NoError(t, w.Write(testResult(t)))

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, "constants:\n"))
	assert.Contains(t, output, "- NO_ITEM\n")
	assert.Contains(t, output, "- null\n")
	assert.Contains(t, output, "TM_ALIAS: TM_PSYCHIC\n")
	assert.Contains(t, output, "target: 16\n")
	assert.Contains(t, output, "__tmhm_value__: 2\n")
	assert.Contains(t, output, "name: FUTURE\n")
}

func TestWriteText(t *testing.T) {
	buf := &bytes.Buffer{}
	w := New(buf, Options{Format: Text})
	assert.NoError(t, w.Write(testResult(t)))

	expected := `; constants
$00 NO_ITEM
$03 TM_PSYCHIC

; aliases
TM_ALIAS = TM_PSYCHIC

; machine moves
TM01_MOVE = PSYCHIC

; machine numbers
$01 PSYCHIC_TMNUM

; item machines
TM_PSYCHIC = TM01_MOVE

; specials
NUM_TMS = 1
__tmhm_value__ = 2

; unresolved alias FUTURE = $10
`
	assert.Equal(t, expected, buf.String())
}

func TestWriteUnsupportedFormat(t *testing.T) {
	w := New(&bytes.Buffer{}, Options{Format: "xml"})
	err := w.Write(testResult(t))
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
