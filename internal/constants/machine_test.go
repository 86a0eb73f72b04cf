package constants

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

//nolint:funlen // test functions can be long
func TestParseItemConstantsFixture(t *testing.T) {
	p := New(log.NewTestLogger(t))
	result, err := p.Parse(readFixture(t))
	assert.NoError(t, err)

	expectedConstants := []string{
		"NO_ITEM", "MASTER_BALL", "ULTRA_BALL", "GREAT_BALL", "POKE_BALL", "TOWN_MAP",
		"FLOOR_B2F", "FLOOR_B1F", "", "", "", "",
		"HM_CUT", "HM_FLY",
		"TM_MEGA_PUNCH", "TM_RAZOR_WIND", "TM_SWORDS_DANCE",
	}
	assert.Equal(t, expectedConstants, result.Constants)

	assert.Equal(t, map[string]string{
		"HM01": "HM_CUT",
		"TM01": "TM_MEGA_PUNCH",
	}, result.Aliases)

	assert.Equal(t, map[string]string{
		"HM01_MOVE": "CUT",
		"HM02_MOVE": "FLY",
		"TM01_MOVE": "MEGA_PUNCH",
		"TM02_MOVE": "RAZOR_WIND",
		"TM03_MOVE": "SWORDS_DANCE",
	}, result.MachineMoves)

	assert.Equal(t, map[string]string{
		"HM_CUT":          "HM01_MOVE",
		"HM_FLY":          "HM02_MOVE",
		"TM_MEGA_PUNCH":   "TM01_MOVE",
		"TM_RAZOR_WIND":   "TM02_MOVE",
		"TM_SWORDS_DANCE": "TM03_MOVE",
	}, result.ItemMachines)

	// UNUSED_TMNUM points at the slot of CUT and does not replace it
	assert.Equal(t, []string{
		"", "MEGA_PUNCH_TMNUM", "RAZOR_WIND_TMNUM", "SWORDS_DANCE_TMNUM", "CUT_TMNUM", "FLY_TMNUM",
	}, result.MachineNumbers)

	assert.Equal(t, map[string]int{
		"NUM_ITEMS":      5,
		"NUM_FLOORS":     2,
		"NUM_TMS":        3,
		"HM_VALUE":       2,
		"NUM_HMS":        2,
		"UNUSED_TMNUM":   4,
		"__tmhm_value__": 4,
	}, result.Specials)

	assert.Equal(t, 0, len(result.UnresolvedAliases))
}

func TestParseFirstHMAfterLastTM(t *testing.T) {
	source := `const_def
	DEF NUM_TMS = 2
	DEF __tmhm_value__ = 1
	add_tm MEGA_PUNCH
	add_tm PSYCHIC
	add_hm FLASH`
	result := mustParse(t, source)

	assert.Equal(t, 0, result.Specials[HMValue])
	assert.Equal(t, "FLASH", result.MachineMoves["HM00_MOVE"])
	assert.Equal(t, "HM00_MOVE", result.ItemMachines["HM_FLASH"])
	assert.Equal(t, []string{"", "MEGA_PUNCH_TMNUM", "PSYCHIC_TMNUM", "FLASH_TMNUM"}, result.MachineNumbers)
	assert.Equal(t, 4, result.Specials[MachineCounter])
}

func TestParseMachineNumbersIncreaseByOne(t *testing.T) {
	source := `const_def
	DEF NUM_TMS = 3
	DEF __tmhm_value__ = 1
	add_tm A
	add_hm B
	add_tm C
	add_hm D
	add_hm E
	add_tm F`
	result := mustParse(t, source)

	items := []string{"TM_A", "HM_B", "TM_C", "HM_D", "HM_E", "TM_F"}
	for i, item := range items {
		number, ok := result.MachineNumber(item)
		assert.True(t, ok)
		assert.Equal(t, i+1, number)
	}

	// HMs are relative to NUM_TMS, TMs use the absolute counter
	assert.Equal(t, "C", result.MachineMoves["TM03_MOVE"])
	assert.Equal(t, "E", result.MachineMoves["HM02_MOVE"])
	assert.Equal(t, "F", result.MachineMoves["TM06_MOVE"])
}

func TestParseUnusedSlot(t *testing.T) {
	t.Run("unclaimed slot gets the marker", func(t *testing.T) {
		source := `const_def
		DEF __tmhm_value__ = 1
		add_tm MEGA_PUNCH
		DEF UNUSED_TMNUM EQU 4`
		result := mustParse(t, source)

		assert.Equal(t, []string{"", "MEGA_PUNCH_TMNUM", "", "", UnusedMachineSlot}, result.MachineNumbers)
		assert.Equal(t, 4, result.Specials[UnusedMachineSlot])
	})

	t.Run("claimed slot keeps its name", func(t *testing.T) {
		source := `const_def
		DEF UNUSED_TMNUM = 1
		DEF __tmhm_value__ = 1
		add_tm MEGA_PUNCH`
		result := mustParse(t, source)

		assert.Equal(t, []string{"", "MEGA_PUNCH_TMNUM"}, result.MachineNumbers)
	})

	t.Run("marker is never an alias", func(t *testing.T) {
		source := `const_def
		const FOO
		DEF UNUSED_TMNUM EQU FOO`
		result := mustParse(t, source)

		assert.Equal(t, 0, len(result.Aliases))
		assert.Equal(t, []string{UnusedMachineSlot}, result.MachineNumbers)
	})
}

func TestParseMachineNumberOutOfRange(t *testing.T) {
	tests := []struct {
		name    string
		counter string
	}{
		{name: "negative", counter: "0 - 1"},
		{name: "too large", counter: "$10000"},
		{name: "overflowing", counter: "$7FFFFFFFFFFFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := "const_def\nDEF __tmhm_value__ = " + tt.counter + "\nadd_tm MEGA_PUNCH"
			_, err := parseLines(t, source)
			assert.True(t, errors.Is(err, ErrMalformedDirective))
			assert.ErrorContains(t, err, "machine number")
		})
	}
}

func TestResultLookups(t *testing.T) {
	result := mustParse(t, "const_def\nconst FOO\nDEF __tmhm_value__ = 5\nadd_tm PSYCHIC\nDEF ALIAS EQU FOO")

	index, ok := result.Index("TM_PSYCHIC")
	assert.True(t, ok)
	assert.Equal(t, 1, index)

	index, ok = result.Index("ALIAS")
	assert.True(t, ok)
	assert.Equal(t, 0, index)

	_, ok = result.Index("MISSING")
	assert.False(t, ok)
	_, ok = result.Index("")
	assert.False(t, ok)

	number, ok := result.MachineNumber("TM_PSYCHIC")
	assert.True(t, ok)
	assert.Equal(t, 5, number)

	_, ok = result.MachineNumber("FOO")
	assert.False(t, ok)
}

func TestResultAliasesPointToConstants(t *testing.T) {
	result, err := New(log.NewTestLogger(t)).Parse(readFixture(t))
	assert.NoError(t, err)

	assert.NotEmpty(t, result.Aliases)
	for _, canonical := range result.Aliases {
		_, ok := result.Index(canonical)
		assert.True(t, ok)
	}
}
