package constants

import (
	"fmt"
	"strconv"
	"strings"
)

const hexPrefix = '$'

// defines maps the names of numeric defines to their current value.
// Canonical symbols are published here as well so that expressions can
// reference them.
type defines map[string]int

// evaluate computes a sum or difference of terms from left to right.
// A term is a hex literal with $ prefix, a decimal literal or the name of a
// numeric define. There is no operator precedence, multiplication or grouping.
func (d defines) evaluate(expression string) (int, error) {
	tokens := tokenizeExpression(expression)
	if len(tokens) == 0 {
		return 0, fmt.Errorf("%w: empty expression", ErrMalformedDirective)
	}

	total := 0
	subtract := false
	expectTerm := true
	for i, token := range tokens {
		switch token {
		case "+", "-":
			// only a leading sign may follow no term
			if expectTerm && i > 0 {
				return 0, fmt.Errorf("%w: missing term before '%s' in expression '%s'",
					ErrMalformedDirective, token, expression)
			}
			subtract = token == "-"
			expectTerm = true
			continue
		}

		if !expectTerm {
			return 0, fmt.Errorf("%w: missing operator before '%s' in expression '%s'",
				ErrMalformedDirective, token, expression)
		}
		value, err := d.termValue(token, expression)
		if err != nil {
			return 0, err
		}
		if subtract {
			total -= value
		} else {
			total += value
		}
		expectTerm = false
	}

	if expectTerm {
		return 0, fmt.Errorf("%w: expression '%s' ends with an operator", ErrMalformedDirective, expression)
	}
	return total, nil
}

func (d defines) termValue(token, expression string) (int, error) {
	if token[0] == hexPrefix {
		value, err := strconv.ParseInt(token[1:], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid hex literal '%s' in expression '%s'",
				ErrMalformedDirective, token, expression)
		}
		return int(value), nil
	}

	if isDecimal(token) {
		value, err := strconv.Atoi(token)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid decimal literal '%s' in expression '%s'",
				ErrMalformedDirective, token, expression)
		}
		return value, nil
	}

	value, ok := d[token]
	if !ok {
		return 0, fmt.Errorf("%w '%s' in expression '%s'", ErrUnknownSymbol, token, expression)
	}
	return value, nil
}

// tokenizeExpression splits an expression into terms and +/- operators.
func tokenizeExpression(expression string) []string {
	expression = strings.ReplaceAll(expression, "+", " + ")
	expression = strings.ReplaceAll(expression, "-", " - ")
	return strings.Fields(expression)
}

func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
