package core

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnsupportedRule reports a rule string outside birth/survival notation.
var ErrUnsupportedRule = errors.New("unsupported rule")

// Rule holds the birth and survival neighbor-count sets of a Life-like
// automaton as bitmasks. Bit n is set when a count of n triggers the
// transition.
type Rule struct {
	birth   uint16
	survive uint16
}

// Conway is the standard B3/S23 rule.
var Conway = Rule{birth: 1 << 3, survive: 1<<2 | 1<<3}

// ParseRule parses birth/survival notation such as "B3/S23". Parsing is
// case-insensitive and ignores surrounding whitespace.
func ParseRule(s string) (Rule, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "B") || !strings.HasPrefix(parts[1], "S") {
		return Rule{}, errors.Wrapf(ErrUnsupportedRule, "want B<digits>/S<digits>, got %q", s)
	}
	var r Rule
	var err error
	if r.birth, err = parseCounts(parts[0][1:]); err != nil {
		return Rule{}, errors.Wrapf(err, "birth counts in %q", s)
	}
	if r.survive, err = parseCounts(parts[1][1:]); err != nil {
		return Rule{}, errors.Wrapf(err, "survival counts in %q", s)
	}
	return r, nil
}

func parseCounts(digits string) (uint16, error) {
	var mask uint16
	for _, c := range digits {
		if c < '0' || c > '8' {
			return 0, errors.Wrapf(ErrUnsupportedRule, "neighbor count %q out of range", c)
		}
		mask |= 1 << (c - '0')
	}
	return mask, nil
}

// Next returns the successor state for a cell with the given live-neighbor
// count: 1 when the cell is born or survives, 0 otherwise.
func (r Rule) Next(cell uint8, neighbors uint8) uint8 {
	mask := r.birth
	if cell != 0 {
		mask = r.survive
	}
	if mask&(1<<neighbors) != 0 {
		return 1
	}
	return 0
}

// String renders the rule in canonical B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n := 0; n <= 8; n++ {
		if r.birth&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n := 0; n <= 8; n++ {
		if r.survive&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}
