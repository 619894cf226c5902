package pattern

import (
	"strings"

	"lifegrid/pkg/core"
)

// builtins is the classic pattern library, kept in display order: still
// lifes, then oscillators, then spaceships, guns and methuselahs.
var builtins = []Pattern{
	{
		Meta: Metadata{
			Name:        "Block",
			Description: "The smallest still life",
			Category:    "still-life",
			Period:      1,
			Size:        Size{Width: 2, Height: 2},
		},
		Coords: coords(
			0, 0, 1, 0,
			0, 1, 1, 1,
		),
	},
	{
		Meta: Metadata{
			Name:        "Blinker",
			Description: "Simple period-2 oscillator",
			Category:    "oscillator",
			Period:      2,
			Size:        Size{Width: 3, Height: 1},
		},
		Coords: coords(0, 1, 1, 1, 2, 1),
	},
	{
		Meta: Metadata{
			Name:        "Toad",
			Description: "Period-2 oscillator",
			Category:    "oscillator",
			Period:      2,
			Size:        Size{Width: 4, Height: 2},
		},
		Coords: coords(
			1, 0, 2, 0, 3, 0,
			0, 1, 1, 1, 2, 1,
		),
	},
	{
		Meta: Metadata{
			Name:        "Beacon",
			Description: "Period-2 oscillator",
			Category:    "oscillator",
			Period:      2,
			Size:        Size{Width: 4, Height: 4},
		},
		Coords: coords(
			0, 0, 1, 0, 0, 1,
			3, 2, 2, 3, 3, 3,
		),
	},
	{
		Meta: Metadata{
			Name:        "Pulsar",
			Description: "Period-3 oscillator",
			Category:    "oscillator",
			Period:      3,
			Size:        Size{Width: 13, Height: 13},
		},
		Coords: coords(
			2, 0, 3, 0, 4, 0, 8, 0, 9, 0, 10, 0,
			0, 2, 5, 2, 7, 2, 12, 2,
			0, 3, 5, 3, 7, 3, 12, 3,
			0, 4, 5, 4, 7, 4, 12, 4,
			2, 5, 3, 5, 4, 5, 8, 5, 9, 5, 10, 5,
			2, 7, 3, 7, 4, 7, 8, 7, 9, 7, 10, 7,
			0, 8, 5, 8, 7, 8, 12, 8,
			0, 9, 5, 9, 7, 9, 12, 9,
			0, 10, 5, 10, 7, 10, 12, 10,
			2, 12, 3, 12, 4, 12, 8, 12, 9, 12, 10, 12,
		),
	},
	{
		Meta: Metadata{
			Name:         "Pentadecathlon",
			Description:  "Period-15 oscillator",
			Category:     "oscillator",
			DiscoveredBy: "John Conway",
			Period:       15,
			Size:         Size{Width: 3, Height: 10},
		},
		Coords: coords(
			5, 4, 5, 5, 4, 6, 6, 6, 5, 7, 5, 8,
			5, 9, 5, 10, 4, 11, 6, 11, 5, 12, 5, 13,
		),
	},
	{
		Meta: Metadata{
			Name:         "Glider",
			Description:  "Travelling pattern that moves diagonally",
			Category:     "spaceship",
			DiscoveredBy: "Richard K. Guy",
			Period:       4,
			Speed:        "c/4 diagonal",
			Size:         Size{Width: 3, Height: 3},
		},
		Coords: coords(1, 0, 2, 1, 0, 2, 1, 2, 2, 2),
	},
	{
		Meta: Metadata{
			Name:         "Gosper Glider Gun",
			Description:  "First discovered infinite growth pattern, emits a glider every 30 generations",
			Category:     "gun",
			DiscoveredBy: "Bill Gosper",
			Period:       30,
			Size:         Size{Width: 36, Height: 9},
		},
		Coords: coords(
			0, 4, 0, 5, 1, 4, 1, 5,
			10, 4, 10, 5, 10, 6, 11, 3, 11, 7, 12, 2, 12, 8, 13, 2, 13, 8,
			14, 5, 15, 3, 15, 7, 16, 4, 16, 5, 16, 6, 17, 5,
			20, 2, 20, 3, 20, 4, 21, 2, 21, 3, 21, 4, 22, 1, 22, 5,
			24, 0, 24, 1, 24, 5, 24, 6,
			34, 2, 34, 3, 35, 2, 35, 3,
		),
	},
	{
		Meta: Metadata{
			Name:        "Diehard",
			Description: "Vanishes after exactly 130 generations",
			Category:    "methuselah",
			Size:        Size{Width: 8, Height: 3},
		},
		Coords: coords(0, 1, 1, 1, 1, 2, 5, 2, 6, 0, 6, 2, 7, 2),
	},
	{
		Meta: Metadata{
			Name:         "Acorn",
			Description:  "Takes 5206 generations to stabilize",
			Category:     "methuselah",
			DiscoveredBy: "Charles Corderman",
			Size:         Size{Width: 8, Height: 2},
		},
		Coords: coords(0, 1, 2, 0, 2, 1, 4, 1, 5, 1, 6, 1, 7, 1),
	},
	{
		Meta: Metadata{
			Name:        "R-pentomino",
			Description: "Evolves for 1103 generations before stabilizing",
			Category:    "methuselah",
			Size:        Size{Width: 3, Height: 3},
		},
		Coords: coords(1, 0, 2, 0, 0, 1, 1, 1, 1, 2),
	},
}

// coords builds a coordinate slice from flat x, y pairs.
func coords(xy ...int) []core.Coord {
	out := make([]core.Coord, len(xy)/2)
	for i := range out {
		out[i] = core.Coord{X: xy[2*i], Y: xy[2*i+1]}
	}
	return out
}

// Builtins returns the built-in pattern library in display order. The
// returned patterns share backing storage and must be treated as read-only.
func Builtins() []Pattern {
	return builtins
}

// Builtin looks up a built-in pattern by name. Matching ignores case and
// the usual separators, so "gosper_glider_gun" finds "Gosper Glider Gun".
func Builtin(name string) (Pattern, bool) {
	want := normalizeName(name)
	for _, p := range builtins {
		if normalizeName(p.Meta.Name) == want {
			return p, true
		}
	}
	return Pattern{}, false
}

// Names returns the built-in pattern names in display order.
func Names() []string {
	out := make([]string, len(builtins))
	for i, p := range builtins {
		out[i] = p.Meta.Name
	}
	return out
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, s)
}
