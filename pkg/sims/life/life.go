package life

import (
	"github.com/pkg/errors"

	"lifegrid/pkg/core"
)

// ErrInvalidDimension reports a non-positive grid width or height.
var ErrInvalidDimension = errors.New("invalid grid dimension")

// Life implements Conway's Game of Life, or any rule expressible in
// birth/survival notation, on a toroidal grid. The current and next
// generations are double-buffered; Step commits by swapping, so callers
// never observe a partial generation.
type Life struct {
	name string
	rule core.Rule

	cur *core.ByteGrid
	nxt *core.ByteGrid

	// hsum caches per-row horizontal triple sums between the two step
	// passes. Reused across steps to avoid reallocation.
	hsum []uint8

	workers int
}

// New returns an empty w×h grid using the standard B3/S23 rule.
func New(w, h int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	return NewWithConfig(cfg)
}

// NewWithConfig builds a grid from the provided configuration. All cells
// start dead.
func NewWithConfig(cfg Config) (*Life, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "%dx%d", cfg.Width, cfg.Height)
	}
	ruleStr := cfg.Rule
	if ruleStr == "" {
		ruleStr = "B3/S23"
	}
	rule, err := core.ParseRule(ruleStr)
	if err != nil {
		return nil, err
	}
	return &Life{
		name:    "life",
		rule:    rule,
		cur:     core.NewByteGrid(cfg.Width, cfg.Height),
		nxt:     core.NewByteGrid(cfg.Width, cfg.Height),
		hsum:    make([]uint8, cfg.Width*cfg.Height),
		workers: cfg.Workers,
	}, nil
}

// mustNew backs the registry factories. FromMap never yields an invalid
// configuration, so construction cannot fail on that path.
func mustNew(cfg Config) *Life {
	l, err := NewWithConfig(cfg)
	if err != nil {
		panic(err)
	}
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return l.name }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Rule returns the active birth/survival rule.
func (l *Life) Rule() core.Rule { return l.rule }

// Cells exposes the current generation's values.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Set brings one cell to life or kills it. Coordinates wrap toroidally,
// so any integer pair is valid.
func (l *Life) Set(x, y int, alive bool) {
	var v uint8
	if alive {
		v = 1
	}
	l.cur.Set(x, y, v)
}

// Get reports whether the cell at (x, y) is alive, wrapping as Set does.
func (l *Life) Get(x, y int) bool { return l.cur.Get(x, y) != 0 }

// Clear kills every cell.
func (l *Life) Clear() { l.cur.Clear() }

// Seed clears the grid and brings every listed coordinate to life.
// Coordinates outside the grid wrap, so patterns may be seeded at any
// offset, including negative ones.
func (l *Life) Seed(coords []core.Coord) { l.cur.Seed(coords) }

// Coords returns the live-cell coordinates in row-major order.
func (l *Life) Coords() []core.Coord { return l.cur.Coords() }

// Population returns the number of live cells.
func (l *Life) Population() int { return l.cur.Population() }

// Reset fills the board with a random soup using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillBinary(rng, l.cur.Cells())
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return mustNew(FromMap(cfg))
	})
	core.Register("highlife", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.Rule = "B36/S23"
		l := mustNew(c)
		l.name = "highlife"
		return l
	})
}
