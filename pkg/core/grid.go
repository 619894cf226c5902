package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Coordinate access through Set and Get wraps toroidally, so any integer
// pair addresses a valid cell.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions. Non-positive
// dimensions are clamped to 1; callers that must reject them validate
// before construction.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Set stores v at (x, y) after wrapping.
func (g *ByteGrid) Set(x, y int, v uint8) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = v
}

// Get returns the value at (x, y) after wrapping.
func (g *ByteGrid) Get(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Row returns the slice backing row y. The caller must pass y in [0, H).
func (g *ByteGrid) Row(y int) []uint8 {
	return g.data[y*g.W : y*g.W+g.W]
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Seed clears the grid and marks every listed coordinate with value 1.
// Coordinates wrap, so seeds may be placed at any offset.
func (g *ByteGrid) Seed(coords []Coord) {
	g.Clear()
	for _, c := range coords {
		g.Set(c.X, c.Y, 1)
	}
}

// Coords returns the coordinates of all non-zero cells in row-major order.
func (g *ByteGrid) Coords() []Coord {
	var out []Coord
	for y := 0; y < g.H; y++ {
		row := g.Row(y)
		for x, v := range row {
			if v != 0 {
				out = append(out, Coord{X: x, Y: y})
			}
		}
	}
	return out
}

// Population returns the number of non-zero cells.
func (g *ByteGrid) Population() int {
	n := 0
	for _, v := range g.data {
		if v != 0 {
			n++
		}
	}
	return n
}
