package app

import (
	"io"
	"strings"

	"lifegrid/pkg/core"
)

const (
	cellOn  = "██"
	cellOff = "  "

	clearScreen = "\x1b[H\x1b[2J"
)

// renderFrame writes an ASCII view of the cell buffer, one double-width
// glyph per cell so the aspect ratio stays roughly square.
func renderFrame(w io.Writer, cells []uint8, size core.Size) {
	var b strings.Builder
	b.Grow(size.H * (size.W*2 + 1))
	for y := 0; y < size.H; y++ {
		row := cells[y*size.W : y*size.W+size.W]
		for _, v := range row {
			if v != 0 {
				b.WriteString(cellOn)
			} else {
				b.WriteString(cellOff)
			}
		}
		b.WriteByte('\n')
	}
	io.WriteString(w, b.String())
}
