package pattern

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"lifegrid/pkg/core"
)

// RLE is the transient decoded form of a run-length-encoded document.
type RLE struct {
	Width  int
	Height int
	Rule   core.Rule
	Meta   Metadata
	Coords []core.Coord
}

// Encoded lines wrap at this column, per the conventional RLE format.
const rleLineWidth = 70

// DecodeRLE parses RLE text: optional #-prefixed comment lines, a header
// line of the form "x = W, y = H, rule = B3/S23", and a body of
// [count]{b,o,$} tokens terminated by '!'.
func DecodeRLE(text string) (*RLE, error) {
	var out RLE
	lines := strings.Split(text, "\n")
	i := 0
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			decodeComment(line, &out.Meta)
			continue
		}
		break
	}
	if i >= len(lines) {
		return nil, errors.Wrap(ErrMalformedHeader, "missing header line")
	}
	if err := decodeHeader(strings.TrimSpace(lines[i]), &out); err != nil {
		return nil, err
	}

	coords, err := decodeBody(strings.Join(lines[i+1:], "\n"))
	if err != nil {
		return nil, err
	}
	out.Coords = coords
	return &out, nil
}

// decodeComment records the conventional #N (name), #O (origin/author) and
// #C (comment) lines into metadata.
func decodeComment(line string, m *Metadata) {
	if len(line) < 2 {
		return
	}
	rest := strings.TrimSpace(line[2:])
	switch line[1] {
	case 'N':
		m.Name = rest
	case 'O':
		m.DiscoveredBy = rest
	case 'C', 'c':
		if m.Description == "" {
			m.Description = rest
		} else {
			m.Description += " " + rest
		}
	}
}

func decodeHeader(line string, out *RLE) error {
	var haveX, haveY, haveRule bool
	for _, field := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return errors.Wrapf(ErrMalformedHeader, "field %q is not key = value", strings.TrimSpace(field))
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		switch key {
		case "x":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return errors.Wrapf(ErrMalformedHeader, "width %q is not a positive integer", value)
			}
			out.Width, haveX = n, true
		case "y":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return errors.Wrapf(ErrMalformedHeader, "height %q is not a positive integer", value)
			}
			out.Height, haveY = n, true
		case "rule":
			r, err := core.ParseRule(value)
			if err != nil {
				return err
			}
			out.Rule, haveRule = r, true
		default:
			return errors.Wrapf(ErrMalformedHeader, "unknown field %q", key)
		}
	}
	if !haveX || !haveY || !haveRule {
		return errors.Wrap(ErrMalformedHeader, "header must carry x, y and rule")
	}
	return nil
}

// decodeBody walks the run/tag tokens with a (row, col) cursor. 'o' runs
// emit live coordinates, 'b' runs skip dead cells, '$' ends rows, '!'
// stops parsing immediately; anything after it is ignored.
func decodeBody(body string) ([]core.Coord, error) {
	var coords []core.Coord
	var x, y int
	run := 0
	haveRun := false

	takeRun := func(i int) (int, error) {
		if !haveRun {
			return 1, nil
		}
		n := run
		run, haveRun = 0, false
		if n <= 0 {
			return 0, errors.Wrapf(ErrMalformedBody, "non-positive run count at offset %d", i)
		}
		return n, nil
	}

	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			continue
		case c >= '0' && c <= '9':
			run = run*10 + int(c-'0')
			haveRun = true
		case c == 'b':
			n, err := takeRun(i)
			if err != nil {
				return nil, err
			}
			x += n
		case c == 'o':
			n, err := takeRun(i)
			if err != nil {
				return nil, err
			}
			for k := 0; k < n; k++ {
				coords = append(coords, core.Coord{X: x, Y: y})
				x++
			}
		case c == '$':
			n, err := takeRun(i)
			if err != nil {
				return nil, err
			}
			y += n
			x = 0
		case c == '!':
			return coords, nil
		default:
			return nil, errors.Wrapf(ErrMalformedBody, "invalid tag %q at offset %d", c, i)
		}
	}
	return nil, errors.Wrap(ErrMalformedBody, "missing '!' terminator")
}

// EncodeRLE renders coords as an RLE document for a w×h grid using minimal
// run tokens. Every coordinate must lie inside [0,w)×[0,h); decoding the
// result yields the same coordinate set.
func EncodeRLE(coords []core.Coord, w, h int, rule core.Rule) (string, error) {
	if w <= 0 || h <= 0 {
		return "", errors.Wrapf(ErrMalformedPattern, "dimensions %dx%d", w, h)
	}
	cells := make([]bool, w*h)
	for _, c := range coords {
		if c.X < 0 || c.X >= w || c.Y < 0 || c.Y >= h {
			return "", errors.Wrapf(ErrMalformedPattern, "coordinate (%d,%d) outside %dx%d", c.X, c.Y, w, h)
		}
		cells[c.Y*w+c.X] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "x = %d, y = %d, rule = %s\n", w, h, rule)

	enc := runEncoder{out: &b}
	prevRow := 0
	for y := 0; y < h; y++ {
		row := cells[y*w : y*w+w]
		last := -1
		for x := w - 1; x >= 0; x-- {
			if row[x] {
				last = x
				break
			}
		}
		if last < 0 {
			continue
		}
		if y > prevRow {
			enc.emit(y-prevRow, '$')
		}
		prevRow = y

		// Alternate dead/alive runs up to the last live cell; trailing
		// dead cells are implied by the row end.
		x := 0
		for x <= last {
			runStart := x
			alive := row[x]
			for x <= last && row[x] == alive {
				x++
			}
			tag := byte('b')
			if alive {
				tag = 'o'
			}
			enc.emit(x-runStart, tag)
		}
	}
	enc.emit(1, '!')
	b.WriteByte('\n')
	return b.String(), nil
}

// runEncoder writes run tokens, omitting the count for single-cell runs
// and wrapping lines at the conventional column.
type runEncoder struct {
	out  *strings.Builder
	line int
}

func (e *runEncoder) emit(n int, tag byte) {
	token := string(tag)
	if n > 1 {
		token = strconv.Itoa(n) + token
	}
	if e.line+len(token) > rleLineWidth {
		e.out.WriteByte('\n')
		e.line = 0
	}
	e.out.WriteString(token)
	e.line += len(token)
}
