package pattern

import (
	"encoding/json"

	"github.com/pkg/errors"

	"lifegrid/pkg/core"
)

// Size records a pattern's bounding-box dimensions for display.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Metadata carries the display-only fields of a pattern document. The
// engine never reads any of it.
type Metadata struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category,omitempty"`
	DiscoveredBy string `json:"discovered_by,omitempty"`
	Period       int    `json:"period,omitempty"`
	Speed        string `json:"speed,omitempty"`
	Size         Size   `json:"size,omitempty"`
}

// Pattern is a named immutable template: relative live-cell coordinates,
// normalized so the bounding box sits near the origin, plus metadata.
type Pattern struct {
	Meta   Metadata
	Coords []core.Coord
}

// Document mirrors the JSON pattern file layout: a metadata object plus a
// pattern payload of [x, y] pairs with an optional RLE body.
type Document struct {
	Metadata Metadata `json:"metadata"`
	Pattern  struct {
		Coordinates [][]int `json:"coordinates"`
		RLE         string  `json:"rle,omitempty"`
	} `json:"pattern"`
}

// DecodeDocument parses a JSON pattern document into a Pattern. Explicit
// coordinates win; a document carrying only an RLE body is decoded through
// the RLE path. Decoding is all-or-nothing.
func DecodeDocument(data []byte) (Pattern, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Pattern{}, errors.Wrapf(ErrMalformedPattern, "decode json: %v", err)
	}

	p := Pattern{Meta: doc.Metadata}
	if len(doc.Pattern.Coordinates) == 0 {
		if doc.Pattern.RLE != "" {
			rle, err := DecodeRLE(doc.Pattern.RLE)
			if err != nil {
				return Pattern{}, err
			}
			p.Coords = rle.Coords
		}
		// An empty coordinate list is a valid pattern (the blank canvas).
		return p, nil
	}

	p.Coords = make([]core.Coord, len(doc.Pattern.Coordinates))
	for i, entry := range doc.Pattern.Coordinates {
		if len(entry) != 2 {
			return Pattern{}, errors.Wrapf(ErrMalformedPattern, "coordinate entry %d has %d elements, want 2", i, len(entry))
		}
		p.Coords[i] = core.Coord{X: entry[0], Y: entry[1]}
	}
	return p, nil
}

// Centered returns coords offset so the pattern's bounding box sits in the
// middle of a w×h grid. An empty pattern returns nil.
func Centered(coords []core.Coord, w, h int) []core.Coord {
	minX, minY, maxX, maxY, ok := bounds(coords)
	if !ok {
		return nil
	}
	offX := (w-(maxX-minX+1))/2 - minX
	offY := (h-(maxY-minY+1))/2 - minY
	out := make([]core.Coord, len(coords))
	for i, c := range coords {
		out[i] = core.Coord{X: c.X + offX, Y: c.Y + offY}
	}
	return out
}

// bounds returns the inclusive bounding box of coords. ok is false when
// coords is empty.
func bounds(coords []core.Coord) (minX, minY, maxX, maxY int, ok bool) {
	for i, c := range coords {
		if i == 0 {
			minX, maxX = c.X, c.X
			minY, maxY = c.Y, c.Y
			continue
		}
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	return minX, minY, maxX, maxY, len(coords) > 0
}
