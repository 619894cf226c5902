package pattern

import "github.com/pkg/errors"

// Error kinds surfaced by the codec. Decoding either fully succeeds or
// fails with one of these; callers discriminate with errors.Is. Rule
// strings outside birth/survival notation surface core.ErrUnsupportedRule.
var (
	// ErrMalformedPattern reports coordinate entries that are not
	// well-formed integer pairs, or coordinates outside the grid on encode.
	ErrMalformedPattern = errors.New("malformed pattern")

	// ErrMalformedHeader reports an RLE header with missing or invalid fields.
	ErrMalformedHeader = errors.New("malformed RLE header")

	// ErrMalformedBody reports an RLE body that violates the run/tag
	// grammar or lacks the '!' terminator.
	ErrMalformedBody = errors.New("malformed RLE body")
)
