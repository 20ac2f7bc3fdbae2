package streetgraph

import "errors"

var (
	// ErrFormat indicates the input document is missing the required
	// nodes/edges lists or has the wrong top-level shape.
	ErrFormat = errors.New("streetgraph: malformed dataset document")
	// ErrConfig indicates selection parameters that can only produce
	// nonsensical output, e.g. a negative radius.
	ErrConfig = errors.New("streetgraph: invalid selection parameters")
)
