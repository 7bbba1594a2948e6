package ipc

import "errors"

// Frame layout. These must stay in sync with the referee's turn input:
// seven header lines (three scores, three rages, entity count) followed by
// one whitespace-separated row per entity.
const (
	scoreLines = 3
	rageLines  = 3
	rowFields  = 11
)

var (
	// ErrMalformedRow means a line did not have the expected shape. The
	// referee never sends one, so it signals a desynchronised stream.
	ErrMalformedRow = errors.New("malformed row")

	// ErrShortFrame means the stream ended inside a frame.
	ErrShortFrame = errors.New("short frame")
)
