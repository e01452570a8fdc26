package format

import "errors"

// Sentinel errors for the format package's parsers.
var (
	// ErrMalformedEdgeList indicates the bracketed edge-list grammar was violated.
	ErrMalformedEdgeList = errors.New("format: malformed edge list")

	// ErrMalformedCSV indicates a CSV row lacked two integer fields.
	ErrMalformedCSV = errors.New("format: malformed csv row")

	// ErrMalformedTriad indicates a triad string did not have exactly
	// three arms, or an arm contained a character other than '0'/'1'.
	ErrMalformedTriad = errors.New("format: malformed triad")

	// ErrUnknownFamily indicates a named-family prefix other than k/c/p/t.
	ErrUnknownFamily = errors.New("format: unknown graph family prefix")

	// ErrMalformedPrecolor indicates a precolour entry lacked the
	// "vertex:image" separator.
	ErrMalformedPrecolor = errors.New("format: malformed precolour entry")
)
