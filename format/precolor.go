package format

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrecolor parses a comma-separated list of "vertex:image" pairs
// into a precolouring map, per spec §7's "malformed precolouring
// (missing ':' between vertex and image)" error case.
func ParsePrecolor(s string) (map[int]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return map[int]int{}, nil
	}
	out := make(map[int]int)
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		idx := strings.IndexByte(entry, ':')
		if idx < 0 {
			return nil, fmt.Errorf("%q: %w", entry, ErrMalformedPrecolor)
		}
		v, errV := strconv.Atoi(strings.TrimSpace(entry[:idx]))
		img, errImg := strconv.Atoi(strings.TrimSpace(entry[idx+1:]))
		if errV != nil || errImg != nil {
			return nil, fmt.Errorf("%q: %w", entry, ErrMalformedPrecolor)
		}
		out[v] = img
	}
	return out, nil
}
