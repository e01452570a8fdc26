package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/katalvlaran/homkit/digraph"
	"github.com/katalvlaran/homkit/format"
)

var namedFamilyPattern = regexp.MustCompile(`^[kcpt][0-9]+$`)

// parseGraph turns a CLI argument into a digraph.Matrix according to
// the --format flag. "auto" sniffs the argument: a bracketed list is
// an edge list, a single-letter-plus-digits token is a named family, a
// path ending in .csv is read as the graph CSV, and anything else
// falls back to the triad textual form.
func parseGraph(arg, fmtFlag string) (*digraph.Matrix, error) {
	switch fmtFlag {
	case "edgelist":
		edges, err := format.ParseEdgeList(arg)
		if err != nil {
			return nil, err
		}
		return format.BuildMatrix(edges), nil
	case "named":
		return format.ParseNamedFamily(arg)
	case "triad":
		return format.ParseTriad(arg)
	case "csv":
		return readGraphCSV(arg)
	case "auto", "":
		return parseGraphAuto(arg)
	default:
		return nil, fmt.Errorf("%s: %w", fmtFlag, format.ErrUnknownFamily)
	}
}

func parseGraphAuto(arg string) (*digraph.Matrix, error) {
	trimmed := strings.TrimSpace(arg)
	switch {
	case strings.HasSuffix(trimmed, ".csv"):
		return readGraphCSV(trimmed)
	case strings.HasPrefix(trimmed, "["):
		edges, err := format.ParseEdgeList(trimmed)
		if err != nil {
			return nil, err
		}
		return format.BuildMatrix(edges), nil
	case namedFamilyPattern.MatchString(trimmed):
		return format.ParseNamedFamily(trimmed)
	default:
		return format.ParseTriad(trimmed)
	}
}

func readGraphCSV(path string) (*digraph.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	edges, err := format.ParseGraphCSV(f)
	if err != nil {
		return nil, err
	}
	return format.BuildMatrix(edges), nil
}
