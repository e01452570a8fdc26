package format

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseGraphCSV reads the loose-delimiter graph CSV of spec §6: one
// edge per line, two integer fields separated by any of ',', ';',
// '|', or a run of spaces. A header line (the first line, if it fails
// to parse as two integers) is silently discarded.
func ParseGraphCSV(r io.Reader) ([][2]int, error) {
	scanner := bufio.NewScanner(r)
	var edges [][2]int
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';' || r == '|' || r == ' '
		})
		if len(fields) != 2 {
			if first {
				first = false
				continue
			}
			return nil, fmt.Errorf("%q: %w", line, ErrMalformedCSV)
		}
		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		if errU != nil || errV != nil {
			if first {
				first = false
				continue
			}
			return nil, fmt.Errorf("%q: %w", line, ErrMalformedCSV)
		}
		first = false
		edges = append(edges, [2]int{u, v})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return edges, nil
}

// ResultRecord is one row of the persisted-result CSV of spec §6.
type ResultRecord struct {
	Tree       string
	Found      bool
	Backtracks int
	AC3Time    float64
	MAC3Time   float64
	TotalTime  float64
}

// WriteResults emits records as the persisted-result CSV: columns
// tree, found, backtracks, ac3_time, mac3_time, total_time.
func WriteResults(w io.Writer, records []ResultRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"tree", "found", "backtracks", "ac3_time", "mac3_time", "total_time"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Tree,
			strconv.FormatBool(r.Found),
			strconv.Itoa(r.Backtracks),
			strconv.FormatFloat(r.AC3Time, 'f', -1, 64),
			strconv.FormatFloat(r.MAC3Time, 'f', -1, 64),
			strconv.FormatFloat(r.TotalTime, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
