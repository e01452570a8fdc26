package main

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/katalvlaran/homkit/format"
)

// appendStats writes one row of the persisted-result CSV (spec §6) to
// path, creating the file with a header row if it did not already
// exist.
func appendStats(path string, r format.ResultRecord) error {
	_, statErr := os.Stat(path)
	needsHeader := os.IsNotExist(statErr)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if needsHeader {
		if err := w.Write([]string{"tree", "found", "backtracks", "ac3_time", "mac3_time", "total_time"}); err != nil {
			return err
		}
	}
	row := []string{
		r.Tree,
		strconv.FormatBool(r.Found),
		strconv.Itoa(r.Backtracks),
		strconv.FormatFloat(r.AC3Time, 'f', -1, 64),
		strconv.FormatFloat(r.MAC3Time, 'f', -1, 64),
		strconv.FormatFloat(r.TotalTime, 'f', -1, 64),
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
