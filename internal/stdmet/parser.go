// Package stdmet parses the NDBC realtime standard meteorological text
// format: a two-line commented header (column names, then units) followed by
// whitespace-delimited observation rows.
package stdmet

import (
	"strconv"
	"strings"
	"time"
)

// missing-value sentinels used by the feed
const (
	sentinelMissing = "MM"
	sentinelNaN     = "NaN"
)

// Parse converts one station's raw feed text into a Table. The result is a
// pure function of the input: the same text always yields the same table.
//
// If no header line is found the returned table has zero rows; that is the
// "no data" condition, not an error. Malformed rows are dropped rather than
// surfaced so that noisy feeds still yield their usable observations.
func Parse(text string) *Table {
	table := NewTable()

	lines := strings.Split(text, "\n")

	header, next := findHeader(lines)
	if header == nil {
		return table
	}

	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		colIdx[name] = i
	}

	for _, line := range lines[next:] {
		l := strings.TrimSpace(line)
		if l == "" {
			continue
		}
		if strings.HasPrefix(l, "#") {
			// only one contiguous data block per feed
			break
		}

		toks := strings.Fields(l)
		if len(toks) < 5 {
			continue
		}

		ts, ok := decodeTimestamp(toks)
		if !ok {
			continue
		}

		table.Times = append(table.Times, ts)
		for _, name := range FieldNames {
			col := table.cols[name]
			idx, known := colIdx[name]
			if !known || idx >= len(toks) {
				col.appendNull()
				continue
			}
			if v, present := parseReading(toks[idx]); present {
				col.append(v)
			} else {
				col.appendNull()
			}
		}
	}

	return table
}

// findHeader scans for the column-name header line: a comment whose tokens
// start with a year column (suffix "YY"), then "MM" and "DD". It returns the
// header tokens and the index of the first line after the header, with the
// units line (a comment immediately following the header) already consumed.
func findHeader(lines []string) ([]string, int) {
	for i, line := range lines {
		l := strings.TrimSpace(line)
		if !strings.HasPrefix(l, "#") {
			continue
		}
		toks := strings.Fields(strings.TrimLeft(l, "#"))
		if len(toks) < 5 || !strings.HasSuffix(toks[0], "YY") || toks[1] != "MM" || toks[2] != "DD" {
			continue
		}

		next := i + 1
		if next < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[next]), "#") {
			next++
		}
		return toks, next
	}
	return nil, 0
}

// decodeTimestamp reads the first five tokens positionally as year, month,
// day, hour, minute. Two-digit years mean 2000+yy; values already >= 1000 are
// taken as-is. Rows whose tokens do not form a valid UTC instant are skipped
// by the caller, never defaulted.
func decodeTimestamp(toks []string) (int64, bool) {
	year, err := strconv.Atoi(toks[0])
	if err != nil {
		return 0, false
	}
	if year < 1000 {
		year += 2000
	}

	parts := make([]int, 4)
	for i := 0; i < 4; i++ {
		v, err := strconv.Atoi(toks[i+1])
		if err != nil {
			return 0, false
		}
		parts[i] = v
	}
	month, day, hour, minute := parts[0], parts[1], parts[2], parts[3]

	if month < 1 || month > 12 || day < 1 || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, false
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	// time.Date normalizes out-of-range days (e.g. Feb 30); reject those.
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return 0, false
	}

	return t.UnixMilli(), true
}

// parseReading decodes one observation token. The feed marks missing readings
// with "MM" (some stations emit "NaN"); anything unparsable is likewise
// treated as absent rather than failing the row.
func parseReading(tok string) (float64, bool) {
	if tok == sentinelMissing || tok == sentinelNaN {
		return 0, false
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
