package spaceweather

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	timeColumn  = "time_tag"
	indexColumn = "kp"

	nowLayout = "2006-01-02T15:04:05Z"
)

// NextStorm scans rows in order and returns the timestamp of the first row
// later than now whose activity index reaches threshold. Rows that fail to
// parse are skipped. Timestamps are compared as strings against now in
// ISO-8601 form.
func NextStorm(table Table, now time.Time, threshold float64) *string {
	timeIdx := columnIndex(table.Header, timeColumn, 0)
	kpIdx := columnIndex(table.Header, indexColumn, 1)
	nowISO := now.UTC().Format(nowLayout)

	for _, row := range table.Rows {
		ts, ok := cellString(row, timeIdx)
		if !ok {
			continue
		}
		kp, ok := cellFloat(row, kpIdx)
		if !ok {
			continue
		}
		if ts > nowISO && kp >= threshold {
			return &ts
		}
	}
	return nil
}

func columnIndex(header []string, name string, fallback int) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return fallback
}

func cellString(row []any, idx int) (string, bool) {
	if idx < 0 || idx >= len(row) {
		return "", false
	}
	switch v := row[idx].(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

func cellFloat(row []any, idx int) (float64, bool) {
	if idx < 0 || idx >= len(row) {
		return 0, false
	}
	switch v := row[idx].(type) {
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
