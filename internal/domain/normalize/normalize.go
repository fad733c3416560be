// Package normalize is the single boundary where dynamically-shaped
// spreadsheet rows become the strict domain types.
//
// The upstream data source is an uncontrolled spreadsheet: historical rows
// carry booleans in status columns, Indonesian and English status tokens,
// ISO timestamps next to bare dates, and JSON strings stored in the wrong
// column. Every function here is total and never panics; malformed input
// degrades to the safest canonical default (None status, absent date, empty
// file list) and is counted as an anomaly, never surfaced as an error.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pengadaan_monitor/internal/domain/entities"
	"pengadaan_monitor/internal/metrics"
)

var inProcessTokens = map[string]struct{}{
	"in process":  {},
	"in_progress": {},
	"inprogress":  {},
	"process":     {},
	"proses":      {},
	"progress":    {},
	"ongoing":     {},
	"on progress": {},
	"onprogress":  {},
}

var doneTokens = map[string]struct{}{
	"done":      {},
	"selesai":   {},
	"finish":    {},
	"finished":  {},
	"completed": {},
	"complete":  {},
	"ok":        {},
	"yes":       {},
	"true":      {},
	"1":         {},
}

var noneTokens = map[string]struct{}{
	"none":  {},
	"null":  {},
	"nan":   {},
	"nat":   {},
	"false": {},
	"0":     {},
}

// Status canonicalizes any raw status cell value to one of the three
// StageStatus variants. Unrecognized input falls back to None; this function
// never fails.
//
// Idempotent over the canonical strings: Status(Status(x)) == Status(x).
func Status(raw any) entities.StageStatus {
	s := strings.TrimSpace(asString(raw))
	if s == "" {
		return entities.StageStatusNone
	}
	low := strings.ToLower(s)
	if _, ok := noneTokens[low]; ok {
		return entities.StageStatusNone
	}
	if _, ok := inProcessTokens[low]; ok {
		return entities.StageStatusInProcess
	}
	if _, ok := doneTokens[low]; ok {
		return entities.StageStatusDone
	}
	metrics.NormalizationAnomaliesTotal.WithLabelValues(metrics.AnomalyStatusToken).Inc()
	return entities.StageStatusNone
}

// dateNoneTokens are cell values that mean "no date" rather than a parse
// failure (pandas NaN/NaT leak into exported rows as text).
var dateNoneTokens = map[string]struct{}{
	"none":  {},
	"nan":   {},
	"nat":   {},
	"false": {},
}

// Date extracts a calendar date from a raw cell value, or nil when absent or
// unparseable. Full ISO-8601 timestamps are truncated to the date portion.
// The result carries no time of day and no timezone; it is always midnight
// UTC.
func Date(raw any) *time.Time {
	var s string
	switch v := raw.(type) {
	case nil:
		return nil
	case bool:
		return nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return nil
	case string:
		s = v
	default:
		s = fmt.Sprintf("%v", v)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, ok := dateNoneTokens[strings.ToLower(s)]; ok {
		return nil
	}
	// "2025-01-10T00:00:00Z" and "2025-01-10 00:00:00" both reduce to the
	// first ten characters.
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		metrics.NormalizationAnomaliesTotal.WithLabelValues(metrics.AnomalyDateParse).Inc()
		return nil
	}
	d := t.UTC()
	return &d
}

// DateString serializes a date to the one wire format the spreadsheet
// backend accepts: "YYYY-MM-DD", or "" for absent.
func DateString(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format("2006-01-02")
}

// Timestamp is a best-effort parse for the LAST_UPDATE column, which mixes
// RFC3339, spreadsheet "datetime" text, and bare dates.
func Timestamp(raw any) *time.Time {
	s := strings.TrimSpace(asString(raw))
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return Date(raw)
}

// State is the invariant-enforcing choke point: it normalizes the raw
// (status, date) pair and forces the date absent whenever the resulting
// status is not Done. Every inbound row and every outbound patch passes
// through here.
func State(rawStatus, rawDate any) entities.StageState {
	st := entities.StageState{
		Status: Status(rawStatus),
		Date:   Date(rawDate),
	}
	if st.Status != entities.StageStatusDone {
		st.Date = nil
	}
	return st
}

// asString renders any cell value as text for token matching. JSON numbers
// arrive as float64; integral values must render without a fraction so that
// 1 matches "1".
func asString(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
