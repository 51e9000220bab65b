package fitbit

import (
	"fmt"
	"strings"
	"time"
)

const (
	// SourceDateLayout matches the export's MM/DD/YYYY dates, with or without zero padding
	SourceDateLayout = "1/2/2006"
	// SourceTimestampLayout matches the export's MM/DD/YYYY hh:mm:ss AM/PM timestamps
	SourceTimestampLayout = "1/2/2006 3:04:05 PM"
	DisplayDateLayout     = "01/02/2006"
	ISODateLayout         = "2006-01-02"
)

var timestampLayouts = []string{
	SourceTimestampLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	SourceDateLayout,
	ISODateLayout,
}

// ParseDate parses a calendar date as found in the export or in query params.
// A timestamp is accepted as well, and truncated to its day.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{SourceDateLayout, ISODateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	t, err := ParseTimestamp(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date [%s]: %w", s, err)
	}
	return Day(t), nil
}

// ParseTimestamp parses the export's timestamps. All times are treated as UTC wall clock.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp format: [%s]", s)
}

// Day truncates t to midnight of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

// Weekdays is the canonical display order of the week.
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// WeekdayIndex is the position of wd in Weekdays, Monday = 0.
func WeekdayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
