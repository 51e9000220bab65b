package fitbit

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Filter selects the rows a view is computed from.
// Nil Dates means every date; a non-nil empty Dates matches nothing.
type Filter struct {
	Dates  []time.Time
	UserID *int64
}

func NewFilter(dates []time.Time, userID *int64) Filter {
	return Filter{Dates: dates, UserID: userID}.Normalize()
}

// Normalize truncates the dates to midnight UTC, sorts them and drops duplicates.
func (f Filter) Normalize() Filter {
	if f.Dates == nil {
		return f
	}

	dates := make([]time.Time, 0, len(f.Dates))
	for _, d := range f.Dates {
		dates = append(dates, Day(d))
	}
	slices.SortFunc(dates, func(a, b time.Time) int {
		return a.Compare(b)
	})
	dates = slices.CompactFunc(dates, func(a, b time.Time) bool {
		return a.Equal(b)
	})

	return Filter{Dates: dates, UserID: f.UserID}
}

// IncludesDate reports whether the calendar day of t passes the date predicate.
func (f Filter) IncludesDate(t time.Time) bool {
	if f.Dates == nil {
		return true
	}
	day := Day(t)
	for _, d := range f.Dates {
		if d.Equal(day) {
			return true
		}
	}
	return false
}

func (f Filter) IncludesUser(userID int64) bool {
	return f.UserID == nil || *f.UserID == userID
}

// WithPrecedingDays returns a filter that also selects the n days before each selected date.
func (f Filter) WithPrecedingDays(n int) Filter {
	return f.widen(n, 0)
}

// WithFollowingDays returns a filter that also selects the n days after each selected date.
func (f Filter) WithFollowingDays(n int) Filter {
	return f.widen(0, n)
}

func (f Filter) widen(before, after int) Filter {
	if f.Dates == nil || (before <= 0 && after <= 0) {
		return f
	}
	widened := make([]time.Time, 0, len(f.Dates)*(before+after+1))
	for _, d := range f.Dates {
		for i := -max(before, 0); i <= max(after, 0); i++ {
			widened = append(widened, d.AddDate(0, 0, i))
		}
	}
	return Filter{Dates: widened, UserID: f.UserID}.Normalize()
}

func (f Filter) String() string {
	user := "all"
	if f.UserID != nil {
		user = fmt.Sprintf("%d", *f.UserID)
	}
	switch {
	case f.Dates == nil:
		return fmt.Sprintf("user=%s dates=all", user)
	case len(f.Dates) == 0:
		return fmt.Sprintf("user=%s dates=none", user)
	default:
		return fmt.Sprintf("user=%s dates=%s..%s(%d)",
			user, f.Dates[0].Format(ISODateLayout), f.Dates[len(f.Dates)-1].Format(ISODateLayout), len(f.Dates))
	}
}

// DateRange returns every calendar date from start to end, both inclusive.
func DateRange(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	dates := make([]time.Time, 0)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// ClampToCoverage bounds [start, end] to the dataset coverage window.
func ClampToCoverage(start, end, coverageStart, coverageEnd time.Time) (time.Time, time.Time, error) {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %s is after %s",
			ErrInvalidDateRange, FormatDisplayDate(start), FormatDisplayDate(end))
	}
	if start.Before(coverageStart) {
		start = Day(coverageStart)
	}
	if end.After(coverageEnd) {
		end = Day(coverageEnd)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: outside of %s - %s",
			ErrInvalidDateRange, FormatDisplayDate(coverageStart), FormatDisplayDate(coverageEnd))
	}
	return start, end, nil
}

// HourBlock is one of the six 4-hour segments of a day.
type HourBlock string

var HourBlocks = []HourBlock{"0-4", "4-8", "8-12", "12-16", "16-20", "20-24"}

// BlockOf returns the block containing the given hour (0-23).
func BlockOf(hour int) HourBlock {
	if hour < 0 || hour > 23 {
		return ""
	}
	return HourBlocks[hour/4]
}

func ParseHourBlocks(values []string) ([]HourBlock, error) {
	blocks := make([]HourBlock, 0, len(values))
	for _, v := range values {
		b := HourBlock(strings.TrimSpace(v))
		if !slices.Contains(HourBlocks, b) {
			return nil, fmt.Errorf("unknown hour block: %s", v)
		}
		if !slices.Contains(blocks, b) {
			blocks = append(blocks, b)
		}
	}
	return blocks, nil
}

type DayType string

const (
	DayTypeWeekdays DayType = "Weekdays"
	DayTypeWeekend  DayType = "Weekend"
)

func DayTypeOf(t time.Time) DayType {
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return DayTypeWeekend
	}
	return DayTypeWeekdays
}

func ParseDayTypes(values []string) ([]DayType, error) {
	dayTypes := make([]DayType, 0, len(values))
	for _, v := range values {
		var dt DayType
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "weekdays", "weekday":
			dt = DayTypeWeekdays
		case "weekend", "weekends":
			dt = DayTypeWeekend
		default:
			return nil, fmt.Errorf("unknown day type: %s", v)
		}
		if !slices.Contains(dayTypes, dt) {
			dayTypes = append(dayTypes, dt)
		}
	}
	return dayTypes, nil
}
