package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/fitbitdash/internal/fitbit"
	"github.com/2beens/fitbitdash/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// DayBoundary decides which calendar day a sleep episode crossing midnight belongs to.
type DayBoundary string

const (
	// WakeDay dates an episode by the day it ends on
	WakeDay DayBoundary = "wake_day"
	// NightStart dates an episode by the day it starts on
	NightStart DayBoundary = "night_start"
)

func ParseDayBoundary(s string) (DayBoundary, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")) {
	case "", string(WakeDay):
		return WakeDay, nil
	case string(NightStart):
		return NightStart, nil
	default:
		return "", fmt.Errorf("unknown sleep day boundary: %s", s)
	}
}

// SleepEpisode is one sleep log of a user: all minute rows sharing a log ID.
type SleepEpisode struct {
	UserID          int64     `json:"userId"`
	LogID           int64     `json:"logId"`
	Date            time.Time `json:"date"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	Minutes         int       `json:"minutes"`
	AsleepMinutes   int       `json:"asleepMinutes"`
	RestlessMinutes int       `json:"restlessMinutes"`
	AwakeMinutes    int       `json:"awakeMinutes"`
}

// SleepDay is the total sleep of a user on one day.
type SleepDay struct {
	UserID        int64     `json:"userId"`
	Date          time.Time `json:"date"`
	Episodes      int       `json:"episodes"`
	Minutes       int       `json:"minutes"`
	AsleepMinutes int       `json:"asleepMinutes"`
}

type sleepKey struct {
	userID int64
	logID  int64
}

type userDay struct {
	userID int64
	date   time.Time
}

// episodes groups minute rows into episodes. The duration is the span between the
// first and the last recorded minute.
func episodes(minutes []fitbit.MinuteSleep, boundary DayBoundary) []SleepEpisode {
	grouped := make(map[sleepKey]*SleepEpisode)
	for _, m := range minutes {
		key := sleepKey{userID: m.UserID, logID: m.LogID}
		ep, ok := grouped[key]
		if !ok {
			ep = &SleepEpisode{UserID: m.UserID, LogID: m.LogID, Start: m.Time, End: m.Time}
			grouped[key] = ep
		}
		if m.Time.Before(ep.Start) {
			ep.Start = m.Time
		}
		if m.Time.After(ep.End) {
			ep.End = m.Time
		}
		switch m.Stage {
		case fitbit.StageAsleep:
			ep.AsleepMinutes++
		case fitbit.StageRestless:
			ep.RestlessMinutes++
		case fitbit.StageAwake:
			ep.AwakeMinutes++
		}
	}

	result := make([]SleepEpisode, 0, len(grouped))
	for _, ep := range grouped {
		ep.Minutes = int(ep.End.Sub(ep.Start).Minutes())
		if boundary == NightStart {
			ep.Date = fitbit.Day(ep.Start)
		} else {
			ep.Date = fitbit.Day(ep.End)
		}
		result = append(result, *ep)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Start.Equal(result[j].Start) {
			return result[i].Start.Before(result[j].Start)
		}
		if result[i].UserID != result[j].UserID {
			return result[i].UserID < result[j].UserID
		}
		return result[i].LogID < result[j].LogID
	})
	return result
}

// SleepEpisodes returns the episodes dated, by the given boundary, on one of the selected days.
// Minutes are fetched for the neighbouring days as well, so an episode crossing midnight is never split.
func (a *Analyzer) SleepEpisodes(
	ctx context.Context,
	filter fitbit.Filter,
	boundary DayBoundary,
) (_ []SleepEpisode, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.sleep-episodes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("sleep-episodes", time.Now())
	span.SetAttributes(attribute.String("boundary", string(boundary)))

	return a.sleepEpisodes(ctx, filter, boundary)
}

func (a *Analyzer) sleepEpisodes(ctx context.Context, filter fitbit.Filter, boundary DayBoundary) ([]SleepEpisode, error) {
	eps, _, err := a.selectedSleep(ctx, filter, boundary)
	if err != nil {
		return nil, err
	}
	if len(eps) == 0 {
		a.noData("sleep-episodes")
	}
	return eps, nil
}

// selectedSleep returns the episodes dated on one of the selected days, together with
// the minute rows belonging to them.
func (a *Analyzer) selectedSleep(
	ctx context.Context,
	filter fitbit.Filter,
	boundary DayBoundary,
) ([]SleepEpisode, []fitbit.MinuteSleep, error) {
	minutes, err := a.repo.MinuteSleep(ctx, filter.WithPrecedingDays(1).WithFollowingDays(1))
	if err != nil {
		return nil, nil, fmt.Errorf("minute sleep: %w", err)
	}

	all := episodes(minutes, boundary)
	selected := make([]SleepEpisode, 0, len(all))
	keys := make(map[sleepKey]struct{}, len(all))
	for _, ep := range all {
		if filter.IncludesDate(ep.Date) && filter.IncludesUser(ep.UserID) {
			selected = append(selected, ep)
			keys[sleepKey{userID: ep.UserID, logID: ep.LogID}] = struct{}{}
		}
	}

	selectedMinutes := make([]fitbit.MinuteSleep, 0, len(minutes))
	for _, m := range minutes {
		if _, ok := keys[sleepKey{userID: m.UserID, logID: m.LogID}]; ok {
			selectedMinutes = append(selectedMinutes, m)
		}
	}

	return selected, selectedMinutes, nil
}

// nightCount is the number of distinct (user, date) pairs the episodes are dated on.
func nightCount(eps []SleepEpisode) int {
	nights := make(map[userDay]struct{}, len(eps))
	for _, ep := range eps {
		nights[userDay{userID: ep.UserID, date: ep.Date}] = struct{}{}
	}
	return len(nights)
}

// SleepPerDay sums the episodes of every user per day, ordered by user and date.
func (a *Analyzer) SleepPerDay(
	ctx context.Context,
	filter fitbit.Filter,
	boundary DayBoundary,
) (_ []SleepDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.sleep-per-day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("sleep-per-day", time.Now())

	eps, err := a.sleepEpisodes(ctx, filter, boundary)
	if err != nil {
		return nil, err
	}

	return sleepDays(eps), nil
}

func sleepDays(eps []SleepEpisode) []SleepDay {
	perDay := make(map[userDay]*SleepDay)
	for _, ep := range eps {
		key := userDay{userID: ep.UserID, date: ep.Date}
		d, ok := perDay[key]
		if !ok {
			d = &SleepDay{UserID: ep.UserID, Date: ep.Date}
			perDay[key] = d
		}
		d.Episodes++
		d.Minutes += ep.Minutes
		d.AsleepMinutes += ep.AsleepMinutes
	}

	days := make([]SleepDay, 0, len(perDay))
	for _, d := range perDay {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool {
		if days[i].UserID != days[j].UserID {
			return days[i].UserID < days[j].UserID
		}
		return days[i].Date.Before(days[j].Date)
	})
	return days
}

// SleepPer4hBlock returns, for every 4h block, the mean number of asleep minutes falling in it
// per night. A night is a user day with an episode dated on it by the given boundary.
func (a *Analyzer) SleepPer4hBlock(
	ctx context.Context,
	filter fitbit.Filter,
	boundary DayBoundary,
) (_ []BlockBucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.sleep-per-4h-block")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("sleep-per-4h-block", time.Now())
	span.SetAttributes(attribute.String("boundary", string(boundary)))

	eps, minutes, err := a.selectedSleep(ctx, filter, boundary)
	if err != nil {
		return nil, err
	}
	if len(eps) == 0 {
		a.noData("sleep-per-4h-block")
	}

	asleep := make(map[fitbit.HourBlock]int)
	for _, m := range minutes {
		if m.Stage == fitbit.StageAsleep {
			asleep[fitbit.BlockOf(m.Time.Hour())]++
		}
	}

	nights := nightCount(eps)
	buckets := make([]BlockBucket, 0, len(fitbit.HourBlocks))
	for _, b := range fitbit.HourBlocks {
		bucket := BlockBucket{Block: b, Count: asleep[b]}
		if nights > 0 {
			bucket.Value = float64(asleep[b]) / float64(nights)
		}
		buckets = append(buckets, bucket)
	}
	return buckets, nil
}

// SleepPerHour returns the mean asleep minutes per night for every clock hour,
// ascending. Hours nobody slept in are left out.
func (a *Analyzer) SleepPerHour(
	ctx context.Context,
	filter fitbit.Filter,
	boundary DayBoundary,
) (_ []HourBucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.sleep-per-hour")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("sleep-per-hour", time.Now())
	span.SetAttributes(attribute.String("boundary", string(boundary)))

	eps, minutes, err := a.selectedSleep(ctx, filter, boundary)
	if err != nil {
		return nil, err
	}
	if len(eps) == 0 {
		a.noData("sleep-per-hour")
		return []HourBucket{}, nil
	}

	var asleep [24]int
	for _, m := range minutes {
		if m.Stage == fitbit.StageAsleep {
			asleep[m.Time.Hour()]++
		}
	}

	nights := float64(nightCount(eps))
	buckets := make([]HourBucket, 0, 24)
	for hour, count := range asleep {
		if count == 0 {
			continue
		}
		buckets = append(buckets, HourBucket{Hour: hour, Value: float64(count) / nights, Count: count})
	}
	return buckets, nil
}

// SleepPerWeekday returns the mean sleep minutes per user day, Monday to Sunday.
func (a *Analyzer) SleepPerWeekday(
	ctx context.Context,
	filter fitbit.Filter,
	boundary DayBoundary,
) (_ []WeekdayBucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.sleep-per-weekday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("sleep-per-weekday", time.Now())

	eps, err := a.sleepEpisodes(ctx, filter, boundary)
	if err != nil {
		return nil, err
	}

	var perDay [7][]SleepDay
	for _, d := range sleepDays(eps) {
		i := fitbit.WeekdayIndex(d.Date.Weekday())
		perDay[i] = append(perDay[i], d)
	}

	buckets := make([]WeekdayBucket, 0, 7)
	for i, wd := range fitbit.Weekdays {
		bucket := WeekdayBucket{
			Weekday: wd,
			Day:     wd.String()[:3],
			Count:   len(perDay[i]),
		}
		if bucket.Count > 0 {
			minutes := make([]float64, 0, bucket.Count)
			asleep := make([]float64, 0, bucket.Count)
			for _, d := range perDay[i] {
				minutes = append(minutes, float64(d.Minutes))
				asleep = append(asleep, float64(d.AsleepMinutes))
			}
			bucket.Values = map[fitbit.DailyColumn]float64{
				ColumnSleepMinutes:  mean(minutes),
				ColumnAsleepMinutes: mean(asleep),
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets, nil
}

// sleep columns used in weekday buckets
const (
	ColumnSleepMinutes  fitbit.DailyColumn = "SleepMinutes"
	ColumnAsleepMinutes fitbit.DailyColumn = "AsleepMinutes"
)

// SleepStages counts the recorded minutes of every sleep stage.
func (a *Analyzer) SleepStages(ctx context.Context, filter fitbit.Filter) (_ []CategoryBucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.sleep-stages")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("sleep-stages", time.Now())

	minutes, err := a.repo.MinuteSleep(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("minute sleep: %w", err)
	}
	if len(minutes) == 0 {
		a.noData("sleep-stages")
	}

	counts := make(map[fitbit.SleepStage]int)
	for _, m := range minutes {
		counts[m.Stage]++
	}

	buckets := make([]CategoryBucket, 0, len(fitbit.SleepStages))
	for _, s := range fitbit.SleepStages {
		buckets = append(buckets, CategoryBucket{Category: s.String(), Value: float64(counts[s])})
	}
	return buckets, nil
}
