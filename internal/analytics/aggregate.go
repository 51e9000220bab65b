package analytics

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sort"
	"time"

	"github.com/2beens/fitbitdash/internal/fitbit"
	"github.com/2beens/fitbitdash/internal/telemetry/tracing"

	"github.com/montanaflynn/stats"
	"go.opentelemetry.io/otel/attribute"
)

type HourBucket struct {
	Hour  int     `json:"hour"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// WeekdayBucket holds the means of the requested columns for one day of the week.
// A weekday without rows has Count 0 and no Values.
type WeekdayBucket struct {
	Weekday time.Weekday                   `json:"-"`
	Day     string                         `json:"day"`
	Count   int                            `json:"count"`
	Values  map[fitbit.DailyColumn]float64 `json:"values,omitempty"`
}

type BlockBucket struct {
	Block fitbit.HourBlock `json:"block"`
	Value float64          `json:"value"`
	Count int              `json:"count"`
}

type CategoryBucket struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

type FrequencyBucket struct {
	Day       string  `json:"day"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

type Summary struct {
	Days             int    `json:"days"`
	Users            Result `json:"users"`
	Steps            Result `json:"steps"`
	Calories         Result `json:"calories"`
	Distance         Result `json:"distance"`
	ActiveMinutes    Result `json:"activeMinutes"`
	SedentaryMinutes Result `json:"sedentaryMinutes"`
}

type SeriesPoint struct {
	Date   time.Time                      `json:"date"`
	Users  int                            `json:"users"`
	Values map[fitbit.DailyColumn]float64 `json:"values"`
}

type UserTotal struct {
	UserID int64   `json:"userId"`
	Value  float64 `json:"value"`
}

type UserClassification struct {
	UserID  int64            `json:"userId"`
	Records int              `json:"records"`
	Class   fitbit.UserClass `json:"class"`
}

type ColumnDescription struct {
	Column fitbit.DailyColumn `json:"column"`
	Count  int                `json:"count"`
	Mean   Result             `json:"mean"`
	Std    Result             `json:"std"`
	Min    Result             `json:"min"`
	P25    Result             `json:"p25"`
	Median Result             `json:"median"`
	P75    Result             `json:"p75"`
	Max    Result             `json:"max"`
}

const (
	TimeOfDayNight     = "Night (12AM-6AM)"
	TimeOfDayMorning   = "Morning (6AM-12PM)"
	TimeOfDayAfternoon = "Afternoon (12PM-6PM)"
	TimeOfDayEvening   = "Evening (6PM-12AM)"
)

var timesOfDay = []string{TimeOfDayNight, TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayEvening}

const (
	CategoryVeryActive    = "Very Active"
	CategoryFairlyActive  = "Fairly Active"
	CategoryLightlyActive = "Lightly Active"
	CategorySedentary     = "Sedentary"
)

func mean(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

// AveragePerHour returns the mean of the metric per hour of day, ascending, hours without rows omitted.
// Heart rate is averaged per day and hour first, so every day weighs the same.
func (a *Analyzer) AveragePerHour(
	ctx context.Context,
	metric fitbit.HourlyMetric,
	filter fitbit.Filter,
) (_ []HourBucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.average-per-hour")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("average-per-hour", time.Now())
	span.SetAttributes(attribute.String("metric", string(metric)))

	records, err := a.repo.Hourly(ctx, metric, filter)
	if err != nil {
		return nil, fmt.Errorf("hourly %s: %w", metric, err)
	}
	if len(records) == 0 {
		a.noData("average-per-hour")
	}

	return hourBuckets(records, metric == fitbit.MetricHeartRate), nil
}

func hourBuckets(records []fitbit.HourlyRecord, perDayFirst bool) []HourBucket {
	if perDayFirst {
		records = dayHourMeans(records)
	}

	var perHour [24][]float64
	for _, rec := range records {
		h := rec.ActivityHour.Hour()
		perHour[h] = append(perHour[h], rec.Value)
	}

	buckets := make([]HourBucket, 0, 24)
	for h, values := range perHour {
		if len(values) == 0 {
			continue
		}
		buckets = append(buckets, HourBucket{
			Hour:  h,
			Value: mean(values),
			Count: len(values),
		})
	}
	return buckets
}

// dayHourMeans reduces the records to one mean per calendar day and clock hour, across users.
func dayHourMeans(records []fitbit.HourlyRecord) []fitbit.HourlyRecord {
	grouped := make(map[time.Time][]float64)
	for _, rec := range records {
		hour := rec.ActivityHour.Truncate(time.Hour)
		grouped[hour] = append(grouped[hour], rec.Value)
	}

	reduced := make([]fitbit.HourlyRecord, 0, len(grouped))
	for hour, values := range grouped {
		reduced = append(reduced, fitbit.HourlyRecord{
			ActivityHour: hour,
			Value:        mean(values),
		})
	}
	sort.Slice(reduced, func(i, j int) bool {
		return reduced[i].ActivityHour.Before(reduced[j].ActivityHour)
	})
	return reduced
}

// AveragePerWeekday returns exactly 7 rows, Monday to Sunday, with the per column means.
func (a *Analyzer) AveragePerWeekday(
	ctx context.Context,
	columns []fitbit.DailyColumn,
	filter fitbit.Filter,
) (_ []WeekdayBucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.average-per-weekday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("average-per-weekday", time.Now())

	if err := validateColumns(columns); err != nil {
		return nil, err
	}

	activities, err := a.repo.DailyActivity(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("daily activity: %w", err)
	}
	if len(activities) == 0 {
		a.noData("average-per-weekday")
	}

	return weekdayBuckets(activities, columns), nil
}

func weekdayBuckets(activities []fitbit.DailyActivity, columns []fitbit.DailyColumn) []WeekdayBucket {
	var perDay [7][]fitbit.DailyActivity
	for _, d := range activities {
		i := fitbit.WeekdayIndex(d.ActivityDate.Weekday())
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
			bucket.Values = make(map[fitbit.DailyColumn]float64, len(columns))
			for _, c := range columns {
				values := make([]float64, 0, len(perDay[i]))
				for _, d := range perDay[i] {
					// columns are validated by the caller
					v, _ := d.Value(c)
					values = append(values, v)
				}
				bucket.Values[c] = mean(values)
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

func validateColumns(columns []fitbit.DailyColumn) error {
	if len(columns) == 0 {
		return fmt.Errorf("%w: no columns", fitbit.ErrUnknownColumn)
	}
	for _, c := range columns {
		if !slices.Contains(fitbit.DailyColumns, c) {
			return fmt.Errorf("%w: %s", fitbit.ErrUnknownColumn, c)
		}
	}
	return nil
}

// AveragePer4hBlock returns the 6 blocks of the day, in order, with the mean hourly value of each.
func (a *Analyzer) AveragePer4hBlock(
	ctx context.Context,
	metric fitbit.HourlyMetric,
	filter fitbit.Filter,
) (_ []BlockBucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.average-per-4h-block")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("average-per-4h-block", time.Now())
	span.SetAttributes(attribute.String("metric", string(metric)))

	records, err := a.repo.Hourly(ctx, metric, filter)
	if err != nil {
		return nil, fmt.Errorf("hourly %s: %w", metric, err)
	}
	if len(records) == 0 {
		a.noData("average-per-4h-block")
	}
	if metric == fitbit.MetricHeartRate {
		records = dayHourMeans(records)
	}

	perBlock := make(map[fitbit.HourBlock][]float64)
	for _, rec := range records {
		b := fitbit.BlockOf(rec.ActivityHour.Hour())
		perBlock[b] = append(perBlock[b], rec.Value)
	}

	buckets := make([]BlockBucket, 0, len(fitbit.HourBlocks))
	for _, b := range fitbit.HourBlocks {
		buckets = append(buckets, BlockBucket{
			Block: b,
			Value: mean(perBlock[b]),
			Count: len(perBlock[b]),
		})
	}
	return buckets, nil
}

// TimeOfDayTotals sums the metric over the four 6-hour periods of the day.
// Heart rate is a mean, not a count, so it has no totals.
func (a *Analyzer) TimeOfDayTotals(
	ctx context.Context,
	metric fitbit.HourlyMetric,
	filter fitbit.Filter,
) (_ []CategoryBucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.time-of-day-totals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("time-of-day-totals", time.Now())

	if metric == fitbit.MetricHeartRate {
		return nil, fmt.Errorf("%w: no totals for %s", fitbit.ErrUnknownMetric, metric)
	}

	records, err := a.repo.Hourly(ctx, metric, filter)
	if err != nil {
		return nil, fmt.Errorf("hourly %s: %w", metric, err)
	}
	if len(records) == 0 {
		a.noData("time-of-day-totals")
		return []CategoryBucket{}, nil
	}

	var totals [4]float64
	for _, rec := range records {
		totals[rec.ActivityHour.Hour()/6] += rec.Value
	}

	buckets := make([]CategoryBucket, 0, len(timesOfDay))
	for i, name := range timesOfDay {
		buckets = append(buckets, CategoryBucket{Category: name, Value: totals[i]})
	}
	return buckets, nil
}

// ActivityBreakdown returns the mean minutes spent in each activity category.
// No rows means an empty breakdown.
func (a *Analyzer) ActivityBreakdown(ctx context.Context, filter fitbit.Filter) (_ []CategoryBucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.activity-breakdown")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("activity-breakdown", time.Now())

	activities, err := a.repo.DailyActivity(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("daily activity: %w", err)
	}
	if len(activities) == 0 {
		a.noData("activity-breakdown")
		return []CategoryBucket{}, nil
	}

	var very, fairly, lightly, sedentary float64
	for _, d := range activities {
		very += float64(d.VeryActiveMinutes)
		fairly += float64(d.FairlyActiveMinutes)
		lightly += float64(d.LightlyActiveMinutes)
		sedentary += float64(d.SedentaryMinutes)
	}
	n := float64(len(activities))

	return []CategoryBucket{
		{Category: CategoryVeryActive, Value: very / n},
		{Category: CategoryFairlyActive, Value: fairly / n},
		{Category: CategoryLightlyActive, Value: lightly / n},
		{Category: CategorySedentary, Value: sedentary / n},
	}, nil
}

// WorkoutFrequency counts, per weekday, the days with any activity recorded,
// and the share of all active days falling on it.
func (a *Analyzer) WorkoutFrequency(ctx context.Context, filter fitbit.Filter) (_ []FrequencyBucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.workout-frequency")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("workout-frequency", time.Now())

	activities, err := a.repo.DailyActivity(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("daily activity: %w", err)
	}

	var counts [7]int
	total := 0
	for _, d := range activities {
		if d.TotalSteps <= 0 && d.ActiveMinutes() <= 0 {
			continue
		}
		counts[fitbit.WeekdayIndex(d.ActivityDate.Weekday())]++
		total++
	}
	if total == 0 {
		a.noData("workout-frequency")
	}

	buckets := make([]FrequencyBucket, 0, 7)
	for i, wd := range fitbit.Weekdays {
		b := FrequencyBucket{
			Day:   wd.String()[:3],
			Count: counts[i],
		}
		if total > 0 {
			b.Frequency = float64(counts[i]) / float64(total)
		}
		buckets = append(buckets, b)
	}
	return buckets, nil
}

// Averages summarizes the selected days: unique users, and the mean steps, calories,
// active and sedentary minutes truncated to whole numbers, distance rounded to 2 decimals.
func (a *Analyzer) Averages(ctx context.Context, filter fitbit.Filter) (_ Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.averages")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("averages", time.Now())

	activities, err := a.repo.DailyActivity(ctx, filter)
	if err != nil {
		return Summary{}, fmt.Errorf("daily activity: %w", err)
	}
	if len(activities) == 0 {
		a.noData("averages")
		return Summary{
			Users:            NoData(),
			Steps:            NoData(),
			Calories:         NoData(),
			Distance:         NoData(),
			ActiveMinutes:    NoData(),
			SedentaryMinutes: NoData(),
		}, nil
	}

	users := make(map[int64]struct{})
	days := make(map[time.Time]struct{})
	var steps, calories, distance, active, sedentary []float64
	for _, d := range activities {
		users[d.UserID] = struct{}{}
		days[d.ActivityDate] = struct{}{}
		steps = append(steps, float64(d.TotalSteps))
		calories = append(calories, float64(d.Calories))
		distance = append(distance, d.TotalDistance)
		active = append(active, float64(d.ActiveMinutes()))
		sedentary = append(sedentary, float64(d.SedentaryMinutes))
	}
	span.SetAttributes(attribute.Int("users", len(users)))

	distanceMean, err := stats.Round(mean(distance), 2)
	if err != nil {
		return Summary{}, fmt.Errorf("round distance: %w", err)
	}

	return Summary{
		Days:             len(days),
		Users:            Value(float64(len(users))),
		Steps:            Value(math.Trunc(mean(steps))),
		Calories:         Value(math.Trunc(mean(calories))),
		Distance:         Value(distanceMean),
		ActiveMinutes:    Value(math.Trunc(mean(active))),
		SedentaryMinutes: Value(math.Trunc(mean(sedentary))),
	}, nil
}

// DailySeries returns the per date means of the requested columns, ordered by date.
func (a *Analyzer) DailySeries(
	ctx context.Context,
	columns []fitbit.DailyColumn,
	filter fitbit.Filter,
) (_ []SeriesPoint, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.daily-series")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("daily-series", time.Now())

	if err := validateColumns(columns); err != nil {
		return nil, err
	}

	activities, err := a.repo.DailyActivity(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("daily activity: %w", err)
	}
	if len(activities) == 0 {
		a.noData("daily-series")
	}

	perDate := make(map[time.Time][]fitbit.DailyActivity)
	for _, d := range activities {
		perDate[d.ActivityDate] = append(perDate[d.ActivityDate], d)
	}

	series := make([]SeriesPoint, 0, len(perDate))
	for date, rows := range perDate {
		p := SeriesPoint{
			Date:   date,
			Values: make(map[fitbit.DailyColumn]float64, len(columns)),
		}
		users := make(map[int64]struct{})
		for _, c := range columns {
			values := make([]float64, 0, len(rows))
			for _, d := range rows {
				users[d.UserID] = struct{}{}
				v, _ := d.Value(c)
				values = append(values, v)
			}
			p.Values[c] = mean(values)
		}
		p.Users = len(users)
		series = append(series, p)
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series, nil
}

// TotalDistancePerUser sums the distance of every user, largest first.
func (a *Analyzer) TotalDistancePerUser(ctx context.Context, filter fitbit.Filter) (_ []UserTotal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.total-distance-per-user")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("total-distance-per-user", time.Now())

	activities, err := a.repo.DailyActivity(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("daily activity: %w", err)
	}
	if len(activities) == 0 {
		a.noData("total-distance-per-user")
	}

	totals := make(map[int64]float64)
	for _, d := range activities {
		totals[d.UserID] += d.TotalDistance
	}

	users := make([]UserTotal, 0, len(totals))
	for id, total := range totals {
		users = append(users, UserTotal{UserID: id, Value: total})
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].Value == users[j].Value {
			return users[i].UserID < users[j].UserID
		}
		return users[i].Value > users[j].Value
	})

	return users, nil
}

// UserClasses classifies every user by the number of daily records, ordered by user ID.
func (a *Analyzer) UserClasses(ctx context.Context) (_ []UserClassification, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.user-classes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("user-classes", time.Now())

	counts, err := a.repo.RecordCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("record counts: %w", err)
	}

	users := make([]UserClassification, 0, len(counts))
	for id, count := range counts {
		users = append(users, UserClassification{
			UserID:  id,
			Records: count,
			Class:   fitbit.ClassifyUser(count),
		})
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].UserID < users[j].UserID
	})

	return users, nil
}

// ClassBreakdown counts the users of each class, Light to Heavy.
func ClassBreakdown(users []UserClassification) []CategoryBucket {
	counts := make(map[fitbit.UserClass]int)
	for _, u := range users {
		counts[u.Class]++
	}

	classes := []fitbit.UserClass{fitbit.UserClassLight, fitbit.UserClassModerate, fitbit.UserClassHeavy}
	buckets := make([]CategoryBucket, 0, len(classes))
	for _, c := range classes {
		buckets = append(buckets, CategoryBucket{Category: string(c), Value: float64(counts[c])})
	}
	return buckets
}

// Describe returns count, mean, sample standard deviation, min, quartiles and max per column.
func (a *Analyzer) Describe(
	ctx context.Context,
	columns []fitbit.DailyColumn,
	filter fitbit.Filter,
) (_ []ColumnDescription, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.describe")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("describe", time.Now())

	if err := validateColumns(columns); err != nil {
		return nil, err
	}

	activities, err := a.repo.DailyActivity(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("daily activity: %w", err)
	}
	if len(activities) == 0 {
		a.noData("describe")
	}

	descriptions := make([]ColumnDescription, 0, len(columns))
	for _, c := range columns {
		values := make([]float64, 0, len(activities))
		for _, d := range activities {
			v, _ := d.Value(c)
			values = append(values, v)
		}
		descriptions = append(descriptions, describe(c, values))
	}
	return descriptions, nil
}

func describe(column fitbit.DailyColumn, values []float64) ColumnDescription {
	desc := ColumnDescription{
		Column: column,
		Count:  len(values),
	}
	if len(values) == 0 {
		desc.Mean, desc.Std, desc.Min, desc.P25 = NoData(), NoData(), NoData(), NoData()
		desc.Median, desc.P75, desc.Max = NoData(), NoData(), NoData()
		return desc
	}

	fromStats := func(v float64, err error) Result {
		if err != nil {
			return Undefined(err.Error())
		}
		return Value(v)
	}

	desc.Mean = fromStats(stats.Mean(values))
	desc.Min = fromStats(stats.Min(values))
	desc.Median = fromStats(stats.Median(values))
	desc.Max = fromStats(stats.Max(values))
	if sorted, err := stats.Sort(values); err != nil {
		desc.P25, desc.P75 = Undefined(err.Error()), Undefined(err.Error())
	} else {
		desc.P25 = Value(quantile(sorted, 0.25))
		desc.P75 = Value(quantile(sorted, 0.75))
	}
	if len(values) < 2 {
		desc.Std = Undefined("sample standard deviation needs at least 2 values")
	} else {
		desc.Std = fromStats(stats.StandardDeviationSample(values))
	}

	return desc
}

// quantile interpolates linearly between the two closest ranks of sorted values.
func quantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	return sorted[lower] + (pos-float64(lower))*(sorted[upper]-sorted[lower])
}

// WeightCategories counts the users in each weight band, using the latest known weight
// of every user in the selected period. Always 4 rows.
func (a *Analyzer) WeightCategories(ctx context.Context, filter fitbit.Filter) (_ []CategoryBucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.weight-categories")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("weight-categories", time.Now())

	logs, err := a.repo.WeightLog(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("weight log: %w", err)
	}
	// stores cleaned before the backfill existed still have pounds only rows
	logs, _ = fitbit.BackfillWeightKg(logs)

	type latest struct {
		date time.Time
		kg   float64
	}
	perUser := make(map[int64]latest)
	for _, l := range logs {
		if l.WeightKg == nil {
			continue
		}
		if prev, ok := perUser[l.UserID]; ok && prev.date.After(l.Date) {
			continue
		}
		perUser[l.UserID] = latest{date: l.Date, kg: *l.WeightKg}
	}
	if len(perUser) == 0 {
		a.noData("weight-categories")
	}

	counts := make(map[fitbit.WeightCategory]int)
	for _, l := range perUser {
		counts[fitbit.ClassifyWeight(l.kg)]++
	}

	buckets := make([]CategoryBucket, 0, len(fitbit.WeightCategories))
	for _, c := range fitbit.WeightCategories {
		buckets = append(buckets, CategoryBucket{Category: string(c), Value: float64(counts[c])})
	}
	return buckets, nil
}

// HeartRateZones returns the minutes spent in each heart rate zone. Always 3 rows.
func (a *Analyzer) HeartRateZones(ctx context.Context, filter fitbit.Filter) (_ []CategoryBucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.heart-rate-zones")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("heart-rate-zones", time.Now())

	samples, err := a.repo.HeartRateMinutes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("heart rate minutes: %w", err)
	}
	if len(samples) == 0 {
		a.noData("heart-rate-zones")
	}

	counts := make(map[fitbit.HeartRateZone]int)
	for _, s := range samples {
		counts[fitbit.ClassifyHeartRateZone(s.Value)]++
	}

	buckets := make([]CategoryBucket, 0, len(fitbit.HeartRateZones))
	for _, z := range fitbit.HeartRateZones {
		buckets = append(buckets, CategoryBucket{Category: string(z), Value: float64(counts[z])})
	}
	return buckets, nil
}

// IntensityDistribution returns the number of hours at each intensity level. Always 3 rows.
func (a *Analyzer) IntensityDistribution(ctx context.Context, filter fitbit.Filter) (_ []CategoryBucket, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.intensity-distribution")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("intensity-distribution", time.Now())

	records, err := a.repo.Hourly(ctx, fitbit.MetricIntensity, filter)
	if err != nil {
		return nil, fmt.Errorf("hourly intensity: %w", err)
	}
	if len(records) == 0 {
		a.noData("intensity-distribution")
	}

	counts := make(map[fitbit.IntensityLevel]int)
	for _, rec := range records {
		counts[fitbit.ClassifyIntensity(rec.AverageIntensity)]++
	}

	buckets := make([]CategoryBucket, 0, len(fitbit.IntensityLevels))
	for _, l := range fitbit.IntensityLevels {
		buckets = append(buckets, CategoryBucket{Category: string(l), Value: float64(counts[l])})
	}
	return buckets, nil
}
