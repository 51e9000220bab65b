package analytics

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/2beens/fitbitdash/internal/fitbit"
	"github.com/2beens/fitbitdash/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUnknownView = errors.New("unknown correlation view")
	ErrNoWeather   = errors.New("no weather dataset loaded")
)

const (
	ViewSedentarySleep        = "sedentary-sleep"
	ViewActiveSleep           = "active-sleep"
	ViewStepsCalories         = "steps-calories"
	ViewHeartRateIntensity    = "heart-rate-intensity"
	ViewCaloriesActiveMinutes = "calories-active-minutes"
	ViewHeartRateSleep        = "heart-rate-sleep"
)

var CorrelationViews = []string{
	ViewSedentarySleep,
	ViewActiveSleep,
	ViewStepsCalories,
	ViewHeartRateIntensity,
	ViewCaloriesActiveMinutes,
	ViewHeartRateSleep,
}

type Point struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	UserID int64   `json:"userId,omitempty"`
	Label  string  `json:"label,omitempty"`
}

// Correlation is a scatter of two metrics with their Pearson coefficient and the OLS fit of Y on X.
type Correlation struct {
	View        string    `json:"view"`
	XLabel      string    `json:"xLabel"`
	YLabel      string    `json:"yLabel"`
	Points      []Point   `json:"points"`
	Coefficient Result    `json:"coefficient"`
	Fit         LinearFit `json:"fit"`
	FitResult   Result    `json:"fitResult"`
}

// WeatherFilter narrows the weather scatter to some 4h blocks and day types.
// Empty Blocks or DayTypes select all of them.
type WeatherFilter struct {
	fitbit.Filter
	Blocks   []fitbit.HourBlock
	DayTypes []fitbit.DayType
}

func (a *Analyzer) newCorrelation(view, xLabel, yLabel string, points []Point) Correlation {
	xs := make([]float64, 0, len(points))
	ys := make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}

	c := Correlation{
		View:        view,
		XLabel:      xLabel,
		YLabel:      yLabel,
		Points:      points,
		Coefficient: Pearson(xs, ys),
	}
	c.Fit, c.FitResult = FitOLS(xs, ys)

	if len(points) == 0 {
		a.noData(view)
	}
	a.undefined(view, c.Coefficient)

	return c
}

// CorrelationView computes one of the CorrelationViews by name.
func (a *Analyzer) CorrelationView(ctx context.Context, view string, filter fitbit.Filter) (Correlation, error) {
	switch view {
	case ViewSedentarySleep:
		return a.SedentaryVsSleep(ctx, filter)
	case ViewActiveSleep:
		return a.ActiveVsSleep(ctx, filter)
	case ViewStepsCalories:
		return a.StepsVsCalories(ctx, filter)
	case ViewHeartRateIntensity:
		return a.HeartRateVsIntensity(ctx, filter)
	case ViewCaloriesActiveMinutes:
		return a.CaloriesVsActiveMinutes(ctx, filter)
	case ViewHeartRateSleep:
		return a.HeartRateVsSleepStage(ctx, filter)
	default:
		return Correlation{}, fmt.Errorf("%w: %s", ErrUnknownView, view)
	}
}

// SedentaryVsSleep pairs the sedentary minutes of each user day with the sleep of that day.
func (a *Analyzer) SedentaryVsSleep(ctx context.Context, filter fitbit.Filter) (_ Correlation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.sedentary-vs-sleep")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe(ViewSedentarySleep, time.Now())

	points, err := a.activityVsSleep(ctx, filter, func(d fitbit.DailyActivity) float64 {
		return float64(d.SedentaryMinutes)
	})
	if err != nil {
		return Correlation{}, err
	}

	return a.newCorrelation(ViewSedentarySleep, "Sedentary Minutes", "Total Sleep Minutes", points), nil
}

// ActiveVsSleep pairs the active minutes of each user day with the sleep of that day.
// Narrow the filter to one user for the per user view.
func (a *Analyzer) ActiveVsSleep(ctx context.Context, filter fitbit.Filter) (_ Correlation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.active-vs-sleep")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe(ViewActiveSleep, time.Now())

	points, err := a.activityVsSleep(ctx, filter, func(d fitbit.DailyActivity) float64 {
		return float64(d.ActiveMinutes())
	})
	if err != nil {
		return Correlation{}, err
	}

	return a.newCorrelation(ViewActiveSleep, "Active Minutes", "Total Sleep Minutes", points), nil
}

func (a *Analyzer) activityVsSleep(
	ctx context.Context,
	filter fitbit.Filter,
	x func(d fitbit.DailyActivity) float64,
) ([]Point, error) {
	activities, err := a.repo.DailyActivity(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("daily activity: %w", err)
	}

	eps, err := a.sleepEpisodes(ctx, filter, a.sleepBoundary)
	if err != nil {
		return nil, err
	}
	sleepByDay := make(map[userDay]SleepDay)
	for _, d := range sleepDays(eps) {
		sleepByDay[userDay{userID: d.UserID, date: d.Date}] = d
	}

	points := make([]Point, 0, len(activities))
	for _, d := range activities {
		sleep, ok := sleepByDay[userDay{userID: d.UserID, date: d.ActivityDate}]
		if !ok {
			continue
		}
		points = append(points, Point{
			X:      x(d),
			Y:      float64(sleep.Minutes),
			UserID: d.UserID,
			Label:  fitbit.FormatDisplayDate(d.ActivityDate),
		})
	}
	return points, nil
}

// StepsVsCalories pairs the total steps and calories of each user day.
func (a *Analyzer) StepsVsCalories(ctx context.Context, filter fitbit.Filter) (_ Correlation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.steps-vs-calories")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe(ViewStepsCalories, time.Now())

	points, err := a.dailyPoints(ctx, filter, func(d fitbit.DailyActivity) (float64, float64) {
		return float64(d.TotalSteps), float64(d.Calories)
	})
	if err != nil {
		return Correlation{}, err
	}

	return a.newCorrelation(ViewStepsCalories, "Total Steps", "Calories (kcal)", points), nil
}

// CaloriesVsActiveMinutes pairs the active minutes and calories of each user day.
func (a *Analyzer) CaloriesVsActiveMinutes(ctx context.Context, filter fitbit.Filter) (_ Correlation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.calories-vs-active-minutes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe(ViewCaloriesActiveMinutes, time.Now())

	points, err := a.dailyPoints(ctx, filter, func(d fitbit.DailyActivity) (float64, float64) {
		return float64(d.ActiveMinutes()), float64(d.Calories)
	})
	if err != nil {
		return Correlation{}, err
	}

	return a.newCorrelation(ViewCaloriesActiveMinutes, "Active Minutes", "Calories (kcal)", points), nil
}

func (a *Analyzer) dailyPoints(
	ctx context.Context,
	filter fitbit.Filter,
	xy func(d fitbit.DailyActivity) (float64, float64),
) ([]Point, error) {
	activities, err := a.repo.DailyActivity(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("daily activity: %w", err)
	}

	points := make([]Point, 0, len(activities))
	for _, d := range activities {
		x, y := xy(d)
		points = append(points, Point{X: x, Y: y, UserID: d.UserID, Label: fitbit.FormatDisplayDate(d.ActivityDate)})
	}
	return points, nil
}

// HeartRateVsIntensity pairs the mean heart rate and the mean total intensity of every hour of day.
func (a *Analyzer) HeartRateVsIntensity(ctx context.Context, filter fitbit.Filter) (_ Correlation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.heart-rate-vs-intensity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe(ViewHeartRateIntensity, time.Now())

	heartRate, err := a.repo.Hourly(ctx, fitbit.MetricHeartRate, filter)
	if err != nil {
		return Correlation{}, fmt.Errorf("hourly heart rate: %w", err)
	}
	intensity, err := a.repo.Hourly(ctx, fitbit.MetricIntensity, filter)
	if err != nil {
		return Correlation{}, fmt.Errorf("hourly intensity: %w", err)
	}

	heartRatePerHour := make(map[int]float64)
	for _, b := range hourBuckets(heartRate, false) {
		heartRatePerHour[b.Hour] = b.Value
	}

	points := make([]Point, 0, 24)
	for _, b := range hourBuckets(intensity, false) {
		hr, ok := heartRatePerHour[b.Hour]
		if !ok {
			continue
		}
		points = append(points, Point{X: b.Value, Y: hr, Label: fmt.Sprintf("%02d:00", b.Hour)})
	}

	return a.newCorrelation(ViewHeartRateIntensity, "Exercise Intensity", "Heart Rate (bpm)", points), nil
}

// HeartRateVsSleepStage pairs the sleep stage of every recorded sleep minute with the
// heart rate of the same user and minute.
func (a *Analyzer) HeartRateVsSleepStage(ctx context.Context, filter fitbit.Filter) (_ Correlation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.heart-rate-vs-sleep-stage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe(ViewHeartRateSleep, time.Now())

	samples, err := a.repo.HeartRateMinutes(ctx, filter)
	if err != nil {
		return Correlation{}, fmt.Errorf("heart rate minutes: %w", err)
	}
	minutes, err := a.repo.MinuteSleep(ctx, filter)
	if err != nil {
		return Correlation{}, fmt.Errorf("minute sleep: %w", err)
	}

	type userMinute struct {
		userID int64
		minute time.Time
	}
	heartRate := make(map[userMinute]float64, len(samples))
	for _, s := range samples {
		heartRate[userMinute{userID: s.UserID, minute: s.Time.Truncate(time.Minute)}] = s.Value
	}

	points := make([]Point, 0)
	for _, m := range minutes {
		hr, ok := heartRate[userMinute{userID: m.UserID, minute: m.Time.Truncate(time.Minute)}]
		if !ok {
			continue
		}
		points = append(points, Point{X: float64(m.Stage), Y: hr, UserID: m.UserID})
	}
	span.SetAttributes(attribute.Int("points", len(points)))

	return a.newCorrelation(ViewHeartRateSleep, "Sleep Value", "Heart Rate (bpm)", points), nil
}

// WeatherVsActivity pairs every hourly record of the metric with the temperature of that hour.
func (a *Analyzer) WeatherVsActivity(
	ctx context.Context,
	metric fitbit.HourlyMetric,
	filter WeatherFilter,
) (_ Correlation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.fitbit.weather-vs-activity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	view := "weather-" + string(metric)
	defer a.observe(view, time.Now())
	span.SetAttributes(attribute.String("metric", string(metric)))

	if metric != fitbit.MetricSteps && metric != fitbit.MetricIntensity {
		return Correlation{}, fmt.Errorf("%w: %s is not available against weather", fitbit.ErrUnknownMetric, metric)
	}
	if a.weather == nil {
		return Correlation{}, ErrNoWeather
	}

	records, err := a.repo.Hourly(ctx, metric, filter.Filter)
	if err != nil {
		return Correlation{}, fmt.Errorf("hourly %s: %w", metric, err)
	}

	points := make([]Point, 0, len(records))
	for _, rec := range records {
		if len(filter.Blocks) > 0 && !slices.Contains(filter.Blocks, fitbit.BlockOf(rec.ActivityHour.Hour())) {
			continue
		}
		if len(filter.DayTypes) > 0 && !slices.Contains(filter.DayTypes, fitbit.DayTypeOf(rec.ActivityHour)) {
			continue
		}
		w, ok := a.weather.At(rec.ActivityHour)
		if !ok {
			continue
		}
		points = append(points, Point{X: rec.Value, Y: w.Temp, UserID: rec.UserID})
	}

	xLabel := "Hourly Steps"
	if metric == fitbit.MetricIntensity {
		xLabel = "Hourly Total Intensity"
	}

	return a.newCorrelation(view, xLabel, "Temperature (in F)", points), nil
}
