package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/fitbitdash/internal/analytics"
	"github.com/2beens/fitbitdash/internal/fitbit"
	"github.com/2beens/fitbitdash/internal/telemetry/tracing"
	"github.com/2beens/fitbitdash/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=dashboard_test

type analyzer interface {
	Averages(ctx context.Context, filter fitbit.Filter) (analytics.Summary, error)
	ActivityBreakdown(ctx context.Context, filter fitbit.Filter) ([]analytics.CategoryBucket, error)
	AveragePerHour(ctx context.Context, metric fitbit.HourlyMetric, filter fitbit.Filter) ([]analytics.HourBucket, error)
	TimeOfDayTotals(ctx context.Context, metric fitbit.HourlyMetric, filter fitbit.Filter) ([]analytics.CategoryBucket, error)
	DailySeries(ctx context.Context, columns []fitbit.DailyColumn, filter fitbit.Filter) ([]analytics.SeriesPoint, error)
	AveragePerWeekday(ctx context.Context, columns []fitbit.DailyColumn, filter fitbit.Filter) ([]analytics.WeekdayBucket, error)
	WorkoutFrequency(ctx context.Context, filter fitbit.Filter) ([]analytics.FrequencyBucket, error)
	SleepEpisodes(ctx context.Context, filter fitbit.Filter, boundary analytics.DayBoundary) ([]analytics.SleepEpisode, error)
	SleepPerDay(ctx context.Context, filter fitbit.Filter, boundary analytics.DayBoundary) ([]analytics.SleepDay, error)
	SleepPer4hBlock(ctx context.Context, filter fitbit.Filter, boundary analytics.DayBoundary) ([]analytics.BlockBucket, error)
	SleepPerHour(ctx context.Context, filter fitbit.Filter, boundary analytics.DayBoundary) ([]analytics.HourBucket, error)
	SleepPerWeekday(ctx context.Context, filter fitbit.Filter, boundary analytics.DayBoundary) ([]analytics.WeekdayBucket, error)
	SleepStages(ctx context.Context, filter fitbit.Filter) ([]analytics.CategoryBucket, error)
	WeatherVsActivity(ctx context.Context, metric fitbit.HourlyMetric, filter analytics.WeatherFilter) (analytics.Correlation, error)
	Describe(ctx context.Context, columns []fitbit.DailyColumn, filter fitbit.Filter) ([]analytics.ColumnDescription, error)
	AveragePer4hBlock(ctx context.Context, metric fitbit.HourlyMetric, filter fitbit.Filter) ([]analytics.BlockBucket, error)
	CorrelationView(ctx context.Context, view string, filter fitbit.Filter) (analytics.Correlation, error)
	WeightCategories(ctx context.Context, filter fitbit.Filter) ([]analytics.CategoryBucket, error)
	TotalDistancePerUser(ctx context.Context, filter fitbit.Filter) ([]analytics.UserTotal, error)
	StepsReconciliation(ctx context.Context, filter fitbit.Filter) (analytics.Reconciliation, error)
	HeartRateZones(ctx context.Context, filter fitbit.Filter) ([]analytics.CategoryBucket, error)
	IntensityDistribution(ctx context.Context, filter fitbit.Filter) ([]analytics.CategoryBucket, error)
	UserClasses(ctx context.Context) ([]analytics.UserClassification, error)
	SleepBoundary() analytics.DayBoundary
}

var (
	defaultSeriesColumns = []fitbit.DailyColumn{
		fitbit.ColumnTotalSteps,
		fitbit.ColumnCalories,
	}
	defaultDescribeColumns = []fitbit.DailyColumn{
		fitbit.ColumnTotalSteps,
		fitbit.ColumnTotalDistance,
		fitbit.ColumnCalories,
		fitbit.ColumnVeryActiveMinutes,
		fitbit.ColumnFairlyActiveMinutes,
		fitbit.ColumnLightlyActiveMinutes,
		fitbit.ColumnSedentaryMinutes,
		fitbit.ColumnActiveMinutes,
	}
)

var metricLabels = map[fitbit.HourlyMetric]string{
	fitbit.MetricSteps:     "Steps",
	fitbit.MetricCalories:  "Calories",
	fitbit.MetricIntensity: "Total Intensity",
	fitbit.MetricHeartRate: "Heart Rate",
}

var hourlyTitles = map[fitbit.HourlyMetric]string{
	fitbit.MetricSteps:     "Average Steps Per Hour",
	fitbit.MetricCalories:  "Average Calories Per Hour",
	fitbit.MetricIntensity: "Average Total Intensity Per Hour",
	fitbit.MetricHeartRate: "Heart Rate Per Hour",
}

var correlationTitles = map[string]string{
	analytics.ViewSedentarySleep:        "Correlation between Sedentary Minutes and Total Sleep Minutes",
	analytics.ViewActiveSleep:           "Correlation between Active Minutes and Total Sleep Minutes",
	analytics.ViewStepsCalories:         "Correlation between Total Steps and Calories",
	analytics.ViewHeartRateIntensity:    "Correlation between Heart Rate and Total Intensity",
	analytics.ViewCaloriesActiveMinutes: "Correlation between Calories and Active Minutes",
	analytics.ViewHeartRateSleep:        "Heart Rate per Sleep Stage",
}

// ViewResponse is the body of every dashboard view: the raw numbers plus their chart.
type ViewResponse struct {
	From    string         `json:"from"`
	To      string         `json:"to"`
	UserID  *int64         `json:"userId,omitempty"`
	Status  analytics.Kind `json:"status"`
	Message string         `json:"message,omitempty"`
	Data    any            `json:"data"`
	Chart   *Chart         `json:"chart,omitempty"`
	Charts  []Chart        `json:"charts,omitempty"`
	Blocks  []MetricBlock  `json:"blocks,omitempty"`
}

func newViewResponse(params Params, data any, empty bool) ViewResponse {
	resp := ViewResponse{
		From:   params.From.Format(fitbit.ISODateLayout),
		To:     params.To.Format(fitbit.ISODateLayout),
		UserID: params.UserID,
		Status: analytics.KindValue,
		Data:   data,
	}
	if empty {
		resp.Status = analytics.KindNoData
		resp.Message = analytics.NoDataMessage
	}
	return resp
}

func (v ViewResponse) withChart(c Chart) ViewResponse {
	v.Chart = &c
	if c.Empty {
		v.Status = analytics.KindNoData
		v.Message = c.Message
	}
	return v
}

type CoverageResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type UsersResponse struct {
	Users []analytics.UserClassification `json:"users"`
	Chart Chart                          `json:"chart"`
}

type Handler struct {
	analyzer analyzer
	coverage Coverage
}

func NewHandler(analyzer analyzer, coverage Coverage) *Handler {
	return &Handler{
		analyzer: analyzer,
		coverage: coverage,
	}
}

// SetupRoutes registers every dashboard view on the router.
func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/coverage", handler.HandleCoverage).Methods("GET", "OPTIONS").Name("coverage")
	r.HandleFunc("/users", handler.HandleUsers).Methods("GET", "OPTIONS").Name("users")

	dailyRouter := r.PathPrefix("/daily").Subrouter()
	dailyRouter.HandleFunc("/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("daily-summary")
	dailyRouter.HandleFunc("/activity-breakdown", handler.HandleActivityBreakdown).Methods("GET", "OPTIONS").Name("daily-activity-breakdown")
	dailyRouter.HandleFunc("/hourly/{metric}", handler.HandleHourly).Methods("GET", "OPTIONS").Name("daily-hourly")
	dailyRouter.HandleFunc("/time-of-day/{metric}", handler.HandleTimeOfDay).Methods("GET", "OPTIONS").Name("daily-time-of-day")
	dailyRouter.HandleFunc("/series", handler.HandleSeries).Methods("GET", "OPTIONS").Name("daily-series")

	weeklyRouter := r.PathPrefix("/weekly").Subrouter()
	weeklyRouter.HandleFunc("/workout-frequency", handler.HandleWorkoutFrequency).Methods("GET", "OPTIONS").Name("weekly-workout-frequency")
	weeklyRouter.HandleFunc("/{column}", handler.HandleWeekly).Methods("GET", "OPTIONS").Name("weekly-column")

	sleepRouter := r.PathPrefix("/sleep").Subrouter()
	sleepRouter.HandleFunc("/episodes", handler.HandleSleepEpisodes).Methods("GET", "OPTIONS").Name("sleep-episodes")
	sleepRouter.HandleFunc("/daily", handler.HandleSleepDaily).Methods("GET", "OPTIONS").Name("sleep-daily")
	sleepRouter.HandleFunc("/blocks", handler.HandleSleepBlocks).Methods("GET", "OPTIONS").Name("sleep-blocks")
	sleepRouter.HandleFunc("/hourly", handler.HandleSleepHourly).Methods("GET", "OPTIONS").Name("sleep-hourly")
	sleepRouter.HandleFunc("/weekly", handler.HandleSleepWeekly).Methods("GET", "OPTIONS").Name("sleep-weekly")
	sleepRouter.HandleFunc("/stages", handler.HandleSleepStages).Methods("GET", "OPTIONS").Name("sleep-stages")

	r.HandleFunc("/weather/{metric}", handler.HandleWeather).Methods("GET", "OPTIONS").Name("weather")

	statsRouter := r.PathPrefix("/statistics").Subrouter()
	statsRouter.HandleFunc("/describe", handler.HandleDescribe).Methods("GET", "OPTIONS").Name("statistics-describe")
	statsRouter.HandleFunc("/blocks/{metric}", handler.HandleBlocks).Methods("GET", "OPTIONS").Name("statistics-blocks")

	r.HandleFunc("/correlations/{view}", handler.HandleCorrelation).Methods("GET", "OPTIONS").Name("correlations")

	otherRouter := r.PathPrefix("/other").Subrouter()
	otherRouter.HandleFunc("/weight-categories", handler.HandleWeightCategories).Methods("GET", "OPTIONS").Name("other-weight-categories")
	otherRouter.HandleFunc("/distance-per-user", handler.HandleDistancePerUser).Methods("GET", "OPTIONS").Name("other-distance-per-user")
	otherRouter.HandleFunc("/steps-reconciliation", handler.HandleStepsReconciliation).Methods("GET", "OPTIONS").Name("other-steps-reconciliation")
	otherRouter.HandleFunc("/heart-rate-zones", handler.HandleHeartRateZones).Methods("GET", "OPTIONS").Name("other-heart-rate-zones")
	otherRouter.HandleFunc("/intensity-distribution", handler.HandleIntensityDistribution).Methods("GET", "OPTIONS").Name("other-intensity-distribution")
}

// params parses the shared query params, and writes a 400 when they are invalid.
func (handler *Handler) params(w http.ResponseWriter, r *http.Request) (Params, bool) {
	params, err := parseParams(r, handler.coverage)
	if err != nil {
		log.Debugf("invalid params [%s]: %s", r.URL.RawQuery, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return Params{}, false
	}
	return params, true
}

func (handler *Handler) fail(w http.ResponseWriter, view string, err error) {
	switch {
	case errors.Is(err, fitbit.ErrUnknownMetric),
		errors.Is(err, fitbit.ErrUnknownColumn),
		errors.Is(err, analytics.ErrUnknownView),
		errors.Is(err, ErrInvalidParam):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, analytics.ErrNoWeather), errors.Is(err, fitbit.ErrStoreNotCleaned):
		log.Errorf("%s: %s", view, err)
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		log.Errorf("%s: %s", view, err)
		http.Error(w, fmt.Sprintf("failed to get %s", view), http.StatusInternalServerError)
	}
}

func (handler *Handler) write(w http.ResponseWriter, view string, resp any) {
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal %s response: %s", view, err)
		http.Error(w, fmt.Sprintf("failed to marshal %s response", view), http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

func hourlyMetric(r *http.Request) (fitbit.HourlyMetric, error) {
	return fitbit.ParseHourlyMetric(mux.Vars(r)["metric"])
}

func (handler *Handler) HandleCoverage(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.coverage")
	defer span.End()

	handler.write(w, "coverage", CoverageResponse{
		Start: handler.coverage.Start.Format(fitbit.ISODateLayout),
		End:   handler.coverage.End.Format(fitbit.ISODateLayout),
	})
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.summary")
	defer span.End()

	params, ok := handler.params(w, r)
	if !ok {
		return
	}

	summary, err := handler.analyzer.Averages(ctx, params.Filter())
	if err != nil {
		handler.fail(w, "summary", err)
		return
	}

	resp := newViewResponse(params, summary, summary.Days == 0)
	resp.Blocks = SummaryBlocks(summary)
	handler.write(w, "summary", resp)
}

func (handler *Handler) HandleActivityBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.activity-breakdown")
	defer span.End()

	params, ok := handler.params(w, r)
	if !ok {
		return
	}

	buckets, err := handler.analyzer.ActivityBreakdown(ctx, params.Filter())
	if err != nil {
		handler.fail(w, "activity breakdown", err)
		return
	}

	chart := CategoryChart("Average Activity Breakdown Per Day", buckets)
	handler.write(w, "activity breakdown", newViewResponse(params, buckets, false).withChart(chart))
}

func (handler *Handler) HandleHourly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.hourly")
	defer span.End()

	metric, err := hourlyMetric(r)
	if err != nil {
		handler.fail(w, "hourly", err)
		return
	}
	span.SetAttributes(attribute.String("metric", string(metric)))

	params, ok := handler.params(w, r)
	if !ok {
		return
	}

	buckets, err := handler.analyzer.AveragePerHour(ctx, metric, params.Filter())
	if err != nil {
		handler.fail(w, "hourly "+string(metric), err)
		return
	}

	chart := HourlyChart(hourlyTitles[metric], metricLabels[metric], buckets)
	handler.write(w, "hourly", newViewResponse(params, buckets, false).withChart(chart))
}

func (handler *Handler) HandleTimeOfDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.time-of-day")
	defer span.End()

	metric, err := hourlyMetric(r)
	if err != nil {
		handler.fail(w, "time of day", err)
		return
	}

	params, ok := handler.params(w, r)
	if !ok {
		return
	}

	buckets, err := handler.analyzer.TimeOfDayTotals(ctx, metric, params.Filter())
	if err != nil {
		handler.fail(w, "time of day "+string(metric), err)
		return
	}

	chart := CategoryChart(fmt.Sprintf("Total %s by Time of Day", metricLabels[metric]), buckets)
	handler.write(w, "time of day", newViewResponse(params, buckets, false).withChart(chart))
}

func (handler *Handler) HandleSeries(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.series")
	defer span.End()

	params, ok := handler.params(w, r)
	if !ok {
		return
	}
	columns, err := parseColumns(r, defaultSeriesColumns)
	if err != nil {
		handler.fail(w, "series", err)
		return
	}

	series, err := handler.analyzer.DailySeries(ctx, columns, params.Filter())
	if err != nil {
		handler.fail(w, "series", err)
		return
	}

	resp := newViewResponse(params, series, len(series) == 0)
	for _, column := range columns {
		points := make([]ChartPoint, 0, len(series))
		for _, p := range series {
			points = append(points, ChartPoint{X: p.Date.Format(fitbit.ISODateLayout), Y: p.Values[column], Color: ColorHighlight})
		}
		resp.Charts = append(resp.Charts, newChart(fmt.Sprintf("Average %s Per Day", column), "Date", string(column), points))
	}
	handler.write(w, "series", resp)
}

func (handler *Handler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.weekly")
	defer span.End()

	column, err := fitbit.ParseDailyColumn(mux.Vars(r)["column"])
	if err != nil {
		handler.fail(w, "weekly", err)
		return
	}
	span.SetAttributes(attribute.String("column", string(column)))

	params, ok := handler.params(w, r)
	if !ok {
		return
	}

	buckets, err := handler.analyzer.AveragePerWeekday(ctx, []fitbit.DailyColumn{column}, params.Filter())
	if err != nil {
		handler.fail(w, "weekly "+string(column), err)
		return
	}

	chart := WeekdayChart(fmt.Sprintf("Average %s Per Week", column), column, buckets)
	handler.write(w, "weekly", newViewResponse(params, buckets, false).withChart(chart))
}

func (handler *Handler) HandleWorkoutFrequency(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.workout-frequency")
	defer span.End()

	params, ok := handler.params(w, r)
	if !ok {
		return
	}

	buckets, err := handler.analyzer.WorkoutFrequency(ctx, params.Filter())
	if err != nil {
		handler.fail(w, "workout frequency", err)
		return
	}

	chart := FrequencyChart("Workout Frequency Per Weekday", buckets)
	handler.write(w, "workout frequency", newViewResponse(params, buckets, false).withChart(chart))
}

func (handler *Handler) HandleSleepEpisodes(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.sleep-episodes")
	defer span.End()

	params, ok := handler.params(w, r)
	if !ok {
		return
	}
	boundary, err := parseBoundary(r, handler.analyzer.SleepBoundary())
	if err != nil {
		handler.fail(w, "sleep episodes", err)
		return
	}

	episodes, err := handler.analyzer.SleepEpisodes(ctx, params.Filter(), boundary)
	if err != nil {
		handler.fail(w, "sleep episodes", err)
		return
	}

	handler.write(w, "sleep episodes", newViewResponse(params, episodes, len(episodes) == 0))
}

func (handler *Handler) HandleSleepDaily(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.sleep-daily")
	defer span.End()

	params, ok := handler.params(w, r)
	if !ok {
		return
	}
	boundary, err := parseBoundary(r, handler.analyzer.SleepBoundary())
	if err != nil {
		handler.fail(w, "sleep per day", err)
		return
	}

	days, err := handler.analyzer.SleepPerDay(ctx, params.Filter(), boundary)
	if err != nil {
		handler.fail(w, "sleep per day", err)
		return
	}

	handler.write(w, "sleep per day", newViewResponse(params, days, len(days) == 0))
}

func (handler *Handler) HandleSleepBlocks(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.sleep-blocks")
	defer span.End()

	params, ok := handler.params(w, r)
	if !ok {
		return
	}

	boundary, err := parseBoundary(r, handler.analyzer.SleepBoundary())
	if err != nil {
		handler.fail(w, "sleep blocks", err)
		return
	}

	buckets, err := handler.analyzer.SleepPer4hBlock(ctx, params.Filter(), boundary)
	if err != nil {
		handler.fail(w, "sleep blocks", err)
		return
	}

	chart := BlockChart("Average Minutes Asleep per 4h Block", "Minutes Asleep", buckets)
	handler.write(w, "sleep blocks", newViewResponse(params, buckets, false).withChart(chart))
}

func (handler *Handler) HandleSleepHourly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.sleep-hourly")
	defer span.End()

	params, ok := handler.params(w, r)
	if !ok {
		return
	}

	boundary, err := parseBoundary(r, handler.analyzer.SleepBoundary())
	if err != nil {
		handler.fail(w, "sleep per hour", err)
		return
	}

	buckets, err := handler.analyzer.SleepPerHour(ctx, params.Filter(), boundary)
	if err != nil {
		handler.fail(w, "sleep per hour", err)
		return
	}

	chart := HourlyChart("Average Total Minutes Asleep Per Hour", "Minutes Asleep", buckets)
	handler.write(w, "sleep per hour", newViewResponse(params, buckets, len(buckets) == 0).withChart(chart))
}

func (handler *Handler) HandleSleepWeekly(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.sleep-weekly")
	defer span.End()

	params, ok := handler.params(w, r)
	if !ok {
		return
	}
	boundary, err := parseBoundary(r, handler.analyzer.SleepBoundary())
	if err != nil {
		handler.fail(w, "sleep per weekday", err)
		return
	}

	buckets, err := handler.analyzer.SleepPerWeekday(ctx, params.Filter(), boundary)
	if err != nil {
		handler.fail(w, "sleep per weekday", err)
		return
	}

	chart := WeekdayChart("Average Total Minutes Asleep Per Week", analytics.ColumnAsleepMinutes, buckets)
	handler.write(w, "sleep per weekday", newViewResponse(params, buckets, false).withChart(chart))
}

func (handler *Handler) HandleSleepStages(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.sleep-stages")
	defer span.End()

	params, ok := handler.params(w, r)
	if !ok {
		return
	}

	buckets, err := handler.analyzer.SleepStages(ctx, params.Filter())
	if err != nil {
		handler.fail(w, "sleep stages", err)
		return
	}

	chart := CategoryChart("Minutes per Sleep Stage", buckets)
	handler.write(w, "sleep stages", newViewResponse(params, buckets, false).withChart(chart))
}

func (handler *Handler) HandleWeather(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.weather")
	defer span.End()

	metric, err := hourlyMetric(r)
	if err != nil {
		handler.fail(w, "weather", err)
		return
	}

	params, ok := handler.params(w, r)
	if !ok {
		return
	}
	filter, err := parseWeatherFilter(r, params)
	if err != nil {
		handler.fail(w, "weather", err)
		return
	}

	corr, err := handler.analyzer.WeatherVsActivity(ctx, metric, filter)
	if err != nil {
		handler.fail(w, "weather "+string(metric), err)
		return
	}

	chart := ScatterChart(fmt.Sprintf("Correlation between Temperature and Hourly %s", metricLabels[metric]), corr)
	handler.write(w, "weather", newViewResponse(params, corr, false).withChart(chart))
}

func (handler *Handler) HandleDescribe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.describe")
	defer span.End()

	params, ok := handler.params(w, r)
	if !ok {
		return
	}
	columns, err := parseColumns(r, defaultDescribeColumns)
	if err != nil {
		handler.fail(w, "describe", err)
		return
	}

	descriptions, err := handler.analyzer.Describe(ctx, columns, params.Filter())
	if err != nil {
		handler.fail(w, "describe", err)
		return
	}

	empty := true
	for _, d := range descriptions {
		if d.Count > 0 {
			empty = false
		}
	}
	handler.write(w, "describe", newViewResponse(params, descriptions, empty))
}

func (handler *Handler) HandleBlocks(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.blocks")
	defer span.End()

	metric, err := hourlyMetric(r)
	if err != nil {
		handler.fail(w, "blocks", err)
		return
	}

	params, ok := handler.params(w, r)
	if !ok {
		return
	}

	buckets, err := handler.analyzer.AveragePer4hBlock(ctx, metric, params.Filter())
	if err != nil {
		handler.fail(w, "blocks "+string(metric), err)
		return
	}

	chart := BlockChart(fmt.Sprintf("Average %s Per 4 Hour Block", metricLabels[metric]), metricLabels[metric], buckets)
	handler.write(w, "blocks", newViewResponse(params, buckets, false).withChart(chart))
}

func (handler *Handler) HandleCorrelation(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.correlation")
	defer span.End()

	view := mux.Vars(r)["view"]
	span.SetAttributes(attribute.String("view", view))

	params, ok := handler.params(w, r)
	if !ok {
		return
	}

	corr, err := handler.analyzer.CorrelationView(ctx, view, params.Filter())
	if err != nil {
		handler.fail(w, "correlation "+view, err)
		return
	}

	chart := ScatterChart(correlationTitles[view], corr)
	handler.write(w, "correlation", newViewResponse(params, corr, false).withChart(chart))
}

func (handler *Handler) HandleWeightCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.weight-categories")
	defer span.End()

	params, ok := handler.params(w, r)
	if !ok {
		return
	}

	buckets, err := handler.analyzer.WeightCategories(ctx, params.Filter())
	if err != nil {
		handler.fail(w, "weight categories", err)
		return
	}

	chart := CategoryChart("Weight Breakdown over All Participants", buckets)
	handler.write(w, "weight categories", newViewResponse(params, buckets, false).withChart(chart))
}

func (handler *Handler) HandleDistancePerUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.distance-per-user")
	defer span.End()

	params, ok := handler.params(w, r)
	if !ok {
		return
	}

	totals, err := handler.analyzer.TotalDistancePerUser(ctx, params.Filter())
	if err != nil {
		handler.fail(w, "distance per user", err)
		return
	}

	points := make([]ChartPoint, 0, len(totals))
	for _, t := range totals {
		points = append(points, ChartPoint{X: strconv.FormatInt(t.UserID, 10), Y: t.Value})
	}
	highlightTop(points, 3)

	chart := newChart("Total Distance Per User", "User", "Distance (km)", points)
	handler.write(w, "distance per user", newViewResponse(params, totals, false).withChart(chart))
}

func (handler *Handler) HandleStepsReconciliation(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.steps-reconciliation")
	defer span.End()

	params, ok := handler.params(w, r)
	if !ok {
		return
	}

	rec, err := handler.analyzer.StepsReconciliation(ctx, params.Filter())
	if err != nil {
		handler.fail(w, "steps reconciliation", err)
		return
	}

	resp := newViewResponse(params, rec, rec.Days == 0)
	resp.Blocks = []MetricBlock{
		{Title: "Days", Value: printer.Sprintf("%d", rec.Days)},
		{Title: "Matching Days", Value: FormatResult(rec.MatchPercentage, 1), Unit: "%"},
	}
	handler.write(w, "steps reconciliation", resp)
}

func (handler *Handler) HandleHeartRateZones(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.heart-rate-zones")
	defer span.End()

	params, ok := handler.params(w, r)
	if !ok {
		return
	}

	buckets, err := handler.analyzer.HeartRateZones(ctx, params.Filter())
	if err != nil {
		handler.fail(w, "heart rate zones", err)
		return
	}

	chart := CategoryChart("Heart Rate Zones", buckets)
	handler.write(w, "heart rate zones", newViewResponse(params, buckets, false).withChart(chart))
}

func (handler *Handler) HandleIntensityDistribution(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.intensity-distribution")
	defer span.End()

	params, ok := handler.params(w, r)
	if !ok {
		return
	}

	buckets, err := handler.analyzer.IntensityDistribution(ctx, params.Filter())
	if err != nil {
		handler.fail(w, "intensity distribution", err)
		return
	}

	chart := CategoryChart("Hourly Intensity Distribution", buckets)
	handler.write(w, "intensity distribution", newViewResponse(params, buckets, false).withChart(chart))
}

func (handler *Handler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.users")
	defer span.End()

	users, err := handler.analyzer.UserClasses(ctx)
	if err != nil {
		handler.fail(w, "users", err)
		return
	}

	handler.write(w, "users", UsersResponse{
		Users: users,
		Chart: CategoryChart("Users by Logging Activity", analytics.ClassBreakdown(users)),
	})
}
