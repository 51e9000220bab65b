package analytics

import (
	"context"
	"time"

	"github.com/2beens/fitbitdash/internal/fitbit"
	"github.com/2beens/fitbitdash/internal/telemetry/metrics"
	"github.com/2beens/fitbitdash/internal/weather"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=analytics_test

type fitbitRepo interface {
	DailyActivity(ctx context.Context, filter fitbit.Filter) ([]fitbit.DailyActivity, error)
	Hourly(ctx context.Context, metric fitbit.HourlyMetric, filter fitbit.Filter) ([]fitbit.HourlyRecord, error)
	HeartRateMinutes(ctx context.Context, filter fitbit.Filter) ([]fitbit.HeartRateSample, error)
	MinuteSleep(ctx context.Context, filter fitbit.Filter) ([]fitbit.MinuteSleep, error)
	WeightLog(ctx context.Context, filter fitbit.Filter) ([]fitbit.WeightLog, error)
	RecordCounts(ctx context.Context) (map[int64]int, error)
	StepsReconciliation(ctx context.Context, filter fitbit.Filter) ([]fitbit.StepsDay, error)
}

type weatherLookup interface {
	At(t time.Time) (weather.Hour, bool)
}

// Analyzer computes every dashboard view from the derived store.
// It holds no mutable state, all inputs come from the repo, the weather
// lookup and the arguments of each call.
type Analyzer struct {
	repo    fitbitRepo
	weather weatherLookup
	metrics *metrics.Manager
	// sleepBoundary dates the sleep joined into the correlation views
	sleepBoundary DayBoundary
}

func NewAnalyzer(
	repo fitbitRepo,
	weatherLookup weatherLookup,
	sleepBoundary DayBoundary,
	metricsManager *metrics.Manager,
) *Analyzer {
	if sleepBoundary == "" {
		sleepBoundary = WakeDay
	}
	return &Analyzer{
		repo:          repo,
		weather:       weatherLookup,
		metrics:       metricsManager,
		sleepBoundary: sleepBoundary,
	}
}

func (a *Analyzer) SleepBoundary() DayBoundary {
	return a.sleepBoundary
}

// observe records how long computing the view took.
func (a *Analyzer) observe(view string, start time.Time) {
	if a.metrics == nil {
		return
	}
	a.metrics.HistogramAggregationDuration.WithLabelValues(view).Observe(time.Since(start).Seconds())
}

func (a *Analyzer) noData(view string) {
	if a.metrics == nil {
		return
	}
	a.metrics.CounterNoDataResponses.WithLabelValues(view).Inc()
}

func (a *Analyzer) undefined(view string, r Result) {
	if a.metrics == nil || r.Kind != KindUndefined {
		return
	}
	a.metrics.CounterUndefinedStatistics.WithLabelValues(view).Inc()
}
