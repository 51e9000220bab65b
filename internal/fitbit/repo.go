package fitbit

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitbitdash/internal/telemetry/tracing"
	"github.com/2beens/fitbitdash/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type hourlySource struct {
	table           string
	valueColumn     string
	intensityColumn string
}

var hourlySources = map[HourlyMetric]hourlySource{
	MetricSteps:     {table: TableHourlySteps, valueColumn: "step_total", intensityColumn: "0"},
	MetricCalories:  {table: TableHourlyCalories, valueColumn: "calories", intensityColumn: "0"},
	MetricIntensity: {table: TableHourlyIntensity, valueColumn: "total_intensity", intensityColumn: "average_intensity"},
}

// Repo reads the derived (cleaned) store. All reads are filtered by Filter;
// an empty result is an empty slice, never an error.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func setFilterAttributes(span trace.Span, filter Filter) {
	span.SetAttributes(attribute.Bool("filter.all-dates", filter.Dates == nil))
	span.SetAttributes(attribute.Int("filter.dates", len(filter.Dates)))
	if filter.UserID != nil {
		span.SetAttributes(attribute.Int64("filter.user", *filter.UserID))
	}
}

func (r *Repo) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		if pkg.IsSchemaMismatchError(err) {
			return nil, fmt.Errorf("%w: %w", ErrStoreNotCleaned, err)
		}
		return nil, fmt.Errorf("query: %w", err)
	}
	return rows, nil
}

func (r *Repo) DailyActivity(ctx context.Context, filter Filter) (_ []DailyActivity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbit.daily-activity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	setFilterAttributes(span, filter)

	rows, err := r.query(
		ctx,
		`
			SELECT
				id, activity_date, total_steps, total_distance, tracker_distance, logged_activities_distance,
				very_active_distance, moderately_active_distance, light_active_distance, sedentary_active_distance,
				very_active_minutes, fairly_active_minutes, lightly_active_minutes, sedentary_minutes, calories
			FROM daily_activity
				WHERE ($1::date[] IS NULL OR activity_date = ANY($1))
				AND ($2::bigint IS NULL OR id = $2)
			ORDER BY id, activity_date;`,
		filter.Dates, filter.UserID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities, err := rows2dailyActivities(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2dailyActivities: %w", err)
	}
	span.SetAttributes(attribute.Int("rows", len(activities)))

	return activities, nil
}

// Hourly returns the hourly records of a metric. Heart rate samples are reduced
// to one mean value per user and clock hour.
func (r *Repo) Hourly(ctx context.Context, metric HourlyMetric, filter Filter) (_ []HourlyRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbit.hourly")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("metric", string(metric)))
	setFilterAttributes(span, filter)

	var sql string
	if metric == MetricHeartRate {
		sql = `
			SELECT id, date_trunc('hour', time), AVG(value)::double precision, 0::double precision
			FROM heart_rate
				WHERE ($1::date[] IS NULL OR time::date = ANY($1))
				AND ($2::bigint IS NULL OR id = $2)
			GROUP BY 1, 2
			ORDER BY 1, 2;`
	} else {
		source, ok := hourlySources[metric]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, metric)
		}
		// table and column names come from the fixed hourlySources map
		sql = fmt.Sprintf(`
			SELECT id, activity_hour, %s::double precision, %s::double precision
			FROM %s
				WHERE ($1::date[] IS NULL OR activity_hour::date = ANY($1))
				AND ($2::bigint IS NULL OR id = $2)
			ORDER BY id, activity_hour;`,
			source.valueColumn, source.intensityColumn, source.table,
		)
	}

	rows, err := r.query(ctx, sql, filter.Dates, filter.UserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records, err := rows2hourlyRecords(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2hourlyRecords: %w", err)
	}
	span.SetAttributes(attribute.Int("rows", len(records)))

	return records, nil
}

// HeartRateMinutes returns one mean heart rate value per user and minute.
func (r *Repo) HeartRateMinutes(ctx context.Context, filter Filter) (_ []HeartRateSample, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbit.heart-rate-minutes")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	setFilterAttributes(span, filter)

	rows, err := r.query(
		ctx,
		`
			SELECT id, date_trunc('minute', time), AVG(value)::double precision
			FROM heart_rate
				WHERE ($1::date[] IS NULL OR time::date = ANY($1))
				AND ($2::bigint IS NULL OR id = $2)
			GROUP BY 1, 2
			ORDER BY 1, 2;`,
		filter.Dates, filter.UserID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	samples := make([]HeartRateSample, 0)
	for rows.Next() {
		var s HeartRateSample
		if err := rows.Scan(&s.UserID, &s.Time, &s.Value); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return samples, nil
}

func (r *Repo) MinuteSleep(ctx context.Context, filter Filter) (_ []MinuteSleep, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbit.minute-sleep")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	setFilterAttributes(span, filter)

	rows, err := r.query(
		ctx,
		`
			SELECT id, date, log_id, value
			FROM minute_sleep
				WHERE ($1::date[] IS NULL OR date::date = ANY($1))
				AND ($2::bigint IS NULL OR id = $2)
			ORDER BY id, log_id, date;`,
		filter.Dates, filter.UserID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	minutes := make([]MinuteSleep, 0)
	for rows.Next() {
		var m MinuteSleep
		var stage int
		if err := rows.Scan(&m.UserID, &m.Time, &m.LogID, &stage); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		m.Stage = SleepStage(stage)
		minutes = append(minutes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	span.SetAttributes(attribute.Int("rows", len(minutes)))

	return minutes, nil
}

func (r *Repo) WeightLog(ctx context.Context, filter Filter) (_ []WeightLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbit.weight-log")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	setFilterAttributes(span, filter)

	rows, err := r.query(
		ctx,
		`
			SELECT id, date, weight_kg, weight_pounds, fat, bmi, is_manual_report, log_id
			FROM weight_log
				WHERE ($1::date[] IS NULL OR date::date = ANY($1))
				AND ($2::bigint IS NULL OR id = $2)
			ORDER BY id, date;`,
		filter.Dates, filter.UserID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]WeightLog, 0)
	for rows.Next() {
		var l WeightLog
		if err := rows.Scan(
			&l.UserID, &l.Date, &l.WeightKg, &l.WeightPounds, &l.Fat, &l.BMI, &l.IsManualReport, &l.LogID,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return logs, nil
}

// RecordCounts returns the number of daily_activity rows per user.
func (r *Repo) RecordCounts(ctx context.Context) (_ map[int64]int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbit.record-counts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.query(ctx, `SELECT id, COUNT(*) FROM daily_activity GROUP BY id ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var id int64
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		counts[id] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	span.SetAttributes(attribute.Int("users", len(counts)))

	return counts, nil
}

func (r *Repo) UserIDs(ctx context.Context) (_ []int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbit.user-ids")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.query(ctx, `SELECT DISTINCT id FROM daily_activity ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return ids, nil
}

// StepsReconciliation pairs, for each user day present in both tables, the sum of
// hourly steps with the daily TotalSteps.
func (r *Repo) StepsReconciliation(ctx context.Context, filter Filter) (_ []StepsDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.fitbit.steps-reconciliation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	setFilterAttributes(span, filter)

	rows, err := r.query(
		ctx,
		`
			SELECT d.id, d.activity_date, SUM(h.step_total)::bigint, d.total_steps::bigint
			FROM hourly_steps h
			JOIN daily_activity d ON h.id = d.id AND h.activity_hour::date = d.activity_date
				WHERE ($1::date[] IS NULL OR d.activity_date = ANY($1))
				AND ($2::bigint IS NULL OR d.id = $2)
			GROUP BY d.id, d.activity_date, d.total_steps
			ORDER BY d.id, d.activity_date;`,
		filter.Dates, filter.UserID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make([]StepsDay, 0)
	for rows.Next() {
		var d StepsDay
		if err := rows.Scan(&d.UserID, &d.Date, &d.HourlySteps, &d.DailySteps); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return days, nil
}

// BackfillWeightKg computes the missing weight_kg values from weight_pounds.
// Already set values are never touched, so a second run affects 0 rows.
func (r *Repo) BackfillWeightKg(ctx context.Context) (_ int64, err error) {
	ctx, span := tracing.GlobalCleanerTracer.Start(ctx, "repo.fitbit.backfill-weight-kg")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE weight_log SET weight_kg = weight_pounds / $1
			WHERE weight_kg IS NULL AND weight_pounds IS NOT NULL;`,
		PoundsPerKg,
	)
	if err != nil {
		if pkg.IsUndefinedTableError(err) {
			return 0, fmt.Errorf("%w: %w", ErrStoreNotCleaned, err)
		}
		return 0, fmt.Errorf("update weight_log: %w", err)
	}
	span.SetAttributes(attribute.Int64("rows-affected", tag.RowsAffected()))

	return tag.RowsAffected(), nil
}

func rows2dailyActivities(rows pgx.Rows) ([]DailyActivity, error) {
	activities := make([]DailyActivity, 0)
	for rows.Next() {
		var d DailyActivity
		var activityDate time.Time
		if err := rows.Scan(
			&d.UserID, &activityDate, &d.TotalSteps, &d.TotalDistance, &d.TrackerDistance, &d.LoggedActivitiesDistance,
			&d.VeryActiveDistance, &d.ModeratelyActiveDistance, &d.LightActiveDistance, &d.SedentaryActiveDistance,
			&d.VeryActiveMinutes, &d.FairlyActiveMinutes, &d.LightlyActiveMinutes, &d.SedentaryMinutes, &d.Calories,
		); err != nil {
			return nil, err
		}
		d.ActivityDate = Day(activityDate)
		activities = append(activities, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return activities, nil
}

func rows2hourlyRecords(rows pgx.Rows) ([]HourlyRecord, error) {
	records := make([]HourlyRecord, 0)
	for rows.Next() {
		var rec HourlyRecord
		if err := rows.Scan(&rec.UserID, &rec.ActivityHour, &rec.Value, &rec.AverageIntensity); err != nil {
			return nil, err
		}
		rec.ActivityHour = rec.ActivityHour.UTC()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
