package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitbitdash/internal/fitbit"
)

// converter turns a raw sqlite value into the Go value stored in the derived store.
type converter func(v any) (any, error)

type Column struct {
	Source  string
	Target  string
	convert converter
}

// TableSpec maps a table of the raw export to its derived store counterpart.
type TableSpec struct {
	Name    string
	Columns []Column
}

func (t TableSpec) SourceColumns() []string {
	cols := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		cols = append(cols, c.Source)
	}
	return cols
}

func (t TableSpec) TargetColumns() []string {
	cols := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		cols = append(cols, c.Target)
	}
	return cols
}

func col(source, target string, convert converter) Column {
	return Column{Source: source, Target: target, convert: convert}
}

// TableSpecs lists the seven export tables in fitbit.Tables order.
var TableSpecs = []TableSpec{
	{
		Name: fitbit.TableDailyActivity,
		Columns: []Column{
			col("Id", "id", toInt64),
			col("ActivityDate", "activity_date", toDate),
			col("TotalSteps", "total_steps", toInt64),
			col("TotalDistance", "total_distance", toFloat),
			col("TrackerDistance", "tracker_distance", toFloat),
			col("LoggedActivitiesDistance", "logged_activities_distance", toFloat),
			col("VeryActiveDistance", "very_active_distance", toFloat),
			col("ModeratelyActiveDistance", "moderately_active_distance", toFloat),
			col("LightActiveDistance", "light_active_distance", toFloat),
			col("SedentaryActiveDistance", "sedentary_active_distance", toFloat),
			col("VeryActiveMinutes", "very_active_minutes", toInt64),
			col("FairlyActiveMinutes", "fairly_active_minutes", toInt64),
			col("LightlyActiveMinutes", "lightly_active_minutes", toInt64),
			col("SedentaryMinutes", "sedentary_minutes", toInt64),
			col("Calories", "calories", toInt64),
		},
	},
	{
		Name: fitbit.TableHourlySteps,
		Columns: []Column{
			col("Id", "id", toInt64),
			col("ActivityHour", "activity_hour", toTimestamp),
			col("StepTotal", "step_total", toInt64),
		},
	},
	{
		Name: fitbit.TableHourlyCalories,
		Columns: []Column{
			col("Id", "id", toInt64),
			col("ActivityHour", "activity_hour", toTimestamp),
			col("Calories", "calories", toInt64),
		},
	},
	{
		Name: fitbit.TableHourlyIntensity,
		Columns: []Column{
			col("Id", "id", toInt64),
			col("ActivityHour", "activity_hour", toTimestamp),
			col("TotalIntensity", "total_intensity", toInt64),
			col("AverageIntensity", "average_intensity", toFloat),
		},
	},
	{
		Name: fitbit.TableHeartRate,
		Columns: []Column{
			col("Id", "id", toInt64),
			col("Time", "time", toTimestamp),
			col("Value", "value", toInt64),
		},
	},
	{
		Name: fitbit.TableMinuteSleep,
		Columns: []Column{
			col("Id", "id", toInt64),
			col("date", "date", toTimestamp),
			col("value", "value", toInt64),
			col("logId", "log_id", toInt64),
		},
	},
	{
		Name: fitbit.TableWeightLog,
		Columns: []Column{
			col("Id", "id", toInt64),
			col("Date", "date", toTimestamp),
			col("WeightKg", "weight_kg", toNullableFloat),
			col("WeightPounds", "weight_pounds", toNullableFloat),
			col("Fat", "fat", toNullableFloat),
			col("BMI", "bmi", toNullableFloat),
			col("IsManualReport", "is_manual_report", toBool),
			col("LogId", "log_id", toInt64),
		},
	},
}

// SpecFor returns the table spec of one of the export tables.
func SpecFor(table string) (TableSpec, error) {
	for _, spec := range TableSpecs {
		if spec.Name == table {
			return spec, nil
		}
	}
	return TableSpec{}, fmt.Errorf("unknown table: %s", table)
}

func toInt64(v any) (any, error) {
	switch val := v.(type) {
	case int64:
		return val, nil
	case int:
		return int64(val), nil
	case float64:
		if val != math.Trunc(val) {
			return nil, fmt.Errorf("not an integer: %v", val)
		}
		return int64(val), nil
	case []byte:
		return toInt64(string(val))
	case string:
		s := strings.TrimSpace(val)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		// ids are sometimes exported as 1.503960366E9
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("parse integer [%s]: %w", val, err)
		}
		return toInt64(f)
	default:
		return nil, fmt.Errorf("unexpected integer value: %T", v)
	}
}

func toFloat(v any) (any, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case int64:
		return float64(val), nil
	case int:
		return float64(val), nil
	case []byte:
		return toFloat(string(val))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("parse float [%s]: %w", val, err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unexpected float value: %T", v)
	}
}

// toNullableFloat maps NULL and empty strings to a nil *float64.
func toNullableFloat(v any) (any, error) {
	if v == nil {
		return (*float64)(nil), nil
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return (*float64)(nil), nil
	}
	f, err := toFloat(v)
	if err != nil {
		return nil, err
	}
	fv := f.(float64)
	if math.IsNaN(fv) {
		return (*float64)(nil), nil
	}
	return &fv, nil
}

func toBool(v any) (any, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case int64:
		return val != 0, nil
	case []byte:
		return toBool(string(val))
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return nil, fmt.Errorf("parse bool [%s]: %w", val, err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unexpected bool value: %T", v)
	}
}

func toDate(v any) (any, error) {
	switch val := v.(type) {
	case time.Time:
		return fitbit.Day(val), nil
	case []byte:
		return toDate(string(val))
	case string:
		return fitbit.ParseDate(val)
	default:
		return nil, fmt.Errorf("unexpected date value: %T", v)
	}
}

func toTimestamp(v any) (any, error) {
	switch val := v.(type) {
	case time.Time:
		return val.UTC(), nil
	case []byte:
		return toTimestamp(string(val))
	case string:
		return fitbit.ParseTimestamp(val)
	default:
		return nil, fmt.Errorf("unexpected timestamp value: %T", v)
	}
}

// convertRow applies the column converters of the table spec to a raw row.
func (t TableSpec) convertRow(raw []any) ([]any, error) {
	if len(raw) != len(t.Columns) {
		return nil, fmt.Errorf("%s: expected %d values, got %d", t.Name, len(t.Columns), len(raw))
	}
	row := make([]any, len(raw))
	for i, c := range t.Columns {
		v, err := c.convert(raw[i])
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", t.Name, c.Source, err)
		}
		row[i] = v
	}
	return row, nil
}
