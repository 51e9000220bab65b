package fitbit

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrUnknownMetric    = errors.New("unknown hourly metric")
	ErrUnknownColumn    = errors.New("unknown daily activity column")
	ErrStoreNotCleaned  = errors.New("derived store is missing fitbit tables or columns, run the cleaner first")
	ErrInvalidDateRange = errors.New("invalid date range")
)

// DailyActivity is one row of daily_activity, one per user per day.
type DailyActivity struct {
	UserID                   int64     `json:"userId"`
	ActivityDate             time.Time `json:"activityDate"`
	TotalSteps               int       `json:"totalSteps"`
	TotalDistance            float64   `json:"totalDistance"`
	TrackerDistance          float64   `json:"trackerDistance"`
	LoggedActivitiesDistance float64   `json:"loggedActivitiesDistance"`
	VeryActiveDistance       float64   `json:"veryActiveDistance"`
	ModeratelyActiveDistance float64   `json:"moderatelyActiveDistance"`
	LightActiveDistance      float64   `json:"lightActiveDistance"`
	SedentaryActiveDistance  float64   `json:"sedentaryActiveDistance"`
	VeryActiveMinutes        int       `json:"veryActiveMinutes"`
	FairlyActiveMinutes      int       `json:"fairlyActiveMinutes"`
	LightlyActiveMinutes     int       `json:"lightlyActiveMinutes"`
	SedentaryMinutes         int       `json:"sedentaryMinutes"`
	Calories                 int       `json:"calories"`
}

// ActiveMinutes is the sum of very, fairly and lightly active minutes.
func (d DailyActivity) ActiveMinutes() int {
	return d.VeryActiveMinutes + d.FairlyActiveMinutes + d.LightlyActiveMinutes
}

// TrackedMinutes is the sum of all four activity buckets, roughly a full day for a worn tracker.
func (d DailyActivity) TrackedMinutes() int {
	return d.ActiveMinutes() + d.SedentaryMinutes
}

// Value returns the numeric value of a column.
func (d DailyActivity) Value(column DailyColumn) (float64, error) {
	switch column {
	case ColumnTotalSteps:
		return float64(d.TotalSteps), nil
	case ColumnTotalDistance:
		return d.TotalDistance, nil
	case ColumnTrackerDistance:
		return d.TrackerDistance, nil
	case ColumnLoggedActivitiesDistance:
		return d.LoggedActivitiesDistance, nil
	case ColumnVeryActiveDistance:
		return d.VeryActiveDistance, nil
	case ColumnModeratelyActiveDistance:
		return d.ModeratelyActiveDistance, nil
	case ColumnLightActiveDistance:
		return d.LightActiveDistance, nil
	case ColumnSedentaryActiveDistance:
		return d.SedentaryActiveDistance, nil
	case ColumnVeryActiveMinutes:
		return float64(d.VeryActiveMinutes), nil
	case ColumnFairlyActiveMinutes:
		return float64(d.FairlyActiveMinutes), nil
	case ColumnLightlyActiveMinutes:
		return float64(d.LightlyActiveMinutes), nil
	case ColumnSedentaryMinutes:
		return float64(d.SedentaryMinutes), nil
	case ColumnCalories:
		return float64(d.Calories), nil
	case ColumnActiveMinutes:
		return float64(d.ActiveMinutes()), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
}

// HourlyRecord is one row of hourly_steps, hourly_calories or hourly_intensity.
// For heart rate it is the mean of the samples within the clock hour.
type HourlyRecord struct {
	UserID       int64     `json:"userId"`
	ActivityHour time.Time `json:"activityHour"`
	Value        float64   `json:"value"`
	// AverageIntensity is only set for hourly_intensity rows
	AverageIntensity float64 `json:"averageIntensity,omitempty"`
}

type HeartRateSample struct {
	UserID int64     `json:"userId"`
	Time   time.Time `json:"time"`
	Value  float64   `json:"value"`
}

type SleepStage int

const (
	StageAsleep   SleepStage = 1
	StageRestless SleepStage = 2
	StageAwake    SleepStage = 3
)

var SleepStages = []SleepStage{StageAsleep, StageRestless, StageAwake}

func (s SleepStage) String() string {
	switch s {
	case StageAsleep:
		return "Asleep"
	case StageRestless:
		return "Restless"
	case StageAwake:
		return "Awake"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// MinuteSleep is one minute of a recorded sleep episode.
type MinuteSleep struct {
	UserID int64      `json:"userId"`
	Time   time.Time  `json:"time"`
	LogID  int64      `json:"logId"`
	Stage  SleepStage `json:"stage"`
}

type WeightLog struct {
	UserID         int64     `json:"userId"`
	Date           time.Time `json:"date"`
	WeightKg       *float64  `json:"weightKg"`
	WeightPounds   *float64  `json:"weightPounds"`
	Fat            *float64  `json:"fat"`
	BMI            *float64  `json:"bmi"`
	IsManualReport bool      `json:"isManualReport"`
	LogID          int64     `json:"logId"`
}

// StepsDay pairs the summed hourly steps of a user day with the daily total reported for it.
type StepsDay struct {
	UserID      int64     `json:"userId"`
	Date        time.Time `json:"date"`
	HourlySteps int64     `json:"hourlySteps"`
	DailySteps  int64     `json:"dailySteps"`
}

func (s StepsDay) Matches() bool {
	return s.HourlySteps == s.DailySteps
}

type HourlyMetric string

const (
	MetricSteps     HourlyMetric = "steps"
	MetricCalories  HourlyMetric = "calories"
	MetricIntensity HourlyMetric = "intensity"
	MetricHeartRate HourlyMetric = "heart_rate"
)

var HourlyMetrics = []HourlyMetric{MetricSteps, MetricCalories, MetricIntensity, MetricHeartRate}

func ParseHourlyMetric(s string) (HourlyMetric, error) {
	normalized := HourlyMetric(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, m := range HourlyMetrics {
		if m == normalized {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownMetric, s)
}

type DailyColumn string

const (
	ColumnTotalSteps               DailyColumn = "TotalSteps"
	ColumnTotalDistance            DailyColumn = "TotalDistance"
	ColumnTrackerDistance          DailyColumn = "TrackerDistance"
	ColumnLoggedActivitiesDistance DailyColumn = "LoggedActivitiesDistance"
	ColumnVeryActiveDistance       DailyColumn = "VeryActiveDistance"
	ColumnModeratelyActiveDistance DailyColumn = "ModeratelyActiveDistance"
	ColumnLightActiveDistance      DailyColumn = "LightActiveDistance"
	ColumnSedentaryActiveDistance  DailyColumn = "SedentaryActiveDistance"
	ColumnVeryActiveMinutes        DailyColumn = "VeryActiveMinutes"
	ColumnFairlyActiveMinutes      DailyColumn = "FairlyActiveMinutes"
	ColumnLightlyActiveMinutes     DailyColumn = "LightlyActiveMinutes"
	ColumnSedentaryMinutes         DailyColumn = "SedentaryMinutes"
	ColumnCalories                 DailyColumn = "Calories"
	// ColumnActiveMinutes is derived, very + fairly + lightly active minutes
	ColumnActiveMinutes DailyColumn = "ActiveMinutes"
)

var DailyColumns = []DailyColumn{
	ColumnTotalSteps,
	ColumnTotalDistance,
	ColumnTrackerDistance,
	ColumnLoggedActivitiesDistance,
	ColumnVeryActiveDistance,
	ColumnModeratelyActiveDistance,
	ColumnLightActiveDistance,
	ColumnSedentaryActiveDistance,
	ColumnVeryActiveMinutes,
	ColumnFairlyActiveMinutes,
	ColumnLightlyActiveMinutes,
	ColumnSedentaryMinutes,
	ColumnCalories,
	ColumnActiveMinutes,
}

// ParseDailyColumn accepts the source column name in any case, with or without - and _ separators,
// e.g. TotalSteps, total_steps and total-steps.
func ParseDailyColumn(s string) (DailyColumn, error) {
	squash := func(v string) string {
		v = strings.ToLower(strings.TrimSpace(v))
		return strings.NewReplacer("-", "", "_", "").Replace(v)
	}

	wanted := squash(s)
	for _, c := range DailyColumns {
		if squash(string(c)) == wanted {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownColumn, s)
}
