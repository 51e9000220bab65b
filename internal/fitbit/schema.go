package fitbit

const (
	TableDailyActivity   = "daily_activity"
	TableHourlySteps     = "hourly_steps"
	TableHourlyCalories  = "hourly_calories"
	TableHourlyIntensity = "hourly_intensity"
	TableHeartRate       = "heart_rate"
	TableMinuteSleep     = "minute_sleep"
	TableWeightLog       = "weight_log"
)

// Tables lists every table of the export, daily_activity first.
var Tables = []string{
	TableDailyActivity,
	TableHourlySteps,
	TableHourlyCalories,
	TableHourlyIntensity,
	TableHeartRate,
	TableMinuteSleep,
	TableWeightLog,
}

// SchemaSQL creates the derived store tables. Safe to run on an existing store.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS daily_activity
(
    id                         BIGINT           NOT NULL,
    activity_date              DATE             NOT NULL,
    total_steps                INTEGER          NOT NULL,
    total_distance             DOUBLE PRECISION NOT NULL,
    tracker_distance           DOUBLE PRECISION NOT NULL,
    logged_activities_distance DOUBLE PRECISION NOT NULL,
    very_active_distance       DOUBLE PRECISION NOT NULL,
    moderately_active_distance DOUBLE PRECISION NOT NULL,
    light_active_distance      DOUBLE PRECISION NOT NULL,
    sedentary_active_distance  DOUBLE PRECISION NOT NULL,
    very_active_minutes        INTEGER          NOT NULL,
    fairly_active_minutes      INTEGER          NOT NULL,
    lightly_active_minutes     INTEGER          NOT NULL,
    sedentary_minutes          INTEGER          NOT NULL,
    calories                   INTEGER          NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_daily_activity_date ON daily_activity (activity_date);
CREATE INDEX IF NOT EXISTS ix_daily_activity_id ON daily_activity (id);

CREATE TABLE IF NOT EXISTS hourly_steps
(
    id            BIGINT    NOT NULL,
    activity_hour TIMESTAMP NOT NULL,
    step_total    INTEGER   NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_hourly_steps_hour ON hourly_steps (activity_hour);

CREATE TABLE IF NOT EXISTS hourly_calories
(
    id            BIGINT    NOT NULL,
    activity_hour TIMESTAMP NOT NULL,
    calories      INTEGER   NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_hourly_calories_hour ON hourly_calories (activity_hour);

CREATE TABLE IF NOT EXISTS hourly_intensity
(
    id                BIGINT           NOT NULL,
    activity_hour     TIMESTAMP        NOT NULL,
    total_intensity   INTEGER          NOT NULL,
    average_intensity DOUBLE PRECISION NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_hourly_intensity_hour ON hourly_intensity (activity_hour);

CREATE TABLE IF NOT EXISTS heart_rate
(
    id    BIGINT    NOT NULL,
    time  TIMESTAMP NOT NULL,
    value INTEGER   NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_heart_rate_time ON heart_rate (time);

CREATE TABLE IF NOT EXISTS minute_sleep
(
    id     BIGINT    NOT NULL,
    date   TIMESTAMP NOT NULL,
    value  INTEGER   NOT NULL,
    log_id BIGINT    NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_minute_sleep_date ON minute_sleep (date);
CREATE INDEX IF NOT EXISTS ix_minute_sleep_log_id ON minute_sleep (log_id);

CREATE TABLE IF NOT EXISTS weight_log
(
    id               BIGINT    NOT NULL,
    date             TIMESTAMP NOT NULL,
    weight_kg        DOUBLE PRECISION,
    weight_pounds    DOUBLE PRECISION,
    fat              DOUBLE PRECISION,
    bmi              DOUBLE PRECISION,
    is_manual_report BOOLEAN   NOT NULL DEFAULT FALSE,
    log_id           BIGINT    NOT NULL
);
CREATE INDEX IF NOT EXISTS ix_weight_log_date ON weight_log (date);
`
