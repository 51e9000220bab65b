package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const dateLayout = "2006-01-02"

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// derived store
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	// rate limiting
	RedisHost              string `toml:"redis_host"`
	RedisPort              string `toml:"redis_port"`
	RateLimitAllowedPerMin int    `toml:"rate_limit_allowed_per_min"`
	// dashboard frontends allowed by CORS
	CorsAllowedOrigins []string `toml:"cors_allowed_origins"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// input files
	WeatherCsvPath   string `toml:"weather_csv_path"`
	RawStorePath     string `toml:"raw_store_path"`
	DailyActivityCsv string `toml:"daily_activity_csv"`
	// dataset
	CoverageStart    string `toml:"coverage_start"`
	CoverageEnd      string `toml:"coverage_end"`
	SleepDayBoundary string `toml:"sleep_day_boundary"`
	DemographicsSeed int64  `toml:"demographics_seed"`
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	case "ddev", "dockerdev":
		return t.DockerDev, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the section for the given env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 {
		return errors.New("port must be set")
	}
	if c.WeatherCsvPath == "" {
		return errors.New("weather csv path must be set")
	}
	if _, _, err := c.Coverage(); err != nil {
		return err
	}
	return nil
}

// Coverage returns the dataset date window. Empty values fall back to the Fitbit export window.
func (c *Config) Coverage() (time.Time, time.Time, error) {
	start := time.Date(2016, 3, 12, 0, 0, 0, 0, time.UTC)
	end := time.Date(2016, 4, 12, 0, 0, 0, 0, time.UTC)

	var err error
	if c.CoverageStart != "" {
		start, err = time.Parse(dateLayout, c.CoverageStart)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse coverage start: %w", err)
		}
	}
	if c.CoverageEnd != "" {
		end, err = time.Parse(dateLayout, c.CoverageEnd)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse coverage end: %w", err)
		}
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("coverage end %s before start %s", c.CoverageEnd, c.CoverageStart)
	}

	return start, end, nil
}
