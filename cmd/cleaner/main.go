package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/fitbitdash/internal/config"
	"github.com/2beens/fitbitdash/internal/db"
	"github.com/2beens/fitbitdash/internal/fitbit"
	"github.com/2beens/fitbitdash/internal/ingest"
	"github.com/2beens/fitbitdash/internal/logging"
	"github.com/2beens/fitbitdash/internal/telemetry/tracing"
	"github.com/2beens/fitbitdash/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting cleaner ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	rawStorePath := flag.String("raw-store", "", "raw fitbit sqlite export, overrides raw_store_path")
	dailyCsv := flag.String("daily-csv", "", "daily activity csv, overrides daily_activity_csv")
	printReport := flag.Bool("report", false, "print the cleaning report as json to stdout")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      "",
		LogToStdout:      true,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "fitbit-cleaner",
	})

	if *rawStorePath == "" {
		*rawStorePath = cfg.RawStorePath
	}
	if *dailyCsv == "" {
		*dailyCsv = cfg.DailyActivityCsv
	}

	otelShutdown, err := tracing.HoneycombSetup(os.Getenv("HONEYCOMB_ENABLED") == "true", "fitbit-cleaner")
	if err != nil {
		log.Fatalf("tracing setup: %s", err)
	}
	defer otelShutdown()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	report, err := run(ctx, cfg, *rawStorePath, *dailyCsv)
	if err != nil {
		// deferred shutdowns are skipped by os.Exit
		otelShutdown()
		log.Fatalf("cleaner: %s", err)
	}

	if *printReport {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Errorf("encode report: %s", err)
		}
	}
	log.Infof("cleaner done in %s", report.Duration)
}

func run(ctx context.Context, cfg *config.Config, rawStorePath, dailyCsv string) (ingest.Report, error) {
	source, err := ingest.OpenSource(ctx, rawStorePath)
	if err != nil {
		return ingest.Report{}, err
	}
	defer func() {
		if err := source.Close(); err != nil {
			log.Errorf("close raw store: %s", err)
		}
	}()

	var dailyOverride []fitbit.DailyActivity
	if dailyCsv != "" {
		if err := pkg.RequireFile(dailyCsv, "daily activity csv"); err != nil {
			return ingest.Report{}, err
		}

		dailyOverride, err = ingest.ReadDailyActivityFile(dailyCsv)
		if err != nil {
			return ingest.Report{}, fmt.Errorf("read daily activity csv: %w", err)
		}
		log.Debugf("daily activity taken from csv [%s]: %d rows", dailyCsv, len(dailyOverride))
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     os.Getenv("FITBITDASH_DB_PASS"),
		TracingEnabled: os.Getenv("HONEYCOMB_ENABLED") == "true",
	})
	if err != nil {
		return ingest.Report{}, fmt.Errorf("new db pool: %w", err)
	}
	defer dbPool.Close()

	sink := ingest.NewSink(dbPool)
	if err := sink.ApplySchema(ctx); err != nil {
		return ingest.Report{}, err
	}

	cleaner := ingest.NewCleaner(source, sink, fitbit.NewDemographics(cfg.DemographicsSeed), dailyOverride)
	report, err := cleaner.Run(ctx)
	if err != nil {
		return ingest.Report{}, err
	}

	// second pass on the store itself, a no-op when the cleaner already filled every kg value
	backfilled, err := fitbit.NewRepo(dbPool).BackfillWeightKg(ctx)
	if err != nil {
		return ingest.Report{}, fmt.Errorf("backfill weight kg: %w", err)
	}
	if backfilled > 0 {
		log.Debugf("weight log: %d kg values backfilled in the store", backfilled)
	}

	return report, nil
}
