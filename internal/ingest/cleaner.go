package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitbitdash/internal/fitbit"
	"github.com/2beens/fitbitdash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=ingest_test

type tableReader interface {
	ReadTable(ctx context.Context, spec TableSpec) ([][]any, error)
}

type tableWriter interface {
	ReplaceTable(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)
}

// Report summarizes a cleaning run.
type Report struct {
	Daily CleanReport `json:"daily"`
	// Written holds the rows written per derived table.
	Written map[string]int64 `json:"written"`
	// Read holds the rows read per source table.
	Read               map[string]int `json:"read"`
	WeightKgBackfilled int            `json:"weightKgBackfilled"`
	FatBackfilled      int            `json:"fatBackfilled"`
	Duration           time.Duration  `json:"duration"`
}

// Cleaner copies the raw export into the derived store. daily_activity goes through
// the cleaning rules, weight_log gets its missing kg and fat values filled in, and the
// other tables are copied as they are.
type Cleaner struct {
	source       tableReader
	sink         tableWriter
	demographics *fitbit.Demographics
	// dailyOverride replaces the daily_activity table of the source when set
	dailyOverride []fitbit.DailyActivity
}

func NewCleaner(
	source tableReader,
	sink tableWriter,
	demographics *fitbit.Demographics,
	dailyOverride []fitbit.DailyActivity,
) *Cleaner {
	return &Cleaner{
		source:        source,
		sink:          sink,
		demographics:  demographics,
		dailyOverride: dailyOverride,
	}
}

func (c *Cleaner) Run(ctx context.Context) (_ Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cleaner.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := time.Now()
	report := Report{
		Written: make(map[string]int64, len(TableSpecs)),
		Read:    make(map[string]int, len(TableSpecs)),
	}

	for _, spec := range TableSpecs {
		var rows [][]any
		switch spec.Name {
		case fitbit.TableDailyActivity:
			rows, report.Daily, err = c.dailyActivity(ctx, spec)
			report.Read[spec.Name] = report.Daily.Read
		case fitbit.TableWeightLog:
			rows, err = c.source.ReadTable(ctx, spec)
			if err == nil {
				report.Read[spec.Name] = len(rows)
				rows, report.WeightKgBackfilled, report.FatBackfilled, err = c.backfillWeightLog(rows)
			}
		default:
			rows, err = c.source.ReadTable(ctx, spec)
			report.Read[spec.Name] = len(rows)
		}
		if err != nil {
			return Report{}, fmt.Errorf("read %s: %w", spec.Name, err)
		}

		var written int64
		written, err = c.sink.ReplaceTable(ctx, spec.Name, spec.TargetColumns(), rows)
		if err != nil {
			return Report{}, fmt.Errorf("write %s: %w", spec.Name, err)
		}
		report.Written[spec.Name] = written
		log.Debugf("cleaner: %s, %d rows read, %d written", spec.Name, report.Read[spec.Name], written)
	}

	report.Duration = time.Since(start)
	log.Printf("cleaner: daily activity kept %d of %d rows (duplicates %d, no activity %d, steps without active minutes %d, incomplete %d)",
		report.Daily.Kept, report.Daily.Read, report.Daily.Duplicates, report.Daily.NoActivity,
		report.Daily.StepsWithoutActiveMinutes, report.Daily.Incomplete)
	log.Printf("cleaner: weight log backfilled %d kg and %d fat values", report.WeightKgBackfilled, report.FatBackfilled)

	return report, nil
}

func (c *Cleaner) dailyActivity(ctx context.Context, spec TableSpec) ([][]any, CleanReport, error) {
	activities := c.dailyOverride
	if activities == nil {
		rows, err := c.source.ReadTable(ctx, spec)
		if err != nil {
			return nil, CleanReport{}, err
		}
		activities = make([]fitbit.DailyActivity, 0, len(rows))
		for _, row := range rows {
			d, err := dailyActivityFromRow(row)
			if err != nil {
				return nil, CleanReport{}, err
			}
			activities = append(activities, d)
		}
	}

	cleaned, report := CleanDailyActivity(activities)

	rows := make([][]any, 0, len(cleaned))
	for _, d := range cleaned {
		rows = append(rows, dailyActivityRow(d))
	}
	return rows, report, nil
}

func (c *Cleaner) backfillWeightLog(rows [][]any) ([][]any, int, int, error) {
	logs := make([]fitbit.WeightLog, 0, len(rows))
	for _, row := range rows {
		w, err := weightLogFromRow(row)
		if err != nil {
			return nil, 0, 0, err
		}
		logs = append(logs, w)
	}

	logs, kgFilled := fitbit.BackfillWeightKg(logs)
	fatFilled := 0
	if c.demographics != nil {
		logs, fatFilled = fitbit.BackfillFat(logs, c.demographics)
	}

	out := make([][]any, 0, len(logs))
	for _, w := range logs {
		out = append(out, weightLogRow(w))
	}
	return out, kgFilled, fatFilled, nil
}
