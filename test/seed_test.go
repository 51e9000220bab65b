//go:build integration_test || all_tests

package test

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitbitdash/internal/fitbit"
	"github.com/2beens/fitbitdash/internal/ingest"

	"github.com/brianvoe/gofakeit/v6"
)

const seedDays = 3

var (
	seedStart = time.Date(2016, 3, 12, 0, 0, 0, 0, time.UTC)
	seedUsers = []int64{1503960366, 1624580081, 1644430081}
)

func (s *IntegrationTestSuite) seed(ctx context.Context) error {
	faker := gofakeit.New(2016)

	tables := map[string][][]any{
		fitbit.TableDailyActivity:   dailyActivityRows(faker),
		fitbit.TableHourlySteps:     hourlyRows(faker, 0, 900),
		fitbit.TableHourlyCalories:  hourlyRows(faker, 50, 150),
		fitbit.TableHourlyIntensity: hourlyIntensityRows(faker),
		fitbit.TableHeartRate:       heartRateRows(faker),
		fitbit.TableMinuteSleep:     minuteSleepRows(),
		fitbit.TableWeightLog:       weightLogRows(),
	}

	for _, table := range fitbit.Tables {
		spec, err := ingest.SpecFor(table)
		if err != nil {
			return err
		}
		if _, err := s.sink.ReplaceTable(ctx, table, spec.TargetColumns(), tables[table]); err != nil {
			return fmt.Errorf("seed %s: %w", table, err)
		}
	}
	return nil
}

func dailyActivityRows(faker *gofakeit.Faker) [][]any {
	rows := make([][]any, 0, len(seedUsers)*seedDays)
	for _, userID := range seedUsers {
		for d := 0; d < seedDays; d++ {
			distance := faker.Float64Range(1, 12)
			rows = append(rows, []any{
				userID,
				seedStart.AddDate(0, 0, d),
				int64(faker.IntRange(2000, 15000)),
				distance,
				distance,
				0.0,
				distance * 0.2,
				distance * 0.1,
				distance * 0.7,
				0.0,
				int64(faker.IntRange(0, 60)),
				int64(faker.IntRange(0, 40)),
				int64(faker.IntRange(100, 300)),
				int64(faker.IntRange(600, 1000)),
				int64(faker.IntRange(1500, 3200)),
			})
		}
	}
	return rows
}

func hourlyRows(faker *gofakeit.Faker, low, high int) [][]any {
	rows := make([][]any, 0)
	for _, userID := range seedUsers {
		for h := 0; h < 24*seedDays; h++ {
			rows = append(rows, []any{
				userID,
				seedStart.Add(time.Duration(h) * time.Hour),
				int64(faker.IntRange(low, high)),
			})
		}
	}
	return rows
}

func hourlyIntensityRows(faker *gofakeit.Faker) [][]any {
	rows := make([][]any, 0)
	for _, userID := range seedUsers {
		for h := 0; h < 24*seedDays; h++ {
			total := faker.IntRange(0, 120)
			rows = append(rows, []any{
				userID,
				seedStart.Add(time.Duration(h) * time.Hour),
				int64(total),
				float64(total) / 60,
			})
		}
	}
	return rows
}

func heartRateRows(faker *gofakeit.Faker) [][]any {
	rows := make([][]any, 0)
	for _, userID := range seedUsers[:2] {
		for m := 0; m < 24*60*seedDays; m += 15 {
			rows = append(rows, []any{
				userID,
				seedStart.Add(time.Duration(m) * time.Minute),
				int64(faker.IntRange(55, 150)),
			})
		}
	}
	return rows
}

// minuteSleepRows gives every user one night, 23:00 to 06:59, restless between 03:00 and 03:09.
func minuteSleepRows() [][]any {
	rows := make([][]any, 0)
	for i, userID := range seedUsers {
		logID := int64(11380564589 + i)
		bedtime := seedStart.Add(23 * time.Hour)
		for m := 0; m < 8*60; m++ {
			ts := bedtime.Add(time.Duration(m) * time.Minute)
			value := int64(1)
			if ts.Hour() == 3 && ts.Minute() < 10 {
				value = 2
			}
			rows = append(rows, []any{userID, ts, value, logID})
		}
	}
	return rows
}

func weightLogRows() [][]any {
	return [][]any{
		{seedUsers[0], seedStart.Add(23*time.Hour + 59*time.Minute), 52.6, 115.96, 22.0, 22.65, true, int64(1462233599000)},
		// kg left for the store backfill
		{seedUsers[1], seedStart.AddDate(0, 0, 1).Add(7 * time.Hour), nil, 187.4, nil, 27.45, false, int64(1462320000000)},
	}
}
