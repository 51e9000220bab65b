//go:build integration_test || all_tests

package test

import (
	"context"
	"time"

	"github.com/2beens/fitbitdash/internal/fitbit"
	"github.com/2beens/fitbitdash/internal/ingest"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) countRows(ctx context.Context, table string) int {
	var count int
	// table names come from fitbit.Tables only
	require.NoError(s.T(), s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count))
	return count
}

func (s *IntegrationTestSuite) TestStore_Seeded() {
	ctx := context.Background()
	t := s.T()

	assert.Equal(t, len(seedUsers)*seedDays, s.countRows(ctx, fitbit.TableDailyActivity))
	assert.Equal(t, len(seedUsers)*24*seedDays, s.countRows(ctx, fitbit.TableHourlySteps))
	assert.Equal(t, len(seedUsers)*8*60, s.countRows(ctx, fitbit.TableMinuteSleep))

	repo := fitbit.NewRepo(s.dbPool)
	activities, err := repo.DailyActivity(ctx, fitbit.NewFilter(fitbit.DateRange(seedStart, seedStart), nil))
	require.NoError(t, err)
	assert.Len(t, activities, len(seedUsers))

	userIDs, err := repo.UserIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, seedUsers, userIDs)
}

func (s *IntegrationTestSuite) TestStore_ReplaceTable() {
	ctx := context.Background()
	t := s.T()

	spec, err := ingest.SpecFor(fitbit.TableHourlyCalories)
	require.NoError(t, err)
	before := s.countRows(ctx, fitbit.TableHourlyCalories)

	rows := [][]any{
		{seedUsers[0], seedStart, int64(80)},
		{seedUsers[0], seedStart.Add(time.Hour), int64(75)},
	}
	written, err := s.sink.ReplaceTable(ctx, fitbit.TableHourlyCalories, spec.TargetColumns(), rows)
	require.NoError(t, err)
	assert.Equal(t, int64(2), written)
	assert.Equal(t, 2, s.countRows(ctx, fitbit.TableHourlyCalories))

	// a failing copy leaves the previous content in place
	_, err = s.sink.ReplaceTable(ctx, fitbit.TableHourlyCalories, spec.TargetColumns(), [][]any{{"not-an-id", seedStart, int64(1)}})
	require.Error(t, err)
	assert.Equal(t, 2, s.countRows(ctx, fitbit.TableHourlyCalories))

	_, err = s.sink.ReplaceTable(ctx, "users", []string{"id"}, nil)
	require.Error(t, err)

	_, err = s.sink.ReplaceTable(ctx, fitbit.TableHourlyCalories, spec.TargetColumns(), hourlyRows(gofakeit.New(3), 50, 150))
	require.NoError(t, err)
	assert.Equal(t, before, s.countRows(ctx, fitbit.TableHourlyCalories))
}

func (s *IntegrationTestSuite) TestStore_BackfillWeightKg() {
	ctx := context.Background()
	t := s.T()
	repo := fitbit.NewRepo(s.dbPool)

	backfilled, err := repo.BackfillWeightKg(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), backfilled)

	var kg float64
	require.NoError(t, s.DB.QueryRowContext(ctx,
		"SELECT weight_kg FROM weight_log WHERE id = $1", seedUsers[1],
	).Scan(&kg))
	assert.InDelta(t, 187.4/fitbit.PoundsPerKg, kg, 1e-9)

	backfilled, err = repo.BackfillWeightKg(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), backfilled)
}
