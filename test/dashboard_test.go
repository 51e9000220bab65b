//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/fitbitdash/internal/analytics"
	"github.com/2beens/fitbitdash/internal/dashboard"
	"github.com/2beens/fitbitdash/internal/misc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type viewBody struct {
	From    string                  `json:"from"`
	To      string                  `json:"to"`
	Status  analytics.Kind          `json:"status"`
	Message string                  `json:"message"`
	Data    json.RawMessage         `json:"data"`
	Chart   *dashboard.Chart        `json:"chart"`
	Blocks  []dashboard.MetricBlock `json:"blocks"`
}

func (s *IntegrationTestSuite) get(ctx context.Context, path string) (int, []byte) {
	t := s.T()

	req, err := http.NewRequestWithContext(ctx, "GET", serverEndpoint+path, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) getView(ctx context.Context, path string) viewBody {
	t := s.T()
	status, body := s.get(ctx, path)
	require.Equal(t, http.StatusOK, status, string(body))

	var view viewBody
	require.NoError(t, json.Unmarshal(body, &view))
	return view
}

func (s *IntegrationTestSuite) TestHealth() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.get(ctx, "/health")
	require.Equal(t, http.StatusOK, status, string(body))

	var health misc.HealthResponse
	require.NoError(t, json.Unmarshal(body, &health))
	assert.Equal(t, misc.StatusOK, health.Status)
	assert.Equal(t, misc.StatusOK, health.Postgres)
	assert.Equal(t, misc.StatusOK, health.Redis)
	assert.Equal(t, misc.StatusOK, health.Weather)
	assert.Equal(t, "test-version-info", health.Version)
}

func (s *IntegrationTestSuite) TestCoverage() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.get(ctx, "/coverage")
	require.Equal(t, http.StatusOK, status)

	var coverage dashboard.CoverageResponse
	require.NoError(t, json.Unmarshal(body, &coverage))
	assert.Equal(t, "2016-03-12", coverage.Start)
	assert.Equal(t, "2016-04-12", coverage.End)
}

func (s *IntegrationTestSuite) TestDailySummary() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	view := s.getView(ctx, "/daily/summary?date_from=2016-03-12&date_to=2016-03-14")
	assert.Equal(t, "2016-03-12", view.From)
	assert.Equal(t, "2016-03-14", view.To)
	assert.Equal(t, analytics.KindValue, view.Status)
	require.Len(t, view.Blocks, 6)
	assert.Equal(t, "Users", view.Blocks[0].Title)
	assert.Equal(t, fmt.Sprint(len(seedUsers)), view.Blocks[0].Value)

	view = s.getView(ctx, fmt.Sprintf("/daily/summary?date_from=2016-03-12&date_to=2016-03-14&user=%d", seedUsers[0]))
	assert.Equal(t, "1", view.Blocks[0].Value)
}

func (s *IntegrationTestSuite) TestDailySummary_NoData() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	view := s.getView(ctx, "/daily/summary?date_from=2016-04-01&date_to=2016-04-05")
	assert.Equal(t, analytics.KindNoData, view.Status)
	assert.Equal(t, analytics.NoDataMessage, view.Message)
}

func (s *IntegrationTestSuite) TestInvalidParams() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	for _, path := range []string{
		"/daily/summary?date_from=2016-04-10&date_to=2016-04-01",
		"/daily/summary?user=abc",
		"/daily/hourly/floors",
		"/correlations/nope",
	} {
		status, body := s.get(ctx, path)
		assert.Equal(t, http.StatusBadRequest, status, "%s: %s", path, body)
	}
}

func (s *IntegrationTestSuite) TestHourly() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	view := s.getView(ctx, "/daily/hourly/steps?date_from=2016-03-12&date_to=2016-03-14")
	assert.Equal(t, analytics.KindValue, view.Status)
	require.NotNil(t, view.Chart)
	assert.Equal(t, "Average Steps Per Hour", view.Chart.Title)
	assert.Len(t, view.Chart.Points, 24)
}

func (s *IntegrationTestSuite) TestSleepEpisodes() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	view := s.getView(ctx, "/sleep/episodes?date_from=2016-03-12&date_to=2016-03-14")
	assert.Equal(t, analytics.KindValue, view.Status)

	var episodes []analytics.SleepEpisode
	require.NoError(t, json.Unmarshal(view.Data, &episodes))
	require.Len(t, episodes, len(seedUsers))
	for _, e := range episodes {
		// first to last recorded minute
		assert.Equal(t, 8*60-1, e.Minutes)
		assert.Equal(t, 10, e.RestlessMinutes)
	}
}

func (s *IntegrationTestSuite) TestSleepBlocks() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	view := s.getView(ctx, "/sleep/blocks?date_from=2016-03-12&date_to=2016-03-14&boundary=wake_day")
	var buckets []analytics.BlockBucket
	require.NoError(t, json.Unmarshal(view.Data, &buckets))
	require.Len(t, buckets, 6)

	// every user sleeps one night, 23:00 to 06:59, restless 03:00 - 03:09
	assert.Equal(t, analytics.BlockBucket{Block: "0-4", Value: 230, Count: 230 * len(seedUsers)}, buckets[0])
	assert.Equal(t, analytics.BlockBucket{Block: "4-8", Value: 180, Count: 180 * len(seedUsers)}, buckets[1])
	assert.Equal(t, analytics.BlockBucket{Block: "20-24", Value: 60, Count: 60 * len(seedUsers)}, buckets[5])

	view = s.getView(ctx, "/sleep/hourly?date_from=2016-03-12&date_to=2016-03-14")
	var hours []analytics.HourBucket
	require.NoError(t, json.Unmarshal(view.Data, &hours))
	require.Len(t, hours, 8)
	assert.Equal(t, analytics.HourBucket{Hour: 3, Value: 50, Count: 50 * len(seedUsers)}, hours[3])
	assert.Equal(t, analytics.HourBucket{Hour: 23, Value: 60, Count: 60 * len(seedUsers)}, hours[7])
}

func (s *IntegrationTestSuite) TestWeather() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	view := s.getView(ctx, "/weather/steps?date_from=2016-03-12&date_to=2016-03-14&blocks=8-12,12-16&days=weekday,weekend")
	require.NotNil(t, view.Chart)
	assert.Equal(t, "Correlation between Temperature and Hourly Steps", view.Chart.Title)
	assert.NotEmpty(t, view.Chart.Points)
}

func (s *IntegrationTestSuite) TestUsers() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.get(ctx, "/users")
	require.Equal(t, http.StatusOK, status)

	var users dashboard.UsersResponse
	require.NoError(t, json.Unmarshal(body, &users))
	assert.Len(t, users.Users, len(seedUsers))
}

func (s *IntegrationTestSuite) TestMetrics() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	s.getView(ctx, "/daily/summary")

	req, err := http.NewRequestWithContext(ctx, "GET", "http://localhost:2113/metrics", nil)
	require.NoError(t, err)
	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "fitbitdash_main_request_duration_seconds")
	assert.Contains(t, string(body), "fitbitdash_main_aggregation_duration_seconds")
	assert.Contains(t, string(body), "pgxpool_")
}
