package dashboard

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/fitbitdash/internal/analytics"
	"github.com/2beens/fitbitdash/internal/fitbit"
)

var ErrInvalidParam = errors.New("invalid query param")

// Coverage is the date window of the dataset, both ends inclusive.
type Coverage struct {
	Start time.Time
	End   time.Time
}

func (c Coverage) String() string {
	return fmt.Sprintf("%s - %s", fitbit.FormatDisplayDate(c.Start), fitbit.FormatDisplayDate(c.End))
}

// Params are the query params shared by every view.
type Params struct {
	From   time.Time
	To     time.Time
	UserID *int64
}

// Filter selects every date of the params window.
func (p Params) Filter() fitbit.Filter {
	return fitbit.NewFilter(fitbit.DateRange(p.From, p.To), p.UserID)
}

func parseParams(r *http.Request, coverage Coverage) (Params, error) {
	q := r.URL.Query()
	from, to := coverage.Start, coverage.End

	var err error
	if v := q.Get("date_from"); v != "" {
		if from, err = fitbit.ParseDate(v); err != nil {
			return Params{}, fmt.Errorf("%w: date_from: %s", ErrInvalidParam, err)
		}
	}
	if v := q.Get("date_to"); v != "" {
		if to, err = fitbit.ParseDate(v); err != nil {
			return Params{}, fmt.Errorf("%w: date_to: %s", ErrInvalidParam, err)
		}
	}

	from, to, err = fitbit.ClampToCoverage(from, to, coverage.Start, coverage.End)
	if err != nil {
		return Params{}, err
	}

	params := Params{From: from, To: to}
	if v := q.Get("user"); v != "" {
		userID, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return Params{}, fmt.Errorf("%w: user: %s", ErrInvalidParam, v)
		}
		params.UserID = &userID
	}

	return params, nil
}

// listParam splits a comma separated param, it also accepts the param repeated.
func listParam(r *http.Request, name string) []string {
	values := make([]string, 0)
	for _, raw := range r.URL.Query()[name] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}

func parseColumns(r *http.Request, defaults []fitbit.DailyColumn) ([]fitbit.DailyColumn, error) {
	values := listParam(r, "columns")
	if len(values) == 0 {
		return defaults, nil
	}

	columns := make([]fitbit.DailyColumn, 0, len(values))
	for _, v := range values {
		c, err := fitbit.ParseDailyColumn(v)
		if err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return columns, nil
}

func parseBoundary(r *http.Request, fallback analytics.DayBoundary) (analytics.DayBoundary, error) {
	v := r.URL.Query().Get("boundary")
	if v == "" {
		return fallback, nil
	}
	boundary, err := analytics.ParseDayBoundary(v)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidParam, err)
	}
	return boundary, nil
}

func parseWeatherFilter(r *http.Request, params Params) (analytics.WeatherFilter, error) {
	blocks, err := fitbit.ParseHourBlocks(listParam(r, "blocks"))
	if err != nil {
		return analytics.WeatherFilter{}, fmt.Errorf("%w: %s", ErrInvalidParam, err)
	}
	dayTypes, err := fitbit.ParseDayTypes(listParam(r, "days"))
	if err != nil {
		return analytics.WeatherFilter{}, fmt.Errorf("%w: %s", ErrInvalidParam, err)
	}

	return analytics.WeatherFilter{
		Filter:   params.Filter(),
		Blocks:   blocks,
		DayTypes: dayTypes,
	}, nil
}
