package weather

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const timestampLayout = "2006-01-02T15:04:05"

var (
	ErrMissingColumn = errors.New("weather csv: missing required column")
	ErrEmpty         = errors.New("weather csv: no rows")
)

// Hour holds the observed weather for one clock hour.
type Hour struct {
	Time       time.Time `json:"time"`
	Temp       float64   `json:"temp"`
	Humidity   float64   `json:"humidity,omitempty"`
	Precip     float64   `json:"precip,omitempty"`
	WindSpeed  float64   `json:"windSpeed,omitempty"`
	Conditions string    `json:"conditions,omitempty"`
}

// Dataset is an in-memory, read only lookup of hourly weather keyed by the truncated hour.
type Dataset struct {
	hours map[time.Time]Hour
	first time.Time
	last  time.Time
}

// LoadFile opens path and loads it with LoadCSV.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open weather csv: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warnf("close weather csv file: %s", err)
		}
	}()

	return LoadCSV(f)
}

// LoadCSV reads the hourly weather export. The header must contain the datetime
// and temp columns; humidity, precip, windspeed and conditions are optional.
func LoadCSV(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("read weather csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	for _, required := range []string{"datetime", "temp"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	d := &Dataset{
		hours: make(map[time.Time]Hour),
	}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read weather csv line %d: %w", line, err)
		}

		h, err := parseHour(record, columns)
		if err != nil {
			return nil, fmt.Errorf("weather csv line %d: %w", line, err)
		}
		d.add(h)
	}

	if len(d.hours) == 0 {
		return nil, ErrEmpty
	}

	log.Debugf("weather dataset loaded: %d hours, %s - %s", len(d.hours), d.first, d.last)

	return d, nil
}

func parseHour(record []string, columns map[string]int) (Hour, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	optionalFloat := func(name string) (float64, error) {
		v := field(name)
		if v == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("parse %s [%s]: %w", name, v, err)
		}
		return f, nil
	}

	ts, err := time.Parse(timestampLayout, field("datetime"))
	if err != nil {
		return Hour{}, fmt.Errorf("parse datetime: %w", err)
	}

	temp, err := strconv.ParseFloat(field("temp"), 64)
	if err != nil {
		return Hour{}, fmt.Errorf("parse temp [%s]: %w", field("temp"), err)
	}

	h := Hour{
		Time:       ts.Truncate(time.Hour),
		Temp:       temp,
		Conditions: field("conditions"),
	}
	if h.Humidity, err = optionalFloat("humidity"); err != nil {
		return Hour{}, err
	}
	if h.Precip, err = optionalFloat("precip"); err != nil {
		return Hour{}, err
	}
	if h.WindSpeed, err = optionalFloat("windspeed"); err != nil {
		return Hour{}, err
	}

	return h, nil
}

func (d *Dataset) add(h Hour) {
	if len(d.hours) == 0 || h.Time.Before(d.first) {
		d.first = h.Time
	}
	if len(d.hours) == 0 || h.Time.After(d.last) {
		d.last = h.Time
	}
	// a later row for the same hour wins
	d.hours[h.Time] = h
}

// At returns the weather of the clock hour containing t.
func (d *Dataset) At(t time.Time) (Hour, bool) {
	h, ok := d.hours[t.UTC().Truncate(time.Hour)]
	return h, ok
}

func (d *Dataset) Len() int {
	return len(d.hours)
}

// Range returns the first and the last hour of the dataset.
func (d *Dataset) Range() (time.Time, time.Time) {
	return d.first, d.last
}
