package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/2beens/fitbitdash/internal/fitbit"

	log "github.com/sirupsen/logrus"
)

// ReadDailyActivityFile reads the daily activity CSV export from a file.
func ReadDailyActivityFile(path string) ([]fitbit.DailyActivity, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Warnf("close %s: %s", path, err)
		}
	}()

	return ReadDailyActivityCSV(f)
}

// ReadDailyActivityCSV parses the daily activity CSV export. Columns are matched by header
// name, case insensitive, and may come in any order.
func ReadDailyActivityCSV(r io.Reader) ([]fitbit.DailyActivity, error) {
	spec, err := SpecFor(fitbit.TableDailyActivity)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	positions := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		positions[strings.ToLower(strings.TrimSpace(h))] = i
	}

	indexes := make([]int, 0, len(spec.Columns))
	for _, c := range spec.Columns {
		i, ok := positions[strings.ToLower(c.Source)]
		if !ok {
			return nil, fmt.Errorf("missing column %s", c.Source)
		}
		indexes = append(indexes, i)
	}

	activities := make([]fitbit.DailyActivity, 0)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		raw := make([]any, len(indexes))
		for i, idx := range indexes {
			raw[i] = record[idx]
		}
		row, err := spec.convertRow(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		d, err := dailyActivityFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		activities = append(activities, d)
	}

	return activities, nil
}
