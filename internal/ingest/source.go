package ingest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

var ErrSourceNotFound = errors.New("raw fitbit store not found")

// Source reads the raw sqlite export. It is opened read only.
type Source struct {
	db   *sql.DB
	path string
}

func OpenSource(ctx context.Context, path string) (*Source, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Errorf("close raw store %s: %s", path, closeErr)
		}
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}

	return &Source{
		db:   db,
		path: path,
	}, nil
}

func (s *Source) Close() error {
	return s.db.Close()
}

// ReadTable returns every row of the table, converted by the table spec column converters.
func (s *Source) ReadTable(ctx context.Context, spec TableSpec) (_ [][]any, err error) {
	quoted := make([]string, 0, len(spec.Columns))
	for _, c := range spec.SourceColumns() {
		quoted = append(quoted, `"`+c+`"`)
	}
	// table and column names come from TableSpecs only
	query := fmt.Sprintf(`SELECT %s FROM "%s"`, strings.Join(quoted, ", "), spec.Name)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", spec.Name, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	result := make([][]any, 0)
	for rows.Next() {
		raw := make([]any, len(spec.Columns))
		ptrs := make([]any, len(raw))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", spec.Name, err)
		}

		row, err := spec.convertRow(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(result)+1, err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", spec.Name, err)
	}

	log.Debugf("read %d rows from %s/%s", len(result), s.path, spec.Name)
	return result, nil
}
