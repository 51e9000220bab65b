package ingest

import (
	"context"
	"fmt"
	"slices"

	"github.com/2beens/fitbitdash/internal/fitbit"
	"github.com/2beens/fitbitdash/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/multierr"
)

// Sink writes cleaned tables into the derived postgres store.
type Sink struct {
	db *pgxpool.Pool
}

func NewSink(db *pgxpool.Pool) *Sink {
	return &Sink{
		db: db,
	}
}

// ApplySchema creates the derived store tables if missing.
func (s *Sink) ApplySchema(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sink.fitbit.apply-schema")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err := s.db.Exec(ctx, fitbit.SchemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// ReplaceTable swaps the content of a table for the given rows, in one transaction.
// Readers see either the old or the new content, never a mix.
func (s *Sink) ReplaceTable(ctx context.Context, table string, columns []string, rows [][]any) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "sink.fitbit.replace-table")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("table", table))
	span.SetAttributes(attribute.Int("rows", len(rows)))

	if !slices.Contains(fitbit.Tables, table) {
		return 0, fmt.Errorf("unknown table: %s", table)
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = multierr.Append(err, fmt.Errorf("rollback: %w", rollbackErr))
			}
		} else if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("commit: %w", commitErr)
		}
	}()

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE "+pgx.Identifier{table}.Sanitize()); err != nil {
		return 0, fmt.Errorf("truncate %s: %w", table, err)
	}

	copied, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, fmt.Errorf("copy into %s: %w", table, err)
	}

	return copied, nil
}
