package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	sqlStateUndefinedTable  = "42P01"
	sqlStateUndefinedColumn = "42703"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUndefinedTableError checks if the error is caused by querying a table that does not exist
func IsUndefinedTableError(err error) bool {
	return pgErrorCode(err) == sqlStateUndefinedTable
}

// IsSchemaMismatchError is true when a query hits a table or a column the store does not have,
// i.e. the store was never cleaned, or was cleaned with an older schema.
func IsSchemaMismatchError(err error) bool {
	switch pgErrorCode(err) {
	case sqlStateUndefinedTable, sqlStateUndefinedColumn:
		return true
	}
	return false
}
