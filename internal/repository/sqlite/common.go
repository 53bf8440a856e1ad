package sqlite

import (
	"context"
	"database/sql"
	"time"

	"campusplanner/internal/errors"
)

// HandleDatabaseError converts database errors to structured app errors
func HandleDatabaseError(operation string, err error) error {
	return errors.NewStorageError(operation, err)
}

// Execute runs a statement that needs no result inspection
func Execute(ctx context.Context, db *sql.DB, query string, args ...interface{}) error {
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return HandleDatabaseError("execute query", err)
	}
	return nil
}

// FormatTimeForDB formats a time.Time value as RFC3339 string for consistent database storage
func FormatTimeForDB(t time.Time) string {
	return t.Format(time.RFC3339)
}
