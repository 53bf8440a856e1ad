package sqlite

import (
	"context"
	"database/sql"
	"time"

	"campusplanner/internal/errors"
	"campusplanner/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SlotRepository defines the interface for the durable key-value slot. The
// planner stores its whole task list as one JSON value under one key.
type SlotRepository interface {
	// Get returns the value stored under key and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Put writes the value under key, replacing any previous value. The
	// write is atomic: readers see either the old value or the new one.
	Put(ctx context.Context, key string, value string) error

	// Delete removes the key if present. Deleting an absent key is not an
	// error.
	Delete(ctx context.Context, key string) error

	// Utility
	Close() error
}

// SQLiteSlotRepository implements SlotRepository on a SQLite database file.
type SQLiteSlotRepository struct {
	db *sql.DB
}

// New creates a new SQLite slot repository instance
func New(dbPath string) (*SQLiteSlotRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteSlotRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteSlotRepository) Close() error {
	return r.db.Close()
}

// Get retrieves the value stored under key
func (r *SQLiteSlotRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM slots WHERE key = ?`

	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, HandleDatabaseError("get slot", err)
	}

	return value, true, nil
}

// Put writes the value under key, replacing any previous value
func (r *SQLiteSlotRepository) Put(ctx context.Context, key string, value string) error {
	query := `
	INSERT INTO slots (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at`

	return Execute(ctx, r.db, query, key, value, FormatTimeForDB(time.Now()))
}

// Delete removes the key if present
func (r *SQLiteSlotRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM slots WHERE key = ?`
	return Execute(ctx, r.db, query, key)
}
