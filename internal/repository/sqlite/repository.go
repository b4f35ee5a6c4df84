package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"billing-calendar/internal/errors"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

// Repository defines the interface for record storage operations.
// State lives in three logical records: the category list, one entries
// record per (year, month) pair, and the last view selection.
type Repository interface {
	// Category record
	LoadCategories(ctx context.Context) ([]CategoryRecord, error)
	SaveCategories(ctx context.Context, records []CategoryRecord) error

	// Per-month entries records
	LoadMonth(ctx context.Context, year int, month time.Month) (MonthRecord, error)
	SaveMonth(ctx context.Context, year int, month time.Month, record MonthRecord) error
	ListMonthKeys(ctx context.Context) ([]string, error)

	// View record
	LoadView(ctx context.Context) (*ViewRecord, error)
	SaveView(ctx context.Context, record ViewRecord) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface over a single
// key-value table.
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance at dbPath, creating the
// parent directory and running migrations as needed.
func New(dbPath string) (*SQLiteRepository, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, errors.NewStorageError("create database directory", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errors.NewStorageError("configure database", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// NewMemory creates an in-memory repository for testing.
func NewMemory() (*SQLiteRepository, error) {
	return New(":memory:")
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		const ddl = `
		CREATE TABLE IF NOT EXISTS records (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}

	_, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

const (
	categoriesKey  = "categories"
	viewKey        = "view"
	monthKeyPrefix = "entries:"
)

// monthKey builds the record key for a (year, month) pair.
func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%s%04d-%02d", monthKeyPrefix, year, int(month))
}

// LoadCategories reads the category record. A missing record yields an
// empty list; malformed individual categories are dropped.
func (r *SQLiteRepository) LoadCategories(ctx context.Context) ([]CategoryRecord, error) {
	payload, ok, err := getRecord(ctx, r.db, categoriesKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var records []CategoryRecord
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, errors.NewStorageError("decode categories record", err)
	}
	return sanitizeCategories(records), nil
}

// SaveCategories writes the category record.
func (r *SQLiteRepository) SaveCategories(ctx context.Context, records []CategoryRecord) error {
	if records == nil {
		records = []CategoryRecord{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return errors.NewStorageError("encode categories record", err)
	}
	return putRecord(ctx, r.db, categoriesKey, string(payload))
}

// LoadMonth reads the entries record for a (year, month) pair. A
// missing record yields an empty month; malformed individual entries
// are dropped rather than invalidating the whole day.
func (r *SQLiteRepository) LoadMonth(ctx context.Context, year int, month time.Month) (MonthRecord, error) {
	payload, ok, err := getRecord(ctx, r.db, monthKey(year, month))
	if err != nil {
		return nil, err
	}
	if !ok {
		return MonthRecord{}, nil
	}

	var record MonthRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, errors.NewStorageError("decode month record", err)
	}
	return sanitizeMonth(record), nil
}

// SaveMonth writes the entries record for a (year, month) pair. An
// empty month removes the record entirely.
func (r *SQLiteRepository) SaveMonth(ctx context.Context, year int, month time.Month, record MonthRecord) error {
	if len(record) == 0 {
		return deleteRecord(ctx, r.db, monthKey(year, month))
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return errors.NewStorageError("encode month record", err)
	}
	return putRecord(ctx, r.db, monthKey(year, month), string(payload))
}

// ListMonthKeys returns the keys of every stored month record.
func (r *SQLiteRepository) ListMonthKeys(ctx context.Context) ([]string, error) {
	return listRecordKeys(ctx, r.db, monthKeyPrefix)
}

// LoadView reads the view record. Returns nil without error when the
// record is missing or malformed so callers fall back to the current
// date.
func (r *SQLiteRepository) LoadView(ctx context.Context) (*ViewRecord, error) {
	payload, ok, err := getRecord(ctx, r.db, viewKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var record ViewRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, nil
	}
	if record.Month < 1 || record.Month > 12 || record.Year < 1 {
		return nil, nil
	}
	return &record, nil
}

// SaveView writes the view record.
func (r *SQLiteRepository) SaveView(ctx context.Context, record ViewRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return errors.NewStorageError("encode view record", err)
	}
	return putRecord(ctx, r.db, viewKey, string(payload))
}
