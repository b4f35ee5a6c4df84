package sqlite

import (
	"context"
	"database/sql"

	"billing-calendar/internal/errors"
)

// HandleStorageError converts database errors to structured app errors
func HandleStorageError(operation string, err error) error {
	return errors.NewStorageError(operation, err)
}

// getRecord reads the raw payload stored under key. A missing key
// returns ("", false, nil) so callers can fall back to defaults.
func getRecord(ctx context.Context, db *sql.DB, key string) (string, bool, error) {
	var payload string
	err := db.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&payload)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, HandleStorageError("read record "+key, err)
	}
	return payload, true, nil
}

// putRecord writes the payload under key, replacing any previous value.
func putRecord(ctx context.Context, db *sql.DB, key string, payload string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO records (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, payload)
	if err != nil {
		return HandleStorageError("write record "+key, err)
	}
	return nil
}

// deleteRecord removes the record stored under key, if present.
func deleteRecord(ctx context.Context, db *sql.DB, key string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key)
	if err != nil {
		return HandleStorageError("delete record "+key, err)
	}
	return nil
}

// listRecordKeys returns every stored key with the given prefix.
func listRecordKeys(ctx context.Context, db *sql.DB, prefix string) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT key FROM records WHERE key LIKE ? ORDER BY key`, prefix+"%")
	if err != nil {
		return nil, HandleStorageError("list records", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, HandleStorageError("scan record key", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, HandleStorageError("iterate record keys", err)
	}
	return keys, nil
}
