package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// MySQLStore implements port.KeyValueStore on a single kv_entries table:
//
//	CREATE TABLE kv_entries (
//	    name  VARCHAR(191) PRIMARY KEY,
//	    value MEDIUMTEXT NOT NULL
//	);
//
// It serves deployments that already run MySQL and do not want a Redis.
type MySQLStore struct {
	db *sql.DB
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

func (m *MySQLStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := m.db.QueryRowContext(ctx,
		`SELECT value FROM kv_entries WHERE name = ?`, key,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query entry: %w", err)
	}
	return value, nil
}

func (m *MySQLStore) Set(ctx context.Context, key string, value string) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO kv_entries (name, value) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE value = VALUES(value)`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("upsert entry: %w", err)
	}
	return nil
}

func (m *MySQLStore) Delete(ctx context.Context, key string) error {
	_, err := m.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE name = ?`, key)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}
