package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
)

// SettingRepository handles setting-related database operations.
// It is a plain key/value store without transactions, concurrent writers resolve as last-writer-wins.
type SettingRepository struct {
	db *sqlx.DB
}

// settingSQL represents a settings row
type settingSQL struct {
	Key   string `db:"key_name"`
	Value string `db:"key_value"`
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSettings retrieves values of the given keys. Keys not stored are absent from the result.
func (r *SettingRepository) GetSettings(ctx context.Context, keys []string) (map[string]string, error) {
	res := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return res, nil
	}

	query, args, err := sqlx.In("SELECT key_name, key_value FROM settings WHERE key_name IN (?)", keys)
	if err != nil {
		return nil, fmt.Errorf("expand settings query: %w", err)
	}

	var rows []settingSQL
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	for _, row := range rows {
		res[row.Key] = row.Value
	}
	return res, nil
}

// ReplaceSettings clears all settings and writes the given ones. The clear and the writes
// are separate statements, a failure in between leaves the table partially written.
func (r *SettingRepository) ReplaceSettings(ctx context.Context, values map[string]string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM settings"); err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	now := time.Now().UTC()
	for _, k := range keys {
		_, err := r.db.ExecContext(ctx,
			"INSERT INTO settings (key_name, key_value, updated_at) VALUES (?, ?, ?)", k, values[k], now)
		if err != nil {
			return fmt.Errorf("write setting %s: %w", k, err)
		}
	}
	return nil
}
