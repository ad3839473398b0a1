package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/mbeld/Crypto-Portfolio-Tracker-Backend/internal/model"
)

// SettingRepository provides data access methods for the system_setting table.
type SettingRepository struct {
	db *sql.DB
}

// NewSettingRepository creates a new SettingRepository with the provided database connection.
func NewSettingRepository(db *sql.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get retrieves a setting by key. Returns apperrors.ErrSettingNotFound when
// no value is stored under the key.
func (r *SettingRepository) Get(ctx context.Context, key string) (model.SystemSetting, error) {
	query := `
		SELECT id, "key", value, updated_at
		FROM system_setting
		WHERE "key" = ?
	`

	var setting model.SystemSetting
	var updatedAtStr sql.NullString

	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&setting.ID,
		&setting.Key,
		&setting.Value,
		&updatedAtStr,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SystemSetting{}, apperrors.ErrSettingNotFound
	}
	if err != nil {
		return model.SystemSetting{}, fmt.Errorf("failed to query system_setting table: %w", err)
	}

	if updatedAtStr.Valid {
		// CURRENT_TIMESTAMP is stored as "2006-01-02 15:04:05"
		setting.UpdatedAt, err = parseSQLiteTimestamp(updatedAtStr.String)
		if err != nil {
			setting.UpdatedAt, _ = ParseTime(updatedAtStr.String)
		}
	}

	return setting, nil
}

// Upsert stores a setting value, replacing any previous value for the key.
func (r *SettingRepository) Upsert(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO system_setting (id, "key", value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT("key") DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.ExecContext(ctx, query, uuid.New().String(), key, value); err != nil {
		return fmt.Errorf("failed to upsert system_setting: %w", err)
	}

	return nil
}
