package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/bnema/shortcutctl/internal/domain/repository"
	"github.com/bnema/shortcutctl/internal/logging"
)

const (
	getSettingQuery    = `SELECT value FROM settings WHERE name = ?`
	upsertSettingQuery = `INSERT INTO settings (name, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	deleteSettingQuery = `DELETE FROM settings WHERE name = ?`
	listSettingsQuery  = `SELECT name, value, updated_at FROM settings ORDER BY name`
)

type settingsRepo struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SQLite-backed settings repository.
func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, getSettingQuery, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (r *settingsRepo) Put(ctx context.Context, key, value string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", key).Str("value", value).Msg("putting setting")

	_, err := r.db.ExecContext(ctx, upsertSettingQuery, key, value, time.Now().Unix())
	return err
}

// Update runs fn inside an immediate transaction, so concurrent writers of the
// same database serialize on the SQLite write lock.
func (r *settingsRepo) Update(ctx context.Context, key string, fn repository.UpdateFunc) (string, error) {
	log := logging.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var current string
	err = tx.QueryRowContext(ctx, getSettingQuery, key).Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	next, changed := fn(current)
	if !changed {
		return current, nil
	}

	if _, err := tx.ExecContext(ctx, upsertSettingQuery, key, next, time.Now().Unix()); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit setting update: %w", err)
	}

	log.Debug().Str("key", key).Str("value", next).Msg("setting updated")
	return next, nil
}

func (r *settingsRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, deleteSettingQuery, key)
	return err
}

func (r *settingsRepo) GetAll(ctx context.Context) ([]*entity.Setting, error) {
	rows, err := r.db.QueryContext(ctx, listSettingsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []*entity.Setting
	for rows.Next() {
		var (
			s         entity.Setting
			updatedAt int64
		)
		if err := rows.Scan(&s.Name, &s.Value, &updatedAt); err != nil {
			return nil, err
		}
		s.UpdatedAt = time.Unix(updatedAt, 0)
		settings = append(settings, &s)
	}
	return settings, rows.Err()
}
