package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/bnema/shortcutctl/internal/domain/repository"
	"github.com/bnema/shortcutctl/internal/logging"
)

type settingsRepo struct {
	db *sql.DB
}

// NewSettingsRepository creates a PostgreSQL-backed settings repository.
func NewSettingsRepository(db *sql.DB) repository.SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM settings WHERE name = $1`
	var value string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error getting setting %s: %w", key, err)
	}
	return value, true, nil
}

func (r *settingsRepo) Put(ctx context.Context, key, value string) error {
	query := `INSERT INTO settings (name, value, updated_at) VALUES ($1, $2, NOW())
               ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("error putting setting %s: %w", key, err)
	}
	return nil
}

// Update serializes writers of the same key with a transaction-scoped advisory
// lock. The lock also covers keys that have no row yet, which FOR UPDATE cannot.
func (r *settingsRepo) Update(ctx context.Context, key string, fn repository.UpdateFunc) (string, error) {
	log := logging.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return "", fmt.Errorf("failed to lock setting %s: %w", key, err)
	}

	var current string
	err = tx.QueryRowContext(ctx, `SELECT value FROM settings WHERE name = $1 FOR UPDATE`, key).Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("error reading setting %s: %w", key, err)
	}

	next, changed := fn(current)
	if !changed {
		return current, nil
	}

	upsert := `INSERT INTO settings (name, value, updated_at) VALUES ($1, $2, NOW())
               ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	if _, err := tx.ExecContext(ctx, upsert, key, next); err != nil {
		return "", fmt.Errorf("error writing setting %s: %w", key, err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit setting update: %w", err)
	}

	log.Debug().Str("key", key).Str("value", next).Msg("setting updated")
	return next, nil
}

func (r *settingsRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE name = $1`, key); err != nil {
		return fmt.Errorf("error deleting setting %s: %w", key, err)
	}
	return nil
}

func (r *settingsRepo) GetAll(ctx context.Context) ([]*entity.Setting, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, value, updated_at FROM settings ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing settings: %w", err)
	}
	defer rows.Close()

	var settings []*entity.Setting
	for rows.Next() {
		s := &entity.Setting{}
		if err := rows.Scan(&s.Name, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning setting: %w", err)
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}
