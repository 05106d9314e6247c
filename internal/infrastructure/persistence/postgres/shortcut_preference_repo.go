package postgres

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

type shortcutPreferenceRepo struct {
	db *sql.DB
}

// NewShortcutPreferenceRepository creates a PostgreSQL-backed preference cache.
func NewShortcutPreferenceRepository(db *sql.DB) repository.ShortcutPreferenceRepository {
	return &shortcutPreferenceRepo{db: db}
}

func (r *shortcutPreferenceRepo) Get(ctx context.Context, componentName string) (*entity.UserShortcutType, error) {
	query := `SELECT entry, updated_at FROM shortcut_preferences WHERE component_name = $1`
	var (
		entry     string
		updatedAt time.Time
	)
	err := r.db.QueryRowContext(ctx, query, componentName).Scan(&entry, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting shortcut preference: %w", err)
	}
	record, err := entity.ParseUserShortcutTypeFor(componentName, entry)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("entry", entry).Msg("ignoring malformed shortcut preference")
		return nil, nil
	}
	record.UpdatedAt = updatedAt
	return record, nil
}

func (r *shortcutPreferenceRepo) Set(ctx context.Context, record *entity.UserShortcutType) error {
	if record == nil {
		return errors.New("cannot set nil user shortcut type")
	}
	query := `INSERT INTO shortcut_preferences (component_name, entry, updated_at) VALUES ($1, $2, NOW())
               ON CONFLICT (component_name) DO UPDATE SET entry = EXCLUDED.entry, updated_at = NOW()`
	if _, err := r.db.ExecContext(ctx, query, record.ComponentName, record.Flatten()); err != nil {
		return fmt.Errorf("error setting shortcut preference: %w", err)
	}
	return nil
}

func (r *shortcutPreferenceRepo) Delete(ctx context.Context, componentName string) error {
	query := `DELETE FROM shortcut_preferences WHERE component_name = $1`
	if _, err := r.db.ExecContext(ctx, query, componentName); err != nil {
		return fmt.Errorf("error deleting shortcut preference: %w", err)
	}
	return nil
}

func (r *shortcutPreferenceRepo) GetAll(ctx context.Context) ([]*entity.UserShortcutType, error) {
	log := logging.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, `SELECT component_name, entry, updated_at FROM shortcut_preferences ORDER BY component_name`)
	if err != nil {
		return nil, fmt.Errorf("error listing shortcut preferences: %w", err)
	}
	defer rows.Close()

	var records []*entity.UserShortcutType
	for rows.Next() {
		var (
			componentName string
			entry         string
			updatedAt     time.Time
		)
		if err := rows.Scan(&componentName, &entry, &updatedAt); err != nil {
			return nil, fmt.Errorf("error scanning shortcut preference: %w", err)
		}
		record, err := entity.ParseUserShortcutTypeFor(componentName, entry)
		if err != nil {
			log.Warn().Err(err).Str("entry", entry).Msg("skipping malformed shortcut preference")
			continue
		}
		record.UpdatedAt = updatedAt
		records = append(records, record)
	}
	return records, rows.Err()
}
