package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/bnema/shortcutctl/internal/domain/repository"
	"github.com/bnema/shortcutctl/internal/logging"
)

const (
	getPreferenceQuery    = `SELECT entry, updated_at FROM shortcut_preferences WHERE component_name = ?`
	upsertPreferenceQuery = `INSERT INTO shortcut_preferences (component_name, entry, updated_at) VALUES (?, ?, ?)
ON CONFLICT(component_name) DO UPDATE SET entry = excluded.entry, updated_at = excluded.updated_at`
	deletePreferenceQuery = `DELETE FROM shortcut_preferences WHERE component_name = ?`
	listPreferencesQuery  = `SELECT component_name, entry, updated_at FROM shortcut_preferences ORDER BY component_name`
)

type shortcutPreferenceRepo struct {
	db *sql.DB
}

// NewShortcutPreferenceRepository creates a new SQLite-backed preference cache.
func NewShortcutPreferenceRepository(db *sql.DB) repository.ShortcutPreferenceRepository {
	return &shortcutPreferenceRepo{db: db}
}

func (r *shortcutPreferenceRepo) Get(ctx context.Context, componentName string) (*entity.UserShortcutType, error) {
	var (
		entry     string
		updatedAt int64
	)
	err := r.db.QueryRowContext(ctx, getPreferenceQuery, componentName).Scan(&entry, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	record, err := preferenceFromRow(componentName, entry, updatedAt)
	if err != nil {
		// a broken entry reads as nothing cached
		logging.FromContext(ctx).Warn().Err(err).Str("entry", entry).Msg("ignoring malformed shortcut preference")
		return nil, nil
	}
	return record, nil
}

func (r *shortcutPreferenceRepo) Set(ctx context.Context, record *entity.UserShortcutType) error {
	if record == nil {
		return errors.New("cannot set nil user shortcut type")
	}
	log := logging.FromContext(ctx)
	log.Debug().Str("entry", record.Flatten()).Msg("setting shortcut preference")

	_, err := r.db.ExecContext(ctx, upsertPreferenceQuery, record.ComponentName, record.Flatten(), time.Now().Unix())
	return err
}

func (r *shortcutPreferenceRepo) Delete(ctx context.Context, componentName string) error {
	_, err := r.db.ExecContext(ctx, deletePreferenceQuery, componentName)
	return err
}

func (r *shortcutPreferenceRepo) GetAll(ctx context.Context) ([]*entity.UserShortcutType, error) {
	log := logging.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listPreferencesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*entity.UserShortcutType
	for rows.Next() {
		var (
			componentName string
			entry         string
			updatedAt     int64
		)
		if err := rows.Scan(&componentName, &entry, &updatedAt); err != nil {
			return nil, err
		}
		record, err := preferenceFromRow(componentName, entry, updatedAt)
		if err != nil {
			log.Warn().Err(err).Str("entry", entry).Msg("skipping malformed shortcut preference")
			continue
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func preferenceFromRow(componentName, entry string, updatedAt int64) (*entity.UserShortcutType, error) {
	record, err := entity.ParseUserShortcutTypeFor(componentName, entry)
	if err != nil {
		return nil, err
	}
	record.UpdatedAt = time.Unix(updatedAt, 0)
	return record, nil
}
