package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"

	goredis "github.com/redis/go-redis/v9"

	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/bnema/shortcutctl/internal/domain/repository"
	"github.com/bnema/shortcutctl/internal/logging"
)

const preferencesHash = "shortcut_preferences"

type shortcutPreferenceRepo struct {
	client *goredis.Client
	hash   string
}

// NewShortcutPreferenceRepository creates a Redis-backed preference cache.
// Each field of the hash is a component name; its value is the flattened entry.
func NewShortcutPreferenceRepository(client *goredis.Client, opts Options) repository.ShortcutPreferenceRepository {
	return &shortcutPreferenceRepo{
		client: client,
		hash:   opts.KeyPrefix + preferencesHash,
	}
}

func (r *shortcutPreferenceRepo) Get(ctx context.Context, componentName string) (*entity.UserShortcutType, error) {
	entry, err := r.client.HGet(ctx, r.hash, componentName).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shortcut preference: %w", err)
	}

	record, err := entity.ParseUserShortcutTypeFor(componentName, entry)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("entry", entry).Msg("ignoring malformed shortcut preference")
		return nil, nil
	}
	return record, nil
}

func (r *shortcutPreferenceRepo) Set(ctx context.Context, record *entity.UserShortcutType) error {
	if record == nil {
		return errors.New("cannot set nil user shortcut type")
	}
	if err := r.client.HSet(ctx, r.hash, record.ComponentName, record.Flatten()).Err(); err != nil {
		return fmt.Errorf("failed to set shortcut preference: %w", err)
	}
	return nil
}

func (r *shortcutPreferenceRepo) Delete(ctx context.Context, componentName string) error {
	if err := r.client.HDel(ctx, r.hash, componentName).Err(); err != nil {
		return fmt.Errorf("failed to delete shortcut preference: %w", err)
	}
	return nil
}

func (r *shortcutPreferenceRepo) GetAll(ctx context.Context) ([]*entity.UserShortcutType, error) {
	log := logging.FromContext(ctx)

	entries, err := r.client.HGetAll(ctx, r.hash).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list shortcut preferences: %w", err)
	}

	records := make([]*entity.UserShortcutType, 0, len(entries))
	for field, entry := range entries {
		record, err := entity.ParseUserShortcutTypeFor(field, entry)
		if err != nil {
			log.Warn().Err(err).Str("entry", entry).Msg("skipping malformed shortcut preference")
			continue
		}
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ComponentName < records[j].ComponentName })
	return records, nil
}
