package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/bnema/shortcutctl/internal/domain/repository"
	"github.com/bnema/shortcutctl/internal/logging"
)

const settingsNamespace = "settings:"

type settingsRepo struct {
	client     *goredis.Client
	prefix     string
	maxRetries int
}

// NewSettingsRepository creates a Redis-backed settings repository.
// Keys are stored as <KeyPrefix>settings:<name>.
func NewSettingsRepository(client *goredis.Client, opts Options) repository.SettingsRepository {
	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &settingsRepo{
		client:     client,
		prefix:     opts.KeyPrefix + settingsNamespace,
		maxRetries: maxRetries,
	}
}

func (r *settingsRepo) key(name string) string {
	return r.prefix + name
}

func (r *settingsRepo) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return value, true, nil
}

func (r *settingsRepo) Put(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to put setting %s: %w", key, err)
	}
	return nil
}

// Update watches the key and commits fn's result in MULTI/EXEC. A concurrent
// write aborts the transaction and fn is retried on the fresh value, so no
// write is ever lost. After MaxRetries aborted attempts it returns
// repository.ErrConflict: nothing was written and the caller must re-read
// (or retry) before assuming any state.
func (r *settingsRepo) Update(ctx context.Context, key string, fn repository.UpdateFunc) (string, error) {
	log := logging.FromContext(ctx)
	redisKey := r.key(key)

	var result string
	txf := func(tx *goredis.Tx) error {
		current, err := tx.Get(ctx, redisKey).Result()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return err
		}

		next, changed := fn(current)
		result = current
		if !changed {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, redisKey, next, 0)
			return nil
		})
		if err == nil {
			result = next
		}
		return err
	}

	for attempt := 1; attempt <= r.maxRetries; attempt++ {
		err := r.client.Watch(ctx, txf, redisKey)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, goredis.TxFailedErr) {
			return "", fmt.Errorf("failed to update setting %s: %w", key, err)
		}
		log.Debug().Str("key", key).Int("attempt", attempt).Msg("setting changed concurrently, retrying")
	}

	return "", fmt.Errorf("%w: %s after %d attempts", repository.ErrConflict, key, r.maxRetries)
}

func (r *settingsRepo) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, err)
	}
	return nil
}

func (r *settingsRepo) GetAll(ctx context.Context) ([]*entity.Setting, error) {
	var keys []string
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan settings: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	sort.Strings(keys)

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := make([]*entity.Setting, 0, len(keys))
	for i, k := range keys {
		value, ok := values[i].(string)
		if !ok {
			// Deleted between SCAN and MGET.
			continue
		}
		settings = append(settings, &entity.Setting{
			Name:  strings.TrimPrefix(k, r.prefix),
			Value: value,
		})
	}
	return settings, nil
}
