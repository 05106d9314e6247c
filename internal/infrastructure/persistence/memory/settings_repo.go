// Package memory provides in-process repositories. Nothing survives the process.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/bnema/shortcutctl/internal/domain/repository"
	"github.com/bnema/shortcutctl/internal/logging"
)

type settingsRepo struct {
	mu     sync.RWMutex
	values map[string]*entity.Setting
	locks  map[string]*semaphore.Weighted
}

// NewSettingsRepository creates an empty in-memory settings repository.
func NewSettingsRepository() repository.SettingsRepository {
	return &settingsRepo{
		values: make(map[string]*entity.Setting),
		locks:  make(map[string]*semaphore.Weighted),
	}
}

func (r *settingsRepo) Get(_ context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.values[key]
	if !ok {
		return "", false, nil
	}
	return s.Value, true, nil
}

func (r *settingsRepo) Put(ctx context.Context, key, value string) error {
	lock := r.keyLock(key)
	if err := lock.Acquire(ctx, 1); err != nil {
		return err
	}
	defer lock.Release(1)

	r.store(key, value)
	return nil
}

func (r *settingsRepo) Update(ctx context.Context, key string, fn repository.UpdateFunc) (string, error) {
	log := logging.FromContext(ctx)

	lock := r.keyLock(key)
	if err := lock.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer lock.Release(1)

	current, _, _ := r.Get(ctx, key)
	next, changed := fn(current)
	if !changed {
		return current, nil
	}

	r.store(key, next)
	log.Debug().Str("key", key).Str("value", next).Msg("memory setting updated")
	return next, nil
}

func (r *settingsRepo) Delete(ctx context.Context, key string) error {
	lock := r.keyLock(key)
	if err := lock.Acquire(ctx, 1); err != nil {
		return err
	}
	defer lock.Release(1)

	r.mu.Lock()
	delete(r.values, key)
	r.mu.Unlock()
	return nil
}

func (r *settingsRepo) GetAll(_ context.Context) ([]*entity.Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings := make([]*entity.Setting, 0, len(r.values))
	for _, s := range r.values {
		c := *s
		settings = append(settings, &c)
	}
	sort.Slice(settings, func(i, j int) bool { return settings[i].Name < settings[j].Name })
	return settings, nil
}

// keyLock returns the writer lock of key, creating it on first use.
func (r *settingsRepo) keyLock(key string) *semaphore.Weighted {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[key]
	if !ok {
		lock = semaphore.NewWeighted(1)
		r.locks[key] = lock
	}
	return lock
}

func (r *settingsRepo) store(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = &entity.Setting{Name: key, Value: value, UpdatedAt: time.Now()}
}
