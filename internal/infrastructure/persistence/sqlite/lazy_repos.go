// Package sqlite provides SQLite implementations of domain repositories.
//
// The lazy wrappers in this file implement the same repository interfaces as
// their eager counterparts and open the database on first use.
package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/shortcutctl/internal/application/port"
	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/bnema/shortcutctl/internal/domain/repository"
)

// LazySettingsRepository wraps a settings repository with lazy database initialization.
type LazySettingsRepository struct {
	provider port.DatabaseProvider
	repo     repository.SettingsRepository
	once     sync.Once
	initErr  error
}

// NewLazySettingsRepository creates a lazy-loading settings repository.
func NewLazySettingsRepository(provider port.DatabaseProvider) repository.SettingsRepository {
	return &LazySettingsRepository{provider: provider}
}

func (r *LazySettingsRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewSettingsRepository(db)
	})
	return r.initErr
}

func (r *LazySettingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if err := r.init(ctx); err != nil {
		return "", false, err
	}
	return r.repo.Get(ctx, key)
}

func (r *LazySettingsRepository) Put(ctx context.Context, key, value string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Put(ctx, key, value)
}

func (r *LazySettingsRepository) Update(ctx context.Context, key string, fn repository.UpdateFunc) (string, error) {
	if err := r.init(ctx); err != nil {
		return "", err
	}
	return r.repo.Update(ctx, key, fn)
}

func (r *LazySettingsRepository) Delete(ctx context.Context, key string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, key)
}

func (r *LazySettingsRepository) GetAll(ctx context.Context) ([]*entity.Setting, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.GetAll(ctx)
}

// LazyShortcutPreferenceRepository wraps a preference cache with lazy database initialization.
type LazyShortcutPreferenceRepository struct {
	provider port.DatabaseProvider
	repo     repository.ShortcutPreferenceRepository
	once     sync.Once
	initErr  error
}

// NewLazyShortcutPreferenceRepository creates a lazy-loading preference cache.
func NewLazyShortcutPreferenceRepository(provider port.DatabaseProvider) repository.ShortcutPreferenceRepository {
	return &LazyShortcutPreferenceRepository{provider: provider}
}

func (r *LazyShortcutPreferenceRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewShortcutPreferenceRepository(db)
	})
	return r.initErr
}

func (r *LazyShortcutPreferenceRepository) Get(ctx context.Context, componentName string) (*entity.UserShortcutType, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, componentName)
}

func (r *LazyShortcutPreferenceRepository) Set(ctx context.Context, record *entity.UserShortcutType) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Set(ctx, record)
}

func (r *LazyShortcutPreferenceRepository) Delete(ctx context.Context, componentName string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, componentName)
}

func (r *LazyShortcutPreferenceRepository) GetAll(ctx context.Context) ([]*entity.UserShortcutType, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.GetAll(ctx)
}
