package repository

import (
	"context"

	"github.com/bnema/shortcutctl/internal/domain/entity"
)

// ShortcutPreferenceRepository is the per-feature fallback cache of shortcut choices.
type ShortcutPreferenceRepository interface {
	// Get retrieves the cached choice for a component.
	// Returns nil if nothing was cached.
	Get(ctx context.Context, componentName string) (*entity.UserShortcutType, error)

	// Set replaces the cached choice for record.ComponentName.
	Set(ctx context.Context, record *entity.UserShortcutType) error

	// Delete removes the cached choice for a component.
	Delete(ctx context.Context, componentName string) error

	// GetAll retrieves every cached choice.
	GetAll(ctx context.Context) ([]*entity.UserShortcutType, error)
}
