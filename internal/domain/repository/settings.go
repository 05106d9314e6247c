package repository

import (
	"context"
	"errors"

	"github.com/bnema/shortcutctl/internal/domain/entity"
)

// ErrConflict is returned when a backend gives up on a contended read-modify-write.
// The update was not applied.
var ErrConflict = errors.New("settings value changed concurrently")

// UpdateFunc computes the next value of a key from its current value.
// Returning changed=false leaves the stored value untouched.
type UpdateFunc func(current string) (next string, changed bool)

// SettingsRepository is the shared key/value settings store.
// Values are strings; unset keys read as "".
type SettingsRepository interface {
	// Get returns the value of key. found is false when the key was never written.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Put overwrites the value of key.
	Put(ctx context.Context, key, value string) error

	// Update atomically reads key, applies fn, and writes the result.
	// Writes to the same key are serialized so concurrent updates are never lost.
	// It returns the value stored after the call.
	Update(ctx context.Context, key string, fn UpdateFunc) (string, error)

	// Delete removes key.
	Delete(ctx context.Context, key string) error

	// GetAll returns every stored setting ordered by name.
	GetAll(ctx context.Context) ([]*entity.Setting, error)
}
