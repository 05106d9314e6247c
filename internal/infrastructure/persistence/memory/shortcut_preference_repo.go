package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/bnema/shortcutctl/internal/domain/repository"
	"github.com/bnema/shortcutctl/internal/logging"
)

type shortcutPreferenceRepo struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewShortcutPreferenceRepository creates an empty in-memory preference cache.
// Entries are kept in their flattened "component:bitmask" form.
func NewShortcutPreferenceRepository() repository.ShortcutPreferenceRepository {
	return &shortcutPreferenceRepo{entries: make(map[string]string)}
}

// NewShortcutPreferenceRepositoryFrom creates a cache preloaded with flattened
// entries keyed by component name, e.g. a snapshot of another store.
// Entries are not validated; unreadable ones read as missing.
func NewShortcutPreferenceRepositoryFrom(entries map[string]string) repository.ShortcutPreferenceRepository {
	r := &shortcutPreferenceRepo{entries: make(map[string]string, len(entries))}
	for name, flat := range entries {
		r.entries[name] = flat
	}
	return r
}

func (r *shortcutPreferenceRepo) Get(ctx context.Context, componentName string) (*entity.UserShortcutType, error) {
	r.mu.RLock()
	flat, ok := r.entries[componentName]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	record, err := entity.ParseUserShortcutTypeFor(componentName, flat)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("entry", flat).Msg("ignoring malformed shortcut preference")
		return nil, nil
	}
	return record, nil
}

func (r *shortcutPreferenceRepo) Set(_ context.Context, record *entity.UserShortcutType) error {
	if record == nil {
		return errors.New("cannot set nil user shortcut type")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[record.ComponentName] = record.Flatten()
	return nil
}

func (r *shortcutPreferenceRepo) Delete(_ context.Context, componentName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, componentName)
	return nil
}

func (r *shortcutPreferenceRepo) GetAll(_ context.Context) ([]*entity.UserShortcutType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*entity.UserShortcutType, 0, len(r.entries))
	for name, flat := range r.entries {
		record, err := entity.ParseUserShortcutTypeFor(name, flat)
		if err != nil {
			continue
		}
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ComponentName < records[j].ComponentName })
	return records, nil
}
