package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shortcutctl/internal/domain/repository"
	"github.com/bnema/shortcutctl/internal/domain/tokenset"
	"github.com/bnema/shortcutctl/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/shortcutctl/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestSettingsRepository_CRUD(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "shortcutctl.sqlite")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewSettingsRepository(db)

	_, found, err := repo.Get(ctx, "accessibility_button_targets")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Put(ctx, "accessibility_button_targets", "app1/Svc"))
	value, found, err := repo.Get(ctx, "accessibility_button_targets")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "app1/Svc", value)

	require.NoError(t, repo.Put(ctx, "accessibility_button_targets", ""))
	value, found, err = repo.Get(ctx, "accessibility_button_targets")
	require.NoError(t, err)
	assert.True(t, found, "an empty value is still a stored value")
	assert.Empty(t, value)

	require.NoError(t, repo.Put(ctx, "accessibility_display_magnification_enabled", "1"))
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "accessibility_button_targets", all[0].Name)
	assert.Equal(t, "accessibility_display_magnification_enabled", all[1].Name)

	require.NoError(t, repo.Delete(ctx, "accessibility_button_targets"))
	_, found, err = repo.Get(ctx, "accessibility_button_targets")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSettingsRepository_Update(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "shortcutctl.sqlite")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewSettingsRepository(db)

	add := func(token string) repository.UpdateFunc {
		return func(current string) (string, bool) { return tokenset.Add(current, token) }
	}

	next, err := repo.Update(ctx, "targets", add("app1/Svc"))
	require.NoError(t, err)
	assert.Equal(t, "app1/Svc", next)

	next, err = repo.Update(ctx, "targets", add("app2/Svc"))
	require.NoError(t, err)
	assert.Equal(t, "app1/Svc:app2/Svc", next)

	// Unchanged updates do not write.
	_, err = repo.Update(ctx, "untouched", func(current string) (string, bool) {
		return current, false
	})
	require.NoError(t, err)
	_, found, err := repo.Get(ctx, "untouched")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSettingsRepository_ConcurrentUpdatesAcrossConnections(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "shortcutctl.sqlite")

	db1, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db1.Close() })
	db2, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	repos := []repository.SettingsRepository{
		sqlite.NewSettingsRepository(db1),
		sqlite.NewSettingsRepository(db2),
	}

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	errs := make(chan error, writers)
	for i := range writers {
		go func() {
			defer wg.Done()
			token := fmt.Sprintf("app%d/Svc", i)
			_, err := repos[i%2].Update(ctx, "targets", func(current string) (string, bool) {
				return tokenset.Add(current, token)
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	value, _, err := sqlite.NewSettingsRepository(db1).Get(ctx, "targets")
	require.NoError(t, err)
	tokens := tokenset.Split(value)
	assert.Len(t, tokens, writers, "no write may be lost")
	for i := range writers {
		assert.True(t, tokenset.Contains(value, fmt.Sprintf("app%d/Svc", i)))
	}
}
