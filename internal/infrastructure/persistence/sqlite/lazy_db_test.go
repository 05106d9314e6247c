package sqlite_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/bnema/shortcutctl/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_ClosedStoreNeverOpens(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "shortcutctl.sqlite")
	lazy := sqlite.NewLazyDB(dbPath)

	assert.False(t, lazy.IsInitialized())
	assert.Equal(t, dbPath, lazy.Path())
	require.NoError(t, lazy.Close())

	_, err := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err), "closing an unused store must not create the file")
}

func TestLazyRepositories_OpenOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "shortcutctl.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })

	settings := sqlite.NewLazySettingsRepository(lazy)
	prefs := sqlite.NewLazyShortcutPreferenceRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, settings.Put(ctx, "accessibility_shortcut_target_service", "app/Svc"))
	assert.True(t, lazy.IsInitialized())

	require.NoError(t, prefs.Set(ctx, entity.NewUserShortcutType("app/Svc", entity.ShortcutTypeHardware)))
	record, err := prefs.Get(ctx, "app/Svc")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, entity.ShortcutTypeHardware, record.Type)
}

func TestLazyRepositories_ConcurrentFirstUseSharesConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "shortcutctl.sqlite"))
	t.Cleanup(func() { _ = lazy.Close() })
	settings := sqlite.NewLazySettingsRepository(lazy)

	const writers = 10
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := settings.Update(ctx, "accessibility_button_targets", func(current string) (string, bool) {
				return current + "x", true
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	value, _, err := settings.Get(ctx, "accessibility_button_targets")
	require.NoError(t, err)
	assert.Len(t, value, writers)

	db1, err := lazy.DB(ctx)
	require.NoError(t, err)
	db2, err := lazy.DB(ctx)
	require.NoError(t, err)
	assert.Same(t, db1, db2)
}

func TestLazyDB_OpenFailureIsSticky(t *testing.T) {
	ctx := testCtx()
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	lazy := sqlite.NewLazyDB(filepath.Join(blocker, "shortcutctl.sqlite"))
	settings := sqlite.NewLazySettingsRepository(lazy)

	_, _, err := settings.Get(ctx, "navigation_mode")
	require.Error(t, err)
	_, err = lazy.DB(ctx)
	require.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}
