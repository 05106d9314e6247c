package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/bnema/shortcutctl/internal/infrastructure/persistence/sqlite"
)

func TestShortcutPreferenceRepository_CRUD(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "shortcutctl.sqlite")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewShortcutPreferenceRepository(db)

	record, err := repo.Get(ctx, "com.example/.Magnifier")
	require.NoError(t, err)
	assert.Nil(t, record)

	require.NoError(t, repo.Set(ctx, entity.NewUserShortcutType("com.example/.Magnifier",
		entity.ShortcutTypeSoftware|entity.ShortcutTypeTripleTap)))
	record, err = repo.Get(ctx, "com.example/.Magnifier")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, entity.ShortcutTypeSoftware|entity.ShortcutTypeTripleTap, record.Type)

	// A cached empty set is kept as such.
	require.NoError(t, repo.Set(ctx, entity.NewUserShortcutType("com.example/.Magnifier", entity.ShortcutTypeDefault)))
	record, err = repo.Get(ctx, "com.example/.Magnifier")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.True(t, record.Type.IsEmpty())

	require.NoError(t, repo.Set(ctx, entity.NewUserShortcutType("com.example/.Reader", entity.ShortcutTypeHardware)))
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "com.example/.Magnifier", all[0].ComponentName)
	assert.Equal(t, "com.example/.Reader", all[1].ComponentName)

	require.NoError(t, repo.Delete(ctx, "com.example/.Magnifier"))
	record, err = repo.Get(ctx, "com.example/.Magnifier")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestSchemaVersion_AfterConnect(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "shortcutctl.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	version, err := sqlite.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	// reopening applies nothing
	require.NoError(t, sqlite.RunMigrations(ctx, db))
}

func TestShortcutPreferenceRepository_UnreadableRowsReadAsMissing(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "shortcutctl.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows := map[string]string{
		"pkg/Foo":  "pkg/Foo:garbage",
		"pkg/Bar":  "pkg/Other:2",
		"pkg/Wide": "pkg/Wide:64",
	}
	for name, entry := range rows {
		_, err := db.ExecContext(ctx,
			`INSERT INTO shortcut_preferences (component_name, entry, updated_at) VALUES (?, ?, 0)`, name, entry)
		require.NoError(t, err)
	}

	repo := sqlite.NewShortcutPreferenceRepository(db)
	for name := range rows {
		record, err := repo.Get(ctx, name)
		require.NoError(t, err, name)
		assert.Nil(t, record, name)
	}

	require.NoError(t, repo.Set(ctx, entity.NewUserShortcutType("pkg/Good", entity.ShortcutTypeHardware)))
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "pkg/Good", all[0].ComponentName)

	// a rewrite replaces the broken row
	require.NoError(t, repo.Set(ctx, entity.NewUserShortcutType("pkg/Foo", entity.ShortcutTypeSoftware)))
	record, err := repo.Get(ctx, "pkg/Foo")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, entity.ShortcutTypeSoftware, record.Type)
}
