package redis_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shortcutctl/internal/domain/repository"
	"github.com/bnema/shortcutctl/internal/domain/tokenset"
	"github.com/bnema/shortcutctl/internal/infrastructure/persistence/redis"
	"github.com/bnema/shortcutctl/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestClient(t *testing.T, opts redis.Options) (*goredis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	opts.Addr = mr.Addr()

	client, err := redis.NewClient(testCtx(), opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestNewClient_EmptyAddr(t *testing.T) {
	_, err := redis.NewClient(testCtx(), redis.Options{})
	assert.Error(t, err)
}

func TestSettingsRepository_CRUD(t *testing.T) {
	ctx := testCtx()
	opts := redis.Options{KeyPrefix: "test:"}
	client, mr := newTestClient(t, opts)
	repo := redis.NewSettingsRepository(client, opts)

	_, found, err := repo.Get(ctx, "accessibility_button_targets")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Put(ctx, "accessibility_button_targets", "app1/Svc"))
	assert.True(t, mr.Exists("test:settings:accessibility_button_targets"))

	value, found, err := repo.Get(ctx, "accessibility_button_targets")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "app1/Svc", value)

	require.NoError(t, repo.Put(ctx, "accessibility_display_magnification_enabled", "0"))
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "accessibility_button_targets", all[0].Name)
	assert.Equal(t, "accessibility_display_magnification_enabled", all[1].Name)
	assert.Equal(t, "0", all[1].Value)

	require.NoError(t, repo.Delete(ctx, "accessibility_button_targets"))
	_, found, err = repo.Get(ctx, "accessibility_button_targets")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSettingsRepository_UpdateRetriesOnConcurrentWrite(t *testing.T) {
	ctx := testCtx()
	opts := redis.Options{}
	client, mr := newTestClient(t, opts)
	repo := redis.NewSettingsRepository(client, opts)

	calls := 0
	next, err := repo.Update(ctx, "targets", func(current string) (string, bool) {
		calls++
		if calls == 1 {
			// Another writer lands between our read and our commit.
			require.NoError(t, mr.Set("settings:targets", "other/Svc"))
		}
		return tokenset.Add(current, "app1/Svc")
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "other/Svc:app1/Svc", next)

	stored, err := mr.Get("settings:targets")
	require.NoError(t, err)
	assert.Equal(t, "other/Svc:app1/Svc", stored)
}

func TestSettingsRepository_UpdateGivesUpWithConflict(t *testing.T) {
	ctx := testCtx()
	opts := redis.Options{MaxRetries: 3}
	client, mr := newTestClient(t, opts)
	repo := redis.NewSettingsRepository(client, opts)

	calls := 0
	_, err := repo.Update(ctx, "targets", func(current string) (string, bool) {
		calls++
		require.NoError(t, mr.Set("settings:targets", fmt.Sprintf("writer%d/Svc", calls)))
		return tokenset.Add(current, "app1/Svc")
	})
	require.ErrorIs(t, err, repository.ErrConflict)
	assert.Equal(t, 3, calls)

	// the last foreign write stands; app1 was never added
	stored, err := mr.Get("settings:targets")
	require.NoError(t, err)
	assert.Equal(t, "writer3/Svc", stored)
}

func TestSettingsRepository_UpdateUnchangedDoesNotWrite(t *testing.T) {
	ctx := testCtx()
	opts := redis.Options{}
	client, mr := newTestClient(t, opts)
	repo := redis.NewSettingsRepository(client, opts)

	next, err := repo.Update(ctx, "targets", func(current string) (string, bool) {
		return tokenset.Remove(current, "app1/Svc")
	})
	require.NoError(t, err)
	assert.Empty(t, next)
	assert.False(t, mr.Exists("settings:targets"))
}

func TestSettingsRepository_ConcurrentUpdates(t *testing.T) {
	ctx := testCtx()
	opts := redis.Options{MaxRetries: 100}
	client, _ := newTestClient(t, opts)
	repo := redis.NewSettingsRepository(client, opts)

	const writers = 10
	var wg sync.WaitGroup
	wg.Add(writers)
	errs := make(chan error, writers)
	for i := range writers {
		go func() {
			defer wg.Done()
			token := fmt.Sprintf("app%d/Svc", i)
			_, err := repo.Update(ctx, "targets", func(current string) (string, bool) {
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

	value, _, err := repo.Get(ctx, "targets")
	require.NoError(t, err)
	assert.Len(t, tokenset.Split(value), writers)
}
