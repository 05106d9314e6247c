package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shortcutctl/internal/application/usecase"
	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/bnema/shortcutctl/internal/domain/repository"
	repomocks "github.com/bnema/shortcutctl/internal/domain/repository/mocks"
	"github.com/bnema/shortcutctl/internal/infrastructure/persistence/memory"
)

type resolverFixture struct {
	targets  *usecase.ManageShortcutTargetsUseCase
	resolver *usecase.ResolveShortcutTypeUseCase
	settings repository.SettingsRepository
	prefs    repository.ShortcutPreferenceRepository
}

func newResolverFixture(t *testing.T) *resolverFixture {
	t.Helper()
	settings := memory.NewSettingsRepository()
	prefs := memory.NewShortcutPreferenceRepository()
	targets := usecase.NewManageShortcutTargetsUseCase(settings, testKeys)
	return &resolverFixture{
		targets:  targets,
		resolver: usecase.NewResolveShortcutTypeUseCase(targets, prefs, settings),
		settings: settings,
		prefs:    prefs,
	}
}

func TestResolveModeSet_SettingsWinOverCache(t *testing.T) {
	ctx := testContext()
	f := newResolverFixture(t)
	feature := magnifier()

	require.NoError(t, f.prefs.Set(ctx, entity.NewUserShortcutType(feature.ComponentName, entity.ShortcutTypeTripleTap)))
	require.NoError(t, f.targets.EnableMode(ctx, feature, entity.ShortcutTypeHardware))

	got, source, err := f.resolver.ResolveModeSet(ctx, feature, entity.ShortcutTypeSoftware)
	require.NoError(t, err)
	assert.Equal(t, entity.ShortcutTypeHardware, got)
	assert.Equal(t, usecase.SourceSettings, source)
}

func TestResolveModeSet_CacheWhenSettingsEmpty(t *testing.T) {
	ctx := testContext()
	f := newResolverFixture(t)
	feature := magnifier()

	require.NoError(t, f.prefs.Set(ctx, entity.NewUserShortcutType(feature.ComponentName, entity.ShortcutTypeDefault)))

	got, source, err := f.resolver.ResolveModeSet(ctx, feature, entity.ShortcutTypeSoftware)
	require.NoError(t, err)
	assert.True(t, got.IsEmpty(), "a cached empty set is an answer")
	assert.Equal(t, usecase.SourcePreferenceCache, source)
}

func TestResolveModeSet_DefaultOnEmpty(t *testing.T) {
	for _, def := range []entity.ShortcutType{
		entity.ShortcutTypeDefault,
		entity.ShortcutTypeSoftware,
		entity.ShortcutTypeHardware | entity.ShortcutTypeTripleTap,
	} {
		ctx := testContext()
		f := newResolverFixture(t)

		got, source, err := f.resolver.ResolveModeSet(ctx, magnifier(), def)
		require.NoError(t, err)
		assert.Equal(t, def, got)
		assert.Equal(t, usecase.SourceDefault, source)
	}
}

func TestResolveModeSet_LegacyKey(t *testing.T) {
	ctx := testContext()
	f := newResolverFixture(t)
	feature := entity.NewFeature("accessibility_button", "app/Button")
	feature.LegacyTypeKey = "accessibility_button_mode"

	require.NoError(t, f.settings.Put(ctx, feature.LegacyTypeKey, "2"))
	got, source, err := f.resolver.ResolveModeSet(ctx, feature, entity.ShortcutTypeSoftware)
	require.NoError(t, err)
	assert.Equal(t, entity.ShortcutTypeHardware, got)
	assert.Equal(t, usecase.SourceLegacyKey, source)

	require.NoError(t, f.settings.Put(ctx, feature.LegacyTypeKey, "nope"))
	got, source, err = f.resolver.ResolveModeSet(ctx, feature, entity.ShortcutTypeSoftware)
	require.NoError(t, err)
	assert.Equal(t, entity.ShortcutTypeSoftware, got)
	assert.Equal(t, usecase.SourceDefault, source)

	// Features without a legacy key never read it.
	plain := entity.NewFeature("plain", "app/Button")
	got, source, err = f.resolver.ResolveModeSet(ctx, plain, entity.ShortcutTypeTripleTap)
	require.NoError(t, err)
	assert.Equal(t, entity.ShortcutTypeTripleTap, got)
	assert.Equal(t, usecase.SourceDefault, source)
}

func TestResolveModeSet_SourceErrorAborts(t *testing.T) {
	ctx := testContext()
	settings := memory.NewSettingsRepository()
	prefs := repomocks.NewMockShortcutPreferenceRepository(t)
	targets := usecase.NewManageShortcutTargetsUseCase(settings, testKeys)
	resolver := usecase.NewResolveShortcutTypeUseCase(targets, prefs, settings)

	prefs.EXPECT().Get(mock.Anything, "app/Svc").Return(nil, errors.New("disk full"))

	_, source, err := resolver.ResolveModeSet(ctx, entity.NewFeature("", "app/Svc"), entity.ShortcutTypeSoftware)
	require.Error(t, err)
	assert.Equal(t, usecase.SourcePreferenceCache, source)
}

func TestResolveChain_Order(t *testing.T) {
	ctx := context.Background()
	var calls []string
	source := func(name string, t entity.ShortcutType, ok bool) usecase.ShortcutTypeSource {
		return usecase.ShortcutTypeSource{
			Name: name,
			Resolve: func(context.Context, *entity.Feature) (entity.ShortcutType, bool, error) {
				calls = append(calls, name)
				return t, ok, nil
			},
		}
	}

	got, name, err := usecase.ResolveChain(ctx, magnifier(),
		source("first", entity.ShortcutTypeSoftware, false),
		source("second", entity.ShortcutTypeHardware, true),
		source("third", entity.ShortcutTypeTripleTap, true),
	)
	require.NoError(t, err)
	assert.Equal(t, entity.ShortcutTypeHardware, got)
	assert.Equal(t, "second", name)
	assert.Equal(t, []string{"first", "second"}, calls)

	got, name, err = usecase.ResolveChain(ctx, magnifier())
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
	assert.Empty(t, name)
}

func TestRefreshShortcutType(t *testing.T) {
	ctx := testContext()
	f := newResolverFixture(t)
	feature := magnifier()
	feature.DefaultType = entity.ShortcutTypeHardware

	got, err := f.resolver.RefreshShortcutType(ctx, feature)
	require.NoError(t, err)
	assert.Equal(t, entity.ShortcutTypeHardware, got, "nothing stored falls back to the feature default")

	record, err := f.prefs.Get(ctx, feature.ComponentName)
	require.NoError(t, err)
	assert.Nil(t, record, "the default is not cached")

	require.NoError(t, f.targets.OptIn(ctx, feature, entity.ShortcutTypeSoftware|entity.ShortcutTypeTripleTap))
	got, err = f.resolver.RefreshShortcutType(ctx, feature)
	require.NoError(t, err)
	assert.Equal(t, entity.ShortcutTypeSoftware|entity.ShortcutTypeTripleTap, got)

	record, err = f.prefs.Get(ctx, feature.ComponentName)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, got, record.Type)

	// Turning the shortcut off keeps the remembered choice.
	require.NoError(t, f.targets.OptOut(ctx, feature, entity.ShortcutTypeMask))
	got, err = f.resolver.RefreshShortcutType(ctx, feature)
	require.NoError(t, err)
	assert.Equal(t, entity.ShortcutTypeSoftware|entity.ShortcutTypeTripleTap, got)
}

func TestSaveUserShortcutType_RejectsInvalid(t *testing.T) {
	ctx := testContext()
	f := newResolverFixture(t)

	err := f.resolver.SaveUserShortcutType(ctx, magnifier(), entity.ShortcutType(16))
	require.ErrorIs(t, err, entity.ErrInvalidShortcutType)
}
