package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/bnema/shortcutctl/internal/domain/repository"
	"github.com/bnema/shortcutctl/internal/logging"
)

// Source names reported by ResolveModeSet.
const (
	SourceSettings        = "settings"
	SourcePreferenceCache = "preference_cache"
	SourceLegacyKey       = "legacy_key"
	SourceDefault         = "default"
)

// ShortcutTypeSource yields a feature's shortcut type from one place.
// ok=false passes the decision to the next source.
type ShortcutTypeSource struct {
	Name    string
	Resolve func(ctx context.Context, feature *entity.Feature) (t entity.ShortcutType, ok bool, err error)
}

// ResolveChain returns the first type produced by sources, with the source name.
// An error from any source aborts the chain.
func ResolveChain(ctx context.Context, feature *entity.Feature, sources ...ShortcutTypeSource) (entity.ShortcutType, string, error) {
	for _, src := range sources {
		t, ok, err := src.Resolve(ctx, feature)
		if err != nil {
			return entity.ShortcutTypeDefault, src.Name, fmt.Errorf("%s: %w", src.Name, err)
		}
		if ok {
			return t, src.Name, nil
		}
	}
	return entity.ShortcutTypeDefault, "", nil
}

// ResolveShortcutTypeUseCase decides which shortcut types a feature uses.
// Settings win once anything is configured there; the preference cache
// remembers the last confirmed choice; the caller's default covers first use.
type ResolveShortcutTypeUseCase struct {
	targets  *ManageShortcutTargetsUseCase
	prefs    repository.ShortcutPreferenceRepository
	settings repository.SettingsRepository
}

// NewResolveShortcutTypeUseCase creates a new resolver use case.
func NewResolveShortcutTypeUseCase(
	targets *ManageShortcutTargetsUseCase,
	prefs repository.ShortcutPreferenceRepository,
	settings repository.SettingsRepository,
) *ResolveShortcutTypeUseCase {
	return &ResolveShortcutTypeUseCase{
		targets:  targets,
		prefs:    prefs,
		settings: settings,
	}
}

// FromSettings resolves from target lists and switches; an empty set is not an answer.
func (uc *ResolveShortcutTypeUseCase) FromSettings() ShortcutTypeSource {
	return ShortcutTypeSource{
		Name: SourceSettings,
		Resolve: func(ctx context.Context, feature *entity.Feature) (entity.ShortcutType, bool, error) {
			t, err := uc.targets.ModeSetFromSettings(ctx, feature)
			if err != nil {
				return entity.ShortcutTypeDefault, false, err
			}
			return t, !t.IsEmpty(), nil
		},
	}
}

// FromPreferenceCache resolves from the cached choice. A cached empty set is an answer.
func (uc *ResolveShortcutTypeUseCase) FromPreferenceCache() ShortcutTypeSource {
	return ShortcutTypeSource{
		Name: SourcePreferenceCache,
		Resolve: func(ctx context.Context, feature *entity.Feature) (entity.ShortcutType, bool, error) {
			record, err := uc.prefs.Get(ctx, feature.ComponentName)
			if errors.Is(err, entity.ErrMalformedUserShortcutType) {
				logging.FromContext(ctx).Debug().Err(err).Msg("ignoring malformed cached shortcut type")
				return entity.ShortcutTypeDefault, false, nil
			}
			if err != nil {
				return entity.ShortcutTypeDefault, false, err
			}
			if record == nil {
				return entity.ShortcutTypeDefault, false, nil
			}
			return record.Type, true, nil
		},
	}
}

// FromLegacyKey resolves from a single int bitmask key, when the feature has one.
func (uc *ResolveShortcutTypeUseCase) FromLegacyKey() ShortcutTypeSource {
	return ShortcutTypeSource{
		Name: SourceLegacyKey,
		Resolve: func(ctx context.Context, feature *entity.Feature) (entity.ShortcutType, bool, error) {
			if !feature.HasLegacyType() {
				return entity.ShortcutTypeDefault, false, nil
			}
			value, found, err := uc.settings.Get(ctx, feature.LegacyTypeKey)
			if err != nil || !found {
				return entity.ShortcutTypeDefault, false, err
			}
			n, convErr := strconv.Atoi(strings.TrimSpace(value))
			if convErr != nil || !entity.ShortcutType(n).Valid() {
				logging.FromContext(ctx).Debug().
					Str("key", feature.LegacyTypeKey).
					Str("value", value).
					Msg("ignoring malformed legacy shortcut type")
				return entity.ShortcutTypeDefault, false, nil
			}
			return entity.ShortcutType(n), true, nil
		},
	}
}

// Default always answers with t.
func Default(t entity.ShortcutType) ShortcutTypeSource {
	return ShortcutTypeSource{
		Name: SourceDefault,
		Resolve: func(_ context.Context, _ *entity.Feature) (entity.ShortcutType, bool, error) {
			return t, true, nil
		},
	}
}

// ResolveModeSet returns the feature's shortcut types: settings, then the
// preference cache, then the legacy key (only for features that declare one),
// then defaultType. A feature without a legacy key resolves through exactly
// settings, cache, default. Malformed stored values count as absent.
func (uc *ResolveShortcutTypeUseCase) ResolveModeSet(
	ctx context.Context,
	feature *entity.Feature,
	defaultType entity.ShortcutType,
) (entity.ShortcutType, string, error) {
	log := logging.FromContext(ctx)

	sources := []ShortcutTypeSource{uc.FromSettings(), uc.FromPreferenceCache()}
	if feature.HasLegacyType() {
		sources = append(sources, uc.FromLegacyKey())
	}
	sources = append(sources, Default(defaultType))

	t, source, err := ResolveChain(ctx, feature, sources...)
	if err != nil {
		return entity.ShortcutTypeDefault, source, fmt.Errorf("failed to resolve shortcut type: %w", err)
	}

	log.Debug().
		Str("component", feature.ComponentName).
		Str("types", t.String()).
		Str("source", source).
		Msg("resolved shortcut types")
	return t, source, nil
}

// CachedOrDefault returns the cached choice, or defaultType when nothing was cached.
func (uc *ResolveShortcutTypeUseCase) CachedOrDefault(
	ctx context.Context,
	feature *entity.Feature,
	defaultType entity.ShortcutType,
) (entity.ShortcutType, error) {
	t, _, err := ResolveChain(ctx, feature, uc.FromPreferenceCache(), Default(defaultType))
	if err != nil {
		return entity.ShortcutTypeDefault, fmt.Errorf("failed to read cached shortcut type: %w", err)
	}
	return t, nil
}

// LegacyOrDefault returns the legacy bitmask, or defaultType when it is unset.
func (uc *ResolveShortcutTypeUseCase) LegacyOrDefault(
	ctx context.Context,
	feature *entity.Feature,
	defaultType entity.ShortcutType,
) (entity.ShortcutType, error) {
	t, _, err := ResolveChain(ctx, feature, uc.FromLegacyKey(), Default(defaultType))
	if err != nil {
		return entity.ShortcutTypeDefault, fmt.Errorf("failed to read legacy shortcut type: %w", err)
	}
	return t, nil
}

// SaveUserShortcutType replaces the cached choice for feature.
func (uc *ResolveShortcutTypeUseCase) SaveUserShortcutType(ctx context.Context, feature *entity.Feature, t entity.ShortcutType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %s", entity.ErrInvalidShortcutType, t)
	}
	if err := uc.prefs.Set(ctx, entity.NewUserShortcutType(feature.ComponentName, t)); err != nil {
		return fmt.Errorf("failed to save user shortcut type: %w", err)
	}
	logging.FromContext(ctx).Debug().
		Str("component", feature.ComponentName).
		Str("types", t.String()).
		Msg("user shortcut type cached")
	return nil
}

// RefreshShortcutType reconciles the cache with settings.
// A non-empty settings set is copied into the cache and returned; otherwise the
// cached choice (or the feature default) is returned unchanged.
func (uc *ResolveShortcutTypeUseCase) RefreshShortcutType(ctx context.Context, feature *entity.Feature) (entity.ShortcutType, error) {
	fromSettings, err := uc.targets.ModeSetFromSettings(ctx, feature)
	if err != nil {
		return entity.ShortcutTypeDefault, err
	}
	if !fromSettings.IsEmpty() {
		if err := uc.SaveUserShortcutType(ctx, feature, fromSettings); err != nil {
			return entity.ShortcutTypeDefault, err
		}
		return fromSettings, nil
	}
	return uc.CachedOrDefault(ctx, feature, featureDefault(feature))
}

func featureDefault(feature *entity.Feature) entity.ShortcutType {
	if feature.DefaultType.IsEmpty() {
		return entity.ShortcutTypeSoftware
	}
	return feature.DefaultType
}
