package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/bnema/shortcutctl/internal/application/port"
	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/bnema/shortcutctl/internal/domain/repository"
	"github.com/bnema/shortcutctl/internal/logging"
)

// ShortcutState is what a shortcut preference row displays.
type ShortcutState struct {
	Feature *entity.Feature
	// Types is the selection the edit dialog would start from.
	Types entity.ShortcutType
	// Enabled is true when any of Types is bound in settings.
	Enabled bool
	Summary string
}

// ManageShortcutPreferenceUseCase drives the shortcut toggle and edit flow of one feature.
type ManageShortcutPreferenceUseCase struct {
	targets    *ManageShortcutTargetsUseCase
	resolver   *ResolveShortcutTypeUseCase
	settings   repository.SettingsRepository
	navigation port.NavigationState
	labels     entity.ShortcutLabels
}

// NewManageShortcutPreferenceUseCase creates a new shortcut preference use case.
func NewManageShortcutPreferenceUseCase(
	targets *ManageShortcutTargetsUseCase,
	resolver *ResolveShortcutTypeUseCase,
	settings repository.SettingsRepository,
	navigation port.NavigationState,
	labels entity.ShortcutLabels,
) *ManageShortcutPreferenceUseCase {
	if navigation == nil {
		navigation = port.StaticNavigationState{}
	}
	return &ManageShortcutPreferenceUseCase{
		targets:    targets,
		resolver:   resolver,
		settings:   settings,
		navigation: navigation,
		labels:     labels,
	}
}

// ShortcutState reconciles the cache with settings and returns what to display.
func (uc *ManageShortcutPreferenceUseCase) ShortcutState(ctx context.Context, feature *entity.Feature) (*ShortcutState, error) {
	ctx = logging.WithFeature(ctx, feature.DisplayName())

	if _, err := uc.resolver.RefreshShortcutType(ctx, feature); err != nil {
		return nil, fmt.Errorf("failed to refresh shortcut type: %w", err)
	}

	types, err := uc.currentTypes(ctx, feature)
	if err != nil {
		return nil, err
	}

	enabled, err := uc.targets.HasAnyMode(ctx, feature, types)
	if err != nil {
		return nil, fmt.Errorf("failed to read shortcut targets: %w", err)
	}

	summary, err := uc.ShortcutSummary(ctx, feature)
	if err != nil {
		return nil, err
	}

	return &ShortcutState{
		Feature: feature,
		Types:   types,
		Enabled: enabled,
		Summary: summary,
	}, nil
}

// ShortcutSummary renders the label list shown under the shortcut preference.
// It reads the cache without a default, so a never-configured feature shows
// the software label.
func (uc *ManageShortcutPreferenceUseCase) ShortcutSummary(ctx context.Context, feature *entity.Feature) (string, error) {
	var (
		types entity.ShortcutType
		err   error
	)
	if feature.HasLegacyType() {
		types, err = uc.resolver.LegacyOrDefault(ctx, feature, entity.ShortcutTypeSoftware)
	} else {
		types, err = uc.resolver.CachedOrDefault(ctx, feature, entity.ShortcutTypeDefault)
	}
	if err != nil {
		return "", err
	}

	software := uc.labels.SoftwareFor(
		uc.navigation.IsGestureNavigation(ctx),
		uc.navigation.IsTouchExploration(ctx),
	)
	return FormatShortcutSummary(types, uc.labels.WithSoftware(software)), nil
}

// ToggleShortcut turns the feature's shortcut on or off using its current types.
func (uc *ManageShortcutPreferenceUseCase) ToggleShortcut(ctx context.Context, feature *entity.Feature, on bool) error {
	log := logging.FromContext(ctx)

	types, err := uc.currentTypes(ctx, feature)
	if err != nil {
		return err
	}

	if on {
		err = uc.targets.OptIn(ctx, feature, types&feature.SupportedTypes())
	} else {
		err = uc.targets.OptOut(ctx, feature, types&feature.SupportedTypes())
	}
	if err != nil {
		return fmt.Errorf("failed to toggle shortcut: %w", err)
	}

	log.Info().
		Str("component", feature.ComponentName).
		Bool("on", on).
		Str("types", types.String()).
		Msg("shortcut toggled")
	return nil
}

// BeginShortcutEdit opens an edit session from the feature's current types.
func (uc *ManageShortcutPreferenceUseCase) BeginShortcutEdit(ctx context.Context, feature *entity.Feature) (*entity.ShortcutEditSession, error) {
	types, err := uc.currentTypes(ctx, feature)
	if err != nil {
		return nil, err
	}
	return entity.NewShortcutEditSession(types, feature.SupportedTypes()), nil
}

// ConfirmShortcutEdit saves the session's selection. When the shortcut is on,
// the selection is written to settings and every other mode is removed.
func (uc *ManageShortcutPreferenceUseCase) ConfirmShortcutEdit(
	ctx context.Context,
	feature *entity.Feature,
	session *entity.ShortcutEditSession,
	shortcutOn bool,
) error {
	log := logging.FromContext(ctx)

	if session == nil {
		return errors.New("edit session is nil")
	}
	pending := session.Pending()

	if err := uc.resolver.SaveUserShortcutType(ctx, feature, pending); err != nil {
		return err
	}

	if feature.HasLegacyType() {
		if err := uc.settings.Put(ctx, feature.LegacyTypeKey, strconv.Itoa(int(pending))); err != nil {
			return fmt.Errorf("failed to write %s: %w", feature.LegacyTypeKey, err)
		}
	}

	if shortcutOn {
		optInErr := uc.targets.OptIn(ctx, feature, pending)
		optOutErr := uc.targets.OptOut(ctx, feature, pending.Complement())
		if err := errors.Join(optInErr, optOutErr); err != nil {
			return fmt.Errorf("failed to apply shortcut edit: %w", err)
		}
	}

	log.Info().
		Str("component", feature.ComponentName).
		Str("types", pending.String()).
		Bool("shortcut_on", shortcutOn).
		Msg("shortcut edit confirmed")
	return nil
}

// currentTypes is the selection the toggle and the edit dialog work from.
func (uc *ManageShortcutPreferenceUseCase) currentTypes(ctx context.Context, feature *entity.Feature) (entity.ShortcutType, error) {
	if feature.HasLegacyType() {
		return uc.resolver.LegacyOrDefault(ctx, feature, featureDefault(feature))
	}
	return uc.resolver.CachedOrDefault(ctx, feature, featureDefault(feature))
}
