// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/bnema/shortcutctl/internal/domain/repository"
	"github.com/bnema/shortcutctl/internal/domain/tokenset"
	"github.com/bnema/shortcutctl/internal/logging"
)

// ManageShortcutTargetsUseCase maps a feature's shortcut modes onto the shared settings store.
// Software and hardware modes are memberships in colon-separated target lists;
// the triple-tap mode is a per-family boolean key.
type ManageShortcutTargetsUseCase struct {
	settings repository.SettingsRepository
	keys     entity.ShortcutSettingsKeys
}

// NewManageShortcutTargetsUseCase creates a new shortcut target use case.
func NewManageShortcutTargetsUseCase(
	settings repository.SettingsRepository,
	keys entity.ShortcutSettingsKeys,
) *ManageShortcutTargetsUseCase {
	return &ManageShortcutTargetsUseCase{
		settings: settings,
		keys:     keys,
	}
}

// Keys returns the target list keys in use.
func (uc *ManageShortcutTargetsUseCase) Keys() entity.ShortcutSettingsKeys {
	return uc.keys
}

// HasMode reports whether mode is currently enabled for feature.
func (uc *ManageShortcutTargetsUseCase) HasMode(ctx context.Context, feature *entity.Feature, mode entity.ShortcutType) (bool, error) {
	if err := checkSingleMode(mode); err != nil {
		return false, err
	}

	if mode == entity.ShortcutTypeTripleTap {
		if !feature.SupportsTripleTap() {
			return false, nil
		}
		return uc.readSwitch(ctx, feature.TripleTapKey)
	}

	key, err := uc.keys.KeyFor(mode)
	if err != nil {
		return false, err
	}
	value, _, err := uc.settings.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return tokenset.Contains(value, feature.ComponentName), nil
}

// HasAnyMode reports whether at least one mode of modes is enabled for feature.
func (uc *ManageShortcutTargetsUseCase) HasAnyMode(ctx context.Context, feature *entity.Feature, modes entity.ShortcutType) (bool, error) {
	if !modes.Valid() {
		return false, fmt.Errorf("%w: %s", entity.ErrInvalidShortcutType, modes)
	}
	for _, mode := range modes.Modes() {
		has, err := uc.HasMode(ctx, feature, mode)
		if err != nil {
			return false, err
		}
		if has {
			return true, nil
		}
	}
	return false, nil
}

// ModeSetFromSettings returns the union of modes whose settings mention feature.
// ShortcutTypeDefault means the feature was never configured in settings.
func (uc *ManageShortcutTargetsUseCase) ModeSetFromSettings(ctx context.Context, feature *entity.Feature) (entity.ShortcutType, error) {
	result := entity.ShortcutTypeDefault
	for _, mode := range feature.SupportedTypes().Modes() {
		has, err := uc.HasMode(ctx, feature, mode)
		if err != nil {
			return entity.ShortcutTypeDefault, err
		}
		if has {
			result |= mode
		}
	}
	return result, nil
}

// EnableMode binds mode to feature. Calling it again is a no-op.
func (uc *ManageShortcutTargetsUseCase) EnableMode(ctx context.Context, feature *entity.Feature, mode entity.ShortcutType) error {
	log := logging.FromContext(ctx)

	if err := checkSingleMode(mode); err != nil {
		return err
	}

	if mode == entity.ShortcutTypeTripleTap {
		if !feature.SupportsTripleTap() {
			return fmt.Errorf("%w: %s cannot use %s", entity.ErrUnsupportedShortcutType, feature.DisplayName(), mode)
		}
		return uc.writeSwitch(ctx, feature.TripleTapKey, true)
	}

	key, err := uc.keys.KeyFor(mode)
	if err != nil {
		return err
	}

	stored, err := uc.settings.Update(ctx, key, func(current string) (string, bool) {
		return tokenset.Add(current, feature.ComponentName)
	})
	if err != nil {
		return fmt.Errorf("failed to enable %s shortcut: %w", mode, err)
	}

	log.Debug().
		Str("key", key).
		Str("component", feature.ComponentName).
		Str("value", stored).
		Msg("shortcut target enabled")
	return nil
}

// DisableMode unbinds mode from feature, leaving other features' tokens untouched.
func (uc *ManageShortcutTargetsUseCase) DisableMode(ctx context.Context, feature *entity.Feature, mode entity.ShortcutType) error {
	log := logging.FromContext(ctx)

	if err := checkSingleMode(mode); err != nil {
		return err
	}

	if mode == entity.ShortcutTypeTripleTap {
		if !feature.SupportsTripleTap() {
			return nil
		}
		return uc.writeSwitch(ctx, feature.TripleTapKey, false)
	}

	key, err := uc.keys.KeyFor(mode)
	if err != nil {
		return err
	}

	stored, err := uc.settings.Update(ctx, key, func(current string) (string, bool) {
		return tokenset.Remove(current, feature.ComponentName)
	})
	if err != nil {
		return fmt.Errorf("failed to disable %s shortcut: %w", mode, err)
	}

	log.Debug().
		Str("key", key).
		Str("component", feature.ComponentName).
		Str("value", stored).
		Msg("shortcut target disabled")
	return nil
}

// ApplyModeSet enables every mode in desired and disables every other supported mode.
// Each mode is stored independently; a failure on one does not stop the others.
func (uc *ManageShortcutTargetsUseCase) ApplyModeSet(ctx context.Context, feature *entity.Feature, desired entity.ShortcutType) error {
	log := logging.FromContext(ctx)

	if !desired.Valid() {
		return fmt.Errorf("%w: %s", entity.ErrInvalidShortcutType, desired)
	}
	if unsupported := desired &^ feature.SupportedTypes(); unsupported != 0 {
		return fmt.Errorf("%w: %s cannot use %s", entity.ErrUnsupportedShortcutType, feature.DisplayName(), unsupported)
	}

	var errs []error
	for _, mode := range entity.ShortcutModes {
		var err error
		if desired.Has(mode) {
			err = uc.EnableMode(ctx, feature, mode)
		} else {
			err = uc.DisableMode(ctx, feature, mode)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	log.Info().
		Str("component", feature.ComponentName).
		Str("types", desired.String()).
		Msg("shortcut types applied")
	return nil
}

// OptIn enables every mode present in modes.
func (uc *ManageShortcutTargetsUseCase) OptIn(ctx context.Context, feature *entity.Feature, modes entity.ShortcutType) error {
	return uc.forEachMode(modes, func(mode entity.ShortcutType) error {
		return uc.EnableMode(ctx, feature, mode)
	})
}

// OptOut disables every mode present in modes.
func (uc *ManageShortcutTargetsUseCase) OptOut(ctx context.Context, feature *entity.Feature, modes entity.ShortcutType) error {
	return uc.forEachMode(modes, func(mode entity.ShortcutType) error {
		return uc.DisableMode(ctx, feature, mode)
	})
}

func (uc *ManageShortcutTargetsUseCase) forEachMode(modes entity.ShortcutType, fn func(entity.ShortcutType) error) error {
	var errs []error
	for _, mode := range (modes & entity.ShortcutTypeMask).Modes() {
		if err := fn(mode); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// readSwitch reads a boolean int key. Unset or unparsable values read as off.
func (uc *ManageShortcutTargetsUseCase) readSwitch(ctx context.Context, key string) (bool, error) {
	value, found, err := uc.settings.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !found {
		return false, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		logging.FromContext(ctx).Debug().Str("key", key).Str("value", value).Msg("ignoring non-integer switch value")
		return false, nil
	}
	return n == entity.SettingOn, nil
}

func (uc *ManageShortcutTargetsUseCase) writeSwitch(ctx context.Context, key string, on bool) error {
	value := entity.SettingOff
	if on {
		value = entity.SettingOn
	}
	if err := uc.settings.Put(ctx, key, strconv.Itoa(value)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	logging.FromContext(ctx).Debug().Str("key", key).Int("value", value).Msg("shortcut switch written")
	return nil
}

func checkSingleMode(mode entity.ShortcutType) error {
	if !mode.IsSingleMode() {
		return fmt.Errorf("%w: %s", entity.ErrInvalidShortcutType, mode)
	}
	return nil
}
