// Package navigation reads the system navigation state from the settings store.
package navigation

import (
	"context"
	"strconv"
	"strings"

	"github.com/bnema/shortcutctl/internal/application/port"
	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/bnema/shortcutctl/internal/domain/repository"
	"github.com/bnema/shortcutctl/internal/logging"
)

// GestureNavigationMode is the navigation mode value of full gesture navigation.
const GestureNavigationMode = 2

// Keys names the settings the navigation state is read from.
type Keys struct {
	NavigationMode   string
	TouchExploration string
}

// SettingsState implements port.NavigationState on top of a settings repository.
// Read failures and unparsable values report false.
type SettingsState struct {
	settings repository.SettingsRepository
	keys     Keys
}

var _ port.NavigationState = (*SettingsState)(nil)

// NewSettingsState creates a navigation state reader.
func NewSettingsState(settings repository.SettingsRepository, keys Keys) *SettingsState {
	return &SettingsState{settings: settings, keys: keys}
}

func (s *SettingsState) IsGestureNavigation(ctx context.Context) bool {
	n, ok := s.readInt(ctx, s.keys.NavigationMode)
	return ok && n == GestureNavigationMode
}

func (s *SettingsState) IsTouchExploration(ctx context.Context) bool {
	n, ok := s.readInt(ctx, s.keys.TouchExploration)
	return ok && n == entity.SettingOn
}

func (s *SettingsState) readInt(ctx context.Context, key string) (int, bool) {
	if key == "" {
		return 0, false
	}
	value, found, err := s.settings.Get(ctx, key)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("key", key).Msg("failed to read navigation setting")
		return 0, false
	}
	if !found {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return n, true
}
