// Package port defines interfaces for infrastructure adapters.
package port

import "context"

// NavigationState reports how the user currently navigates the system UI.
// The software shortcut is a button in three-button navigation and a
// multi-finger swipe in gesture navigation.
type NavigationState interface {
	// IsGestureNavigation reports whether gesture navigation is active.
	IsGestureNavigation(ctx context.Context) bool

	// IsTouchExploration reports whether touch exploration (screen reader) is active.
	IsTouchExploration(ctx context.Context) bool
}

// StaticNavigationState is a fixed NavigationState.
type StaticNavigationState struct {
	Gesture          bool
	TouchExploration bool
}

func (s StaticNavigationState) IsGestureNavigation(_ context.Context) bool {
	return s.Gesture
}

func (s StaticNavigationState) IsTouchExploration(_ context.Context) bool {
	return s.TouchExploration
}
