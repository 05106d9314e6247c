package entity

import (
	"errors"
	"strings"
)

// ErrInvalidFeature is returned for a feature without a component name.
var ErrInvalidFeature = errors.New("invalid feature")

// Feature is an accessibility feature that can be bound to shortcuts.
type Feature struct {
	// Name is the short configuration name (e.g. "magnification").
	Name string
	// ComponentName is the token written into target lists ("package/Class"
	// or a fixed controller name).
	ComponentName string
	// TripleTapKey is the boolean settings key backing the triple-tap mode.
	// Empty means the feature family has no triple-tap shortcut.
	TripleTapKey string
	// LegacyTypeKey is an optional int settings key holding the whole bitmask.
	LegacyTypeKey string
	// DefaultType is returned when nothing has been configured yet.
	DefaultType ShortcutType
}

// NewFeature creates a feature defaulting to the software shortcut.
func NewFeature(name, componentName string) *Feature {
	return &Feature{
		Name:          name,
		ComponentName: componentName,
		DefaultType:   ShortcutTypeSoftware,
	}
}

// Validate checks that the feature can be written into target lists.
func (f *Feature) Validate() error {
	if f == nil || strings.TrimSpace(f.ComponentName) == "" {
		return errors.Join(ErrInvalidFeature, errors.New("component name is required"))
	}
	if strings.Contains(f.ComponentName, ":") {
		return errors.Join(ErrInvalidFeature, errors.New("component name cannot contain ':'"))
	}
	if !f.DefaultType.Valid() {
		return errors.Join(ErrInvalidFeature, ErrInvalidShortcutType)
	}
	return nil
}

// SupportsTripleTap reports whether a triple-tap key is configured.
func (f *Feature) SupportsTripleTap() bool {
	return f.TripleTapKey != ""
}

// HasLegacyType reports whether the feature keeps a legacy bitmask key.
func (f *Feature) HasLegacyType() bool {
	return f.LegacyTypeKey != ""
}

// SupportedTypes returns every mode the feature can be bound to.
func (f *Feature) SupportedTypes() ShortcutType {
	supported := ShortcutTypeSoftware | ShortcutTypeHardware
	if f.SupportsTripleTap() {
		supported |= ShortcutTypeTripleTap
	}
	return supported
}

// DisplayName returns Name, or the component name for ad-hoc features.
func (f *Feature) DisplayName() string {
	if f.Name != "" {
		return f.Name
	}
	return f.ComponentName
}
