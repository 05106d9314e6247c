package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ShortcutType is a bitmask of the interaction modes bound to one accessibility feature.
type ShortcutType int

const (
	// ShortcutTypeDefault is the empty set. It means "never configured" when read from settings.
	ShortcutTypeDefault ShortcutType = 0

	// ShortcutTypeSoftware is the on-screen accessibility button (or gesture).
	ShortcutTypeSoftware ShortcutType = 1 << 0

	// ShortcutTypeHardware is the volume-keys shortcut.
	ShortcutTypeHardware ShortcutType = 1 << 1

	// ShortcutTypeTripleTap is the triple-tap-screen shortcut (magnification only).
	ShortcutTypeTripleTap ShortcutType = 1 << 2

	// ShortcutTypeMask covers every valid bit.
	ShortcutTypeMask = ShortcutTypeSoftware | ShortcutTypeHardware | ShortcutTypeTripleTap
)

var (
	// ErrInvalidShortcutType is returned for bits or names outside the closed mode universe.
	ErrInvalidShortcutType = errors.New("invalid shortcut type")

	// ErrUnsupportedShortcutType is returned when a feature cannot use the requested mode.
	ErrUnsupportedShortcutType = errors.New("shortcut type not supported by feature")
)

// ShortcutModes lists every single-mode value in display order.
var ShortcutModes = []ShortcutType{
	ShortcutTypeSoftware,
	ShortcutTypeHardware,
	ShortcutTypeTripleTap,
}

var shortcutModeNames = map[ShortcutType]string{
	ShortcutTypeSoftware:  "software",
	ShortcutTypeHardware:  "hardware",
	ShortcutTypeTripleTap: "triple_tap",
}

// Has reports whether every bit of mode is set.
func (t ShortcutType) Has(mode ShortcutType) bool {
	return t&mode == mode
}

// With returns t with mode added.
func (t ShortcutType) With(mode ShortcutType) ShortcutType {
	return t | mode
}

// Without returns t with mode removed.
func (t ShortcutType) Without(mode ShortcutType) ShortcutType {
	return t &^ mode
}

// Complement returns the modes not in t, restricted to the valid mask.
func (t ShortcutType) Complement() ShortcutType {
	return ^t & ShortcutTypeMask
}

// IsEmpty reports whether no mode is set.
func (t ShortcutType) IsEmpty() bool {
	return t == ShortcutTypeDefault
}

// Valid reports whether t only carries known bits.
func (t ShortcutType) Valid() bool {
	return t&^ShortcutTypeMask == 0
}

// IsSingleMode reports whether t is exactly one known mode.
func (t ShortcutType) IsSingleMode() bool {
	_, ok := shortcutModeNames[t]
	return ok
}

// Modes returns the single modes present in t, in display order.
func (t ShortcutType) Modes() []ShortcutType {
	modes := make([]ShortcutType, 0, len(ShortcutModes))
	for _, mode := range ShortcutModes {
		if t.Has(mode) {
			modes = append(modes, mode)
		}
	}
	return modes
}

// String renders t as a comma-separated list of mode names, or "none".
func (t ShortcutType) String() string {
	if t.IsEmpty() {
		return "none"
	}
	names := make([]string, 0, len(ShortcutModes))
	for _, mode := range t.Modes() {
		names = append(names, shortcutModeNames[mode])
	}
	if rest := t &^ ShortcutTypeMask; rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", int(rest)))
	}
	return strings.Join(names, ",")
}

// ParseShortcutType parses a comma-separated list of mode names.
// "none" and the empty string yield ShortcutTypeDefault.
func ParseShortcutType(s string) (ShortcutType, error) {
	result := ShortcutTypeDefault
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		name = strings.ReplaceAll(name, "-", "_")
		switch name {
		case "", "none", "default":
			continue
		case "software", "button":
			result |= ShortcutTypeSoftware
		case "hardware", "volume_keys":
			result |= ShortcutTypeHardware
		case "triple_tap", "tripletap":
			result |= ShortcutTypeTripleTap
		default:
			return ShortcutTypeDefault, fmt.Errorf("%w: %q", ErrInvalidShortcutType, part)
		}
	}
	return result, nil
}

// ShortcutSettingsKeys names the list-valued settings keys for the software and hardware modes.
type ShortcutSettingsKeys struct {
	SoftwareTargets string
	HardwareTargets string
}

// KeyFor returns the list key for a list-backed mode.
func (k ShortcutSettingsKeys) KeyFor(mode ShortcutType) (string, error) {
	switch mode {
	case ShortcutTypeSoftware:
		return k.SoftwareTargets, nil
	case ShortcutTypeHardware:
		return k.HardwareTargets, nil
	default:
		return "", fmt.Errorf("%w: %s has no target list", ErrInvalidShortcutType, mode)
	}
}
