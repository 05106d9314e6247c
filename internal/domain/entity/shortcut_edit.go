package entity

import "fmt"

// ShortcutEditSession tracks the checkbox state of a shortcut edit dialog.
// The selection can never become empty: the last checked mode is locked.
type ShortcutEditSession struct {
	supported ShortcutType
	pending   ShortcutType
}

// NewShortcutEditSession starts an edit from the current shortcut type.
// Unsupported bits are dropped. An empty start selects the software mode.
func NewShortcutEditSession(current, supported ShortcutType) *ShortcutEditSession {
	supported &= ShortcutTypeMask
	pending := current & supported
	if pending.IsEmpty() {
		pending = ShortcutTypeSoftware & supported
	}
	return &ShortcutEditSession{supported: supported, pending: pending}
}

// Pending returns the selection that would be saved on confirm.
func (s *ShortcutEditSession) Pending() ShortcutType {
	return s.pending
}

// IsChecked reports whether mode is currently selected.
func (s *ShortcutEditSession) IsChecked(mode ShortcutType) bool {
	return s.pending.Has(mode)
}

// IsEnabled reports whether mode can be toggled right now.
func (s *ShortcutEditSession) IsEnabled(mode ShortcutType) bool {
	if !s.supported.Has(mode) {
		return false
	}
	return !(s.pending == mode)
}

// Toggle flips one mode.
func (s *ShortcutEditSession) Toggle(mode ShortcutType) error {
	if !mode.IsSingleMode() {
		return fmt.Errorf("%w: %s", ErrInvalidShortcutType, mode)
	}
	if !s.supported.Has(mode) {
		return fmt.Errorf("%w: %s", ErrUnsupportedShortcutType, mode)
	}
	if !s.IsEnabled(mode) {
		return fmt.Errorf("%s is the only selected shortcut", mode)
	}
	s.pending ^= mode
	return nil
}

// Select replaces the selection. An empty or unsupported selection is rejected.
func (s *ShortcutEditSession) Select(t ShortcutType) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidShortcutType, t)
	}
	if t&^s.supported != 0 {
		return fmt.Errorf("%w: %s", ErrUnsupportedShortcutType, t&^s.supported)
	}
	if t.IsEmpty() {
		return fmt.Errorf("at least one shortcut must be selected")
	}
	s.pending = t
	return nil
}
