package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedUserShortcutType is returned when a flattened cache entry cannot be parsed.
var ErrMalformedUserShortcutType = errors.New("malformed user shortcut type")

const userShortcutTypeSeparator = ":"

// UserShortcutType is the cached shortcut choice for one feature.
// It is the fallback used when no target list mentions the feature.
type UserShortcutType struct {
	ComponentName string
	Type          ShortcutType
	UpdatedAt     time.Time
}

// NewUserShortcutType creates a cache record stamped with the current time.
func NewUserShortcutType(componentName string, t ShortcutType) *UserShortcutType {
	return &UserShortcutType{
		ComponentName: componentName,
		Type:          t,
		UpdatedAt:     time.Now(),
	}
}

// Flatten encodes the record as "componentName:bitmask".
func (u *UserShortcutType) Flatten() string {
	return u.ComponentName + userShortcutTypeSeparator + strconv.Itoa(int(u.Type))
}

// ParseUserShortcutType decodes a "componentName:bitmask" string.
// Component names never contain ':', so the last separator splits the fields.
func ParseUserShortcutType(s string) (*UserShortcutType, error) {
	idx := strings.LastIndex(s, userShortcutTypeSeparator)
	if idx <= 0 || idx == len(s)-1 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedUserShortcutType, s)
	}

	bits, err := strconv.Atoi(s[idx+1:])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedUserShortcutType, s, err)
	}

	t := ShortcutType(bits)
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q: %w", ErrMalformedUserShortcutType, s, ErrInvalidShortcutType)
	}

	return &UserShortcutType{ComponentName: s[:idx], Type: t}, nil
}

// ParseUserShortcutTypeFor decodes the cache entry stored for componentName.
// An entry naming a different component is malformed.
func ParseUserShortcutTypeFor(componentName, s string) (*UserShortcutType, error) {
	record, err := ParseUserShortcutType(s)
	if err != nil {
		return nil, err
	}
	if record.ComponentName != componentName {
		return nil, fmt.Errorf("%w: %q is not an entry for %q", ErrMalformedUserShortcutType, s, componentName)
	}
	return record, nil
}
