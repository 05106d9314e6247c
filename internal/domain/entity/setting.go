package entity

import "time"

// Settings values used for boolean keys.
const (
	SettingOn  = 1
	SettingOff = 0
)

// Setting is one raw key/value row of the shared settings store.
type Setting struct {
	Name      string
	Value     string
	UpdatedAt time.Time
}
