package config

import "github.com/bnema/shortcutctl/internal/domain/entity"

const (
	defaultRedisAddr       = "localhost:6379"
	defaultRedisKeyPrefix  = "shortcutctl:"
	defaultRedisMaxRetries = 10
)

// DefaultConfig returns the default configuration values for shortcutctl.
func DefaultConfig() *Config {
	labels := entity.DefaultShortcutLabels()

	return &Config{
		Store: StoreConfig{Backend: StoreBackendSQLite},
		// Database.Path is resolved in Load
		Redis: RedisConfig{
			Addr:       defaultRedisAddr,
			KeyPrefix:  defaultRedisKeyPrefix,
			MaxRetries: defaultRedisMaxRetries,
		},
		SettingsKeys: SettingsKeysConfig{
			SoftwareTargets:  "accessibility_button_targets",
			HardwareTargets:  "accessibility_shortcut_target_service",
			NavigationMode:   "navigation_mode",
			TouchExploration: "touch_exploration_enabled",
		},
		Labels: LabelsConfig{
			Software:                labels.Software,
			SoftwareGesture:         labels.SoftwareGesture,
			SoftwareGestureTalkback: labels.SoftwareGestureTalkback,
			Hardware:                labels.Hardware,
			TripleTap:               labels.TripleTap,
		},
		Features: map[string]FeatureConfig{
			"magnification": {
				Component:    "com.android.server.accessibility.MagnificationController",
				TripleTapKey: "accessibility_display_magnification_enabled",
				DefaultType:  "software",
			},
			"color_inversion": {
				Component:   "com.android.server.accessibility.ColorInversion",
				DefaultType: "software",
			},
			"color_correction": {
				Component:   "com.android.server.accessibility.Daltonizer",
				DefaultType: "software",
			},
			"reduce_bright_colors": {
				Component:   "com.android.server.accessibility.ReduceBrightColors",
				DefaultType: "software",
			},
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}
