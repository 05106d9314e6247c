package config

// Config represents the complete configuration for shortcutctl.
type Config struct {
	Store    StoreConfig    `mapstructure:"store" yaml:"store" toml:"store"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database"`
	Redis    RedisConfig    `mapstructure:"redis" yaml:"redis" toml:"redis"`
	Postgres PostgresConfig `mapstructure:"postgres" yaml:"postgres" toml:"postgres"`
	// SettingsKeys names the shared settings keys the shortcut state lives in.
	SettingsKeys SettingsKeysConfig `mapstructure:"settings_keys" yaml:"settings_keys" toml:"settings_keys"`
	// Labels are the display names used in shortcut summaries.
	Labels LabelsConfig `mapstructure:"labels" yaml:"labels" toml:"labels"`
	// Features maps a short feature name to its shortcut target definition.
	Features map[string]FeatureConfig `mapstructure:"features" yaml:"features" toml:"features"`
	Logging  LoggingConfig            `mapstructure:"logging" yaml:"logging" toml:"logging"`
}

// StoreBackend selects where settings and the preference cache are kept.
type StoreBackend string

const (
	StoreBackendSQLite   StoreBackend = "sqlite"
	StoreBackendRedis    StoreBackend = "redis"
	StoreBackendPostgres StoreBackend = "postgres"
	StoreBackendMemory   StoreBackend = "memory"
)

// StoreConfig selects the storage backend.
type StoreConfig struct {
	Backend StoreBackend `mapstructure:"backend" yaml:"backend" toml:"backend" jsonschema:"enum=sqlite,enum=redis,enum=postgres,enum=memory"`
}

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/shortcutctl/shortcutctl.sqlite when empty.
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr      string `mapstructure:"addr" yaml:"addr" toml:"addr"`
	Password  string `mapstructure:"password" yaml:"password" toml:"password"`
	DB        int    `mapstructure:"db" yaml:"db" toml:"db"`
	KeyPrefix string `mapstructure:"key_prefix" yaml:"key_prefix" toml:"key_prefix"`
	// MaxRetries bounds optimistic transaction retries on a contended key.
	MaxRetries int `mapstructure:"max_retries" yaml:"max_retries" toml:"max_retries"`
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	DSN string `mapstructure:"dsn" yaml:"dsn" toml:"dsn"`
}

// SettingsKeysConfig names the settings keys.
type SettingsKeysConfig struct {
	SoftwareTargets  string `mapstructure:"software_targets" yaml:"software_targets" toml:"software_targets"`
	HardwareTargets  string `mapstructure:"hardware_targets" yaml:"hardware_targets" toml:"hardware_targets"`
	NavigationMode   string `mapstructure:"navigation_mode" yaml:"navigation_mode" toml:"navigation_mode"`
	TouchExploration string `mapstructure:"touch_exploration" yaml:"touch_exploration" toml:"touch_exploration"`
}

// LabelsConfig holds the display name of each shortcut mode.
type LabelsConfig struct {
	Software                string `mapstructure:"software" yaml:"software" toml:"software"`
	SoftwareGesture         string `mapstructure:"software_gesture" yaml:"software_gesture" toml:"software_gesture"`
	SoftwareGestureTalkback string `mapstructure:"software_gesture_talkback" yaml:"software_gesture_talkback" toml:"software_gesture_talkback"`
	Hardware                string `mapstructure:"hardware" yaml:"hardware" toml:"hardware"`
	TripleTap               string `mapstructure:"triple_tap" yaml:"triple_tap" toml:"triple_tap"`
}

// FeatureConfig describes one feature that can be bound to shortcuts.
type FeatureConfig struct {
	// Component is the flattened component name stored in the target lists.
	Component string `mapstructure:"component" yaml:"component" toml:"component"`
	// TripleTapKey enables the triple-tap mode for this feature when set.
	TripleTapKey string `mapstructure:"triple_tap_key" yaml:"triple_tap_key" toml:"triple_tap_key"`
	// LegacyTypeKey is an optional int key that mirrors the chosen bitmask.
	LegacyTypeKey string `mapstructure:"legacy_type_key" yaml:"legacy_type_key" toml:"legacy_type_key"`
	// DefaultType is used until the user picks shortcut types, e.g. "software".
	DefaultType string `mapstructure:"default_type" yaml:"default_type" toml:"default_type"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" jsonschema:"enum=console,enum=json"`
}
