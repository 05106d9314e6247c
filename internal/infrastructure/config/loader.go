package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const envPrefix = "SHORTCUTCTL"

// Manager handles configuration loading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	mu         sync.RWMutex
	configFile string
}

// NewManager creates a new configuration manager reading
// $XDG_CONFIG_HOME/shortcutctl/config.toml.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// SHORTCUTCTL_STORE_BACKEND, SHORTCUTCTL_REDIS_ADDR, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", envPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", envPrefix, err)
	}
	if err := v.BindEnv("logging.format", envPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", envPrefix, err)
	}

	return &Manager{viper: v}, nil
}

// UseConfigFile reads path instead of the XDG config file.
// A missing file is an error rather than being created.
func (m *Manager) UseConfigFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configFile = path
	m.viper.SetConfigFile(path)
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if m.configFile == "" && errors.As(err, &configFileNotFoundError) {
		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
		return nil
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configDir, _ := GetConfigDir()
		configFile = filepath.Join(configDir, configName)
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	switch StoreBackend(strings.ToLower(strings.TrimSpace(string(config.Store.Backend)))) {
	case "", StoreBackendSQLite:
		config.Store.Backend = StoreBackendSQLite
	case StoreBackendRedis:
		config.Store.Backend = StoreBackendRedis
	case StoreBackendPostgres:
		config.Store.Backend = StoreBackendPostgres
	case StoreBackendMemory:
		config.Store.Backend = StoreBackendMemory
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	for name, feature := range config.Features {
		feature.Component = strings.TrimSpace(feature.Component)
		feature.DefaultType = strings.TrimSpace(feature.DefaultType)
		config.Features[name] = feature
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults to the XDG config file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s (TOML format)\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is set dynamically in Load(), no defaults needed

	m.setStoreDefaults(defaults)
	m.setSettingsKeysDefaults(defaults)
	m.setLabelsDefaults(defaults)
	m.setFeatureDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setStoreDefaults(defaults *Config) {
	m.viper.SetDefault("store.backend", string(defaults.Store.Backend))
	m.viper.SetDefault("redis.addr", defaults.Redis.Addr)
	m.viper.SetDefault("redis.password", defaults.Redis.Password)
	m.viper.SetDefault("redis.db", defaults.Redis.DB)
	m.viper.SetDefault("redis.key_prefix", defaults.Redis.KeyPrefix)
	m.viper.SetDefault("redis.max_retries", defaults.Redis.MaxRetries)
	m.viper.SetDefault("postgres.dsn", defaults.Postgres.DSN)
}

func (m *Manager) setSettingsKeysDefaults(defaults *Config) {
	m.viper.SetDefault("settings_keys.software_targets", defaults.SettingsKeys.SoftwareTargets)
	m.viper.SetDefault("settings_keys.hardware_targets", defaults.SettingsKeys.HardwareTargets)
	m.viper.SetDefault("settings_keys.navigation_mode", defaults.SettingsKeys.NavigationMode)
	m.viper.SetDefault("settings_keys.touch_exploration", defaults.SettingsKeys.TouchExploration)
}

func (m *Manager) setLabelsDefaults(defaults *Config) {
	m.viper.SetDefault("labels.software", defaults.Labels.Software)
	m.viper.SetDefault("labels.software_gesture", defaults.Labels.SoftwareGesture)
	m.viper.SetDefault("labels.software_gesture_talkback", defaults.Labels.SoftwareGestureTalkback)
	m.viper.SetDefault("labels.hardware", defaults.Labels.Hardware)
	m.viper.SetDefault("labels.triple_tap", defaults.Labels.TripleTap)
}

// setFeatureDefaults registers each default feature leaf by leaf so that
// features added in the config file merge with the defaults.
func (m *Manager) setFeatureDefaults(defaults *Config) {
	names := make([]string, 0, len(defaults.Features))
	for name := range defaults.Features {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		f := defaults.Features[name]
		prefix := "features." + name + "."
		m.viper.SetDefault(prefix+"component", f.Component)
		m.viper.SetDefault(prefix+"triple_tap_key", f.TripleTapKey)
		m.viper.SetDefault(prefix+"legacy_type_key", f.LegacyTypeKey)
		m.viper.SetDefault(prefix+"default_type", f.DefaultType)
	}
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}
