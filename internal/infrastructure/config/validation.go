package config

import (
	"fmt"
	"sort"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateStore(config)...)
	validationErrors = append(validationErrors, validateSettingsKeys(config)...)
	validationErrors = append(validationErrors, validateLabels(config)...)
	validationErrors = append(validationErrors, validateFeatures(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateStore(config *Config) []string {
	var validationErrors []string
	switch config.Store.Backend {
	case StoreBackendSQLite:
		if config.Database.Path == "" {
			validationErrors = append(validationErrors, "database.path is required for the sqlite backend")
		}
	case StoreBackendRedis:
		if config.Redis.Addr == "" {
			validationErrors = append(validationErrors, "redis.addr is required for the redis backend")
		}
		if config.Redis.DB < 0 {
			validationErrors = append(validationErrors, "redis.db must be non-negative")
		}
		if config.Redis.MaxRetries < 1 {
			validationErrors = append(validationErrors, "redis.max_retries must be at least 1")
		}
	case StoreBackendPostgres:
		if config.Postgres.DSN == "" {
			validationErrors = append(validationErrors, "postgres.dsn is required for the postgres backend")
		}
	case StoreBackendMemory:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("store.backend must be one of sqlite, redis, postgres, memory (got %q)", config.Store.Backend))
	}
	return validationErrors
}

func validateSettingsKeys(config *Config) []string {
	var validationErrors []string
	keys := config.SettingsKeys
	if keys.SoftwareTargets == "" {
		validationErrors = append(validationErrors, "settings_keys.software_targets cannot be empty")
	}
	if keys.HardwareTargets == "" {
		validationErrors = append(validationErrors, "settings_keys.hardware_targets cannot be empty")
	}
	if keys.SoftwareTargets != "" && keys.SoftwareTargets == keys.HardwareTargets {
		validationErrors = append(validationErrors, "settings_keys.software_targets and hardware_targets must differ")
	}
	return validationErrors
}

func validateLabels(config *Config) []string {
	var validationErrors []string
	if config.Labels.Software == "" {
		validationErrors = append(validationErrors, "labels.software cannot be empty")
	}
	if config.Labels.Hardware == "" {
		validationErrors = append(validationErrors, "labels.hardware cannot be empty")
	}
	if config.Labels.TripleTap == "" {
		validationErrors = append(validationErrors, "labels.triple_tap cannot be empty")
	}
	return validationErrors
}

func validateFeatures(config *Config) []string {
	var validationErrors []string

	names := make([]string, 0, len(config.Features))
	for name := range config.Features {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := featureFromConfig(name, config.Features[name]); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("features.%s: %v", name, err))
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}
