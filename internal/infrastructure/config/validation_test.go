package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Database.Path = "/tmp/shortcutctl.sqlite"
	return cfg
}

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, validateConfig(validConfig()))
}

func TestValidateConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "unknown backend",
			mutate: func(c *Config) { c.Store.Backend = "etcd" },
			want:   "store.backend must be one of",
		},
		{
			name:   "redis without addr",
			mutate: func(c *Config) { c.Store.Backend = StoreBackendRedis; c.Redis.Addr = "" },
			want:   "redis.addr is required",
		},
		{
			name:   "redis without retries",
			mutate: func(c *Config) { c.Store.Backend = StoreBackendRedis; c.Redis.MaxRetries = 0 },
			want:   "redis.max_retries must be at least 1",
		},
		{
			name:   "same target keys",
			mutate: func(c *Config) { c.SettingsKeys.HardwareTargets = c.SettingsKeys.SoftwareTargets },
			want:   "must differ",
		},
		{
			name:   "empty label",
			mutate: func(c *Config) { c.Labels.TripleTap = "" },
			want:   "labels.triple_tap cannot be empty",
		},
		{
			name: "triple tap default without key",
			mutate: func(c *Config) {
				c.Features["color_inversion"] = FeatureConfig{Component: "app/Inv", DefaultType: "triple_tap"}
			},
			want: "features.color_inversion",
		},
		{
			name: "unknown default type",
			mutate: func(c *Config) {
				c.Features["x"] = FeatureConfig{Component: "app/X", DefaultType: "shake"}
			},
			want: "features.x: default_type",
		},
		{
			name:   "bad log format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
			want:   "logging.format must be console or json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
