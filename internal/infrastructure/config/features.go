package config

import (
	"fmt"
	"sort"

	"github.com/bnema/shortcutctl/internal/domain/entity"
)

// featureFromConfig converts one [features.<name>] table into a domain feature.
// An empty default_type means software.
func featureFromConfig(name string, fc FeatureConfig) (*entity.Feature, error) {
	feature := entity.NewFeature(name, fc.Component)
	feature.TripleTapKey = fc.TripleTapKey
	feature.LegacyTypeKey = fc.LegacyTypeKey

	if fc.DefaultType != "" {
		t, err := entity.ParseShortcutType(fc.DefaultType)
		if err != nil {
			return nil, fmt.Errorf("default_type: %w", err)
		}
		if unsupported := t &^ feature.SupportedTypes(); unsupported != 0 {
			return nil, fmt.Errorf("default_type: %w: %s needs triple_tap_key", entity.ErrUnsupportedShortcutType, unsupported)
		}
		feature.DefaultType = t
	}

	if err := feature.Validate(); err != nil {
		return nil, err
	}
	return feature, nil
}

// FeatureList returns every configured feature, sorted by name.
func (c *Config) FeatureList() ([]*entity.Feature, error) {
	names := make([]string, 0, len(c.Features))
	for name := range c.Features {
		names = append(names, name)
	}
	sort.Strings(names)

	features := make([]*entity.Feature, 0, len(names))
	for _, name := range names {
		feature, err := featureFromConfig(name, c.Features[name])
		if err != nil {
			return nil, fmt.Errorf("features.%s: %w", name, err)
		}
		features = append(features, feature)
	}
	return features, nil
}

// Feature returns the configured feature called name, or false.
func (c *Config) Feature(name string) (*entity.Feature, bool, error) {
	fc, ok := c.Features[name]
	if !ok {
		return nil, false, nil
	}
	feature, err := featureFromConfig(name, fc)
	if err != nil {
		return nil, true, fmt.Errorf("features.%s: %w", name, err)
	}
	return feature, true, nil
}

// ShortcutKeys returns the target list keys.
func (c *Config) ShortcutKeys() entity.ShortcutSettingsKeys {
	return entity.ShortcutSettingsKeys{
		SoftwareTargets: c.SettingsKeys.SoftwareTargets,
		HardwareTargets: c.SettingsKeys.HardwareTargets,
	}
}

// ShortcutLabels returns the display labels of each mode.
func (c *Config) ShortcutLabels() entity.ShortcutLabels {
	return entity.ShortcutLabels{
		Software:                c.Labels.Software,
		SoftwareGesture:         c.Labels.SoftwareGesture,
		SoftwareGestureTalkback: c.Labels.SoftwareGestureTalkback,
		Hardware:                c.Labels.Hardware,
		TripleTap:               c.Labels.TripleTap,
	}
}
