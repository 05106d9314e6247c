package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/shortcutctl/internal/cli/styles"
	"github.com/bnema/shortcutctl/internal/domain/entity"
)

func TestShortcutRenderer_RenderStatus(t *testing.T) {
	r := styles.NewShortcutRenderer(styles.NewTheme())
	feature := entity.NewFeature("magnification", "app/Magnifier")

	out := r.RenderStatus(styles.ShortcutStatus{
		Feature: feature,
		Modes: []styles.ModeStatus{
			{Mode: entity.ShortcutTypeSoftware, Label: "tap accessibility button", Supported: true, Enabled: true},
			{Mode: entity.ShortcutTypeTripleTap, Label: "triple-tap screen"},
		},
		Resolved: entity.ShortcutTypeSoftware,
		Source:   "settings",
		Selected: entity.ShortcutTypeSoftware,
		On:       true,
		Summary:  "Tap accessibility button",
	})

	require.Contains(t, out, "magnification")
	require.Contains(t, out, "app/Magnifier")
	assert.Contains(t, out, "Tap accessibility button")
	assert.Contains(t, out, "(unsupported)")
	assert.Contains(t, out, "settings")
}

func TestShortcutRenderer_RenderFeatures(t *testing.T) {
	r := styles.NewShortcutRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderFeatures(nil), "No features configured")

	f := entity.NewFeature("reader", "app/Reader")
	f.LegacyTypeKey = "reader_type"
	out := r.RenderFeatures([]*entity.Feature{f})
	assert.Contains(t, out, "reader")
	assert.Contains(t, out, "software,hardware")
	assert.Contains(t, out, "legacy key: reader_type")
}

func TestShortcutRenderer_RenderSettingsAndErrors(t *testing.T) {
	r := styles.NewShortcutRenderer(styles.NewTheme())

	out := r.RenderSettings([]*entity.Setting{{Name: "accessibility_button_targets", Value: "a/A:b/B"}})
	assert.Contains(t, out, "accessibility_button_targets")
	assert.Contains(t, out, "a/A:b/B")
	assert.Contains(t, r.RenderSettings(nil), "No settings stored")

	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
	assert.Contains(t, r.RenderSuccess("done"), "done")
}

func TestConfigRenderer_RenderConfigInfo(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderConfigInfo("/tmp/shortcutctl/config.toml", "sqlite", "/tmp/shortcutctl.sqlite")
	require.Contains(t, out, "config.toml")
	require.Contains(t, out, "sqlite")
	require.Contains(t, out, "/tmp/shortcutctl.sqlite")
}

func TestTheme_Badges(t *testing.T) {
	theme := styles.NewTheme()

	assert.Contains(t, theme.SwitchBadge(true), "on")
	assert.Contains(t, theme.SwitchBadge(false), "off")
	assert.Contains(t, theme.SourceBadge("preference_cache"), "preference_cache")
	assert.Contains(t, theme.SourceBadge(""), "unknown")
}
