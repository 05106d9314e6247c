package entity_test

import (
	"testing"

	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortcutEditSession_EmptyStartSelectsSoftware(t *testing.T) {
	s := entity.NewShortcutEditSession(entity.ShortcutTypeDefault, entity.ShortcutTypeMask)
	assert.Equal(t, entity.ShortcutTypeSoftware, s.Pending())
}

func TestShortcutEditSession_DropsUnsupportedBits(t *testing.T) {
	supported := entity.ShortcutTypeSoftware | entity.ShortcutTypeHardware
	s := entity.NewShortcutEditSession(entity.ShortcutTypeHardware|entity.ShortcutTypeTripleTap, supported)

	assert.Equal(t, entity.ShortcutTypeHardware, s.Pending())
	assert.False(t, s.IsEnabled(entity.ShortcutTypeTripleTap))
	assert.ErrorIs(t, s.Toggle(entity.ShortcutTypeTripleTap), entity.ErrUnsupportedShortcutType)
}

func TestShortcutEditSession_LastCheckedModeIsLocked(t *testing.T) {
	s := entity.NewShortcutEditSession(entity.ShortcutTypeSoftware|entity.ShortcutTypeHardware, entity.ShortcutTypeMask)

	assert.True(t, s.IsEnabled(entity.ShortcutTypeSoftware))
	assert.True(t, s.IsEnabled(entity.ShortcutTypeHardware))

	require.NoError(t, s.Toggle(entity.ShortcutTypeSoftware))
	assert.False(t, s.IsChecked(entity.ShortcutTypeSoftware))
	assert.False(t, s.IsEnabled(entity.ShortcutTypeHardware), "only checked mode must be locked")
	assert.True(t, s.IsEnabled(entity.ShortcutTypeTripleTap))

	assert.Error(t, s.Toggle(entity.ShortcutTypeHardware))
	assert.Equal(t, entity.ShortcutTypeHardware, s.Pending())

	require.NoError(t, s.Toggle(entity.ShortcutTypeTripleTap))
	assert.True(t, s.IsEnabled(entity.ShortcutTypeHardware))
	assert.Equal(t, entity.ShortcutTypeHardware|entity.ShortcutTypeTripleTap, s.Pending())
}

func TestShortcutEditSession_Select(t *testing.T) {
	s := entity.NewShortcutEditSession(entity.ShortcutTypeSoftware, entity.ShortcutTypeSoftware|entity.ShortcutTypeHardware)

	require.NoError(t, s.Select(entity.ShortcutTypeHardware))
	assert.Equal(t, entity.ShortcutTypeHardware, s.Pending())

	assert.Error(t, s.Select(entity.ShortcutTypeDefault))
	assert.ErrorIs(t, s.Select(entity.ShortcutTypeTripleTap), entity.ErrUnsupportedShortcutType)
	assert.ErrorIs(t, s.Select(entity.ShortcutType(16)), entity.ErrInvalidShortcutType)
	assert.ErrorIs(t, s.Toggle(entity.ShortcutTypeSoftware|entity.ShortcutTypeHardware), entity.ErrInvalidShortcutType)
}

func TestShortcutLabels_SoftwareFor(t *testing.T) {
	labels := entity.DefaultShortcutLabels()

	assert.Equal(t, labels.Software, labels.SoftwareFor(false, true))
	assert.Equal(t, labels.SoftwareGesture, labels.SoftwareFor(true, false))
	assert.Equal(t, labels.SoftwareGestureTalkback, labels.SoftwareFor(true, true))

	bare := entity.ShortcutLabels{Software: "button"}
	assert.Equal(t, "button", bare.SoftwareFor(true, true))
}

func TestFeature_SupportedTypes(t *testing.T) {
	f := entity.NewFeature("daltonizer", "com.android.server.accessibility/ColorCorrection")
	require.NoError(t, f.Validate())
	assert.Equal(t, entity.ShortcutTypeSoftware|entity.ShortcutTypeHardware, f.SupportedTypes())

	f.TripleTapKey = "accessibility_display_magnification_enabled"
	assert.Equal(t, entity.ShortcutTypeMask, f.SupportedTypes())

	bad := entity.NewFeature("bad", "pkg/Cls:extra")
	assert.ErrorIs(t, bad.Validate(), entity.ErrInvalidFeature)
	assert.ErrorIs(t, (&entity.Feature{}).Validate(), entity.ErrInvalidFeature)
}
