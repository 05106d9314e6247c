package entity_test

import (
	"testing"

	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserShortcutType_Flatten(t *testing.T) {
	u := entity.NewUserShortcutType("com.example/.Service", entity.ShortcutTypeSoftware|entity.ShortcutTypeHardware)
	assert.Equal(t, "com.example/.Service:3", u.Flatten())
	assert.False(t, u.UpdatedAt.IsZero())
}

func TestParseUserShortcutType(t *testing.T) {
	u, err := entity.ParseUserShortcutType("com.android.server.accessibility.MagnificationController:5")
	require.NoError(t, err)
	assert.Equal(t, "com.android.server.accessibility.MagnificationController", u.ComponentName)
	assert.Equal(t, entity.ShortcutTypeSoftware|entity.ShortcutTypeTripleTap, u.Type)
}

func TestParseUserShortcutType_Malformed(t *testing.T) {
	for _, in := range []string{"", "noseparator", ":3", "pkg/Cls:", "pkg/Cls:abc", "pkg/Cls:64"} {
		t.Run(in, func(t *testing.T) {
			_, err := entity.ParseUserShortcutType(in)
			assert.ErrorIs(t, err, entity.ErrMalformedUserShortcutType)
		})
	}
}

func TestParseUserShortcutTypeFor(t *testing.T) {
	u, err := entity.ParseUserShortcutTypeFor("pkg/Foo", "pkg/Foo:2")
	require.NoError(t, err)
	assert.Equal(t, entity.ShortcutTypeHardware, u.Type)

	_, err = entity.ParseUserShortcutTypeFor("pkg/Foo", "pkg/Bar:2")
	assert.ErrorIs(t, err, entity.ErrMalformedUserShortcutType)

	_, err = entity.ParseUserShortcutTypeFor("pkg/Foo", "pkg/Foo:garbage")
	assert.ErrorIs(t, err, entity.ErrMalformedUserShortcutType)
}
