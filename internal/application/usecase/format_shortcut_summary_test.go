package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/shortcutctl/internal/application/usecase"
	"github.com/bnema/shortcutctl/internal/domain/entity"
)

func TestFormatShortcutSummary(t *testing.T) {
	labels := entity.ShortcutLabels{
		Software:  "software",
		Hardware:  "hardware",
		TripleTap: "triple tap",
	}

	tests := []struct {
		name  string
		types entity.ShortcutType
		want  string
	}{
		{name: "software and hardware", types: entity.ShortcutTypeSoftware | entity.ShortcutTypeHardware, want: "Software, Hardware"},
		{name: "empty shows software", types: entity.ShortcutTypeDefault, want: "Software"},
		{name: "fixed order", types: entity.ShortcutTypeTripleTap | entity.ShortcutTypeSoftware, want: "Software, triple tap"},
		{name: "hardware only", types: entity.ShortcutTypeHardware, want: "Hardware"},
		{name: "all", types: entity.ShortcutTypeMask, want: "Software, hardware, triple tap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, usecase.FormatShortcutSummary(tt.types, labels))
		})
	}
}

func TestFormatShortcutSummary_MultibyteFirstRune(t *testing.T) {
	labels := entity.ShortcutLabels{Software: "écran", Hardware: "volume"}
	assert.Equal(t, "Écran", usecase.FormatShortcutSummary(entity.ShortcutTypeSoftware, labels))
}
