package usecase

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bnema/shortcutctl/internal/domain/entity"
)

const summaryDelimiter = ", "

// FormatShortcutSummary joins the labels of the modes in t, in display order,
// and capitalizes the first letter. An empty set shows the software label:
// a feature that was never configured is presented as using the button.
func FormatShortcutSummary(t entity.ShortcutType, labels entity.ShortcutLabels) string {
	parts := make([]string, 0, len(entity.ShortcutModes))
	if t.Has(entity.ShortcutTypeSoftware) {
		parts = append(parts, labels.Software)
	}
	if t.Has(entity.ShortcutTypeHardware) {
		parts = append(parts, labels.Hardware)
	}
	if t.Has(entity.ShortcutTypeTripleTap) {
		parts = append(parts, labels.TripleTap)
	}

	if len(parts) == 0 {
		parts = append(parts, labels.Software)
	}

	return capitalize(strings.Join(parts, summaryDelimiter))
}

// capitalize upper-cases the first rune only.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
