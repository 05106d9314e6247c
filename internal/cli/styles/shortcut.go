package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/shortcutctl/internal/domain/entity"
)

// ModeStatus is one row of the status view.
type ModeStatus struct {
	Mode      entity.ShortcutType
	Label     string
	Supported bool
	Enabled   bool
}

// ShortcutStatus is everything the status command shows for a feature.
type ShortcutStatus struct {
	Feature  *entity.Feature
	Modes    []ModeStatus
	Resolved entity.ShortcutType
	Source   string
	Selected entity.ShortcutType
	On       bool
	Summary  string
}

// ShortcutRenderer renders shortcut state with styled output.
type ShortcutRenderer struct {
	theme *Theme
}

// NewShortcutRenderer creates a new shortcut renderer with the given theme.
func NewShortcutRenderer(theme *Theme) *ShortcutRenderer {
	return &ShortcutRenderer{theme: theme}
}

// RenderStatus renders the per-mode state of one feature.
func (r *ShortcutRenderer) RenderStatus(s ShortcutStatus) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s %s\n",
		iconStyle.Render(IconAccessibility),
		r.theme.Title.Render(s.Feature.DisplayName()),
		r.theme.Subtle.Render(s.Feature.ComponentName),
	))

	sb.WriteString(fmt.Sprintf("  Shortcut %s  %s\n\n", r.theme.SwitchBadge(s.On), r.theme.Normal.Render(s.Summary)))

	for _, m := range s.Modes {
		box := IconCheckboxEmpty
		style := r.theme.Normal
		if m.Enabled {
			box = IconCheckboxChecked
			style = r.theme.Highlight
		}
		if !m.Supported {
			style = r.theme.Subtle
		}
		line := fmt.Sprintf("    %s %-11s %s", box, m.Mode.String(), m.Label)
		if !m.Supported {
			line += " (unsupported)"
		}
		sb.WriteString(style.Render(line))
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("\n  %s %s %s\n",
		r.theme.Subtitle.Render("Resolved:"),
		r.theme.Normal.Render(s.Resolved.String()),
		r.theme.SourceBadge(s.Source),
	))
	sb.WriteString(fmt.Sprintf("  %s %s\n",
		r.theme.Subtitle.Render("Selected:"),
		r.theme.Normal.Render(s.Selected.String()),
	))
	return sb.String()
}

// RenderFeatures renders the configured feature list.
func (r *ShortcutRenderer) RenderFeatures(features []*entity.Feature) string {
	if len(features) == 0 {
		return r.theme.Subtle.Render("  No features configured") + "\n"
	}

	var sb strings.Builder
	for _, f := range features {
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconCursor),
			r.theme.Highlight.Render(f.Name),
			r.theme.Subtle.Render(f.ComponentName),
		))
		sb.WriteString(fmt.Sprintf("      modes: %s | default: %s",
			f.SupportedTypes().String(), f.DefaultType.String()))
		if f.HasLegacyType() {
			sb.WriteString(" | legacy key: " + f.LegacyTypeKey)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderSettings renders raw settings rows.
func (r *ShortcutRenderer) RenderSettings(settings []*entity.Setting) string {
	if len(settings) == 0 {
		return r.theme.Subtle.Render("  No settings stored") + "\n"
	}

	width := 0
	for _, s := range settings {
		width = max(width, len(s.Name))
	}

	var sb strings.Builder
	for _, s := range settings {
		sb.WriteString(fmt.Sprintf("  %s  %s\n",
			r.theme.Highlight.Render(fmt.Sprintf("%-*s", width, s.Name)),
			r.theme.Normal.Render(s.Value),
		))
	}
	return sb.String()
}

// RenderSuccess renders a one-line success message.
func (r *ShortcutRenderer) RenderSuccess(msg string) string {
	return fmt.Sprintf("  %s %s", r.theme.SuccessStyle.Render(IconCheck), msg)
}

// RenderError renders an error message.
func (r *ShortcutRenderer) RenderError(err error) string {
	return fmt.Sprintf("  %s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
