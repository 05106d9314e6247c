package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path and the active store.
func (r *ConfigRenderer) RenderConfigInfo(path, backend, location string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	out := fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
	out += fmt.Sprintf("  %s Store  %s", iconStyle.Render(IconDatabase), r.theme.Highlight.Render(backend))
	if location != "" {
		out += " " + r.theme.Subtle.Render(location)
	}
	return out + "\n"
}
