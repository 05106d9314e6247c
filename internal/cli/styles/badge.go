package styles

// Badge renders styled metadata badges.

// SwitchBadge renders an on/off badge.
func (t *Theme) SwitchBadge(on bool) string {
	if on {
		return t.Badge.Render("on")
	}
	return t.BadgeMuted.Render("off")
}

// SourceBadge renders where a resolved value came from.
func (t *Theme) SourceBadge(source string) string {
	if source == "" {
		source = "unknown"
	}
	return t.BadgeMuted.Render(source)
}
