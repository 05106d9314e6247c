package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "" // check
	IconX        = "" // x
	IconWarning  = "" // warning
	IconInfo     = "" // info
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconCursor   = "" // chevron-right

	IconCheckboxEmpty   = "" // unchecked
	IconCheckboxChecked = "" // checked

	IconAccessibility = "" // universal access
)
