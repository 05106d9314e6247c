package entity

// ShortcutLabels holds the display names of each shortcut mode.
type ShortcutLabels struct {
	Software                string
	SoftwareGesture         string
	SoftwareGestureTalkback string
	Hardware                string
	TripleTap               string
}

// DefaultShortcutLabels returns the stock English labels.
func DefaultShortcutLabels() ShortcutLabels {
	return ShortcutLabels{
		Software:                "tap accessibility button",
		SoftwareGesture:         "swipe up with 2 fingers from bottom",
		SoftwareGestureTalkback: "swipe up with 3 fingers from bottom",
		Hardware:                "hold volume keys",
		TripleTap:               "triple-tap screen",
	}
}

// SoftwareFor picks the software label for the current navigation state.
// Gesture navigation replaces the button; touch exploration needs one more finger.
func (l ShortcutLabels) SoftwareFor(gestureNavigation, touchExploration bool) string {
	if !gestureNavigation {
		return l.Software
	}
	if touchExploration && l.SoftwareGestureTalkback != "" {
		return l.SoftwareGestureTalkback
	}
	if l.SoftwareGesture != "" {
		return l.SoftwareGesture
	}
	return l.Software
}

// WithSoftware returns a copy whose Software label is replaced.
func (l ShortcutLabels) WithSoftware(label string) ShortcutLabels {
	l.Software = label
	return l
}
