package models

import "fmt"

// Theme is the display theme of the presentation layer.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used for clients that never saved a preference.
const DefaultTheme = ThemeLight

// ParseTheme validates a theme name.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("unknown theme %q", s)
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Preference is the saved display preference of one client.
type Preference struct {
	// ClientID identifies the browser or device (UUID format).
	ClientID string

	// Theme is the chosen display theme.
	Theme Theme

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64
}
