package theme

import "github.com/charmbracelet/lipgloss"

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorRedSoft = lipgloss.AdaptiveColor{Dark: "#7A2E2E", Light: "#FEB2B2"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorChip    = lipgloss.AdaptiveColor{Dark: "#343A40", Light: "#EDF2F7"}
	ColorChipHi  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for the application title bar.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps overlay content such as help and the send confirmation.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// FieldStyle is the frame around the chips and query input.
var FieldStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Padding(0, 1)

// DropdownStyle is the frame around the suggestion rows.
var DropdownStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Padding(0, 1)

// SuggestionStyle renders an idle suggestion row.
var SuggestionStyle = lipgloss.NewStyle().
	Foreground(ColorWhite)

// SuggestionHoverStyle renders the row under the pointer.
var SuggestionHoverStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorChipHi)

// ChipStyle returns the style for a committed recipient. Invalid addresses
// get the red treatment.
func ChipStyle(valid, hovered bool) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch {
	case valid && hovered:
		return base.Foreground(ColorWhite).Background(ColorChipHi)
	case valid:
		return base.Foreground(ColorWhite).Background(ColorChip)
	case hovered:
		return base.Foreground(ColorWhite).Background(ColorRed)
	default:
		return base.Foreground(ColorWhite).Background(ColorRedSoft)
	}
}

// RemoveControlStyle returns the style of a chip's trailing control.
func RemoveControlStyle(valid, hovered bool) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch {
	case !valid:
		return base.Foreground(ColorWhite).Background(ColorRed)
	case hovered:
		return base.Foreground(ColorWhite)
	default:
		return base.Foreground(ColorGray)
	}
}

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// WarningStyle is used for the invalid-recipient warning.
var WarningStyle = lipgloss.NewStyle().
	Foreground(ColorYellow).
	Bold(true)
