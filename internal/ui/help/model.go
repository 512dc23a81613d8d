package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/recipients/internal/keys"
	"github.com/nhle/recipients/internal/theme"
)

var usage = []string{
	"Type to search the directory. Suggestions appear after a short pause.",
	"tab adds the first suggestion, or what you typed when nothing matches.",
	"enter does the same but only while the field has text.",
	"Click a suggestion to add it. Click ! or x on a recipient to remove it.",
	"Recipients marked ! do not look like email addresses; they are kept anyway.",
}

// Model is the help overlay: key bindings followed by usage notes.
type Model struct {
	keys  *keys.KeyMap
	help  help.Model
	width int
}

func New(k *keys.KeyMap, width, height int) Model {
	m := Model{keys: k, help: help.New()}
	m.help.ShowAll = true
	m.SetSize(width, height)
	return m
}

func (m Model) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		Render("Keyboard Shortcuts")

	inner := max(m.width-4, 0)
	notes := lipgloss.NewStyle().Width(max(inner-4, 0)).Render(
		theme.HelpStyle.Render(strings.Join(usage, "\n")))

	return theme.PanelStyle.Width(inner).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		m.help.View(m.keys),
		"",
		notes,
	))
}

// SetSize updates the overlay width; height is unused since the content
// is short.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.help.Width = max(width-4, 0)
}
