// Package suggestions implements the dropdown that shows directory matches
// under the recipient field after an artificial lookup delay.
package suggestions

import (
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/recipients/internal/theme"
)

// Host is the owner of the query field. The panel reports its effects
// through it and never touches the owner's state directly.
type Host interface {
	SetQuery(query string)
	SetLoading(loading bool)
	AppendRecipient(address string)
}

// State is the panel's display state.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateDisplayed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateDisplayed:
		return "displayed"
	default:
		return "idle"
	}
}

// revealMsg delivers a presented set once the display delay has elapsed.
type revealMsg struct {
	token int
	items []string
}

// Model is the suggestion dropdown.
type Model struct {
	delay    time.Duration
	token    int
	revealed int
	shown    []string
	hover    int
	width    int
}

// New creates an empty panel that reveals presented sets after delay.
func New(delay time.Duration) Model {
	return Model{
		delay: delay,
		hover: -1,
	}
}

// Present hands the panel a new suggestion set. The host is told that a
// lookup is in progress and the set is revealed after the display delay.
// Only the most recently presented set is ever revealed.
func (m *Model) Present(items []string, host Host) tea.Cmd {
	m.token++
	tok := m.token
	items = slices.Clone(items)

	host.SetLoading(true)

	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return revealMsg{token: tok, items: items}
	})
}

// Update handles reveal messages. Anything else is ignored.
func (m *Model) Update(msg tea.Msg, host Host) tea.Cmd {
	switch msg := msg.(type) {
	case revealMsg:
		if msg.token != m.token {
			return nil
		}
		m.revealed = msg.token
		m.shown = msg.items
		m.hover = -1
		host.SetLoading(false)
	}
	return nil
}

// Select commits the row at index: the dropdown closes, the row text is
// appended to the host's recipients and the host's query is cleared.
// It reports false when index is out of range.
func (m *Model) Select(index int, host Host) bool {
	if index < 0 || index >= len(m.shown) {
		return false
	}
	address := m.shown[index]

	m.shown = nil
	m.hover = -1
	host.AppendRecipient(address)
	host.SetQuery("")
	return true
}

// State returns the current display state.
func (m Model) State() State {
	switch {
	case m.revealed != m.token:
		return StateLoading
	case len(m.shown) > 0:
		return StateDisplayed
	default:
		return StateIdle
	}
}

// Displayed returns a copy of the rows currently shown.
func (m Model) Displayed() []string {
	return slices.Clone(m.shown)
}

// SetWidth sets the outer width of the dropdown.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetHover highlights the row at index; -1 clears the highlight.
func (m *Model) SetHover(index int) {
	if index < -1 || index >= len(m.shown) {
		index = -1
	}
	m.hover = index
}

// The dropdown has a one-cell border and one column of padding.
const (
	chromeX = 2
	chromeY = 1
)

// RowAt maps a position relative to the dropdown's top-left corner to a
// row index, or -1 when the position is not on a row.
func (m Model) RowAt(x, y int) int {
	if len(m.shown) == 0 {
		return -1
	}
	row := y - chromeY
	if row < 0 || row >= len(m.shown) {
		return -1
	}
	if x < chromeX || x >= m.outerWidth()-chromeX {
		return -1
	}
	return row
}

func (m Model) outerWidth() int {
	w := m.width
	widest := 0
	for _, s := range m.shown {
		widest = max(widest, lipgloss.Width(s))
	}
	return max(w, widest+2*chromeX)
}

// View renders the dropdown, or nothing when there is nothing to show.
func (m Model) View() string {
	if len(m.shown) == 0 {
		return ""
	}

	inner := m.outerWidth() - 2*chromeX
	rows := make([]string, len(m.shown))
	for i, s := range m.shown {
		style := theme.SuggestionStyle
		if i == m.hover {
			style = theme.SuggestionHoverStyle
		}
		rows[i] = style.Width(inner).Render(s)
	}

	return theme.DropdownStyle.
		Width(inner + 2).
		Render(strings.Join(rows, "\n"))
}
