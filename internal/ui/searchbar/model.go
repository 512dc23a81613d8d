// Package searchbar implements the recipient field: a query input with
// debounced directory suggestions and a list of committed recipient chips.
package searchbar

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/nhle/recipients/internal/directory"
	"github.com/nhle/recipients/internal/keys"
	"github.com/nhle/recipients/internal/recipient"
	"github.com/nhle/recipients/internal/theme"
	"github.com/nhle/recipients/internal/ui/suggestions"
)

// debounceMsg commits a query once the input has been quiet long enough.
type debounceMsg struct {
	token int
	query string
}

// Options tunes the field's timing and text.
type Options struct {
	Debounce     time.Duration
	DisplayDelay time.Duration
	Placeholder  string
}

// Model is the recipient field. It owns the query, the suggestion set and
// the committed recipients; the dropdown only reports back through the
// suggestions.Host methods.
type Model struct {
	keys   *keys.KeyMap
	dir    *directory.Directory
	logger *zap.Logger

	input      textinput.Model
	spinner    spinner.Model
	panel      suggestions.Model
	recipients recipient.List

	debounce      time.Duration
	debounceToken int
	committed     string
	suggestions   []string
	loading       bool

	hoverChip int
	originX   int
	originY   int
	width     int
}

var _ suggestions.Host = (*Model)(nil)

// New creates a focused recipient field searching dir.
func New(
	dir *directory.Directory,
	k *keys.KeyMap,
	opts Options,
	logger *zap.Logger,
) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.Prompt = ""
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.ColorBlue)

	m := Model{
		keys:        k,
		dir:         dir,
		logger:      logger,
		input:       ti,
		spinner:     sp,
		panel:       suggestions.New(opts.DisplayDelay),
		debounce:    opts.Debounce,
		suggestions: []string{},
		hoverChip:   -1,
	}
	m.SetSize(80)
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key, mouse and timer messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	before := m.input.Value()
	wasLoading := m.loading
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case debounceMsg:
		cmds = append(cmds, m.applyDebounce(msg))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Complete):
			// Tab never moves focus.
			m.commit()
		case key.Matches(msg, m.keys.Commit):
			if m.input.Value() != "" {
				m.commit()
			}
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		cmds = append(cmds, m.panel.Update(msg, &m))
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.input.Value() != before {
		cmds = append(cmds, m.scheduleDebounce())
	}
	if m.loading && !wasLoading {
		cmds = append(cmds, m.spinner.Tick)
	}

	return m, tea.Batch(cmds...)
}

// scheduleDebounce arms a commit of the current query. Any earlier armed
// commit becomes stale.
func (m *Model) scheduleDebounce() tea.Cmd {
	m.debounceToken++
	tok := m.debounceToken
	q := m.input.Value()
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return debounceMsg{token: tok, query: q}
	})
}

// applyDebounce commits msg's query if it is the latest one and differs
// from the committed query, recomputing the suggestion set.
func (m *Model) applyDebounce(msg debounceMsg) tea.Cmd {
	if msg.token != m.debounceToken || msg.query == m.committed {
		return nil
	}

	m.committed = msg.query
	m.suggestions = m.dir.Suggest(msg.query)
	m.logger.Debug("query committed",
		zap.String("query", msg.query),
		zap.Int("suggestions", len(m.suggestions)),
	)
	return m.panel.Present(m.suggestions, m)
}

// commit adds the first suggestion, or the raw query when there is none,
// and clears the query.
func (m *Model) commit() {
	switch q := m.input.Value(); {
	case len(m.suggestions) > 0:
		m.AppendRecipient(m.suggestions[0])
	case q != "":
		m.AppendRecipient(q)
	}
	m.SetQuery("")
}

// SetQuery replaces the query text.
func (m *Model) SetQuery(query string) {
	m.input.SetValue(query)
	m.input.CursorEnd()
}

// SetLoading shows or hides the loading indicator.
func (m *Model) SetLoading(loading bool) {
	m.loading = loading
}

// AppendRecipient commits address as a recipient chip.
func (m *Model) AppendRecipient(address string) {
	m.recipients.Append(address)
	m.logger.Debug("recipient added",
		zap.String("address", address),
		zap.Bool("valid", recipient.IsValid(address)),
	)
}

// Remove deletes every chip equal to address.
func (m *Model) Remove(address string) {
	n := m.recipients.Remove(address)
	m.hoverChip = -1
	m.logger.Debug("recipient removed",
		zap.String("address", address),
		zap.Int("count", n),
	)
}

// Query returns the current raw query text.
func (m Model) Query() string {
	return m.input.Value()
}

// CommittedQuery returns the last debounced query.
func (m Model) CommittedQuery() string {
	return m.committed
}

// Suggestions returns a copy of the current suggestion set.
func (m Model) Suggestions() []string {
	out := make([]string, len(m.suggestions))
	copy(out, m.suggestions)
	return out
}

// Loading reports whether the dropdown is waiting to show results.
func (m Model) Loading() bool {
	return m.loading
}

// Recipients returns the committed recipients with their validity.
func (m Model) Recipients() []recipient.Entry {
	return m.recipients.Entries()
}

// Addresses returns the committed recipients in order.
func (m Model) Addresses() []string {
	return m.recipients.Addresses()
}

// InvalidCount returns how many committed recipients fail validation.
func (m Model) InvalidCount() int {
	return m.recipients.InvalidCount()
}

// PanelState returns the dropdown's display state.
func (m Model) PanelState() suggestions.State {
	return m.panel.State()
}

// SetSize updates the field's outer width.
func (m *Model) SetSize(width int) {
	m.width = width
	m.panel.SetWidth(width * 2 / 3)
}

// SetOrigin records where the field is drawn on screen so mouse events
// can be mapped onto chips and rows.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// Focus gives keyboard focus to the query input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes keyboard focus from the query input.
func (m *Model) Blur() {
	m.input.Blur()
}
