package app

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhle/recipients/internal/directory"
	"github.com/nhle/recipients/internal/draft"
	"github.com/nhle/recipients/internal/keys"
	"github.com/nhle/recipients/internal/model"
	"github.com/nhle/recipients/internal/ui"
	"github.com/nhle/recipients/internal/ui/confirm"
	helpview "github.com/nhle/recipients/internal/ui/help"
	"github.com/nhle/recipients/internal/ui/searchbar"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewCompose ViewState = iota
	ViewHelp
	ViewConfirm
)

// Model is the root Bubble Tea model: it frames the recipient field and
// routes between it, the help overlay and the send confirmation.
type Model struct {
	currentView ViewState
	layout      ui.Layout
	keys        *keys.KeyMap
	searchBar   searchbar.Model
	helpView    helpview.Model
	confirmView confirm.Model
	logger      *zap.Logger
	now         func() time.Time
	ready       bool
	statusMsg   string
	sent        *draft.Draft
}

// New creates the root model searching dir.
func New(dir *directory.Directory, cfg *model.AppConfig, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	k := keys.DefaultKeyMap()

	sb := searchbar.New(dir, k, searchbar.Options{
		Debounce:     cfg.Timing.Debounce(),
		DisplayDelay: cfg.Timing.DisplayDelay(),
		Placeholder:  cfg.Display.Placeholder,
	}, logger)

	return Model{
		currentView: ViewCompose,
		layout:      ui.NewLayout(80, 24),
		keys:        k,
		searchBar:   sb,
		helpView:    helpview.New(k, 80, 24),
		confirmView: confirm.New(80, 24),
		logger:      logger,
		now:         time.Now,
	}
}

// Init starts the recipient field.
func (m Model) Init() tea.Cmd {
	return m.searchBar.Init()
}

// Sent returns the draft produced by a confirmed send, or nil when the
// program ended without sending.
func (m Model) Sent() *draft.Draft {
	return m.sent
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.searchBar.SetSize(contentWidth)
		m.searchBar.SetOrigin(m.layout.ContentOrigin())
		m.helpView.SetSize(contentWidth, contentHeight)
		m.confirmView.SetSize(contentWidth, contentHeight)
		return m, nil

	case confirm.SendConfirmedMsg:
		d := draft.New(m.searchBar.Addresses(), m.now())
		m.sent = &d
		m.logger.Info("draft sent",
			zap.String("message_id", d.ID),
			zap.Int("recipients", len(d.To)),
			zap.Int("invalid", m.searchBar.InvalidCount()),
		)
		return m, tea.Quit

	case confirm.SendCancelledMsg:
		m.currentView = ViewCompose
		return m, m.searchBar.Focus()

	case tea.KeyMsg:
		m.statusMsg = ""

		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit):
			switch m.currentView {
			case ViewHelp:
				m.currentView = ViewCompose
				return m, nil
			case ViewCompose:
				return m, tea.Quit
			}

		case key.Matches(msg, m.keys.Help):
			switch m.currentView {
			case ViewHelp:
				m.currentView = ViewCompose
				return m, nil
			case ViewCompose:
				m.currentView = ViewHelp
				return m, nil
			}

		case key.Matches(msg, m.keys.Send):
			if m.currentView == ViewCompose {
				return m.startSend()
			}
		}
	}

	return m.updateActiveView(msg)
}

// startSend opens the confirmation, or explains why it cannot.
func (m Model) startSend() (tea.Model, tea.Cmd) {
	total := len(m.searchBar.Addresses())
	if total == 0 {
		m.statusMsg = "add at least one recipient first"
		return m, nil
	}

	m.currentView = ViewConfirm
	m.searchBar.Blur()
	return m, m.confirmView.Start(total, m.searchBar.InvalidCount())
}

// updateActiveView dispatches the message to the currently active view.
// Timer messages always reach the recipient field so pending lookups
// settle while an overlay is open.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewCompose:
		m.searchBar, cmd = m.searchBar.Update(msg)
	case ViewHelp:
		if !isInput(msg) {
			m.searchBar, cmd = m.searchBar.Update(msg)
		}
	case ViewConfirm:
		var fieldCmd tea.Cmd
		m.confirmView, cmd = m.confirmView.Update(msg)
		if !isInput(msg) {
			m.searchBar, fieldCmd = m.searchBar.Update(msg)
		}
		cmd = tea.Batch(cmd, fieldCmd)
	}

	return m, cmd
}

func isInput(msg tea.Msg) bool {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		return true
	}
	return false
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Recipients", m.summary())
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, m.renderContent(), statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewHelp:
		return m.helpView.View()
	case ViewConfirm:
		return m.confirmView.View()
	default:
		return m.searchBar.View()
	}
}

// summary returns the header's recipient count.
func (m Model) summary() string {
	total := len(m.searchBar.Addresses())
	invalid := m.searchBar.InvalidCount()

	switch {
	case m.searchBar.Loading():
		return fmt.Sprintf("%d recipients · searching", total)
	case invalid > 0:
		return fmt.Sprintf("%d recipients · %d invalid", total, invalid)
	default:
		return fmt.Sprintf("%d recipients", total)
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}

	switch m.currentView {
	case ViewHelp:
		return "f1 close help | esc back"
	case ViewConfirm:
		return "←/→ choose | enter confirm | esc back"
	default:
		return "tab/enter add | click suggestion | click x remove | ctrl+s send | f1 help | esc quit"
	}
}
