// Package confirm asks the user to confirm sending to the committed
// recipients, warning about addresses that fail validation.
package confirm

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// SendConfirmedMsg signals that the user accepted sending.
type SendConfirmedMsg struct{}

// SendCancelledMsg signals that the user backed out.
type SendCancelledMsg struct{}

// Model wraps a huh confirmation form.
type Model struct {
	form    *huh.Form
	confirm *bool
	width   int
	height  int
}

// New creates an idle confirmation view.
func New(width, height int) Model {
	return Model{
		confirm: new(bool),
		width:   width,
		height:  height,
	}
}

// Description returns the warning line for total recipients of which
// invalid fail validation.
func Description(total, invalid int) string {
	switch {
	case invalid == 0:
		return "All addresses look valid."
	case invalid == 1:
		return "1 address does not look like an email address. It will be sent as typed."
	default:
		return fmt.Sprintf(
			"%d addresses do not look like email addresses. They will be sent as typed.",
			invalid,
		)
	}
}

// Title returns the question asked for total recipients.
func Title(total int) string {
	if total == 1 {
		return "Send to 1 recipient?"
	}
	return fmt.Sprintf("Send to %d recipients?", total)
}

// Start builds a fresh form for the given counts. The answer defaults to
// Send only when every address looks valid.
func (m *Model) Start(total, invalid int) tea.Cmd {
	*m.confirm = invalid == 0

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(Title(total)).
				Description(Description(total, invalid)).
				Affirmative("Send").
				Negative("Back").
				Value(m.confirm),
		),
	).WithWidth(m.formWidth()).WithShowHelp(false)

	return m.form.Init()
}

// Update forwards messages to the form and reports its outcome.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.form = nil
		return m, func() tea.Msg { return SendCancelledMsg{} }
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.form = nil
		if *m.confirm {
			return m, func() tea.Msg { return SendConfirmedMsg{} }
		}
		return m, func() tea.Msg { return SendCancelledMsg{} }
	case huh.StateAborted:
		m.form = nil
		return m, func() tea.Msg { return SendCancelledMsg{} }
	}

	return m, cmd
}

// Active reports whether a confirmation is in progress.
func (m Model) Active() bool {
	return m.form != nil
}

// View renders the form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.form != nil {
		m.form = m.form.WithWidth(m.formWidth())
	}
}

func (m Model) formWidth() int {
	return min(max(m.width-4, 40), 100)
}
