package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nhle/recipients/internal/directory"
	"github.com/nhle/recipients/internal/model"
	"github.com/nhle/recipients/internal/ui/confirm"
)

func newTestApp(t *testing.T) Model {
	t.Helper()

	m := New(directory.New([]string{"alice@x.com", "bob@x.com"}), model.DefaultAppConfig(), zap.NewNop())
	m.now = func() time.Time { return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) }

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func typeAndCommit(m Model, s string) Model {
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestViewBeforeSize(t *testing.T) {
	m := New(directory.Default(), model.DefaultAppConfig(), nil)
	assert.Equal(t, "Loading...", m.View())
}

func TestViewShowsFrame(t *testing.T) {
	m := newTestApp(t)

	out := m.View()

	assert.Contains(t, out, "Recipients")
	assert.Contains(t, out, "0 recipients")
	assert.Contains(t, out, "Search Recipients...")
	assert.Contains(t, out, "ctrl+s send")
}

func TestTypingReachesField(t *testing.T) {
	m := newTestApp(t)

	m = typeAndCommit(m, "zzz")

	assert.Equal(t, []string{"zzz"}, m.searchBar.Addresses())
	assert.Contains(t, m.View(), "1 recipients · 1 invalid")
}

func TestHelpToggle(t *testing.T) {
	m := newTestApp(t)

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyF1})
	require.Equal(t, ViewHelp, m.currentView)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	// Typing while help is open does not reach the field.
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})
	assert.Equal(t, "", m.searchBar.Query())

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewCompose, m.currentView)
}

func TestQuitKeys(t *testing.T) {
	m := newTestApp(t)

	_, cmd := send(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, isQuit(cmd))

	_, cmd = send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, isQuit(cmd))
}

func TestSendWithoutRecipients(t *testing.T) {
	m := newTestApp(t)

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.Equal(t, ViewCompose, m.currentView)
	assert.Contains(t, m.View(), "add at least one recipient first")
}

func TestSendFlow(t *testing.T) {
	m := newTestApp(t)
	m = typeAndCommit(m, "carol@x.com")
	m = typeAndCommit(m, "zzz")

	m, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.Equal(t, ViewConfirm, m.currentView)
	assert.True(t, m.confirmView.Active())
	assert.NotNil(t, cmd)

	m, cmd = send(m, confirm.SendConfirmedMsg{})

	assert.True(t, isQuit(cmd))
	require.NotNil(t, m.Sent())
	assert.Equal(t, []string{"carol@x.com", "zzz"}, m.Sent().To)
	assert.Equal(t, m.now(), m.Sent().Date)
}

func TestSendCancelledReturnsToField(t *testing.T) {
	m := newTestApp(t)
	m = typeAndCommit(m, "carol@x.com")
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.confirmView.Active())

	m, _ = send(m, confirm.SendCancelledMsg{})

	assert.Equal(t, ViewCompose, m.currentView)
	assert.Nil(t, m.Sent())
	assert.Equal(t, []string{"carol@x.com"}, m.searchBar.Addresses())
}
