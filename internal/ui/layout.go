package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/recipients/internal/theme"
)

// Layout manages the terminal frame: a header, the content area and a
// status bar.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
	Margin          int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1, Margin to 1.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
		Margin:          1,
	}
}

// ContentWidth returns the width available inside the margins.
func (l Layout) ContentWidth() int {
	return max(l.Width-2*l.Margin, 0)
}

// ContentHeight returns the height available for the main content area,
// accounting for the header, status bar and margins.
func (l Layout) ContentHeight() int {
	return max(l.Height-l.HeaderHeight-l.StatusBarHeight-2*l.Margin, 0)
}

// ContentOrigin returns the screen cell of the content area's top-left
// corner.
func (l Layout) ContentOrigin() (x, y int) {
	return l.Margin, l.HeaderHeight + l.Margin
}

// bar renders left and right flush against the edges of a full-width line
// painted with style.
func (l Layout) bar(style lipgloss.Style, left, right string) string {
	left = style.Render(left)
	if right != "" {
		right = style.Render(right)
	}

	gap := max(l.Width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	fill := style.Padding(0).Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, fill, right)
}

// RenderHeader renders the title bar, with status right-aligned.
func (l Layout) RenderHeader(title string, status string) string {
	return l.bar(theme.HeaderStyle, title, status)
}

// RenderStatusBar renders the key hint line.
func (l Layout) RenderStatusBar(hints string) string {
	return l.bar(theme.StatusBarStyle, hints, "")
}

// RenderWithFrame composes a full terminal view: header, content placed
// inside the margins and padded to the content height, then the status
// bar.
func (l Layout) RenderWithFrame(
	header string,
	content string,
	statusBar string,
) string {
	body := lipgloss.NewStyle().
		Margin(l.Margin).
		Height(l.ContentHeight()).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		body,
		statusBar,
	)
}
