package searchbar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/recipients/internal/recipient"
	"github.com/nhle/recipients/internal/theme"
)

// The field has a one-cell border and one column of padding.
const (
	fieldChromeX = 2
	fieldChromeY = 1

	chipGap       = 1
	inputMinWidth = 16
	spinnerWidth  = 2
)

// chipZone is where a chip sits inside the field's content area.
type chipZone struct {
	entry recipient.Entry
	line  int
	start int
	ctrl  int // first column of the trailing control
	end   int
}

func (z chipZone) contains(x, y int) bool {
	return y == z.line && x >= z.start && x < z.end
}

func (z chipZone) onControl(x, y int) bool {
	return y == z.line && x >= z.ctrl && x < z.end
}

func (m Model) contentWidth() int {
	return max(m.width-2*fieldChromeX, inputMinWidth+spinnerWidth)
}

func chipIcon(valid, hovered bool) string {
	if !valid && !hovered {
		return "!"
	}
	return "x"
}

func renderLabel(e recipient.Entry, hovered bool) string {
	return theme.ChipStyle(e.Valid, hovered).Render(e.Address)
}

func renderControl(e recipient.Entry, hovered bool) string {
	return theme.RemoveControlStyle(e.Valid, hovered).
		Render(" " + chipIcon(e.Valid, hovered) + " ")
}

// layout flows the chips across lines and places the input after them.
// It returns the chip zones, the line and column of the input and the
// number of content lines.
func (m Model) layout() (zones []chipZone, inputLine, inputX, lines int) {
	width := m.contentWidth()
	line, x := 0, 0

	for _, e := range m.recipients.Entries() {
		lw := lipgloss.Width(renderLabel(e, false))
		cw := lipgloss.Width(renderControl(e, false))
		w := lw + cw

		if x > 0 && x+chipGap+w > width {
			line++
			x = 0
		}
		if x > 0 {
			x += chipGap
		}

		zones = append(zones, chipZone{
			entry: e,
			line:  line,
			start: x,
			ctrl:  x + lw,
			end:   x + w,
		})
		x += w
	}

	inputLine, inputX = line, x
	if x > 0 {
		inputX = x + chipGap
		if inputX+inputMinWidth+spinnerWidth > width {
			inputLine++
			inputX = 0
		}
	}

	return zones, inputLine, inputX, inputLine + 1
}

// View renders the field and, below it, the suggestion dropdown.
func (m Model) View() string {
	zones, inputLine, inputX, lines := m.layout()
	width := m.contentWidth()

	rows := make([]strings.Builder, lines)
	for i, z := range zones {
		b := &rows[z.line]
		if b.Len() > 0 {
			b.WriteString(strings.Repeat(" ", chipGap))
		}
		hovered := i == m.hoverChip
		b.WriteString(renderLabel(z.entry, hovered))
		b.WriteString(renderControl(z.entry, hovered))
	}

	in := m.input
	in.Width = max(width-inputX-spinnerWidth-1, 1)
	b := &rows[inputLine]
	if b.Len() > 0 {
		b.WriteString(strings.Repeat(" ", chipGap))
	}
	b.WriteString(in.View())
	if m.loading {
		b.WriteString(" ")
		b.WriteString(m.spinner.View())
	}

	out := make([]string, lines)
	for i := range rows {
		out[i] = rows[i].String()
	}

	field := theme.FieldStyle.
		Width(width + 2).
		Render(strings.Join(out, "\n"))

	dropdown := m.panel.View()
	if dropdown == "" {
		return field
	}
	return lipgloss.JoinVertical(lipgloss.Left, field, dropdown)
}

// fieldHeight is the rendered height of the field without the dropdown.
func (m Model) fieldHeight() int {
	_, _, _, lines := m.layout()
	return lines + 2*fieldChromeY
}

// handleMouse maps pointer events onto chips and dropdown rows. A left
// press on a chip's control removes the chip; a left press on a row
// selects it. Motion only updates hover state.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	x := msg.X - m.originX
	y := msg.Y - m.originY

	zones, _, _, _ := m.layout()
	cx, cy := x-fieldChromeX, y-fieldChromeY

	chip := -1
	for i, z := range zones {
		if z.contains(cx, cy) {
			chip = i
			break
		}
	}
	row := m.panel.RowAt(x, y-m.fieldHeight())

	switch msg.Action {
	case tea.MouseActionMotion:
		m.hoverChip = chip
		m.panel.SetHover(row)

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if chip >= 0 && zones[chip].onControl(cx, cy) {
			m.Remove(zones[chip].entry.Address)
			return
		}
		if row >= 0 {
			m.panel.Select(row, m)
		}
	}
}
