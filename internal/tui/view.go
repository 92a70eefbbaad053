package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const helpText = "h/l scroll · H/L page · 0/$ ends · g jump · t theme · y copy layout · r reload · ? help · q quit"

// View renders the TUI.
func (m Model) View() string {
	if m.err != nil {
		return m.styles.WarningStyle.Render(fmt.Sprintf("error: %v\n\npress q to quit", m.err))
	}
	if m.loading || m.width == 0 {
		return m.styles.StatusStyle.Render("Loading…")
	}

	w := m.layout.LaneW
	if w <= 0 {
		return "Terminal too small"
	}

	sections := []string{
		m.renderTitle(w),
		m.renderHeaderLane(w),
		m.renderCellLane(w),
		m.renderFooter(w),
	}

	return m.styles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderTitle(w int) string {
	left := m.styles.TitleStyle.Render("stickystrip")
	right := m.styles.StatusStyle.Render(
		fmt.Sprintf("%s · %d/%d", m.theme.Name, m.scrollX, m.layout.MaxScroll))

	pad := w - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		return left
	}
	return left + m.styles.LaneStyle.Render(strings.Repeat(" ", pad)) + right
}

// renderHeaderLane draws every header at its computed sticky offset, faded by
// its computed opacity. Drawing is a single left-to-right pass: anything a
// later header would overdraw on the left is clipped instead, so a header
// being pushed out slides under its successor.
func (m Model) renderHeaderLane(w int) string {
	var b strings.Builder
	col := 0

	if m.pos != nil {
		for _, pl := range m.pos.HeaderLayout() {
			if col >= w {
				break
			}
			text := headerLabel(pl.Header)
			start := roundOffset(pl.Offset)
			if start+runewidth.StringWidth(text) <= col {
				continue
			}
			if start < col {
				text = runewidth.TruncateLeft(text, col-start, "")
				start = col
			}
			if start > col {
				b.WriteString(m.styles.LaneStyle.Render(strings.Repeat(" ", start-col)))
				col = start
			}
			text = runewidth.Truncate(text, w-col, "")
			b.WriteString(m.styles.HeaderFaded(pl.Opacity).Render(text))
			col += runewidth.StringWidth(text)
		}
	}

	if col < w {
		b.WriteString(m.styles.LaneStyle.Render(strings.Repeat(" ", w-col)))
	}
	return b.String()
}

// renderCellLane draws the cells at their viewport positions, alternating the
// block shade per section.
func (m Model) renderCellLane(w int) string {
	cellW := m.config.Strip.CellWidth

	var b strings.Builder
	col := 0
	section := ""
	alt := true

	for i, it := range m.items {
		start := m.contentX(i) - m.scrollX
		if start+cellW <= 0 {
			if it.Section != section {
				section = it.Section
				alt = !alt
			}
			continue
		}
		if start >= w {
			break
		}
		if it.Section != section {
			section = it.Section
			alt = !alt
		}

		text := runewidth.FillRight(runewidth.Truncate(" "+it.Title, cellW-1, "…"), cellW)
		if start < col {
			text = runewidth.TruncateLeft(text, col-start, "")
			start = col
		}
		if start > col {
			b.WriteString(m.styles.LaneStyle.Render(strings.Repeat(" ", start-col)))
			col = start
		}
		text = runewidth.Truncate(text, w-col, "")

		style := m.styles.CellStyle
		if alt {
			style = m.styles.CellAltStyle
		}
		b.WriteString(style.Render(text))
		col += runewidth.StringWidth(text)
	}

	if col < w {
		b.WriteString(m.styles.LaneStyle.Render(strings.Repeat(" ", w-col)))
	}
	return b.String()
}

func (m Model) renderFooter(w int) string {
	switch {
	case m.mode == ModeJump:
		return m.styles.PromptStyle.Render("jump to: " + m.jump.View())
	case m.statusMsg != "":
		style := m.styles.StatusStyle
		if m.statusWarn {
			style = m.styles.WarningStyle
		}
		return style.Render(runewidth.Truncate(m.statusMsg, w, "…"))
	case m.showHelp:
		return m.styles.HelpStyle.Render(runewidth.Truncate(helpText, w, "…"))
	default:
		return m.styles.HelpStyle.Render("? for help")
	}
}
