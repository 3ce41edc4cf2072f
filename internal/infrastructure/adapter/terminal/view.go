package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amirhossein-jamali/digichron/internal/domain/entity"
	displayadapter "github.com/amirhossein-jamali/digichron/internal/infrastructure/adapter/display"
)

const faceWidth = 16

type styles struct {
	frame     lipgloss.Style
	flash     lipgloss.Style
	status    lipgloss.Style
	date      lipgloss.Style
	digits    lipgloss.Style
	small     lipgloss.Style
	highlight lipgloss.Style
}

func defaultStyles() styles {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(faceWidth)

	return styles{
		frame:     frame,
		flash:     frame.BorderForeground(lipgloss.Color("205")),
		status:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		date:      lipgloss.NewStyle().Bold(true),
		digits:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		small:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		highlight: lipgloss.NewStyle().Reverse(true),
	}
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	face := renderFace(m.panel.Snapshot(), m.styles, m.flasher != nil && m.flasher.Flashing())
	return lipgloss.JoinVertical(lipgloss.Left, face, m.help.View(m.keys)) + "\n"
}

func renderFace(snap displayadapter.Snapshot, s styles, flashing bool) string {
	field := func(text string, base lipgloss.Style, f entity.HighlightField) string {
		if text == "" {
			return ""
		}
		if snap.Highlight == f {
			return s.highlight.Inherit(base).Render(text)
		}
		return base.Render(text)
	}

	bluetooth := "BT"
	if !snap.Bluetooth {
		bluetooth = "--"
	}
	battery := strings.TrimSpace(snap.Battery)
	gap := faceWidth - 2 - lipgloss.Width(bluetooth) - lipgloss.Width(battery)
	if gap < 1 {
		gap = 1
	}
	statusLine := s.status.Render(bluetooth + strings.Repeat(" ", gap) + battery)

	dateLine := field(snap.Date, s.date, entity.HighlightDate)

	var timeLine strings.Builder
	if am := field(snap.AmPm, s.small, entity.HighlightAmPm); am != "" {
		timeLine.WriteString(am)
		timeLine.WriteString(" ")
	}
	if snap.Hour != "" || snap.Minute != "" {
		timeLine.WriteString(field(snap.Hour, s.digits, entity.HighlightHours))
		timeLine.WriteString(s.digits.Render(":"))
		timeLine.WriteString(field(snap.Minute, s.digits, entity.HighlightMinutes))
	}
	if sec := field(snap.Second, s.small, entity.HighlightSeconds); sec != "" {
		timeLine.WriteString(" ")
		timeLine.WriteString(sec)
	}

	frame := s.frame
	if flashing {
		frame = s.flash
	}
	body := lipgloss.JoinVertical(lipgloss.Left, statusLine, dateLine, timeLine.String())
	if snap.Inverted {
		body = lipgloss.NewStyle().Reverse(true).Width(faceWidth - 2).Render(body)
	}
	return frame.Render(body)
}
