package rendering

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwinters/dexduel/global"
)

var (
	HighlightedColor = lipgloss.Color("33")
	CorrectColor     = lipgloss.Color("42")
	WrongColor       = lipgloss.Color("196")
	FaintColor       = lipgloss.Color("240")

	ButtonStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Width(30).Padding(1, 3).Align(lipgloss.Center)
	HighlightedButtonStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Width(30).Padding(1, 3).Align(lipgloss.Center).Foreground(HighlightedColor)

	PanelStyle            = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).Width(34).Padding(1, 2).AlignHorizontal(lipgloss.Center)
	HighlightedPanelStyle = PanelStyle.BorderForeground(HighlightedColor).Foreground(HighlightedColor)
	CorrectPanelStyle     = PanelStyle.BorderForeground(CorrectColor).Foreground(CorrectColor)
	WrongPanelStyle       = PanelStyle.BorderForeground(WrongColor).Foreground(WrongColor)

	FaintStyle   = lipgloss.NewStyle().Foreground(FaintColor)
	CorrectStyle = lipgloss.NewStyle().Foreground(CorrectColor)
	WrongStyle   = lipgloss.NewStyle().Foreground(WrongColor)
)

func Center(width int, height int, text string) string {
	return lipgloss.PlaceVertical(height, lipgloss.Center, lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
}

func GlobalCenter(text string) string {
	return Center(global.TERM_WIDTH, global.TERM_HEIGHT, text)
}

const statBarWidth = 20

// StatBar renders a horizontal bar filled proportionally to value/max, used
// by the stat duel reveal animation.
func StatBar(value int, max int) string {
	if max <= 0 {
		max = 1
	}

	filled := (value * statBarWidth) / max
	if filled > statBarWidth {
		filled = statBarWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", statBarWidth-filled)
	return bar
}
