package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/openstudio/internal/config"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	paneStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

// fieldStyles renders edit values. Defaulted values use a distinct color so
// users can tell them apart from explicitly set ones.
type fieldStyles struct {
	label     lipgloss.Style
	defaulted lipgloss.Style
	set       lipgloss.Style
	disabled  lipgloss.Style
	focus     lipgloss.Color
}

func newFieldStyles(c config.InspectorConfig) fieldStyles {
	return fieldStyles{
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC")).Width(34),
		defaulted: lipgloss.NewStyle().Foreground(lipgloss.Color(c.DefaultedColor)),
		set:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.SetColor)),
		disabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		focus:     lipgloss.Color(c.FocusColor),
	}
}

// pane returns the pane style with its border highlighted when focused.
func (s fieldStyles) pane(focused bool) lipgloss.Style {
	if focused {
		return paneStyle.BorderForeground(s.focus)
	}
	return paneStyle
}
