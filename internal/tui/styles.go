package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/mrlokans/katalog/internal/presenter"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	labelStyle        = lipgloss.NewStyle().Width(11).Foreground(lipgloss.Color("244"))
	focusedLabelStyle = labelStyle.Foreground(lipgloss.Color("212")).Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(30)

	gridStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	promptStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

func noticeStyle(level presenter.Level) lipgloss.Style {
	base := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	switch level {
	case presenter.LevelWarning:
		return base.BorderForeground(lipgloss.Color("214")).Foreground(lipgloss.Color("214"))
	case presenter.LevelError:
		return base.BorderForeground(lipgloss.Color("196")).Foreground(lipgloss.Color("196"))
	default:
		return base.BorderForeground(lipgloss.Color("39")).Foreground(lipgloss.Color("39"))
	}
}

func gridStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	return s
}
