package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("62")
	muted  = lipgloss.Color("244")
	danger = lipgloss.Color("203")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(accent).Padding(0, 1)

	activeTab   = lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true).Padding(0, 1)
	inactiveTab = lipgloss.NewStyle().Foreground(muted).Padding(0, 1)

	indexStyle  = lipgloss.NewStyle().Foreground(muted)
	nameStyle   = lipgloss.NewStyle().Bold(true)
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).PaddingLeft(4)

	resultStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1)
	errorStyle  = resultStyle.BorderForeground(danger).Foreground(danger)

	footerStyle = lipgloss.NewStyle().Foreground(muted)
	emptyStyle  = lipgloss.NewStyle().Foreground(muted).Italic(true).PaddingLeft(2)
)
