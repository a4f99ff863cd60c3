package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorAccent  = lipgloss.Color("57")
	ColorBright  = lipgloss.Color("229")
	ColorHeader  = lipgloss.Color("99")
	ColorMuted   = lipgloss.Color("241")
	ColorBorder  = lipgloss.Color("240")
	ColorWarning = lipgloss.Color("196")
)

var (
	TitleStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)

	TableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorBorder).
				BorderBottom(true).
				Bold(true).
				Padding(0, 1)
	TableSelectedStyle = lipgloss.NewStyle().Foreground(ColorBright).Background(ColorAccent)

	PageStyle        = lipgloss.NewStyle().Padding(0, 1)
	CurrentPageStyle = PageStyle.Foreground(ColorBright).Background(ColorAccent).Bold(true)
	EllipsisStyle    = PageStyle.Foreground(ColorMuted)
)
