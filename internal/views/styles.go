package views

import "github.com/charmbracelet/lipgloss"

// Палитра и стили представлений
var (
	accentColor = lipgloss.Color("208") // оранжевый Local Eats
	subtleColor = lipgloss.Color("241")
	errorColor  = lipgloss.Color("196")
	okColor     = lipgloss.Color("42")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)

	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(subtleColor)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).
			Foreground(accentColor).Underline(true)

	listItemStyle     = lipgloss.NewStyle().PaddingLeft(2)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(0).
				Foreground(accentColor).SetString("> ")

	subtleStyle = lipgloss.NewStyle().Foreground(subtleColor)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor)
	okStyle     = lipgloss.NewStyle().Foreground(okColor)

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	errorBannerStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(errorColor).
				Padding(0, 1)

	helpStyle = lipgloss.NewStyle().Foreground(subtleColor).MarginTop(1)

	// узлы шкалы статусов заказа
	nodeCompletedStyle = lipgloss.NewStyle().Foreground(okColor)
	nodeActiveStyle    = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	nodeFutureStyle    = lipgloss.NewStyle().Foreground(subtleColor)
)
