package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorPrimary = lipgloss.Color("#FFB347") // Dawn orange
	colorAccent  = lipgloss.Color("#00BFFF") // Deep sky blue
	colorDanger  = lipgloss.Color("#FF6B6B") // Red for errors
	colorWarning = lipgloss.Color("#FFD93D") // Yellow for stale data
	colorSuccess = lipgloss.Color("#6BCF7F") // Green
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Recommendation banner
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 3).
			Bold(true)

	// Score card panes
	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2).
			MarginRight(1)

	winnerPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2).
			MarginRight(1)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	scoreGoodStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	scoreOkStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	scoreBadStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	staleStyle = lipgloss.NewStyle().
			Foreground(colorWarning).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	accentStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)

// scoreStyle colors a score by how good a morning it promises.
func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 7:
		return scoreGoodStyle
	case score >= 4:
		return scoreOkStyle
	default:
		return scoreBadStyle
	}
}
