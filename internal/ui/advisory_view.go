package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandfly/dawnpatrol/internal/advisor"
)

// renderAdvisory renders the full display view: banner, score cards,
// conditions line, tide pane, footer.
func (m Model) renderAdvisory() string {
	r := m.result

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("  Dawn Patrol — %s, %s", r.Spot, r.TargetDate.Format("Mon Jan 2"))))
	if m.stale {
		b.WriteString(staleStyle.Render("  [cached]"))
	}
	b.WriteString("\n\n")

	rec := r.Recommendation
	banner := fmt.Sprintf("%s  %s — %s", rec.Icon, rec.Activity, rec.Detail)
	b.WriteString(bannerStyle.Render(banner))
	b.WriteString("\n\n")

	cardWidth := 28
	if m.width > 0 && (cardWidth+4)*3 > m.width {
		cardWidth = m.width/3 - 4
	}
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSurfCard(cardWidth),
		m.renderPhotoCard(cardWidth),
		m.renderCycleCard(cardWidth),
	)
	b.WriteString(cards)
	b.WriteString("\n")

	b.WriteString(m.renderConditionsLine())
	b.WriteString("\n")
	b.WriteString(m.renderTidePane())

	updated := fmt.Sprintf("updated %s", r.GeneratedAt.Format("3:04 PM"))
	b.WriteString(helpStyle.Render(fmt.Sprintf("  %s • r: refresh • q: quit", updated)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderSurfCard(width int) string {
	r := m.result.Surf
	var content strings.Builder

	content.WriteString(titleStyle.Render("Surf"))
	content.WriteString("  ")
	content.WriteString(scoreStyle(r.Score).Render(fmt.Sprintf("%d/10", r.Score)))
	content.WriteString("\n\n")

	content.WriteString(valueStyle.Render(r.Details))
	content.WriteString("\n\n")
	content.WriteString(labelStyle.Render("height "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%d", r.HeightScore)))
	content.WriteString(labelStyle.Render("  period "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%d", r.PeriodScore)))
	content.WriteString(labelStyle.Render("  wind "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%d", r.WindScore)))

	return m.cardStyle(advisor.ActivitySurf).Width(width).Render(content.String())
}

func (m Model) renderPhotoCard(width int) string {
	r := m.result.Photo
	var content strings.Builder

	content.WriteString(titleStyle.Render("Sunrise Photos"))
	content.WriteString("  ")
	content.WriteString(scoreStyle(r.Score).Render(fmt.Sprintf("%d/10", r.Score)))
	content.WriteString("\n\n")

	content.WriteString(valueStyle.Render(r.Verdict))
	content.WriteString("\n\n")
	content.WriteString(labelStyle.Render("cloud "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.0f%%", r.CloudCover)))
	content.WriteString(labelStyle.Render("  humidity "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.0f%%", r.Humidity)))

	return m.cardStyle(advisor.ActivityPhoto).Width(width).Render(content.String())
}

func (m Model) renderCycleCard(width int) string {
	r := m.result.Cycle
	var content strings.Builder

	content.WriteString(titleStyle.Render("Cycle"))
	content.WriteString("  ")
	content.WriteString(scoreStyle(r.Score).Render(fmt.Sprintf("%d/10", r.Score)))
	content.WriteString("\n\n")

	content.WriteString(valueStyle.Render(r.DirectionText))
	content.WriteString("\n\n")
	content.WriteString(labelStyle.Render("wind "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.0f mph %s", r.WindSpeed, advisor.DegreesToCardinal(r.WindDirection))))
	content.WriteString(labelStyle.Render("  temp "))
	content.WriteString(valueStyle.Render(fmt.Sprintf("%.0f°F", r.Temperature)))

	return m.cardStyle(advisor.ActivityCycle).Width(width).Render(content.String())
}

// cardStyle highlights the winning activity's card.
func (m Model) cardStyle(activity string) lipgloss.Style {
	if m.result.Recommendation.Activity == activity {
		return winnerPaneStyle
	}
	return paneStyle
}

// renderConditionsLine renders the one-line sunrise / tides / water summary.
func (m Model) renderConditionsLine() string {
	r := m.result
	return fmt.Sprintf("  %s %s   %s %s   %s %s\n",
		labelStyle.Render("sunrise"), accentStyle.Render(r.SunriseText()),
		labelStyle.Render("tides"), accentStyle.Render(r.TideText(advisor.TideShort)),
		labelStyle.Render("water"), accentStyle.Render(r.WaterTempText()))
}

// renderTidePane renders the morning tides in long form.
func (m Model) renderTidePane() string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Morning Tides"))
	content.WriteString("\n\n")

	long := m.result.TideText(advisor.TideLong)
	if long == advisor.NoTides {
		content.WriteString(mutedStyle.Render("No tide data available"))
	} else {
		content.WriteString(valueStyle.Render(long))
	}

	return paneStyle.Render(content.String()) + "\n"
}
