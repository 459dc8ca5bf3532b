package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/area-weather/internal/models"
)

var (
	// Color palette
	colorPrimary = lipgloss.Color("#00BFFF") // Deep sky blue
	colorDanger  = lipgloss.Color("#FF6B6B") // Red for unsuitable
	colorWarning = lipgloss.Color("#FFD93D") // Yellow for caution
	colorSuccess = lipgloss.Color("#6BCF7F") // Green for suitable
	colorMuted   = lipgloss.Color("#6C757D") // Gray
	colorBorder  = lipgloss.Color("#4A90E2") // Border blue
	colorHeart   = lipgloss.Color("#FF5FAF")

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginRight(1)

	selectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1).
				MarginRight(1)

	areaStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	temperatureStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF"))

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	heartStyle = lipgloss.NewStyle().
			Foreground(colorHeart)

	emptyTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 2, 0, 2)

	emptyHintStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 2, 1, 2)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary).
				MarginBottom(1)

	periodStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginRight(1)

	periodHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)
)

// recommendationStyle returns the badge style for a recommendation
func recommendationStyle(r models.EventRecommendation) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch r {
	case models.RecommendationSuitable:
		return base.Foreground(colorSuccess)
	case models.RecommendationCaution:
		return base.Foreground(colorWarning)
	case models.RecommendationUnsuitable:
		return base.Foreground(colorDanger)
	default:
		return base.Foreground(colorMuted)
	}
}
