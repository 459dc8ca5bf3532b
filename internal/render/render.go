// Package render projects weather reports and favorites into display text.
// Every function is pure: the same inputs always produce the same output.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/area-weather/internal/models"
)

const (
	EmptyCardsTitle = "No weather data found"
	EmptyCardsHint  = "Try adjusting your search or filter criteria"
	EmptyFavorites  = "No favorites added yet"

	FavoritedGlyph    = "♥"
	NotFavoritedGlyph = "♡"

	defaultCardWidth = 28
)

// CardOptions controls the card grid layout
type CardOptions struct {
	Selected string // Weather id of the highlighted card
	Columns  int    // Cards per row; values below 1 mean one
	Width    int    // Inner card width; 0 uses the default
}

// Cards renders one card per report, or an empty-state message when there
// are none. Each card shows whether its report is favorited.
func Cards(filtered []models.WeatherRecord, favorites []models.FavoriteRecord, opts CardOptions) string {
	if len(filtered) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			emptyTitleStyle.Render(EmptyCardsTitle),
			emptyHintStyle.Render(EmptyCardsHint),
		)
	}

	columns := opts.Columns
	if columns < 1 {
		columns = 1
	}
	width := opts.Width
	if width <= 0 {
		width = defaultCardWidth
	}

	var rows []string
	for start := 0; start < len(filtered); start += columns {
		end := min(start+columns, len(filtered))

		cards := make([]string, 0, end-start)
		for _, w := range filtered[start:end] {
			favorited := models.IsFavorited(favorites, w.ID)
			cards = append(cards, Card(w, favorited, w.ID == opts.Selected, width))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Card renders a single report
func Card(w models.WeatherRecord, favorited, selected bool, width int) string {
	glyph := NotFavoritedGlyph
	if favorited {
		glyph = heartStyle.Render(FavoritedGlyph)
	}

	nameWidth := width - lipgloss.Width(glyph) - 1
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		areaStyle.Width(nameWidth).Render(w.Area),
		" ",
		glyph,
	)

	lines := []string{
		header,
		fmt.Sprintf("%s  %s", temperatureStyle.Render(fmt.Sprintf("%d°C", w.Temperature)), w.Condition),
		mutedStyle.Render(fmt.Sprintf("Humidity %d%% • Wind %d km/h", w.Humidity, w.WindSpeed)),
		recommendationStyle(w.EventRecommendation).Render(strings.ToUpper(string(w.EventRecommendation))),
	}

	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	return style.Width(width + 2).Render(strings.Join(lines, "\n"))
}

// Favorites renders one row per favorite with its removal control, or an
// empty-state message. selected is the index of the highlighted row, -1 for none.
func Favorites(favorites []models.FavoriteRecord, selected int) string {
	if len(favorites) == 0 {
		return mutedStyle.Render(EmptyFavorites)
	}

	lines := make([]string, 0, len(favorites))
	for i, f := range favorites {
		row := fmt.Sprintf("%s %s  %s", FavoritedGlyph, f.AreaName, RemoveControl(f))
		if i == selected {
			row = selectedRowStyle.Render("› " + row)
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

// RemoveControl is the removal control for a favorite, keyed by its id
func RemoveControl(f models.FavoriteRecord) string {
	return fmt.Sprintf("[remove #%s]", f.ID)
}

// Detail renders the per-period breakdown of a report in canonical period
// order. Periods the report lacks are skipped.
func Detail(w models.WeatherRecord) string {
	title := detailTitleStyle.Render(fmt.Sprintf("%s - Detailed Weather", w.Area))

	var blocks []string
	for _, p := range models.Periods() {
		pw, ok := w.PeriodWeather(p)
		if !ok {
			continue
		}
		blocks = append(blocks, periodStyle.Render(strings.Join([]string{
			periodHeaderStyle.Render(string(p)),
			fmt.Sprintf("%s %d°C", labelStyle.Render("Temperature:"), pw.Temp),
			fmt.Sprintf("%s %s", labelStyle.Render("Condition:"), pw.Condition),
			fmt.Sprintf("%s %d%%", labelStyle.Render("Humidity:"), pw.Humidity),
			fmt.Sprintf("%s %d km/h", labelStyle.Render("Wind:"), pw.Wind),
		}, "\n")))
	}

	if len(blocks) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, mutedStyle.Render("No period breakdown available"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
}
