package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/area-weather/internal/models"
	"github.com/ngmaloney/area-weather/internal/render"
)

// View renders the current view
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var body string
	switch m.state {
	case StateLoading:
		body = m.viewLoading()
	case StateDisplay:
		body = m.viewDisplay()
	case StateDetail:
		body = m.viewDetail()
	case StateError:
		body = m.viewError()
	}

	if m.notice != "" {
		return lipgloss.JoinVertical(lipgloss.Left, body, "", m.viewNotice())
	}
	return body
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("☀ Kigali Area Weather"),
		"",
		fmt.Sprintf("%s Loading weather data...", m.spinner.View()),
	)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorTitleStyle.Render("✗ Error")

	errorMsg := "An unknown error occurred"
	if m.err != nil {
		errorMsg = m.err.Error()
	}

	var sections []string
	sections = append(sections, title)
	sections = append(sections, "")
	sections = append(sections, "Failed to load weather data. Please try again later.")
	sections = append(sections, mutedStyle.Render(errorMsg))
	sections = append(sections, "")
	sections = append(sections, m.viewHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewDisplay renders the dashboard: search, event filter, cards, favorites
func (m Model) viewDisplay() string {
	var sections []string

	sections = append(sections, titleStyle.Render("☀ Kigali Area Weather"))
	sections = append(sections, mutedStyle.Render("Plan outdoor events around the forecast"))
	sections = append(sections, "")

	box := searchBoxStyle
	if m.focus == FocusSearch {
		box = focusedSearchBoxStyle
	}
	sections = append(sections, box.Render(m.searchInput.View()))
	sections = append(sections, m.viewFilterBar())

	filtered := m.store.Filtered()
	favorites := m.store.Favorites()

	sections = append(sections, m.sectionHeader(
		fmt.Sprintf("Weather (%d of %d)", len(filtered), len(m.store.Weather())), FocusCards))

	opts := render.CardOptions{Columns: m.columns()}
	if m.focus == FocusCards {
		if w, ok := m.selectedCard(); ok {
			opts.Selected = w.ID
		}
	}
	sections = append(sections, render.Cards(filtered, favorites, opts))

	sections = append(sections, m.sectionHeader(
		fmt.Sprintf("Favorite Areas (%d)", len(favorites)), FocusFavorites))

	selectedFavorite := -1
	if m.focus == FocusFavorites {
		selectedFavorite = m.favoriteCursor
	}
	sections = append(sections, render.Favorites(favorites, selectedFavorite))

	sections = append(sections, m.viewHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewFilterBar() string {
	options := make([]string, 0, len(models.EventFilters()))
	for _, f := range models.EventFilters() {
		label := filterLabel(f)
		if f == m.eventFilter {
			options = append(options, activeFilterOptionStyle.Render(label))
		} else {
			options = append(options, filterOptionStyle.Render(label))
		}
	}

	prefix := "Event: "
	if m.focus == FocusFilter {
		prefix = "› Event: "
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, append([]string{mutedStyle.Render(prefix)}, options...)...)
}

func filterLabel(f models.EventFilter) string {
	if f == models.EventFilterAll {
		return "All"
	}
	s := string(f)
	return strings.ToUpper(s[:1]) + s[1:]
}

func (m Model) sectionHeader(text string, f Focus) string {
	if m.focus == f {
		return focusedSectionHeaderStyle.Render("› " + text)
	}
	return sectionHeaderStyle.Render(text)
}

// viewDetail renders the per-period breakdown of the selected report
func (m Model) viewDetail() string {
	if m.detail == nil {
		return "No report selected"
	}

	status := render.NotFavoritedGlyph + " not in favorites"
	if m.store.IsFavorited(m.detail.ID) {
		status = render.FavoritedGlyph + " in favorites"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		detailBoxStyle.Render(render.Detail(*m.detail)),
		mutedStyle.Render(status),
		m.viewHelp(),
	)
}

func (m Model) viewNotice() string {
	return noticeStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		errorTitleStyle.Render("Error"),
		"",
		m.notice,
		"",
		mutedStyle.Render("Press Enter to dismiss"),
	))
}

func (m Model) viewHelp() string {
	return helpStyle.Render(m.help.ShortHelpView(m.helpFor()))
}
