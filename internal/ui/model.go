package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ngmaloney/area-weather/internal/log"
	"github.com/ngmaloney/area-weather/internal/models"
	"github.com/ngmaloney/area-weather/internal/store"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoading AppState = iota // Fetching weather and favorites
	StateDisplay                 // Card grid and favorites
	StateDetail                  // Per-period breakdown of one report
	StateError                   // Weather could not be loaded
)

// Focus is the section receiving key input in StateDisplay
type Focus int

const (
	FocusSearch Focus = iota
	FocusFilter
	FocusCards
	FocusFavorites
	focusCount
)

// Options seeds the initial filter
type Options struct {
	SearchTerm  string
	EventFilter models.EventFilter
}

// Model represents the application's state. The store is shared by
// reference: commands mutate it after the API acknowledges a request and
// View reads it on every render.
type Model struct {
	state  AppState
	focus  Focus
	width  int
	height int
	err    error  // Fatal load error shown in StateError
	notice string // Blocking notification; input is ignored until dismissed

	store       *store.Store
	searchInput textinput.Model
	eventFilter models.EventFilter
	spinner     spinner.Model
	keys        keyMap
	help        help.Model

	cardCursor     int
	favoriteCursor int
	detail         *models.WeatherRecord
}

// NewModel creates a new application model
func NewModel(s *store.Store, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Search areas (e.g. Kicukiro)..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 60
	ti.Width = 40
	ti.SetValue(opts.SearchTerm)
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	filter := opts.EventFilter
	if filter == "" {
		filter = models.EventFilterAll
	}

	return Model{
		state:       StateLoading,
		focus:       FocusSearch,
		store:       s,
		searchInput: ti,
		eventFilter: filter,
		spinner:     sp,
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
}

// Init starts the initial data load
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink, loadData(m.store))
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case dataLoadedMsg:
		if msg.weatherErr != nil {
			m.err = msg.weatherErr
			m.state = StateError
			return m, nil
		}
		// Favorites failures are non-critical: the list just stays empty
		if msg.favoritesErr != nil {
			log.Warnw("favorites unavailable", "error", msg.favoritesErr)
		}
		m.err = nil
		m.state = StateDisplay
		m.applyFilter()
		return m, nil

	case favoriteToggledMsg:
		if msg.err != nil {
			log.Errorw("toggle favorite failed", "weather_id", msg.weatherID, "error", msg.err)
			m.notice = mutationNotice(msg.err)
		}
		m.clampCursors()
		return m, nil

	case favoriteRemovedMsg:
		if msg.err != nil {
			log.Errorw("remove favorite failed", "favorite_id", msg.favoriteID, "error", msg.err)
			m.notice = mutationNotice(msg.err)
		}
		m.clampCursors()
		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other component messages
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleKey is the single dispatcher for keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// A pending notification blocks everything else
	if m.notice != "" {
		if key.Matches(msg, m.keys.Dismiss) {
			m.notice = ""
		}
		return m, nil
	}

	switch m.state {
	case StateLoading:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil

	case StateError:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Retry):
			m.state = StateLoading
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, loadData(m.store))
		}
		return m, nil

	case StateDetail:
		if key.Matches(msg, m.keys.Close) {
			m.detail = nil
			m.state = StateDisplay
		}
		return m, nil
	}

	// StateDisplay
	switch {
	case key.Matches(msg, m.keys.NextFocus):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	case key.Matches(msg, m.keys.PrevFocus):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil
	}

	switch m.focus {
	case FocusSearch:
		return m.handleSearchInput(msg)
	case FocusFilter:
		return m.handleFilterKeys(msg)
	case FocusCards:
		return m.handleCardKeys(msg)
	case FocusFavorites:
		return m.handleFavoriteKeys(msg)
	}
	return m, nil
}

// handleSearchInput re-filters on every edit of the search box
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyDown || msg.Type == tea.KeyEnter {
		m.setFocus(FocusCards)
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.applyFilter()
	}
	return m, cmd
}

func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Right):
		m.eventFilter = m.eventFilter.Next()
		m.applyFilter()
	case key.Matches(msg, m.keys.Left):
		m.eventFilter = m.eventFilter.Prev()
		m.applyFilter()
	case key.Matches(msg, m.keys.Down), msg.Type == tea.KeyEnter:
		m.setFocus(FocusCards)
	}
	return m, nil
}

// handleCardKeys dispatches on the selected card: the toggle key only
// toggles the favorite, the open key only opens the detail view.
func (m Model) handleCardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtered := m.store.Filtered()
	cols := m.columns()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		if w, ok := m.selectedCard(); ok {
			return m, toggleFavorite(m.store, w.ID)
		}

	case key.Matches(msg, m.keys.Open):
		if w, ok := m.selectedCard(); ok {
			m.detail = &w
			m.state = StateDetail
		}

	case key.Matches(msg, m.keys.Left):
		if m.cardCursor > 0 {
			m.cardCursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cardCursor < len(filtered)-1 {
			m.cardCursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cardCursor-cols >= 0 {
			m.cardCursor -= cols
		} else {
			m.setFocus(FocusFilter)
		}
	case key.Matches(msg, m.keys.Down):
		if m.cardCursor+cols < len(filtered) {
			m.cardCursor += cols
		}
	}
	return m, nil
}

func (m Model) handleFavoriteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	favorites := m.store.Favorites()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Remove):
		if m.favoriteCursor >= 0 && m.favoriteCursor < len(favorites) {
			return m, removeFavorite(m.store, favorites[m.favoriteCursor].ID)
		}
	case key.Matches(msg, m.keys.Up):
		if m.favoriteCursor > 0 {
			m.favoriteCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.favoriteCursor < len(favorites)-1 {
			m.favoriteCursor++
		}
	}
	return m, nil
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	if f == FocusSearch {
		m.searchInput.Focus()
	} else {
		m.searchInput.Blur()
	}
}

// applyFilter pushes the current search box and event filter into the store
func (m *Model) applyFilter() {
	m.store.ApplyFilter(models.FilterCriteria{
		SearchTerm:  m.searchInput.Value(),
		EventFilter: m.eventFilter,
	})
	m.cardCursor = 0
	m.clampCursors()
}

func (m *Model) clampCursors() {
	if n := len(m.store.Filtered()); m.cardCursor >= n {
		m.cardCursor = max(n-1, 0)
	}
	if n := len(m.store.Favorites()); m.favoriteCursor >= n {
		m.favoriteCursor = max(n-1, 0)
	}
}

func (m Model) selectedCard() (models.WeatherRecord, bool) {
	filtered := m.store.Filtered()
	if m.cardCursor < 0 || m.cardCursor >= len(filtered) {
		return models.WeatherRecord{}, false
	}
	return filtered[m.cardCursor], true
}

// columns is how many cards fit side by side
func (m Model) columns() int {
	const cardOuterWidth = 33 // card width + padding + border + margin
	return max(1, m.width/cardOuterWidth)
}

func mutationNotice(err error) string {
	var mutErr *store.MutationError
	if errors.As(err, &mutErr) && mutErr.Op == "remove" {
		return fmt.Sprintf("Failed to remove favorite. Please try again.\n\n%v", err)
	}
	return fmt.Sprintf("Failed to update favorites. Please try again.\n\n%v", err)
}
