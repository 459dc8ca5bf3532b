package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/area-weather/internal/store"
)

// Message types for async operations

// dataLoadedMsg is sent when the initial weather and favorites loads finish
type dataLoadedMsg struct {
	weatherErr   error
	favoritesErr error
}

// favoriteToggledMsg is sent when a toggle request completes
type favoriteToggledMsg struct {
	weatherID string
	err       error
}

// favoriteRemovedMsg is sent when a removal from the favorites list completes
type favoriteRemovedMsg struct {
	favoriteID string
	err        error
}

// loadData loads weather first, then favorites. A weather failure skips
// the favorites request.
func loadData(s *store.Store) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.LoadWeather(ctx); err != nil {
			return dataLoadedMsg{weatherErr: err}
		}
		return dataLoadedMsg{favoritesErr: s.LoadFavorites(ctx)}
	}
}

// toggleFavorite adds or removes the favorite for a weather report
func toggleFavorite(s *store.Store, weatherID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := s.ToggleFavorite(ctx, weatherID)
		return favoriteToggledMsg{weatherID: weatherID, err: err}
	}
}

// removeFavorite deletes a favorite by its id
func removeFavorite(s *store.Store, favoriteID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := s.RemoveFavorite(ctx, favoriteID)
		return favoriteRemovedMsg{favoriteID: favoriteID, err: err}
	}
}
