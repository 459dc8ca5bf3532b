package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/ngmaloney/area-weather/internal/models"
)

// Client defines the interface for the weather and favorites REST API
type Client interface {
	// ListWeather retrieves every area's weather report in API order
	ListWeather(ctx context.Context) ([]models.WeatherRecord, error)

	// GetWeather retrieves a single area's weather report
	GetWeather(ctx context.Context, id string) (*models.WeatherRecord, error)

	// ListFavorites retrieves the user's favorite areas
	ListFavorites(ctx context.Context) ([]models.FavoriteRecord, error)

	// CreateFavorite bookmarks a weather report and returns the stored favorite
	CreateFavorite(ctx context.Context, weatherID, areaName string) (*models.FavoriteRecord, error)

	// DeleteFavorite removes a favorite by its id
	DeleteFavorite(ctx context.Context, id string) error
}

var (
	ErrAlreadyFavorited = errors.New("already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// APIError is an {"error": "..."} payload returned by the API. The API may
// send it with a success status, so every response body is checked for it.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s", e.Message)
}

// Is maps the known error messages onto sentinel errors
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrAlreadyFavorited:
		return e.Message == "Already in favorites"
	case ErrFavoriteNotFound:
		return e.Message == "Favorite not found"
	}
	return false
}

// StatusError is returned for non-2xx responses
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("API returned status %d: %s", e.StatusCode, e.Body)
}
