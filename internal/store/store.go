// Package store holds the fetched weather reports and favorites and derives
// the filtered view shown to the user.
package store

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/ngmaloney/area-weather/internal/api"
	"github.com/ngmaloney/area-weather/internal/models"
	"go.uber.org/zap"
)

// Store is the authoritative client-side copy of the API's data.
//
// Favorites are only changed after the API acknowledges a request. The mutex
// guards field access only and is never held across a request, so two
// toggles of the same report issued before either completes are not
// serialized.
type Store struct {
	client api.Client
	logger *zap.SugaredLogger

	mu        sync.RWMutex
	weather   []models.WeatherRecord
	favorites []models.FavoriteRecord
	criteria  models.FilterCriteria
	filtered  []models.WeatherRecord
}

// New creates an empty store backed by client
func New(client api.Client, logger *zap.SugaredLogger) *Store {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Store{
		client:    client,
		logger:    logger,
		weather:   []models.WeatherRecord{},
		favorites: []models.FavoriteRecord{},
		criteria:  models.FilterCriteria{EventFilter: models.EventFilterAll},
		filtered:  []models.WeatherRecord{},
	}
}

// Filter returns the records matching criteria in their original order
func Filter(records []models.WeatherRecord, criteria models.FilterCriteria) []models.WeatherRecord {
	out := make([]models.WeatherRecord, 0, len(records))
	for _, w := range records {
		if criteria.Matches(w) {
			out = append(out, w)
		}
	}
	return out
}

// LoadWeather replaces the weather collection and resets the filtered view
// to the full collection. On failure the previous state is kept.
func (s *Store) LoadWeather(ctx context.Context) error {
	weather, err := s.client.ListWeather(ctx)
	if err != nil {
		s.logger.Errorw("loading weather data", "error", err)
		return &DataLoadError{Err: err}
	}

	s.mu.Lock()
	s.weather = weather
	s.criteria = models.FilterCriteria{EventFilter: models.EventFilterAll}
	s.filtered = slices.Clone(weather)
	s.mu.Unlock()

	s.logger.Infow("weather data loaded", "count", len(weather))
	return nil
}

// LoadFavorites replaces the favorites collection. Failure is non-critical.
func (s *Store) LoadFavorites(ctx context.Context) error {
	favorites, err := s.client.ListFavorites(ctx)
	if err != nil {
		s.logger.Warnw("loading favorites", "error", err)
		return &NonCriticalLoadError{Err: err}
	}

	s.mu.Lock()
	s.favorites = favorites
	s.mu.Unlock()

	s.logger.Infow("favorites loaded", "count", len(favorites))
	return nil
}

// ApplyFilter records criteria and returns the matching subset of the
// current collection.
func (s *Store) ApplyFilter(criteria models.FilterCriteria) []models.WeatherRecord {
	if criteria.EventFilter == "" {
		criteria.EventFilter = models.EventFilterAll
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.criteria = criteria
	s.filtered = Filter(s.weather, criteria)
	return slices.Clone(s.filtered)
}

// ToggleFavorite removes the favorite for weatherID if one exists, otherwise
// creates one named after the matching report.
func (s *Store) ToggleFavorite(ctx context.Context, weatherID string) error {
	s.mu.RLock()
	existing, favorited := models.FindFavorite(s.favorites, weatherID)
	record, known := s.find(weatherID)
	s.mu.RUnlock()

	if favorited {
		if err := s.client.DeleteFavorite(ctx, existing.ID); err != nil {
			s.logger.Errorw("removing favorite", "weather_id", weatherID, "favorite_id", existing.ID, "error", err)
			return &MutationError{Op: "remove", ID: existing.ID, Err: err}
		}

		s.mu.Lock()
		s.favorites = slices.DeleteFunc(s.favorites, func(f models.FavoriteRecord) bool {
			return f.WeatherID == weatherID
		})
		s.mu.Unlock()

		s.logger.Infow("favorite removed", "weather_id", weatherID, "favorite_id", existing.ID)
		return nil
	}

	if !known {
		return &MutationError{Op: "add", ID: weatherID, Err: errors.New("unknown weather report")}
	}

	created, err := s.client.CreateFavorite(ctx, weatherID, record.Area)
	if err != nil {
		s.logger.Errorw("adding favorite", "weather_id", weatherID, "error", err)
		return &MutationError{Op: "add", ID: weatherID, Err: err}
	}

	s.mu.Lock()
	// Another in-flight toggle may have landed first
	if !models.IsFavorited(s.favorites, created.WeatherID) {
		s.favorites = append(s.favorites, *created)
	}
	s.mu.Unlock()

	s.logger.Infow("favorite added", "weather_id", weatherID, "favorite_id", created.ID)
	return nil
}

// RemoveFavorite deletes a favorite by its own id
func (s *Store) RemoveFavorite(ctx context.Context, favoriteID string) error {
	if err := s.client.DeleteFavorite(ctx, favoriteID); err != nil {
		s.logger.Errorw("removing favorite", "favorite_id", favoriteID, "error", err)
		return &MutationError{Op: "remove", ID: favoriteID, Err: err}
	}

	s.mu.Lock()
	s.favorites = slices.DeleteFunc(s.favorites, func(f models.FavoriteRecord) bool {
		return f.ID == favoriteID
	})
	s.mu.Unlock()

	s.logger.Infow("favorite removed", "favorite_id", favoriteID)
	return nil
}

// Weather returns the full collection in fetch order
func (s *Store) Weather() []models.WeatherRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.weather)
}

// Filtered returns the view derived by the last LoadWeather or ApplyFilter
func (s *Store) Filtered() []models.WeatherRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.filtered)
}

// Favorites returns the favorites in the order they were added
func (s *Store) Favorites() []models.FavoriteRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.favorites)
}

// Criteria returns the criteria behind Filtered
func (s *Store) Criteria() models.FilterCriteria {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

// Find returns the report with the given id
func (s *Store) Find(weatherID string) (models.WeatherRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.find(weatherID)
}

// IsFavorited reports whether weatherID has a favorite
func (s *Store) IsFavorited(weatherID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.IsFavorited(s.favorites, weatherID)
}

func (s *Store) find(weatherID string) (models.WeatherRecord, bool) {
	for _, w := range s.weather {
		if w.ID == weatherID {
			return w, true
		}
	}
	return models.WeatherRecord{}, false
}
