// Package mockapi serves the simulated weather and favorites REST API.
package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/ngmaloney/area-weather/internal/favorites"
	"github.com/ngmaloney/area-weather/internal/models"
	"go.uber.org/zap"
)

// Error strings returned in the {"error": ...} payload
const (
	ErrMsgAlreadyFavorited = "Already in favorites"
	ErrMsgFavoriteNotFound = "Favorite not found"
	ErrMsgWeatherNotFound  = "Weather not found"
)

// Options configures a Server
type Options struct {
	Latency time.Duration          // Added before every response
	Weather []models.WeatherRecord // Defaults to Fixtures()
	Logger  *zap.SugaredLogger
}

// Server bundles the router and the data it serves.
type Server struct {
	repo    *favorites.Repository
	weather []models.WeatherRecord
	byID    map[string]models.WeatherRecord
	latency time.Duration
	logger  *zap.SugaredLogger
	router  *mux.Router
}

// New constructs a server with routes and middleware.
func New(repo *favorites.Repository, opts Options) *Server {
	weather := opts.Weather
	if weather == nil {
		weather = Fixtures()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	s := &Server{
		repo:    repo,
		weather: weather,
		byID:    make(map[string]models.WeatherRecord, len(weather)),
		latency: opts.Latency,
		logger:  logger,
	}
	for _, w := range weather {
		s.byID[w.ID] = w
	}

	s.router = s.setupRouter()
	return s
}

// Handler exposes the router (for tests and embedding).
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr and blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	s.logger.Infow("mock API listening", "addr", ln.Addr().String(), "latency", s.latency)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down mock API")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) setupRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.requestLogMiddleware)

	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(s.latencyMiddleware)
	api.HandleFunc("/weather", s.handleListWeather).Methods(http.MethodGet)
	api.HandleFunc("/weather/{id}", s.handleGetWeather).Methods(http.MethodGet)
	api.HandleFunc("/favorites", s.handleListFavorites).Methods(http.MethodGet)
	api.HandleFunc("/favorites", s.handleCreateFavorite).Methods(http.MethodPost)
	api.HandleFunc("/favorites/{id}", s.handleDeleteFavorite).Methods(http.MethodDelete)

	return router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListWeather(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"weathers": s.weather})
}

func (s *Server) handleGetWeather(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	weather, ok := s.byID[id]
	if !ok {
		writeError(w, http.StatusNotFound, ErrMsgWeatherNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"weather": weather})
}

func (s *Server) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	list, err := s.repo.List(r.Context())
	if err != nil {
		s.logger.Errorw("listing favorites", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load favorites")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"favorites": list})
}

type createFavoriteRequest struct {
	WeatherID string `json:"weatherId"`
	AreaName  string `json:"areaName"`
}

func (s *Server) handleCreateFavorite(w http.ResponseWriter, r *http.Request) {
	var req createFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.WeatherID = strings.TrimSpace(req.WeatherID)
	if req.WeatherID == "" {
		writeError(w, http.StatusBadRequest, "weatherId is required")
		return
	}

	favorite, err := s.repo.Create(r.Context(), req.WeatherID, req.AreaName)
	switch {
	case errors.Is(err, favorites.ErrDuplicate):
		// Reported in the body with a success status, as clients must check the error field
		writeError(w, http.StatusOK, ErrMsgAlreadyFavorited)
		return
	case err != nil:
		s.logger.Errorw("creating favorite", "weather_id", req.WeatherID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save favorite")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"favorite": favorite})
}

func (s *Server) handleDeleteFavorite(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	err := s.repo.Delete(r.Context(), id)
	switch {
	case errors.Is(err, favorites.ErrNotFound):
		writeError(w, http.StatusOK, ErrMsgFavoriteNotFound)
		return
	case err != nil:
		s.logger.Errorw("deleting favorite", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete favorite")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
