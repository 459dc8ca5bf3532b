package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ngmaloney/area-weather/internal/models"
)

// HTTPClient implements Client over HTTP
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewHTTPClient creates a new API client rooted at baseURL
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: "AreaWeather/1.0 (github.com/ngmaloney/area-weather)",
	}
}

// ListWeather retrieves every area's weather report
func (c *HTTPClient) ListWeather(ctx context.Context) ([]models.WeatherRecord, error) {
	var resp struct {
		Weathers []models.WeatherRecord `json:"weathers"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/weather", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch weather data: %w", err)
	}
	if resp.Weathers == nil {
		resp.Weathers = []models.WeatherRecord{}
	}
	return resp.Weathers, nil
}

// GetWeather retrieves a single area's weather report. Both the wrapped
// {"weather": {...}} form and a bare record are accepted.
func (c *HTTPClient) GetWeather(ctx context.Context, id string) (*models.WeatherRecord, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/weather/"+url.PathEscape(id), nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to fetch weather %s: %w", id, err)
	}

	var wrapped struct {
		Weather *models.WeatherRecord `json:"weather"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode weather %s: %w", id, err)
	}
	if wrapped.Weather != nil {
		return wrapped.Weather, nil
	}

	var bare models.WeatherRecord
	if err := json.Unmarshal(raw, &bare); err != nil {
		return nil, fmt.Errorf("failed to decode weather %s: %w", id, err)
	}
	if bare.ID == "" {
		return nil, fmt.Errorf("weather %s: empty response", id)
	}
	return &bare, nil
}

// ListFavorites retrieves the user's favorites
func (c *HTTPClient) ListFavorites(ctx context.Context) ([]models.FavoriteRecord, error) {
	var resp struct {
		Favorites []models.FavoriteRecord `json:"favorites"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/favorites", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch favorites: %w", err)
	}
	if resp.Favorites == nil {
		resp.Favorites = []models.FavoriteRecord{}
	}
	return resp.Favorites, nil
}

// CreateFavorite bookmarks a weather report
func (c *HTTPClient) CreateFavorite(ctx context.Context, weatherID, areaName string) (*models.FavoriteRecord, error) {
	body := struct {
		WeatherID string `json:"weatherId"`
		AreaName  string `json:"areaName"`
	}{WeatherID: weatherID, AreaName: areaName}

	var resp struct {
		Favorite *models.FavoriteRecord `json:"favorite"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/favorites", body, &resp); err != nil {
		return nil, fmt.Errorf("failed to add favorite: %w", err)
	}
	if resp.Favorite == nil || resp.Favorite.ID == "" {
		return nil, fmt.Errorf("failed to add favorite: response has no favorite")
	}
	return resp.Favorite, nil
}

// DeleteFavorite removes a favorite by id
func (c *HTTPClient) DeleteFavorite(ctx context.Context, id string) error {
	var resp struct {
		Success bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodDelete, "/api/favorites/"+url.PathEscape(id), nil, &resp); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if !resp.Success {
		return fmt.Errorf("failed to remove favorite: server did not confirm")
	}
	return nil
}

// do sends a request and decodes the JSON response into out. Non-2xx
// statuses become *StatusError and an "error" field becomes *APIError.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var errBody struct {
		Error string `json:"error"`
	}
	// Best effort: a non-JSON body simply has no error field
	_ = json.Unmarshal(data, &errBody)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := errBody.Error
		if msg == "" {
			msg = strings.TrimSpace(string(data))
		}
		return &StatusError{StatusCode: resp.StatusCode, Body: msg}
	}

	if errBody.Error != "" {
		return &APIError{Message: errBody.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
