package api

import (
	"context"
	"fmt"

	"github.com/ngmaloney/area-weather/internal/models"
	"golang.org/x/time/rate"
)

// RateLimitedClient wraps a Client with a request rate limit
type RateLimitedClient struct {
	client  Client
	limiter *rate.Limiter
}

// NewRateLimitedClient creates a new rate limited client.
// rps is the maximum requests per second allowed, burst the maximum burst size.
func NewRateLimitedClient(client Client, rps float64, burst int) *RateLimitedClient {
	return &RateLimitedClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedClient) wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return nil
}

func (r *RateLimitedClient) ListWeather(ctx context.Context) ([]models.WeatherRecord, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.client.ListWeather(ctx)
}

func (r *RateLimitedClient) GetWeather(ctx context.Context, id string) (*models.WeatherRecord, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.client.GetWeather(ctx, id)
}

func (r *RateLimitedClient) ListFavorites(ctx context.Context) ([]models.FavoriteRecord, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.client.ListFavorites(ctx)
}

func (r *RateLimitedClient) CreateFavorite(ctx context.Context, weatherID, areaName string) (*models.FavoriteRecord, error) {
	if err := r.wait(ctx); err != nil {
		return nil, err
	}
	return r.client.CreateFavorite(ctx, weatherID, areaName)
}

func (r *RateLimitedClient) DeleteFavorite(ctx context.Context, id string) error {
	if err := r.wait(ctx); err != nil {
		return err
	}
	return r.client.DeleteFavorite(ctx, id)
}

// New builds the client used by the binaries: an HTTP client, rate limited
// unless rps is zero.
func New(baseURL string, rps float64) Client {
	var c Client = NewHTTPClient(baseURL)
	if rps > 0 {
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		c = NewRateLimitedClient(c, rps, burst)
	}
	return c
}
