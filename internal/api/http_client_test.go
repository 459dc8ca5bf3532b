package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ngmaloney/area-weather/internal/database"
	"github.com/ngmaloney/area-weather/internal/favorites"
	"github.com/ngmaloney/area-weather/internal/mockapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockAPI(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := database.Open(database.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ts := httptest.NewServer(mockapi.New(favorites.NewRepository(db), mockapi.Options{}).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestNewHTTPClient(t *testing.T) {
	client := NewHTTPClient("http://localhost:8080/")

	if client.baseURL != "http://localhost:8080" {
		t.Errorf("baseURL = %s, want trailing slash trimmed", client.baseURL)
	}
	if client.httpClient.Timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", client.httpClient.Timeout)
	}
	if client.userAgent == "" {
		t.Error("userAgent should not be empty")
	}
}

func TestHTTPClient_Headers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("User-Agent header not set")
		}
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("Accept = %s, want application/json", r.Header.Get("Accept"))
		}
		if r.Method == http.MethodPost && r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Content-Type = %s, want application/json", r.Header.Get("Content-Type"))
		}
		w.Write([]byte(`{"weathers":[],"favorite":{"id":"1","weatherId":"2","areaName":"Gasabo"}}`))
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL)
	ctx := context.Background()

	_, err := client.ListWeather(ctx)
	require.NoError(t, err)
	_, err = client.CreateFavorite(ctx, "2", "Gasabo")
	require.NoError(t, err)
}

func TestHTTPClient_AgainstMockAPI(t *testing.T) {
	ts := newMockAPI(t)
	client := NewHTTPClient(ts.URL)
	ctx := context.Background()

	weather, err := client.ListWeather(ctx)
	require.NoError(t, err)
	require.Len(t, weather, 8)
	assert.Equal(t, "Nyarugenge", weather[0].Area)

	one, err := client.GetWeather(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, "Kimironko", one.Area)

	favs, err := client.ListFavorites(ctx)
	require.NoError(t, err)
	assert.Empty(t, favs)

	created, err := client.CreateFavorite(ctx, "4", "Kimironko")
	require.NoError(t, err)
	assert.Equal(t, "4", created.WeatherID)
	assert.NotEmpty(t, created.ID)

	_, err = client.CreateFavorite(ctx, "4", "Kimironko")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlreadyFavorited), "duplicate should map to ErrAlreadyFavorited, got %v", err)

	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))

	require.NoError(t, client.DeleteFavorite(ctx, created.ID))

	err = client.DeleteFavorite(ctx, created.ID)
	assert.ErrorIs(t, err, ErrFavoriteNotFound)
}

func TestHTTPClient_GetWeatherNotFound(t *testing.T) {
	ts := newMockAPI(t)
	client := NewHTTPClient(ts.URL)

	_, err := client.GetWeather(context.Background(), "99")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, mockapi.ErrMsgWeatherNotFound, statusErr.Body)
}

func TestHTTPClient_GetWeatherBareRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"5","area":"Remera","eventRecommendation":"suitable"}`))
	}))
	defer server.Close()

	got, err := NewHTTPClient(server.URL).GetWeather(context.Background(), "5")
	require.NoError(t, err)
	assert.Equal(t, "Remera", got.Area)
}

func TestHTTPClient_ErrorResponses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, "boom"},
		{"service unavailable", http.StatusServiceUnavailable, `{"error":"maintenance"}`},
		{"malformed json", http.StatusOK, `{"weathers":[`},
		{"error field with 200", http.StatusOK, `{"error":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewHTTPClient(server.URL).ListWeather(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestHTTPClient_CreateWithoutFavorite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := NewHTTPClient(server.URL).CreateFavorite(context.Background(), "1", "Nyarugenge")
	assert.Error(t, err, "a response without a favorite must not be treated as success")
}

func TestHTTPClient_DeleteWithoutSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	err := NewHTTPClient(server.URL).DeleteFavorite(context.Background(), "1")
	assert.Error(t, err)
}

func TestHTTPClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewHTTPClient(url).ListFavorites(context.Background())
	assert.Error(t, err)
}

func TestHTTPClient_ContextCancelled(t *testing.T) {
	ts := newMockAPI(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPClient(ts.URL).ListWeather(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
