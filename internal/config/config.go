package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds environment-driven settings shared by the API, dashboard and CLI.
type Config struct {
	APIURL    string        // Base URL the clients talk to
	Port      int           // Port the mock API listens on
	Latency   time.Duration // Simulated latency added to every API response
	DBPath    string        // sqlite path for favorites; ":memory:" keeps them in process, "file" uses data/area-weather.db
	RateLimit float64       // Client requests per second; 0 disables limiting
	LogFile   string        // Empty logs to stderr
	Debug     bool
}

// Default returns the configuration used when no environment is set
func Default() Config {
	return Config{
		APIURL:    "http://localhost:8080",
		Port:      8080,
		Latency:   800 * time.Millisecond,
		DBPath:    ":memory:",
		RateLimit: 10,
	}
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Default()

	if url := os.Getenv("WEATHER_API_URL"); url != "" {
		cfg.APIURL = url
	}

	if portStr := os.Getenv("WEATHER_API_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil || port <= 0 || port > 65535 {
			return cfg, fmt.Errorf("invalid WEATHER_API_PORT: %s", portStr)
		}
		cfg.Port = port
	}

	if latencyStr := os.Getenv("WEATHER_API_LATENCY"); latencyStr != "" {
		latency, err := time.ParseDuration(latencyStr)
		if err != nil || latency < 0 {
			return cfg, fmt.Errorf("invalid WEATHER_API_LATENCY: %s", latencyStr)
		}
		cfg.Latency = latency
	}

	if path := os.Getenv("WEATHER_DB_PATH"); path != "" {
		cfg.DBPath = path
	}

	if rateStr := os.Getenv("WEATHER_RATE_LIMIT"); rateStr != "" {
		rate, err := strconv.ParseFloat(rateStr, 64)
		if err != nil || rate < 0 {
			return cfg, fmt.Errorf("invalid WEATHER_RATE_LIMIT: %s", rateStr)
		}
		cfg.RateLimit = rate
	}

	cfg.LogFile = os.Getenv("WEATHER_LOG_FILE")

	if debugStr := os.Getenv("WEATHER_DEBUG"); debugStr != "" {
		debug, err := strconv.ParseBool(debugStr)
		if err != nil {
			return cfg, fmt.Errorf("invalid WEATHER_DEBUG: %s", debugStr)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}

// ListenAddr returns the host:port string for the mock API server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
