package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ngmaloney/area-weather/internal/api"
	"github.com/ngmaloney/area-weather/internal/config"
	"github.com/ngmaloney/area-weather/internal/log"
	"github.com/ngmaloney/area-weather/internal/models"
	"github.com/ngmaloney/area-weather/internal/render"
	"github.com/ngmaloney/area-weather/internal/store"
	"github.com/urfave/cli/v2"
)

const (
	ExitSuccess      = 0
	ExitGeneralError = 1
	ExitUsageError   = 2
	ExitDataError    = 3
)

const requestTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitUsageError)
	}

	if err := newApp(cfg).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitGeneralError)
	}
}

func newApp(cfg config.Config) *cli.App {
	return &cli.App{
		Name:    "weatherctl",
		Usage:   "A scriptable client for the Kigali area weather API",
		Version: "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Aliases: []string{"a"},
				Value:   cfg.APIURL,
				Usage:   "Base URL of the weather API",
				EnvVars: []string{"WEATHER_API_URL"},
			},
			&cli.Float64Flag{
				Name:  "rate-limit",
				Value: cfg.RateLimit,
				Usage: "Maximum requests per second (0 disables limiting)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output JSON instead of text",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log requests to stderr",
			},
		},
		Before: func(c *cli.Context) error {
			if !c.Bool("verbose") {
				return nil
			}
			return log.Init(true, "")
		},
		After: func(c *cli.Context) error {
			log.Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List weather reports",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "search",
						Aliases: []string{"s"},
						Usage:   "Case-insensitive area name filter",
					},
					&cli.StringFlag{
						Name:    "event",
						Aliases: []string{"e"},
						Value:   "all",
						Usage:   "Event filter: all, suitable, caution or unsuitable",
					},
				},
				Action: listWeather,
			},
			{
				Name:      "show",
				Usage:     "Show the detailed breakdown of one report",
				ArgsUsage: "<weather-id>",
				Action:    showWeather,
			},
			{
				Name:   "favorites",
				Usage:  "List favorite areas",
				Action: listFavorites,
			},
			{
				Name:      "toggle",
				Usage:     "Add a report to favorites, or remove it if already favorited",
				ArgsUsage: "<weather-id>",
				Action:    toggleFavorite,
			},
			{
				Name:      "remove",
				Usage:     "Remove a favorite",
				ArgsUsage: "<favorite-id>",
				Action:    removeFavorite,
			},
		},
	}
}

func getClient(c *cli.Context) api.Client {
	return api.New(c.String("api"), c.Float64("rate-limit"))
}

func newContext(c *cli.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Context, requestTimeout)
}

func outputJSON(c *cli.Context, v interface{}) error {
	encoder := json.NewEncoder(c.App.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func listWeather(c *cli.Context) error {
	filter, err := models.ParseEventFilter(c.String("event"))
	if err != nil {
		return cli.Exit(err.Error(), ExitUsageError)
	}

	ctx, cancel := newContext(c)
	defer cancel()

	records, err := getClient(c).ListWeather(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to load weather data: %v", err), ExitDataError)
	}

	filtered := store.Filter(records, models.FilterCriteria{
		SearchTerm:  c.String("search"),
		EventFilter: filter,
	})

	if c.Bool("json") {
		return outputJSON(c, map[string]interface{}{
			"count":    len(filtered),
			"weathers": filtered,
		})
	}

	if len(filtered) == 0 {
		fmt.Fprintln(c.App.Writer, render.EmptyCardsTitle)
		fmt.Fprintln(c.App.Writer, render.EmptyCardsHint)
		return nil
	}
	for _, w := range filtered {
		fmt.Fprintf(c.App.Writer, "%-3s %-12s %3d°C  %-14s %s\n",
			w.ID, w.Area, w.Temperature, w.Condition, strings.ToUpper(string(w.EventRecommendation)))
	}
	return nil
}

func showWeather(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("Usage: weatherctl show <weather-id>", ExitUsageError)
	}

	ctx, cancel := newContext(c)
	defer cancel()

	w, err := getClient(c).GetWeather(ctx, c.Args().Get(0))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to get weather: %v", err), ExitDataError)
	}

	if c.Bool("json") {
		return outputJSON(c, w)
	}
	fmt.Fprintln(c.App.Writer, render.Detail(*w))
	return nil
}

func listFavorites(c *cli.Context) error {
	ctx, cancel := newContext(c)
	defer cancel()

	favorites, err := getClient(c).ListFavorites(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to get favorites: %v", err), ExitDataError)
	}

	if c.Bool("json") {
		return outputJSON(c, map[string]interface{}{
			"count":     len(favorites),
			"favorites": favorites,
		})
	}
	fmt.Fprintln(c.App.Writer, render.Favorites(favorites, -1))
	return nil
}

// toggleFavorite loads current state through a store so the toggle follows
// the same add-or-remove rule as the dashboard.
func toggleFavorite(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("Usage: weatherctl toggle <weather-id>", ExitUsageError)
	}
	weatherID := c.Args().Get(0)

	ctx, cancel := newContext(c)
	defer cancel()

	s := store.New(getClient(c), log.Logger())
	if err := s.LoadWeather(ctx); err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	if err := s.LoadFavorites(ctx); err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}
	if _, ok := s.Find(weatherID); !ok {
		return cli.Exit(fmt.Sprintf("Unknown weather id %s", weatherID), ExitUsageError)
	}

	if err := s.ToggleFavorite(ctx, weatherID); err != nil {
		return cli.Exit(err.Error(), ExitDataError)
	}

	favorited := s.IsFavorited(weatherID)
	if c.Bool("json") {
		return outputJSON(c, map[string]interface{}{
			"success":   true,
			"weatherId": weatherID,
			"favorited": favorited,
			"favorites": s.Favorites(),
		})
	}

	w, _ := s.Find(weatherID)
	if favorited {
		fmt.Fprintf(c.App.Writer, "%s %s added to favorites\n", render.FavoritedGlyph, w.Area)
	} else {
		fmt.Fprintf(c.App.Writer, "%s %s removed from favorites\n", render.NotFavoritedGlyph, w.Area)
	}
	return nil
}

func removeFavorite(c *cli.Context) error {
	if c.NArg() < 1 {
		return cli.Exit("Usage: weatherctl remove <favorite-id>", ExitUsageError)
	}
	favoriteID := c.Args().Get(0)

	ctx, cancel := newContext(c)
	defer cancel()

	if err := getClient(c).DeleteFavorite(ctx, favoriteID); err != nil {
		return cli.Exit(fmt.Sprintf("Failed to remove favorite: %v", err), ExitDataError)
	}

	if c.Bool("json") {
		return outputJSON(c, map[string]interface{}{
			"success": true,
			"removed": favoriteID,
		})
	}
	fmt.Fprintf(c.App.Writer, "Removed favorite #%s\n", favoriteID)
	return nil
}
