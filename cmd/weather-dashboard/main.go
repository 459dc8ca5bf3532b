package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/area-weather/internal/api"
	"github.com/ngmaloney/area-weather/internal/config"
	"github.com/ngmaloney/area-weather/internal/log"
	"github.com/ngmaloney/area-weather/internal/models"
	"github.com/ngmaloney/area-weather/internal/store"
	"github.com/ngmaloney/area-weather/internal/ui"
)

const defaultLogFile = "weather-dashboard.log"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	apiURL := flag.String("api", cfg.APIURL, "Base URL of the weather API")
	search := flag.String("search", "", "Initial area search term (e.g., Kicukiro)")
	event := flag.String("event", "all", "Initial event filter: all, suitable, caution or unsuitable")
	flag.Parse()

	filter, err := models.ParseEventFilter(*event)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs always go to a file
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = defaultLogFile
	}
	if err := log.Init(cfg.Debug, logFile); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Debugw("configuration", "rate_limit", cfg.RateLimit, "log_file", logFile)
	log.Infow("starting dashboard", "api", *apiURL, "search", *search, "event", filter)

	s := store.New(api.New(*apiURL, cfg.RateLimit), log.Logger())
	m := ui.NewModel(s, ui.Options{SearchTerm: *search, EventFilter: filter})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Errorw("dashboard exited", "error", err)
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
