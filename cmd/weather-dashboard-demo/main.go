package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/area-weather/internal/api"
	"github.com/ngmaloney/area-weather/internal/database"
	"github.com/ngmaloney/area-weather/internal/favorites"
	"github.com/ngmaloney/area-weather/internal/log"
	"github.com/ngmaloney/area-weather/internal/mockapi"
	"github.com/ngmaloney/area-weather/internal/store"
	"github.com/ngmaloney/area-weather/internal/ui"
)

// This demo runs the dashboard against an in-process mock API
func main() {
	if err := log.Init(false, "weather-dashboard-demo.log"); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.Open(database.MemoryPath)
	if err != nil {
		fmt.Printf("Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		fmt.Printf("Error starting mock API: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := mockapi.New(favorites.NewRepository(db), mockapi.Options{
		Latency: 800 * time.Millisecond,
		Logger:  log.Logger(),
	})
	go func() {
		if err := srv.Serve(ctx, ln); err != nil {
			log.Errorw("mock API stopped", "error", err)
		}
	}()

	baseURL := "http://" + ln.Addr().String()
	s := store.New(api.NewHTTPClient(baseURL), log.Logger())

	p := tea.NewProgram(ui.NewModel(s, ui.Options{}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running application: %v\n", err)
		os.Exit(1)
	}
}
