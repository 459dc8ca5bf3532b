package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ngmaloney/area-weather/internal/config"
	"github.com/ngmaloney/area-weather/internal/database"
	"github.com/ngmaloney/area-weather/internal/favorites"
	"github.com/ngmaloney/area-weather/internal/log"
	"github.com/ngmaloney/area-weather/internal/mockapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	addr := flag.String("addr", cfg.ListenAddr(), "Address to listen on")
	latency := flag.Duration("latency", cfg.Latency, "Simulated latency added to every API response")
	dbPath := flag.String("db", cfg.DBPath, "sqlite path for favorites (\":memory:\" keeps them in process, \"file\" uses data/area-weather.db)")
	flag.Parse()

	if err := log.Init(cfg.Debug, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.Open(*dbPath)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := mockapi.New(favorites.NewRepository(db), mockapi.Options{
		Latency: *latency,
		Logger:  log.Logger(),
	})
	if err := srv.Run(ctx, *addr); err != nil {
		log.Errorw("mock API stopped", "error", err)
		return
	}
	log.Info("mock API stopped")
}
