package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"weather-dash/config"
	"weather-dash/di"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[MAIN] Could not load .env: %v", err)
	}

	container, err := di.NewContainer(config.GetAppEnv())
	if err != nil {
		log.Fatalf("[MAIN] Failed to initialize container: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log.Println("[MAIN] Warming forecast cache")
	if err := container.ForecastRefresherService.RefreshForecasts(ctx); err != nil {
		log.Printf("[MAIN] Initial refresh finished with errors: %v", err)
	}
	container.ForecastRefresherService.StartPeriodicJob(ctx, config.GetRefreshInterval())

	if err := container.DashboardHttpServer.Start(); err != nil {
		log.Fatalf("[MAIN] Server error: %v", err)
	}
}
