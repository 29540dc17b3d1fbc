package services

import (
	"context"
	"errors"
	"log"
	"time"

	"code.cloudfoundry.org/clock"

	"weather-dash/dao/redis"
	"weather-dash/models"
)

// ForecastRefresherService keeps cached and default-city forecasts warm.
type ForecastRefresherService struct {
	forecastDao     *redis.RedisForecastDAO
	forecastService *ForecastService
	defaultCities   []string
	clock           clock.Clock
}

// NewForecastRefresherService constructs a new refresher with dependencies.
func NewForecastRefresherService(
	forecastDao *redis.RedisForecastDAO,
	forecastService *ForecastService,
	defaultCities []string,
	clk clock.Clock,
) *ForecastRefresherService {
	if clk == nil {
		clk = clock.NewClock()
	}
	return &ForecastRefresherService{
		forecastDao:     forecastDao,
		forecastService: forecastService,
		defaultCities:   defaultCities,
		clock:           clk,
	}
}

// StartPeriodicJob launches the background loop at the given interval. A
// non-positive interval disables the job.
func (fr *ForecastRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		log.Println("[ForecastRefresherService] Periodic refresh disabled.")
		return
	}
	go fr.startPeriodicJob(ctx, interval)
}

func (fr *ForecastRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := fr.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[ForecastRefresherService] Stopping periodic forecast refresher job.")
			return
		case <-ticker.C():
			log.Println("[ForecastRefresherService] Running periodic forecast refresher job.")
			if err := fr.RefreshForecasts(ctx); err != nil {
				log.Printf("[ForecastRefresherService] RefreshForecasts returned error: %v", err)
			} else {
				log.Println("[ForecastRefresherService] RefreshForecasts completed successfully.")
			}
		}
	}
}

// RefreshForecasts refetches every cached query plus the default cities once.
// Failures for one query do not stop the others.
func (fr *ForecastRefresherService) RefreshForecasts(ctx context.Context) error {
	queries, err := fr.queries()
	if err != nil {
		return err
	}

	var errs []error
	for _, q := range queries {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		if _, err := fr.forecastService.RefreshForecast(ctx, q); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (fr *ForecastRefresherService) queries() ([]models.ForecastQuery, error) {
	cached, err := fr.forecastDao.ListCachedQueries()
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	var out []models.ForecastQuery
	add := func(q models.ForecastQuery) {
		if q.City == "" || seen[q.Key()] {
			return
		}
		seen[q.Key()] = true
		out = append(out, q)
	}

	for _, city := range fr.defaultCities {
		add(models.NewForecastQuery(city, models.DefaultSampleCount))
	}
	for _, q := range cached {
		add(q)
	}
	return out, nil
}
