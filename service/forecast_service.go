package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"weather-dash/api/openweather"
	"weather-dash/dao/redis"
	"weather-dash/dashboard"
	"weather-dash/metrics"
	"weather-dash/models"
	"weather-dash/models/forecast"
)

// ForecastService serves forecasts from the cache, falling back to the API on a miss.
type ForecastService struct {
	forecastDao *redis.RedisForecastDAO
	weatherApi  openweather.ForecastAPI
	metrics     *metrics.Metrics
}

// NewForecastService constructs a new ForecastService. m may be nil.
func NewForecastService(
	forecastDao *redis.RedisForecastDAO,
	weatherApi openweather.ForecastAPI,
	m *metrics.Metrics) *ForecastService {

	return &ForecastService{
		forecastDao: forecastDao,
		weatherApi:  weatherApi,
		metrics:     m,
	}
}

// GetForecast returns the cached payload for q or fetches and caches a fresh
// one. Cache failures are logged and never fail the call.
func (fs *ForecastService) GetForecast(ctx context.Context, q models.ForecastQuery) (*forecast.Payload, error) {
	cached, err := fs.forecastDao.GetForecast(q)
	if err != nil {
		log.Printf("[ForecastService] Cache read failed for %s: %v", q, err)
	}
	if cached != nil {
		fs.metrics.CacheHit()
		return cached, nil
	}
	fs.metrics.CacheMiss()

	return fs.RefreshForecast(ctx, q)
}

// RefreshForecast always calls the API and overwrites the cached payload.
func (fs *ForecastService) RefreshForecast(ctx context.Context, q models.ForecastQuery) (*forecast.Payload, error) {
	start := time.Now()
	payload, err := fs.weatherApi.GetForecast(ctx, q)
	if err == nil && (payload == nil || len(payload.List) == 0) {
		err = dashboard.ErrEmptyPayload
	}
	fs.metrics.ObserveFetch(q.City, err, time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", q, err)
	}

	if err := fs.forecastDao.SetForecast(q, payload); err != nil {
		log.Printf("[ForecastService] Cache write failed for %s: %v", q, err)
	}
	return payload, nil
}
