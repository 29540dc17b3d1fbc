package openweather

import (
	"context"

	"weather-dash/models"
	"weather-dash/models/forecast"
)

// ForecastAPI defines the interface for interacting with the OpenWeatherMap forecast endpoint
type ForecastAPI interface {
	GetForecast(ctx context.Context, query models.ForecastQuery) (*forecast.Payload, error)
	SetCredentials(apiKey string)
}
