package openweather

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/time/rate"

	"weather-dash/api"
	"weather-dash/config"
	"weather-dash/models"
	"weather-dash/models/forecast"
)

const forecastEndpoint = "/forecast"

// OpenWeatherApiClient embeds the common HTTPClient
type OpenWeatherApiClient struct {
	*api.HTTPClient
	apiKey  string
	limiter *rate.Limiter
}

// NewOpenWeatherApiClient creates a new instance of OpenWeatherApiClient
func NewOpenWeatherApiClient(httpClient *api.HTTPClient) *OpenWeatherApiClient {
	return &OpenWeatherApiClient{
		HTTPClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(config.OPEN_WEATHER_REQUESTS_PER_SECOND), config.OPEN_WEATHER_REQUESTS_BURST),
	}
}

// SetCredentials sets the appid sent with every request. An empty key is not
// rejected; the provider answers 401 and the fetch fails upstream.
func (c *OpenWeatherApiClient) SetCredentials(apiKey string) {
	if apiKey == "" {
		log.Println("[OpenWeatherApiClient] Warning: empty API key, requests will be rejected by the provider")
	}
	c.apiKey = apiKey
}

// SetRateLimit replaces the outbound limiter.
func (c *OpenWeatherApiClient) SetRateLimit(limit rate.Limit, burst int) {
	c.limiter = rate.NewLimiter(limit, burst)
}

// GetForecast retrieves the 3-hourly forecast for query.City with query.Count samples
func (c *OpenWeatherApiClient) GetForecast(ctx context.Context, query models.ForecastQuery) (*forecast.Payload, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := query.ToValues()
	params.Set("appid", c.apiKey)

	var response forecast.Payload
	if err := c.Get(ctx, forecastEndpoint, params, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch forecast for %s: %w", query.City, err)
	}
	return &response, nil
}
