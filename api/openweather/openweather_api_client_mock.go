package openweather

import (
	"context"
	"log"

	"weather-dash/models"
	"weather-dash/models/forecast"
	"weather-dash/util"
)

// OpenWeatherApiClientMock serves a recorded forecast from disk
type OpenWeatherApiClientMock struct {
	responsePath string
}

// NewOpenWeatherApiClientMock creates a new instance of OpenWeatherApiClientMock
func NewOpenWeatherApiClientMock(responsePath string) *OpenWeatherApiClientMock {
	return &OpenWeatherApiClientMock{responsePath: responsePath}
}

func (c *OpenWeatherApiClientMock) SetCredentials(apiKey string) {}

// GetForecast returns the recorded payload renamed to the requested city and
// truncated to the requested sample count.
func (c *OpenWeatherApiClientMock) GetForecast(ctx context.Context, query models.ForecastQuery) (*forecast.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	response, err := util.ReadForecastPayloadFromJSON(c.responsePath)
	if err != nil {
		log.Printf("[OpenWeatherApiClientMock] Could not read forecast response from %s: %v", c.responsePath, err)
		return nil, err
	}

	if query.City != "" {
		response.City.Name = util.CapitalizeCityName(query.City)
	}
	if query.Count > 0 && query.Count < len(response.List) {
		response.List = response.List[:query.Count]
	}
	response.Cnt = len(response.List)

	return response, nil
}
