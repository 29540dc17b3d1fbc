package services

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"weather-dash/models"
	"weather-dash/models/forecast"
)

type forecastAPIMock struct {
	mock.Mock
}

func (m *forecastAPIMock) GetForecast(ctx context.Context, q models.ForecastQuery) (*forecast.Payload, error) {
	args := m.Called(ctx, q)
	p, _ := args.Get(0).(*forecast.Payload)
	return p, args.Error(1)
}

func (m *forecastAPIMock) SetCredentials(apiKey string) {
	m.Called(apiKey)
}

// cityAPI answers every query with a payload named after the queried city.
type cityAPI struct{}

func (cityAPI) GetForecast(ctx context.Context, q models.ForecastQuery) (*forecast.Payload, error) {
	return payloadFor(q.City, 300), nil
}

func (cityAPI) SetCredentials(string) {}

func payloadFor(city string, temp float64) *forecast.Payload {
	return &forecast.Payload{
		Cod:  "200",
		Cnt:  1,
		List: []forecast.Entry{{Main: forecast.Main{Temp: temp}, DtTxt: "2023-12-19 12:00:00"}},
		City: forecast.City{Name: city},
	}
}

func queryFor(city string) models.ForecastQuery {
	return models.NewForecastQuery(city, models.DefaultSampleCount)
}

var errUpstream = errors.New("upstream unavailable")
