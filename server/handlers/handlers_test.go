package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dash/api"
	"weather-dash/api/openweather"
	"weather-dash/dao/redis"
	"weather-dash/db"
	"weather-dash/metrics"
	"weather-dash/models"
	"weather-dash/models/forecast"
	services "weather-dash/service"
	"weather-dash/view"
)

const fixturePath = "../../resources/forecast_response.json"

type failingAPI struct{}

func (failingAPI) GetForecast(ctx context.Context, q models.ForecastQuery) (*forecast.Payload, error) {
	return nil, errors.New("unexpected status code: 401 Unauthorized")
}

func (failingAPI) SetCredentials(string) {}

func newPageController(t *testing.T, weatherApi openweather.ForecastAPI) *services.PageController {
	t.Helper()
	dao := redis.NewRedisForecastDAO(db.NewMemoryRedisClient(context.Background(), nil), time.Minute)
	fs := services.NewForecastService(dao, weatherApi, nil)
	return services.NewPageController(fs, 2*time.Second, 5*time.Second, nil)
}

func newDashboardHandler(t *testing.T, weatherApi openweather.ForecastAPI) *DashboardHandler {
	t.Helper()
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	return NewDashboardHandler(newPageController(t, weatherApi), renderer, metrics.New(), time.Second)
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	// Setup
	h := newDashboardHandler(t, openweather.NewOpenWeatherApiClientMock(fixturePath))
	req := httptest.NewRequest("GET", "/city/dhaka?units=mph", nil)
	req = mux.SetURLVars(req, map[string]string{CITY_PATH_VAR: "dhaka"})
	rec := httptest.NewRecorder()

	// Act
	h.GetDashboard(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "Dhaka | Weather")
	assert.Contains(t, body, "mph")
	assert.Contains(t, body, "/city/dhaka/chart?cnt=56")
}

func TestDashboardHandler_GetDashboard_DefaultCity(t *testing.T) {
	h := newDashboardHandler(t, openweather.NewOpenWeatherApiClientMock(fixturePath))
	rec := httptest.NewRecorder()

	h.GetDashboard(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sylhet | Weather")
}

func TestDashboardHandler_GetDashboard_FailedFetchStillRenders(t *testing.T) {
	h := newDashboardHandler(t, failingAPI{})
	rec := httptest.NewRecorder()

	h.GetDashboard(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "0°")
	assert.NotContains(t, body, "Loading...")
	assert.NotContains(t, body, "401")
}

func TestDashboardHandler_GetDashboard_InvalidCount(t *testing.T) {
	h := newDashboardHandler(t, openweather.NewOpenWeatherApiClientMock(fixturePath))

	for _, cnt := range []string{"0", "57", "abc"} {
		rec := httptest.NewRecorder()
		h.GetDashboard(rec, httptest.NewRequest("GET", "/?cnt="+cnt, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "cnt=%s", cnt)
	}
}

func TestDashboardHandler_GetChart(t *testing.T) {
	h := newDashboardHandler(t, openweather.NewOpenWeatherApiClientMock(fixturePath))
	req := mux.SetURLVars(httptest.NewRequest("GET", "/city/sylhet/chart?cnt=8", nil), map[string]string{CITY_PATH_VAR: "sylhet"})
	rec := httptest.NewRecorder()

	h.GetChart(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "echarts")
}

func TestForecastHandler_GetForecast(t *testing.T) {
	// Setup
	h := NewForecastHandler(newPageController(t, openweather.NewOpenWeatherApiClientMock(fixturePath)))
	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/v1/forecast/sylhet?cnt=16", nil), map[string]string{CITY_PATH_VAR: "sylhet"})
	rec := httptest.NewRecorder()

	// Act
	h.GetForecast(rec, req)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ForecastResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.State)
	assert.Equal(t, "Sylhet", resp.View.City)
	assert.Len(t, resp.View.Hourly, 16)
	assert.Len(t, resp.View.Daily, 2)
	assert.Empty(t, resp.Error)
}

func TestForecastHandler_GetForecast_Failed(t *testing.T) {
	h := NewForecastHandler(newPageController(t, failingAPI{}))
	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/v1/forecast/dhaka", nil), map[string]string{CITY_PATH_VAR: "dhaka"})
	rec := httptest.NewRecorder()

	h.GetForecast(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var resp ForecastResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp.State)
	assert.Equal(t, fetchFailedMessage, resp.Error)
	assert.NotContains(t, rec.Body.String(), "401")
	assert.Equal(t, "0°", resp.View.Current.Temp)
}

func TestForecastHandler_GetForecast_UnreachableProviderHidesKey(t *testing.T) {
	// Setup
	client := openweather.NewOpenWeatherApiClient(api.NewHTTPClient("http://127.0.0.1:1"))
	client.SetCredentials("SUPERSECRETKEY")
	h := NewForecastHandler(newPageController(t, client))
	req := mux.SetURLVars(httptest.NewRequest("GET", "/api/v1/forecast/dhaka", nil), map[string]string{CITY_PATH_VAR: "dhaka"})
	rec := httptest.NewRecorder()

	// Act
	h.GetForecast(rec, req)

	// Assert
	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.NotContains(t, rec.Body.String(), "SUPERSECRETKEY")
	assert.NotContains(t, rec.Body.String(), "appid")

	_, err := client.GetForecast(context.Background(), models.ForecastQuery{City: "dhaka", Count: 56})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SUPERSECRETKEY")
}

func TestForecastHandler_Ping(t *testing.T) {
	h := NewForecastHandler(nil)
	rec := httptest.NewRecorder()

	h.Ping(rec, httptest.NewRequest("GET", "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"pong"}`, rec.Body.String())
}
