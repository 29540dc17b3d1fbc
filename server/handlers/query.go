package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"weather-dash/config"
	"weather-dash/dashboard"
	"weather-dash/models"
)

const (
	CITY_PATH_VAR   = "city"
	COUNT_QUERY_ARG = "cnt"
	UNITS_QUERY_ARG = "units"
)

// pageRequest is a parsed dashboard request.
type pageRequest struct {
	Query models.ForecastQuery
	Unit  dashboard.SpeedUnit
}

// parseRequest reads {city}, ?cnt= and ?units=. Requests without a city path
// variable use the default city.
func parseRequest(r *http.Request) (pageRequest, error) {
	city := strings.TrimSpace(mux.Vars(r)[CITY_PATH_VAR])
	if city == "" {
		city = config.DEFAULT_CITY
	}

	count := config.DEFAULT_SAMPLE_COUNT
	if raw := r.URL.Query().Get(COUNT_QUERY_ARG); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > config.MAX_SAMPLE_COUNT {
			return pageRequest{}, fmt.Errorf("invalid %s %q: must be an integer in [1, %d]", COUNT_QUERY_ARG, raw, config.MAX_SAMPLE_COUNT)
		}
		count = n
	}

	return pageRequest{
		Query: models.NewForecastQuery(city, count),
		Unit:  dashboard.ParseSpeedUnit(r.URL.Query().Get(UNITS_QUERY_ARG)),
	}, nil
}

func (p pageRequest) viewOptions() dashboard.ViewOptions {
	return dashboard.ViewOptions{City: p.Query.City, Unit: p.Unit}
}

func (p pageRequest) chartURL() string {
	v := url.Values{}
	v.Set(COUNT_QUERY_ARG, strconv.Itoa(p.Query.Count))
	v.Set(UNITS_QUERY_ARG, string(p.Unit))
	return "/city/" + url.PathEscape(p.Query.City) + "/chart?" + v.Encode()
}
