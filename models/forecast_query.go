// models/forecast_query.go
package models

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultSampleCount is the number of 3-hourly samples requested per city.
const DefaultSampleCount = 56

// ForecastQuery identifies one outbound forecast request. Both fields take part
// in the cache key so that distinct queries never alias.
type ForecastQuery struct {
	City  string
	Count int
}

// NewForecastQuery normalizes the city name and applies the default sample count
// when count is not positive.
func NewForecastQuery(city string, count int) ForecastQuery {
	if count <= 0 {
		count = DefaultSampleCount
	}
	return ForecastQuery{
		City:  strings.ToLower(strings.TrimSpace(city)),
		Count: count,
	}
}

// ToValues mirrors the API's query args, without the credential.
func (q ForecastQuery) ToValues() url.Values {
	v := url.Values{}
	v.Set("q", q.City)
	v.Set("cnt", strconv.Itoa(q.Count))
	return v
}

// Key is the stable identifier used for caching and request de-duplication.
func (q ForecastQuery) Key() string {
	return fmt.Sprintf("%s:%d", q.City, q.Count)
}

func (q ForecastQuery) String() string {
	return fmt.Sprintf("ForecastQuery(city=%s, cnt=%d)", q.City, q.Count)
}
