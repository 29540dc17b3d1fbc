package redis

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"weather-dash/db"
	"weather-dash/models"
	"weather-dash/models/forecast"
)

const FORECAST_KEY_PREFIX_V1 = "forecast_v1:"

// FORECAST_KEY_FORMAT caches one payload per (city, sample count).
const FORECAST_KEY_FORMAT = FORECAST_KEY_PREFIX_V1 + "%s:%d"

// RedisForecastDAO handles forecast payload caching using Redis.
type RedisForecastDAO struct {
	client db.RedisClient
	ttl    time.Duration
}

// NewRedisForecastDAO initializes a RedisForecastDAO. Payloads expire after ttl; zero keeps them forever.
func NewRedisForecastDAO(client db.RedisClient, ttl time.Duration) *RedisForecastDAO {
	return &RedisForecastDAO{client: client, ttl: ttl}
}

func ForecastKey(q models.ForecastQuery) string {
	return fmt.Sprintf(FORECAST_KEY_FORMAT, q.City, q.Count)
}

// SetForecast caches the payload for query.
func (dao *RedisForecastDAO) SetForecast(q models.ForecastQuery, p *forecast.Payload) error {
	if p == nil {
		return errors.New("refusing to cache a nil forecast payload")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal forecast for %s: %w", q, err)
	}
	if err := dao.client.Set(ForecastKey(q), string(data), dao.ttl); err != nil {
		return fmt.Errorf("failed to set forecast in redis: %w", err)
	}
	return nil
}

// GetForecast returns the cached payload for query, or nil on a miss.
func (dao *RedisForecastDAO) GetForecast(q models.ForecastQuery) (*forecast.Payload, error) {
	str, err := dao.client.Get(ForecastKey(q))
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get forecast from redis: %w", err)
	}

	var p forecast.Payload
	if err := json.Unmarshal([]byte(str), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal forecast JSON: %w", err)
	}
	return &p, nil
}

func (dao *RedisForecastDAO) DeleteForecast(q models.ForecastQuery) error {
	if err := dao.client.Del(ForecastKey(q)); err != nil {
		return fmt.Errorf("failed to delete forecast %s: %w", q, err)
	}
	return nil
}

// ListCachedQueries returns the queries that currently have a cached payload.
// Keys that do not parse are skipped.
func (dao *RedisForecastDAO) ListCachedQueries() ([]models.ForecastQuery, error) {
	keys, err := dao.client.Keys(FORECAST_KEY_PREFIX_V1 + "*")
	if err != nil {
		return nil, fmt.Errorf("failed to list forecast keys: %w", err)
	}

	queries := make([]models.ForecastQuery, 0, len(keys))
	for _, key := range keys {
		q, ok := parseForecastKey(key)
		if !ok {
			log.Printf("[RedisForecastDAO] Skipping unrecognized key %q", key)
			continue
		}
		queries = append(queries, q)
	}
	return queries, nil
}

func parseForecastKey(key string) (models.ForecastQuery, bool) {
	rest := strings.TrimPrefix(key, FORECAST_KEY_PREFIX_V1)
	i := strings.LastIndex(rest, ":")
	if i <= 0 || rest == key {
		return models.ForecastQuery{}, false
	}
	count, err := strconv.Atoi(rest[i+1:])
	if err != nil || count <= 0 {
		return models.ForecastQuery{}, false
	}
	return models.ForecastQuery{City: rest[:i], Count: count}, true
}
