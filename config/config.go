package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// OpenWeatherMap config
const OPEN_WEATHER_ENDPOINT_BASE_V25 = "https://api.openweathermap.org/data/2.5"
const OPEN_WEATHER_ICON_URL_FORMAT = "https://openweathermap.org/img/wn/%s@4x.png"
const OPEN_WEATHER_REQUESTS_PER_SECOND = 1.0 // free tier: 60 calls/minute
const OPEN_WEATHER_REQUESTS_BURST = 5
const OPEN_WEATHER_FETCH_TIMEOUT_SECONDS = 15

// Dashboard config
const DEFAULT_CITY = "sylhet"
const DEFAULT_SAMPLE_COUNT = 56
const MAX_SAMPLE_COUNT = 56

// Redis Config
const DEFAULT_REDIS_DB_ADDRESS = "redis:6379"

// Cache / refresher config
const DEFAULT_CACHE_TTL_MINUTES = 10
const DEFAULT_REFRESH_INTERVAL_MINUTES = 30
const DEFAULT_RENDER_DEADLINE_SECONDS = 5

// Cache backends
const CACHE_BACKEND_MEMORY = "memory"
const CACHE_BACKEND_REDIS = "redis"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const FORECAST_RESPONSE_RESOURCE = "forecast_response.json"

// Environment variable names
const (
	ENV_WEATHER_API_KEY        = "WEATHER_API_KEY"
	ENV_WEATHER_API_KEY_LEGACY = "NEXT_PUBLIC_WEATHER_KEY"
	ENV_APP_ENV                = "APP_ENV"
	ENV_LISTEN_ADDR            = "LISTEN_ADDR"
	ENV_CACHE_BACKEND          = "CACHE_BACKEND"
	ENV_REDIS_ADDR             = "REDIS_ADDR"
	ENV_REDIS_PASSWORD         = "REDIS_PASSWORD"
	ENV_REDIS_DB               = "REDIS_DB"
	ENV_CACHE_TTL_MINUTES      = "CACHE_TTL_MINUTES"
	ENV_REFRESH_INTERVAL       = "REFRESH_INTERVAL_MINUTES"
	ENV_DEFAULT_CITIES         = "DEFAULT_CITIES"
	ENV_RENDER_DEADLINE        = "RENDER_DEADLINE_SECONDS"
	ENV_PROJECT_ROOT           = "PROJECT_ROOT"
)

// GetWeatherAPIKey returns the provider credential. Its absence is not an error:
// requests are sent with an empty key and fail upstream.
func GetWeatherAPIKey() string {
	if key := os.Getenv(ENV_WEATHER_API_KEY); key != "" {
		return key
	}
	return os.Getenv(ENV_WEATHER_API_KEY_LEGACY)
}

// GetAppEnv returns "prod" or whatever APP_ENV is set to; the default is "dev".
func GetAppEnv() string {
	return getEnvOrDefault(ENV_APP_ENV, "dev")
}

func GetListenAddress() string {
	return getEnvOrDefault(ENV_LISTEN_ADDR, ":8080")
}

func GetCacheBackend() string {
	return strings.ToLower(getEnvOrDefault(ENV_CACHE_BACKEND, CACHE_BACKEND_MEMORY))
}

func GetRedisAddress() string {
	return getEnvOrDefault(ENV_REDIS_ADDR, DEFAULT_REDIS_DB_ADDRESS)
}

func GetRedisPassword() string {
	return os.Getenv(ENV_REDIS_PASSWORD)
}

func GetRedisDB() int {
	return getEnvInt(ENV_REDIS_DB, 0)
}

func GetCacheTTL() time.Duration {
	return time.Duration(getEnvInt(ENV_CACHE_TTL_MINUTES, DEFAULT_CACHE_TTL_MINUTES)) * time.Minute
}

// GetRefreshInterval returns 0 when the periodic refresher is disabled.
func GetRefreshInterval() time.Duration {
	return time.Duration(getEnvInt(ENV_REFRESH_INTERVAL, DEFAULT_REFRESH_INTERVAL_MINUTES)) * time.Minute
}

func GetRenderDeadline() time.Duration {
	return time.Duration(getEnvInt(ENV_RENDER_DEADLINE, DEFAULT_RENDER_DEADLINE_SECONDS)) * time.Second
}

// GetDefaultCities returns the cities kept warm by the refresher.
func GetDefaultCities() []string {
	raw := getEnvOrDefault(ENV_DEFAULT_CITIES, "sylhet,dhaka")
	var cities []string
	for _, c := range strings.Split(raw, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cities = append(cities, c)
		}
	}
	return cities
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	if root := os.Getenv(ENV_PROJECT_ROOT); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}

func getEnvOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func getEnvInt(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("[Config] Invalid value %q for %s, using default %d", v, name, def)
		return def
	}
	return n
}
