package di

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"weather-dash/api"
	"weather-dash/api/openweather"
	"weather-dash/config"
	"weather-dash/dao/redis"
	"weather-dash/db"
	"weather-dash/metrics"
	"weather-dash/server"
	"weather-dash/server/handlers"
	services "weather-dash/service"
	"weather-dash/view"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient              db.RedisClient
	RedisForecastDao         *redis.RedisForecastDAO
	ForecastAPI              openweather.ForecastAPI
	Metrics                  *metrics.Metrics
	ForecastService          *services.ForecastService
	PageController           *services.PageController
	ForecastRefresherService *services.ForecastRefresherService
	Renderer                 *view.Renderer
	DashboardHandler         *handlers.DashboardHandler
	ForecastHandler          *handlers.ForecastHandler
	MuxRouter                *mux.Router
	Router                   *server.Router
	DashboardHttpServer      *server.DashboardHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) (*Container, error) {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	redisClient, err := newRedisClient(ctx, config.GetCacheBackend())
	if err != nil {
		return nil, err
	}

	forecastDao := redis.NewRedisForecastDAO(redisClient, config.GetCacheTTL())

	// Real API in prod, recorded fixture everywhere else
	var forecastApi openweather.ForecastAPI
	if env != "prod" {
		forecastApi = openweather.NewOpenWeatherApiClientMock(config.GetResourcePath(config.FORECAST_RESPONSE_RESOURCE))
		log.Printf("Using mock openweather api")
	} else {
		log.Printf("Using prod openweather api")
		httpClient := api.NewHTTPClient(config.OPEN_WEATHER_ENDPOINT_BASE_V25)
		forecastApi = openweather.NewOpenWeatherApiClient(httpClient)
	}
	forecastApi.SetCredentials(config.GetWeatherAPIKey())

	m := metrics.New()

	forecastService := services.NewForecastService(forecastDao, forecastApi, m)
	renderDeadline := config.GetRenderDeadline()
	pageController := services.NewPageController(
		forecastService,
		renderDeadline,
		config.OPEN_WEATHER_FETCH_TIMEOUT_SECONDS*time.Second,
		nil,
	)
	refresher := services.NewForecastRefresherService(forecastDao, forecastService, config.GetDefaultCities(), nil)

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}

	refreshAfter := renderDeadline
	if refreshAfter <= 0 {
		refreshAfter = time.Second
	}
	dashboardHandler := handlers.NewDashboardHandler(pageController, renderer, m, refreshAfter)
	forecastHandler := handlers.NewForecastHandler(pageController)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(dashboardHandler, forecastHandler, m.Handler(), muxRouter)
	httpServer := server.NewDashboardHttpServer(router, muxRouter, config.GetListenAddress())

	return &Container{
		RedisClient:              redisClient,
		RedisForecastDao:         forecastDao,
		ForecastAPI:              forecastApi,
		Metrics:                  m,
		ForecastService:          forecastService,
		PageController:           pageController,
		ForecastRefresherService: refresher,
		Renderer:                 renderer,
		DashboardHandler:         dashboardHandler,
		ForecastHandler:          forecastHandler,
		MuxRouter:                muxRouter,
		Router:                   router,
		DashboardHttpServer:      httpServer,
	}, nil
}

func newRedisClient(ctx context.Context, backend string) (db.RedisClient, error) {
	switch backend {
	case config.CACHE_BACKEND_MEMORY:
		log.Printf("Using in-memory forecast cache")
		return db.NewMemoryRedisClient(ctx, nil), nil
	case config.CACHE_BACKEND_REDIS:
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.GetRedisAddress(),
			Password: config.GetRedisPassword(),
			DB:       config.GetRedisDB(),
		})
		client, err := db.NewGoRedisClient(ctx, redisInternalClient)
		if err != nil {
			redisInternalClient.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}
