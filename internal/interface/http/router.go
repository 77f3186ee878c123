package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/planets/internal/infra/config"
	"github.com/yanqian/planets/pkg/metrics"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, collector *metrics.Collector) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestID(),
		requestLogger(handler.logger),
		metricsMiddleware(collector),
		errorHandlingMiddleware(handler.logger),
		corsMiddleware(cfg.HTTP.CORSOrigins),
	)

	router.GET("/healthz", handler.Healthz)
	router.GET("/metrics", gin.WrapH(collector.Handler()))

	api := router.Group("/api/v1", rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger))
	{
		api.GET("/planets", handler.ListPlanets)
		api.GET("/planets/info", handler.PlanetInfo)
		api.GET("/planets/distance", handler.Distance)
		api.GET("/orbits", handler.Orbits)
		api.GET("/space-weather", handler.SpaceWeather)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
