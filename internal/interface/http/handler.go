package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/planets/internal/domain/orbit"
	"github.com/yanqian/planets/internal/domain/spaceweather"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	orbitSvc   orbit.Service
	weatherSvc spaceweather.Service
	logger     *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(orbitSvc orbit.Service, weatherSvc spaceweather.Service, logger *slog.Logger) *Handler {
	return &Handler{
		orbitSvc:   orbitSvc,
		weatherSvc: weatherSvc,
		logger:     logger.With("component", "http.handler"),
	}
}

// ListPlanets returns every body the service knows about.
func (h *Handler) ListPlanets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"planets": h.orbitSvc.Bodies(c.Request.Context())})
}

// PlanetInfo reports orbital progress and facts for one body on a date.
func (h *Handler) PlanetInfo(c *gin.Context) {
	req := orbit.InfoRequest{
		Planet: c.Query("planet"),
		Date:   c.Query("date"),
	}
	resp, err := h.orbitSvc.Info(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Orbits returns the diagram layout for a date.
func (h *Handler) Orbits(c *gin.Context) {
	resp, err := h.orbitSvc.Orbits(c.Request.Context(), orbit.OrbitsRequest{Date: c.Query("date")})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Distance reports how far a body is from Earth on a date.
func (h *Handler) Distance(c *gin.Context) {
	req := orbit.DistanceRequest{
		Planet: c.Query("planet"),
		Date:   c.Query("date"),
	}
	resp, err := h.orbitSvc.Distance(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SpaceWeather always answers 200; upstream failures travel in the body.
func (h *Handler) SpaceWeather(c *gin.Context) {
	c.JSON(http.StatusOK, h.weatherSvc.NextStorm(c.Request.Context()))
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
