package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the Prometheus series exported by the service.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests     *prometheus.CounterVec
	HTTPDurations    *prometheus.HistogramVec
	ForecastFetches  *prometheus.CounterVec
	AngleCacheLookup *prometheus.CounterVec
}

// NewCollector registers the service metrics against reg, defaulting to the
// global registry when reg is nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planets_http_requests_total",
		Help: "Handled HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"}), "planets_http_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "planets_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"route"}), "planets_http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	fetches, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planets_space_weather_fetches_total",
		Help: "Space weather forecast fetches by outcome (ok, unavailable).",
	}, []string{"outcome"}), "planets_space_weather_fetches_total")
	if err != nil {
		return nil, err
	}

	lookups, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "planets_angle_cache_lookups_total",
		Help: "Angle cache lookups by result (hit, miss, error).",
	}, []string{"result"}), "planets_angle_cache_lookups_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:         gatherer,
		HTTPRequests:     requests,
		HTTPDurations:    durations,
		ForecastFetches:  fetches,
		AngleCacheLookup: lookups,
	}, nil
}

// ObserveRequest records one handled HTTP request.
func (c *Collector) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if c == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	c.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	c.HTTPDurations.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveForecastFetch records the outcome of a space weather fetch.
func (c *Collector) ObserveForecastFetch(ok bool) {
	if c == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "unavailable"
	}
	c.ForecastFetches.WithLabelValues(outcome).Inc()
}

// ObserveAngleCache records a cache lookup result: hit, miss or error.
func (c *Collector) ObserveAngleCache(result string) {
	if c == nil {
		return
	}
	c.AngleCacheLookup.WithLabelValues(result).Inc()
}

// Handler exposes the /metrics endpoint for the collector's registry.
func (c *Collector) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if c != nil && c.gatherer != nil {
		gatherer = c.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
