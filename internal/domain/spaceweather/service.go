package spaceweather

import (
	"context"
	"log/slog"
	"time"

	"github.com/yanqian/planets/pkg/metrics"
	"github.com/yanqian/planets/pkg/util"
)

const (
	retrievedLayout   = "2006-01-02 15:04:05"
	unavailablePrefix = "space weather data not available: "
)

// Service reports the next predicted geomagnetic storm.
type Service interface {
	NextStorm(ctx context.Context) Forecast
}

// ForecastClient fetches the upstream forecast table once.
type ForecastClient interface {
	FetchForecast(ctx context.Context) (Table, error)
}

type service struct {
	cfg     Config
	client  ForecastClient
	metrics *metrics.Collector
	logger  *slog.Logger
	now     func() time.Time
}

// NewService wires up the space weather domain.
func NewService(cfg Config, client ForecastClient, collector *metrics.Collector, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg,
		client:  client,
		metrics: collector,
		logger:  logger.With("component", "spaceweather.service"),
		now:     util.NowUTC,
	}
}

// NextStorm makes a single bounded attempt. Every failure is folded into
// Forecast.Error.
func (s *service) NextStorm(ctx context.Context) Forecast {
	retrieved := s.now().UTC()
	out := Forecast{RetrievedAtUTC: retrieved.Format(retrievedLayout)}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	table, err := s.client.FetchForecast(ctx)
	if err != nil {
		s.metrics.ObserveForecastFetch(false)
		s.logger.Warn("space weather fetch failed", "error", err)
		out.Error = unavailablePrefix + err.Error()
		return out
	}
	s.metrics.ObserveForecastFetch(true)

	out.NextPredictedEventUTC = NextStorm(table, retrieved, s.cfg.StormThreshold)
	s.logger.Info("space weather forecast read", "rows", len(table.Rows), "storm_predicted", out.NextPredictedEventUTC != nil)
	return out
}
