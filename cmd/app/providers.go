package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/planets/internal/domain/bodies"
	"github.com/yanqian/planets/internal/domain/orbit"
	"github.com/yanqian/planets/internal/domain/spaceweather"
	"github.com/yanqian/planets/internal/infra/anglecache"
	"github.com/yanqian/planets/internal/infra/config"
	"github.com/yanqian/planets/internal/infra/ephemeris"
	"github.com/yanqian/planets/internal/infra/swpc"
	"github.com/yanqian/planets/pkg/metrics"
)

func provideRegistry() (*bodies.Registry, error) {
	return bodies.Default()
}

func provideMetrics() (*metrics.Collector, error) {
	return metrics.NewCollector(prometheus.DefaultRegisterer)
}

// provideEphemeris loads the element table eagerly so a missing file or a
// reference epoch outside its coverage stops the process before it serves.
func provideEphemeris(cfg *config.Config, logger *slog.Logger) (*ephemeris.Provider, error) {
	provider := ephemeris.NewProvider(cfg.Ephemeris.Path, logger)
	if err := provider.Load(); err != nil {
		return nil, fmt.Errorf("load ephemeris %s: %w", cfg.Ephemeris.Path, err)
	}
	if err := provider.Covers(cfg.Orbits.ReferenceEpochTime()); err != nil {
		return nil, fmt.Errorf("orbits.referenceEpoch: %w", err)
	}
	return provider, nil
}

func provideOrbitConfig(cfg *config.Config, registry *bodies.Registry) (orbit.Config, error) {
	keys := make([]bodies.Key, 0, len(cfg.Orbits.Bodies))
	for _, raw := range cfg.Orbits.Bodies {
		keys = append(keys, bodies.ParseKey(raw))
	}
	if _, err := registry.ResolveOrbiting(keys); err != nil {
		return orbit.Config{}, fmt.Errorf("orbits.bodies: %w", err)
	}
	ttl := time.Duration(0)
	if cfg.AngleCache.Enabled {
		ttl = cfg.AngleCache.TTL
	}
	return orbit.Config{
		ReferenceEpoch: cfg.Orbits.ReferenceEpochTime(),
		Layout: orbit.LayoutConfig{
			Growth:          cfg.Orbits.Growth,
			FrameHalfExtent: cfg.Orbits.FrameHalfExtent,
			Margin:          cfg.Orbits.Margin,
		},
		LayoutBodies:  keys,
		AngleCacheTTL: ttl,
	}, nil
}

func provideSpaceWeatherConfig(cfg *config.Config) spaceweather.Config {
	return spaceweather.Config{
		Timeout:        cfg.SpaceWeather.Timeout,
		StormThreshold: cfg.SpaceWeather.StormThreshold,
	}
}

func provideSWPCClient(cfg *config.Config) *swpc.Client {
	return swpc.NewClient(cfg.SpaceWeather.URL, cfg.SpaceWeather.Timeout)
}

// provideAngleCache prefers Valkey when an address is configured and falls
// back to process memory when it is unreachable. A disabled cache is nil.
func provideAngleCache(cfg *config.Config, logger *slog.Logger) (orbit.AngleCache, func()) {
	noop := func() {}
	if !cfg.AngleCache.Enabled {
		logger.Info("angle cache disabled")
		return nil, noop
	}
	if strings.TrimSpace(cfg.AngleCache.Addr) == "" {
		logger.Info("angle cache address not set, using memory store")
		return anglecache.NewMemoryStore(), noop
	}
	opt, err := buildValkeyOptions(cfg.AngleCache.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return anglecache.NewMemoryStore(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return anglecache.NewMemoryStore(), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return anglecache.NewMemoryStore(), noop
	}
	logger.Info("angle valkey store enabled", "addr", cfg.AngleCache.Addr)
	return anglecache.NewValkeyStore(client, cfg.AngleCache.Prefix), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
