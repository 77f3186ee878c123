//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/planets/internal/bootstrap"
	"github.com/yanqian/planets/internal/domain/orbit"
	"github.com/yanqian/planets/internal/domain/spaceweather"
	"github.com/yanqian/planets/internal/infra/config"
	"github.com/yanqian/planets/internal/infra/ephemeris"
	"github.com/yanqian/planets/internal/infra/swpc"
	httpiface "github.com/yanqian/planets/internal/interface/http"
	"github.com/yanqian/planets/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideRegistry,
		provideMetrics,
		provideEphemeris,
		provideOrbitConfig,
		provideSpaceWeatherConfig,
		provideSWPCClient,
		provideAngleCache,
		orbit.NewService,
		spaceweather.NewService,
		wire.Bind(new(orbit.AngleProvider), new(*ephemeris.Provider)),
		wire.Bind(new(orbit.PositionProvider), new(*ephemeris.Provider)),
		wire.Bind(new(spaceweather.ForecastClient), new(*swpc.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
