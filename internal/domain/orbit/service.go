package orbit

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/yanqian/planets/internal/domain/bodies"
	apperrors "github.com/yanqian/planets/pkg/errors"
	"github.com/yanqian/planets/pkg/metrics"
	"github.com/yanqian/planets/pkg/util"
)

// Service exposes orbital position capabilities.
type Service interface {
	Info(ctx context.Context, req InfoRequest) (InfoResponse, error)
	Orbits(ctx context.Context, req OrbitsRequest) (OrbitsResponse, error)
	Distance(ctx context.Context, req DistanceRequest) (DistanceResponse, error)
	Bodies(ctx context.Context) []BodySummary
}

// AngleProvider returns the heliocentric ecliptic longitude of an ephemeris
// target, atan2(y, x) in radians.
type AngleProvider interface {
	HeliocentricAngle(ctx context.Context, target string, at time.Time) (float64, error)
}

// PositionProvider returns the heliocentric ecliptic position of an ephemeris
// target in AU.
type PositionProvider interface {
	HeliocentricPosition(ctx context.Context, target string, at time.Time) (Vector, error)
}

// AngleCache memoizes provider results per target and calendar day.
type AngleCache interface {
	GetAngle(ctx context.Context, target string, day time.Time) (float64, bool, error)
	SaveAngle(ctx context.Context, target string, day time.Time, angle float64, ttl time.Duration) error
}

type service struct {
	cfg       Config
	registry  *bodies.Registry
	angles    AngleProvider
	positions PositionProvider
	cache     AngleCache
	metrics   *metrics.Collector
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires up the orbit domain. cache may be nil.
func NewService(cfg Config, registry *bodies.Registry, angles AngleProvider, positions PositionProvider, cache AngleCache, collector *metrics.Collector, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		registry:  registry,
		angles:    angles,
		positions: positions,
		cache:     cache,
		metrics:   collector,
		logger:    logger.With("component", "orbit.service"),
		now:       util.NowUTC,
	}
}

func (s *service) Info(ctx context.Context, req InfoRequest) (InfoResponse, error) {
	body, err := s.registry.Lookup(bodies.ParseKey(req.Planet))
	if err != nil {
		return InfoResponse{}, apperrors.Wrap(apperrors.CodeUnknownBody, "unknown planet", err)
	}
	day, err := s.resolveDate(req.Date)
	if err != nil {
		return InfoResponse{}, apperrors.Wrap(apperrors.CodeInvalidDate, "date must be formatted as YYYY-MM-DD", err)
	}

	progress, err := Progress(ctx, s, body, day, s.cfg.ReferenceEpoch)
	switch {
	case errors.Is(err, ErrUnsupportedBody):
		progress = 0
	case errors.Is(err, ErrOutOfRange):
		return InfoResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "date is outside ephemeris coverage", err)
	case err != nil:
		return InfoResponse{}, apperrors.Wrap(apperrors.CodeEphemerisError, "failed to compute orbital progress", err)
	}
	idx := DayIndices(body, progress)
	s.logger.Debug("orbital progress computed", "planet", body.Key, "date", day.Format(util.DateLayout), "progress", progress)

	return InfoResponse{
		Planet:              string(body.Key),
		Date:                day.Format(util.DateLayout),
		DayLengthHours:      body.RotationPeriodHours,
		YearLengthEarthDays: body.OrbitalPeriodEarthDays,
		YearLengthLocalDays: idx.LocalYearLengthDays,
		YearProgress:        progress,
		DayOfYearEarthDays:  idx.DayOfYearEarthDays,
		DayOfYearLocalDays:  idx.DayOfYearLocalDays,
		MeanTemperatureC:    body.MeanTemperatureC,
		GravityMS2:          body.SurfaceGravity,
		Atmosphere:          body.Atmosphere,
		Composition:         body.Composition,
		Moons:               body.Moons,
	}, nil
}

func (s *service) Orbits(ctx context.Context, req OrbitsRequest) (OrbitsResponse, error) {
	day, err := s.resolveDate(req.Date)
	if err != nil {
		return OrbitsResponse{}, apperrors.Wrap(apperrors.CodeInvalidDate, "date must be formatted as YYYY-MM-DD", err)
	}
	ordered, err := s.registry.ResolveOrbiting(s.cfg.LayoutBodies)
	if err != nil {
		return OrbitsResponse{}, apperrors.Wrap(apperrors.CodeUnknownBody, "layout references a body that cannot be placed", err)
	}

	layout, err := Layout(ctx, s, ordered, day, s.cfg.Layout)
	if errors.Is(err, ErrOutOfRange) {
		return OrbitsResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "date is outside ephemeris coverage", err)
	}
	if err != nil {
		return OrbitsResponse{}, apperrors.Wrap(apperrors.CodeEphemerisError, "failed to compute orbit layout", err)
	}

	positions := make([]Position, 0, len(layout.Placements))
	for _, p := range layout.Placements {
		positions = append(positions, Position{Planet: string(p.Body), Radius: p.Radius, Angle: p.Angle})
	}
	periods := make(map[string]int, len(ordered))
	for _, b := range ordered {
		periods[string(b.Key)] = b.NominalPeriodDays()
	}
	return OrbitsResponse{
		Date:      day.Format(util.DateLayout),
		Positions: positions,
		Radii:     layout.Radii,
		Periods:   periods,
	}, nil
}

func (s *service) Distance(ctx context.Context, req DistanceRequest) (DistanceResponse, error) {
	body, err := s.registry.Lookup(bodies.ParseKey(req.Planet))
	if err != nil {
		return DistanceResponse{}, apperrors.Wrap(apperrors.CodeUnknownBody, "unknown planet", err)
	}
	day, err := s.resolveDate(req.Date)
	if err != nil {
		return DistanceResponse{}, apperrors.Wrap(apperrors.CodeInvalidDate, "date must be formatted as YYYY-MM-DD", err)
	}
	earth, err := s.registry.Lookup(bodies.Earth)
	if err != nil {
		return DistanceResponse{}, apperrors.Wrap(apperrors.CodeEphemerisError, "registry has no earth record", err)
	}

	au, err := Separation(ctx, s.positions, earth, body, day)
	switch {
	case errors.Is(err, ErrOutOfRange):
		return DistanceResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "date is outside ephemeris coverage", err)
	case err != nil:
		return DistanceResponse{}, apperrors.Wrap(apperrors.CodeEphemerisError, "failed to compute distance", err)
	}
	return DistanceResponse{
		Planet:     string(body.Key),
		Date:       day.Format(util.DateLayout),
		DistanceAU: au,
		DistanceKM: int64(au * KilometresPerAU),
	}, nil
}

func (s *service) Bodies(_ context.Context) []BodySummary {
	all := s.registry.All()
	out := make([]BodySummary, 0, len(all))
	for _, b := range all {
		out = append(out, BodySummary{Key: string(b.Key), Name: b.Name, HasOrbit: b.HasOrbit()})
	}
	return out
}

// HeliocentricAngle consults the cache before the provider. Cache failures
// are logged and otherwise ignored.
func (s *service) HeliocentricAngle(ctx context.Context, target string, at time.Time) (float64, error) {
	day := util.StartOfDayUTC(at)
	if s.cache != nil {
		angle, ok, err := s.cache.GetAngle(ctx, target, day)
		switch {
		case err != nil:
			s.metrics.ObserveAngleCache("error")
			s.logger.Warn("angle cache read failed", "target", target, "error", err)
		case ok:
			s.metrics.ObserveAngleCache("hit")
			return angle, nil
		default:
			s.metrics.ObserveAngleCache("miss")
		}
	}

	angle, err := s.angles.HeliocentricAngle(ctx, target, day)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		if err := s.cache.SaveAngle(ctx, target, day, angle, s.cfg.AngleCacheTTL); err != nil {
			s.logger.Warn("angle cache write failed", "target", target, "error", err)
		}
	}
	return angle, nil
}

func (s *service) resolveDate(input string) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return util.StartOfDayUTC(s.now()), nil
	}
	return util.ParseDateUTC(trimmed)
}
