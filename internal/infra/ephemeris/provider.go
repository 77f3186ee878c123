package ephemeris

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/yanqian/planets/internal/domain/orbit"
)

// ErrUnknownTarget is returned for targets missing from the element table.
var ErrUnknownTarget = errors.New("target not in ephemeris")

// Provider answers heliocentric position and longitude queries from an
// element table. The table is read on first use and shared read-only
// afterwards.
type Provider struct {
	path   string
	logger *slog.Logger

	once  sync.Once
	table Table
	err   error
}

// NewProvider returns a provider backed by the YAML element file at path.
func NewProvider(path string, logger *slog.Logger) *Provider {
	return &Provider{path: path, logger: logger.With("component", "ephemeris.provider")}
}

// Load reads the element table once. Later calls return the first result.
func (p *Provider) Load() error {
	p.once.Do(func() {
		p.table, p.err = LoadTable(p.path)
		if p.err == nil {
			p.logger.Info("ephemeris loaded", "path", p.path, "name", p.table.Name, "targets", len(p.table.Targets))
		}
	})
	return p.err
}

// Covers reports whether at lies inside the table's validity window.
func (p *Provider) Covers(at time.Time) error {
	if err := p.Load(); err != nil {
		return err
	}
	if !p.table.Validity.Contains(at) {
		return fmt.Errorf("%w: %s", orbit.ErrOutOfRange, at.Format(time.DateOnly))
	}
	return nil
}

// HeliocentricPosition implements orbit.PositionProvider. Coordinates are
// ecliptic J2000 in AU.
func (p *Provider) HeliocentricPosition(ctx context.Context, target string, at time.Time) (orbit.Vector, error) {
	if err := ctx.Err(); err != nil {
		return orbit.Vector{}, err
	}
	if err := p.Load(); err != nil {
		return orbit.Vector{}, err
	}
	el, ok := p.table.Targets[target]
	if !ok {
		return orbit.Vector{}, fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
	if err := p.Covers(at); err != nil {
		return orbit.Vector{}, err
	}
	x, y, z := heliocentric(el, centuriesSinceJ2000(at))
	return orbit.Vector{X: x, Y: y, Z: z}, nil
}

// HeliocentricAngle implements orbit.AngleProvider.
func (p *Provider) HeliocentricAngle(ctx context.Context, target string, at time.Time) (float64, error) {
	pos, err := p.HeliocentricPosition(ctx, target, at)
	if err != nil {
		return 0, err
	}
	return math.Atan2(pos.Y, pos.X), nil
}

var (
	_ orbit.AngleProvider    = (*Provider)(nil)
	_ orbit.PositionProvider = (*Provider)(nil)
)
