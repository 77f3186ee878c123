package orbit

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/yanqian/planets/internal/domain/bodies"
)

// KilometresPerAU is the IAU 2012 astronomical unit.
const KilometresPerAU = 149597870.7

// Separation returns the straight-line distance in AU between two bodies at
// instant at. A body without an ephemeris target sits at the origin.
func Separation(ctx context.Context, positions PositionProvider, from, to bodies.Body, at time.Time) (float64, error) {
	if from.Key == to.Key {
		return 0, nil
	}
	a, err := positionOf(ctx, positions, from, at)
	if err != nil {
		return 0, err
	}
	b, err := positionOf(ctx, positions, to, at)
	if err != nil {
		return 0, err
	}
	return math.Sqrt((a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y) + (a.Z-b.Z)*(a.Z-b.Z)), nil
}

func positionOf(ctx context.Context, positions PositionProvider, body bodies.Body, at time.Time) (Vector, error) {
	if body.EphemerisTarget == "" {
		return Vector{}, nil
	}
	pos, err := positions.HeliocentricPosition(ctx, body.EphemerisTarget, at)
	if err != nil {
		return Vector{}, fmt.Errorf("position of %s: %w", body.Key, err)
	}
	return pos, nil
}
