package orbit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/yanqian/planets/internal/domain/bodies"
)

const twoPi = 2 * math.Pi

var (
	// ErrUnsupportedBody is returned when progress is requested for a body
	// with no orbital period.
	ErrUnsupportedBody = errors.New("body has no orbital period")
	// ErrOutOfRange is returned by angle providers for dates they cannot serve.
	ErrOutOfRange = errors.New("date outside ephemeris coverage")
)

// Progress returns the fraction of one revolution completed by body between
// epoch and at, in [0, 1).
func Progress(ctx context.Context, angles AngleProvider, body bodies.Body, at, epoch time.Time) (float64, error) {
	if !body.HasOrbit() {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedBody, body.Key)
	}
	now, err := angles.HeliocentricAngle(ctx, body.EphemerisTarget, at)
	if err != nil {
		return 0, fmt.Errorf("angle at %s: %w", at.Format(time.DateOnly), err)
	}
	ref, err := angles.HeliocentricAngle(ctx, body.EphemerisTarget, epoch)
	if err != nil {
		return 0, fmt.Errorf("angle at reference epoch: %w", err)
	}
	return progressFromAngles(now, ref), nil
}

func progressFromAngles(now, ref float64) float64 {
	delta := math.Mod(now-ref, twoPi)
	if delta < 0 {
		delta += twoPi
	}
	// A tiny negative delta can round up to exactly 2π above.
	if delta >= twoPi {
		delta = 0
	}
	return delta / twoPi
}

// DayIndices derives the 1-based day-of-year in Earth days and in the body's
// own solar days. Fields whose period is undefined stay nil.
func DayIndices(body bodies.Body, progress float64) Indices {
	var out Indices
	if !body.HasOrbit() || !isFinite(progress) {
		return out
	}
	period := *body.OrbitalPeriodEarthDays
	out.DayOfYearEarthDays = dayIndex(progress, period)

	if body.RotationPeriodHours > 0 {
		local := period * 24 / body.RotationPeriodHours
		if isFinite(local) && local > 0 {
			out.LocalYearLengthDays = &local
			out.DayOfYearLocalDays = dayIndex(progress, local)
		}
	}
	return out
}

func dayIndex(progress, length float64) *int {
	v := progress * length
	if !isFinite(v) {
		return nil
	}
	idx := int(math.Floor(v)) + 1
	return &idx
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
