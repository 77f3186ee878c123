package orbit

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/yanqian/planets/internal/domain/bodies"
)

// Radii returns n display radii for a geometric progression base*growth^i,
// scaled so the outermost equals cfg.MaxAllowed(). Scaling cancels base, so
// each radius is computed from the outside in and never overflows. Radii are
// whole units unless rounding would merge neighbours; past the point where
// the inner terms underflow to zero they are spaced evenly instead.
func Radii(n int, cfg LayoutConfig) []float64 {
	if n <= 0 {
		return []float64{}
	}
	maxAllowed := cfg.MaxAllowed()

	scaled := make([]float64, n)
	for i := range scaled {
		scaled[i] = maxAllowed * math.Pow(cfg.Growth, float64(i-(n-1)))
	}
	scaled[n-1] = maxAllowed

	rounded := make([]float64, n)
	for i, r := range scaled {
		rounded[i] = math.Round(r)
		if rounded[i] > maxAllowed {
			rounded[i] = math.Floor(r)
		}
	}
	if strictlyIncreasing(rounded) {
		return rounded
	}
	if strictlyIncreasing(scaled) {
		return scaled
	}

	even := make([]float64, n)
	for i := range even {
		even[i] = maxAllowed * float64(i+1) / float64(n)
	}
	even[n-1] = maxAllowed
	return even
}

func strictlyIncreasing(radii []float64) bool {
	if len(radii) == 0 || !(radii[0] > 0) {
		return false
	}
	for i := 1; i < len(radii); i++ {
		if !(radii[i] > radii[i-1]) {
			return false
		}
	}
	return true
}

// Layout places ordered bodies on the diagram at instant at. The result is a
// pure function of its inputs.
func Layout(ctx context.Context, angles AngleProvider, ordered []bodies.Body, at time.Time, cfg LayoutConfig) (OrbitLayout, error) {
	radii := Radii(len(ordered), cfg)
	placements := make([]Placement, 0, len(ordered))
	for i, body := range ordered {
		if !body.HasOrbit() {
			return OrbitLayout{}, fmt.Errorf("%w: %s", ErrUnsupportedBody, body.Key)
		}
		angle, err := angles.HeliocentricAngle(ctx, body.EphemerisTarget, at)
		if err != nil {
			return OrbitLayout{}, fmt.Errorf("angle for %s: %w", body.Key, err)
		}
		placements = append(placements, Placement{
			Body:   body.Key,
			Radius: radii[i],
			Angle:  angle,
		})
	}
	return OrbitLayout{Placements: placements, Radii: radii}, nil
}
