package orbit

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/planets/internal/domain/bodies"
)

var defaultLayout = LayoutConfig{Growth: 1.35, FrameHalfExtent: 800, Margin: 40}

func TestRadiiEightBodies(t *testing.T) {
	radii := Radii(8, defaultLayout)
	require.Len(t, radii, 8)
	require.Equal(t, 760.0, radii[7])
	require.Equal(t, math.Round(760/math.Pow(1.35, 7)), radii[0])
	require.Equal(t, 93.0, radii[0])
}

func TestRadiiStrictlyIncreasingAndBounded(t *testing.T) {
	for n := 1; n <= 60; n++ {
		radii := Radii(n, defaultLayout)
		require.Len(t, radii, n)
		for i := 1; i < n; i++ {
			require.Greater(t, radii[i], radii[i-1], "n=%d i=%d", n, i)
		}
		require.LessOrEqual(t, radii[n-1], defaultLayout.MaxAllowed(), "n=%d", n)
		require.Equal(t, defaultLayout.MaxAllowed(), radii[n-1], "n=%d", n)
	}
}

func TestRadiiLongListsStayFiniteAndIncreasing(t *testing.T) {
	for _, n := range []int{21, 500, 2600, 3000, 100000} {
		radii := Radii(n, defaultLayout)
		require.Len(t, radii, n)
		require.Positive(t, radii[0], "n=%d", n)
		for i := 1; i < n; i++ {
			require.False(t, math.IsNaN(radii[i]), "n=%d i=%d", n, i)
			if radii[i] <= radii[i-1] {
				t.Fatalf("n=%d: radii[%d]=%v not above radii[%d]=%v", n, i, radii[i], i-1, radii[i-1])
			}
		}
		require.Equal(t, 760.0, radii[n-1], "n=%d", n)
	}
}

func TestRadiiSteepGrowth(t *testing.T) {
	cfg := LayoutConfig{Growth: 1e6, FrameHalfExtent: 800, Margin: 40}
	radii := Radii(400, cfg)
	require.Equal(t, 760.0, radii[399])
	require.Positive(t, radii[0])
}

func TestRadiiEmpty(t *testing.T) {
	require.Empty(t, Radii(0, defaultLayout))
	require.Empty(t, Radii(-3, defaultLayout))
}

func TestRadiiSingleBodyTakesFullExtent(t *testing.T) {
	require.Equal(t, []float64{760}, Radii(1, defaultLayout))
}

func TestLayoutUsesProviderAnglesDirectly(t *testing.T) {
	reg := mustRegistry()
	angles := newCircularAngles(reg)
	ordered, err := reg.Resolve([]bodies.Key{bodies.Mercury, bodies.Venus, bodies.Earth})
	require.NoError(t, err)

	at := testEpoch.AddDate(5, 2, 11)
	layout, err := Layout(context.Background(), angles, ordered, at, defaultLayout)
	require.NoError(t, err)
	require.Len(t, layout.Placements, 3)
	for i, p := range layout.Placements {
		want, err := angles.HeliocentricAngle(context.Background(), ordered[i].EphemerisTarget, at)
		require.NoError(t, err)
		require.Equal(t, ordered[i].Key, p.Body)
		require.Equal(t, want, p.Angle)
		require.Equal(t, layout.Radii[i], p.Radius)
	}
}

func TestLayoutIsDeterministic(t *testing.T) {
	reg := mustRegistry()
	angles := newCircularAngles(reg)
	ordered, err := reg.Resolve([]bodies.Key{bodies.Mercury, bodies.Venus, bodies.Earth, bodies.Mars,
		bodies.Jupiter, bodies.Saturn, bodies.Uranus, bodies.Neptune})
	require.NoError(t, err)

	at := testEpoch.AddDate(24, 9, 13)
	first, err := Layout(context.Background(), angles, ordered, at, defaultLayout)
	require.NoError(t, err)
	second, err := Layout(context.Background(), angles, ordered, at, defaultLayout)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestLayoutEmpty(t *testing.T) {
	layout, err := Layout(context.Background(), &circularAngles{}, nil, testEpoch, defaultLayout)
	require.NoError(t, err)
	require.Empty(t, layout.Placements)
	require.Empty(t, layout.Radii)
}

func TestLayoutProviderFailure(t *testing.T) {
	ordered := []bodies.Body{mustBody(bodies.Earth)}
	_, err := Layout(context.Background(), &circularAngles{}, ordered, testEpoch, defaultLayout)
	require.ErrorContains(t, err, "earth")
}

func TestLayoutRejectsBodiesWithoutOrbit(t *testing.T) {
	angles := newCircularAngles(mustRegistry())
	ordered := []bodies.Body{mustBody(bodies.Sun), mustBody(bodies.Earth)}

	_, err := Layout(context.Background(), angles, ordered, testEpoch, defaultLayout)
	require.ErrorIs(t, err, ErrUnsupportedBody)
	require.Equal(t, 0, angles.callCount())
}
