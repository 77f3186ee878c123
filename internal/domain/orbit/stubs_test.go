package orbit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/yanqian/planets/internal/domain/bodies"
)

var testEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// circularAngles advances every target uniformly: periodDays per revolution,
// starting at phase radians on testEpoch. Orbits are coplanar circles of
// radius AU, defaulting to 1.
type circularAngles struct {
	periods map[string]float64
	phase   map[string]float64
	radius  map[string]float64
	err     error

	mu    sync.Mutex
	calls int
}

func (c *circularAngles) HeliocentricAngle(_ context.Context, target string, at time.Time) (float64, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	if c.err != nil {
		return 0, c.err
	}
	period, ok := c.periods[target]
	if !ok {
		return 0, errors.New("unknown target " + target)
	}
	days := at.Sub(testEpoch).Hours() / 24
	theta := c.phase[target] + 2*math.Pi*days/period
	return math.Atan2(math.Sin(theta), math.Cos(theta)), nil
}

func (c *circularAngles) HeliocentricPosition(ctx context.Context, target string, at time.Time) (Vector, error) {
	theta, err := c.HeliocentricAngle(ctx, target, at)
	if err != nil {
		return Vector{}, err
	}
	r, ok := c.radius[target]
	if !ok {
		r = 1
	}
	return Vector{X: r * math.Cos(theta), Y: r * math.Sin(theta)}, nil
}

func (c *circularAngles) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func newCircularAngles(reg *bodies.Registry) *circularAngles {
	c := &circularAngles{periods: map[string]float64{}, phase: map[string]float64{}}
	for i, b := range reg.All() {
		if !b.HasOrbit() {
			continue
		}
		c.periods[b.EphemerisTarget] = *b.OrbitalPeriodEarthDays
		c.phase[b.EphemerisTarget] = float64(i) * 0.7
	}
	return c
}

type memoryCache struct {
	mu      sync.Mutex
	entries map[string]float64
	getErr  error
	saves   int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]float64{}}
}

func (m *memoryCache) GetAngle(_ context.Context, target string, day time.Time) (float64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return 0, false, m.getErr
	}
	v, ok := m.entries[target+"|"+day.Format(time.DateOnly)]
	return v, ok, nil
}

func (m *memoryCache) SaveAngle(_ context.Context, target string, day time.Time, angle float64, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	m.entries[target+"|"+day.Format(time.DateOnly)] = angle
	return nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustRegistry() *bodies.Registry {
	reg, err := bodies.Default()
	if err != nil {
		panic(err)
	}
	return reg
}

func mustBody(key bodies.Key) bodies.Body {
	b, err := mustRegistry().Lookup(key)
	if err != nil {
		panic(err)
	}
	return b
}
