package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/planets/internal/domain/bodies"
	"github.com/yanqian/planets/internal/domain/orbit"
	"github.com/yanqian/planets/internal/infra/anglecache"
	"github.com/yanqian/planets/internal/infra/config"
)

const shortTable = `
name: test
validity:
  from: "1900-01-01"
  to: "2050-12-31"
targets:
  earth:
    a: 1.00000261
    e: 0.01671123
    i: -0.00001531
    meanLongitude: 100.46457166
    longPerihelion: 102.93768193
    longAscNode: 0.0
    rates: {a: 0.00000562, e: -0.00004392, i: -0.01294668, meanLongitude: 35999.37244981, longPerihelion: 0.32327364, longAscNode: 0.0}
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "elements.yaml")
	require.NoError(t, os.WriteFile(path, []byte(shortTable), 0o600))
	return &config.Config{
		Ephemeris: config.EphemerisConfig{Path: path},
		Orbits: config.OrbitsConfig{
			ReferenceEpoch:  "2000-01-01",
			Growth:          1.35,
			FrameHalfExtent: 800,
			Margin:          40,
			Bodies:          []string{"mercury", "venus", "earth", "mars"},
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProvideEphemeris(t *testing.T) {
	provider, err := provideEphemeris(testConfig(t), discardLogger())
	require.NoError(t, err)
	require.NotNil(t, provider)
}

func TestProvideEphemerisRejectsEpochOutsideTable(t *testing.T) {
	cfg := testConfig(t)
	cfg.Orbits.ReferenceEpoch = "1850-01-01"

	_, err := provideEphemeris(cfg, discardLogger())
	require.ErrorIs(t, err, orbit.ErrOutOfRange)
	require.Contains(t, err.Error(), "orbits.referenceEpoch")
}

func TestProvideEphemerisMissingTable(t *testing.T) {
	cfg := testConfig(t)
	cfg.Ephemeris.Path = filepath.Join(t.TempDir(), "absent.yaml")

	_, err := provideEphemeris(cfg, discardLogger())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestProvideOrbitConfig(t *testing.T) {
	reg, err := bodies.Default()
	require.NoError(t, err)

	got, err := provideOrbitConfig(testConfig(t), reg)
	require.NoError(t, err)
	require.Equal(t, []bodies.Key{bodies.Mercury, bodies.Venus, bodies.Earth, bodies.Mars}, got.LayoutBodies)
	require.Equal(t, 2000, got.ReferenceEpoch.Year())
	require.Equal(t, 1.35, got.Layout.Growth)
	require.Zero(t, got.AngleCacheTTL)
}

func TestProvideOrbitConfigRejectsBodiesWithoutOrbit(t *testing.T) {
	reg, err := bodies.Default()
	require.NoError(t, err)

	cfg := testConfig(t)
	cfg.Orbits.Bodies = []string{"sun", "earth"}
	_, err = provideOrbitConfig(cfg, reg)
	require.ErrorIs(t, err, bodies.ErrNoOrbit)

	cfg.Orbits.Bodies = []string{"earth", "vulcan"}
	_, err = provideOrbitConfig(cfg, reg)
	require.ErrorIs(t, err, bodies.ErrUnknownBody)
}

func TestProvideAngleCacheWithoutValkey(t *testing.T) {
	cfg := testConfig(t)

	cache, cleanup := provideAngleCache(cfg, discardLogger())
	require.Nil(t, cache)
	cleanup()

	cfg.AngleCache.Enabled = true
	cache, cleanup = provideAngleCache(cfg, discardLogger())
	require.IsType(t, &anglecache.MemoryStore{}, cache)
	cleanup()
}
