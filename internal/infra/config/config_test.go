package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, "data/elements.yaml", cfg.Ephemeris.Path)
	require.Equal(t, 6*time.Second, cfg.SpaceWeather.Timeout)
	require.Equal(t, 5.0, cfg.SpaceWeather.StormThreshold)
	require.Equal(t, time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), cfg.Orbits.ReferenceEpochTime())
	require.Len(t, cfg.Orbits.Bodies, 8)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
http:
  address: ":9090"
  corsOrigins: ["https://planets.example"]
orbits:
  referenceEpoch: "2010-06-01"
  bodies: [earth, mars]
spaceWeather:
  timeout: 2s
  stormThreshold: 6
angleCache:
  ttl: 1h
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SPACE_WEATHER_STORM_THRESHOLD", "7.5")
	t.Setenv("ANGLE_CACHE_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, []string{"https://planets.example"}, cfg.HTTP.CORSOrigins)
	require.Equal(t, []string{"earth", "mars"}, cfg.Orbits.Bodies)
	require.Equal(t, 2*time.Second, cfg.SpaceWeather.Timeout)
	require.Equal(t, 7.5, cfg.SpaceWeather.StormThreshold)
	require.Equal(t, time.Hour, cfg.AngleCache.TTL)
	require.Equal(t, "localhost:6379", cfg.AngleCache.Addr)
	require.Equal(t, 1.35, cfg.Orbits.Growth)
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("orbits:\n  referenceEpoch: yesterday\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.ErrorContains(t, err, "orbits.referenceEpoch")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"empty address":      func(c *Config) { c.HTTP.Address = "" },
		"rate limit burst":   func(c *Config) { c.HTTP.RateLimit.Burst = 0 },
		"ephemeris path":     func(c *Config) { c.Ephemeris.Path = " " },
		"growth":             func(c *Config) { c.Orbits.Growth = 1 },
		"frame":              func(c *Config) { c.Orbits.FrameHalfExtent = 40 },
		"weather timeout":    func(c *Config) { c.SpaceWeather.Timeout = 0 },
		"negative threshold": func(c *Config) { c.SpaceWeather.StormThreshold = -1 },
		"negative ttl":       func(c *Config) { c.AngleCache.TTL = -time.Second },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := defaultConfig()
			mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
	require.NoError(t, defaultConfig().Validate())
}

func TestSplitList(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
}
