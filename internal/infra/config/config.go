package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP         HTTPConfig         `yaml:"http"`
	Ephemeris    EphemerisConfig    `yaml:"ephemeris"`
	Orbits       OrbitsConfig       `yaml:"orbits"`
	SpaceWeather SpaceWeatherConfig `yaml:"spaceWeather"`
	AngleCache   AngleCacheConfig   `yaml:"angleCache"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
	CORSOrigins  []string        `yaml:"corsOrigins"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// EphemerisConfig points at the orbital element table.
type EphemerisConfig struct {
	Path string `yaml:"path"`
}

// OrbitsConfig holds the progress epoch and diagram geometry.
type OrbitsConfig struct {
	ReferenceEpoch  string   `yaml:"referenceEpoch"`
	Growth          float64  `yaml:"growth"`
	FrameHalfExtent float64  `yaml:"frameHalfExtent"`
	Margin          float64  `yaml:"margin"`
	Bodies          []string `yaml:"bodies"`
}

// SpaceWeatherConfig controls the storm forecast lookup.
type SpaceWeatherConfig struct {
	URL            string        `yaml:"url"`
	Timeout        time.Duration `yaml:"timeout"`
	StormThreshold float64       `yaml:"stormThreshold"`
}

// AngleCacheConfig enables memoized ephemeris lookups. An empty Addr keeps
// the cache in process memory.
type AngleCacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Addr    string        `yaml:"addr"`
	Prefix  string        `yaml:"prefix"`
	TTL     time.Duration `yaml:"ttl"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_CORS_ORIGINS"); v != "" {
		cfg.HTTP.CORSOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("EPHEMERIS_PATH"); v != "" {
		cfg.Ephemeris.Path = v
	}
	if v := os.Getenv("ORBITS_REFERENCE_EPOCH"); v != "" {
		cfg.Orbits.ReferenceEpoch = v
	}
	if v := os.Getenv("ORBITS_BODIES"); v != "" {
		cfg.Orbits.Bodies = splitList(v)
	}
	if v := os.Getenv("SPACE_WEATHER_URL"); v != "" {
		cfg.SpaceWeather.URL = v
	}
	if v := os.Getenv("SPACE_WEATHER_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.SpaceWeather.Timeout = parsed
		}
	}
	if v := os.Getenv("SPACE_WEATHER_STORM_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.SpaceWeather.StormThreshold = parsed
		}
	}
	if v := os.Getenv("ANGLE_CACHE_ENABLED"); v != "" {
		cfg.AngleCache.Enabled = parseBool(v)
	}
	if v := os.Getenv("ANGLE_CACHE_ADDR"); v != "" {
		cfg.AngleCache.Addr = v
	}
	if v := os.Getenv("ANGLE_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.AngleCache.TTL = parsed
		}
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
		},
		Ephemeris: EphemerisConfig{
			Path: "data/elements.yaml",
		},
		Orbits: OrbitsConfig{
			ReferenceEpoch:  "2000-01-01",
			Growth:          1.35,
			FrameHalfExtent: 800,
			Margin:          40,
			Bodies: []string{
				"mercury", "venus", "earth", "mars",
				"jupiter", "saturn", "uranus", "neptune",
			},
		},
		SpaceWeather: SpaceWeatherConfig{
			URL:            "https://services.swpc.noaa.gov/products/noaa-planetary-k-index-forecast.json",
			Timeout:        6 * time.Second,
			StormThreshold: 5.0,
		},
		AngleCache: AngleCacheConfig{
			Enabled: true,
			Prefix:  "planets:angle",
			TTL:     24 * time.Hour,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if strings.TrimSpace(c.Ephemeris.Path) == "" {
		return errors.New("ephemeris.path cannot be empty")
	}
	if _, err := time.ParseInLocation(time.DateOnly, c.Orbits.ReferenceEpoch, time.UTC); err != nil {
		return fmt.Errorf("orbits.referenceEpoch must be YYYY-MM-DD: %w", err)
	}
	if c.Orbits.Growth <= 1 {
		return errors.New("orbits.growth must be greater than 1")
	}
	if c.Orbits.Margin < 0 {
		return errors.New("orbits.margin cannot be negative")
	}
	if c.Orbits.FrameHalfExtent <= c.Orbits.Margin {
		return errors.New("orbits.frameHalfExtent must exceed orbits.margin")
	}
	if strings.TrimSpace(c.SpaceWeather.URL) == "" {
		return errors.New("spaceWeather.url cannot be empty")
	}
	if c.SpaceWeather.Timeout <= 0 {
		return errors.New("spaceWeather.timeout must be positive")
	}
	if c.SpaceWeather.StormThreshold < 0 {
		return errors.New("spaceWeather.stormThreshold cannot be negative")
	}
	if c.AngleCache.TTL < 0 {
		return errors.New("angleCache.ttl cannot be negative")
	}
	return nil
}

// ReferenceEpochTime returns the parsed progress epoch. Only valid after
// Validate.
func (c OrbitsConfig) ReferenceEpochTime() time.Time {
	t, _ := time.ParseInLocation(time.DateOnly, c.ReferenceEpoch, time.UTC)
	return t
}
