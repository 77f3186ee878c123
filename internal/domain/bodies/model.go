package bodies

import "strings"

// Key identifies a tracked body.
type Key string

const (
	Sun     Key = "sun"
	Mercury Key = "mercury"
	Venus   Key = "venus"
	Earth   Key = "earth"
	Mars    Key = "mars"
	Jupiter Key = "jupiter"
	Saturn  Key = "saturn"
	Uranus  Key = "uranus"
	Neptune Key = "neptune"
)

// Keys lists every body the registry must describe, star first then planets
// from the innermost orbit outward.
var Keys = []Key{Sun, Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune}

// ParseKey normalizes user input ("  Mars ") into a Key. The result is not
// checked against the registry.
func ParseKey(raw string) Key {
	return Key(strings.ToLower(strings.TrimSpace(raw)))
}

// Body carries the static physical facts for one body.
type Body struct {
	Key  Key
	Name string
	// EphemerisTarget is the identifier handed to the angle provider. Gas
	// giants and Mars are queried through their system barycenter. Empty for
	// the central star.
	EphemerisTarget string

	RotationPeriodHours float64
	// OrbitalPeriodEarthDays is nil for bodies without a meaningful orbit.
	OrbitalPeriodEarthDays *float64
	MeanTemperatureC       float64
	SurfaceGravity         float64
	Atmosphere             string
	Moons                  int
	Composition            *string
}

// HasOrbit reports whether the body revolves around the central star.
func (b Body) HasOrbit() bool {
	return b.OrbitalPeriodEarthDays != nil && *b.OrbitalPeriodEarthDays > 0
}

// clone detaches the pointer fields so callers cannot write through to the
// registry's records.
func (b Body) clone() Body {
	if b.OrbitalPeriodEarthDays != nil {
		period := *b.OrbitalPeriodEarthDays
		b.OrbitalPeriodEarthDays = &period
	}
	if b.Composition != nil {
		composition := *b.Composition
		b.Composition = &composition
	}
	return b
}

// NominalPeriodDays returns the orbital period rounded to whole Earth days,
// or 0 when the body has no orbit.
func (b Body) NominalPeriodDays() int {
	if !b.HasOrbit() {
		return 0
	}
	return int(*b.OrbitalPeriodEarthDays + 0.5)
}
