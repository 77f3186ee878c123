package orbit

import (
	"time"

	"github.com/yanqian/planets/internal/domain/bodies"
)

// InfoRequest is the planet-info query.
type InfoRequest struct {
	Planet string
	Date   string
}

// InfoResponse is serialized back to API consumers.
type InfoResponse struct {
	Planet              string   `json:"planet"`
	Date                string   `json:"date"`
	DayLengthHours      float64  `json:"day_length_hours"`
	YearLengthEarthDays *float64 `json:"year_length_earth_days"`
	YearLengthLocalDays *float64 `json:"year_length_local_days"`
	YearProgress        float64  `json:"year_progress"`
	DayOfYearEarthDays  *int     `json:"day_of_year_earth_days"`
	DayOfYearLocalDays  *int     `json:"day_of_year_local_days"`
	MeanTemperatureC    float64  `json:"mean_temperature_c"`
	GravityMS2          float64  `json:"gravity_ms2"`
	Atmosphere          string   `json:"atmosphere"`
	Composition         *string  `json:"composition"`
	Moons               int      `json:"moons"`
}

// DistanceRequest asks how far a body is from Earth on a date.
type DistanceRequest struct {
	Planet string
	Date   string
}

// DistanceResponse is the straight-line Earth distance.
type DistanceResponse struct {
	Planet     string  `json:"planet"`
	Date       string  `json:"date"`
	DistanceAU float64 `json:"distance_au"`
	DistanceKM int64   `json:"distance_km"`
}

// Vector is a heliocentric ecliptic position in AU.
type Vector struct {
	X, Y, Z float64
}

// OrbitsRequest asks for the diagram layout on a date.
type OrbitsRequest struct {
	Date string
}

// OrbitsResponse carries the diagram placements plus what a client needs to
// animate them.
type OrbitsResponse struct {
	Date      string         `json:"date"`
	Positions []Position     `json:"positions"`
	Radii     []float64      `json:"radii"`
	Periods   map[string]int `json:"periods"`
}

// Position is one body on the diagram.
type Position struct {
	Planet string  `json:"planet"`
	Radius float64 `json:"radius"`
	Angle  float64 `json:"angle"`
}

// BodySummary lists a known body.
type BodySummary struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	HasOrbit bool   `json:"has_orbit"`
}

// Indices are the 1-based day-of-year counts for a progress fraction.
type Indices struct {
	LocalYearLengthDays *float64
	DayOfYearEarthDays  *int
	DayOfYearLocalDays  *int
}

// Placement is a body's slot in an OrbitLayout.
type Placement struct {
	Body   bodies.Key
	Radius float64
	Angle  float64
}

// OrbitLayout is the ordered diagram, innermost body first.
type OrbitLayout struct {
	Placements []Placement
	Radii      []float64
}

// LayoutConfig controls the radius progression.
type LayoutConfig struct {
	Growth          float64
	FrameHalfExtent float64
	Margin          float64
}

// MaxAllowed is the largest radius the outermost orbit may take.
func (c LayoutConfig) MaxAllowed() float64 {
	return c.FrameHalfExtent - c.Margin
}

// Config wires runtime knobs for the orbit domain.
type Config struct {
	ReferenceEpoch time.Time
	Layout         LayoutConfig
	LayoutBodies   []bodies.Key
	AngleCacheTTL  time.Duration
}
