package ephemeris

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Elements are mean orbital elements at J2000 (degrees, AU) and their rates
// per Julian century.
type Elements struct {
	A              float64 `yaml:"a"`
	E              float64 `yaml:"e"`
	I              float64 `yaml:"i"`
	MeanLongitude  float64 `yaml:"meanLongitude"`
	LongPerihelion float64 `yaml:"longPerihelion"`
	LongAscNode    float64 `yaml:"longAscNode"`
	Rates          Rates   `yaml:"rates"`
}

// Rates holds per-century element drift.
type Rates struct {
	A              float64 `yaml:"a"`
	E              float64 `yaml:"e"`
	I              float64 `yaml:"i"`
	MeanLongitude  float64 `yaml:"meanLongitude"`
	LongPerihelion float64 `yaml:"longPerihelion"`
	LongAscNode    float64 `yaml:"longAscNode"`
}

// Table is the on-disk ephemeris: a name, an optional validity window and
// elements keyed by target.
type Table struct {
	Name     string              `yaml:"name"`
	Validity Validity            `yaml:"validity"`
	Targets  map[string]Elements `yaml:"targets"`
}

// Validity bounds the dates the elements are fit for. Zero values are open.
type Validity struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`

	from, to time.Time
}

// Contains reports whether at falls inside the window (inclusive by day).
func (v Validity) Contains(at time.Time) bool {
	if !v.from.IsZero() && at.Before(v.from) {
		return false
	}
	if !v.to.IsZero() && at.After(v.to.Add(24*time.Hour-time.Nanosecond)) {
		return false
	}
	return true
}

// LoadTable reads and validates an element table from path.
func LoadTable(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("read ephemeris file: %w", err)
	}
	return ParseTable(data)
}

// ParseTable decodes and validates YAML element data.
func ParseTable(data []byte) (Table, error) {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return Table{}, fmt.Errorf("parse ephemeris file: %w", err)
	}
	if len(table.Targets) == 0 {
		return Table{}, errors.New("ephemeris file has no targets")
	}
	for name, el := range table.Targets {
		if el.A <= 0 {
			return Table{}, fmt.Errorf("target %q: semi-major axis must be positive", name)
		}
		if el.E < 0 || el.E >= 1 {
			return Table{}, fmt.Errorf("target %q: eccentricity must be in [0, 1)", name)
		}
	}
	var err error
	if table.Validity.from, err = parseBound(table.Validity.From); err != nil {
		return Table{}, fmt.Errorf("validity.from: %w", err)
	}
	if table.Validity.to, err = parseBound(table.Validity.To); err != nil {
		return Table{}, fmt.Errorf("validity.to: %w", err)
	}
	return table, nil
}

func parseBound(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(time.DateOnly, v, time.UTC)
}
