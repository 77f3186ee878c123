package bodies

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrUnknownBody is returned for keys outside the registry.
	ErrUnknownBody = errors.New("unknown body")
	// ErrNoOrbit is returned when an orbiting body is required.
	ErrNoOrbit = errors.New("body does not orbit")
)

// Registry is an immutable lookup table of body facts.
type Registry struct {
	byKey map[Key]Body
	order []Key
}

// NewRegistry validates records and builds a registry. Every key in Keys must
// be present exactly once with a complete record.
func NewRegistry(records []Body) (*Registry, error) {
	byKey := make(map[Key]Body, len(records))
	for _, rec := range records {
		if _, dup := byKey[rec.Key]; dup {
			return nil, fmt.Errorf("duplicate body record %q", rec.Key)
		}
		if err := validate(rec); err != nil {
			return nil, fmt.Errorf("body %q: %w", rec.Key, err)
		}
		byKey[rec.Key] = rec
	}
	for _, key := range Keys {
		if _, ok := byKey[key]; !ok {
			return nil, fmt.Errorf("missing body record %q", key)
		}
	}
	order := make([]Key, 0, len(records))
	for _, rec := range records {
		order = append(order, rec.Key)
	}
	return &Registry{byKey: byKey, order: order}, nil
}

func validate(b Body) error {
	switch {
	case b.Key == "":
		return errors.New("key cannot be empty")
	case strings.TrimSpace(b.Name) == "":
		return errors.New("name cannot be empty")
	case b.RotationPeriodHours <= 0:
		return errors.New("rotation period must be positive")
	case b.OrbitalPeriodEarthDays != nil && *b.OrbitalPeriodEarthDays <= 0:
		return errors.New("orbital period must be positive when set")
	case b.SurfaceGravity <= 0:
		return errors.New("surface gravity must be positive")
	case b.Moons < 0:
		return errors.New("moon count cannot be negative")
	case strings.TrimSpace(b.Atmosphere) == "":
		return errors.New("atmosphere cannot be empty")
	case b.HasOrbit() && b.EphemerisTarget == "":
		return errors.New("orbiting body needs an ephemeris target")
	}
	return nil
}

// Lookup returns the facts for key or ErrUnknownBody.
func (r *Registry) Lookup(key Key) (Body, error) {
	b, ok := r.byKey[key]
	if !ok {
		return Body{}, fmt.Errorf("%w: %q", ErrUnknownBody, string(key))
	}
	return b.clone(), nil
}

// All returns every record in registration order.
func (r *Registry) All() []Body {
	out := make([]Body, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.byKey[k].clone())
	}
	return out
}

// Resolve maps keys to records, preserving order.
func (r *Registry) Resolve(keys []Key) ([]Body, error) {
	out := make([]Body, 0, len(keys))
	for _, k := range keys {
		b, err := r.Lookup(k)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// ResolveOrbiting is Resolve restricted to bodies with an orbit and an
// ephemeris target, the set an orbit diagram can place.
func (r *Registry) ResolveOrbiting(keys []Key) ([]Body, error) {
	out, err := r.Resolve(keys)
	if err != nil {
		return nil, err
	}
	for _, b := range out {
		if !b.HasOrbit() || b.EphemerisTarget == "" {
			return nil, fmt.Errorf("%w: %q", ErrNoOrbit, string(b.Key))
		}
	}
	return out, nil
}

var loadDefault = sync.OnceValues(func() (*Registry, error) {
	return NewRegistry(defaultRecords())
})

// Default returns the built-in solar system registry. It is built once per
// process and shared read-only.
func Default() (*Registry, error) {
	return loadDefault()
}
