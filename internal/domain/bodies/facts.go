package bodies

func days(v float64) *float64 { return &v }

func text(v string) *string { return &v }

// defaultRecords holds approximate reference values: solar day length in
// hours, sidereal orbital period in Earth days, global mean temperature
// (cloud tops for the giants) and gravity at the surface or 1 bar level.
func defaultRecords() []Body {
	return []Body{
		{
			Key:                 Sun,
			Name:                "Sun",
			RotationPeriodHours: 609.12,
			MeanTemperatureC:    5505,
			SurfaceGravity:      274.0,
			Atmosphere:          "Ionized plasma (photosphere, chromosphere, corona); no solid surface.",
			Moons:               0,
			Composition:         text("Mostly hydrogen (~73%) and helium (~25%) by mass, with traces of heavier elements (O, C, Ne, Fe, etc.)."),
		},
		{
			Key:                    Mercury,
			Name:                   "Mercury",
			EphemerisTarget:        "mercury",
			RotationPeriodHours:    4222.6,
			OrbitalPeriodEarthDays: days(87.969),
			MeanTemperatureC:       167,
			SurfaceGravity:         3.7,
			Atmosphere:             "Extremely thin exosphere (oxygen, sodium, hydrogen, helium, potassium).",
			Moons:                  0,
		},
		{
			Key:                    Venus,
			Name:                   "Venus",
			EphemerisTarget:        "venus",
			RotationPeriodHours:    2802.0,
			OrbitalPeriodEarthDays: days(224.701),
			MeanTemperatureC:       464,
			SurfaceGravity:         8.87,
			Atmosphere:             "Very thick CO₂ atmosphere with sulfuric-acid clouds; extreme greenhouse effect.",
			Moons:                  0,
		},
		{
			Key:                    Earth,
			Name:                   "Earth",
			EphemerisTarget:        "earth",
			RotationPeriodHours:    24.0,
			OrbitalPeriodEarthDays: days(365.256),
			MeanTemperatureC:       15,
			SurfaceGravity:         9.81,
			Atmosphere:             "Nitrogen–oxygen atmosphere; water vapor and trace gases.",
			Moons:                  1,
		},
		{
			Key:                    Mars,
			Name:                   "Mars",
			EphemerisTarget:        "mars barycenter",
			RotationPeriodHours:    24.6597,
			OrbitalPeriodEarthDays: days(686.98),
			MeanTemperatureC:       -65,
			SurfaceGravity:         3.71,
			Atmosphere:             "Thin CO₂ atmosphere; dust and seasonal polar caps.",
			Moons:                  2,
		},
		{
			Key:                    Jupiter,
			Name:                   "Jupiter",
			EphemerisTarget:        "jupiter barycenter",
			RotationPeriodHours:    9.925,
			OrbitalPeriodEarthDays: days(4332.59),
			MeanTemperatureC:       -110,
			SurfaceGravity:         24.79,
			Atmosphere:             "Mostly hydrogen and helium; clouds of ammonia and water.",
			Moons:                  95,
		},
		{
			Key:                    Saturn,
			Name:                   "Saturn",
			EphemerisTarget:        "saturn barycenter",
			RotationPeriodHours:    10.7,
			OrbitalPeriodEarthDays: days(10759.22),
			MeanTemperatureC:       -140,
			SurfaceGravity:         10.44,
			Atmosphere:             "Mostly hydrogen and helium; ammonia clouds; prominent ring system.",
			Moons:                  146,
		},
		{
			Key:                    Uranus,
			Name:                   "Uranus",
			EphemerisTarget:        "uranus barycenter",
			RotationPeriodHours:    17.24,
			OrbitalPeriodEarthDays: days(30688.5),
			MeanTemperatureC:       -195,
			SurfaceGravity:         8.69,
			Atmosphere:             "Hydrogen, helium, and methane; ice giant.",
			Moons:                  27,
		},
		{
			Key:                    Neptune,
			Name:                   "Neptune",
			EphemerisTarget:        "neptune barycenter",
			RotationPeriodHours:    16.11,
			OrbitalPeriodEarthDays: days(60182.0),
			MeanTemperatureC:       -200,
			SurfaceGravity:         11.15,
			Atmosphere:             "Hydrogen, helium, and methane; ice giant with strong winds.",
			Moons:                  14,
		},
	}
}
