package ephemeris

import (
	"math"
	"time"
)

const (
	j2000JD        = 2451545.0
	daysPerCentury = 36525.0
	// TT runs ahead of UTC by 32.184s plus accumulated leap seconds (37).
	ttMinusUTCSeconds = 69.184
)

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func normalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360.0)
	if angle < 0 {
		angle += 360.0
	}
	return angle
}

// julianDate converts t to a Julian Date on the UTC scale.
func julianDate(t time.Time) float64 {
	t = t.UTC()
	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())
	frac := (float64(t.Hour()) + float64(t.Minute())/60 + (float64(t.Second())+float64(t.Nanosecond())/1e9)/3600) / 24

	if m <= 2 {
		y--
		m += 12
	}
	a := math.Floor(y / 100.0)
	b := 2 - a + math.Floor(a/4.0)
	return math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + d + b - 1524.5 + frac
}

// centuriesSinceJ2000 returns Julian centuries of TT elapsed since J2000.0.
func centuriesSinceJ2000(t time.Time) float64 {
	tt := julianDate(t) + ttMinusUTCSeconds/86400.0
	return (tt - j2000JD) / daysPerCentury
}

// solveKepler returns the eccentric anomaly E for mean anomaly m (radians).
func solveKepler(m, e float64) float64 {
	ecc := m + e*math.Sin(m)*(1.0+e*math.Cos(m))
	for iter := 0; iter < 30; iter++ {
		residual := ecc - e*math.Sin(ecc) - m
		if math.Abs(residual) < 1e-14 {
			break
		}
		ecc -= residual / (1.0 - e*math.Cos(ecc))
	}
	return ecc
}

// heliocentric returns the ecliptic J2000 position (AU) of el at T centuries.
func heliocentric(el Elements, T float64) (x, y, z float64) {
	a := el.A + T*el.Rates.A
	e := el.E + T*el.Rates.E
	inc := degToRad(el.I + T*el.Rates.I)
	meanLong := normalizeDegrees(el.MeanLongitude + T*el.Rates.MeanLongitude)
	perihelion := normalizeDegrees(el.LongPerihelion + T*el.Rates.LongPerihelion)
	node := degToRad(normalizeDegrees(el.LongAscNode + T*el.Rates.LongAscNode))

	argPeri := degToRad(perihelion) - node
	meanAnomaly := degToRad(normalizeDegrees(meanLong - perihelion))
	if meanAnomaly > math.Pi {
		meanAnomaly -= 2 * math.Pi
	}

	ecc := solveKepler(meanAnomaly, e)
	xOrb := a * (math.Cos(ecc) - e)
	yOrb := a * math.Sqrt(1-e*e) * math.Sin(ecc)

	cw, sw := math.Cos(argPeri), math.Sin(argPeri)
	cn, sn := math.Cos(node), math.Sin(node)
	ci, si := math.Cos(inc), math.Sin(inc)

	x = (cw*cn-sw*sn*ci)*xOrb + (-sw*cn-cw*sn*ci)*yOrb
	y = (cw*sn+sw*cn*ci)*xOrb + (-sw*sn+cw*cn*ci)*yOrb
	z = (sw*si)*xOrb + (cw*si)*yOrb
	return x, y, z
}
