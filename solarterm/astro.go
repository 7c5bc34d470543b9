package solarterm

import (
	"math"
	"time"
)

// julianDay converts t to a julian day, with the fractional part
// carrying the time of day. The algorithm is the simplified form from
// Meeus, Astronomical Algorithms.
func julianDay(utc time.Time) float64 {
	utc = utc.UTC()
	y := utc.Year()
	m := int(utc.Month())
	d := float64(utc.Day()) +
		(float64(utc.Hour())+(float64(utc.Minute())+float64(utc.Second())/60.0)/60.0)/24.0

	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(float64(y) / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*(float64(y)+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		d + b - 1524.5
}

// apparentLongitude returns the sun's apparent ecliptic longitude at
// the given UTC instant, in degrees 0..360. Low-order series: mean
// longitude, equation of center from the first three harmonics of the
// mean anomaly, and the ascending-node correction for nutation and
// aberration. Accuracy is a few hundredths of a degree, well under
// the minute-level precision the term search needs.
func apparentLongitude(utc time.Time) float64 {
	jd := julianDay(utc)
	t := (jd - 2451545.0) / 36525.0 // julian centuries from J2000.0

	// Mean longitude.
	l0 := normalize360(280.46646 + 36000.76983*t + 0.0003032*t*t)

	// Mean anomaly.
	m := deg2rad(normalize360(357.52911 + 35999.05029*t - 0.0001537*t*t))

	// Equation of center.
	c := (1.914602-0.004817*t-0.000014*t*t)*math.Sin(m) +
		(0.019993-0.000101*t)*math.Sin(2*m) +
		0.000289*math.Sin(3*m)

	// Apparent correction via the ascending node.
	omega := 125.04 - 1934.136*t
	lambda := l0 + c - 0.00569 - 0.00478*math.Sin(deg2rad(omega))

	return normalize360(lambda)
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

func normalize360(x float64) float64 {
	r := math.Mod(x, 360)
	if r < 0 {
		r += 360
	}
	return r
}

// signedDiff returns lon-target folded into -180..180.
func signedDiff(lon, target float64) float64 {
	r := normalize360(lon - target)
	if r > 180 {
		r -= 360
	}
	return r
}
