// math/latlong.go
// Copyright(c) 2026 Pelorus contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"encoding/json"
	"fmt"
	gomath "math"
)

// EarthRadiusNM is the spherical-Earth radius used for all great-circle
// computations, expressed in nautical miles.
const EarthRadiusNM = 3440.065

// Point2LL represents a 2D point on the Earth in latitude-longitude.
// Important: 0 (x) is longitude, 1 (y) is latitude.
type Point2LL [2]float32

func (p Point2LL) Longitude() float32 {
	return p[0]
}

func (p Point2LL) Latitude() float32 {
	return p[1]
}

func (p Point2LL) IsZero() bool {
	return p[0] == 0 && p[1] == 0
}

// Valid reports whether the point is a plausible WGS-84 coordinate:
// latitude in [-90,90] and longitude in [-180,180].
func (p Point2LL) Valid() bool {
	return p[1] >= -90 && p[1] <= 90 && p[0] >= -180 && p[0] <= 180
}

// DDString returns the position in decimal degrees, e.g.:
// (35.394444, 139.444722)
func (p Point2LL) DDString() string {
	return fmt.Sprintf("(%f, %f)", p[1], p[0]) // latitude, longitude
}

// DMSString returns the position in degrees, minutes, seconds, e.g.
// N035.23.40,E139.26.41
func (p Point2LL) DMSString() string {
	format := func(v float32) string {
		s := fmt.Sprintf("%03d", int(v))
		v -= Floor(v)
		v *= 60
		s += fmt.Sprintf(".%02d", int(v))
		v -= Floor(v)
		v *= 60
		s += fmt.Sprintf(".%02d", int(v))
		return s
	}

	var s string
	if p[1] > 0 {
		s = "N"
	} else {
		s = "S"
	}
	s += format(Abs(p[1]))

	if p[0] > 0 {
		s += ",E"
	} else {
		s += ",W"
	}
	s += format(Abs(p[0]))

	return s
}

// Points are arrays of two floats in JSON, in longitude-latitude order as
// in GeoJSON.
func (p Point2LL) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float32(p))
}

func (p *Point2LL) UnmarshalJSON(b []byte) error {
	var pt [2]float32
	if err := json.Unmarshal(b, &pt); err != nil {
		return err
	}
	*p = pt
	return nil
}

// NMDistance2LL returns the great-circle distance in nautical miles
// between two provided lat-long coordinates, using the haversine formula.
func NMDistance2LL(a Point2LL, b Point2LL) float32 {
	d, _ := NMDistanceAndBearing2LL(a, b)
	return d
}

// NMDistanceAndBearing2LL returns the great-circle distance in nautical
// miles between a and b along with the initial true bearing from a to b,
// normalized to [0,360). Note that the bearing is not reciprocal: the
// bearing from b to a is in general not the returned bearing plus 180
// degrees. If a and b are coincident, the bearing is 0 by convention.
func NMDistanceAndBearing2LL(a Point2LL, b Point2LL) (float32, float32) {
	// https://www.movable-type.co.uk/scripts/latlong.html
	rad := func(d float32) float64 { return float64(d) / 180 * gomath.Pi }
	lat1, lon1 := rad(a[1]), rad(a[0])
	lat2, lon2 := rad(b[1]), rad(b[0])
	dlat, dlon := lat2-lat1, lon2-lon1

	x := Sqr(gomath.Sin(dlat/2)) + gomath.Cos(lat1)*gomath.Cos(lat2)*Sqr(gomath.Sin(dlon/2))
	c := 2 * gomath.Atan2(gomath.Sqrt(x), gomath.Sqrt(1-x))
	dist := float32(EarthRadiusNM * c)

	y := gomath.Sin(dlon) * gomath.Cos(lat2)
	z := gomath.Cos(lat1)*gomath.Sin(lat2) - gomath.Sin(lat1)*gomath.Cos(lat2)*gomath.Cos(dlon)
	brg := NormalizeHeading(float32(gomath.Atan2(y, z) * 180 / gomath.Pi))

	return dist, brg
}

// Offset2LLGreatCircle solves the direct geodetic problem: it returns the
// point at the given distance (nautical miles) along the great circle
// departing p with the given initial true bearing, on a spherical Earth.
// The returned longitude is normalized to [-180,180]. Results within about
// a tenth of a degree of either pole are unspecified; no special handling
// is done there.
func Offset2LLGreatCircle(p Point2LL, bearingDeg float32, nm float32) Point2LL {
	lat1 := float64(Radians(p[1]))
	lon1 := float64(Radians(p[0]))
	theta := float64(Radians(bearingDeg))
	delta := float64(nm) / EarthRadiusNM // angular distance

	lat2 := gomath.Asin(gomath.Sin(lat1)*gomath.Cos(delta) +
		gomath.Cos(lat1)*gomath.Sin(delta)*gomath.Cos(theta))
	lon2 := lon1 + gomath.Atan2(gomath.Sin(theta)*gomath.Sin(delta)*gomath.Cos(lat1),
		gomath.Cos(delta)-gomath.Sin(lat1)*gomath.Sin(lat2))

	return Point2LL{NormalizeLongitude(Degrees(float32(lon2))), Degrees(float32(lat2))}
}

// NormalizeLongitude wraps a longitude in degrees into [-180,180].
func NormalizeLongitude(lon float32) float32 {
	lon = Mod(lon, 360)
	if lon > 180 {
		lon -= 360
	} else if lon < -180 {
		lon += 360
	}
	return lon
}
