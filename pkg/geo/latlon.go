// Package geo models points on a spherical Earth and their placement on a
// north-pole-centred azimuthal equidistant disk.
package geo

import (
	"fmt"
	"math"

	fmath "github.com/Faultbox/flat-earth/pkg/math"
)

const (
	// EarthRadiusKm is the mean Earth radius.
	EarthRadiusKm = 6371.0

	// EarthCircumferenceKm is the equatorial circumference.
	EarthCircumferenceKm = 40075.0

	// TerminatorDistanceKm is the great-circle distance from the sub-solar
	// point at which day turns into night.
	TerminatorDistanceKm = EarthCircumferenceKm / 4
)

// LatLon is a point on the Earth's surface in decimal degrees.
//
// Lat is 90 at the north pole and -90 at the south pole. Lon is 0 through
// London, ±180 on the other side, and grows towards the west.
type LatLon struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// Valid reports whether the point lies in lat [-90, 90], lon (-180, 180].
func (p LatLon) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon > -180 && p.Lon <= 180
}

// OnMap reports whether the point is representable on the projection disk.
func (p LatLon) OnMap() bool {
	return p.Lat >= -90
}

// String formats the point as "47.7511°N 120.7401°W".
func (p LatLon) String() string {
	ns, ew := "N", "W"
	if p.Lat < 0 {
		ns = "S"
	}
	if p.Lon < 0 {
		ew = "E"
	}
	return fmt.Sprintf("%.4f°%s %.4f°%s", math.Abs(p.Lat), ns, math.Abs(p.Lon), ew)
}

// DistanceTo is shorthand for Distance(p, other).
func (p LatLon) DistanceTo(other LatLon) float64 {
	return Distance(p, other)
}

// Distance returns the great-circle distance between a and b in kilometers,
// using the haversine formula.
//
// https://en.wikipedia.org/wiki/Haversine_formula
func Distance(a, b LatLon) float64 {
	lat1 := fmath.Radians(a.Lat)
	lon1 := fmath.Radians(a.Lon)
	lat2 := fmath.Radians(b.Lat)
	lon2 := fmath.Radians(b.Lon)

	u := math.Sin((lat2 - lat1) / 2)
	v := math.Sin((lon2 - lon1) / 2)

	// Rounding can push h a hair past 1 at exact antipodes.
	h := math.Min(1, u*u+math.Cos(lat1)*math.Cos(lat2)*v*v)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// Antipode returns the point on the opposite side of the globe.
func Antipode(p LatLon) LatLon {
	lon := p.Lon - 180
	if lon <= -180 {
		lon += 360
	}
	return LatLon{Lat: -p.Lat, Lon: lon}
}
