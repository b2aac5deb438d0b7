package geo

import (
	"math"

	fmath "github.com/Faultbox/flat-earth/pkg/math"
)

// diskEpsilon absorbs rounding in |v| for points on the south-pole rim.
// Points with 1 < |v| <= 1+diskEpsilon are on the map at exactly -90.
const diskEpsilon = 1e-9

// ToAzimuthal maps p onto the azimuthal equidistant plane. The north pole
// lands on the origin and the south pole on the unit circle; the radius
// grows linearly with distance from the north pole.
func ToAzimuthal(p LatLon) fmath.Vec2 {
	r := (90 - p.Lat) / 180
	th := fmath.Radians(p.Lon)
	return fmath.Vec2{X: -math.Sin(th), Y: math.Cos(th)}.Scale(r)
}

// FromAzimuthal is the inverse of ToAzimuthal.
//
// ok is false when v lies outside the unit disk (beyond diskEpsilon). The
// returned point then has Lat < -90 and must not be used as a surface
// coordinate.
func FromAzimuthal(v fmath.Vec2) (p LatLon, ok bool) {
	r := v.Length()
	th := math.Atan2(-v.X, v.Y)

	p = LatLon{
		Lat: 90 - 180*r,
		Lon: fmath.Degrees(th),
	}
	if r > 1+diskEpsilon {
		return p, false
	}
	if p.Lat < -90 {
		p.Lat = -90
	}
	return p, true
}
