// Package sun holds the sub-solar point that the user drags around the map.
package sun

import (
	"go.uber.org/zap"

	"github.com/Faultbox/flat-earth/pkg/geo"
	"github.com/Faultbox/flat-earth/pkg/math"
)

// PointerSample is the pointer state read once per frame.
type PointerSample struct {
	// Position is the pointer location in projection coordinates.
	Position math.Vec2
	// Select is true while the selection input is held.
	Select bool
}

// Step returns the sun position for the next frame. While Select is held
// the sun snaps to the pointer; otherwise, or when the pointer is off the
// map, the previous position is kept.
func Step(prev geo.LatLon, s PointerSample) geo.LatLon {
	if !s.Select {
		return prev
	}
	next, ok := geo.FromAzimuthal(s.Position)
	if !ok {
		return prev
	}
	return next
}

// Tracker threads the sun position through the frame loop.
type Tracker struct {
	pos geo.LatLon
	log *zap.Logger
}

// NewTracker starts tracking from the given position.
func NewTracker(start geo.LatLon, log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{pos: start, log: log}
}

// Position returns the current sun position.
func (t *Tracker) Position() geo.LatLon {
	return t.pos
}

// Update applies Step and reports whether the position changed.
func (t *Tracker) Update(s PointerSample) bool {
	next := Step(t.pos, s)
	if next == t.pos {
		return false
	}
	t.log.Debug("sun moved",
		zap.Float64("lat", next.Lat),
		zap.Float64("lon", next.Lon),
		zap.Stringer("midnight", geo.Antipode(next)),
	)
	t.pos = next
	return true
}
