// Package boundary holds the polygon a grower draws around a garden and the
// drawing surface used to place its points.
package boundary

import (
	"github.com/credao/gardengrid/internal/core/domain"
)

// MinClosablePoints is the smallest number of points that forms a polygon.
const MinClosablePoints = 3

// Boundary is an ordered list of coordinates. Insertion order is the polygon
// winding; points are only ever appended or removed from the end.
type Boundary struct {
	points []domain.GeoCoordinate
}

// New returns a boundary holding a copy of points.
func New(points ...domain.GeoCoordinate) *Boundary {
	b := &Boundary{}
	b.points = append(b.points, points...)
	return b
}

// Append adds p after the last point.
func (b *Boundary) Append(p domain.GeoCoordinate) {
	b.points = append(b.points, p)
}

// UndoLast removes the most recently appended point. It is a no-op on an
// empty boundary.
func (b *Boundary) UndoLast() {
	if len(b.points) == 0 {
		return
	}
	b.points = b.points[:len(b.points)-1]
}

// Clear removes every point.
func (b *Boundary) Clear() {
	b.points = nil
}

// Len returns the number of points.
func (b *Boundary) Len() int { return len(b.points) }

// Points returns a copy of the stored points.
func (b *Boundary) Points() []domain.GeoCoordinate {
	out := make([]domain.GeoCoordinate, len(b.points))
	copy(out, b.points)
	return out
}

// IsClosable reports whether the boundary has enough points to be a polygon.
func (b *Boundary) IsClosable() bool {
	return len(b.points) >= MinClosablePoints
}

// Close returns the polygon path with the first point repeated at the end.
// The stored points are left untouched.
func (b *Boundary) Close() ([]domain.GeoCoordinate, error) {
	if !b.IsClosable() {
		return nil, domain.ErrBoundaryOpen
	}
	out := make([]domain.GeoCoordinate, 0, len(b.points)+1)
	out = append(out, b.points...)
	return append(out, b.points[0]), nil
}

// Path returns the points to draw and whether the path should be closed.
func (b *Boundary) Path() ([]domain.GeoCoordinate, bool) {
	if closed, err := b.Close(); err == nil {
		return closed, true
	}
	return b.Points(), false
}

// Rectangle returns a four-point boundary centred on center, sized
// width×height metres at degreesPerMetre. Points run SW, NW, NE, SE.
func Rectangle(center domain.GeoCoordinate, width, height uint32, degreesPerMetre float64) []domain.GeoCoordinate {
	halfW := float64(width) / 2 * degreesPerMetre
	halfH := float64(height) / 2 * degreesPerMetre
	return []domain.GeoCoordinate{
		{Lat: center.Lat - halfH, Lng: center.Lng - halfW},
		{Lat: center.Lat + halfH, Lng: center.Lng - halfW},
		{Lat: center.Lat + halfH, Lng: center.Lng + halfW},
		{Lat: center.Lat - halfH, Lng: center.Lng + halfW},
	}
}
