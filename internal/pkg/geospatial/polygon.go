package geospatial

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"

	"github.com/credao/gardengrid/internal/core/domain"
)

// ToPoint converts a coordinate to an orb point (lon, lat order).
func ToPoint(c domain.GeoCoordinate) orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// FromPoint converts an orb point back to a coordinate.
func FromPoint(p orb.Point) domain.GeoCoordinate {
	return domain.GeoCoordinate{Lat: p.Lat(), Lng: p.Lon()}
}

// ToRing converts coords into a closed orb ring. The input is not modified.
func ToRing(coords []domain.GeoCoordinate) orb.Ring {
	ring := make(orb.Ring, 0, len(coords)+1)
	for _, c := range coords {
		ring = append(ring, ToPoint(c))
	}
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return ring
}

// Area returns the geodesic area of the polygon in square meters.
func Area(coords []domain.GeoCoordinate) float64 {
	if len(coords) < 3 {
		return 0
	}
	return math.Abs(geo.Area(ToRing(coords)))
}

// Centroid returns the planar area centroid of the polygon.
func Centroid(coords []domain.GeoCoordinate) domain.GeoCoordinate {
	if len(coords) == 0 {
		return domain.GeoCoordinate{}
	}
	if len(coords) < 3 {
		return FromPoint(ToRing(coords).Bound().Center())
	}
	c, _ := planar.CentroidArea(ToRing(coords))
	return FromPoint(c)
}

// Contains reports whether c lies inside the polygon described by coords.
func Contains(coords []domain.GeoCoordinate, c domain.GeoCoordinate) bool {
	if len(coords) < 3 {
		return false
	}
	return planar.RingContains(ToRing(coords), ToPoint(c))
}
