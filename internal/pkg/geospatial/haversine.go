package geospatial

import (
	"math"

	"github.com/credao/gardengrid/internal/core/domain"
)

const earthRadiusKm = 6371.0

// Haversine calculates the great-circle distance in meters between two points.
func Haversine(a, b domain.GeoCoordinate) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c * 1000
}

// Perimeter returns the length in meters of the closed ring through coords.
// Fewer than two points have no perimeter.
func Perimeter(coords []domain.GeoCoordinate) float64 {
	if len(coords) < 2 {
		return 0
	}
	var total float64
	for i := range coords {
		total += Haversine(coords[i], coords[(i+1)%len(coords)])
	}
	return total
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
