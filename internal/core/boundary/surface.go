package boundary

import (
	"github.com/credao/gardengrid/internal/core/domain"
	"github.com/credao/gardengrid/internal/pkg/geospatial"
)

// Surface is the fixed drawing canvas used while creating a garden. It shows
// Center ± Scale degrees on both axes, without padding.
type Surface struct {
	Center domain.GeoCoordinate
	Scale  float64
	Width  float64
	Height float64
}

// Bounds returns the geographic area shown on the surface.
func (s Surface) Bounds() domain.Bounds {
	return domain.Bounds{
		MinLat: s.Center.Lat - s.Scale,
		MinLng: s.Center.Lng - s.Scale,
		MaxLat: s.Center.Lat + s.Scale,
		MaxLng: s.Center.Lng + s.Scale,
	}
}

func (s Surface) projection() geospatial.Projection {
	return geospatial.NewProjection(s.Bounds(), domain.Viewport{Width: s.Width, Height: s.Height}, 0)
}

// CoordinateAt converts a click at pixel (x, y) to a coordinate.
func (s Surface) CoordinateAt(x, y float64) domain.GeoCoordinate {
	return s.projection().ToCoordinate(domain.Pixel{X: x, Y: y})
}

// PixelOf converts a coordinate to its position on the surface.
func (s Surface) PixelOf(c domain.GeoCoordinate) domain.Pixel {
	return s.projection().ToPixel(c)
}
