package geospatial

import (
	"github.com/paulmach/orb"

	"github.com/credao/gardengrid/internal/core/domain"
)

// DefaultRangeEpsilon is substituted for a zero latitude or longitude range.
const DefaultRangeEpsilon = 0.001

// Projection maps geographic coordinates onto a padded viewport. Longitude
// runs left to right; latitude runs bottom to top, so north has smaller y.
type Projection struct {
	bounds   domain.Bounds
	viewport domain.Viewport
	latRange float64
	lngRange float64
	usableW  float64
	usableH  float64
}

// NewProjection builds a projection. A degenerate latitude or longitude range
// is replaced by epsilon (DefaultRangeEpsilon when epsilon <= 0), and a
// viewport smaller than twice its padding keeps a usable area of one pixel.
func NewProjection(b domain.Bounds, vp domain.Viewport, epsilon float64) Projection {
	if epsilon <= 0 {
		epsilon = DefaultRangeEpsilon
	}
	p := Projection{
		bounds:   b,
		viewport: vp,
		latRange: b.LatRange(),
		lngRange: b.LngRange(),
		usableW:  vp.Width - 2*vp.Padding,
		usableH:  vp.Height - 2*vp.Padding,
	}
	if p.latRange == 0 {
		p.latRange = epsilon
	}
	if p.lngRange == 0 {
		p.lngRange = epsilon
	}
	if p.usableW < 1 {
		p.usableW = 1
	}
	if p.usableH < 1 {
		p.usableH = 1
	}
	return p
}

// Viewport returns the viewport the projection draws into.
func (p Projection) Viewport() domain.Viewport { return p.viewport }

// ToPixel converts a coordinate to a pixel position.
func (p Projection) ToPixel(c domain.GeoCoordinate) domain.Pixel {
	pad := p.viewport.Padding
	return domain.Pixel{
		X: pad + (c.Lng-p.bounds.MinLng)/p.lngRange*p.usableW,
		Y: pad + (p.bounds.MaxLat-c.Lat)/p.latRange*p.usableH,
	}
}

// ToCoordinate is the inverse of ToPixel.
func (p Projection) ToCoordinate(px domain.Pixel) domain.GeoCoordinate {
	pad := p.viewport.Padding
	return domain.GeoCoordinate{
		Lat: p.bounds.MaxLat - (px.Y-pad)/p.usableH*p.latRange,
		Lng: p.bounds.MinLng + (px.X-pad)/p.usableW*p.lngRange,
	}
}

// ToPixel converts c using DefaultRangeEpsilon.
func ToPixel(c domain.GeoCoordinate, b domain.Bounds, vp domain.Viewport) domain.Pixel {
	return NewProjection(b, vp, DefaultRangeEpsilon).ToPixel(c)
}

// ToCoordinate converts px using DefaultRangeEpsilon.
func ToCoordinate(px domain.Pixel, b domain.Bounds, vp domain.Viewport) domain.GeoCoordinate {
	return NewProjection(b, vp, DefaultRangeEpsilon).ToCoordinate(px)
}

// BoundsOf returns the bounding box of coords. An empty slice yields the
// zero box, which NewProjection widens to epsilon.
func BoundsOf(coords []domain.GeoCoordinate) domain.Bounds {
	if len(coords) == 0 {
		return domain.Bounds{}
	}
	first := ToPoint(coords[0])
	bound := orb.Bound{Min: first, Max: first}
	for _, c := range coords[1:] {
		bound = bound.Extend(ToPoint(c))
	}
	return domain.Bounds{
		MinLat: bound.Min.Lat(),
		MinLng: bound.Min.Lon(),
		MaxLat: bound.Max.Lat(),
		MaxLng: bound.Max.Lon(),
	}
}
