package boundary

import (
	"github.com/credao/gardengrid/internal/core/domain"
	"github.com/credao/gardengrid/internal/pkg/geospatial"
)

// Stats summarises a closed boundary.
type Stats struct {
	Points      int
	PerimeterM  float64
	AreaM2      float64
	Centroid    domain.GeoCoordinate
	BoundingBox domain.Bounds
}

// Measure returns perimeter, area and centroid of a closable boundary.
func (b *Boundary) Measure() (Stats, error) {
	if !b.IsClosable() {
		return Stats{Points: b.Len()}, domain.ErrBoundaryOpen
	}
	return Stats{
		Points:      b.Len(),
		PerimeterM:  geospatial.Perimeter(b.points),
		AreaM2:      geospatial.Area(b.points),
		Centroid:    geospatial.Centroid(b.points),
		BoundingBox: geospatial.BoundsOf(b.points),
	}, nil
}

// Coverage splits the bounding box of points into a width×height grid and
// reports, row-major, whether each cell centre lies inside the polygon.
// Row 0 is the northern edge. Open boundaries cover nothing.
func Coverage(points []domain.GeoCoordinate, width, height uint32) [][]bool {
	out := make([][]bool, height)
	for y := range out {
		out[y] = make([]bool, width)
	}
	if len(points) < MinClosablePoints || width == 0 || height == 0 {
		return out
	}

	proj := geospatial.NewProjection(
		geospatial.BoundsOf(points),
		domain.Viewport{Width: float64(width), Height: float64(height)},
		0,
	)
	for y := uint32(0); y < height; y++ {
		for x := uint32(0); x < width; x++ {
			centre := proj.ToCoordinate(domain.Pixel{X: float64(x) + 0.5, Y: float64(y) + 0.5})
			out[y][x] = geospatial.Contains(points, centre)
		}
	}
	return out
}
