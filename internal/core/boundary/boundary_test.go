package boundary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credao/gardengrid/internal/core/boundary"
	"github.com/credao/gardengrid/internal/core/domain"
)

func pt(lat, lng float64) domain.GeoCoordinate { return domain.GeoCoordinate{Lat: lat, Lng: lng} }

func TestBoundary_AppendUndoClear(t *testing.T) {
	b := boundary.New()
	b.UndoLast()
	assert.Zero(t, b.Len())

	b.Append(pt(1, 1))
	b.Append(pt(2, 2))
	b.Append(pt(3, 3))
	require.Equal(t, 3, b.Len())

	b.UndoLast()
	assert.Equal(t, []domain.GeoCoordinate{pt(1, 1), pt(2, 2)}, b.Points())

	b.Clear()
	assert.Zero(t, b.Len())
	assert.Empty(t, b.Points())
}

func TestBoundary_IsClosable(t *testing.T) {
	b := boundary.New(pt(0, 0), pt(0, 1))
	assert.False(t, b.IsClosable())
	_, err := b.Close()
	assert.ErrorIs(t, err, domain.ErrBoundaryOpen)

	b.Append(pt(1, 1))
	assert.True(t, b.IsClosable())
}

func TestBoundary_CloseDoesNotMutate(t *testing.T) {
	b := boundary.New(pt(0, 0), pt(0, 1), pt(1, 1))
	closed, err := b.Close()
	require.NoError(t, err)
	assert.Len(t, closed, 4)
	assert.Equal(t, closed[0], closed[3])
	assert.Equal(t, 3, b.Len())
}

func TestBoundary_PointsIsACopy(t *testing.T) {
	b := boundary.New(pt(0, 0))
	pts := b.Points()
	pts[0] = pt(9, 9)
	assert.Equal(t, pt(0, 0), b.Points()[0])
}

func TestBoundary_Path(t *testing.T) {
	open := boundary.New(pt(0, 0), pt(1, 1))
	pts, closed := open.Path()
	assert.False(t, closed)
	assert.Len(t, pts, 2)

	tri := boundary.New(pt(0, 0), pt(1, 1), pt(1, 0))
	pts, closed = tri.Path()
	assert.True(t, closed)
	assert.Len(t, pts, 4)
}

func TestRectangle(t *testing.T) {
	rect := boundary.Rectangle(pt(37.7749, -122.4194), 10, 4, 0.00001)
	require.Len(t, rect, 4)
	assert.InDelta(t, 37.7749-0.00002, rect[0].Lat, 1e-12)
	assert.InDelta(t, -122.4194-0.00005, rect[0].Lng, 1e-12)
	assert.InDelta(t, 37.7749+0.00002, rect[2].Lat, 1e-12)
	assert.InDelta(t, -122.4194+0.00005, rect[2].Lng, 1e-12)
}

func TestMeasure(t *testing.T) {
	b := boundary.New(boundary.Rectangle(pt(0, 0), 10, 10, 0.000009)...)
	stats, err := b.Measure()
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Points)
	assert.InDelta(t, 40, stats.PerimeterM, 0.5)
	assert.InDelta(t, 100, stats.AreaM2, 2)
	assert.InDelta(t, 0, stats.Centroid.Lat, 1e-9)

	_, err = boundary.New(pt(0, 0)).Measure()
	assert.ErrorIs(t, err, domain.ErrBoundaryOpen)
}

func TestCoverage_Triangle(t *testing.T) {
	// right triangle with the right angle in the south-west corner
	tri := []domain.GeoCoordinate{pt(0, 0), pt(1, 0), pt(0, 1)}
	cov := boundary.Coverage(tri, 4, 4)
	require.Len(t, cov, 4)
	// row 3 is the southern edge: the south-west cell is inside, the north-east is not
	assert.True(t, cov[3][0])
	assert.False(t, cov[0][3])
}

func TestCoverage_OpenBoundary(t *testing.T) {
	cov := boundary.Coverage([]domain.GeoCoordinate{pt(0, 0)}, 2, 3)
	require.Len(t, cov, 3)
	for _, row := range cov {
		assert.Equal(t, []bool{false, false}, row)
	}
}
