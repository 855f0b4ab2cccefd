package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credao/gardengrid/internal/core/domain"
	"github.com/credao/gardengrid/internal/core/grid"
)

func TestComputeFootprint_Containment(t *testing.T) {
	crops := []domain.Crop{
		crop(1, "Squash", "Growing", pos(3, 2), pos(4, 2), pos(3, 3), pos(4, 3)),
		crop(2, "Melon", "Growing", pos(7, 1), pos(2, 5)),
		crop(3, "Chard", "Growing", pos(0, 0), pos(0, 1), pos(1, 1)),
	}
	for _, c := range crops {
		r, ok := grid.ComputeFootprint(c)
		require.True(t, ok)
		for _, p := range c.GridPositions {
			assert.True(t, r.Contains(p), "crop %d cell %s", c.ID, p)
		}
	}
}

func TestComputeFootprint_Disjoint(t *testing.T) {
	r, ok := grid.ComputeFootprint(crop(1, "Melon", "Growing", pos(7, 1), pos(2, 5)))
	require.True(t, ok)
	assert.Equal(t, grid.Rect{MinX: 2, MaxX: 7, MinY: 1, MaxY: 5}, r)
	assert.Equal(t, 30, r.Area())
}

func TestComputeFootprint_Empty(t *testing.T) {
	_, ok := grid.ComputeFootprint(domain.Crop{})
	assert.False(t, ok)
}

func TestIsAnchor_Unique(t *testing.T) {
	c := crop(1, "Squash", "Growing", pos(4, 3), pos(3, 2), pos(4, 2), pos(3, 3))
	anchors := 0
	for _, p := range c.GridPositions {
		if grid.IsAnchor(c, p.X, p.Y) {
			anchors++
			assert.Equal(t, pos(3, 2), p)
		}
	}
	assert.Equal(t, 1, anchors)
}

func TestResolveFootprints_SkipsSingleCell(t *testing.T) {
	fps := grid.ResolveFootprints([]domain.Crop{
		crop(1, "Tomato", "Growing", pos(0, 0)),
		crop(2, "Squash", "Growing", pos(1, 1), pos(2, 1)),
	})
	assert.Len(t, fps, 1)
	assert.Equal(t, grid.Rect{MinX: 1, MaxX: 2, MinY: 1, MaxY: 1}, fps[2])
}

func TestLabelPosition(t *testing.T) {
	p, ok := grid.LabelPosition(crop(1, "Squash", "Growing", pos(2, 2), pos(1, 1), pos(2, 1)))
	require.True(t, ok)
	assert.Equal(t, pos(1, 1), p)

	// L-shape whose bounding-box corner is not planted
	p, ok = grid.LabelPosition(crop(2, "Vine", "Growing", pos(0, 1), pos(1, 0), pos(1, 1)))
	require.True(t, ok)
	assert.Equal(t, pos(1, 0), p)
}
