package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credao/gardengrid/internal/core/domain"
	"github.com/credao/gardengrid/internal/core/grid"
)

func TestBuild_Completeness(t *testing.T) {
	crops := []domain.Crop{
		crop(1, "Tomato", "Growing", pos(0, 0)),
		crop(2, "Basil", "Planted", pos(1, 1), pos(2, 1), pos(1, 2), pos(2, 2)),
		crop(3, "Corn", "Flowering", pos(4, 0), pos(4, 3)),
	}
	idx := grid.Build(5, 4, crops)

	for _, c := range crops {
		for _, p := range c.GridPositions {
			got, ok := idx.At(p)
			require.True(t, ok, "cell %s", p)
			assert.Equal(t, c.ID, got.ID)
		}
	}
	assert.Equal(t, 7, idx.OccupiedCells())

	_, ok := idx.At(pos(3, 3))
	assert.False(t, ok)
}

func TestBuild_LastWriteWins(t *testing.T) {
	idx := grid.Build(3, 3, []domain.Crop{
		crop(1, "Kale", "Growing", pos(1, 1), pos(2, 1)),
		crop(2, "Leek", "Growing", pos(1, 1)),
	})
	got, ok := idx.At(pos(1, 1))
	require.True(t, ok)
	assert.Equal(t, uint64(2), got.ID)
	assert.Equal(t, 1, idx.Overwritten())

	got, _ = idx.At(pos(2, 1))
	assert.Equal(t, uint64(1), got.ID)
}

func TestBuild_OutOfRangePositionsSkipped(t *testing.T) {
	idx := grid.Build(2, 2, []domain.Crop{crop(1, "Pea", "Planted", pos(0, 0), pos(5, 0))})
	assert.Equal(t, 1, idx.Skipped())
	assert.Equal(t, 1, idx.OccupiedCells())
}

func TestAt_OutOfRange(t *testing.T) {
	idx := grid.Build(2, 2, nil)
	assert.False(t, idx.InBounds(pos(2, 0)))
	assert.False(t, idx.Occupied(pos(0, 2)))
	_, ok := idx.At(pos(9, 9))
	assert.False(t, ok)
}

func TestBuild_IsIdempotent(t *testing.T) {
	crops := []domain.Crop{crop(1, "Bean", "Growing", pos(0, 1))}
	a := grid.Build(3, 3, crops)
	b := grid.Build(3, 3, crops)
	assert.Equal(t, a, b)
}

func TestBuild_CopiesInput(t *testing.T) {
	crops := []domain.Crop{crop(1, "Bean", "Growing", pos(0, 1))}
	idx := grid.Build(3, 3, crops)
	crops[0].Name = "Changed"
	got, _ := idx.At(pos(0, 1))
	assert.Equal(t, "Bean", got.Name)
}

func TestBuildForGarden_FiltersByGarden(t *testing.T) {
	other := crop(2, "Mint", "Growing", pos(0, 0))
	other.GardenID = 99
	g := domain.Garden{ID: 1, Width: 2, Height: 2, GridSize: 4}
	idx := grid.BuildForGarden(g, []domain.Crop{other, crop(1, "Sage", "Growing", pos(1, 1))})

	assert.False(t, idx.Occupied(pos(0, 0)))
	assert.True(t, idx.Occupied(pos(1, 1)))
	assert.Len(t, idx.Crops(), 1)
}

func TestAt_ReturnsCopy(t *testing.T) {
	idx := grid.Build(3, 3, []domain.Crop{crop(1, "Kale", "Growing", pos(0, 0), pos(1, 0))})

	got, ok := idx.At(pos(0, 0))
	require.True(t, ok)
	got.Name = "Changed"
	got.GridPositions[1] = pos(2, 2)

	again, _ := idx.At(pos(0, 0))
	assert.Equal(t, "Kale", again.Name)
	assert.Equal(t, []domain.GridPosition{pos(0, 0), pos(1, 0)}, again.GridPositions)
	assert.False(t, idx.Occupied(pos(2, 2)))

	crops := idx.Crops()
	crops[0].GridPositions[0] = pos(2, 2)
	again, _ = idx.At(pos(0, 0))
	assert.Equal(t, pos(0, 0), again.GridPositions[0])
}
