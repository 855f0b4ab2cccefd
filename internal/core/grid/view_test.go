package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credao/gardengrid/internal/core/domain"
	"github.com/credao/gardengrid/internal/core/grid"
)

func TestStageBucketOf(t *testing.T) {
	cases := map[string]grid.StageBucket{
		"Planted":          grid.BucketPlanted,
		"Seedling":         grid.BucketPlanted,
		"Germinating":      grid.BucketGrowing,
		"Vegetative":       grid.BucketGrowing,
		"Fruiting":         grid.BucketFlowering,
		"Ready to Harvest": grid.BucketReady,
		"":                 grid.BucketGrowing,
	}
	for stage, want := range cases {
		assert.Equal(t, want, grid.StageBucketOf(stage), stage)
	}
}

func TestBuildView(t *testing.T) {
	idx := grid.Build(4, 3, []domain.Crop{
		crop(1, "tomato", "Growing", pos(0, 0)),
		crop(2, "squash", "Flowering", pos(1, 1), pos(2, 1), pos(1, 2), pos(2, 2)),
	})
	sel := grid.NewSelection(4, 3)
	require.NoError(t, sel.Add(pos(3, 0)))

	v := grid.BuildView(idx, sel, grid.DragState{}, grid.NewWindow(4, 3, 20))
	require.Len(t, v.Rows, 3)
	require.Len(t, v.Rows[0], 4)
	assert.Equal(t, "1 cell(s) selected", v.SelectionSummary())
	assert.Empty(t, v.Indicator)

	single := v.Rows[0][0]
	assert.Equal(t, "t", single.Label)
	assert.False(t, single.MultiCell)
	assert.Equal(t, grid.BorderSingle, single.Border)
	assert.Equal(t, "tomato (Growing)", single.Tooltip)

	anchor := v.Rows[1][1]
	assert.True(t, anchor.Anchor)
	assert.Equal(t, "SQ", anchor.Label)
	assert.Equal(t, grid.BorderMulti, anchor.Border)
	assert.Equal(t, grid.BucketFlowering, anchor.Bucket)
	assert.Equal(t, "squash (Flowering) - 4 cells", anchor.Tooltip)

	rest := v.Rows[2][2]
	assert.True(t, rest.MultiCell)
	assert.False(t, rest.Anchor)
	assert.Empty(t, rest.Label)

	selected := v.Rows[0][3]
	assert.True(t, selected.Empty())
	assert.True(t, selected.Selected)
	assert.Equal(t, "✓", selected.Label)

	assert.Equal(t, "Empty cell (1, 0)", v.Rows[0][1].Tooltip)
}

func TestBuildView_ClampedWindowHidesCrops(t *testing.T) {
	idx := grid.Build(50, 3, []domain.Crop{crop(1, "Far", "Growing", pos(30, 1))})
	v := grid.BuildView(idx, nil, grid.DragState{}, grid.NewWindow(50, 3, 20))
	assert.Equal(t, "showing 20×3 of 50×3", v.Indicator)
	for _, row := range v.Rows {
		require.Len(t, row, 20)
		for _, c := range row {
			assert.True(t, c.Empty())
		}
	}
}

func TestBuildView_DragPreview(t *testing.T) {
	idx := grid.Build(3, 3, nil)
	s := grid.BeginDrag(grid.DragState{}, pos(0, 0), idx)
	s = grid.UpdateDrag(s, pos(1, 1), idx)
	v := grid.BuildView(idx, nil, s, grid.NewWindow(3, 3, 15))
	assert.True(t, v.Rows[1][1].Preview)
	assert.False(t, v.Rows[2][2].Preview)
}

func TestBuildView_SharedCropIDs(t *testing.T) {
	idx := grid.Build(3, 1, []domain.Crop{
		crop(0, "Tomato", "Growing", pos(0, 0)),
		crop(0, "Basil", "Growing", pos(1, 0), pos(2, 0)),
	})
	v := grid.BuildView(idx, nil, grid.DragState{}, grid.NewWindow(3, 1, 20))

	tomato := v.Rows[0][0]
	assert.False(t, tomato.MultiCell)
	assert.Equal(t, "T", tomato.Label)
	assert.Equal(t, grid.BorderSingle, tomato.Border)
	assert.Equal(t, "Tomato (Growing)", tomato.Tooltip)

	basil := v.Rows[0][1]
	assert.True(t, basil.MultiCell)
	assert.True(t, basil.Anchor)
	assert.Equal(t, "BA", basil.Label)
	assert.Equal(t, "Basil (Growing) - 2 cells", basil.Tooltip)
	assert.Empty(t, v.Rows[0][2].Label)
}
