package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/credao/gardengrid/internal/core/grid"
)

func TestWindowDimensions(t *testing.T) {
	w, h := grid.WindowDimensions(50, 3, 20)
	assert.Equal(t, uint32(20), w)
	assert.Equal(t, uint32(3), h)

	w, h = grid.WindowDimensions(5, 5, 20)
	assert.Equal(t, uint32(5), w)
	assert.Equal(t, uint32(5), h)
}

func TestWindow_ClampedNotRendered(t *testing.T) {
	win := grid.NewWindow(50, 3, 20)
	assert.True(t, win.Clamped())
	assert.Equal(t, "showing 20×3 of 50×3", win.Indicator())

	positions := win.Positions()
	assert.Len(t, positions, 60)
	for _, p := range positions {
		assert.Less(t, p.X, uint32(20))
	}
	assert.False(t, win.Contains(pos(20, 0)))
	assert.True(t, win.Contains(pos(19, 2)))
}

func TestWindow_NotClamped(t *testing.T) {
	win := grid.NewWindow(10, 10, 20)
	assert.False(t, win.Clamped())
	assert.Empty(t, win.Indicator())
}
