package grid

import (
	"fmt"

	"github.com/credao/gardengrid/internal/core/domain"
)

// Display limits used by the grid view and the planting selector.
const (
	DefaultMaxDisplay  = 20
	SelectorMaxDisplay = 15
)

// WindowDimensions clamps each logical dimension to maxDisplay.
func WindowDimensions(logicalW, logicalH, maxDisplay uint32) (uint32, uint32) {
	return min(logicalW, maxDisplay), min(logicalH, maxDisplay)
}

// Window is the top-left part of a grid that gets drawn. Cells outside it are
// neither shown nor selectable, but they still exist.
type Window struct {
	LogicalWidth  uint32
	LogicalHeight uint32
	Width         uint32
	Height        uint32
}

// NewWindow clamps a logicalW×logicalH grid to maxDisplay cells per side.
func NewWindow(logicalW, logicalH, maxDisplay uint32) Window {
	w, h := WindowDimensions(logicalW, logicalH, maxDisplay)
	return Window{LogicalWidth: logicalW, LogicalHeight: logicalH, Width: w, Height: h}
}

// Clamped reports whether part of the grid is hidden.
func (w Window) Clamped() bool {
	return w.Width < w.LogicalWidth || w.Height < w.LogicalHeight
}

// Contains reports whether p is drawn.
func (w Window) Contains(p domain.GridPosition) bool {
	return p.X < w.Width && p.Y < w.Height
}

// Indicator returns the "showing N×M of W×H" note, or "" when nothing is
// hidden.
func (w Window) Indicator() string {
	if !w.Clamped() {
		return ""
	}
	return fmt.Sprintf("showing %d×%d of %d×%d", w.Width, w.Height, w.LogicalWidth, w.LogicalHeight)
}

// Positions lists the drawn cells row by row.
func (w Window) Positions() []domain.GridPosition {
	if w.Width == 0 || w.Height == 0 {
		return nil
	}
	return Rect{MaxX: w.Width - 1, MaxY: w.Height - 1}.Cells()
}
