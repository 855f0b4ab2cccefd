package grid

import "github.com/credao/gardengrid/internal/core/domain"

// Rect is an inclusive, axis-aligned block of cells.
type Rect struct {
	MinX, MaxX uint32
	MinY, MaxY uint32
}

// RectBetween returns the rectangle spanned by two corner cells, in any order.
func RectBetween(a, b domain.GridPosition) Rect {
	return Rect{
		MinX: min(a.X, b.X),
		MaxX: max(a.X, b.X),
		MinY: min(a.Y, b.Y),
		MaxY: max(a.Y, b.Y),
	}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p domain.GridPosition) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Anchor returns the top-left cell.
func (r Rect) Anchor() domain.GridPosition {
	return domain.GridPosition{X: r.MinX, Y: r.MinY}
}

// Width returns the number of columns covered.
func (r Rect) Width() uint32 { return r.MaxX - r.MinX + 1 }

// Height returns the number of rows covered.
func (r Rect) Height() uint32 { return r.MaxY - r.MinY + 1 }

// Area returns the number of cells covered.
func (r Rect) Area() int { return int(r.Width()) * int(r.Height()) }

// Cells lists every cell of r, row by row.
func (r Rect) Cells() []domain.GridPosition {
	cells := make([]domain.GridPosition, 0, r.Area())
	for y := r.MinY; y <= r.MaxY; y++ {
		for x := r.MinX; x <= r.MaxX; x++ {
			cells = append(cells, domain.GridPosition{X: x, Y: y})
		}
	}
	return cells
}
