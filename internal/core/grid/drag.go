package grid

import "github.com/credao/gardengrid/internal/core/domain"

// DragPhase is the state of a click-and-drag gesture.
type DragPhase int

const (
	Idle DragPhase = iota
	Dragging
)

func (p DragPhase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// DragState is the selection gesture. Anchor and Current are only meaningful
// while Phase is Dragging. The zero value is Idle.
type DragState struct {
	Phase   DragPhase
	Anchor  domain.GridPosition
	Current domain.GridPosition
}

// BeginDrag starts a gesture on p. Pointer-down on an occupied or
// out-of-range cell, or while a drag is already running, leaves s unchanged.
func BeginDrag(s DragState, p domain.GridPosition, occ Occupancy) DragState {
	if s.Phase == Dragging {
		return s
	}
	if occ != nil && (!occ.InBounds(p) || occ.Occupied(p)) {
		return s
	}
	return DragState{Phase: Dragging, Anchor: p, Current: p}
}

// UpdateDrag moves the free corner to p. The anchor never moves. Outside a
// drag it does nothing; an out-of-range p keeps the last known cell.
func UpdateDrag(s DragState, p domain.GridPosition, occ Occupancy) DragState {
	if s.Phase != Dragging {
		return s
	}
	if occ != nil && !occ.InBounds(p) {
		return s
	}
	s.Current = p
	return s
}

// EndDrag finishes the gesture and returns Idle together with the cells to
// toggle: every cell of the anchor/current rectangle, row by row, minus the
// occupied ones. Ending while Idle yields no cells.
func EndDrag(s DragState, occ Occupancy) (DragState, []domain.GridPosition) {
	r, ok := s.Rect()
	if !ok {
		return DragState{}, nil
	}
	cells := r.Cells()
	if occ != nil {
		free := cells[:0]
		for _, p := range cells {
			if !occ.Occupied(p) {
				free = append(free, p)
			}
		}
		cells = free
	}
	return DragState{}, cells
}

// Rect returns the preview rectangle of a running drag.
func (s DragState) Rect() (Rect, bool) {
	if s.Phase != Dragging {
		return Rect{}, false
	}
	return RectBetween(s.Anchor, s.Current), true
}

// InPreview reports whether p is inside the running drag's rectangle.
func (s DragState) InPreview(p domain.GridPosition) bool {
	r, ok := s.Rect()
	return ok && r.Contains(p)
}
