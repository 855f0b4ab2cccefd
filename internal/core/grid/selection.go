package grid

import (
	"fmt"

	"github.com/credao/gardengrid/internal/core/domain"
)

// Selection is an insertion-ordered set of cells on a width×height grid.
type Selection struct {
	width, height uint32
	order         []domain.GridPosition
	members       map[domain.GridPosition]struct{}
}

// NewSelection returns an empty selection for a width×height grid.
func NewSelection(width, height uint32) *Selection {
	return &Selection{
		width:   width,
		height:  height,
		members: make(map[domain.GridPosition]struct{}),
	}
}

func (s *Selection) check(p domain.GridPosition) error {
	if p.X >= s.width || p.Y >= s.height {
		return fmt.Errorf("select %s on %d×%d grid: %w", p, s.width, s.height, domain.ErrOutOfRange)
	}
	return nil
}

// Contains reports whether p is selected.
func (s *Selection) Contains(p domain.GridPosition) bool {
	_, ok := s.members[p]
	return ok
}

// Add selects p. Adding a selected cell is a no-op.
func (s *Selection) Add(p domain.GridPosition) error {
	if err := s.check(p); err != nil {
		return err
	}
	if s.Contains(p) {
		return nil
	}
	s.members[p] = struct{}{}
	s.order = append(s.order, p)
	return nil
}

// Toggle flips p and reports whether it is selected afterwards.
func (s *Selection) Toggle(p domain.GridPosition) (bool, error) {
	if err := s.check(p); err != nil {
		return false, err
	}
	if s.Contains(p) {
		s.remove(p)
		return false, nil
	}
	s.members[p] = struct{}{}
	s.order = append(s.order, p)
	return true, nil
}

// ToggleAll toggles every cell independently. Nothing is changed if any cell
// is out of range. It returns how many cells were added and removed.
func (s *Selection) ToggleAll(cells []domain.GridPosition) (added, removed int, err error) {
	for _, p := range cells {
		if err := s.check(p); err != nil {
			return 0, 0, err
		}
	}
	for _, p := range cells {
		on, _ := s.Toggle(p)
		if on {
			added++
		} else {
			removed++
		}
	}
	return added, removed, nil
}

func (s *Selection) remove(p domain.GridPosition) {
	delete(s.members, p)
	for i, q := range s.order {
		if q == p {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

// RemoveAt drops the i-th selected cell in insertion order.
func (s *Selection) RemoveAt(i int) error {
	if i < 0 || i >= len(s.order) {
		return fmt.Errorf("remove selection %d of %d: %w", i, len(s.order), domain.ErrOutOfRange)
	}
	s.remove(s.order[i])
	return nil
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.order = nil
	clear(s.members)
}

// Len returns the number of selected cells.
func (s *Selection) Len() int { return len(s.order) }

// Positions returns the selected cells in insertion order.
func (s *Selection) Positions() []domain.GridPosition {
	out := make([]domain.GridPosition, len(s.order))
	copy(out, s.order)
	return out
}
