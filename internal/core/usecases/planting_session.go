package usecases

import (
	"log/slog"

	"github.com/credao/gardengrid/internal/core/domain"
	"github.com/credao/gardengrid/internal/core/grid"
	"github.com/credao/gardengrid/internal/pkg/metrics"
)

// PlantingSession is one grower's interactive selection over a garden grid.
// It owns the occupancy index, the drag gesture and the selected cells, and
// must not be shared between goroutines.
type PlantingSession struct {
	garden    domain.Garden
	index     *grid.Index
	window    grid.Window
	selection *grid.Selection
	drag      grid.DragState
}

// NewPlantingSession opens a session over g showing at most maxDisplay cells
// per side.
func NewPlantingSession(g domain.Garden, crops []domain.Crop, maxDisplay uint32) (*PlantingSession, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	s := &PlantingSession{
		garden:    g,
		window:    grid.NewWindow(g.Width, g.Height, maxDisplay),
		selection: grid.NewSelection(g.Width, g.Height),
	}
	s.SetCrops(crops)
	return s, nil
}

// Garden returns the garden snapshot.
func (s *PlantingSession) Garden() domain.Garden { return s.garden }

// Index returns the current occupancy index.
func (s *PlantingSession) Index() *grid.Index { return s.index }

// Window returns the displayed part of the grid.
func (s *PlantingSession) Window() grid.Window { return s.window }

// Drag returns the gesture state.
func (s *PlantingSession) Drag() grid.DragState { return s.drag }

// SetCrops rebuilds the occupancy index from scratch. Selected cells that
// are now occupied are deselected.
func (s *PlantingSession) SetCrops(crops []domain.Crop) {
	s.index = grid.BuildForGarden(s.garden, crops)

	metrics.IndexRebuilds.Inc()
	metrics.IndexedCells.Observe(float64(s.index.OccupiedCells()))
	if n := s.index.Overwritten(); n > 0 {
		metrics.IndexConflicts.Add(float64(n))
		slog.Warn("cells claimed by more than one crop", "garden_id", s.garden.ID, "cells", n)
	}
	if n := s.index.Skipped(); n > 0 {
		metrics.IndexSkippedPositions.Add(float64(n))
		slog.Warn("crop positions outside garden", "garden_id", s.garden.ID, "positions", n)
	}

	for _, p := range s.selection.Positions() {
		if s.index.Occupied(p) {
			_, _ = s.selection.Toggle(p)
		}
	}
	slog.Debug("occupancy index rebuilt", "garden_id", s.garden.ID,
		"crops", len(s.index.Crops()), "occupied", s.index.OccupiedCells())
}

func (s *PlantingSession) visible(p domain.GridPosition) bool {
	return s.window.Contains(p) && s.garden.Contains(p)
}

// PointerDown starts a drag on p and reports whether it did. Occupied cells
// and cells outside the display window are ignored.
func (s *PlantingSession) PointerDown(p domain.GridPosition) bool {
	if !s.visible(p) {
		metrics.PointerIgnored.WithLabelValues("outside_window").Inc()
		slog.Warn("pointer down outside grid", "position", p.String())
		return false
	}
	next := grid.BeginDrag(s.drag, p, s.index)
	if next == s.drag {
		reason := "occupied"
		if s.drag.Phase == grid.Dragging {
			reason = "already_dragging"
		}
		metrics.PointerIgnored.WithLabelValues(reason).Inc()
		return false
	}
	s.drag = next
	slog.Debug("drag started", "anchor", p.String())
	return true
}

// PointerEnter moves the drag's free corner to p. Cells outside the window
// leave the last known cell in place.
func (s *PlantingSession) PointerEnter(p domain.GridPosition) {
	if s.drag.Phase != grid.Dragging || !s.visible(p) {
		return
	}
	s.drag = grid.UpdateDrag(s.drag, p, s.index)
}

// PointerUp commits the drag: every free cell of the rectangle is toggled in
// the selection. It returns the toggled cells.
func (s *PlantingSession) PointerUp() []domain.GridPosition {
	if s.drag.Phase != grid.Dragging {
		return nil
	}
	r, _ := s.drag.Rect()
	next, cells := grid.EndDrag(s.drag, s.index)
	s.drag = next

	added, removed, err := s.selection.ToggleAll(cells)
	if err != nil {
		slog.Error("drag selection rejected", "error", err)
		return nil
	}
	metrics.DragCommits.Inc()
	metrics.CellsToggled.WithLabelValues("add").Add(float64(added))
	metrics.CellsToggled.WithLabelValues("remove").Add(float64(removed))
	slog.Debug("drag committed", "min_x", r.MinX, "min_y", r.MinY, "max_x", r.MaxX, "max_y", r.MaxY,
		"added", added, "removed", removed, "selected", s.selection.Len())
	return cells
}

// PointerLeave is a release at the last known cell.
func (s *PlantingSession) PointerLeave() []domain.GridPosition {
	return s.PointerUp()
}

// Selected returns the selected cells in selection order.
func (s *PlantingSession) Selected() []domain.GridPosition {
	return s.selection.Positions()
}

// RemoveSelected drops the i-th selected cell.
func (s *PlantingSession) RemoveSelected(i int) error {
	return s.selection.RemoveAt(i)
}

// ClearSelection deselects everything.
func (s *PlantingSession) ClearSelection() {
	s.selection.Clear()
}

// View returns the render data for the displayed cells.
func (s *PlantingSession) View() grid.View {
	return grid.BuildView(s.index, s.selection, s.drag, s.window)
}
