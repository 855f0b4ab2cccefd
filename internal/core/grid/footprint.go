package grid

import "github.com/credao/gardengrid/internal/core/domain"

// ComputeFootprint returns the bounding rectangle of the crop's positions.
// Disjoint or L-shaped placements yield a rectangle that also covers cells
// the crop does not occupy. ok is false when the crop has no positions.
func ComputeFootprint(c domain.Crop) (r Rect, ok bool) {
	if len(c.GridPositions) == 0 {
		return Rect{}, false
	}
	first := c.GridPositions[0]
	r = Rect{MinX: first.X, MaxX: first.X, MinY: first.Y, MaxY: first.Y}
	for _, p := range c.GridPositions[1:] {
		r.MinX = min(r.MinX, p.X)
		r.MaxX = max(r.MaxX, p.X)
		r.MinY = min(r.MinY, p.Y)
		r.MaxY = max(r.MaxY, p.Y)
	}
	return r, true
}

// IsAnchor reports whether (x, y) is the top-left corner of the crop's
// footprint, where the crop's label is drawn.
func IsAnchor(c domain.Crop, x, y uint32) bool {
	r, ok := ComputeFootprint(c)
	return ok && r.MinX == x && r.MinY == y
}

// Footprints holds the footprint of every multi-cell crop, keyed by crop ID.
// Crops sharing an ID overwrite each other; BuildView does not rely on it.
type Footprints map[uint64]Rect

// ResolveFootprints computes footprints for the multi-cell crops in crops.
// Single-cell crops are left out.
func ResolveFootprints(crops []domain.Crop) Footprints {
	fps := make(Footprints)
	for _, c := range crops {
		if !c.IsMultiCell() {
			continue
		}
		if r, ok := ComputeFootprint(c); ok {
			fps[c.ID] = r
		}
	}
	return fps
}

// LabelPosition returns the cell that carries the crop's label: the footprint
// anchor when the crop occupies it, otherwise the crop's first cell in row
// order.
func LabelPosition(c domain.Crop) (domain.GridPosition, bool) {
	r, ok := ComputeFootprint(c)
	if !ok {
		return domain.GridPosition{}, false
	}
	anchor := r.Anchor()
	best := c.GridPositions[0]
	for _, p := range c.GridPositions {
		if p == anchor {
			return anchor, true
		}
		if p.Y < best.Y || (p.Y == best.Y && p.X < best.X) {
			best = p
		}
	}
	return best, true
}
