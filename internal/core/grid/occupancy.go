package grid

import "github.com/credao/gardengrid/internal/core/domain"

const emptyCell = -1

// Occupancy answers which cells are inside the grid and which are taken.
type Occupancy interface {
	InBounds(p domain.GridPosition) bool
	Occupied(p domain.GridPosition) bool
}

// Index maps every cell of a width×height grid to the crop occupying it.
// It is built from scratch and never patched.
type Index struct {
	width, height uint32
	crops         []domain.Crop
	cells         []int
	skipped       int
	overwritten   int
}

// Build indexes crops on a width×height grid in O(width×height + total
// positions). When two crops claim a cell the later one wins. Positions
// outside the grid are skipped and counted.
func Build(width, height uint32, crops []domain.Crop) *Index {
	idx := &Index{
		width:  width,
		height: height,
		crops:  make([]domain.Crop, len(crops)),
		cells:  make([]int, int(width)*int(height)),
	}
	for i, c := range crops {
		idx.crops[i] = cloneCrop(c)
	}
	for i := range idx.cells {
		idx.cells[i] = emptyCell
	}

	for ci, crop := range idx.crops {
		for _, p := range crop.GridPositions {
			if !idx.InBounds(p) {
				idx.skipped++
				continue
			}
			k := idx.key(p)
			if idx.cells[k] != emptyCell && idx.cells[k] != ci {
				idx.overwritten++
			}
			idx.cells[k] = ci
		}
	}
	return idx
}

// BuildForGarden indexes the crops belonging to g.
func BuildForGarden(g domain.Garden, crops []domain.Crop) *Index {
	return Build(g.Width, g.Height, CropsInGarden(g.ID, crops))
}

// CropsInGarden filters crops down to those planted in gardenID.
func CropsInGarden(gardenID uint64, crops []domain.Crop) []domain.Crop {
	out := make([]domain.Crop, 0, len(crops))
	for _, c := range crops {
		if c.GardenID == gardenID {
			out = append(out, c)
		}
	}
	return out
}

func (idx *Index) key(p domain.GridPosition) int {
	return int(p.Y)*int(idx.width) + int(p.X)
}

// Width returns the grid width.
func (idx *Index) Width() uint32 { return idx.width }

// Height returns the grid height.
func (idx *Index) Height() uint32 { return idx.height }

// InBounds reports whether p lies in [0,width)×[0,height).
func (idx *Index) InBounds(p domain.GridPosition) bool {
	return p.X < idx.width && p.Y < idx.height
}

// At returns a copy of the crop occupying p. Out-of-range positions are
// never occupied.
func (idx *Index) At(p domain.GridPosition) (*domain.Crop, bool) {
	slot, ok := idx.slot(p)
	if !ok {
		return nil, false
	}
	c := cloneCrop(idx.crops[slot])
	return &c, true
}

// slot returns the position in idx.crops of the crop occupying p. Crop IDs
// are not trusted to be unique, so everything per crop is keyed by slot.
func (idx *Index) slot(p domain.GridPosition) (int, bool) {
	if !idx.InBounds(p) {
		return emptyCell, false
	}
	ci := idx.cells[idx.key(p)]
	return ci, ci != emptyCell
}

// Occupied reports whether a crop occupies p.
func (idx *Index) Occupied(p domain.GridPosition) bool {
	_, ok := idx.slot(p)
	return ok
}

// Crops returns copies of the indexed crops in input order.
func (idx *Index) Crops() []domain.Crop {
	out := make([]domain.Crop, len(idx.crops))
	for i, c := range idx.crops {
		out[i] = cloneCrop(c)
	}
	return out
}

func cloneCrop(c domain.Crop) domain.Crop {
	c.GridPositions = append([]domain.GridPosition(nil), c.GridPositions...)
	return c
}

// OccupiedCells counts cells with a crop.
func (idx *Index) OccupiedCells() int {
	n := 0
	for _, ci := range idx.cells {
		if ci != emptyCell {
			n++
		}
	}
	return n
}

// Skipped counts positions ignored because they lay outside the grid.
func (idx *Index) Skipped() int { return idx.skipped }

// Overwritten counts cells claimed by more than one crop.
func (idx *Index) Overwritten() int { return idx.overwritten }
