package grid

import (
	"fmt"
	"strings"

	"github.com/credao/gardengrid/internal/core/domain"
)

// StageBucket groups free-form growth stages into the four shades the grid
// legend shows.
type StageBucket string

const (
	BucketPlanted   StageBucket = "planted"
	BucketGrowing   StageBucket = "growing"
	BucketFlowering StageBucket = "flowering"
	BucketReady     StageBucket = "ready"
)

// StageBucketOf maps a stage name onto its legend bucket by keyword.
func StageBucketOf(stage string) StageBucket {
	s := strings.ToLower(stage)
	switch {
	case strings.Contains(s, "seed"), strings.Contains(s, "planted"):
		return BucketPlanted
	case strings.Contains(s, "growing"), strings.Contains(s, "vegetative"):
		return BucketGrowing
	case strings.Contains(s, "flowering"), strings.Contains(s, "fruiting"):
		return BucketFlowering
	case strings.Contains(s, "harvest"), strings.Contains(s, "ready"):
		return BucketReady
	default:
		return BucketGrowing
	}
}

// Border widths in pixels.
const (
	BorderSingle = 2
	BorderMulti  = 3
)

// CellView is everything needed to draw one cell.
type CellView struct {
	Position  domain.GridPosition
	Crop      *domain.Crop
	Selected  bool
	Preview   bool
	MultiCell bool
	Anchor    bool
	Label     string
	Tooltip   string
	Bucket    StageBucket
	Border    int
}

// Empty reports whether no crop occupies the cell.
func (c CellView) Empty() bool { return c.Crop == nil }

// View is the drawn part of a garden grid.
type View struct {
	Window        Window
	Rows          [][]CellView
	SelectedCount int
	Indicator     string
}

// SelectionSummary returns the "N cell(s) selected" line, or "" when nothing
// is selected.
func (v View) SelectionSummary() string {
	if v.SelectedCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d cell(s) selected", v.SelectedCount)
}

// BuildView assembles the cell views inside win. sel may be nil.
func BuildView(idx *Index, sel *Selection, drag DragState, win Window) View {
	// Footprints and label cells per index slot; multi is false for single-cell crops.
	type resolved struct {
		crop  domain.Crop
		rect  Rect
		multi bool
		label domain.GridPosition
	}
	slots := make([]resolved, len(idx.crops))
	for i, c := range idx.crops {
		slots[i].crop = cloneCrop(c)
		if !c.IsMultiCell() {
			continue
		}
		if r, ok := ComputeFootprint(c); ok {
			slots[i].rect, slots[i].multi = r, true
		}
		if p, ok := LabelPosition(c); ok {
			slots[i].label = p
		}
	}

	v := View{Window: win, Indicator: win.Indicator(), Rows: make([][]CellView, win.Height)}
	if sel != nil {
		v.SelectedCount = sel.Len()
	}
	for y := uint32(0); y < win.Height; y++ {
		row := make([]CellView, win.Width)
		for x := uint32(0); x < win.Width; x++ {
			p := domain.GridPosition{X: x, Y: y}
			cell := CellView{Position: p, Border: BorderSingle, Preview: drag.InPreview(p)}
			if sel != nil {
				cell.Selected = sel.Contains(p)
			}

			slot, ok := idx.slot(p)
			if !ok {
				cell.Tooltip = fmt.Sprintf("Empty cell (%d, %d)", x, y)
				if cell.Selected {
					cell.Label = "✓"
				}
				row[x] = cell
				continue
			}

			res := &slots[slot]
			crop := &res.crop
			cell.Crop = crop
			cell.Bucket = StageBucketOf(crop.Stage)
			cell.Tooltip = fmt.Sprintf("%s (%s)", crop.Name, crop.Stage)
			if res.multi {
				cell.MultiCell = true
				cell.Border = BorderMulti
				cell.Anchor = res.rect.Anchor() == p
				cell.Tooltip += fmt.Sprintf(" - %d cells", len(crop.GridPositions))
				if res.label == p {
					cell.Label = strings.ToUpper(firstRunes(crop.Name, 2))
				}
			} else {
				cell.Label = firstRunes(crop.Name, 1)
			}
			row[x] = cell
		}
		v.Rows[y] = row
	}
	return v
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
