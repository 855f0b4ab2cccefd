// Package render draws garden grids as text and garden boundaries as PNG.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/credao/gardengrid/internal/core/domain"
	"github.com/credao/gardengrid/internal/core/grid"
)

// Text grid symbols.
const (
	EmptyMark   = "."
	PreviewMark = "*"
	PartMark    = ":"
)

// WriteGrid prints v as a table, one row per line, followed by the window
// indicator, the selection summary and a legend of the crops on screen.
func WriteGrid(w io.Writer, title string, v grid.View) error {
	bw := bufio.NewWriter(w)
	if title != "" {
		fmt.Fprintln(bw, title)
	}

	fmt.Fprint(bw, "    ")
	for x := uint32(0); x < v.Window.Width; x++ {
		fmt.Fprintf(bw, "%-3d", x)
	}
	fmt.Fprintln(bw)

	type entry struct {
		label string
		text  string
	}
	var legend []entry
	seen := make(map[*domain.Crop]bool)

	for y, row := range v.Rows {
		fmt.Fprintf(bw, "%-4d", y)
		for _, cell := range row {
			fmt.Fprintf(bw, "%-3s", cellText(cell))
			if cell.Crop != nil && !seen[cell.Crop] {
				seen[cell.Crop] = true
				legend = append(legend, entry{
					label: cellLabel(cell),
					text:  fmt.Sprintf("%s [%s]", cell.Tooltip, cell.Bucket),
				})
			}
		}
		fmt.Fprintln(bw)
	}

	if v.Indicator != "" {
		fmt.Fprintf(bw, "(%s)\n", v.Indicator)
	}
	if s := v.SelectionSummary(); s != "" {
		fmt.Fprintln(bw, s)
	}
	for _, e := range legend {
		fmt.Fprintf(bw, "  %-3s%s\n", e.label, e.text)
	}
	return bw.Flush()
}

func cellText(c grid.CellView) string {
	switch {
	case c.Label != "":
		return c.Label
	case c.MultiCell:
		return PartMark
	case c.Preview:
		return PreviewMark
	default:
		return EmptyMark
	}
}

// cellLabel returns the label the crop is drawn with, whichever cell of it
// this is.
func cellLabel(c grid.CellView) string {
	if c.Label != "" {
		return c.Label
	}
	name := []rune(c.Crop.Name)
	n := 1
	if c.MultiCell {
		n = 2
	}
	if len(name) > n {
		name = name[:n]
	}
	if c.MultiCell {
		return strings.ToUpper(string(name))
	}
	return string(name)
}
