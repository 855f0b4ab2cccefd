// Package grid implements the cell-level model of a garden:
//
//   - Index maps each cell to the crop occupying it (flat y*width+x array)
//   - Rect / ComputeFootprint give the bounding box of a multi-cell crop
//   - Window clamps a large grid to the part that is actually drawn
//   - DragState is the click-and-drag selection state machine
//   - Selection is the caller-held set of selected cells
//   - BuildView combines all of the above into per-cell render data
//
// Everything here is pure and synchronous. Rebuilding an Index is cheap and
// idempotent; callers decide when to cache it.
package grid
