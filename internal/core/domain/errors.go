package domain

import "errors"

var (
	// ErrOutOfRange is returned when a grid position lies outside its garden.
	ErrOutOfRange = errors.New("grid position out of range")

	// ErrBoundaryOpen is returned when fewer than three points are drawn.
	ErrBoundaryOpen = errors.New("boundary needs at least 3 points")

	// ErrInvalidDimensions is returned for a width or height outside 1..100,
	// or a grid size that is not width×height.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
)

// Planting and garden form errors.
var (
	ErrEmptyName         = errors.New("name must not be empty")
	ErrNoPositions       = errors.New("at least one grid position is required")
	ErrDuplicatePosition = errors.New("duplicate grid position")
	ErrOccupied          = errors.New("grid position already occupied")
	ErrInvalidStage      = errors.New("unknown growth stage")
	ErrInvalidDates      = errors.New("planting and harvest dates are required")
)

// Lookup errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicateID = errors.New("duplicate id")
)
