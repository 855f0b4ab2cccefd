package domain

import (
	"fmt"
	"time"
)

// Grid dimensions accepted for a garden, in cells (one cell per metre).
const (
	MinGridDimension = 1
	MaxGridDimension = 100
)

// GardenKind tells how a garden's boundary was produced.
type GardenKind string

const (
	GardenKindMap  GardenKind = "mapBased"
	GardenKindGrid GardenKind = "gridBased"
)

// Garden is a named planting area with a fixed-size grid overlay.
type Garden struct {
	ID       uint64          `json:"id" yaml:"id"`
	Name     string          `json:"name" yaml:"name"`
	Boundary []GeoCoordinate `json:"boundary" yaml:"boundary,omitempty"`
	Kind     GardenKind      `json:"kind" yaml:"kind"`
	Width    uint32          `json:"width" yaml:"width"`
	Height   uint32          `json:"height" yaml:"height"`
	GridSize uint64          `json:"grid_size" yaml:"grid_size"`
}

// Validate checks the grid dimension invariants.
func (g Garden) Validate() error {
	if err := ValidateDimensions(g.Width, g.Height); err != nil {
		return fmt.Errorf("garden %d: %w", g.ID, err)
	}
	if g.GridSize != uint64(g.Width)*uint64(g.Height) {
		return fmt.Errorf("garden %d: grid size %d != %d×%d: %w",
			g.ID, g.GridSize, g.Width, g.Height, ErrInvalidDimensions)
	}
	return nil
}

// Contains reports whether p lies inside the garden's width×height grid.
func (g Garden) Contains(p GridPosition) bool {
	return p.X < g.Width && p.Y < g.Height
}

// ValidateDimensions checks that width and height are both in
// [MinGridDimension, MaxGridDimension].
func ValidateDimensions(width, height uint32) error {
	if width < MinGridDimension || width > MaxGridDimension {
		return fmt.Errorf("width %d outside %d..%d: %w", width, MinGridDimension, MaxGridDimension, ErrInvalidDimensions)
	}
	if height < MinGridDimension || height > MaxGridDimension {
		return fmt.Errorf("height %d outside %d..%d: %w", height, MinGridDimension, MaxGridDimension, ErrInvalidDimensions)
	}
	return nil
}

// GridPosition is one cell of a garden grid. It is only meaningful together
// with the garden it belongs to.
type GridPosition struct {
	X uint32 `json:"x" yaml:"x"`
	Y uint32 `json:"y" yaml:"y"`
}

func (p GridPosition) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Crop is a planting occupying one or more cells of a garden.
type Crop struct {
	ID            uint64         `json:"id" yaml:"id"`
	GardenID      uint64         `json:"garden_id" yaml:"garden_id"`
	Name          string         `json:"name" yaml:"name"`
	Species       string         `json:"species" yaml:"species"`
	Stage         string         `json:"stage" yaml:"stage"`
	PlantingDate  time.Time      `json:"planting_date" yaml:"planting_date"`
	HarvestDate   time.Time      `json:"harvest_date" yaml:"harvest_date"`
	GridPositions []GridPosition `json:"grid_positions" yaml:"grid_positions"`
	SensorLink    string         `json:"sensor_link,omitempty" yaml:"sensor_link,omitempty"`
}

// IsMultiCell reports whether the crop occupies more than one cell.
func (c Crop) IsMultiCell() bool {
	return len(c.GridPositions) > 1
}

// Growth stages offered when planting.
const (
	StagePlanted     = "Planted"
	StageGerminating = "Germinating"
	StageGrowing     = "Growing"
	StageVegetative  = "Vegetative"
	StageFlowering   = "Flowering"
	StageFruiting    = "Fruiting"
	StageReady       = "Ready to Harvest"
)

// Stages lists the growth stages in lifecycle order.
var Stages = []string{
	StagePlanted,
	StageGerminating,
	StageGrowing,
	StageVegetative,
	StageFlowering,
	StageFruiting,
	StageReady,
}

// IsKnownStage reports whether stage is one of Stages.
func IsKnownStage(stage string) bool {
	for _, s := range Stages {
		if s == stage {
			return true
		}
	}
	return false
}
