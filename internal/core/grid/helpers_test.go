package grid_test

import "github.com/credao/gardengrid/internal/core/domain"

func pos(x, y uint32) domain.GridPosition { return domain.GridPosition{X: x, Y: y} }

func crop(id uint64, name, stage string, cells ...domain.GridPosition) domain.Crop {
	return domain.Crop{ID: id, GardenID: 1, Name: name, Species: name, Stage: stage, GridPositions: cells}
}
