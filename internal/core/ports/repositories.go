package ports

import (
	"context"

	"github.com/credao/gardengrid/internal/core/domain"
)

// GardenReader supplies read-only snapshots of gardens and their crops.
type GardenReader interface {
	GetGarden(ctx context.Context, id uint64) (*domain.Garden, error)
	ListGardens(ctx context.Context) ([]domain.Garden, error)
	ListCrops(ctx context.Context, gardenID uint64) ([]domain.Crop, error)
}
