package ports

import (
	"context"

	"github.com/credao/gardengrid/internal/core/domain"
)

// GardenCreator accepts submitted garden drafts and returns the new garden ID.
type GardenCreator interface {
	CreateGarden(ctx context.Context, req domain.CreateGardenRequest) (uint64, error)
}

// CropPlanter accepts planting requests and returns the new crop ID.
type CropPlanter interface {
	AddCrop(ctx context.Context, req domain.AddCropRequest) (uint64, error)
}

// Backend is the full collaborator that owns persistence and business rules.
type Backend interface {
	GardenReader
	GardenCreator
	CropPlanter
}
