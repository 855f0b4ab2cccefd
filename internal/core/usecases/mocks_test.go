package usecases_test

import (
	"context"

	"github.com/credao/gardengrid/internal/core/domain"
)

// --- Mock backend ---

type mockBackend struct {
	getGardenFn    func(ctx context.Context, id uint64) (*domain.Garden, error)
	listGardensFn  func(ctx context.Context) ([]domain.Garden, error)
	listCropsFn    func(ctx context.Context, gardenID uint64) ([]domain.Crop, error)
	createGardenFn func(ctx context.Context, req domain.CreateGardenRequest) (uint64, error)
	addCropFn      func(ctx context.Context, req domain.AddCropRequest) (uint64, error)
}

func (m *mockBackend) GetGarden(ctx context.Context, id uint64) (*domain.Garden, error) {
	if m.getGardenFn != nil {
		return m.getGardenFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockBackend) ListGardens(ctx context.Context) ([]domain.Garden, error) {
	if m.listGardensFn != nil {
		return m.listGardensFn(ctx)
	}
	return nil, nil
}

func (m *mockBackend) ListCrops(ctx context.Context, gardenID uint64) ([]domain.Crop, error) {
	if m.listCropsFn != nil {
		return m.listCropsFn(ctx, gardenID)
	}
	return nil, nil
}

func (m *mockBackend) CreateGarden(ctx context.Context, req domain.CreateGardenRequest) (uint64, error) {
	if m.createGardenFn != nil {
		return m.createGardenFn(ctx, req)
	}
	return 1, nil
}

func (m *mockBackend) AddCrop(ctx context.Context, req domain.AddCropRequest) (uint64, error) {
	if m.addCropFn != nil {
		return m.addCropFn(ctx, req)
	}
	return 1, nil
}

func pos(x, y uint32) domain.GridPosition { return domain.GridPosition{X: x, Y: y} }

func testGarden(w, h uint32) domain.Garden {
	return domain.Garden{ID: 7, Name: "Backyard", Kind: domain.GardenKindGrid, Width: w, Height: h, GridSize: uint64(w) * uint64(h)}
}
