package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/credao/gardengrid/internal/core/domain"
	"github.com/credao/gardengrid/internal/core/usecases"
)

func TestGridService_View(t *testing.T) {
	g := testGarden(50, 3)
	backend := &mockBackend{
		getGardenFn: func(ctx context.Context, id uint64) (*domain.Garden, error) {
			if id != g.ID {
				return nil, domain.ErrNotFound
			}
			return &g, nil
		},
		listCropsFn: func(ctx context.Context, gardenID uint64) ([]domain.Crop, error) {
			return []domain.Crop{
				{ID: 1, GardenID: 7, Name: "Pumpkin", Stage: "Growing", GridPositions: []domain.GridPosition{pos(0, 0), pos(1, 0)}},
				{ID: 2, GardenID: 8, Name: "Elsewhere", Stage: "Growing", GridPositions: []domain.GridPosition{pos(2, 0)}},
			}, nil
		},
	}
	svc := usecases.NewGridService(backend, 0, 0)

	v, err := svc.View(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Window.Width != 20 || v.Window.Height != 3 {
		t.Errorf("expected 20×3 window, got %d×%d", v.Window.Width, v.Window.Height)
	}
	if v.Indicator != "showing 20×3 of 50×3" {
		t.Errorf("unexpected indicator %q", v.Indicator)
	}
	if v.Rows[0][0].Label != "PU" {
		t.Errorf("expected anchor label PU, got %q", v.Rows[0][0].Label)
	}
	if !v.Rows[0][2].Empty() {
		t.Error("crops of other gardens must not be indexed")
	}

	session, err := svc.OpenSession(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Window().Width != 15 {
		t.Errorf("expected selector window of 15, got %d", session.Window().Width)
	}
}

func TestGridService_NotFound(t *testing.T) {
	svc := usecases.NewGridService(&mockBackend{}, 20, 15)
	if _, err := svc.View(context.Background(), 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGridService_Refresh(t *testing.T) {
	g := testGarden(4, 4)
	crops := []domain.Crop{}
	backend := &mockBackend{
		getGardenFn: func(ctx context.Context, id uint64) (*domain.Garden, error) { return &g, nil },
		listCropsFn: func(ctx context.Context, gardenID uint64) ([]domain.Crop, error) { return crops, nil },
	}
	svc := usecases.NewGridService(backend, 20, 15)
	session, err := svc.OpenSession(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	crops = append(crops, domain.Crop{ID: 3, GardenID: 7, Name: "Kale", GridPositions: []domain.GridPosition{pos(3, 3)}})
	if err := svc.Refresh(context.Background(), session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !session.Index().Occupied(pos(3, 3)) {
		t.Error("refresh did not rebuild the index")
	}
}
