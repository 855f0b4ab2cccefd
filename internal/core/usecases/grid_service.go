package usecases

import (
	"context"
	"fmt"

	"github.com/credao/gardengrid/internal/core/domain"
	"github.com/credao/gardengrid/internal/core/grid"
	"github.com/credao/gardengrid/internal/core/ports"
)

// GridService loads garden snapshots from the backend and opens grid views
// and planting sessions on them.
type GridService struct {
	gardens            ports.GardenReader
	maxDisplay         uint32
	selectorMaxDisplay uint32
}

// NewGridService creates a new GridService. Zero display limits fall back to
// grid.DefaultMaxDisplay and grid.SelectorMaxDisplay.
func NewGridService(gardens ports.GardenReader, maxDisplay, selectorMaxDisplay uint32) *GridService {
	if maxDisplay == 0 {
		maxDisplay = grid.DefaultMaxDisplay
	}
	if selectorMaxDisplay == 0 {
		selectorMaxDisplay = grid.SelectorMaxDisplay
	}
	return &GridService{gardens: gardens, maxDisplay: maxDisplay, selectorMaxDisplay: selectorMaxDisplay}
}

// Gardens lists every garden.
func (s *GridService) Gardens(ctx context.Context) ([]domain.Garden, error) {
	return s.gardens.ListGardens(ctx)
}

func (s *GridService) load(ctx context.Context, gardenID uint64) (*domain.Garden, []domain.Crop, error) {
	g, err := s.gardens.GetGarden(ctx, gardenID)
	if err != nil {
		return nil, nil, fmt.Errorf("get garden %d: %w", gardenID, err)
	}
	crops, err := s.gardens.ListCrops(ctx, gardenID)
	if err != nil {
		return nil, nil, fmt.Errorf("list crops of garden %d: %w", gardenID, err)
	}
	return g, crops, nil
}

// View renders the garden's grid at the grid-view display limit.
func (s *GridService) View(ctx context.Context, gardenID uint64) (grid.View, error) {
	session, err := s.open(ctx, gardenID, s.maxDisplay)
	if err != nil {
		return grid.View{}, err
	}
	return session.View(), nil
}

// OpenSession starts a planting session at the selector display limit.
func (s *GridService) OpenSession(ctx context.Context, gardenID uint64) (*PlantingSession, error) {
	return s.open(ctx, gardenID, s.selectorMaxDisplay)
}

func (s *GridService) open(ctx context.Context, gardenID uint64, maxDisplay uint32) (*PlantingSession, error) {
	g, crops, err := s.load(ctx, gardenID)
	if err != nil {
		return nil, err
	}
	return NewPlantingSession(*g, crops, maxDisplay)
}

// Refresh reloads the crops of the session's garden and rebuilds its index.
func (s *GridService) Refresh(ctx context.Context, session *PlantingSession) error {
	crops, err := s.gardens.ListCrops(ctx, session.Garden().ID)
	if err != nil {
		return fmt.Errorf("list crops of garden %d: %w", session.Garden().ID, err)
	}
	session.SetCrops(crops)
	return nil
}
