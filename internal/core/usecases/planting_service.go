package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/credao/gardengrid/internal/core/domain"
	"github.com/credao/gardengrid/internal/core/grid"
	"github.com/credao/gardengrid/internal/core/ports"
	"github.com/credao/gardengrid/internal/pkg/metrics"
)

// CropForm is what the grower types next to the selected cells.
type CropForm struct {
	Name         string
	Species      string
	Stage        string
	PlantingDate time.Time
	HarvestDate  time.Time
	SensorLink   string
}

// BuildCropRequest validates form and positions against g and occ and
// produces the backend request. occ may be nil.
func BuildCropRequest(g domain.Garden, form CropForm, positions []domain.GridPosition, occ grid.Occupancy) (domain.AddCropRequest, error) {
	name := strings.TrimSpace(form.Name)
	species := strings.TrimSpace(form.Species)
	if name == "" {
		return domain.AddCropRequest{}, fmt.Errorf("crop name: %w", domain.ErrEmptyName)
	}
	if species == "" {
		return domain.AddCropRequest{}, fmt.Errorf("species: %w", domain.ErrEmptyName)
	}
	if !domain.IsKnownStage(form.Stage) {
		return domain.AddCropRequest{}, fmt.Errorf("stage %q: %w", form.Stage, domain.ErrInvalidStage)
	}
	if form.PlantingDate.IsZero() || form.HarvestDate.IsZero() {
		return domain.AddCropRequest{}, domain.ErrInvalidDates
	}
	if len(positions) == 0 {
		return domain.AddCropRequest{}, domain.ErrNoPositions
	}

	seen := make(map[domain.GridPosition]struct{}, len(positions))
	for _, p := range positions {
		if !g.Contains(p) {
			return domain.AddCropRequest{}, fmt.Errorf("position %s on %d×%d garden: %w", p, g.Width, g.Height, domain.ErrOutOfRange)
		}
		if _, dup := seen[p]; dup {
			return domain.AddCropRequest{}, fmt.Errorf("position %s: %w", p, domain.ErrDuplicatePosition)
		}
		seen[p] = struct{}{}
		if occ != nil && occ.Occupied(p) {
			return domain.AddCropRequest{}, fmt.Errorf("position %s: %w", p, domain.ErrOccupied)
		}
	}

	req := domain.AddCropRequest{
		GardenID:      g.ID,
		Name:          name,
		Species:       species,
		Stage:         form.Stage,
		PlantingDate:  form.PlantingDate.UnixNano(),
		HarvestDate:   form.HarvestDate.UnixNano(),
		GridPositions: append([]domain.GridPosition(nil), positions...),
	}
	if link := strings.TrimSpace(form.SensorLink); link != "" {
		req.SensorLink = &link
	}
	return req, nil
}

// PlantingService hands selections to the backend as new crops.
type PlantingService struct {
	planter ports.CropPlanter
}

// NewPlantingService creates a new PlantingService.
func NewPlantingService(planter ports.CropPlanter) *PlantingService {
	return &PlantingService{planter: planter}
}

// Plant submits the session's selection as a crop and clears the selection on
// success.
func (s *PlantingService) Plant(ctx context.Context, session *PlantingSession, form CropForm) (uint64, error) {
	req, err := BuildCropRequest(session.Garden(), form, session.Selected(), session.Index())
	if err != nil {
		metrics.CropsSubmitted.WithLabelValues(metrics.ResultRejected).Inc()
		slog.Warn("planting request rejected", "garden_id", session.Garden().ID, "error", err)
		return 0, err
	}

	id, err := s.planter.AddCrop(ctx, req)
	if err != nil {
		metrics.CropsSubmitted.WithLabelValues(metrics.ResultError).Inc()
		return 0, fmt.Errorf("add crop: %w", err)
	}

	metrics.CropsSubmitted.WithLabelValues(metrics.ResultOK).Inc()
	slog.Info("crop planted", "id", id, "garden_id", req.GardenID, "name", req.Name, "cells", len(req.GridPositions))
	session.ClearSelection()
	return id, nil
}
