package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/credao/gardengrid/internal/core/boundary"
	"github.com/credao/gardengrid/internal/core/domain"
	"github.com/credao/gardengrid/internal/core/ports"
	"github.com/credao/gardengrid/internal/pkg/metrics"
)

// Draft defaults shown when the create-garden form opens.
const (
	DefaultDraftWidth   = 5
	DefaultDraftHeight  = 5
	DefaultDraftMapSize = 10
)

// GardenDraft is the state of the create-garden form. In grid mode Width and
// Height are used and the boundary is generated; in map mode the drawn
// Boundary is used and the grid is MapSize×MapSize.
type GardenDraft struct {
	Name     string
	Kind     domain.GardenKind
	Boundary *boundary.Boundary
	MapSize  uint32
	Width    uint32
	Height   uint32
}

// NewGardenDraft returns a draft with the form defaults.
func NewGardenDraft() *GardenDraft {
	d := &GardenDraft{}
	d.Reset()
	return d
}

// Reset restores the form defaults and discards the drawn boundary.
func (d *GardenDraft) Reset() {
	*d = GardenDraft{
		Kind:     domain.GardenKindGrid,
		Boundary: boundary.New(),
		MapSize:  DefaultDraftMapSize,
		Width:    DefaultDraftWidth,
		Height:   DefaultDraftHeight,
	}
}

// GardenService turns drafts into create-garden requests.
type GardenService struct {
	creator         ports.GardenCreator
	surface         boundary.Surface
	degreesPerMetre float64
}

// NewGardenService creates a new GardenService. surface is the drawing canvas
// for map mode; its centre also anchors generated grid-mode boundaries.
func NewGardenService(creator ports.GardenCreator, surface boundary.Surface, degreesPerMetre float64) *GardenService {
	return &GardenService{creator: creator, surface: surface, degreesPerMetre: degreesPerMetre}
}

// Surface returns the drawing canvas.
func (s *GardenService) Surface() boundary.Surface { return s.surface }

// Click appends the coordinate under pixel (x, y) to the draft's boundary.
func (s *GardenService) Click(d *GardenDraft, x, y float64) domain.GeoCoordinate {
	c := s.surface.CoordinateAt(x, y)
	d.Boundary.Append(c)
	slog.Debug("boundary point added", "lat", c.Lat, "lng", c.Lng, "points", d.Boundary.Len())
	return c
}

// BuildRequest validates the draft and produces the backend request.
func (s *GardenService) BuildRequest(d *GardenDraft) (domain.CreateGardenRequest, error) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return domain.CreateGardenRequest{}, fmt.Errorf("garden name: %w", domain.ErrEmptyName)
	}

	req := domain.CreateGardenRequest{Name: name, Kind: d.Kind}
	switch d.Kind {
	case domain.GardenKindMap:
		if !d.Boundary.IsClosable() {
			return domain.CreateGardenRequest{}, fmt.Errorf("draw at least %d points: %w",
				boundary.MinClosablePoints, domain.ErrBoundaryOpen)
		}
		if err := domain.ValidateDimensions(d.MapSize, d.MapSize); err != nil {
			return domain.CreateGardenRequest{}, fmt.Errorf("grid size: %w", err)
		}
		req.Boundary = d.Boundary.Points()
		req.Width, req.Height = d.MapSize, d.MapSize
	case domain.GardenKindGrid:
		if err := domain.ValidateDimensions(d.Width, d.Height); err != nil {
			return domain.CreateGardenRequest{}, err
		}
		req.Boundary = boundary.Rectangle(s.surface.Center, d.Width, d.Height, s.degreesPerMetre)
		req.Width, req.Height = d.Width, d.Height
	default:
		return domain.CreateGardenRequest{}, fmt.Errorf("unknown garden kind %q", d.Kind)
	}
	req.GridSize = uint64(req.Width) * uint64(req.Height)
	return req, nil
}

// Submit sends the draft to the backend and resets it on success. A failed
// submission leaves the draft as it was.
func (s *GardenService) Submit(ctx context.Context, d *GardenDraft) (uint64, error) {
	req, err := s.BuildRequest(d)
	if err != nil {
		metrics.GardensSubmitted.WithLabelValues(string(d.Kind), metrics.ResultRejected).Inc()
		slog.Warn("garden draft rejected", "kind", d.Kind, "error", err)
		return 0, err
	}

	id, err := s.creator.CreateGarden(ctx, req)
	if err != nil {
		metrics.GardensSubmitted.WithLabelValues(string(req.Kind), metrics.ResultError).Inc()
		return 0, fmt.Errorf("create garden: %w", err)
	}

	metrics.GardensSubmitted.WithLabelValues(string(req.Kind), metrics.ResultOK).Inc()
	slog.Info("garden created", "id", id, "name", req.Name, "kind", req.Kind,
		"width", req.Width, "height", req.Height, "boundary_points", len(req.Boundary))
	d.Reset()
	return id, nil
}
