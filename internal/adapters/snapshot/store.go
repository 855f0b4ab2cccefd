// Package snapshot serves gardens and crops from a YAML snapshot held in
// memory. Created gardens and crops live only as long as the Store.
package snapshot

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/credao/gardengrid/internal/core/domain"
)

// File is the on-disk snapshot layout.
type File struct {
	Gardens []domain.Garden `yaml:"gardens"`
	Crops   []domain.Crop   `yaml:"crops"`
}

// Store implements ports.Backend over a decoded snapshot.
type Store struct {
	mu           sync.RWMutex
	gardens      []domain.Garden
	crops        []domain.Crop
	nextGardenID uint64
	nextCropID   uint64
}

// Load reads a snapshot file.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a snapshot from r. A missing grid_size is filled in from
// width×height; every garden must then pass domain validation.
func Decode(r io.Reader) (*Store, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return New(file)
}

// New builds a store from an already decoded snapshot.
func New(file File) (*Store, error) {
	s := &Store{}
	gardenIDs := make(map[uint64]bool, len(file.Gardens))
	for _, g := range file.Gardens {
		if g.GridSize == 0 {
			g.GridSize = uint64(g.Width) * uint64(g.Height)
		}
		if g.Kind == "" {
			g.Kind = domain.GardenKindGrid
		}
		if err := g.Validate(); err != nil {
			return nil, err
		}
		if gardenIDs[g.ID] {
			return nil, fmt.Errorf("garden %d: %w", g.ID, domain.ErrDuplicateID)
		}
		gardenIDs[g.ID] = true
		s.gardens = append(s.gardens, g)
		s.nextGardenID = max(s.nextGardenID, g.ID)
	}

	// Crops without an id get the next free one after the explicit ids.
	cropIDs := make(map[uint64]bool, len(file.Crops))
	for _, c := range file.Crops {
		if c.ID == 0 {
			continue
		}
		if cropIDs[c.ID] {
			return nil, fmt.Errorf("crop %d: %w", c.ID, domain.ErrDuplicateID)
		}
		cropIDs[c.ID] = true
		s.nextCropID = max(s.nextCropID, c.ID)
	}
	for _, c := range file.Crops {
		if c.ID == 0 {
			s.nextCropID++
			c.ID = s.nextCropID
		}
		s.crops = append(s.crops, c)
	}
	return s, nil
}

// GetGarden returns the garden with the given ID.
func (s *Store) GetGarden(ctx context.Context, id uint64) (*domain.Garden, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.gardens {
		if g.ID == id {
			g.Boundary = append([]domain.GeoCoordinate(nil), g.Boundary...)
			return &g, nil
		}
	}
	return nil, fmt.Errorf("garden %d: %w", id, domain.ErrNotFound)
}

// ListGardens returns every garden.
func (s *Store) ListGardens(ctx context.Context) ([]domain.Garden, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Garden(nil), s.gardens...), nil
}

// ListCrops returns the crops planted in gardenID.
func (s *Store) ListCrops(ctx context.Context, gardenID uint64) ([]domain.Crop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Crop
	for _, c := range s.crops {
		if c.GardenID == gardenID {
			out = append(out, c)
		}
	}
	return out, nil
}

// CreateGarden adds a garden and returns its ID.
func (s *Store) CreateGarden(ctx context.Context, req domain.CreateGardenRequest) (uint64, error) {
	g := domain.Garden{
		Name:     req.Name,
		Boundary: append([]domain.GeoCoordinate(nil), req.Boundary...),
		Kind:     req.Kind,
		Width:    req.Width,
		Height:   req.Height,
		GridSize: req.GridSize,
	}
	if err := g.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextGardenID++
	g.ID = s.nextGardenID
	s.gardens = append(s.gardens, g)
	return g.ID, nil
}

// AddCrop adds a crop to an existing garden and returns its ID.
func (s *Store) AddCrop(ctx context.Context, req domain.AddCropRequest) (uint64, error) {
	c := domain.Crop{
		GardenID:      req.GardenID,
		Name:          req.Name,
		Species:       req.Species,
		Stage:         req.Stage,
		PlantingDate:  time.Unix(0, req.PlantingDate).UTC(),
		HarvestDate:   time.Unix(0, req.HarvestDate).UTC(),
		GridPositions: append([]domain.GridPosition(nil), req.GridPositions...),
	}
	if req.SensorLink != nil {
		c.SensorLink = *req.SensorLink
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	var garden *domain.Garden
	for i := range s.gardens {
		if s.gardens[i].ID == req.GardenID {
			garden = &s.gardens[i]
			break
		}
	}
	if garden == nil {
		return 0, fmt.Errorf("garden %d: %w", req.GardenID, domain.ErrNotFound)
	}
	for _, p := range c.GridPositions {
		if !garden.Contains(p) {
			return 0, fmt.Errorf("position %s: %w", p, domain.ErrOutOfRange)
		}
	}

	s.nextCropID++
	c.ID = s.nextCropID
	s.crops = append(s.crops, c)
	return c.ID, nil
}

// Snapshot returns the current contents.
func (s *Store) Snapshot() File {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return File{
		Gardens: append([]domain.Garden(nil), s.gardens...),
		Crops:   append([]domain.Crop(nil), s.crops...),
	}
}

// Encode writes the current contents as YAML.
func (s *Store) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s.Snapshot()); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return enc.Close()
}
