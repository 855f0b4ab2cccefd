package domain

// CreateGardenRequest is handed to the backend when a garden draft is submitted.
type CreateGardenRequest struct {
	Name     string          `json:"name"`
	Boundary []GeoCoordinate `json:"boundary"`
	GridSize uint64          `json:"grid_size"`
	Kind     GardenKind      `json:"kind"`
	Width    uint32          `json:"width"`
	Height   uint32          `json:"height"`
}

// AddCropRequest is handed to the backend when a selection is planted.
// Dates are nanoseconds since the Unix epoch.
type AddCropRequest struct {
	GardenID      uint64         `json:"garden_id"`
	Name          string         `json:"name"`
	Species       string         `json:"species"`
	Stage         string         `json:"stage"`
	PlantingDate  int64          `json:"planting_date"`
	HarvestDate   int64          `json:"harvest_date"`
	GridPositions []GridPosition `json:"grid_positions"`
	SensorLink    *string        `json:"sensor_link,omitempty"`
}
