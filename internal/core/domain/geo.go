package domain

// GeoCoordinate represents a geographic coordinate (WGS 84).
type GeoCoordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Bounds represents a geographic bounding box.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// LatRange returns the latitude extent of the box (may be zero).
func (b Bounds) LatRange() float64 { return b.MaxLat - b.MinLat }

// LngRange returns the longitude extent of the box (may be zero).
func (b Bounds) LngRange() float64 { return b.MaxLng - b.MinLng }

// Viewport describes a drawing surface in pixels. Padding insets the usable
// area on every side.
type Viewport struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Padding float64 `json:"padding"`
}

// Pixel is a position on a drawing surface, origin top-left.
type Pixel struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
