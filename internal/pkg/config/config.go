package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/credao/gardengrid/internal/core/boundary"
	"github.com/credao/gardengrid/internal/core/domain"
)

// Config holds all application configuration.
type Config struct {
	Grid GridConfig `mapstructure:"grid"`
	Map  MapConfig  `mapstructure:"map"`
	Draw DrawConfig `mapstructure:"draw"`
	Log  LogConfig  `mapstructure:"log"`
}

type GridConfig struct {
	MaxDisplay         uint32 `mapstructure:"max_display"`
	SelectorMaxDisplay uint32 `mapstructure:"selector_max_display"`
}

type MapConfig struct {
	Width        int     `mapstructure:"width"`
	Height       int     `mapstructure:"height"`
	Padding      float64 `mapstructure:"padding"`
	RangeEpsilon float64 `mapstructure:"range_epsilon"`
	GuideLines   int     `mapstructure:"guide_lines"`
}

// DrawConfig describes the canvas used to draw a new garden's boundary.
type DrawConfig struct {
	CenterLat       float64 `mapstructure:"center_lat"`
	CenterLng       float64 `mapstructure:"center_lng"`
	Scale           float64 `mapstructure:"scale"`
	DegreesPerMetre float64 `mapstructure:"degrees_per_metre"`
}

// Surface returns the drawing canvas sized like the map.
func (c *Config) Surface() boundary.Surface {
	return boundary.Surface{
		Center: domain.GeoCoordinate{Lat: c.Draw.CenterLat, Lng: c.Draw.CenterLng},
		Scale:  c.Draw.Scale,
		Width:  float64(c.Map.Width),
		Height: float64(c.Map.Height),
	}
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load(service string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("grid.max_display", 20)
	v.SetDefault("grid.selector_max_display", 15)
	v.SetDefault("map.width", 600)
	v.SetDefault("map.height", 400)
	v.SetDefault("map.padding", 40)
	v.SetDefault("map.range_epsilon", 0.001)
	v.SetDefault("map.guide_lines", 10)
	v.SetDefault("draw.center_lat", 37.7749)
	v.SetDefault("draw.center_lng", -122.4194)
	v.SetDefault("draw.scale", 0.001)
	v.SetDefault("draw.degrees_per_metre", 0.00001)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Config file (optional)
	v.SetConfigName(service)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if err := v.ReadInConfig(); err != nil {
		if _, missing := err.(viper.ConfigFileNotFoundError); !missing {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: GARDENGRID_MAP_PADDING → map.padding
	v.SetEnvPrefix("GARDENGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that configuration values are sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Grid.MaxDisplay < domain.MinGridDimension {
		errs = append(errs, "grid.max_display must be positive")
	}
	if c.Grid.SelectorMaxDisplay < domain.MinGridDimension {
		errs = append(errs, "grid.selector_max_display must be positive")
	}
	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		errs = append(errs, fmt.Sprintf("map size must be positive, got %dx%d", c.Map.Width, c.Map.Height))
	}
	if c.Map.Padding < 0 || 2*c.Map.Padding >= float64(min(c.Map.Width, c.Map.Height)) {
		errs = append(errs, fmt.Sprintf("map.padding %.0f leaves no drawing area", c.Map.Padding))
	}
	if c.Map.RangeEpsilon <= 0 {
		errs = append(errs, "map.range_epsilon must be positive")
	}
	if c.Map.GuideLines < 0 {
		errs = append(errs, "map.guide_lines must not be negative")
	}
	if c.Draw.Scale <= 0 {
		errs = append(errs, "draw.scale must be positive")
	}
	if c.Draw.DegreesPerMetre <= 0 {
		errs = append(errs, "draw.degrees_per_metre must be positive")
	}
	if c.Draw.CenterLat < -90 || c.Draw.CenterLat > 90 {
		errs = append(errs, fmt.Sprintf("draw.center_lat must be -90..90, got %g", c.Draw.CenterLat))
	}
	if c.Draw.CenterLng < -180 || c.Draw.CenterLng > 180 {
		errs = append(errs, fmt.Sprintf("draw.center_lng must be -180..180, got %g", c.Draw.CenterLng))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
