// Package scene loads navigation scenes from YAML and wires them into a
// ready-to-query thetastar.Finder.
//
// A scene names a ground plane, box obstacles, grid and search settings and
// an optional list of path queries. Files are overlaid on embedded defaults,
// so a scene only needs the keys it changes.
package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("scene: invalid config")

// Visibility modes.
const (
	ModeBoxes = "boxes"
	ModeGrid  = "grid"
)

// Config is one scene.
type Config struct {
	Ground     GroundConfig     `yaml:"ground"`
	Grid       GridConfig       `yaml:"grid"`
	Search     SearchConfig     `yaml:"search"`
	Visibility VisibilityConfig `yaml:"visibility"`
	Obstacles  []ObstacleConfig `yaml:"obstacles"`
	Queries    []QueryConfig    `yaml:"queries"`
}

// Vec3 is an [x, y, z] triple.
type Vec3 [3]float64

// Vec converts v to r3.Vec.
func (v Vec3) Vec() r3.Vec {
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}

// GroundConfig is the walkable plane.
type GroundConfig struct {
	Position Vec3    `yaml:"position"`
	SizeX    float64 `yaml:"size_x"`
	SizeZ    float64 `yaml:"size_z"`
}

// GridConfig controls rasterization.
type GridConfig struct {
	NodeDistance float64  `yaml:"node_distance"`
	Height       float64  `yaml:"height"`       // node height above the ground
	Connectivity int      `yaml:"connectivity"` // 8 or 4
	ObstacleTags []string `yaml:"obstacle_tags"`
}

// SearchConfig maps onto thetastar options.
type SearchConfig struct {
	SmoothPath        bool `yaml:"smooth_path"`
	SnapRadius        int  `yaml:"snap_radius"`
	ComponentPrecheck bool `yaml:"component_precheck"`
}

// VisibilityConfig selects the line-of-sight oracle.
type VisibilityConfig struct {
	Mode string `yaml:"mode"`
}

// ObstacleConfig is an axis-aligned box given by two opposite corners.
type ObstacleConfig struct {
	Name string `yaml:"name"`
	Tag  string `yaml:"tag"`
	Min  Vec3   `yaml:"min"`
	Max  Vec3   `yaml:"max"`
}

// QueryConfig is one path request.
type QueryConfig struct {
	Name string `yaml:"name"`
	From Vec3   `yaml:"from"`
	To   Vec3   `yaml:"to"`
}

// Load reads a scene file and overlays it on the embedded defaults.
// If path is empty, only the defaults are used.
func Load(path string) (*Config, error) {
	if path == "" {
		return Parse(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}

	return Parse(data)
}

// Parse overlays data on the embedded defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	// Unmarshal into same struct - only overwrites fields present in data
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports every problem at once, each wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, v ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, v...)))
	}

	if !positive(c.Ground.SizeX) || !positive(c.Ground.SizeZ) {
		bad("ground size must be positive, got %vx%v", c.Ground.SizeX, c.Ground.SizeZ)
	}
	if !finite(c.Ground.Position) {
		bad("ground.position must be finite, got %v", c.Ground.Position)
	}
	if !positive(c.Grid.NodeDistance) {
		bad("grid.node_distance must be positive, got %v", c.Grid.NodeDistance)
	}
	if math.IsNaN(c.Grid.Height) || math.IsInf(c.Grid.Height, 0) {
		bad("grid.height must be finite, got %v", c.Grid.Height)
	}
	if c.Grid.Connectivity != 8 && c.Grid.Connectivity != 4 {
		bad("grid.connectivity must be 8 or 4, got %d", c.Grid.Connectivity)
	}
	if c.Search.SnapRadius < 0 {
		bad("search.snap_radius cannot be negative, got %d", c.Search.SnapRadius)
	}
	if c.Visibility.Mode != ModeBoxes && c.Visibility.Mode != ModeGrid {
		bad("visibility.mode must be %q or %q, got %q", ModeBoxes, ModeGrid, c.Visibility.Mode)
	}
	for i, o := range c.Obstacles {
		if !finite(o.Min) || !finite(o.Max) {
			bad("obstacle %d (%s) has a non-finite corner", i, o.Name)
		}
	}
	for i, q := range c.Queries {
		if !finite(q.From) || !finite(q.To) {
			bad("query %d (%s) has a non-finite point", i, q.Name)
		}
	}

	return errors.Join(errs...)
}

// WriteYAML writes the scene to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling scene: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scene file: %w", err)
	}

	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func finite(v Vec3) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
