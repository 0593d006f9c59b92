// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-sail/pkg/physics"
	"github.com/opd-ai/go-sail/pkg/validation"
)

// Renderer names accepted in RenderConfig.Type
const (
	RendererTerminal = "terminal"
	RendererEngo     = "engo"
	RendererNone     = "none"
)

// GameConfig contains configuration for a sailing game
type GameConfig struct {
	Wind     physics.Direction `json:"wind" yaml:"wind"`
	TickRate int               `json:"tickRate" yaml:"tickRate"`
	World    WorldConfig       `json:"world" yaml:"world"`
	Vessels  []VesselConfig    `json:"vessels" yaml:"vessels"`
	Render   RenderConfig      `json:"render" yaml:"render"`
}

// WorldConfig bounds the sailable area
type WorldConfig struct {
	// Radius is the half-width of the square world centred on the origin
	Radius int8 `json:"radius" yaml:"radius"`
}

// VesselConfig describes a vessel spawned at game start
type VesselConfig struct {
	Name     string            `json:"name" yaml:"name"`
	Heading  physics.Direction `json:"heading" yaml:"heading"`
	X        int8              `json:"x" yaml:"x"`
	Y        int8              `json:"y" yaml:"y"`
	Maneuver physics.Maneuver  `json:"maneuver" yaml:"maneuver"`
}

// UnmarshalJSON decodes a vessel entry; an omitted maneuver means a full budget
func (v *VesselConfig) UnmarshalJSON(data []byte) error {
	type plain VesselConfig
	p := plain{Maneuver: physics.MaxManeuver}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*v = VesselConfig(p)
	return nil
}

// UnmarshalYAML decodes a vessel entry; an omitted maneuver means a full budget
func (v *VesselConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain VesselConfig
	p := plain{Maneuver: physics.MaxManeuver}
	if err := node.Decode(&p); err != nil {
		return err
	}
	*v = VesselConfig(p)
	return nil
}

// Position returns the vessel's starting tile
func (v VesselConfig) Position() physics.Vector {
	return physics.Vector{X: v.X, Y: v.Y}
}

// RenderConfig contains display configuration
type RenderConfig struct {
	Type       string `json:"type" yaml:"type"`
	Title      string `json:"title" yaml:"title"`
	Width      int    `json:"width" yaml:"width"`
	Height     int    `json:"height" yaml:"height"`
	TileSize   int    `json:"tileSize" yaml:"tileSize"`
	Fullscreen bool   `json:"fullscreen" yaml:"fullscreen"`
	FontPath   string `json:"fontPath,omitempty" yaml:"fontPath,omitempty"`
	// ViewRadius is how many tiles the terminal renderer shows around the vessel
	ViewRadius int `json:"viewRadius" yaml:"viewRadius"`
}

type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatFor(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// LoadConfig loads a configuration from a JSON or YAML file, chosen by
// extension. Fields missing from the file keep their default values.
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	switch formatFor(path) {
	case formatYAML:
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a JSON or YAML file, chosen by extension
func SaveConfig(config *GameConfig, path string) error {
	var (
		data []byte
		err  error
	)
	switch formatFor(path) {
	case formatYAML:
		data, err = yaml.Marshal(config)
	default:
		data, err = json.MarshalIndent(config, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default game configuration: one vessel at the
// origin running before an easterly wind
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Wind:     physics.East,
		TickRate: 10,
		World: WorldConfig{
			Radius: 100,
		},
		Vessels: []VesselConfig{
			{
				Name:     "Player",
				Heading:  physics.East,
				Maneuver: physics.MaxManeuver,
			},
		},
		Render: RenderConfig{
			Type:       RendererTerminal,
			Title:      "go-sail",
			Width:      800,
			Height:     600,
			TileSize:   32,
			ViewRadius: 5,
		},
	}
}

// Validate checks the configuration and returns the first problem found
func (c *GameConfig) Validate() error {
	if !c.Wind.Valid() {
		return &ValidationError{Field: "Wind", Value: c.Wind, Message: "must be one of the eight compass directions"}
	}
	if c.TickRate < 1 || c.TickRate > maxTickRate {
		return &ValidationError{Field: "TickRate", Value: c.TickRate, Message: fmt.Sprintf("must be between 1 and %d", maxTickRate)}
	}
	if c.World.Radius < 1 {
		return &ValidationError{Field: "World.Radius", Value: c.World.Radius, Message: "must be positive"}
	}

	bounds := physics.NewRect(c.World.Radius)
	seen := make(map[string]bool, len(c.Vessels))
	for i, v := range c.Vessels {
		field := fmt.Sprintf("Vessels[%d]", i)
		if _, err := validation.ValidateVesselName(v.Name); err != nil {
			return &ValidationError{Field: field + ".Name", Value: v.Name, Message: err.Error()}
		}
		if seen[v.Name] {
			return &ValidationError{Field: field + ".Name", Value: v.Name, Message: "duplicate vessel name"}
		}
		seen[v.Name] = true
		if !v.Heading.Valid() {
			return &ValidationError{Field: field + ".Heading", Value: v.Heading, Message: "must be one of the eight compass directions"}
		}
		if v.Maneuver > physics.MaxManeuver {
			return &ValidationError{Field: field + ".Maneuver", Value: v.Maneuver, Message: fmt.Sprintf("cannot exceed %d", physics.MaxManeuver)}
		}
		if !bounds.Contains(v.Position()) {
			return &ValidationError{Field: field + ".Position", Value: v.Position(), Message: "must lie inside the world"}
		}
	}

	return c.Render.validate()
}

func (r *RenderConfig) validate() error {
	switch r.Type {
	case RendererTerminal, RendererEngo, RendererNone:
	default:
		return &ValidationError{Field: "Render.Type", Value: r.Type, Message: "must be terminal, engo or none"}
	}
	if r.Type == RendererEngo && (r.Width <= 0 || r.Height <= 0) {
		return &ValidationError{Field: "Render.Size", Value: fmt.Sprintf("%dx%d", r.Width, r.Height), Message: "window must have positive size"}
	}
	if r.TileSize <= 0 {
		return &ValidationError{Field: "Render.TileSize", Value: r.TileSize, Message: "must be positive"}
	}
	if r.ViewRadius < 1 || r.ViewRadius > maxViewRadius {
		return &ValidationError{Field: "Render.ViewRadius", Value: r.ViewRadius, Message: fmt.Sprintf("must be between 1 and %d", maxViewRadius)}
	}
	return nil
}
