// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/opd-ai/go-sail/pkg/physics"
)

// Environment variables read by LoadConfigFromEnv
const (
	EnvWind          = "SAIL_WIND"
	EnvTickRate      = "SAIL_TICK_RATE"
	EnvWorldRadius   = "SAIL_WORLD_RADIUS"
	EnvRenderer      = "SAIL_RENDERER"
	EnvStartManeuver = "SAIL_START_MANEUVER"
	EnvFullscreen    = "SAIL_FULLSCREEN"
)

const (
	maxTickRate   = 120
	maxViewRadius = 40
)

// EnvironmentConfig holds settings that may be supplied through the
// environment
type EnvironmentConfig struct {
	Wind          physics.Direction
	TickRate      int
	WorldRadius   int
	Renderer      string
	StartManeuver int
	Fullscreen    bool
}

// ValidationError reports an invalid configuration value
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Message)
}

// LoadConfigFromEnv reads the environment on top of DefaultConfig values
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	return loadEnvironment(DefaultConfig())
}

func loadEnvironment(base *GameConfig) (*EnvironmentConfig, error) {
	wind := base.Wind
	if s := strings.TrimSpace(os.Getenv(EnvWind)); s != "" {
		d, err := physics.ParseDirection(s)
		if err != nil {
			return nil, &ValidationError{Field: "Wind", Value: s, Message: err.Error()}
		}
		wind = d
	}

	maneuver := int(physics.MaxManeuver)
	if len(base.Vessels) > 0 {
		maneuver = int(base.Vessels[0].Maneuver)
	}

	config := &EnvironmentConfig{
		Wind:          wind,
		TickRate:      getEnvAsIntOrDefault(EnvTickRate, base.TickRate),
		WorldRadius:   getEnvAsIntOrDefault(EnvWorldRadius, int(base.World.Radius)),
		Renderer:      strings.ToLower(getEnvOrDefault(EnvRenderer, base.Render.Type)),
		StartManeuver: getEnvAsIntOrDefault(EnvStartManeuver, maneuver),
		Fullscreen:    getEnvAsBoolOrDefault(EnvFullscreen, base.Render.Fullscreen),
	}

	if err := validateEnvironmentConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateEnvironmentConfig(config *EnvironmentConfig) error {
	if !config.Wind.Valid() {
		return &ValidationError{Field: "Wind", Value: config.Wind, Message: "must be one of the eight compass directions"}
	}
	if config.TickRate < 1 || config.TickRate > maxTickRate {
		return &ValidationError{Field: "TickRate", Value: config.TickRate, Message: fmt.Sprintf("must be between 1 and %d", maxTickRate)}
	}
	if config.WorldRadius < 1 || config.WorldRadius > 127 {
		return &ValidationError{Field: "WorldRadius", Value: config.WorldRadius, Message: "must be between 1 and 127"}
	}
	switch config.Renderer {
	case RendererTerminal, RendererEngo, RendererNone:
	default:
		return &ValidationError{Field: "Renderer", Value: config.Renderer, Message: "must be terminal, engo or none"}
	}
	if config.StartManeuver < 0 || config.StartManeuver > int(physics.MaxManeuver) {
		return &ValidationError{Field: "StartManeuver", Value: config.StartManeuver, Message: fmt.Sprintf("must be between 0 and %d", physics.MaxManeuver)}
	}
	return nil
}

// ApplyEnvironmentOverrides overwrites cfg with any values set in the
// environment. Unset variables leave cfg unchanged.
func ApplyEnvironmentOverrides(cfg *GameConfig) error {
	env, err := loadEnvironment(cfg)
	if err != nil {
		return fmt.Errorf("environment config: %w", err)
	}

	cfg.Wind = env.Wind
	cfg.TickRate = env.TickRate
	cfg.World.Radius = int8(env.WorldRadius)
	cfg.Render.Type = env.Renderer
	cfg.Render.Fullscreen = env.Fullscreen

	if _, ok := os.LookupEnv(EnvStartManeuver); ok {
		for i := range cfg.Vessels {
			cfg.Vessels[i].Maneuver = physics.Maneuver(env.StartManeuver)
		}
	}

	return cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}
