// cmd/sail/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-sail/pkg/config"
	"github.com/opd-ai/go-sail/pkg/engine"
	"github.com/opd-ai/go-sail/pkg/entity"
	"github.com/opd-ai/go-sail/pkg/logging"
	"github.com/opd-ai/go-sail/pkg/render"
	engorender "github.com/opd-ai/go-sail/pkg/render/engo"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := flag.String("config", "config.json", "Path to configuration file (.json, .yaml or .yml)")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	renderer := flag.String("renderer", "", "Renderer type: 'terminal', 'engo' or 'none' (overrides config)")
	vesselName := flag.String("vessel", "", "Name of the vessel to steer (defaults to the first configured)")
	flag.Parse()

	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err, "config_path", *configPath)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file", "config_path", *configPath)
		return
	}

	gameConfig, err := loadConfig(*configPath, *renderer, logger)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err, "config_path", *configPath)
		os.Exit(1)
	}

	game := engine.NewGame(gameConfig)
	ids, err := game.SpawnAll()
	if err != nil {
		logger.Error(ctx, "Failed to spawn vessels", err)
		os.Exit(1)
	}
	playerID, err := pickVessel(game, ids, *vesselName)
	if err != nil {
		logger.Error(ctx, "Failed to pick a vessel", err, "vessel", *vesselName)
		os.Exit(1)
	}

	game.Start()
	defer game.Stop()

	switch gameConfig.Render.Type {
	case config.RendererEngo:
		startEngoRenderer(game, playerID, gameConfig.Render)
	case config.RendererNone:
		runSession(game, playerID, render.NewNullRendererWithLogger(game.Logger), logger)
	default:
		term := render.NewTerminalRenderer(os.Stdout, gameConfig.Render.ViewRadius)
		term.SetBounds(game.Bounds)
		term.SetFocus(playerID)
		term.SetClearScreen(true)
		runSession(game, playerID, term, logger)
	}
}

// loadConfig reads the config file, falling back to defaults when it does
// not exist, then applies SAIL_* variables and the -renderer flag
func loadConfig(path, renderer string, logger *logging.Logger) (*config.GameConfig, error) {
	ctx := context.Background()

	var gameConfig *config.GameConfig
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration", "config_path", path)
		gameConfig = config.DefaultConfig()
	} else {
		gameConfig, err = config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnvironmentOverrides(gameConfig); err != nil {
		return nil, logging.WrapError(err, "apply environment configuration")
	}

	if renderer != "" {
		gameConfig.Render.Type = renderer
		if err := gameConfig.Validate(); err != nil {
			return nil, err
		}
	}
	return gameConfig, nil
}

// pickVessel returns the spawned vessel with the given name, or the first
func pickVessel(game *engine.Game, ids []entity.ID, name string) (entity.ID, error) {
	if len(ids) == 0 {
		return 0, engine.ErrVesselNotFound
	}
	if name == "" {
		return ids[0], nil
	}
	state := game.GetGameState()
	for _, v := range state.Vessels {
		if v.Name == name {
			return v.ID, nil
		}
	}
	return 0, logging.WrapError(engine.ErrVesselNotFound, "pick vessel %q", name)
}

// runSession reads commands from stdin until EOF, "quit" or a signal
func runSession(game *engine.Game, playerID entity.ID, r entity.Renderer, logger *logging.Logger) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := newSession(game, playerID, r, os.Stdout)
	if err := s.run(ctx, os.Stdin); err != nil {
		logger.Error(ctx, "Session ended with error", err)
	}
}

// startEngoRenderer opens a window and steers the player's vessel from the
// keyboard. engo.Run blocks until the window closes.
func startEngoRenderer(game *engine.Game, playerID entity.ID, cfg config.RenderConfig) {
	scene := engorender.NewSailingScene(game, playerID, cfg)

	opts := engo.RunOptions{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      true,
	}

	engo.Run(opts, scene)
}
