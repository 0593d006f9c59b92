// pkg/render/engo/scene.go
package engo

import (
	"context"
	"fmt"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-sail/pkg/config"
	"github.com/opd-ai/go-sail/pkg/engine"
	"github.com/opd-ai/go-sail/pkg/entity"
	"github.com/opd-ai/go-sail/pkg/event"
	"github.com/opd-ai/go-sail/pkg/logging"
)

// refreshEvents are the engine events after which the window is redrawn
var refreshEvents = []event.Type{
	event.ManeuverAccepted,
	event.ManeuverRejected,
	event.VesselSpawned,
	event.VesselRemoved,
	event.WindChanged,
}

type subscription struct {
	eventType event.Type
	id        event.SubscriptionID
}

// SailingScene shows one vessel sailing, steered from the keyboard
type SailingScene struct {
	world *ecs.World

	game     *engine.Game
	vesselID entity.ID
	cfg      config.RenderConfig
	logger   *logging.Logger

	// Rendering components
	renderer *EngoRenderer
	camera   *CameraSystem
	input    *InputSystem
	hud      *HUDSystem

	subscriptions []subscription
}

// NewSailingScene creates a scene steering vesselID in game
func NewSailingScene(game *engine.Game, vesselID entity.ID, cfg config.RenderConfig) *SailingScene {
	return &SailingScene{
		world:    &ecs.World{},
		game:     game,
		vesselID: vesselID,
		cfg:      cfg,
		logger:   game.Logger.WithComponent("scene"),
		camera:   NewCameraSystem(),
		input:    NewInputSystem(game, vesselID),
		hud:      NewHUDSystem(nil),
	}
}

// Type returns the scene type (required by Engo)
func (scene *SailingScene) Type() string {
	return "SailingScene"
}

// Preload loads the HUD font (required by Engo)
func (scene *SailingScene) Preload() {
	if scene.cfg.FontPath == "" {
		return
	}
	if err := engo.Files.Load(scene.cfg.FontPath); err != nil {
		scene.logger.Warn(context.Background(), "HUD font not loaded", "path", scene.cfg.FontPath, "error", err.Error())
	}
}

// Setup is called when the scene starts (required by Engo)
func (scene *SailingScene) Setup(u engo.Updater) {
	scene.world = &ecs.World{}

	SetupInputBindings(scene.input.bindings)

	scene.renderer = NewEngoRenderer(scene.world, scene.cfg.TileSize)
	if err := scene.renderer.Initialize(); err != nil {
		panic(fmt.Sprintf("failed to initialize renderer: %v", err))
	}
	scene.renderer.SetBounds(scene.game.Bounds)

	if scene.cfg.FontPath != "" {
		font, err := LoadFont(scene.cfg.FontPath)
		if err != nil {
			scene.logger.Warn(context.Background(), "HUD font unusable", "path", scene.cfg.FontPath, "error", err.Error())
		} else {
			scene.hud.font = font
		}
	}
	scene.hud.Attach(scene.renderer.renderSystem)

	scene.world.AddSystem(scene.camera)
	scene.world.AddSystem(scene.input)
	scene.world.AddSystem(scene.hud)

	scene.subscribeToEvents()
	scene.refresh()
}

func (scene *SailingScene) subscribeToEvents() {
	for _, t := range refreshEvents {
		id := scene.game.EventBus.Subscribe(t, scene.handleEvent)
		scene.subscriptions = append(scene.subscriptions, subscription{eventType: t, id: id})
	}
}

// handleEvent runs on the engo goroutine, inside InputSystem.Update, since
// the engine publishes synchronously
func (scene *SailingScene) handleEvent(e event.Event) {
	if ve, ok := e.(*event.VesselEvent); ok && ve.VesselID == scene.vesselID {
		switch e.GetType() {
		case event.ManeuverRejected:
			scene.hud.SetMessage(fmt.Sprintf("Rejected: %v", ve.Err))
		case event.ManeuverAccepted:
			scene.hud.SetMessage("")
		case event.VesselRemoved:
			scene.hud.SetMessage("Vessel removed")
		}
	}
	scene.refresh()
}

// refresh redraws every boat and points the camera and HUD at the player
func (scene *SailingScene) refresh() {
	if scene.renderer != nil {
		scene.game.Render(scene.renderer)
	}

	state := scene.game.GetGameState()
	v, ok := state.Vessel(scene.vesselID)
	if !ok {
		scene.camera.ClearTarget()
		return
	}
	scene.camera.SetTarget(TileToScreen(v.Position, scene.cfg.TileSize))
	scene.hud.SetStatus(state.Wind, v)
}

// Exit is called when the scene is exiting (required by Engo)
func (scene *SailingScene) Exit() {
	for _, s := range scene.subscriptions {
		scene.game.EventBus.Unsubscribe(s.eventType, s.id)
	}
	scene.subscriptions = nil
}
