// pkg/engine/game.go
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/opd-ai/go-sail/pkg/config"
	"github.com/opd-ai/go-sail/pkg/entity"
	"github.com/opd-ai/go-sail/pkg/event"
	"github.com/opd-ai/go-sail/pkg/logging"
	"github.com/opd-ai/go-sail/pkg/physics"
)

var (
	// ErrGameNotRunning is returned for actions before Start or after Stop
	ErrGameNotRunning = errors.New("game is not running")

	// ErrVesselNotFound is returned for an unknown or removed vessel ID
	ErrVesselNotFound = errors.New("vessel not found")

	// ErrUnknownVessel is returned when spawning a name missing from the config
	ErrUnknownVessel = errors.New("no such vessel in config")

	// ErrVesselExists is returned when spawning a name that is already afloat
	ErrVesselExists = errors.New("vessel already spawned")

	// ErrOutOfBounds marks an action that would leave the world
	ErrOutOfBounds = fmt.Errorf("%w: outside world bounds", entity.ErrManeuverRejected)

	// ErrInvalidWind is returned by SetWind for a value off the compass
	ErrInvalidWind = errors.New("invalid wind direction")
)

// GameStatus tracks the game lifecycle
type GameStatus int

const (
	GameStatusWaiting GameStatus = iota
	GameStatusActive
	GameStatusEnded
)

// Game holds the wind and every vessel afloat
type Game struct {
	Config      *config.GameConfig
	Wind        physics.Direction
	Vessels     *orderedmap.OrderedMap[entity.ID, *entity.Vessel]
	Bounds      physics.Rect
	EntityLock  sync.RWMutex
	Running     bool
	Status      GameStatus
	CurrentTick uint64
	StartTime   time.Time
	EventBus    *event.Bus
	Logger      *logging.Logger

	pending []queuedAction
}

type queuedAction struct {
	ctx      context.Context
	vesselID entity.ID
	action   entity.Action
}

// ActionResult reports what happened to one queued action
type ActionResult struct {
	VesselID entity.ID
	Action   entity.Action
	Outcome  entity.Outcome
	Err      error
}

// GameState is a snapshot of the game. Vessels appear in spawn order.
type GameState struct {
	Tick    uint64
	Wind    physics.Direction
	Running bool
	Vessels []entity.VesselState
}

// Vessel returns the snapshot of one vessel
func (s *GameState) Vessel(id entity.ID) (entity.VesselState, bool) {
	for _, v := range s.Vessels {
		if v.ID == id {
			return v, true
		}
	}
	return entity.VesselState{}, false
}

// NewGame creates a game with the specified configuration. No vessels are
// spawned until SpawnVessel or SpawnAll is called.
func NewGame(cfg *config.GameConfig) *Game {
	return &Game{
		Config:   cfg,
		Wind:     cfg.Wind,
		Vessels:  orderedmap.NewOrderedMap[entity.ID, *entity.Vessel](),
		Bounds:   physics.NewRect(cfg.World.Radius),
		EventBus: event.NewEventBus(),
		Logger:   logging.NewLogger().WithComponent("engine"),
	}
}

// Start opens the game to actions
func (g *Game) Start() {
	g.EntityLock.Lock()
	g.Running = true
	g.Status = GameStatusActive
	g.StartTime = time.Now()
	g.EntityLock.Unlock()

	g.Logger.Info(context.Background(), "game started", "wind", g.Wind.Name())
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameStarted,
		Source:    g,
	})
}

// Stop closes the game to actions and drops anything still queued
func (g *Game) Stop() {
	g.EntityLock.Lock()
	g.Running = false
	g.Status = GameStatusEnded
	dropped := len(g.pending)
	g.pending = nil
	g.EntityLock.Unlock()

	g.Logger.Info(context.Background(), "game stopped", "dropped_actions", dropped)
	g.EventBus.Publish(&event.BaseEvent{
		EventType: event.GameEnded,
		Source:    g,
	})
}

// SpawnVessel places the configured vessel with the given name
func (g *Game) SpawnVessel(name string) (entity.ID, error) {
	vc, ok := g.findVesselConfig(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownVessel, name)
	}

	g.EntityLock.Lock()
	for el := g.Vessels.Front(); el != nil; el = el.Next() {
		if el.Value.Name == name {
			g.EntityLock.Unlock()
			return 0, fmt.Errorf("%w: %q", ErrVesselExists, name)
		}
	}
	if !g.Bounds.Contains(vc.Position()) {
		g.EntityLock.Unlock()
		return 0, fmt.Errorf("spawn %q at %v: %w", name, vc.Position(), ErrOutOfBounds)
	}

	vessel := entity.NewVessel(entity.GenerateID(), vc.Name, vc.Heading, vc.Position())
	vessel.Maneuver = vc.Maneuver
	g.Vessels.Set(vessel.ID, vessel)
	state := vessel.State()
	g.EntityLock.Unlock()

	g.Logger.WithVessel(uint64(state.ID)).Info(context.Background(), "vessel spawned",
		"name", state.Name, "heading", state.Heading.Name(), "position", state.Position.String())
	g.EventBus.Publish(event.NewVesselEvent(event.VesselSpawned, g, state, 0))
	return state.ID, nil
}

// SpawnAll spawns every configured vessel in config order
func (g *Game) SpawnAll() ([]entity.ID, error) {
	ids := make([]entity.ID, 0, len(g.Config.Vessels))
	for _, vc := range g.Config.Vessels {
		id, err := g.SpawnVessel(vc.Name)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (g *Game) findVesselConfig(name string) (config.VesselConfig, bool) {
	for _, vc := range g.Config.Vessels {
		if vc.Name == name {
			return vc, true
		}
	}
	return config.VesselConfig{}, false
}

// RemoveVessel takes a vessel off the board. Its queued actions will fail.
func (g *Game) RemoveVessel(id entity.ID) error {
	g.EntityLock.Lock()
	vessel, ok := g.Vessels.Get(id)
	if !ok {
		g.EntityLock.Unlock()
		return fmt.Errorf("remove vessel %d: %w", id, ErrVesselNotFound)
	}
	vessel.Active = false
	g.Vessels.Delete(id)
	state := vessel.State()
	g.EntityLock.Unlock()

	g.Logger.WithVessel(uint64(id)).Info(context.Background(), "vessel removed")
	g.EventBus.Publish(event.NewVesselEvent(event.VesselRemoved, g, state, 0))
	return nil
}

// SetWind changes the wind for every following action
func (g *Game) SetWind(d physics.Direction) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidWind, d)
	}

	g.EntityLock.Lock()
	previous := g.Wind
	g.Wind = d
	g.EntityLock.Unlock()

	if previous == d {
		return nil
	}
	g.Logger.Info(context.Background(), "wind changed", "from", previous.Name(), "to", d.Name())
	g.EventBus.Publish(event.NewWindEvent(g, previous, d))
	return nil
}

// ApplyAction resolves one action immediately. On any error the vessel is
// unchanged.
func (g *Game) ApplyAction(ctx context.Context, id entity.ID, action entity.Action) (entity.Outcome, error) {
	ctx = ensureCorrelationID(ctx)

	g.EntityLock.Lock()
	if !g.Running {
		g.EntityLock.Unlock()
		return entity.Outcome{}, ErrGameNotRunning
	}
	outcome, events, err := g.applyLocked(ctx, id, action)
	g.EntityLock.Unlock()

	g.publish(events)
	return outcome, err
}

// Submit queues an action for the next Update
func (g *Game) Submit(ctx context.Context, id entity.ID, action entity.Action) error {
	g.EntityLock.Lock()
	defer g.EntityLock.Unlock()

	if !g.Running {
		return ErrGameNotRunning
	}
	if _, ok := g.Vessels.Get(id); !ok {
		return fmt.Errorf("submit for vessel %d: %w", id, ErrVesselNotFound)
	}

	g.pending = append(g.pending, queuedAction{
		ctx:      ensureCorrelationID(ctx),
		vesselID: id,
		action:   action,
	})
	return nil
}

// Update advances one tick, resolving queued actions in submission order
func (g *Game) Update() []ActionResult {
	g.EntityLock.Lock()
	queue := g.pending
	g.pending = nil

	var (
		results []ActionResult
		events  []event.Event
	)
	if g.Running {
		results = make([]ActionResult, 0, len(queue))
		for _, q := range queue {
			outcome, evs, err := g.applyLocked(q.ctx, q.vesselID, q.action)
			events = append(events, evs...)
			results = append(results, ActionResult{
				VesselID: q.vesselID,
				Action:   q.action,
				Outcome:  outcome,
				Err:      err,
			})
		}
		g.CurrentTick++
	}
	tick := g.CurrentTick
	g.EntityLock.Unlock()

	if len(results) > 0 {
		g.Logger.Debug(context.Background(), "tick resolved", "tick", tick, "actions", len(results))
	}
	g.publish(events)
	return results
}

// Run calls Update at the configured tick rate until ctx is done
func (g *Game) Run(ctx context.Context) error {
	rate := g.Config.TickRate
	if rate < 1 {
		rate = 1
	}

	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			g.Update()
		}
	}
}

// applyLocked resolves an action with EntityLock held. Events are returned
// rather than published so handlers may call back into the game.
func (g *Game) applyLocked(ctx context.Context, id entity.ID, action entity.Action) (entity.Outcome, []event.Event, error) {
	vessel, ok := g.Vessels.Get(id)
	if !ok {
		return entity.Outcome{}, nil, fmt.Errorf("vessel %d: %w", id, ErrVesselNotFound)
	}
	logger := g.Logger.WithVessel(uint64(id))

	outcome, err := vessel.Preview(g.Wind, action)
	if err == nil && !g.Bounds.Contains(outcome.Current.Position) {
		err = fmt.Errorf("%w: %v beyond radius %d", ErrOutOfBounds, outcome.Current.Position, g.Bounds.Radius)
	}
	if err != nil {
		logger.Info(ctx, "maneuver rejected", "action", action.String(), "reason", err.Error())
		return entity.Outcome{}, []event.Event{event.NewRejectionEvent(g, vessel.State(), err)}, err
	}

	vessel.Commit(outcome)
	logger.Info(ctx, "maneuver accepted",
		"action", action.String(),
		"cost", outcome.Cost,
		"heading", outcome.Current.Heading.Name(),
		"point_of_sail", physics.Classify(outcome.Current.Heading, g.Wind).String(),
		"maneuver", uint8(outcome.Current.Maneuver),
		"position", outcome.Current.Position.String())

	events := []event.Event{event.NewVesselEvent(event.ManeuverAccepted, g, outcome.Current, outcome.Cost)}
	if outcome.Moved {
		events = append(events, event.NewVesselEvent(event.VesselMoved, g, outcome.Current, outcome.Cost))
	}
	return outcome, events, nil
}

func (g *Game) publish(events []event.Event) {
	for _, e := range events {
		g.EventBus.Publish(e)
	}
}

func ensureCorrelationID(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if logging.GetCorrelationID(ctx) != "" {
		return ctx
	}
	return logging.WithCorrelationID(ctx, "")
}

// GetGameState returns a snapshot of the current game state
func (g *Game) GetGameState() *GameState {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	state := &GameState{
		Tick:    g.CurrentTick,
		Wind:    g.Wind,
		Running: g.Running,
		Vessels: make([]entity.VesselState, 0, g.Vessels.Len()),
	}
	for el := g.Vessels.Front(); el != nil; el = el.Next() {
		state.Vessels = append(state.Vessels, el.Value.State())
	}
	return state
}

// Render draws every vessel through r
func (g *Game) Render(r entity.Renderer) {
	g.EntityLock.RLock()
	defer g.EntityLock.RUnlock()

	r.Clear()
	for el := g.Vessels.Front(); el != nil; el = el.Next() {
		el.Value.Render(r, g.Wind)
	}
	r.Present()
}
