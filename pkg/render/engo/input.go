// pkg/render/engo/input.go
package engo

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-sail/pkg/engine"
	"github.com/opd-ai/go-sail/pkg/entity"
	"github.com/opd-ai/go-sail/pkg/logging"
	"github.com/opd-ai/go-sail/pkg/physics"
	"github.com/opd-ai/go-sail/pkg/validation"
)

// Button names outside the sailing actions
const (
	buttonZoomIn    = "zoomIn"
	buttonZoomOut   = "zoomOut"
	buttonResetZoom = "resetZoom"
	buttonQuit      = "quit"
)

// letterKeys maps the letters used by the text key bindings to engo keys
var letterKeys = map[rune]engo.Key{
	'a': engo.KeyA, 'b': engo.KeyB, 'c': engo.KeyC, 'd': engo.KeyD,
	'e': engo.KeyE, 'f': engo.KeyF, 'g': engo.KeyG, 'h': engo.KeyH,
	'i': engo.KeyI, 'j': engo.KeyJ, 'k': engo.KeyK, 'l': engo.KeyL,
	'm': engo.KeyM, 'n': engo.KeyN, 'o': engo.KeyO, 'p': engo.KeyP,
	'q': engo.KeyQ, 'r': engo.KeyR, 's': engo.KeyS, 't': engo.KeyT,
	'u': engo.KeyU, 'v': engo.KeyV, 'w': engo.KeyW, 'x': engo.KeyX,
	'y': engo.KeyY, 'z': engo.KeyZ,
	' ': engo.KeySpace,
	'.': engo.KeyPeriod,
}

// arrowKeys steer along the four cardinal directions
var arrowKeys = map[physics.Direction]engo.Key{
	physics.East:  engo.KeyArrowRight,
	physics.North: engo.KeyArrowUp,
	physics.West:  engo.KeyArrowLeft,
	physics.South: engo.KeyArrowDown,
}

// ActionBinding is one engo button and the action it triggers
type ActionBinding struct {
	Button string
	Action entity.Action
	Keys   []engo.Key
}

// ActionBindings groups every bound key by the action it triggers: the
// eight headings in compass order, then hold.
func ActionBindings() []ActionBinding {
	bindings := make([]ActionBinding, 0, len(physics.AllDirections())+1)
	index := make(map[entity.Action]int)
	add := func(a entity.Action) int {
		if i, ok := index[a]; ok {
			return i
		}
		bindings = append(bindings, ActionBinding{Button: buttonName(a), Action: a})
		index[a] = len(bindings) - 1
		return len(bindings) - 1
	}

	for _, d := range physics.AllDirections() {
		i := add(entity.TurnTo(d))
		if key, ok := arrowKeys[d]; ok {
			bindings[i].Keys = append(bindings[i].Keys, key)
		}
	}
	add(entity.Hold())

	for _, r := range validation.BoundKeys() {
		action, _ := validation.KeyAction(r)
		key, ok := letterKeys[unicode.ToLower(r)]
		if !ok {
			continue
		}
		i := add(action)
		bindings[i].Keys = append(bindings[i].Keys, key)
	}
	return bindings
}

func buttonName(a entity.Action) string {
	if a.Kind == entity.ActionHold {
		return "hold"
	}
	return fmt.Sprintf("sail%s", a.Heading.Name())
}

// InputSystem turns key presses into actions on the player's vessel
type InputSystem struct {
	game     *engine.Game
	vesselID entity.ID
	bindings []ActionBinding
	logger   *logging.Logger
}

// NewInputSystem creates an input system steering vesselID
func NewInputSystem(game *engine.Game, vesselID entity.ID) *InputSystem {
	return &InputSystem{
		game:     game,
		vesselID: vesselID,
		bindings: ActionBindings(),
		logger:   game.Logger.WithComponent("input").WithVessel(uint64(vesselID)),
	}
}

// Remove satisfies the ecs.System interface
func (is *InputSystem) Remove(basic ecs.BasicEntity) {}

// Update applies at most one action per frame, the first bound button
// pressed this frame
func (is *InputSystem) Update(dt float32) {
	if engo.Input.Button(buttonQuit).JustPressed() {
		engo.Exit()
		return
	}

	for _, b := range is.bindings {
		if engo.Input.Button(b.Button).JustPressed() {
			is.apply(b.Action)
			return
		}
	}
}

// apply hands one action to the engine. Rejections leave the vessel as it
// was and are reported, not fatal.
func (is *InputSystem) apply(action entity.Action) {
	ctx := logging.WithCorrelationID(context.Background(), "")
	_, err := is.game.ApplyAction(ctx, is.vesselID, action)
	switch {
	case err == nil:
	case errors.Is(err, entity.ErrManeuverRejected):
		is.logger.Debug(ctx, "action rejected", "action", action.String(), "reason", err.Error())
	default:
		is.logger.Error(ctx, "action failed", err, "action", action.String())
	}
}

// SetupInputBindings registers every sailing and camera button with engo
func SetupInputBindings(bindings []ActionBinding) {
	for _, b := range bindings {
		engo.Input.RegisterButton(b.Button, b.Keys...)
	}

	engo.Input.RegisterButton(buttonZoomIn, engo.KeyEquals)
	engo.Input.RegisterButton(buttonZoomOut, engo.KeyDash)
	engo.Input.RegisterButton(buttonResetZoom, engo.KeyZero)
	engo.Input.RegisterButton(buttonQuit, engo.KeyEscape)
}
