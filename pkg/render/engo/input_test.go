package engo

import (
	"testing"

	"github.com/EngoEngine/engo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/go-sail/pkg/entity"
	"github.com/opd-ai/go-sail/pkg/physics"
	"github.com/opd-ai/go-sail/pkg/validation"
)

func TestActionBindings_CoverEveryAction(t *testing.T) {
	bindings := ActionBindings()

	require.Len(t, bindings, 9)
	for i, d := range physics.AllDirections() {
		assert.Equal(t, entity.TurnTo(d), bindings[i].Action)
		assert.Equal(t, "sail"+d.Name(), bindings[i].Button)
	}
	assert.Equal(t, entity.Hold(), bindings[8].Action)
	assert.Equal(t, "hold", bindings[8].Button)
}

func TestActionBindings_Keys(t *testing.T) {
	byButton := make(map[string][]engo.Key)
	for _, b := range ActionBindings() {
		byButton[b.Button] = b.Keys
	}

	assert.ElementsMatch(t, []engo.Key{engo.KeyArrowRight, engo.KeyD, engo.KeyL}, byButton["sailE"])
	assert.ElementsMatch(t, []engo.Key{engo.KeyArrowUp, engo.KeyW, engo.KeyK}, byButton["sailN"])
	assert.ElementsMatch(t, []engo.Key{engo.KeyQ, engo.KeyY}, byButton["sailNW"])
	assert.ElementsMatch(t, []engo.Key{engo.KeyC, engo.KeyN}, byButton["sailSE"])
	assert.ElementsMatch(t, []engo.Key{engo.KeySpace, engo.KeyPeriod}, byButton["hold"])
}

func TestActionBindings_MatchTextBindings(t *testing.T) {
	bindings := ActionBindings()

	for _, r := range validation.BoundKeys() {
		want, ok := validation.KeyAction(r)
		require.True(t, ok)
		key, ok := letterKeys[r]
		require.True(t, ok, "no engo key for %q", r)

		found := false
		for _, b := range bindings {
			for _, k := range b.Keys {
				if k == key {
					assert.Equal(t, want, b.Action, "key %q", r)
					found = true
				}
			}
		}
		assert.True(t, found, "key %q not bound", r)
	}
}

func TestInputSystem_ApplySteersVessel(t *testing.T) {
	game, id := newTestGame(t)
	is := NewInputSystem(game, id)

	is.apply(entity.TurnTo(physics.NorthEast))

	state, ok := game.GetGameState().Vessel(id)
	require.True(t, ok)
	assert.Equal(t, physics.NorthEast, state.Heading)
	assert.Equal(t, physics.Vector{X: 1, Y: 1}, state.Position)
}

func TestInputSystem_RejectedActionLeavesVessel(t *testing.T) {
	game, id := newTestGame(t)
	is := NewInputSystem(game, id)
	before, _ := game.GetGameState().Vessel(id)

	is.apply(entity.TurnTo(physics.West))

	after, _ := game.GetGameState().Vessel(id)
	assert.Equal(t, before, after)
}

func TestInputSystem_StoppedGame(t *testing.T) {
	game, id := newTestGame(t)
	game.Stop()
	is := NewInputSystem(game, id)
	before, _ := game.GetGameState().Vessel(id)

	is.apply(entity.Hold())

	after, _ := game.GetGameState().Vessel(id)
	assert.Equal(t, before, after)
}
