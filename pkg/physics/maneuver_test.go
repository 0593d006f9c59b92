package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManeuverCost_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		wind Direction
		from Direction
		to   Direction
		want uint8
	}{
		// running -> broad reach (1) -> beam reach (2)
		{"head_up_to_beam_reach", East, East, North, 3},
		// beam reach -> broad reach -> running, one point per easing step
		{"bear_away_to_run", East, North, East, 2},
		{"hold_course", East, North, North, 0},
		// beam reach -> close hauled (4) -> in irons (8)
		{"head_into_irons", East, North, West, 4 + 8},
		{"close_hauled_into_irons", East, NorthWest, West, 8},
		// close hauled -> beam reach -> broad reach
		{"ease_from_close_hauled", East, NorthWest, NorthEast, 2},
		// running -> broad -> beam -> close hauled
		{"three_steps_upwind", East, East, NorthWest, 1 + 2 + 4},
		// broad reach -> running -> broad reach (other tack)
		{"gybe", East, NorthEast, SouthEast, 1 + 1},
		// close hauled -> in irons -> close hauled on the other tack
		{"tack_through_wind", East, SouthWest, NorthWest, 8 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ManeuverCost(tt.wind, tt.from, tt.to))
		})
	}
}

func TestManeuverCost_Properties(t *testing.T) {
	for _, wind := range AllDirections() {
		for _, h := range AllDirections() {
			assert.Zero(t, ManeuverCost(wind, h, h), "holding %s under %s", h.Name(), wind.Name())
			assert.Equal(t, ImpossibleCost, ManeuverCost(wind, h, h.Reverse()),
				"reversing %s under %s", h.Name(), wind.Name())
		}
	}
}

func TestManeuverCost_NotADifference(t *testing.T) {
	// Worsening charges the absolute price of the harder point of sail.
	assert.Equal(t, CloseHauled.Cost(), stepCost(BeamReach, CloseHauled))
	assert.Equal(t, InIrons.Cost(), stepCost(Running, InIrons))
	// Improving is a flat point regardless of how much easier.
	assert.Equal(t, uint8(1), stepCost(InIrons, Running))
	assert.Equal(t, uint8(1), stepCost(BroadReach, Running))
	assert.Zero(t, stepCost(BeamReach, BeamReach))
}

func TestManeuver_Spend(t *testing.T) {
	tests := []struct {
		name   string
		budget Maneuver
		cost   uint8
		want   Maneuver
	}{
		{"pay_turn", 10, 3, 7},
		{"free_action_recovers", 7, 0, 8},
		{"recovery_capped", MaxManeuver, 0, MaxManeuver},
		{"exact_budget", 4, 4, 0},
		{"recover_from_empty", 0, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, tt.budget.Affords(tt.cost))
			assert.Equal(t, tt.want, tt.budget.Spend(tt.cost))
		})
	}
}

func TestManeuver_Affords(t *testing.T) {
	assert.True(t, Maneuver(10).Affords(10))
	assert.False(t, Maneuver(3).Affords(4))
	assert.False(t, MaxManeuver.Affords(ImpossibleCost))
}

func TestResolve_BudgetScenario(t *testing.T) {
	state := SailState{Heading: East, Maneuver: MaxManeuver}

	turned, cost, ok := Resolve(state, East, North)
	require.True(t, ok)
	assert.Equal(t, uint8(3), cost)
	assert.Equal(t, SailState{Heading: North, Maneuver: 7, Position: Vector{X: 0, Y: 1}}, turned)

	held, cost, ok := Resolve(turned, East, turned.Heading)
	require.True(t, ok)
	assert.Zero(t, cost)
	assert.Equal(t, SailState{Heading: North, Maneuver: 8, Position: Vector{X: 0, Y: 2}}, held)
}

func TestResolve_RejectsAtomically(t *testing.T) {
	tests := []struct {
		name   string
		state  SailState
		wind   Direction
		target Direction
	}{
		{"reversal", SailState{Heading: East, Maneuver: MaxManeuver}, East, West},
		{"over_budget", SailState{Heading: East, Maneuver: 2, Position: Vector{X: 4, Y: -2}}, East, North},
		{"off_grid", SailState{Heading: East, Maneuver: 5, Position: Vector{X: 127}}, East, East},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _, ok := Resolve(tt.state, tt.wind, tt.target)
			assert.False(t, ok)
			assert.Equal(t, tt.state, next)
		})
	}
}

func TestResolve_InIronsMakesNoWay(t *testing.T) {
	// The wind blows toward the east, so heading west is in irons.
	irons := SailState{Heading: West, Maneuver: 5, Position: Vector{X: 2, Y: 2}}
	require.Equal(t, InIrons, Classify(irons.Heading, East))

	next, cost, ok := Resolve(irons, East, NorthWest)
	require.True(t, ok)
	assert.Equal(t, uint8(1), cost)
	assert.Equal(t, irons.Position, next.Position, "a vessel in irons does not advance")
	assert.Equal(t, NorthWest, next.Heading)

	// Out of irons, the next action sails normally.
	moved, _, ok := Resolve(next, East, NorthWest)
	require.True(t, ok)
	assert.Equal(t, Vector{X: 1, Y: 3}, moved.Position)
}

func TestResolve_EnteringIronsStillAdvances(t *testing.T) {
	state := SailState{Heading: NorthWest, Maneuver: MaxManeuver}

	next, cost, ok := Resolve(state, East, West)
	require.True(t, ok)
	assert.Equal(t, uint8(8), cost)
	assert.Equal(t, Vector{X: -1, Y: 0}, next.Position)
	assert.Equal(t, Maneuver(2), next.Maneuver)
}
