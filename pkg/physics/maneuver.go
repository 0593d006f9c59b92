package physics

import "math"

// Maneuver is a vessel's remaining turning budget
type Maneuver uint8

// MaxManeuver is the budget cap and the budget a vessel spawns with
const MaxManeuver Maneuver = 10

// ImpossibleCost is returned by ManeuverCost for turns no budget can pay for
const ImpossibleCost uint8 = math.MaxUint8

// ManeuverCost returns the maneuver points needed to turn from one heading to
// another under wind. Easing off the wind costs a flat point per step;
// turning up into harder sailing costs the full price of the new point of sail.
func ManeuverCost(wind, from, to Direction) uint8 {
	headings, ok := from.Interpolate(to)
	if !ok {
		return ImpossibleCost
	}

	var total uint8
	prev := Classify(headings[0], wind)
	for _, h := range headings[1:] {
		next := Classify(h, wind)
		total += stepCost(prev, next)
		prev = next
	}
	return total
}

func stepCost(prev, next PointOfSail) uint8 {
	switch prev.Compare(next) {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return next.Cost()
	}
}

// Affords reports whether the budget covers cost
func (m Maneuver) Affords(cost uint8) bool {
	return cost <= uint8(m)
}

// Spend returns the budget after paying cost. A free action recovers one
// point, capped at MaxManeuver. Callers check Affords first.
func (m Maneuver) Spend(cost uint8) Maneuver {
	if cost > uint8(m) {
		return 0
	}
	m -= Maneuver(cost)
	if cost == 0 && m < MaxManeuver {
		m++
	}
	return m
}

// SailState is the per-vessel state an action transitions
type SailState struct {
	Heading  Direction
	Maneuver Maneuver
	Position Vector
}

// Resolve applies a turn to target under wind. On success it returns the
// new state and the cost paid. When the budget does not cover the turn,
// state is returned unchanged with ok false.
// The vessel advances along its new heading unless it started the action in irons.
func Resolve(state SailState, wind, target Direction) (next SailState, cost uint8, ok bool) {
	cost = ManeuverCost(wind, state.Heading, target)
	if !state.Maneuver.Affords(cost) {
		return state, cost, false
	}

	next = SailState{
		Heading:  target,
		Maneuver: state.Maneuver.Spend(cost),
		Position: state.Position,
	}
	if Classify(state.Heading, wind).CanSail() {
		pos, fits := state.Position.CheckedAdd(target.Vector())
		if !fits {
			return state, cost, false
		}
		next.Position = pos
	}
	return next, cost, true
}
