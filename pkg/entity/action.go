package entity

import (
	"fmt"

	"github.com/opd-ai/go-sail/pkg/physics"
)

// ActionKind distinguishes the discrete player actions
type ActionKind int

const (
	ActionHold ActionKind = iota
	ActionTurn
)

// Action is one discrete player input: hold the current heading, or turn
// to a new one. Either way the vessel then sails a tile.
type Action struct {
	Kind    ActionKind
	Heading physics.Direction
}

// Hold keeps the current heading
func Hold() Action {
	return Action{Kind: ActionHold}
}

// TurnTo requests a new heading
func TurnTo(d physics.Direction) Action {
	return Action{Kind: ActionTurn, Heading: d}
}

// Target returns the heading the action steers to from current
func (a Action) Target(current physics.Direction) physics.Direction {
	if a.Kind == ActionHold {
		return current
	}
	return a.Heading
}

func (a Action) String() string {
	switch a.Kind {
	case ActionHold:
		return "hold"
	case ActionTurn:
		return fmt.Sprintf("turn %s", a.Heading.Name())
	default:
		return fmt.Sprintf("ActionKind(%d)", int(a.Kind))
	}
}
