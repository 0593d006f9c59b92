// pkg/entity/vessel.go
package entity

import (
	"errors"
	"fmt"

	"github.com/opd-ai/go-sail/pkg/physics"
)

var (
	// ErrManeuverRejected is returned for any action the vessel cannot take.
	// Callers treat every rejection the same way: nothing changed.
	ErrManeuverRejected = errors.New("maneuver rejected")

	// ErrImpossibleManeuver marks a direct reversal of heading
	ErrImpossibleManeuver = fmt.Errorf("%w: cannot reverse heading in one maneuver", ErrManeuverRejected)

	// ErrInsufficientManeuver marks a turn costing more than the remaining budget
	ErrInsufficientManeuver = fmt.Errorf("%w: insufficient maneuver points", ErrManeuverRejected)

	// ErrVesselInactive is returned when acting on a removed vessel
	ErrVesselInactive = errors.New("vessel is not active")
)

// Vessel is a sailing ship on the grid
type Vessel struct {
	BaseEntity
	Name     string
	Heading  physics.Direction
	Maneuver physics.Maneuver
}

// VesselState is a snapshot of a vessel
type VesselState struct {
	ID       ID
	Name     string
	Heading  physics.Direction
	Maneuver physics.Maneuver
	Position physics.Vector
}

// Outcome describes an accepted action
type Outcome struct {
	Action    Action
	Cost      uint8
	Previous  VesselState
	Current   VesselState
	Moved     bool
	Recovered bool
}

// NewVessel creates an active vessel with a full maneuver budget
func NewVessel(id ID, name string, heading physics.Direction, position physics.Vector) *Vessel {
	return &Vessel{
		BaseEntity: BaseEntity{
			ID:       id,
			Position: position,
			Active:   true,
		},
		Name:     name,
		Heading:  heading,
		Maneuver: physics.MaxManeuver,
	}
}

// State returns a snapshot of the vessel
func (v *Vessel) State() VesselState {
	return VesselState{
		ID:       v.ID,
		Name:     v.Name,
		Heading:  v.Heading,
		Maneuver: v.Maneuver,
		Position: v.Position,
	}
}

// PointOfSail classifies the vessel's current heading under wind
func (v *Vessel) PointOfSail(wind physics.Direction) physics.PointOfSail {
	return physics.Classify(v.Heading, wind)
}

// Preview computes the outcome of an action without applying it
func (v *Vessel) Preview(wind physics.Direction, action Action) (Outcome, error) {
	if !v.Active {
		return Outcome{}, ErrVesselInactive
	}

	current := physics.SailState{
		Heading:  v.Heading,
		Maneuver: v.Maneuver,
		Position: v.Position,
	}
	target := action.Target(v.Heading)

	next, cost, ok := physics.Resolve(current, wind, target)
	if !ok {
		switch {
		case cost == physics.ImpossibleCost:
			return Outcome{}, ErrImpossibleManeuver
		case !current.Maneuver.Affords(cost):
			return Outcome{}, fmt.Errorf("%w: need %d, have %d", ErrInsufficientManeuver, cost, current.Maneuver)
		default:
			return Outcome{}, fmt.Errorf("%w: position %v leaves the grid", ErrManeuverRejected, current.Position)
		}
	}

	prev := v.State()
	after := prev
	after.Heading = next.Heading
	after.Maneuver = next.Maneuver
	after.Position = next.Position

	return Outcome{
		Action:    action,
		Cost:      cost,
		Previous:  prev,
		Current:   after,
		Moved:     next.Position != current.Position,
		Recovered: next.Maneuver > current.Maneuver,
	}, nil
}

// Commit writes an outcome from Preview back to the vessel
func (v *Vessel) Commit(o Outcome) {
	v.Heading = o.Current.Heading
	v.Maneuver = o.Current.Maneuver
	v.Position = o.Current.Position
}

// Apply resolves an action under wind. Heading, maneuver and position
// change together or not at all.
func (v *Vessel) Apply(wind physics.Direction, action Action) (Outcome, error) {
	o, err := v.Preview(wind, action)
	if err != nil {
		return Outcome{}, err
	}
	v.Commit(o)
	return o, nil
}

// Render draws the vessel
func (v *Vessel) Render(r Renderer, wind physics.Direction) {
	r.RenderVessel(v.State(), wind)
}
