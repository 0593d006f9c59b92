// pkg/render/hud.go
package render

import (
	"fmt"

	"github.com/opd-ai/go-sail/pkg/entity"
	"github.com/opd-ai/go-sail/pkg/physics"
)

// StatusText is the three-line HUD shown for the player's vessel
func StatusText(wind physics.Direction, v entity.VesselState) string {
	return fmt.Sprintf("Wind: %s  Heading: %s\nPoint of sail: %s\nManeuver: %d / %d",
		wind, v.Heading, physics.Classify(v.Heading, wind), v.Maneuver, physics.MaxManeuver)
}

// TurnCosts lists what each heading would cost from the vessel's current
// heading, skipping the impossible reversal
func TurnCosts(wind physics.Direction, v entity.VesselState) string {
	var s string
	for _, d := range physics.AllDirections() {
		cost := physics.ManeuverCost(wind, v.Heading, d)
		if cost == physics.ImpossibleCost {
			continue
		}
		if s != "" {
			s += " "
		}
		mark := ""
		if !v.Maneuver.Affords(cost) {
			mark = "!"
		}
		s += fmt.Sprintf("%s:%d%s", d, cost, mark)
	}
	return s
}
