package render

import (
	"testing"

	"github.com/opd-ai/go-sail/pkg/entity"
	"github.com/opd-ai/go-sail/pkg/physics"
)

func TestStatusText(t *testing.T) {
	tests := []struct {
		name   string
		wind   physics.Direction
		vessel entity.VesselState
		want   string
	}{
		{
			name:   "beam reach after turning north",
			wind:   physics.East,
			vessel: entity.VesselState{Heading: physics.North, Maneuver: 7},
			want:   "Wind: →  Heading: ↑\nPoint of sail: beam reach\nManeuver: 7 / 10",
		},
		{
			name:   "running at full budget",
			wind:   physics.SouthWest,
			vessel: entity.VesselState{Heading: physics.SouthWest, Maneuver: 10},
			want:   "Wind: ↙  Heading: ↙\nPoint of sail: running\nManeuver: 10 / 10",
		},
		{
			name:   "in irons with nothing left",
			wind:   physics.East,
			vessel: entity.VesselState{Heading: physics.West},
			want:   "Wind: →  Heading: ←\nPoint of sail: in irons\nManeuver: 0 / 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusText(tt.wind, tt.vessel); got != tt.want {
				t.Errorf("StatusText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTurnCosts(t *testing.T) {
	full := entity.VesselState{Heading: physics.East, Maneuver: physics.MaxManeuver}
	if got, want := TurnCosts(physics.East, full), "→:0 ↗:1 ↑:3 ↖:7 ↙:7 ↓:3 ↘:1"; got != want {
		t.Errorf("TurnCosts() = %q, want %q", got, want)
	}

	low := entity.VesselState{Heading: physics.East, Maneuver: 2}
	if got, want := TurnCosts(physics.East, low), "→:0 ↗:1 ↑:3! ↖:7! ↙:7! ↓:3! ↘:1"; got != want {
		t.Errorf("TurnCosts() = %q, want %q", got, want)
	}
}
