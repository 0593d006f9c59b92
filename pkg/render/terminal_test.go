package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/opd-ai/go-sail/pkg/entity"
	"github.com/opd-ai/go-sail/pkg/physics"
)

func presentLines(r *TerminalRenderer, buf *bytes.Buffer, wind physics.Direction, vessels ...entity.VesselState) []string {
	buf.Reset()
	r.Clear()
	for _, v := range vessels {
		r.RenderVessel(v, wind)
	}
	r.Present()
	return strings.Split(buf.String(), "\n")
}

func TestTerminalRenderer_DrawsChartAndHUD(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewTerminalRenderer(&buf, 1)
	renderer.SetBounds(physics.NewRect(1))

	player := entity.VesselState{ID: 1, Name: "Player", Heading: physics.East, Maneuver: 10, Position: physics.Vector{X: 1, Y: 0}}
	other := entity.VesselState{ID: 2, Name: "Other", Heading: physics.South, Maneuver: 4, Position: physics.Vector{X: 0, Y: 1}}

	lines := presentLines(renderer, &buf, physics.East, player, other)

	want := []string{
		"+---+",
		"|↓.#|",
		"|.→#|",
		"|..#|",
		"+---+",
		"Player (1, 0)",
		"Wind: →  Heading: →",
		"Point of sail: running",
		"Maneuver: 10 / 10",
	}
	if len(lines) < len(want) {
		t.Fatalf("expected at least %d lines, got %q", len(want), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d: got %q, want %q", i, lines[i], w)
		}
	}
	if !strings.HasPrefix(lines[len(want)], "Turns: ") {
		t.Errorf("expected turn costs after HUD, got %q", lines[len(want)])
	}
}

func TestTerminalRenderer_Focus(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewTerminalRenderer(&buf, 1)

	a := entity.VesselState{ID: 1, Name: "a", Heading: physics.East}
	b := entity.VesselState{ID: 2, Name: "b", Heading: physics.North, Position: physics.Vector{X: 10, Y: 10}}

	lines := presentLines(renderer, &buf, physics.East, a, b)
	if lines[2] != "|.→.|" || lines[5] != "a (0, 0)" {
		t.Errorf("expected view centred on the first vessel, got %q", lines[:6])
	}

	renderer.SetFocus(2)
	lines = presentLines(renderer, &buf, physics.East, a, b)
	if lines[2] != "|.↑.|" || lines[5] != "b (10, 10)" {
		t.Errorf("expected view centred on the focused vessel, got %q", lines[:6])
	}
}

func TestTerminalRenderer_GridEdge(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewTerminalRenderer(&buf, 1)

	edge := entity.VesselState{ID: 1, Name: "edge", Heading: physics.East, Position: physics.Vector{X: 127, Y: -128}}
	lines := presentLines(renderer, &buf, physics.East, edge)

	want := []string{"|..#|", "|.→#|", "|###|"}
	for i, w := range want {
		if lines[i+1] != w {
			t.Errorf("row %d: got %q, want %q", i, lines[i+1], w)
		}
	}
}

func TestTerminalRenderer_ClearScreenAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewTerminalRenderer(&buf, 0)
	renderer.SetClearScreen(true)

	lines := presentLines(renderer, &buf, physics.East)
	if lines[0] != "\033[H\033[2J(no vessels)" {
		t.Errorf("expected clear sequence then placeholder, got %q", lines[0])
	}

	lines = presentLines(renderer, &buf, physics.East, entity.VesselState{Heading: physics.NorthWest})
	if lines[0] != "\033[H\033[2J+---+" || lines[2] != "|.↖.|" {
		t.Errorf("view radius should be at least 1 tile, got %q", lines[:4])
	}
}
