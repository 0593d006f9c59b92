// pkg/render/terminal.go
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/opd-ai/go-sail/pkg/entity"
	"github.com/opd-ai/go-sail/pkg/physics"
)

const (
	waterCell = '.'
	landCell  = '#'
)

// TerminalRenderer draws an ASCII chart centred on one vessel, with the
// HUD underneath
type TerminalRenderer struct {
	out         io.Writer
	viewRadius  int
	bounds      *physics.Rect
	clearScreen bool
	focus       entity.ID

	wind    physics.Direction
	vessels []entity.VesselState
}

// NewTerminalRenderer creates a renderer showing viewRadius tiles on each
// side of the focused vessel
func NewTerminalRenderer(out io.Writer, viewRadius int) *TerminalRenderer {
	if viewRadius < 1 {
		viewRadius = 1
	}
	return &TerminalRenderer{
		out:        out,
		viewRadius: viewRadius,
	}
}

// SetBounds marks tiles outside the world with '#'
func (r *TerminalRenderer) SetBounds(bounds physics.Rect) {
	r.bounds = &bounds
}

// SetClearScreen makes Present clear the terminal before drawing
func (r *TerminalRenderer) SetClearScreen(clear bool) {
	r.clearScreen = clear
}

// SetFocus centres the view on a vessel. With no focus the first vessel
// rendered is used.
func (r *TerminalRenderer) SetFocus(id entity.ID) {
	r.focus = id
}

// Clear implements entity.Renderer
func (r *TerminalRenderer) Clear() {
	r.vessels = r.vessels[:0]
}

// RenderVessel implements entity.Renderer
func (r *TerminalRenderer) RenderVessel(v entity.VesselState, wind physics.Direction) {
	r.wind = wind
	r.vessels = append(r.vessels, v)
}

func (r *TerminalRenderer) focused() (entity.VesselState, bool) {
	for _, v := range r.vessels {
		if v.ID == r.focus {
			return v, true
		}
	}
	if len(r.vessels) > 0 {
		return r.vessels[0], true
	}
	return entity.VesselState{}, false
}

// Present implements entity.Renderer
func (r *TerminalRenderer) Present() {
	var buf bytes.Buffer
	if r.clearScreen {
		buf.WriteString("\033[H\033[2J")
	}

	focus, ok := r.focused()
	if !ok {
		buf.WriteString("(no vessels)\n")
		r.out.Write(buf.Bytes())
		return
	}

	vesselAt := make(map[physics.Vector]entity.VesselState, len(r.vessels))
	for i := len(r.vessels) - 1; i >= 0; i-- {
		vesselAt[r.vessels[i].Position] = r.vessels[i]
	}
	// The focused vessel wins a shared tile
	vesselAt[focus.Position] = focus

	width := 2*r.viewRadius + 1
	cx, cy := int(focus.Position.X), int(focus.Position.Y)

	border := "+" + strings.Repeat("-", width) + "+\n"
	buf.WriteString(border)
	for y := cy + r.viewRadius; y >= cy-r.viewRadius; y-- {
		buf.WriteByte('|')
		for x := cx - r.viewRadius; x <= cx+r.viewRadius; x++ {
			buf.WriteString(r.cell(x, y, vesselAt))
		}
		buf.WriteString("|\n")
	}
	buf.WriteString(border)

	fmt.Fprintf(&buf, "%s %s\n", focus.Name, focus.Position)
	buf.WriteString(StatusText(r.wind, focus))
	buf.WriteString("\nTurns: ")
	buf.WriteString(TurnCosts(r.wind, focus))
	buf.WriteString("\n")

	r.out.Write(buf.Bytes())
}

func (r *TerminalRenderer) cell(x, y int, vesselAt map[physics.Vector]entity.VesselState) string {
	if x < -128 || x > 127 || y < -128 || y > 127 {
		return string(landCell)
	}
	p := physics.Vector{X: int8(x), Y: int8(y)}
	if v, ok := vesselAt[p]; ok {
		return v.Heading.String()
	}
	if r.bounds != nil && !r.bounds.Contains(p) {
		return string(landCell)
	}
	return string(waterCell)
}
