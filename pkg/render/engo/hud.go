// pkg/render/engo/hud.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-sail/pkg/entity"
	"github.com/opd-ai/go-sail/pkg/physics"
	"github.com/opd-ai/go-sail/pkg/render"
)

const (
	hudZIndex   = 1000
	hudMargin   = 10
	hudFontSize = 30
)

// HUDSystem draws the wind, heading, point of sail and maneuver budget in
// the top-left corner of the window
type HUDSystem struct {
	font   *common.Font
	status *sprite

	text    string
	message string
	dirty   bool

	hudColor color.Color
}

// NewHUDSystem creates a HUD drawing with font. A nil font keeps the text
// up to date but draws nothing.
func NewHUDSystem(font *common.Font) *HUDSystem {
	return &HUDSystem{
		font:     font,
		hudColor: color.White,
	}
}

// LoadFont creates the HUD font from a TTF file already loaded with
// engo.Files.Load
func LoadFont(path string) (*common.Font, error) {
	font := &common.Font{
		URL:  path,
		FG:   color.White,
		Size: hudFontSize,
	}
	if err := font.CreatePreloaded(); err != nil {
		return nil, err
	}
	return font, nil
}

// Attach adds the HUD text entity to the render system
func (hud *HUDSystem) Attach(rs *common.RenderSystem) {
	if hud.font == nil {
		return
	}
	hud.status = &sprite{
		BasicEntity: ecs.NewBasic(),
		RenderComponent: common.RenderComponent{
			Drawable: common.Text{Font: hud.font, Text: hud.Text()},
			Color:    hud.hudColor,
		},
		SpaceComponent: common.SpaceComponent{
			Position: engo.Point{X: hudMargin, Y: hudMargin},
		},
	}
	hud.status.RenderComponent.SetShader(common.HUDShader)
	hud.status.RenderComponent.SetZIndex(hudZIndex)
	rs.Add(&hud.status.BasicEntity, &hud.status.RenderComponent, &hud.status.SpaceComponent)
}

// Remove satisfies the ecs.System interface
func (hud *HUDSystem) Remove(basic ecs.BasicEntity) {}

// Update redraws the text when the status has changed
func (hud *HUDSystem) Update(dt float32) {
	if !hud.dirty || hud.status == nil {
		return
	}
	hud.status.RenderComponent.Drawable = common.Text{Font: hud.font, Text: hud.Text()}
	hud.dirty = false
}

// SetStatus shows the state of the player's vessel
func (hud *HUDSystem) SetStatus(wind physics.Direction, v entity.VesselState) {
	hud.text = render.StatusText(wind, v)
	hud.dirty = true
}

// SetMessage shows a one-line notice under the status, such as why the
// last action was rejected. An empty message clears it.
func (hud *HUDSystem) SetMessage(msg string) {
	hud.message = msg
	hud.dirty = true
}

// Text returns everything the HUD shows
func (hud *HUDSystem) Text() string {
	if hud.message == "" {
		return hud.text
	}
	return hud.text + "\n" + hud.message
}
