// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-sail/pkg/entity"
	"github.com/opd-ai/go-sail/pkg/physics"
)

const (
	boatZIndex  = 10
	waterZIndex = 0
)

// sprite is an entity the render system draws
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer implements entity.Renderer using the Engo game engine
type EngoRenderer struct {
	world        *ecs.World
	renderSystem *common.RenderSystem

	boats map[entity.ID]*sprite
	water *sprite
	seen  map[entity.ID]bool

	assets *AssetManager
}

// NewEngoRenderer creates a new Engo-based renderer
func NewEngoRenderer(world *ecs.World, tileSize int) *EngoRenderer {
	return &EngoRenderer{
		world:  world,
		boats:  make(map[entity.ID]*sprite),
		seen:   make(map[entity.ID]bool),
		assets: NewAssetManager(tileSize),
	}
}

// Initialize sets up the renderer's systems
func (r *EngoRenderer) Initialize() error {
	r.renderSystem = &common.RenderSystem{}
	r.world.AddSystem(r.renderSystem)

	return r.assets.LoadAssets()
}

// SetBounds draws the sailable area as water over a land background
func (r *EngoRenderer) SetBounds(bounds physics.Rect) {
	common.SetBackground(landColor)

	if r.water != nil {
		r.renderSystem.Remove(r.water.BasicEntity)
	}

	tile := float32(r.assets.TileSize())
	centre := TileToScreen(bounds.Center, r.assets.TileSize())
	half := float32(bounds.Width()) * tile / 2
	r.water = &sprite{
		BasicEntity: ecs.NewBasic(),
		RenderComponent: common.RenderComponent{
			Drawable: common.Rectangle{},
			Color:    waterColor,
		},
		SpaceComponent: common.SpaceComponent{
			Position: engo.Point{X: centre.X - half, Y: centre.Y - half},
			Width:    float32(bounds.Width()) * tile,
			Height:   float32(bounds.Width()) * tile,
		},
	}
	r.water.RenderComponent.SetZIndex(waterZIndex)
	r.renderSystem.Add(&r.water.BasicEntity, &r.water.RenderComponent, &r.water.SpaceComponent)
}

// TileToScreen returns the pixel centre of a tile. World y points north and
// screen y points down, so y is negated.
func TileToScreen(p physics.Vector, tileSize int) engo.Point {
	return engo.Point{
		X: float32(int(p.X) * tileSize),
		Y: float32(-int(p.Y) * tileSize),
	}
}

// Clear implements entity.Renderer
func (r *EngoRenderer) Clear() {
	for id := range r.seen {
		delete(r.seen, id)
	}
}

// RenderVessel implements entity.Renderer
func (r *EngoRenderer) RenderVessel(v entity.VesselState, wind physics.Direction) {
	boat := r.getOrCreateBoat(v.ID)
	r.seen[v.ID] = true

	size := float32(r.assets.TileSize())
	centre := TileToScreen(v.Position, r.assets.TileSize())
	boat.SpaceComponent.Position = engo.Point{X: centre.X - size/2, Y: centre.Y - size/2}
	boat.RenderComponent.Drawable = r.assets.GetBoatSprite(v.Heading)
	boat.RenderComponent.Color = pointOfSailColor(physics.Classify(v.Heading, wind))
}

// Present implements entity.Renderer. Boats not drawn since Clear have left
// the game and are removed.
func (r *EngoRenderer) Present() {
	for id := range r.boats {
		if !r.seen[id] {
			r.RemoveVessel(id)
		}
	}
}

func (r *EngoRenderer) getOrCreateBoat(id entity.ID) *sprite {
	if boat, exists := r.boats[id]; exists {
		return boat
	}

	size := float32(r.assets.TileSize())
	boat := &sprite{
		BasicEntity: ecs.NewBasic(),
		RenderComponent: common.RenderComponent{
			Drawable: r.assets.GetBoatSprite(physics.East),
			Color:    color.White,
		},
		SpaceComponent: common.SpaceComponent{
			Width:  size,
			Height: size,
		},
	}
	boat.RenderComponent.SetZIndex(boatZIndex)
	r.boats[id] = boat
	r.renderSystem.Add(&boat.BasicEntity, &boat.RenderComponent, &boat.SpaceComponent)

	return boat
}

// RemoveVessel removes a boat from rendering
func (r *EngoRenderer) RemoveVessel(id entity.ID) {
	if boat, exists := r.boats[id]; exists {
		r.renderSystem.Remove(boat.BasicEntity)
		delete(r.boats, id)
	}
}

// pointOfSailColor tints the hull: white when running, shading to red in irons
func pointOfSailColor(p physics.PointOfSail) color.Color {
	switch p {
	case physics.Running:
		return color.White
	case physics.BroadReach:
		return color.RGBA{220, 255, 220, 255}
	case physics.BeamReach:
		return color.RGBA{255, 255, 180, 255}
	case physics.CloseHauled:
		return color.RGBA{255, 200, 120, 255}
	default:
		return color.RGBA{255, 110, 110, 255}
	}
}
