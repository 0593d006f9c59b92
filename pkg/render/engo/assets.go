// pkg/render/engo/assets.go
package engo

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-sail/pkg/physics"
)

var (
	hullColor  = color.NRGBA{R: 240, G: 230, B: 200, A: 255}
	waterColor = color.RGBA{R: 20, G: 60, B: 110, A: 255}
	landColor  = color.RGBA{R: 90, G: 80, B: 50, A: 255}
)

// AssetManager handles creating and caching game textures
type AssetManager struct {
	tileSize int

	// Boat sprites by heading
	boatSprites map[physics.Direction]common.Drawable
}

// NewAssetManager creates an asset manager for tiles of tileSize pixels
func NewAssetManager(tileSize int) *AssetManager {
	if tileSize < 4 {
		tileSize = 4
	}
	return &AssetManager{
		tileSize:    tileSize,
		boatSprites: make(map[physics.Direction]common.Drawable),
	}
}

// LoadAssets uploads every texture. It needs a GL context, so call it from
// a scene's Setup.
func (am *AssetManager) LoadAssets() error {
	for _, d := range physics.AllDirections() {
		am.boatSprites[d] = am.convertToEngoTexture(am.boatImage(d))
	}
	return nil
}

// boatImage draws a hull pointing along heading: a triangle with its bow
// at the tile edge and the stern corners swept back 140 degrees.
func (am *AssetManager) boatImage(heading physics.Direction) *image.NRGBA {
	size := am.tileSize
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	c := float64(size) / 2
	r := c * 0.9
	// Screen y grows downward, so the angle is negated
	theta := float64(heading) * math.Pi / 4
	corner := func(angle, radius float64) [2]float64 {
		return [2]float64{c + radius*math.Cos(angle), c - radius*math.Sin(angle)}
	}
	bow := corner(theta, r)
	port := corner(theta+140*math.Pi/180, r*0.7)
	starboard := corner(theta-140*math.Pi/180, r*0.7)

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := [2]float64{float64(x) + 0.5, float64(y) + 0.5}
			if inTriangle(p, bow, port, starboard) {
				img.SetNRGBA(x, y, hullColor)
			}
		}
	}
	return img
}

func inTriangle(p, a, b, c [2]float64) bool {
	cross := func(o, u, v [2]float64) float64 {
		return (u[0]-o[0])*(v[1]-o[1]) - (u[1]-o[1])*(v[0]-o[0])
	}
	d1 := cross(a, b, p)
	d2 := cross(b, c, p)
	d3 := cross(c, a, p)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// convertToEngoTexture converts an image to an Engo-compatible texture.
func (am *AssetManager) convertToEngoTexture(img *image.NRGBA) common.Drawable {
	texture := common.NewImageObject(img)
	return common.NewTextureSingle(texture)
}

// GetBoatSprite returns the sprite for a heading
func (am *AssetManager) GetBoatSprite(heading physics.Direction) common.Drawable {
	if sprite, exists := am.boatSprites[heading]; exists {
		return sprite
	}
	return am.boatSprites[physics.East]
}

// TileSize returns the sprite edge length in pixels
func (am *AssetManager) TileSize() int {
	return am.tileSize
}
