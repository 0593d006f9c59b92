// pkg/render/engo/camera.go
package engo

import (
	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
)

// CameraSystem keeps the player's boat in the middle of the window
type CameraSystem struct {
	// Target to follow, in screen pixels
	target    engo.Point
	targetSet bool

	// Camera properties
	zoom    float32
	minZoom float32
	maxZoom float32

	// Smooth following
	followSpeed float32
	smoothing   bool

	// Current camera state
	currentPos engo.Point
	placed     bool
}

// NewCameraSystem creates a new camera system
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{
		zoom:        1.0,
		minZoom:     0.25,
		maxZoom:     4.0,
		followSpeed: 8.0,
		smoothing:   true,
	}
}

// Remove satisfies the ecs.System interface
func (cs *CameraSystem) Remove(basic ecs.BasicEntity) {}

// Update moves the camera toward its target and applies zoom
func (cs *CameraSystem) Update(dt float32) {
	cs.handleZoomInput()

	if cs.targetSet {
		cs.updateCameraPosition(dt)
	}

	cs.applyCameraTransform()
}

func (cs *CameraSystem) handleZoomInput() {
	if engo.Input.Button(buttonZoomIn).Down() {
		cs.SetZoom(cs.zoom * 1.02)
	}
	if engo.Input.Button(buttonZoomOut).Down() {
		cs.SetZoom(cs.zoom * 0.98)
	}
	if engo.Input.Button(buttonResetZoom).JustPressed() {
		cs.SetZoom(1.0)
	}
}

// updateCameraPosition eases the camera toward the target. A boat moves a
// whole tile per action, so without easing the view would jump.
func (cs *CameraSystem) updateCameraPosition(dt float32) {
	if !cs.smoothing {
		cs.currentPos = cs.target
		return
	}

	step := cs.followSpeed * dt
	if step > 1 {
		step = 1
	}
	cs.currentPos.X += (cs.target.X - cs.currentPos.X) * step
	cs.currentPos.Y += (cs.target.Y - cs.currentPos.Y) * step
}

func (cs *CameraSystem) applyCameraTransform() {
	engo.Mailbox.Dispatch(common.CameraMessage{Axis: common.XAxis, Value: cs.currentPos.X})
	engo.Mailbox.Dispatch(common.CameraMessage{Axis: common.YAxis, Value: cs.currentPos.Y})
	engo.Mailbox.Dispatch(common.CameraMessage{Axis: common.ZAxis, Value: 1 / cs.zoom})
}

// SetTarget sets the point the camera follows. The first target is taken
// immediately.
func (cs *CameraSystem) SetTarget(target engo.Point) {
	cs.target = target
	cs.targetSet = true

	if !cs.smoothing || !cs.placed {
		cs.currentPos = target
		cs.placed = true
	}
}

// ClearTarget stops following
func (cs *CameraSystem) ClearTarget() {
	cs.targetSet = false
}

// SetZoom sets the camera zoom level
func (cs *CameraSystem) SetZoom(zoom float32) {
	cs.zoom = cs.clampZoom(zoom)
}

// GetZoom returns the current zoom level
func (cs *CameraSystem) GetZoom() float32 {
	return cs.zoom
}

func (cs *CameraSystem) clampZoom(zoom float32) float32 {
	if zoom < cs.minZoom {
		return cs.minZoom
	}
	if zoom > cs.maxZoom {
		return cs.maxZoom
	}
	return zoom
}

// SetFollowSpeed sets how quickly the camera closes on its target
func (cs *CameraSystem) SetFollowSpeed(speed float32) {
	cs.followSpeed = speed
}

// EnableSmoothing enables or disables camera easing
func (cs *CameraSystem) EnableSmoothing(enabled bool) {
	cs.smoothing = enabled
}

// GetCurrentPosition returns the current camera position
func (cs *CameraSystem) GetCurrentPosition() engo.Point {
	return cs.currentPos
}

// WorldToScreen converts a pixel position in the world to window
// coordinates for a window of the given size
func (cs *CameraSystem) WorldToScreen(p engo.Point, width, height float32) engo.Point {
	return engo.Point{
		X: (p.X-cs.currentPos.X)*cs.zoom + width/2,
		Y: (p.Y-cs.currentPos.Y)*cs.zoom + height/2,
	}
}

// ScreenToWorld is the inverse of WorldToScreen
func (cs *CameraSystem) ScreenToWorld(p engo.Point, width, height float32) engo.Point {
	return engo.Point{
		X: (p.X-width/2)/cs.zoom + cs.currentPos.X,
		Y: (p.Y-height/2)/cs.zoom + cs.currentPos.Y,
	}
}

// SetZoomLimits sets the minimum and maximum zoom levels
func (cs *CameraSystem) SetZoomLimits(min, max float32) {
	cs.minZoom = min
	cs.maxZoom = max
	cs.zoom = cs.clampZoom(cs.zoom)
}

// GetZoomLimits returns the current zoom limits
func (cs *CameraSystem) GetZoomLimits() (float32, float32) {
	return cs.minZoom, cs.maxZoom
}
