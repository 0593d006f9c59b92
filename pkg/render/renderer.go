// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-sail/pkg/entity"
	"github.com/opd-ai/go-sail/pkg/logging"
	"github.com/opd-ai/go-sail/pkg/physics"
)

// NullRenderer draws nothing and logs each call at debug level.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a NullRenderer with the default logger.
func NewNullRenderer() *NullRenderer {
	return NewNullRendererWithLogger(logging.NewLogger())
}

// NewNullRendererWithLogger creates a NullRenderer logging to logger.
func NewNullRendererWithLogger(logger *logging.Logger) *NullRenderer {
	return &NullRenderer{logger: logger.WithComponent("null_renderer")}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called")
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(context.Background(), "Present called")
}

// RenderVessel implements entity.Renderer.
func (d *NullRenderer) RenderVessel(v entity.VesselState, wind physics.Direction) {
	d.logger.Debug(context.Background(), "RenderVessel called",
		"vessel_id", uint64(v.ID),
		"name", v.Name,
		"heading", v.Heading.Name(),
		"point_of_sail", physics.Classify(v.Heading, wind).String(),
		"maneuver", uint8(v.Maneuver),
		"position", v.Position.String(),
	)
}
