package entity

import "github.com/opd-ai/go-sail/pkg/physics"

// Renderer draws vessels. It only ever sees snapshots.
type Renderer interface {
	RenderVessel(v VesselState, wind physics.Direction)
	Clear()
	Present()
}
