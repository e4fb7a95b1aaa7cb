package lights

import "github.com/tlecomte/go-raycaster/pkg/core"

// PointLight is a light emitting from a single position
type PointLight struct {
	Position core.Vec3
	Color    core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, color core.Vec3) PointLight {
	return PointLight{Position: position, Color: color}
}
