package renderer

import (
	"math"

	"github.com/tlecomte/go-raycaster/pkg/core"
)

// Camera is a pinhole camera generating one primary ray per normalized
// screen coordinate. The image plane sits at planeDistance in front of
// the position, facing the target.
type Camera struct {
	position      core.Vec3
	forward       core.Vec3
	right         core.Vec3
	up            core.Vec3
	planeDistance float64
	planeWidth    float64
	planeHeight   float64
}

// NewCamera creates a camera at the given position looking at the target
func NewCamera(position, target core.Vec3, planeDistance, planeWidth, planeHeight float64) Camera {
	forward := target.Subtract(position).Normalize()

	worldUp := core.NewVec3(0, 0, 1)
	if math.Abs(forward.Z) > 0.999 {
		worldUp = core.NewVec3(0, 1, 0)
	}
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward)

	return Camera{
		position:      position,
		forward:       forward,
		right:         right,
		up:            up,
		planeDistance: planeDistance,
		planeWidth:    planeWidth,
		planeHeight:   planeHeight,
	}
}

// Position returns the camera origin
func (c Camera) Position() core.Vec3 {
	return c.position
}

// GetRay returns the primary ray for normalized screen coordinates
// (u, v) in [0,1]², with v growing downward.
func (c Camera) GetRay(u, v float64) core.Ray {
	point := c.position.
		Add(c.forward.Multiply(c.planeDistance)).
		Add(c.right.Multiply((u - 0.5) * c.planeWidth)).
		Add(c.up.Multiply((0.5 - v) * c.planeHeight))
	return core.NewRay(c.position, point.Subtract(c.position))
}

// TranslateLocal moves the camera along its own axes: x right, y
// forward, z up.
func (c *Camera) TranslateLocal(t core.Vec3) {
	c.position = c.position.
		Add(c.right.Multiply(t.X)).
		Add(c.forward.Multiply(t.Y)).
		Add(c.up.Multiply(t.Z))
}
