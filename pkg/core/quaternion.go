package core

import "math"

// Quaternion represents a rotation quaternion (w + xi + yj + zk)
type Quaternion struct {
	W, X, Y, Z float64
}

// IdentityQuaternion returns the identity rotation
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// NewQuaternion creates a rotation of angle radians around the given axis.
// A zero axis yields the identity rotation.
func NewQuaternion(axis Vec3, angle float64) Quaternion {
	n := axis.Normalize()
	if n.IsZero() {
		return IdentityQuaternion()
	}
	s := math.Sin(angle / 2)
	return Quaternion{
		W: math.Cos(angle / 2),
		X: n.X * s,
		Y: n.Y * s,
		Z: n.Z * s,
	}
}

// Rotate applies the rotation to a vector
func (q Quaternion) Rotate(v Vec3) Vec3 {
	// v' = v + 2*qv x (qv x v + w*v)
	qv := Vec3{q.X, q.Y, q.Z}
	t := qv.Cross(v).Add(v.Multiply(q.W))
	return v.Add(qv.Cross(t).Multiply(2))
}

// Multiply composes two rotations (this applied after other)
func (q Quaternion) Multiply(other Quaternion) Quaternion {
	return Quaternion{
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
	}
}
