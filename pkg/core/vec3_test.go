package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, 7, 9)},
		{"Subtract", b.Subtract(a), NewVec3(3, 3, 3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, 10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Clamp", NewVec3(-1, 0.5, 2).Clamp(0, 1), NewVec3(0, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotCross(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)

	if got := a.Dot(b); got != 0 {
		t.Errorf("Expected orthogonal dot product 0, got %f", got)
	}
	if got := a.Dot(a); got != 1 {
		t.Errorf("Expected dot product 1, got %f", got)
	}

	cross := a.Cross(b)
	if !cross.Equals(NewVec3(0, 0, 1)) {
		t.Errorf("Expected cross product {0,0,1}, got %v", cross)
	}
}

func TestVec3_LengthNormalize(t *testing.T) {
	v := NewVec3(3, 4, 0)

	if got := v.Length(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Expected length 5, got %f", got)
	}
	if got := v.LengthSquared(); math.Abs(got-25) > 1e-12 {
		t.Errorf("Expected squared length 25, got %f", got)
	}

	n := v.Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", n.Length())
	}

	// Normalizing zero returns zero rather than NaN
	zero := Vec3{}.Normalize()
	if !zero.IsZero() {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 2, 0))
	point := ray.At(2)
	if !point.Equals(NewVec3(1, 4, 0)) {
		t.Errorf("Expected {1,4,0}, got %v", point)
	}
}
