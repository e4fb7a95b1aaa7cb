package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleUniformHemisphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	normals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(0, 0, -1),
		NewVec3(1, 0, 0),
		NewVec3(1, 1, 1).Normalize(),
	}

	for _, normal := range normals {
		for i := 0; i < 1000; i++ {
			dir := SampleUniformHemisphere(normal, random)

			if math.Abs(dir.Length()-1) > 1e-9 {
				t.Fatalf("Expected unit direction, got length %f", dir.Length())
			}
			if dir.Dot(normal) < 0 {
				t.Fatalf("Sample %v falls below the hemisphere of %v", dir, normal)
			}
		}
	}
}

func TestSampleUniformHemisphere_CoversHemisphere(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	normal := NewVec3(0, 0, 1)

	// The average of uniform hemisphere samples converges to (0, 0, 1/2)
	sum := Vec3{}
	const n = 20000
	for i := 0; i < n; i++ {
		sum = sum.Add(SampleUniformHemisphere(normal, random))
	}
	mean := sum.Multiply(1.0 / n)

	if math.Abs(mean.X) > 0.02 || math.Abs(mean.Y) > 0.02 {
		t.Errorf("Expected lateral mean near zero, got %v", mean)
	}
	if math.Abs(mean.Z-0.5) > 0.02 {
		t.Errorf("Expected mean Z near 0.5, got %f", mean.Z)
	}
}

func TestOrthonormalBasis(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(0, 0, -1),
		NewVec3(0.3, -0.8, 0.5).Normalize(),
	}
	for _, n := range normals {
		tangent, bitangent := OrthonormalBasis(n)
		if math.Abs(tangent.Dot(n)) > 1e-9 || math.Abs(bitangent.Dot(n)) > 1e-9 ||
			math.Abs(tangent.Dot(bitangent)) > 1e-9 {
			t.Errorf("Basis for %v is not orthogonal", n)
		}
		if math.Abs(tangent.Length()-1) > 1e-9 || math.Abs(bitangent.Length()-1) > 1e-9 {
			t.Errorf("Basis for %v is not unit length", n)
		}
	}
}

func TestPixelSeed_Distinct(t *testing.T) {
	seen := make(map[int64]bool)
	for pass := 0; pass < 10; pass++ {
		for row := 0; row < 100; row++ {
			seed := PixelSeed(pass, row)
			if seen[seed] {
				t.Fatalf("Duplicate seed for pass %d row %d", pass, row)
			}
			seen[seed] = true
		}
	}
}
