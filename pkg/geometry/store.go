package geometry

import (
	"github.com/tlecomte/go-raycaster/pkg/core"
)

// storeChunkSize is the capacity of each chunk in the vertex stores.
const storeChunkSize = 256

// vec3Store is an append-only, pointer-stable container of Vec3 values.
// Elements are allocated in fixed-capacity chunks that never relocate,
// so pointers handed out by append remain valid as the store grows.
type vec3Store struct {
	chunks [][]core.Vec3
	count  int
}

func (s *vec3Store) append(v core.Vec3) *core.Vec3 {
	n := len(s.chunks)
	if n == 0 || len(s.chunks[n-1]) == cap(s.chunks[n-1]) {
		s.chunks = append(s.chunks, make([]core.Vec3, 0, storeChunkSize))
		n++
	}
	chunk := &s.chunks[n-1]
	*chunk = append(*chunk, v)
	s.count++
	return &(*chunk)[len(*chunk)-1]
}

func (s *vec3Store) at(i int) *core.Vec3 {
	return &s.chunks[i/storeChunkSize][i%storeChunkSize]
}

func (s *vec3Store) len() int {
	return s.count
}

func (s *vec3Store) forEach(f func(v *core.Vec3)) {
	for ci := range s.chunks {
		chunk := s.chunks[ci]
		for i := range chunk {
			f(&chunk[i])
		}
	}
}

// vec2Store is the Vec2 counterpart of vec3Store, used for texture
// coordinates.
type vec2Store struct {
	chunks [][]core.Vec2
	count  int
}

func (s *vec2Store) append(v core.Vec2) *core.Vec2 {
	n := len(s.chunks)
	if n == 0 || len(s.chunks[n-1]) == cap(s.chunks[n-1]) {
		s.chunks = append(s.chunks, make([]core.Vec2, 0, storeChunkSize))
		n++
	}
	chunk := &s.chunks[n-1]
	*chunk = append(*chunk, v)
	s.count++
	return &(*chunk)[len(*chunk)-1]
}

func (s *vec2Store) at(i int) *core.Vec2 {
	return &s.chunks[i/storeChunkSize][i%storeChunkSize]
}

func (s *vec2Store) len() int {
	return s.count
}
