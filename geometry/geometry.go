// Package geometry generates indexed triangle meshes on the cpu side,
// ready to be uploaded into vertex and index buffers.
package geometry

import (
	m "math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

const (
	// floats per vertex: position (3) followed by normal (3)
	VertexStride = 6

	PositionOffset = 0
	NormalOffset   = 3

	PositionLocation = 0
	NormalLocation   = 1
)

// MeshData holds interleaved vertex attributes and triangle indices.
type MeshData struct {
	Vertices []float32
	Indices  []uint32
}

func (d *MeshData) VertexCount() int {
	return len(d.Vertices) / VertexStride
}

func (d *MeshData) TriangleCount() int {
	return len(d.Indices) / 3
}

// Position returns the position of vertex i.
func (d *MeshData) Position(i int) mgl32.Vec3 {
	o := i*VertexStride + PositionOffset
	return mgl32.Vec3{d.Vertices[o], d.Vertices[o+1], d.Vertices[o+2]}
}

// Normal returns the normal of vertex i.
func (d *MeshData) Normal(i int) mgl32.Vec3 {
	o := i*VertexStride + NormalOffset
	return mgl32.Vec3{d.Vertices[o], d.Vertices[o+1], d.Vertices[o+2]}
}

func (d *MeshData) addVertex(position, normal mgl32.Vec3) {
	d.Vertices = append(d.Vertices,
		position[0], position[1], position[2],
		normal[0], normal[1], normal[2])
}

// Validate checks that every index refers to an existing vertex and
// that the index list describes whole triangles.
func (d *MeshData) Validate() error {
	if len(d.Vertices)%VertexStride != 0 {
		return errors.Errorf("vertex data length %d is not a multiple of %d", len(d.Vertices), VertexStride)
	}
	if len(d.Indices)%3 != 0 {
		return errors.Errorf("index count %d is not a multiple of 3", len(d.Indices))
	}

	n := uint32(d.VertexCount())
	for i, idx := range d.Indices {
		if idx >= n {
			return errors.Errorf("index %d at %d out of range (%d vertices)", idx, i, n)
		}
	}
	return nil
}

// Bounds is an axis aligned bounding box.
type Bounds struct {
	Min, Max mgl32.Vec3
}

func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Sphere returns the bounding sphere enclosing the box.
func (b Bounds) Sphere() (center mgl32.Vec3, radius float32) {
	center = b.Center()
	return center, b.Max.Sub(center).Len()
}

func (d *MeshData) Bounds() Bounds {
	inf := float32(m.Inf(1))
	b := Bounds{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}

	for i := 0; i < d.VertexCount(); i++ {
		p := d.Position(i)
		for a := 0; a < 3; a++ {
			if p[a] < b.Min[a] {
				b.Min[a] = p[a]
			}
			if p[a] > b.Max[a] {
				b.Max[a] = p[a]
			}
		}
	}

	return b
}
