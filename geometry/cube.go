package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// NewCube returns an axis aligned cube centered on the origin. Every face
// has its own four vertices so the normals stay flat.
func NewCube(size float32) (*MeshData, error) {
	if size <= 0 {
		return nil, errors.Errorf("cube size must be positive, got %v", size)
	}

	h := size / 2

	// corners
	a := mgl32.Vec3{h, h, h}
	b := mgl32.Vec3{-h, h, h}
	c := mgl32.Vec3{-h, -h, h}
	d := mgl32.Vec3{h, -h, h}
	e := mgl32.Vec3{h, h, -h}
	f := mgl32.Vec3{h, -h, -h}
	g := mgl32.Vec3{-h, -h, -h}
	k := mgl32.Vec3{-h, h, -h}

	mesh := &MeshData{
		Vertices: make([]float32, 0, 24*VertexStride),
		Indices:  make([]uint32, 0, 36),
	}

	// each quad is listed counter-clockwise seen from outside
	mesh.addQuad(mgl32.Vec3{0, 0, 1}, a, b, c, d)  // front
	mesh.addQuad(mgl32.Vec3{0, 0, -1}, k, e, f, g) // back
	mesh.addQuad(mgl32.Vec3{0, 1, 0}, e, k, b, a)  // top
	mesh.addQuad(mgl32.Vec3{0, -1, 0}, d, c, g, f) // bottom
	mesh.addQuad(mgl32.Vec3{-1, 0, 0}, b, k, g, c) // left
	mesh.addQuad(mgl32.Vec3{1, 0, 0}, e, a, d, f)  // right

	return mesh, nil
}

func (d *MeshData) addQuad(normal, p0, p1, p2, p3 mgl32.Vec3) {
	offset := uint32(d.VertexCount())

	d.addVertex(p0, normal)
	d.addVertex(p1, normal)
	d.addVertex(p2, normal)
	d.addVertex(p3, normal)

	d.Indices = append(d.Indices,
		offset, offset+1, offset+2,
		offset+2, offset+3, offset)
}
