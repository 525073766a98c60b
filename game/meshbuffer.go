package game

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"github.com/aadium/TriyamiRender/geometry"
)

const (
	sizeofFloat = 4
	sizeofUint  = 4
)

// MeshBuffer is mesh data living on the gpu: one vertex array object
// with an interleaved vertex buffer and an element buffer.
type MeshBuffer struct {
	VertexArrayObject uint32
	VertexBuffer      uint32
	FaceBuffer        uint32

	IndexCount int32
	Bounds     geometry.Bounds
}

// NewMeshBuffer uploads d once, the data is not kept on the cpu side.
func NewMeshBuffer(d *geometry.MeshData) (*MeshBuffer, error) {
	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(err, "mesh data")
	}
	if len(d.Indices) == 0 {
		return nil, errors.New("mesh data has no triangles")
	}

	b := &MeshBuffer{
		IndexCount: int32(len(d.Indices)),
		Bounds:     d.Bounds(),
	}

	// init vertex buffers
	gl.GenVertexArrays(1, &b.VertexArrayObject) // vao
	gl.GenBuffers(1, &b.VertexBuffer)           // vbo
	gl.GenBuffers(1, &b.FaceBuffer)             // ebo

	gl.BindVertexArray(b.VertexArrayObject)

	gl.BindBuffer(gl.ARRAY_BUFFER, b.VertexBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(d.Vertices)*sizeofFloat, gl.Ptr(d.Vertices), gl.STATIC_DRAW)

	// the element buffer binding is stored in the vao
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.FaceBuffer)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(d.Indices)*sizeofUint, gl.Ptr(d.Indices), gl.STATIC_DRAW)

	stride := int32(geometry.VertexStride * sizeofFloat)

	// position
	gl.VertexAttribPointer(geometry.PositionLocation, 3, gl.FLOAT, false, stride, gl.PtrOffset(geometry.PositionOffset*sizeofFloat))
	gl.EnableVertexAttribArray(geometry.PositionLocation)

	// normal
	gl.VertexAttribPointer(geometry.NormalLocation, 3, gl.FLOAT, false, stride, gl.PtrOffset(geometry.NormalOffset*sizeofFloat))
	gl.EnableVertexAttribArray(geometry.NormalLocation)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return b, nil
}

func (b *MeshBuffer) Draw() {
	gl.BindVertexArray(b.VertexArrayObject)
	gl.DrawElements(gl.TRIANGLES, b.IndexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (b *MeshBuffer) Cleanup() {
	if b.VertexBuffer != 0 {
		gl.DeleteBuffers(1, &b.VertexBuffer)
		b.VertexBuffer = 0
	}

	if b.FaceBuffer != 0 {
		gl.DeleteBuffers(1, &b.FaceBuffer)
		b.FaceBuffer = 0
	}

	if b.VertexArrayObject != 0 {
		gl.DeleteVertexArrays(1, &b.VertexArrayObject)
		b.VertexArrayObject = 0
	}
}
