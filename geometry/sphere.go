package geometry

import (
	m "math"

	"github.com/pkg/errors"
)

/*
	uv sphere around the origin, poles on the z axis

	stack i runs from the north pole (stackAngle pi/2) to the south pole (-pi/2),
	sector j runs once around the z axis. the first and last column of every
	stack share their position so the seam has its own vertices.
*/

// SphereVertices returns (stacks+1)*(sectors+1) interleaved position/normal vertices.
func SphereVertices(radius float32, sectors, stacks int) []float32 {
	vertices := make([]float32, 0, (stacks+1)*(sectors+1)*VertexStride)

	lengthInv := 1 / float64(radius)
	sectorStep := 2 * m.Pi / float64(sectors)
	stackStep := m.Pi / float64(stacks)

	for i := 0; i <= stacks; i++ {
		stackAngle := m.Pi/2 - float64(i)*stackStep
		xy := float64(radius) * m.Cos(stackAngle)
		z := float64(radius) * m.Sin(stackAngle)

		for j := 0; j <= sectors; j++ {
			sectorAngle := float64(j) * sectorStep

			x := xy * m.Cos(sectorAngle)
			y := xy * m.Sin(sectorAngle)

			vertices = append(vertices,
				float32(x), float32(y), float32(z),
				float32(x*lengthInv), float32(y*lengthInv), float32(z*lengthInv))
		}
	}

	return vertices
}

// SphereIndices returns counter-clockwise triangles for a sphere built by
// SphereVertices. The pole stacks get a single triangle per sector.
func SphereIndices(sectors, stacks int) []uint32 {
	indices := make([]uint32, 0, 6*sectors*(stacks-1))

	for i := 0; i < stacks; i++ {
		k1 := uint32(i * (sectors + 1))
		k2 := k1 + uint32(sectors) + 1

		for j := 0; j < sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				indices = append(indices, k1, k2, k1+1)
			}

			if i != stacks-1 {
				indices = append(indices, k1+1, k2, k2+1)
			}
		}
	}

	return indices
}

func NewSphere(radius float32, sectors, stacks int) (*MeshData, error) {
	if radius <= 0 {
		return nil, errors.Errorf("sphere radius must be positive, got %v", radius)
	}
	if sectors < 3 {
		return nil, errors.Errorf("sphere needs at least 3 sectors, got %d", sectors)
	}
	if stacks < 2 {
		return nil, errors.Errorf("sphere needs at least 2 stacks, got %d", stacks)
	}

	return &MeshData{
		Vertices: SphereVertices(radius, sectors, stacks),
		Indices:  SphereIndices(sectors, stacks),
	}, nil
}
