package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-5

func assertVec3(t *testing.T, expected, actual mgl32.Vec3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], delta, msgAndArgs...)
	}
}

func TestSphereVertices(t *testing.T) {
	tests := []struct {
		Radius          float32
		Sectors, Stacks int
	}{
		{1, 3, 2},
		{0.4, 8, 4},
		{0.4, 216, 108},
		{2.5, 36, 18},
	}

	for _, c := range tests {
		v := SphereVertices(c.Radius, c.Sectors, c.Stacks)
		d := &MeshData{Vertices: v}

		require.Len(t, v, (c.Stacks+1)*(c.Sectors+1)*VertexStride)

		for i := 0; i < d.VertexCount(); i++ {
			p, n := d.Position(i), d.Normal(i)
			assert.InDelta(t, c.Radius, p.Len(), tolerance, "vertex %d not on sphere surface", i)
			assert.InDelta(t, 1, n.Len(), tolerance, "normal %d not unit length", i)
			assertVec3(t, p.Mul(1/c.Radius), n, tolerance, "normal %d not radial", i)
		}
	}
}

func TestSphereVertices_Poles(t *testing.T) {
	d := &MeshData{Vertices: SphereVertices(1, 4, 2)}

	// first row is the north pole, last row the south pole
	for j := 0; j <= 4; j++ {
		assertVec3(t, mgl32.Vec3{0, 0, 1}, d.Position(j), tolerance)
		assertVec3(t, mgl32.Vec3{0, 0, -1}, d.Position(2*5+j), tolerance)
	}

	// equator starts on the x axis
	assertVec3(t, mgl32.Vec3{1, 0, 0}, d.Position(5), tolerance)
	assertVec3(t, mgl32.Vec3{0, 1, 0}, d.Position(6), tolerance)
}

func TestSphereIndices(t *testing.T) {
	tests := []struct {
		Sectors, Stacks int
		Expected        int // triangles
	}{
		{3, 2, 6},
		{4, 3, 16},
		{216, 108, 2 * 216 * 107},
	}

	for _, c := range tests {
		idx := SphereIndices(c.Sectors, c.Stacks)
		assert.Len(t, idx, c.Expected*3, "SphereIndices(%d, %d)", c.Sectors, c.Stacks)

		limit := uint32((c.Stacks + 1) * (c.Sectors + 1))
		for _, i := range idx {
			require.Less(t, i, limit)
		}
	}
}

func TestSphereIndices_FirstQuads(t *testing.T) {
	idx := SphereIndices(4, 3)

	// top stack: only the lower triangle of each quad
	assert.Equal(t, []uint32{1, 5, 6}, idx[:3])
	// middle stack: both triangles
	assert.Equal(t, []uint32{5, 10, 6, 6, 10, 11}, idx[12:18])
}

func TestSphere_OutwardWinding(t *testing.T) {
	d, err := NewSphere(1, 12, 6)
	require.NoError(t, err)
	require.NoError(t, d.Validate())

	for i := 0; i < d.TriangleCount(); i++ {
		a := d.Position(int(d.Indices[i*3]))
		b := d.Position(int(d.Indices[i*3+1]))
		c := d.Position(int(d.Indices[i*3+2]))

		n := b.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(b).Add(c).Mul(1.0 / 3)
		assert.Greater(t, n.Dot(centroid), float32(0), "triangle %d faces inward", i)
	}
}

func TestNewSphere_Invalid(t *testing.T) {
	tests := []struct {
		Radius          float32
		Sectors, Stacks int
	}{
		{0, 8, 4},
		{-1, 8, 4},
		{1, 2, 4},
		{1, 8, 1},
	}

	for _, c := range tests {
		_, err := NewSphere(c.Radius, c.Sectors, c.Stacks)
		assert.Error(t, err, "NewSphere(%v, %d, %d)", c.Radius, c.Sectors, c.Stacks)
	}
}

func TestNewCube(t *testing.T) {
	d, err := NewCube(2)
	require.NoError(t, err)
	require.NoError(t, d.Validate())

	assert.Equal(t, 24, d.VertexCount())
	assert.Equal(t, 12, d.TriangleCount())

	for i := 0; i < d.TriangleCount(); i++ {
		a := d.Position(int(d.Indices[i*3]))
		b := d.Position(int(d.Indices[i*3+1]))
		c := d.Position(int(d.Indices[i*3+2]))

		face := b.Sub(a).Cross(c.Sub(a)).Normalize()
		assertVec3(t, d.Normal(int(d.Indices[i*3])), face, tolerance, "triangle %d winding", i)
	}

	_, err = NewCube(0)
	assert.Error(t, err)
}

func TestMeshData_Bounds(t *testing.T) {
	d, err := NewSphere(0.4, 16, 8)
	require.NoError(t, err)

	b := d.Bounds()
	assert.InDelta(t, 0.4, b.Max[2], tolerance)
	assert.InDelta(t, -0.4, b.Min[2], tolerance)
	assert.InDelta(t, 0.4, b.Max[0], tolerance)

	center, radius := b.Sphere()
	assertVec3(t, mgl32.Vec3{}, center, tolerance)
	assert.InDelta(t, 0.4*1.7320508, radius, 1e-3)
}

func TestMeshData_Validate(t *testing.T) {
	tests := []struct {
		Data  MeshData
		Valid bool
	}{
		{MeshData{Vertices: make([]float32, 18), Indices: []uint32{0, 1, 2}}, true},
		{MeshData{Vertices: make([]float32, 18), Indices: []uint32{0, 1, 3}}, false},
		{MeshData{Vertices: make([]float32, 18), Indices: []uint32{0, 1}}, false},
		{MeshData{Vertices: make([]float32, 17), Indices: []uint32{0, 1, 2}}, false},
	}

	for i, c := range tests {
		err := c.Data.Validate()
		assert.Equal(t, c.Valid, err == nil, "case %d: %v", i, err)
	}
}

func BenchmarkNewSphere(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewSphere(0.4, 216, 108)
	}
}
