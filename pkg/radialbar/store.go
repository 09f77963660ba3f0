package radialbar

// MeshHandle identifies a mesh owned by a MeshStore. Bars never look inside it.
type MeshHandle uint32

// MaterialHandle identifies a material owned by a MaterialStore.
type MaterialHandle uint32

// MeshData is a triangle-list mesh with per-vertex attributes, ready for upload.
type MeshData struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Indices   []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m MeshData) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles described by Indices.
func (m MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// MeshStore owns mesh buffers on behalf of bars.
// ReplaceIndices must swap the index buffer atomically with respect to readers.
type MeshStore interface {
	CreateMesh(data MeshData) (MeshHandle, error)
	ReplaceIndices(h MeshHandle, indices []uint32) error
}

// MaterialStore owns materials on behalf of bars.
type MaterialStore interface {
	CreateSolidColorMaterial(c Color) (MaterialHandle, error)
}
