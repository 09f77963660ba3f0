package radialbar

import (
	"github.com/Faultbox/radialbar/pkg/math"
)

// FullRotation is one full turn in radians.
const FullRotation float32 = 6.28318530718

// Normal is the face normal assigned to every vertex of a bar (flat 2D shading).
var Normal = math.Vec3{X: 0, Y: 0, Z: 1}

// UV is the texture coordinate assigned to every vertex of a bar. Bars are
// untextured, so the value is a placeholder.
var UV = math.Vec2{X: 0, Y: 1}

// GenerateVertices builds the vertex ring of an annulus centered on the origin.
// For every segment i it emits the outer vertex (index 2i) followed by the
// inner vertex (index 2i+1), both rotated by i/segmentCount of a full turn.
// The first segment points along +Y.
func GenerateVertices(circleRadius, holeRadius float32, segmentCount int) []math.Vec3 {
	if segmentCount <= 0 {
		return []math.Vec3{}
	}

	vertices := make([]math.Vec3, 0, 2*segmentCount)
	outer := math.Vec3{X: 0, Y: circleRadius, Z: 0}
	inner := math.Vec3{X: 0, Y: holeRadius, Z: 0}

	for i := range segmentCount {
		angle := (float32(i) / float32(segmentCount)) * FullRotation
		vertices = append(vertices, outer.RotateZ(angle), inner.RotateZ(angle))
	}

	return vertices
}

// BuildMeshData packs vertex positions with the constant bar normal and UV
// and the flattened triangle indices into a store-ready buffer.
func BuildMeshData(vertices []math.Vec3, triangles []Triangle) MeshData {
	data := MeshData{
		Positions: make([][3]float32, len(vertices)),
		Normals:   make([][3]float32, len(vertices)),
		UVs:       make([][2]float32, len(vertices)),
		Indices:   FlattenIndices(triangles),
	}

	normal := Normal.Array()
	uv := UV.Array()
	for i, v := range vertices {
		data.Positions[i] = v.Array()
		data.Normals[i] = normal
		data.UVs[i] = uv
	}

	return data
}
