// Package barmesh keeps radial bar meshes on the GPU and draws them.
//
// All methods must be called from the thread that owns the OpenGL context.
// The store is the only writer of its buffers and draws on the same thread,
// so an index replacement is always complete before the next draw reads it.
package barmesh

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/radialbar/internal/engine/shader"
	"github.com/Faultbox/radialbar/pkg/math"
	"github.com/Faultbox/radialbar/pkg/radialbar"
)

// ErrUnknownMesh is returned for a handle the store never issued.
var ErrUnknownMesh = errors.New("unknown mesh handle")

// vertex is the interleaved GPU vertex layout.
type vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

type gpuMesh struct {
	vao, vbo, ebo uint32
	vertexCount   int
	indexCount    int32
}

// Store uploads bar meshes to OpenGL buffers and renders them with a solid
// color shader. It implements radialbar.MeshStore, radialbar.MaterialStore
// and scene.Drawer.
type Store struct {
	program *shader.Program

	meshes    map[radialbar.MeshHandle]*gpuMesh
	materials map[radialbar.MaterialHandle]radialbar.Color

	nextMesh     radialbar.MeshHandle
	nextMaterial radialbar.MaterialHandle

	log *zap.Logger
}

// NewStore compiles the bar shader. The OpenGL context must be current.
func NewStore(log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}

	program, err := shader.New(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("bar shader: %w", err)
	}

	return &Store{
		program:   program,
		meshes:    make(map[radialbar.MeshHandle]*gpuMesh),
		materials: make(map[radialbar.MaterialHandle]radialbar.Color),
		log:       log,
	}, nil
}

// CreateMesh uploads data into a new VAO with its own vertex and index buffers.
func (s *Store) CreateMesh(data radialbar.MeshData) (radialbar.MeshHandle, error) {
	n := data.VertexCount()
	if n == 0 || len(data.Normals) != n || len(data.UVs) != n {
		return 0, fmt.Errorf("mesh attributes disagree: %d positions, %d normals, %d uvs",
			n, len(data.Normals), len(data.UVs))
	}
	if err := checkIndices(data.Indices, n); err != nil {
		return 0, err
	}

	vertices := make([]vertex, n)
	for i := range vertices {
		vertices[i] = vertex{Position: data.Positions[i], Normal: data.Normals[i], TexCoord: data.UVs[i]}
	}

	m := &gpuMesh{vertexCount: n}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, n*vertexSize, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	uploadIndices(data.Indices)
	m.indexCount = int32(len(data.Indices))

	gl.BindVertexArray(0)

	s.nextMesh++
	s.meshes[s.nextMesh] = m

	s.log.Debug("bar mesh uploaded",
		zap.Uint32("mesh", uint32(s.nextMesh)),
		zap.Int("vertices", n),
		zap.Int32("indices", m.indexCount),
	)

	return s.nextMesh, nil
}

// ReplaceIndices re-uploads the index buffer of mesh h. The vertex buffer is untouched.
func (s *Store) ReplaceIndices(h radialbar.MeshHandle, indices []uint32) error {
	m, ok := s.meshes[h]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownMesh, h)
	}
	if err := checkIndices(indices, m.vertexCount); err != nil {
		return err
	}

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	uploadIndices(indices)
	gl.BindVertexArray(0)

	m.indexCount = int32(len(indices))
	return nil
}

// CreateSolidColorMaterial registers a flat color.
func (s *Store) CreateSolidColorMaterial(c radialbar.Color) (radialbar.MaterialHandle, error) {
	s.nextMaterial++
	s.materials[s.nextMaterial] = c
	return s.nextMaterial, nil
}

// Draw renders mesh with material. Meshes with an empty index buffer are skipped.
func (s *Store) Draw(mesh radialbar.MeshHandle, material radialbar.MaterialHandle, mvp math.Mat4) {
	m, ok := s.meshes[mesh]
	if !ok || m.indexCount == 0 {
		return
	}
	color := s.materials[material].Array()

	s.program.Use()
	gl.UniformMatrix4fv(s.program.Uniform("uMVP"), 1, false, mvp.Ptr())
	gl.Uniform4fv(s.program.Uniform("uColor"), 1, &color[0])

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Close releases every buffer and the shader program.
func (s *Store) Close() {
	for h, m := range s.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		delete(s.meshes, h)
	}
	s.program.Delete()
}

// uploadIndices writes indices into the bound element array buffer.
func uploadIndices(indices []uint32) {
	if len(indices) == 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
		return
	}
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.DYNAMIC_DRAW)
}

func checkIndices(indices []uint32, vertexCount int) error {
	if len(indices)%3 != 0 {
		return fmt.Errorf("%d indices is not a triangle list", len(indices))
	}
	for _, idx := range indices {
		if int(idx) >= vertexCount {
			return fmt.Errorf("index %d out of range for %d vertices", idx, vertexCount)
		}
	}
	return nil
}
