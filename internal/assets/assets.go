// Package assets holds bar meshes and materials in memory for headless hosts and tools.
package assets

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Faultbox/radialbar/pkg/radialbar"
)

var (
	// ErrUnknownMesh is returned for a handle the store never issued or already released.
	ErrUnknownMesh = errors.New("unknown mesh handle")
	// ErrUnknownMaterial is returned for a material handle the store never issued.
	ErrUnknownMaterial = errors.New("unknown material handle")
	// ErrIndexOutOfRange is returned when an index buffer references a missing vertex.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrMalformedMesh is returned when vertex attributes disagree in length
	// or the index count is not a multiple of three.
	ErrMalformedMesh = errors.New("malformed mesh")
)

// Store is a thread-safe in-memory mesh and material store.
// Index replacements swap in a private copy under the write lock, so readers
// never observe a partially written buffer.
type Store struct {
	meshes    map[radialbar.MeshHandle]radialbar.MeshData
	materials map[radialbar.MaterialHandle]radialbar.Color
	mu        sync.RWMutex

	nextMesh     radialbar.MeshHandle
	nextMaterial radialbar.MaterialHandle

	// Stats
	replacements int
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		meshes:    make(map[radialbar.MeshHandle]radialbar.MeshData),
		materials: make(map[radialbar.MaterialHandle]radialbar.Color),
	}
}

// CreateMesh stores a copy of data and returns its handle.
func (s *Store) CreateMesh(data radialbar.MeshData) (radialbar.MeshHandle, error) {
	if err := validate(data); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextMesh++
	s.meshes[s.nextMesh] = cloneMesh(data)
	return s.nextMesh, nil
}

// ReplaceIndices swaps the index buffer of mesh h.
func (s *Store) ReplaceIndices(h radialbar.MeshHandle, indices []uint32) error {
	owned := make([]uint32, len(indices))
	copy(owned, indices)

	s.mu.Lock()
	defer s.mu.Unlock()

	mesh, ok := s.meshes[h]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownMesh, h)
	}
	if err := checkIndices(owned, mesh.VertexCount()); err != nil {
		return err
	}

	mesh.Indices = owned
	s.meshes[h] = mesh
	s.replacements++
	return nil
}

// CreateSolidColorMaterial registers a flat color material.
func (s *Store) CreateSolidColorMaterial(c radialbar.Color) (radialbar.MaterialHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextMaterial++
	s.materials[s.nextMaterial] = c
	return s.nextMaterial, nil
}

// Mesh returns a snapshot of mesh h.
func (s *Store) Mesh(h radialbar.MeshHandle) (radialbar.MeshData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mesh, ok := s.meshes[h]
	if !ok {
		return radialbar.MeshData{}, fmt.Errorf("%w: %d", ErrUnknownMesh, h)
	}
	return cloneMesh(mesh), nil
}

// Material returns the color of material h.
func (s *Store) Material(h radialbar.MaterialHandle) (radialbar.Color, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.materials[h]
	if !ok {
		return radialbar.Color{}, fmt.Errorf("%w: %d", ErrUnknownMaterial, h)
	}
	return c, nil
}

// Release drops mesh h. Owners call this when they discard a bar.
func (s *Store) Release(h radialbar.MeshHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.meshes, h)
}

// Stats returns the number of live meshes and index replacements so far.
func (s *Store) Stats() (meshes, replacements int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.meshes), s.replacements
}

func validate(data radialbar.MeshData) error {
	n := data.VertexCount()
	if len(data.Normals) != n || len(data.UVs) != n {
		return fmt.Errorf("%w: %d positions, %d normals, %d uvs",
			ErrMalformedMesh, n, len(data.Normals), len(data.UVs))
	}
	return checkIndices(data.Indices, n)
}

func checkIndices(indices []uint32, vertexCount int) error {
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a triangle list", ErrMalformedMesh, len(indices))
	}
	for i, idx := range indices {
		if int(idx) >= vertexCount {
			return fmt.Errorf("%w: index %d at %d, mesh has %d vertices",
				ErrIndexOutOfRange, idx, i, vertexCount)
		}
	}
	return nil
}

func cloneMesh(data radialbar.MeshData) radialbar.MeshData {
	return radialbar.MeshData{
		Positions: append([][3]float32{}, data.Positions...),
		Normals:   append([][3]float32{}, data.Normals...),
		UVs:       append([][2]float32{}, data.UVs...),
		Indices:   append([]uint32{}, data.Indices...),
	}
}
