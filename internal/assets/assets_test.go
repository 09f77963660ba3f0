package assets

import (
	"errors"
	"sync"
	"testing"

	"github.com/Faultbox/radialbar/pkg/radialbar"
)

func newBar(t *testing.T, s *Store, value float32) *radialbar.Bar {
	t.Helper()
	bar, err := radialbar.New(radialbar.Config{
		HoleRadius:   0.1,
		CircleRadius: 0.2,
		SegmentCount: 18,
		MaxValue:     360,
		Value:        value,
		Color:        radialbar.ColorHealth,
	}, s, s)
	if err != nil {
		t.Fatalf("radialbar.New() error: %v", err)
	}
	return bar
}

func TestStoreHoldsBarMesh(t *testing.T) {
	s := NewStore()
	bar := newBar(t, s, 360)

	mesh, err := s.Mesh(bar.MeshHandle())
	if err != nil {
		t.Fatalf("Mesh() error: %v", err)
	}
	if mesh.VertexCount() != 36 || mesh.TriangleCount() != 36 {
		t.Errorf("got %d vertices, %d triangles", mesh.VertexCount(), mesh.TriangleCount())
	}

	color, err := s.Material(bar.MaterialHandle())
	if err != nil {
		t.Fatalf("Material() error: %v", err)
	}
	if color != radialbar.ColorHealth {
		t.Errorf("material = %v, want %v", color, radialbar.ColorHealth)
	}
}

func TestStoreFollowsBarValue(t *testing.T) {
	s := NewStore()
	bar := newBar(t, s, 360)

	if _, err := bar.SetValue(90); err != nil {
		t.Fatalf("SetValue() error: %v", err)
	}

	mesh, _ := s.Mesh(bar.MeshHandle())
	// floor(0.75 * 18) = 13 segments trimmed, 5 remain.
	if mesh.TriangleCount() != 10 {
		t.Errorf("expected 10 triangles at a quarter, got %d", mesh.TriangleCount())
	}
	if _, replacements := s.Stats(); replacements != 1 {
		t.Errorf("expected 1 replacement, got %d", replacements)
	}
}

func TestStoreRejectsBadIndices(t *testing.T) {
	s := NewStore()
	bar := newBar(t, s, 360)

	tests := []struct {
		name    string
		indices []uint32
		want    error
	}{
		{"out of range", []uint32{0, 1, 36}, ErrIndexOutOfRange},
		{"not triangles", []uint32{0, 1}, ErrMalformedMesh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.ReplaceIndices(bar.MeshHandle(), tt.indices)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	mesh, _ := s.Mesh(bar.MeshHandle())
	if mesh.TriangleCount() != 36 {
		t.Errorf("rejected updates changed the mesh: %d triangles", mesh.TriangleCount())
	}
}

func TestStoreUnknownHandles(t *testing.T) {
	s := NewStore()

	if err := s.ReplaceIndices(7, nil); !errors.Is(err, ErrUnknownMesh) {
		t.Errorf("ReplaceIndices: expected ErrUnknownMesh, got %v", err)
	}
	if _, err := s.Mesh(7); !errors.Is(err, ErrUnknownMesh) {
		t.Errorf("Mesh: expected ErrUnknownMesh, got %v", err)
	}
	if _, err := s.Material(7); !errors.Is(err, ErrUnknownMaterial) {
		t.Errorf("Material: expected ErrUnknownMaterial, got %v", err)
	}
}

func TestStoreRejectsMalformedMesh(t *testing.T) {
	s := NewStore()
	_, err := s.CreateMesh(radialbar.MeshData{
		Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}},
		Normals:   [][3]float32{{0, 0, 1}},
		UVs:       [][2]float32{{0, 1}, {0, 1}},
	})
	if !errors.Is(err, ErrMalformedMesh) {
		t.Errorf("expected ErrMalformedMesh, got %v", err)
	}
}

func TestStoreRelease(t *testing.T) {
	s := NewStore()
	bar := newBar(t, s, 360)

	s.Release(bar.MeshHandle())
	if meshes, _ := s.Stats(); meshes != 0 {
		t.Errorf("expected no meshes after release, got %d", meshes)
	}
	if _, err := bar.AddValue(-10); !errors.Is(err, ErrUnknownMesh) {
		t.Errorf("expected ErrUnknownMesh after release, got %v", err)
	}
	if bar.Value() != 360 {
		t.Errorf("failed update changed value to %v", bar.Value())
	}
}

func TestStoreSnapshotIsolation(t *testing.T) {
	s := NewStore()
	bar := newBar(t, s, 360)

	mesh, _ := s.Mesh(bar.MeshHandle())
	mesh.Indices[0] = 99
	mesh.Positions[0] = [3]float32{9, 9, 9}

	again, _ := s.Mesh(bar.MeshHandle())
	if again.Indices[0] == 99 || again.Positions[0] == [3]float32{9, 9, 9} {
		t.Error("snapshot shares memory with the store")
	}
}

func TestStoreConcurrentReaders(t *testing.T) {
	s := NewStore()
	bar := newBar(t, s, 360)
	h := bar.MeshHandle()

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				mesh, err := s.Mesh(h)
				if err != nil {
					t.Errorf("Mesh() error: %v", err)
					return
				}
				if len(mesh.Indices)%6 != 0 {
					t.Errorf("reader saw a torn buffer of %d indices", len(mesh.Indices))
					return
				}
			}
		}()
	}

	var writeErr error
	for i := 0; i < 720 && writeErr == nil; i++ {
		_, writeErr = bar.AddValue(-0.5)
	}
	close(stop)
	wg.Wait()

	if writeErr != nil {
		t.Fatalf("AddValue() error: %v", writeErr)
	}
}
