package radialbar

import (
	"math"
	"reflect"
	"testing"

	rbmath "github.com/Faultbox/radialbar/pkg/math"
)

func TestFormTrianglesCountAndBounds(t *testing.T) {
	for _, segments := range []int{1, 2, 5, 18, 100} {
		triangles := FormTriangles(segments)
		if len(triangles) != 2*segments {
			t.Errorf("segments=%d: got %d triangles, want %d", segments, len(triangles), 2*segments)
		}
		limit := uint32(2 * segments)
		for i, tri := range triangles {
			for _, idx := range tri {
				if idx >= limit {
					t.Fatalf("segments=%d: triangle %d index %d out of range", segments, i, idx)
				}
			}
		}
	}
}

func TestFormTrianglesWrapsLastSegment(t *testing.T) {
	got := FormTriangles(3)
	want := []Triangle{
		{0, 2, 3}, {0, 3, 1},
		{2, 4, 5}, {2, 5, 3},
		{4, 0, 1}, {4, 1, 5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FormTriangles(3) = %v, want %v", got, want)
	}
}

func TestFormTrianglesWinding(t *testing.T) {
	const segments = 18
	vertices := GenerateVertices(0.2, 0.1, segments)
	for i, tri := range FormTriangles(segments) {
		if area := signedArea(vertices, tri); area <= 0 {
			t.Errorf("triangle %d %v is not counter-clockwise (area %v)", i, tri, area)
		}
	}
}

func TestFormValueBarTrianglesBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		segments int
		max      float32
		value    float32
		want     int
	}{
		{"full", 18, 360, 360, 36},
		{"empty", 18, 360, 0, 0},
		{"55 percent of 10", 10, 100, 55, 12},
		{"half", 18, 360, 180, 18},
		{"just below full", 10, 100, 99, 20},
		{"just above a step", 10, 100, 81, 18},
		{"overfilled", 10, 100, 250, 20},
		{"negative", 10, 100, -40, 0},
		{"positive infinity", 10, 100, float32(math.Inf(1)), 20},
		{"negative infinity", 10, 100, float32(math.Inf(-1)), 0},
		{"nan", 10, 100, float32(math.NaN()), 0},
		{"single segment full", 1, 1, 1, 2},
		{"single segment partial", 1, 1, 0.5, 2},
		{"single segment empty", 1, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormValueBarTriangles(tt.segments, tt.max, tt.value)
			if len(got) != tt.want {
				t.Errorf("FormValueBarTriangles(%d, %v, %v) returned %d triangles, want %d",
					tt.segments, tt.max, tt.value, len(got), tt.want)
			}
		})
	}
}

func TestFormValueBarTrianglesIsPrefix(t *testing.T) {
	full := FormTriangles(12)
	partial := FormValueBarTriangles(12, 60, 25)
	if !reflect.DeepEqual(partial, full[:len(partial)]) {
		t.Errorf("trimmed ring is not a prefix of the full ring")
	}
	if len(partial)%2 != 0 {
		t.Errorf("trimming removed half a segment: %d triangles", len(partial))
	}
}

func TestFormValueBarTrianglesMonotonic(t *testing.T) {
	for _, segments := range []int{1, 7, 18, 64} {
		const max = 360
		prev := -1
		for step := 0; step <= 3600; step++ {
			value := float32(step) / 10
			count := len(FormValueBarTriangles(segments, max, value))
			if count < prev {
				t.Fatalf("segments=%d: %d triangles at value %v after %d", segments, count, value, prev)
			}
			prev = count
		}
		if prev != 2*segments {
			t.Errorf("segments=%d: full value gave %d triangles", segments, prev)
		}
	}
}

func TestFormValueBarTrianglesIdempotent(t *testing.T) {
	a := FormValueBarTriangles(18, 360, 123)
	b := FormValueBarTriangles(18, 360, 123)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("identical arguments produced different triangles")
	}
}

func TestTrimmedSegments(t *testing.T) {
	tests := []struct {
		segments int
		max      float32
		value    float32
		want     int
	}{
		{10, 100, 55, 4},
		{18, 360, 0, 18},
		{18, 360, 360, 0},
		{4, 100, 74, 1},
		{4, 100, 75, 1},
		{4, 100, 76, 0},
		{0, 100, 50, 0},
	}

	for _, tt := range tests {
		if got := TrimmedSegments(tt.segments, tt.max, tt.value); got != tt.want {
			t.Errorf("TrimmedSegments(%d, %v, %v) = %d, want %d", tt.segments, tt.max, tt.value, got, tt.want)
		}
	}
}

func TestFlattenIndices(t *testing.T) {
	got := FlattenIndices([]Triangle{{0, 2, 3}, {0, 3, 1}})
	want := []uint32{0, 2, 3, 0, 3, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FlattenIndices = %v, want %v", got, want)
	}
	if got := FlattenIndices(nil); got == nil || len(got) != 0 {
		t.Errorf("FlattenIndices(nil) = %#v, want empty slice", got)
	}
}

func signedArea(vertices []rbmath.Vec3, tri Triangle) float32 {
	a, b, c := vertices[tri[0]], vertices[tri[1]], vertices[tri[2]]
	return b.Sub(a).Cross(c.Sub(a)).Z
}
