package math

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3RotateZ(t *testing.T) {
	tests := []struct {
		name  string
		in    Vec3
		angle float32
		want  Vec3
	}{
		{"quarter turn", Vec3{0, 2, 0}, math.Pi / 2, Vec3{-2, 0, 0}},
		{"half turn", Vec3{0, 1, 0}, math.Pi, Vec3{0, -1, 0}},
		{"three quarters", Vec3{0, 1, 0}, 3 * math.Pi / 2, Vec3{1, 0, 0}},
		{"zero angle", Vec3{3, 4, 5}, 0, Vec3{3, 4, 5}},
		{"keeps z", Vec3{1, 0, 7}, math.Pi / 2, Vec3{0, 1, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.RotateZ(tt.angle)
			if !approx(got.X, tt.want.X) || !approx(got.Y, tt.want.Y) || !approx(got.Z, tt.want.Z) {
				t.Errorf("RotateZ(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestVec3RotateZPreservesLength(t *testing.T) {
	v := Vec3{0, 0.2, 0}
	for i := 0; i < 36; i++ {
		r := v.RotateZ(float32(i) * 0.1745)
		if !approx(r.Length(), 0.2) {
			t.Fatalf("rotation %d changed length: %v", i, r.Length())
		}
	}
}

func TestVec3Array(t *testing.T) {
	got := Vec3{1, 2, 3}.Array()
	if got != [3]float32{1, 2, 3} {
		t.Errorf("Vec3.Array() = %v", got)
	}
}
