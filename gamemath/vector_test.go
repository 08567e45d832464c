package gamemath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNormalizeOr(t *testing.T) {
	fallback := mgl64.Vec3{0, 0, -1}

	tests := []struct {
		name string
		in   mgl64.Vec3
		want mgl64.Vec3
	}{
		{"axis", mgl64.Vec3{3, 0, 0}, mgl64.Vec3{1, 0, 0}},
		{"diagonal", mgl64.Vec3{3, 4, 0}, mgl64.Vec3{0.6, 0.8, 0}},
		{"zero", mgl64.Vec3{}, fallback},
		{"tiny", mgl64.Vec3{1e-12, 0, 0}, fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeOr(tt.in, fallback)
			if !got.ApproxEqual(tt.want) {
				t.Errorf("NormalizeOr(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDirectionCoincidentPoints(t *testing.T) {
	p := mgl64.Vec3{1, 2, 3}
	fallback := mgl64.Vec3{0, 0, -1}
	if got := Direction(p, p, fallback); got != fallback {
		t.Errorf("Direction = %v, want fallback %v", got, fallback)
	}
}

func TestAdvanceIndependentOfStart(t *testing.T) {
	starts := []mgl64.Vec3{{0, 0, 0}, {-4, 1, 7}, {100, -3, 0.5}}
	for _, start := range starts {
		got := Advance(start, mgl64.Vec3{1, 0, 0}, 2.0, 0.5, mgl64.Vec3{0, 0, -1})
		delta := got.Sub(start)
		if !delta.ApproxEqual(mgl64.Vec3{1, 0, 0}) {
			t.Errorf("start %v: delta = %v, want (1,0,0)", start, delta)
		}
	}
}

func TestAdvanceRenormalizes(t *testing.T) {
	got := Advance(mgl64.Vec3{}, mgl64.Vec3{0, 5, 0}, 1, 1, mgl64.Vec3{})
	if !got.ApproxEqual(mgl64.Vec3{0, 1, 0}) {
		t.Errorf("Advance = %v, want (0,1,0)", got)
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 3, 4}); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestLerp(t *testing.T) {
	got := Lerp(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 4, -2}, 0.5)
	if !got.ApproxEqual(mgl64.Vec3{1, 2, -1}) {
		t.Errorf("Lerp = %v", got)
	}
}
