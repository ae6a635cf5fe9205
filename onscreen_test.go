package onscreen

import (
	"math"
	"testing"
)

func TestVec2ClampMagnitude(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		max  float64
		want Vec2
	}{
		{"zero", Vec2{}, 50, Vec2{}},
		{"inside", Vec2{30, 40}, 50, Vec2{30, 40}},
		{"on boundary", Vec2{30, 40}, 50, Vec2{30, 40}},
		{"outside", Vec2{60, 80}, 50, Vec2{30, 40}},
		{"outside negative", Vec2{-60, 80}, 50, Vec2{-30, 40}},
		{"axis", Vec2{0, -200}, 10, Vec2{0, -10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ClampMagnitude(tt.max)
			if !vecNear(got, tt.want, 1e-9) {
				t.Errorf("%v.ClampMagnitude(%v) = %v, want %v", tt.v, tt.max, got, tt.want)
			}
			if got.Length() > tt.max+1e-9 {
				t.Errorf("length %v exceeds %v", got.Length(), tt.max)
			}
		})
	}
}

func TestVec2ClampMagnitudePreservesDirection(t *testing.T) {
	v := Vec2{-7, 24}
	got := v.ClampMagnitude(5)
	if math.Abs(math.Atan2(got.Y, got.X)-math.Atan2(v.Y, v.X)) > 1e-12 {
		t.Errorf("direction changed: %v -> %v", v, got)
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a, b := Vec2{1, 2}, Vec2{3, 5}
	if got := a.Add(b); got != (Vec2{4, 7}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Vec2{2, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(3); got != (Vec2{3, 6}) {
		t.Errorf("Scale = %v", got)
	}
	if got := (Vec2{3, 4}).Length(); got != 5 {
		t.Errorf("Length = %v", got)
	}
	if got := (Vec2{3, 4}).LengthSq(); got != 25 {
		t.Errorf("LengthSq = %v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 10}
	tests := []struct {
		x, y float64
		want bool
	}{
		{15, 15, true},
		{10, 10, true},
		{30, 20, true},
		{9, 15, false},
		{15, 21, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
