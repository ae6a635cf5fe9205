package onscreen

import (
	"math"
	"testing"
)

func TestNewCameraIsIdentity(t *testing.T) {
	cam := NewCamera(Rect{Width: 640, Height: 480})
	for _, p := range []Vec2{{0, 0}, {320, 240}, {12.5, 400}} {
		if got := cam.ScreenToWorld(p); !vecNear(got, p, 1e-9) {
			t.Errorf("ScreenToWorld(%v) = %v, want identity", p, got)
		}
	}
}

func TestCameraScreenWorldRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		zoom float64
		rot  float64
	}{
		{"panned", 100, -50, 1, 0},
		{"zoomed", 0, 0, 2.5, 0},
		{"rotated", 20, 30, 1, math.Pi / 4},
		{"all", -10, 5, 0.5, 1.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(Rect{X: 10, Y: 20, Width: 800, Height: 600})
			cam.X, cam.Y, cam.Zoom, cam.Rotation = tt.x, tt.y, tt.zoom, tt.rot
			cam.MarkDirty()
			world := Vec2{37, -12}
			screen := cam.WorldToScreen(world)
			if got := cam.ScreenToWorld(screen); !vecNear(got, world, 1e-9) {
				t.Errorf("round trip = %v, want %v", got, world)
			}
		})
	}
}

func TestCameraCenterMapsToViewportCenter(t *testing.T) {
	cam := NewCamera(Rect{Width: 800, Height: 600})
	cam.X, cam.Y, cam.Zoom = 1000, 1000, 3
	cam.MarkDirty()
	if got := cam.WorldToScreen(Vec2{1000, 1000}); !vecNear(got, Vec2{400, 300}, 1e-9) {
		t.Errorf("camera center on screen = %v, want (400, 300)", got)
	}
	if got := cam.WorldToScreen(Vec2{1010, 1000}); !vecNear(got, Vec2{430, 300}, 1e-9) {
		t.Errorf("zoomed offset = %v, want (430, 300)", got)
	}
}

func TestSceneMainCamera(t *testing.T) {
	sc := NewSceneWithSource(NewInjectSource())
	if sc.MainCamera() != nil {
		t.Fatal("new scene has a main camera")
	}
	a := sc.NewCamera(Rect{Width: 10, Height: 10})
	b := sc.NewCamera(Rect{Width: 10, Height: 10})
	if sc.MainCamera() != a {
		t.Error("first camera is not the main camera")
	}
	sc.SetMainCamera(b)
	if sc.MainCamera() != b {
		t.Error("SetMainCamera ignored")
	}
	sc.RemoveCamera(b)
	if sc.MainCamera() != a {
		t.Error("removing the main camera did not fall back to the first camera")
	}
	if len(sc.Cameras()) != 1 {
		t.Errorf("Cameras = %d, want 1", len(sc.Cameras()))
	}
}
