package onscreen

import (
	"testing"
)

// --- HitShape tests ---

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 50, CenterY: 50, Radius: 25}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, true},
		{"on circumference", 75, 50, true},
		{"inside", 60, 50, true},
		{"outside", 80, 50, false},
		{"outside diagonal", 70, 70, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitCircle.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// --- Dispatch ---

// pointerRecorder counts handler calls on a node.
type pointerRecorder struct {
	downs, drags, ups int
	canceledUps       int
	lastDown          PointerEventData
	lastDrag          PointerEventData
}

func (r *pointerRecorder) attach(n *Node) {
	n.Interactable = true
	n.OnPointerDown = func(ev *PointerEventData) error { r.downs++; r.lastDown = *ev; return nil }
	n.OnDrag = func(ev *PointerEventData) error { r.drags++; r.lastDrag = *ev; return nil }
	n.OnPointerUp = func(ev *PointerEventData) error {
		r.ups++
		if ev.Canceled {
			r.canceledUps++
		}
		return nil
	}
}

func newDispatchScene() (*Scene, *InjectSource) {
	src := NewInjectSource()
	return NewSceneWithSource(src), src
}

func TestRaycastAllTopmostFirst(t *testing.T) {
	sc, _ := newDispatchScene()
	back := NewGraphic("back", 100, 100)
	back.Interactable = true
	front := NewGraphic("front", 50, 50)
	front.Interactable = true
	hidden := NewGraphic("hidden", 100, 100)
	hidden.Interactable = true
	hidden.Visible = false
	sc.Root().AddChild(back)
	sc.Root().AddChild(front)
	sc.Root().AddChild(hidden)

	ev := &PointerEventData{Position: Vec2{10, 10}}
	results := sc.RaycastAll(ev, make([]RaycastResult, 0, 4))
	if len(results) != 2 || results[0].Node != front || results[1].Node != back {
		t.Fatalf("RaycastAll = %+v, want [front back]", results)
	}
	if results[0].Local != (Vec2{10, 10}) {
		t.Errorf("Local = %v, want (10, 10)", results[0].Local)
	}

	ev.Position = Vec2{80, 80}
	results = sc.RaycastAll(ev, results[:0])
	if len(results) != 1 || results[0].Node != back {
		t.Errorf("RaycastAll at (80, 80) = %+v, want [back]", results)
	}
}

func TestRaycastSkipsNonInteractableSubtree(t *testing.T) {
	sc, _ := newDispatchScene()
	group := NewContainer("group")
	sc.Root().AddChild(group)
	leaf := NewGraphic("leaf", 10, 10)
	leaf.Interactable = true
	group.AddChild(leaf)

	ev := &PointerEventData{Position: Vec2{5, 5}}
	if got := sc.RaycastAll(ev, nil); len(got) != 0 {
		t.Errorf("non-interactable group exposed %d hits", len(got))
	}
	group.Interactable = true
	if got := sc.RaycastAll(ev, nil); len(got) != 1 {
		t.Errorf("hits = %d, want 1", len(got))
	}
}

func TestRaycastHitShape(t *testing.T) {
	sc, _ := newDispatchScene()
	group := NewContainer("pad")
	group.Interactable = true
	group.HitShape = HitCircle{Radius: 20}
	group.SetPosition(100, 100)
	sc.Root().AddChild(group)

	if got := sc.RaycastAll(&PointerEventData{Position: Vec2{110, 110}}, nil); len(got) != 1 {
		t.Errorf("inside circle: %d hits, want 1", len(got))
	}
	if got := sc.RaycastAll(&PointerEventData{Position: Vec2{118, 118}}, nil); len(got) != 0 {
		t.Errorf("outside circle: %d hits, want 0", len(got))
	}
}

func TestPointerDragDeadZone(t *testing.T) {
	sc, src := newDispatchScene()
	n := NewGraphic("n", 100, 100)
	sc.Root().AddChild(n)
	var rec pointerRecorder
	rec.attach(n)

	src.InjectMousePress(10, 10)
	src.InjectMouseMove(12, 11)
	src.InjectMouseMove(20, 10)
	src.InjectMouseMove(25, 10)
	src.InjectMouseRelease(25, 10)
	step(t, sc, 5)

	if rec.downs != 1 || rec.ups != 1 {
		t.Errorf("downs=%d ups=%d, want 1/1", rec.downs, rec.ups)
	}
	if rec.drags != 2 {
		t.Errorf("drags = %d, want 2 (the first move is inside the dead zone)", rec.drags)
	}
	if rec.lastDrag.Delta != (Vec2{5, 0}) || rec.lastDrag.PressPosition != (Vec2{10, 10}) {
		t.Errorf("last drag = %+v", rec.lastDrag)
	}
}

func TestSetDragDeadZone(t *testing.T) {
	sc, src := newDispatchScene()
	sc.SetDragDeadZone(0)
	n := NewGraphic("n", 100, 100)
	sc.Root().AddChild(n)
	var rec pointerRecorder
	rec.attach(n)

	src.InjectMousePress(10, 10)
	src.InjectMouseMove(11, 10)
	step(t, sc, 2)
	if rec.drags != 1 {
		t.Errorf("drags = %d, want 1", rec.drags)
	}
}

func TestPressOnEmptySpace(t *testing.T) {
	sc, src := newDispatchScene()
	n := NewGraphic("n", 10, 10)
	n.SetPosition(50, 50)
	sc.Root().AddChild(n)
	var rec pointerRecorder
	rec.attach(n)

	// Press elsewhere and drag over the node: nothing is delivered.
	src.InjectMouseDrag(Vec2{0, 0}, Vec2{55, 55}, 4)
	step(t, sc, 4)
	if rec.downs+rec.drags+rec.ups != 0 {
		t.Errorf("node received %+v", rec)
	}
}

func TestTouchPointersIndependent(t *testing.T) {
	sc, src := newDispatchScene()
	left := NewGraphic("left", 50, 50)
	right := NewGraphic("right", 50, 50)
	right.SetPosition(100, 0)
	sc.Root().AddChild(left)
	sc.Root().AddChild(right)
	var l, r pointerRecorder
	l.attach(left)
	r.attach(right)

	src.InjectTouch(1, 10, 10)
	src.InjectTouch(2, 110, 10)
	src.InjectTouch(2, 130, 30)
	src.InjectTouchEnd(1)
	step(t, sc, 4)

	if l.downs != 1 || l.ups != 1 || l.drags != 0 {
		t.Errorf("left = %+v", l)
	}
	if r.downs != 1 || r.drags != 1 || r.ups != 0 {
		t.Errorf("right = %+v", r)
	}
	if l.lastDown.PointerID == r.lastDown.PointerID {
		t.Error("touches share a pointer ID")
	}
}

func TestDeviceSwitchCancelsPointers(t *testing.T) {
	sc, src := newDispatchScene()
	sc.Input().SetAutoSwitch(true)
	n := NewGraphic("n", 100, 100)
	sc.Root().AddChild(n)
	var rec pointerRecorder
	rec.attach(n)

	src.InjectMousePress(10, 10)
	src.InjectPen(50, 50, true)
	src.InjectMouseMove(40, 40)
	src.InjectMouseRelease(40, 40)
	step(t, sc, 4)

	// The pen press is dispatched, then both pointers are canceled by the
	// switch back to the mouse.
	if rec.canceledUps == 0 {
		t.Fatal("switching devices did not cancel the held press")
	}
	if rec.drags != 0 {
		t.Errorf("canceled pointer delivered %d drags", rec.drags)
	}
	if rec.ups != rec.downs {
		t.Errorf("downs=%d ups=%d, want balanced", rec.downs, rec.ups)
	}
}

func TestPressCameraFromCanvas(t *testing.T) {
	sc, src := newDispatchScene()
	cam := sc.NewCamera(Rect{Width: 200, Height: 200})
	cam.X, cam.Y = 0, 0
	cam.MarkDirty()
	world := NewCanvas("world", WorldSpace, nil)
	overlay := NewCanvas("hud", ScreenSpaceOverlay, nil)
	sc.Root().AddChild(world)
	sc.Root().AddChild(overlay)

	// World (0, 0) is screen (100, 100).
	wn := NewGraphic("world-node", 10, 10)
	world.AddChild(wn)
	hn := NewGraphic("hud-node", 10, 10)
	overlay.AddChild(hn)
	var w, h pointerRecorder
	w.attach(wn)
	h.attach(hn)

	src.InjectMousePress(105, 105)
	src.InjectMouseRelease(105, 105)
	src.InjectMousePress(5, 5)
	src.InjectMouseRelease(5, 5)
	step(t, sc, 4)

	if w.downs != 1 || w.lastDown.PressCamera != cam {
		t.Errorf("world node: downs=%d camera=%p, want 1/%p", w.downs, w.lastDown.PressCamera, cam)
	}
	if h.downs != 1 || h.lastDown.PressCamera != nil {
		t.Errorf("hud node: downs=%d camera=%p, want 1/nil", h.downs, h.lastDown.PressCamera)
	}
}
