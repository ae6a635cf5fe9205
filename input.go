package onscreen

// --- Constants ---

const (
	pointerMouse        = 0
	pointerPen          = 1
	pointerFirstTouch   = 2
	maxPointers         = pointerFirstTouch + maxTouches
	defaultDragDeadZone = 4.0 // pixels
)

// PointerEventData carries one pointer event from the scene to a node
// handler. The scene owns one record per pointer and rewrites it for every
// event, so handlers must copy anything they want to keep.
type PointerEventData struct {
	PointerID int
	// Position is the current screen position.
	Position Vec2
	// PressPosition is the screen position where the press began.
	PressPosition Vec2
	// Delta is the screen movement since the previous event of this pointer.
	Delta Vec2
	// PressCamera converts screen positions for the pressed node. nil means
	// the node lives in pure screen space.
	PressCamera *Camera
	Button      MouseButton
	// Node is the node that received the press, or nil.
	Node *Node
	// Canceled is set on the pointer-up sent when a device switch aborts a press.
	Canceled bool
}

// RaycastResult is one hit from Scene.RaycastAll.
type RaycastResult struct {
	Node   *Node
	Camera *Camera
	// Local is the hit point in the node's local space.
	Local Vec2
}

// --- Per-pointer state ---

type pointerState struct {
	down      bool
	canceled  bool
	dragging  bool
	start     Vec2
	last      Vec2
	pressNode *Node
	button    MouseButton
}

// SetDragDeadZone sets the minimum movement in pixels before drags are sent.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.dragDeadZone = pixels
}

// --- Hit testing ---

// collectInteractable walks the tree in painter order (DFS), appending
// interactable nodes to buf. Skips Visible=false or Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Type == NodeTypeGraphic {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// RaycastAll appends every interactable node under ev.Position to results,
// topmost first, and returns the extended slice. Pass a reused slice
// truncated to zero length to avoid allocating per query.
func (s *Scene) RaycastAll(ev *PointerEventData, results []RaycastResult) []RaycastResult {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])
	main := s.MainCamera()
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		cam := resolveEventCamera(n, main)
		world := ev.Position
		if cam != nil {
			world = cam.ScreenToWorld(world)
		}
		local, ok := n.WorldToLocal(world)
		if ok && n.containsLocal(local) {
			results = append(results, RaycastResult{Node: n, Camera: cam, Local: local})
		}
	}
	return results
}

// hitTest finds the topmost interactable node at a screen position.
func (s *Scene) hitTest(screen Vec2) (*Node, *Camera) {
	s.probe.Position = screen
	s.raycastBuf = s.RaycastAll(&s.probe, s.raycastBuf[:0])
	if len(s.raycastBuf) == 0 {
		return nil, nil
	}
	return s.raycastBuf[0].Node, s.raycastBuf[0].Camera
}

// --- Input processing ---

// processInput runs the pointer state machine for every pointer-like device.
func (s *Scene) processInput() {
	m := s.input.Mouse()
	var button MouseButton
	pressed := false
	for _, b := range [...]MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle} {
		if m.Button(b).pressed {
			pressed = true
			button = b
			break
		}
	}
	s.processPointer(pointerMouse, m.Position(), pressed, button)

	p := s.input.Pen()
	s.processPointer(pointerPen, p.Position(), p.tip.pressed, MouseButtonLeft)

	t := s.input.Touchscreen()
	for i := range t.slots {
		press, pos := t.Touch(i)
		id := pointerFirstTouch + i
		if press.pressed || s.pointers[id].down {
			s.processPointer(id, pos.value, press.pressed, MouseButtonLeft)
		}
	}
}

// processPointer runs the press/drag/release state machine for one pointer.
func (s *Scene) processPointer(pointerID int, pos Vec2, pressed bool, button MouseButton) {
	ps := &s.pointers[pointerID]
	ev := &s.events[pointerID]

	switch {
	case pressed && !ps.down:
		target, cam := s.hitTest(pos)
		*ps = pointerState{down: true, start: pos, last: pos, pressNode: target, button: button}
		*ev = PointerEventData{
			PointerID: pointerID, Position: pos, PressPosition: pos,
			PressCamera: cam, Button: button, Node: target,
		}
		if target != nil {
			s.call(target.OnPointerDown, ev)
			s.emitInteractionEvent(EventPointerDown, target, ev)
		}

	case pressed && ps.down:
		if pos == ps.last {
			return
		}
		ev.Delta = pos.Sub(ps.last)
		ev.Position = pos
		ps.last = pos
		if ps.canceled || ps.pressNode == nil {
			return
		}
		if !ps.dragging && pos.Sub(ps.start).Length() > s.dragDeadZone {
			ps.dragging = true
		}
		if ps.dragging {
			s.call(ps.pressNode.OnDrag, ev)
			s.emitInteractionEvent(EventDrag, ps.pressNode, ev)
		}

	case !pressed && ps.down:
		ev.Delta = pos.Sub(ps.last)
		ev.Position = pos
		if !ps.canceled && ps.pressNode != nil {
			s.call(ps.pressNode.OnPointerUp, ev)
			s.emitInteractionEvent(EventPointerUp, ps.pressNode, ev)
		}
		*ps = pointerState{last: pos}

	default:
		ps.last = pos
	}
}

// cancelPointers aborts every held press: the pressed node receives a
// canceled pointer-up and the pointer is ignored until it is released.
func (s *Scene) cancelPointers() {
	for i := range s.pointers {
		ps := &s.pointers[i]
		if !ps.down || ps.canceled {
			continue
		}
		ps.canceled = true
		ps.dragging = false
		if ps.pressNode == nil {
			continue
		}
		ev := &s.events[i]
		ev.Canceled = true
		s.call(ps.pressNode.OnPointerUp, ev)
		s.emitInteractionEvent(EventPointerUp, ps.pressNode, ev)
	}
}

// call runs a node handler and keeps its error for Scene.Update.
func (s *Scene) call(h PointerHandler, ev *PointerEventData) {
	if h == nil {
		return
	}
	if err := h(ev); err != nil {
		logger.Debug("pointer handler failed", "pointer", ev.PointerID, "err", err)
		s.errs = append(s.errs, err)
	}
}

// --- ECS bridge ---

func (s *Scene) emitInteractionEvent(eventType EventType, node *Node, ev *PointerEventData) {
	if s.store == nil || node == nil || node.EntityID == 0 {
		return
	}
	var local Vec2
	cam := ev.PressCamera
	world := ev.Position
	if cam != nil {
		world = cam.ScreenToWorld(world)
	}
	local, _ = node.WorldToLocal(world)
	s.store.EmitEvent(InteractionEvent{
		Type:      eventType,
		EntityID:  node.EntityID,
		PointerID: ev.PointerID,
		ScreenX:   ev.Position.X,
		ScreenY:   ev.Position.Y,
		LocalX:    local.X,
		LocalY:    local.Y,
		Button:    ev.Button,
		Canceled:  ev.Canceled,
	})
}
