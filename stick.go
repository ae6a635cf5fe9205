package onscreen

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// session is the state of one press-to-release interaction.
type session struct {
	anchor Vec2 // pointer position at press, in the parent's local space
	active bool
}

// Stick is an on-screen joystick. Its node is the knob: dragging it moves the
// knob up to MovementRange away from where it rested at Start, and the
// displacement divided by MovementRange is sent to the bound control.
//
// The stick runs in one of two modes, fixed at construction:
//
//   - direct: the scene's pointer dispatch calls OnPointerDown, OnDrag, and
//     OnPointerUp on the knob node.
//   - isolated: the stick owns a private pointer-down action and pointer-move
//     action, hit-tests presses itself, and ignores the scene's dispatch.
//     Device switching cannot cancel these actions.
type Stick struct {
	node  *Node
	cfg   StickConfig
	mode  interaction
	curve ease.TweenFunc

	scene        *Scene
	sink         ValueSink
	restPosition Vec2
	session      session
	value        Vec2
	started      bool
}

// NewStick creates a stick for the knob node. The config is validated.
func NewStick(node *Node, cfg StickConfig) (*Stick, error) {
	if node == nil {
		return nil, fmt.Errorf("new stick: %w: nil node", ErrInvalidArgument)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new stick: %w", err)
	}
	curve, _ := lookupResponseCurve(cfg.ResponseCurve)
	s := &Stick{node: node, cfg: cfg, curve: curve}
	if cfg.UseIsolatedInputActions {
		s.mode = &isolatedInteraction{}
	} else {
		s.mode = directInteraction{}
	}
	return s, nil
}

// SetValueSink replaces the bound control. Call before Start; when unset,
// Start binds the configured control path.
func (s *Stick) SetValueSink(sink ValueSink) {
	s.sink = sink
}

// Start activates the stick in scene: it records the rest position, binds
// the control, installs the node handlers, and, in isolated mode, sets up
// and enables the private actions.
//
// Start marks the knob Interactable but leaves its ancestors alone. Hit
// testing skips whole non-interactable subtrees, so every ancestor must
// already be Interactable (containers are not by default); otherwise Start
// returns ErrNotInteractable.
func (s *Stick) Start(scene *Scene) error {
	if s.started {
		return fmt.Errorf("start stick %q: %w", s.node.Name, ErrAlreadyStarted)
	}
	if s.node.Parent == nil {
		return fmt.Errorf("start stick %q: %w", s.node.Name, ErrNoParent)
	}
	for p := s.node.Parent; p != nil; p = p.Parent {
		if !p.Interactable {
			return fmt.Errorf("start stick %q: %w: %q", s.node.Name, ErrNotInteractable, p.Name)
		}
	}
	if s.sink == nil {
		ctrl, err := BindControl(scene.Input(), s.cfg.ControlPath)
		if err != nil {
			return fmt.Errorf("start stick %q: %w", s.node.Name, err)
		}
		s.sink = ctrl
	}
	s.scene = scene
	s.restPosition = s.node.Position()
	if err := s.mode.start(s); err != nil {
		return fmt.Errorf("start stick %q: %w", s.node.Name, err)
	}
	s.node.Interactable = true
	s.node.OnPointerDown = s.OnPointerDown
	s.node.OnDrag = s.OnDrag
	s.node.OnPointerUp = s.OnPointerUp
	s.started = true
	return nil
}

// Stop deactivates the stick. An active interaction is ended, every
// subscription the stick made is removed, and the node handlers are cleared.
// The stick can be started again afterwards.
func (s *Stick) Stop() {
	if !s.started {
		return
	}
	s.mode.stop(s)
	if s.session.active {
		s.endInteraction()
	}
	s.node.OnPointerDown = nil
	s.node.OnDrag = nil
	s.node.OnPointerUp = nil
	s.started = false
}

// OnPointerDown begins an interaction. No-op in isolated mode.
func (s *Stick) OnPointerDown(ev *PointerEventData) error {
	return s.mode.pointerDown(s, ev)
}

// OnDrag moves the knob. No-op in isolated mode.
func (s *Stick) OnDrag(ev *PointerEventData) error {
	return s.mode.drag(s, ev)
}

// OnPointerUp ends the interaction. No-op in isolated mode.
func (s *Stick) OnPointerUp(ev *PointerEventData) error {
	return s.mode.pointerUp(s, ev)
}

// beginInteraction anchors a session at the pointer's parent-local position.
func (s *Stick) beginInteraction(screen Vec2, cam *Camera) bool {
	local, ok := ScreenPointToLocalPointInRectangle(s.node.Parent, screen, cam)
	if !ok {
		logger.Debug("press ignored: degenerate parent transform", "stick", s.node.Name)
		return false
	}
	s.session = session{anchor: local, active: true}
	return true
}

// moveStick clamps the pointer offset to MovementRange, moves the knob, and
// sends the normalized displacement.
func (s *Stick) moveStick(screen Vec2, cam *Camera) {
	if !s.session.active {
		return
	}
	local, ok := ScreenPointToLocalPointInRectangle(s.node.Parent, screen, cam)
	if !ok {
		return
	}
	r := s.cfg.MovementRange
	delta := local.Sub(s.session.anchor).ClampMagnitude(r)
	pos := s.restPosition.Add(delta)
	s.node.SetPosition(pos.X, pos.Y)
	s.sendValue(Vec2{delta.X / r, delta.Y / r})
}

// endInteraction always recenters the knob and sends zero, whether or not
// the pointer moved, so the stick cannot stay off-center.
func (s *Stick) endInteraction() {
	s.session = session{}
	s.node.SetPosition(s.restPosition.X, s.restPosition.Y)
	s.sendValue(Vec2{})
}

func (s *Stick) sendValue(v Vec2) {
	v = applyResponseCurve(s.curve, v)
	s.value = v
	s.sink.SendValue(v)
	s.scene.emitStickValue(s.node, v)
}

// eventCamera resolves the camera for the knob's canvas.
func (s *Stick) eventCamera() *Camera {
	return resolveEventCamera(s.node, s.scene.MainCamera())
}

// Node returns the knob node.
func (s *Stick) Node() *Node { return s.node }

// Value returns the last value sent to the control.
func (s *Stick) Value() Vec2 { return s.value }

// Active reports whether an interaction is in progress.
func (s *Stick) Active() bool { return s.session.active }

// Started reports whether Start has succeeded and Stop has not been called.
func (s *Stick) Started() bool { return s.started }

// RestPosition returns the knob position captured at Start.
func (s *Stick) RestPosition() Vec2 { return s.restPosition }

// MovementRange returns the maximum knob displacement.
func (s *Stick) MovementRange() float64 { return s.cfg.MovementRange }

// SetMovementRange changes the maximum knob displacement. r must be > 0.
func (s *Stick) SetMovementRange(r float64) error {
	if !(r > 0) {
		return fmt.Errorf("%w: movement range must be > 0, got %v", ErrInvalidArgument, r)
	}
	s.cfg.MovementRange = r
	return nil
}

// Isolated reports whether the stick uses private input actions.
func (s *Stick) Isolated() bool { return s.cfg.UseIsolatedInputActions }

// ControlPath returns the configured control path.
func (s *Stick) ControlPath() string { return s.cfg.ControlPath }

// PointerDownAction returns the isolated-mode press action, or nil in direct
// mode. Before Start it is nil unless set with SetPointerDownAction.
func (s *Stick) PointerDownAction() *Action {
	if m, ok := s.mode.(*isolatedInteraction); ok {
		return m.down
	}
	return nil
}

// PointerMoveAction returns the isolated-mode move action, or nil in direct
// mode. Before Start it is nil unless set with SetPointerMoveAction.
func (s *Stick) PointerMoveAction() *Action {
	if m, ok := s.mode.(*isolatedInteraction); ok {
		return m.move
	}
	return nil
}

// SetPointerDownAction supplies the isolated-mode press action. An action
// without bindings receives the configured or default ones at Start.
// Ignored in direct mode and while started.
func (s *Stick) SetPointerDownAction(a *Action) {
	if m, ok := s.mode.(*isolatedInteraction); ok && !s.started {
		m.down = a
	}
}

// SetPointerMoveAction supplies the isolated-mode move action. An action
// without bindings receives the configured or default ones at Start.
// Ignored in direct mode and while started.
func (s *Stick) SetPointerMoveAction(a *Action) {
	if m, ok := s.mode.(*isolatedInteraction); ok && !s.started {
		m.move = a
	}
}

// Config returns the stick's current configuration.
func (s *Stick) Config() StickConfig { return s.cfg }
