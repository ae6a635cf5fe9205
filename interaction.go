package onscreen

import "fmt"

// Default isolated-mode bindings, used when the config names none.
var (
	defaultPointerDownBindings = []string{
		"<Mouse>/leftButton",
		"<Pen>/tip",
		"<Touchscreen>/touch*/press",
		"<XRController>/trigger",
	}
	defaultPointerMoveBindings = []string{
		"<Mouse>/position",
		"<Pen>/position",
		"<Touchscreen>/touch*/position",
	}
)

// interaction is how a stick receives pointer input.
type interaction interface {
	start(s *Stick) error
	stop(s *Stick)
	pointerDown(s *Stick, ev *PointerEventData) error
	drag(s *Stick, ev *PointerEventData) error
	pointerUp(s *Stick, ev *PointerEventData) error
}

// --- Direct mode ---

// directInteraction follows the scene's pointer dispatch on the knob node.
type directInteraction struct{}

func (directInteraction) start(*Stick) error { return nil }
func (directInteraction) stop(*Stick)        {}

func (directInteraction) pointerDown(s *Stick, ev *PointerEventData) error {
	if ev == nil {
		return fmt.Errorf("OnPointerDown: %w: nil event", ErrInvalidArgument)
	}
	s.beginInteraction(ev.Position, ev.PressCamera)
	return nil
}

func (directInteraction) drag(s *Stick, ev *PointerEventData) error {
	if ev == nil {
		return fmt.Errorf("OnDrag: %w: nil event", ErrInvalidArgument)
	}
	s.moveStick(ev.Position, ev.PressCamera)
	return nil
}

// pointerUp ends the interaction even for a nil event, so the knob cannot
// stay off-center.
func (directInteraction) pointerUp(s *Stick, ev *PointerEventData) error {
	s.endInteraction()
	if ev == nil {
		return fmt.Errorf("OnPointerUp: %w: nil event", ErrInvalidArgument)
	}
	return nil
}

// --- Isolated mode ---

// isolatedInteraction drives the stick from two private actions. The move
// listener is attached only while a press that hit the knob is held.
type isolatedInteraction struct {
	down *Action
	move *Action

	pressHandle   ActionHandle
	releaseHandle ActionHandle
	moveHandle    ActionHandle
	moveAttached  bool

	// tracked is the position control of the pointer that pressed the knob.
	// Moves of any other bound control are ignored.
	tracked *Control

	// Per-press scratch, allocated once at start.
	onMove  func(CallbackContext)
	probe   PointerEventData
	results []RaycastResult
}

func (m *isolatedInteraction) start(s *Stick) error {
	if m.down == nil {
		m.down = NewAction(s.node.Name+"/pointer-down", ActionButton)
	}
	if m.move == nil {
		m.move = NewAction(s.node.Name+"/pointer-move", ActionPassThrough)
	}
	if err := addBindings(m.down, s.cfg.PointerDownBindings, defaultPointerDownBindings); err != nil {
		return err
	}
	if err := addBindings(m.move, s.cfg.PointerMoveBindings, defaultPointerMoveBindings); err != nil {
		return err
	}
	if m.results == nil {
		m.results = make([]RaycastResult, 0, 8)
	}
	if m.onMove == nil {
		m.onMove = func(ctx CallbackContext) { m.handleMove(s, ctx) }
	}

	sys := s.scene.Input()
	sys.AddAction(m.down)
	sys.AddAction(m.move)
	m.pressHandle = m.down.Subscribe(PhaseStarted, func(ctx CallbackContext) { m.handlePress(s, ctx) })
	m.releaseHandle = m.down.Subscribe(PhaseCanceled, func(ctx CallbackContext) { m.handleRelease(s) })
	m.down.Enable()
	m.move.Enable()
	return nil
}

// addBindings fills an action that has no bindings yet with the configured
// paths, or with the defaults when none are configured. Actions that already
// have bindings are left alone.
func addBindings(a *Action, configured, defaults []string) error {
	if a.BindingCount() > 0 {
		return nil
	}
	paths := configured
	if len(paths) == 0 {
		paths = defaults
	}
	for _, p := range paths {
		if err := a.AddBinding(p); err != nil {
			return fmt.Errorf("action %q: %w", a.Name(), err)
		}
	}
	return nil
}

func (m *isolatedInteraction) stop(s *Stick) {
	// Disable fires Canceled, which ends a held interaction.
	m.down.Disable()
	m.move.Disable()
	m.pressHandle.Remove()
	m.releaseHandle.Remove()
	m.detachMove()
	sys := s.scene.Input()
	sys.RemoveAction(m.down)
	sys.RemoveAction(m.move)
}

func (*isolatedInteraction) pointerDown(*Stick, *PointerEventData) error { return nil }
func (*isolatedInteraction) drag(*Stick, *PointerEventData) error        { return nil }
func (*isolatedInteraction) pointerUp(*Stick, *PointerEventData) error   { return nil }

func (m *isolatedInteraction) handlePress(s *Stick, ctx CallbackContext) {
	pos, ok := ctx.PointerPosition()
	if !ok {
		logger.Debug("press ignored: source is not a pointer", "stick", s.node.Name, "control", ctx.Control.Path())
		return
	}
	m.probe.Position = pos
	m.results = s.scene.RaycastAll(&m.probe, m.results[:0])
	hit := false
	for i := range m.results {
		if m.results[i].Node == s.node {
			hit = true
			break
		}
	}
	clear(m.results)
	if !hit {
		return
	}
	if !s.beginInteraction(pos, s.eventCamera()) {
		return
	}
	m.tracked = ctx.Control
	if ctx.Control.position != nil {
		m.tracked = ctx.Control.position
	}
	if !m.moveAttached {
		m.moveHandle = m.move.Subscribe(PhasePerformed, m.onMove)
		m.moveAttached = true
	}
}

func (m *isolatedInteraction) handleMove(s *Stick, ctx CallbackContext) {
	if ctx.Control != m.tracked {
		return
	}
	pos, ok := ctx.PointerPosition()
	if !ok {
		logger.Debug("move ignored: source is not a pointer", "stick", s.node.Name, "control", ctx.Control.Path())
		return
	}
	s.moveStick(pos, s.eventCamera())
}

func (m *isolatedInteraction) handleRelease(s *Stick) {
	s.endInteraction()
	m.detachMove()
}

func (m *isolatedInteraction) detachMove() {
	if !m.moveAttached {
		return
	}
	m.moveHandle.Remove()
	m.moveHandle = ActionHandle{}
	m.moveAttached = false
	m.tracked = nil
}
