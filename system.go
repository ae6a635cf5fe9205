package onscreen

import "fmt"

type switchHandler struct {
	id uint32
	fn func(from, to Device)
}

// InputSystem owns the devices, polls an InputSource once per frame, and
// evaluates registered actions.
//
// With auto-switch enabled the system tracks the most recently actuated
// device. When that device changes, every in-progress shared action is
// canceled and device-switch listeners are notified. Private actions are
// never touched.
type InputSystem struct {
	source InputSource
	snap   InputSnapshot

	mouse       *Mouse
	pen         *Pen
	touchscreen *Touchscreen
	xr          *XRController
	virtual     []*Gamepad
	devices     []Device
	generation  uint64

	actions []*Action

	autoSwitch bool
	current    Device
	onSwitch   []switchHandler
	nextID     uint32
}

// NewInputSystem creates an input system reading from src.
func NewInputSystem(src InputSource) *InputSystem {
	s := &InputSystem{
		source:      src,
		mouse:       newMouse(),
		pen:         newPen(),
		touchscreen: newTouchscreen(),
		xr:          newXRController(),
		generation:  1,
	}
	s.devices = []Device{s.mouse, s.pen, s.touchscreen, s.xr}
	return s
}

// SetSource replaces the input source.
func (s *InputSystem) SetSource(src InputSource) { s.source = src }

// Mouse returns the mouse device.
func (s *InputSystem) Mouse() *Mouse { return s.mouse }

// Pen returns the pen device.
func (s *InputSystem) Pen() *Pen { return s.pen }

// Touchscreen returns the touchscreen device.
func (s *InputSystem) Touchscreen() *Touchscreen { return s.touchscreen }

// XRController returns the XR controller device.
func (s *InputSystem) XRController() *XRController { return s.xr }

// Devices returns all devices. The slice MUST NOT be mutated.
func (s *InputSystem) Devices() []Device { return s.devices }

// VirtualDevice returns the virtual device for layout, creating it on first
// use. Only the "Gamepad" layout can be simulated.
func (s *InputSystem) VirtualDevice(layout string) (*Gamepad, error) {
	if layout != "Gamepad" {
		return nil, fmt.Errorf("%w: layout %q cannot be simulated", ErrUnknownControl, layout)
	}
	if len(s.virtual) == 0 {
		g := newGamepad()
		s.virtual = append(s.virtual, g)
		s.devices = append(s.devices, g)
		s.generation++
	}
	return s.virtual[0], nil
}

// AddAction registers a for evaluation. Adding an action twice is a no-op.
func (s *InputSystem) AddAction(a *Action) {
	for _, have := range s.actions {
		if have == a {
			return
		}
	}
	s.actions = append(s.actions, a)
}

// RemoveAction unregisters a.
func (s *InputSystem) RemoveAction(a *Action) {
	for i, have := range s.actions {
		if have == a {
			copy(s.actions[i:], s.actions[i+1:])
			s.actions[len(s.actions)-1] = nil
			s.actions = s.actions[:len(s.actions)-1]
			return
		}
	}
}

// NewAction creates an action and registers it.
func (s *InputSystem) NewAction(name string, typ ActionType) *Action {
	a := NewAction(name, typ)
	s.AddAction(a)
	return a
}

// SetAutoSwitch enables switching the current device to whichever device
// was actuated last.
func (s *InputSystem) SetAutoSwitch(enabled bool) { s.autoSwitch = enabled }

// CurrentDevice returns the most recently actuated device when auto-switch is on.
func (s *InputSystem) CurrentDevice() Device { return s.current }

// SwitchHandle removes a listener added with OnDeviceSwitch.
type SwitchHandle struct {
	id  uint32
	sys *InputSystem
}

// OnDeviceSwitch registers fn to run after the current device changes.
func (s *InputSystem) OnDeviceSwitch(fn func(from, to Device)) SwitchHandle {
	s.nextID++
	s.onSwitch = append(s.onSwitch, switchHandler{id: s.nextID, fn: fn})
	return SwitchHandle{id: s.nextID, sys: s}
}

// Remove unregisters the listener.
func (h SwitchHandle) Remove() {
	if h.sys == nil {
		return
	}
	l := h.sys.onSwitch
	for i := range l {
		if l[i].id == h.id {
			copy(l[i:], l[i+1:])
			l[len(l)-1] = switchHandler{}
			h.sys.onSwitch = l[:len(l)-1]
			return
		}
	}
}

// Update polls the source, applies queued virtual device writes, and
// evaluates every enabled action.
func (s *InputSystem) Update() {
	for _, d := range s.devices {
		for _, c := range d.Controls() {
			c.changed = false
		}
	}

	for _, g := range s.virtual {
		if g.flush() {
			s.actuated(g)
		}
	}

	if s.source != nil {
		s.source.Poll(&s.snap)
	}
	s.applySnapshot()

	for i := 0; i < len(s.actions); i++ {
		a := s.actions[i]
		if !a.enabled {
			continue
		}
		a.resolve(s.devices, s.generation)
		a.evaluate()
	}
}

func (s *InputSystem) applySnapshot() {
	snap := &s.snap

	m := s.mouse
	moved := m.position.setValue(snap.Mouse)
	pressed := m.leftButton.setPressed(snap.MouseButtons[MouseButtonLeft])
	pressed = m.rightButton.setPressed(snap.MouseButtons[MouseButtonRight]) || pressed
	pressed = m.middle.setPressed(snap.MouseButtons[MouseButtonMiddle]) || pressed
	if moved || pressed {
		s.actuated(m)
	}

	p := s.pen
	moved = p.position.setValue(snap.Pen)
	if p.tip.setPressed(snap.PenTip) || (moved && p.tip.pressed) {
		s.actuated(p)
	}

	t := s.touchscreen
	var seen [maxTouches]bool
	touched := false
	for _, tp := range snap.Touches {
		i := t.slotFor(tp.ID)
		if i < 0 {
			continue
		}
		seen[i] = true
		if t.slots[i].press.setPressed(true) {
			touched = true
		}
		if t.slots[i].position.setValue(tp.Position) {
			touched = true
		}
	}
	for i := range t.slots {
		if t.slots[i].used && !seen[i] {
			t.slots[i].used = false
			t.slots[i].press.setPressed(false)
			touched = true
		}
	}
	if t.primary < 0 || !seen[t.primary] {
		t.primary = -1
		for i := range seen {
			if seen[i] {
				t.primary = i
				break
			}
		}
	}
	if touched {
		s.actuated(t)
	}

	if s.xr.trigger.setPressed(snap.Trigger) {
		s.actuated(s.xr)
	}
}

// actuated records input from d and performs an auto-switch when needed.
func (s *InputSystem) actuated(d Device) {
	if !s.autoSwitch || d == s.current {
		return
	}
	from := s.current
	s.current = d
	if from == nil {
		return
	}
	logger.Debug("device switch", "from", from.Layout(), "to", d.Layout())
	for _, a := range s.actions {
		if a.shared && a.enabled {
			a.Cancel()
		}
	}
	for i := 0; i < len(s.onSwitch); i++ {
		s.onSwitch[i].fn(from, d)
	}
}
