package onscreen

import "strconv"

// maxTouches is the number of simultaneous touches a Touchscreen tracks.
const maxTouches = 10

// ControlKind distinguishes button controls from 2D value controls.
type ControlKind uint8

const (
	ControlButton  ControlKind = iota // pressed / released
	ControlVector2                    // 2D value such as a position or stick
)

// Control is a single input on a device, e.g. "leftButton" or "touch3/position".
type Control struct {
	Name   string
	Device Device
	Kind   ControlKind

	pressed bool
	value   Vec2
	changed bool
	queued  bool

	// position links button controls to the position control of the same
	// pointer (mouse button -> mouse position, touchN/press -> touchN/position).
	position *Control
}

// IsPressed reports whether a button control is held.
func (c *Control) IsPressed() bool { return c.pressed }

// ReadVec2 returns the current value of a Vector2 control.
func (c *Control) ReadVec2() Vec2 { return c.value }

// Path returns the control's full path, e.g. "<Mouse>/leftButton".
func (c *Control) Path() string {
	return "<" + c.Device.Layout() + ">/" + c.Name
}

func (c *Control) setPressed(p bool) bool {
	if c.pressed == p {
		return false
	}
	c.pressed = p
	c.changed = true
	return true
}

func (c *Control) setValue(v Vec2) bool {
	if c.value == v {
		return false
	}
	c.value = v
	c.changed = true
	return true
}

// Device is an input device known to an InputSystem.
type Device interface {
	// Layout is the name used in binding paths, e.g. "Mouse".
	Layout() string
	// Controls lists the device's controls. The slice MUST NOT be mutated.
	Controls() []*Control
}

// Pointer is a device that has a screen position.
type Pointer interface {
	Device
	Position() Vec2
}

// Mouse is the system mouse.
type Mouse struct {
	position                        *Control
	leftButton, rightButton, middle *Control
	controls                        []*Control
}

func newMouse() *Mouse {
	m := &Mouse{}
	m.position = &Control{Name: "position", Device: m, Kind: ControlVector2}
	m.leftButton = &Control{Name: "leftButton", Device: m, position: m.position}
	m.rightButton = &Control{Name: "rightButton", Device: m, position: m.position}
	m.middle = &Control{Name: "middleButton", Device: m, position: m.position}
	m.controls = []*Control{m.position, m.leftButton, m.rightButton, m.middle}
	return m
}

func (m *Mouse) Layout() string       { return "Mouse" }
func (m *Mouse) Controls() []*Control { return m.controls }
func (m *Mouse) Position() Vec2       { return m.position.value }

// Button returns the control for a mouse button.
func (m *Mouse) Button(b MouseButton) *Control {
	switch b {
	case MouseButtonRight:
		return m.rightButton
	case MouseButtonMiddle:
		return m.middle
	default:
		return m.leftButton
	}
}

// Pen is a stylus. Ebitengine reports no pen input, so only injected sources
// drive it.
type Pen struct {
	position *Control
	tip      *Control
	controls []*Control
}

func newPen() *Pen {
	p := &Pen{}
	p.position = &Control{Name: "position", Device: p, Kind: ControlVector2}
	p.tip = &Control{Name: "tip", Device: p, position: p.position}
	p.controls = []*Control{p.position, p.tip}
	return p
}

func (p *Pen) Layout() string       { return "Pen" }
func (p *Pen) Controls() []*Control { return p.controls }
func (p *Pen) Position() Vec2       { return p.position.value }

// Tip returns the pen tip contact control.
func (p *Pen) Tip() *Control { return p.tip }

type touchSlot struct {
	id       TouchID
	used     bool
	press    *Control
	position *Control
}

// Touchscreen tracks up to ten touches in fixed slots touch0..touch9.
type Touchscreen struct {
	slots    [maxTouches]touchSlot
	primary  int
	controls []*Control
}

func newTouchscreen() *Touchscreen {
	t := &Touchscreen{primary: -1}
	for i := range t.slots {
		prefix := "touch" + strconv.Itoa(i)
		pos := &Control{Name: prefix + "/position", Device: t, Kind: ControlVector2}
		press := &Control{Name: prefix + "/press", Device: t, position: pos}
		t.slots[i].press = press
		t.slots[i].position = pos
		t.controls = append(t.controls, press, pos)
	}
	return t
}

func (t *Touchscreen) Layout() string       { return "Touchscreen" }
func (t *Touchscreen) Controls() []*Control { return t.controls }

// Position returns the primary (oldest active) touch position.
func (t *Touchscreen) Position() Vec2 {
	if t.primary < 0 {
		return Vec2{}
	}
	return t.slots[t.primary].position.value
}

// Touch returns the press and position controls of slot i.
func (t *Touchscreen) Touch(i int) (press, position *Control) {
	return t.slots[i].press, t.slots[i].position
}

// slotFor maps a touch ID to a slot, allocating a free one.
// Returns -1 if all slots are in use.
func (t *Touchscreen) slotFor(id TouchID) int {
	for i := range t.slots {
		if t.slots[i].used && t.slots[i].id == id {
			return i
		}
	}
	for i := range t.slots {
		if !t.slots[i].used {
			t.slots[i].used = true
			t.slots[i].id = id
			return i
		}
	}
	return -1
}

// XRController is a tracked controller with a trigger. It has no screen
// position and is therefore not a Pointer.
type XRController struct {
	trigger  *Control
	controls []*Control
}

func newXRController() *XRController {
	x := &XRController{}
	x.trigger = &Control{Name: "trigger", Device: x}
	x.controls = []*Control{x.trigger}
	return x
}

func (x *XRController) Layout() string       { return "XRController" }
func (x *XRController) Controls() []*Control { return x.controls }

// Trigger returns the trigger control.
func (x *XRController) Trigger() *Control { return x.trigger }

// Gamepad is a virtual gamepad fed by on-screen controls.
type Gamepad struct {
	leftStick, rightStick, dpad *Control
	controls                    []*Control
	pending                     bool
}

func newGamepad() *Gamepad {
	g := &Gamepad{}
	g.leftStick = &Control{Name: "leftStick", Device: g, Kind: ControlVector2}
	g.rightStick = &Control{Name: "rightStick", Device: g, Kind: ControlVector2}
	g.dpad = &Control{Name: "dpad", Device: g, Kind: ControlVector2}
	g.controls = []*Control{g.leftStick, g.rightStick, g.dpad}
	return g
}

func (g *Gamepad) Layout() string       { return "Gamepad" }
func (g *Gamepad) Controls() []*Control { return g.controls }

// LeftStick returns the left stick control.
func (g *Gamepad) LeftStick() *Control { return g.leftStick }

// RightStick returns the right stick control.
func (g *Gamepad) RightStick() *Control { return g.rightStick }

// write stores a value immediately and queues the actuation for the next
// InputSystem.Update, the way a queued device event would be.
func (g *Gamepad) write(c *Control, v Vec2) {
	c.value = v
	c.queued = true
	g.pending = true
}

// flush marks queued writes as changed. Reports whether anything was queued.
func (g *Gamepad) flush() bool {
	if !g.pending {
		return false
	}
	g.pending = false
	for _, c := range g.controls {
		if c.queued {
			c.queued = false
			c.changed = true
		}
	}
	return true
}

// findControl returns the device control with the given name, or nil.
func findControl(d Device, name string) *Control {
	for _, c := range d.Controls() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
