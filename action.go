package onscreen

// ActionType selects how an action turns control changes into callbacks.
type ActionType uint8

const (
	// ActionButton fires Started and Performed when a bound control is
	// pressed, and Canceled once every bound control is released.
	ActionButton ActionType = iota
	// ActionPassThrough fires Performed for every change of a bound control.
	ActionPassThrough
)

// Phase is the callback kind of an action notification.
type Phase uint8

const (
	PhaseStarted Phase = iota
	PhasePerformed
	PhaseCanceled
	phaseCount

	// PhaseWaiting is the idle state reported by Action.Phase.
	PhaseWaiting Phase = 255
)

func (p Phase) String() string {
	switch p {
	case PhaseStarted:
		return "started"
	case PhasePerformed:
		return "performed"
	case PhaseCanceled:
		return "canceled"
	case PhaseWaiting:
		return "waiting"
	}
	return "unknown"
}

// CallbackContext is passed by value to action callbacks.
type CallbackContext struct {
	Action  *Action
	Control *Control
	Phase   Phase
}

// Device returns the device of the triggering control, or nil.
func (c CallbackContext) Device() Device {
	if c.Control == nil {
		return nil
	}
	return c.Control.Device
}

// PointerPosition returns the screen position of the pointer that triggered
// the callback. For touches this is the position of the same touch, not the
// primary one. ok is false when the source is not a Pointer.
func (c CallbackContext) PointerPosition() (pos Vec2, ok bool) {
	if c.Control == nil {
		return Vec2{}, false
	}
	p, isPointer := c.Control.Device.(Pointer)
	if !isPointer {
		return Vec2{}, false
	}
	switch {
	case c.Control.Kind == ControlVector2:
		return c.Control.value, true
	case c.Control.position != nil:
		return c.Control.position.value, true
	}
	return p.Position(), true
}

type actionHandler struct {
	id uint32
	fn func(CallbackContext)
}

// Action is a named input action. Actions are private unless marked shared;
// only shared actions are canceled when the input system switches devices.
type Action struct {
	name    string
	typ     ActionType
	shared  bool
	enabled bool

	bindings []Binding
	controls []*Control // resolved from bindings, reused across resolves
	resolved uint64     // InputSystem device generation the controls match

	phase  Phase
	active *Control

	handlers [phaseCount][]actionHandler
	nextID   uint32
}

// NewAction creates a disabled action with no bindings. Register it with
// InputSystem.AddAction before enabling.
func NewAction(name string, typ ActionType) *Action {
	return &Action{name: name, typ: typ, phase: PhaseWaiting}
}

// Name returns the action name.
func (a *Action) Name() string { return a.name }

// Type returns the action type.
func (a *Action) Type() ActionType { return a.typ }

// AddBinding appends a binding path. Bindings added after resolution take
// effect on the next update.
func (a *Action) AddBinding(p string) error {
	b, err := ParseBinding(p)
	if err != nil {
		return err
	}
	a.bindings = append(a.bindings, b)
	a.resolved = 0
	return nil
}

// Bindings returns the action's bindings. The slice MUST NOT be mutated.
func (a *Action) Bindings() []Binding { return a.bindings }

// BindingCount returns the number of bindings.
func (a *Action) BindingCount() int { return len(a.bindings) }

// SetShared marks the action as part of shared input state that device
// switching may cancel.
func (a *Action) SetShared(shared bool) { a.shared = shared }

// Shared reports whether the action is shared.
func (a *Action) Shared() bool { return a.shared }

// Enable starts evaluating the action on each InputSystem update.
func (a *Action) Enable() { a.enabled = true }

// Disable stops evaluating the action. An in-progress action is canceled
// first, so Canceled subscribers always see the end of an interaction.
func (a *Action) Disable() {
	a.Cancel()
	a.enabled = false
}

// Enabled reports whether the action is enabled.
func (a *Action) Enabled() bool { return a.enabled }

// Phase returns PhaseWaiting, or PhasePerformed while a button action is held.
func (a *Action) Phase() Phase { return a.phase }

// Cancel ends an in-progress action and fires Canceled. No-op when idle.
func (a *Action) Cancel() {
	if a.phase == PhaseWaiting {
		return
	}
	ctrl := a.active
	a.phase = PhaseWaiting
	a.active = nil
	a.fire(PhaseCanceled, ctrl)
}

// ActionHandle removes a subscription made with Action.Subscribe.
type ActionHandle struct {
	id     uint32
	action *Action
	phase  Phase
}

// Subscribe registers fn for the given phase. The returned handle removes it.
func (a *Action) Subscribe(phase Phase, fn func(CallbackContext)) ActionHandle {
	if phase >= phaseCount {
		panic("onscreen: cannot subscribe to phase " + phase.String())
	}
	a.nextID++
	a.handlers[phase] = append(a.handlers[phase], actionHandler{id: a.nextID, fn: fn})
	return ActionHandle{id: a.nextID, action: a, phase: phase}
}

// Remove unregisters the callback. Removing twice, or removing the zero
// handle, is a no-op.
func (h ActionHandle) Remove() {
	if h.action == nil {
		return
	}
	s := h.action.handlers[h.phase]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = actionHandler{}
			h.action.handlers[h.phase] = s[:len(s)-1]
			return
		}
	}
}

// ListenerCount returns the number of callbacks registered for phase.
func (a *Action) ListenerCount(phase Phase) int {
	if phase >= phaseCount {
		return 0
	}
	return len(a.handlers[phase])
}

// fire calls every callback of phase. The slice is re-read each iteration so
// handlers may subscribe or unsubscribe on other actions while dispatching.
func (a *Action) fire(phase Phase, ctrl *Control) {
	ctx := CallbackContext{Action: a, Control: ctrl, Phase: phase}
	for i := 0; i < len(a.handlers[phase]); i++ {
		a.handlers[phase][i].fn(ctx)
	}
}

// resolve rebuilds the bound control list when bindings or devices changed.
func (a *Action) resolve(devices []Device, generation uint64) {
	if a.resolved == generation {
		return
	}
	a.controls = a.controls[:0]
	for _, b := range a.bindings {
		for _, d := range devices {
			for _, c := range d.Controls() {
				if b.matches(c) {
					a.controls = append(a.controls, c)
				}
			}
		}
	}
	a.resolved = generation
}

// evaluate turns this frame's control changes into callbacks.
func (a *Action) evaluate() {
	switch a.typ {
	case ActionButton:
		a.evaluateButton()
	case ActionPassThrough:
		for _, c := range a.controls {
			if c.changed {
				a.fire(PhasePerformed, c)
			}
		}
	}
}

func (a *Action) evaluateButton() {
	if a.phase == PhaseWaiting {
		for _, c := range a.controls {
			if c.Kind == ControlButton && c.pressed {
				a.active = c
				a.phase = PhasePerformed
				a.fire(PhaseStarted, c)
				a.fire(PhasePerformed, c)
				return
			}
		}
		return
	}
	if a.active != nil && a.active.pressed {
		return
	}
	// Hand over to another held control before giving up.
	for _, c := range a.controls {
		if c.Kind == ControlButton && c.pressed {
			a.active = c
			return
		}
	}
	a.Cancel()
}
