package onscreen

import "github.com/hajimehoshi/ebiten/v2"

// TouchID identifies a touch for as long as the finger stays down.
type TouchID = ebiten.TouchID

// TouchPoint is one active touch in an InputSnapshot.
type TouchPoint struct {
	ID       TouchID
	Position Vec2
}

// InputSnapshot is the raw device state for one frame. The InputSystem owns
// a single snapshot and hands it to its source every update.
type InputSnapshot struct {
	Mouse        Vec2
	MouseButtons [3]bool // indexed by MouseButton
	Pen          Vec2
	PenTip       bool
	Touches      []TouchPoint
	Trigger      bool
}

// InputSource fills an InputSnapshot once per frame. Implementations must
// reuse snap.Touches rather than allocate a new slice.
type InputSource interface {
	Poll(snap *InputSnapshot)
}

// EbitenSource reads mouse, touch, and gamepad state from Ebitengine.
// The standard-layout right trigger of any connected gamepad stands in for
// the XR controller trigger. Ebitengine has no pen API, so the pen stays idle.
type EbitenSource struct {
	touchIDs []ebiten.TouchID
	gamepads []ebiten.GamepadID
}

// NewEbitenSource creates a source for use inside an ebiten.Game loop.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Poll implements InputSource.
func (s *EbitenSource) Poll(snap *InputSnapshot) {
	mx, my := ebiten.CursorPosition()
	snap.Mouse = Vec2{float64(mx), float64(my)}
	snap.MouseButtons[MouseButtonLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	snap.MouseButtons[MouseButtonRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	snap.MouseButtons[MouseButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	snap.Touches = snap.Touches[:0]
	for _, id := range s.touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		snap.Touches = append(snap.Touches, TouchPoint{ID: id, Position: Vec2{float64(tx), float64(ty)}})
	}

	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	snap.Trigger = false
	for _, id := range s.gamepads {
		if ebiten.IsStandardGamepadLayoutAvailable(id) &&
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight) {
			snap.Trigger = true
			break
		}
	}
}
