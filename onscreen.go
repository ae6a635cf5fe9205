package onscreen

import (
	"errors"
	"math"
)

// Sentinel errors. Callers match them with errors.Is; the returned errors are
// wrapped with the operation that failed.
var (
	// ErrInvalidArgument is returned when a pointer handler receives a nil event.
	ErrInvalidArgument = errors.New("onscreen: invalid argument")
	// ErrInvalidConfig is returned when a StickConfig fails validation.
	ErrInvalidConfig = errors.New("onscreen: invalid config")
	// ErrInvalidBinding is returned for malformed binding paths.
	ErrInvalidBinding = errors.New("onscreen: invalid binding path")
	// ErrUnknownControl is returned when a control path names no known layout or control.
	ErrUnknownControl = errors.New("onscreen: unknown control")
	// ErrAlreadyStarted is returned by Stick.Start on a stick that is running.
	ErrAlreadyStarted = errors.New("onscreen: already started")
	// ErrNoParent is returned by Stick.Start when the stick node has no parent rectangle.
	ErrNoParent = errors.New("onscreen: stick node has no parent")
	// ErrNotInteractable is returned by Stick.Start when an ancestor of the
	// stick node is not Interactable, which hides the knob from hit testing.
	ErrNotInteractable = errors.New("onscreen: ancestor is not interactable")
)

// Vec2 is a 2D vector used for positions, offsets, and stick values.
type Vec2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Length returns the magnitude of v.
func (v Vec2) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// LengthSq returns the squared magnitude of v.
func (v Vec2) LengthSq() float64 { return v.X*v.X + v.Y*v.Y }

// ClampMagnitude returns v scaled down so its length does not exceed max.
// Direction is preserved. Vectors already within max are returned unchanged.
func (v Vec2) ClampMagnitude(max float64) Vec2 {
	sq := v.LengthSq()
	if sq <= max*max {
		return v
	}
	return v.Scale(max / math.Sqrt(sq))
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// NodeType distinguishes hit-testing behavior for a Node.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node; hit-testable only with a HitShape
	NodeTypeGraphic                   // visual element sized by Width/Height
	NodeTypeCanvas                    // root of a UI canvas with its own render mode
)

// RenderMode selects how a canvas maps to the screen.
type RenderMode uint8

const (
	ScreenSpaceOverlay RenderMode = iota // drawn on top of everything in pure screen space
	ScreenSpaceCamera                    // placed in front of a camera
	WorldSpace                           // lives in the world like any other node
)

// EventType identifies a kind of interaction event forwarded to an EntityStore.
type EventType uint8

const (
	EventPointerDown EventType = iota // a pointer was pressed over a node
	EventDrag                         // a pressed pointer moved past the drag dead zone
	EventPointerUp                    // a pressed pointer was released or canceled
	EventStickValue                   // a stick forwarded a new value to its control
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)
