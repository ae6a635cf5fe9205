package onscreen

import "fmt"

// ValueSink receives the values an on-screen control produces.
type ValueSink interface {
	SendValue(v Vec2)
}

// OnScreenControl feeds a control of a virtual device, addressed by a path
// such as "<Gamepad>/leftStick". All on-screen controls of one input system
// that name the same layout share one virtual device.
type OnScreenControl struct {
	path    string
	device  *Gamepad
	control *Control
}

// BindControl resolves controlPath against sys, creating the virtual device
// on first use.
func BindControl(sys *InputSystem, controlPath string) (*OnScreenControl, error) {
	b, err := ParseBinding(controlPath)
	if err != nil {
		return nil, err
	}
	dev, err := sys.VirtualDevice(b.Layout())
	if err != nil {
		return nil, err
	}
	ctrl := findControl(dev, b.control)
	if ctrl == nil || ctrl.Kind != ControlVector2 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownControl, controlPath)
	}
	return &OnScreenControl{path: controlPath, device: dev, control: ctrl}, nil
}

// SendValue implements ValueSink. The value is readable immediately and is
// reported as a device actuation on the next input update.
func (c *OnScreenControl) SendValue(v Vec2) {
	c.device.write(c.control, v)
}

// Path returns the bound control path.
func (c *OnScreenControl) Path() string { return c.path }

// Control returns the bound control.
func (c *OnScreenControl) Control() *Control { return c.control }

// Device returns the virtual device the control belongs to.
func (c *OnScreenControl) Device() *Gamepad { return c.device }
