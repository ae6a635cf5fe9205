package onscreen

import (
	"fmt"
	"path"
	"strings"
)

// Binding ties an action to controls matched by a path such as
// "<Touchscreen>/touch*/press". The control part may use path.Match
// wildcards; '*' never crosses a '/'.
type Binding struct {
	Path    string
	layout  string
	control string
}

// ParseBinding validates a binding path of the form "<Layout>/control".
func ParseBinding(p string) (Binding, error) {
	if !strings.HasPrefix(p, "<") {
		return Binding{}, fmt.Errorf("%w: %q: missing <layout>", ErrInvalidBinding, p)
	}
	end := strings.Index(p, ">")
	if end < 2 {
		return Binding{}, fmt.Errorf("%w: %q: empty or unterminated layout", ErrInvalidBinding, p)
	}
	rest := p[end+1:]
	if !strings.HasPrefix(rest, "/") || len(rest) < 2 {
		return Binding{}, fmt.Errorf("%w: %q: missing control", ErrInvalidBinding, p)
	}
	control := rest[1:]
	if _, err := path.Match(control, ""); err != nil {
		return Binding{}, fmt.Errorf("%w: %q: %v", ErrInvalidBinding, p, err)
	}
	return Binding{Path: p, layout: p[1:end], control: control}, nil
}

// Layout returns the device layout the binding targets.
func (b Binding) Layout() string { return b.layout }

// matches reports whether c satisfies the binding.
func (b Binding) matches(c *Control) bool {
	if !strings.EqualFold(c.Device.Layout(), b.layout) {
		return false
	}
	ok, _ := path.Match(b.control, c.Name)
	return ok
}
