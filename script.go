package onscreen

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action  string  `yaml:"action"`
	X       float64 `yaml:"x,omitempty"`
	Y       float64 `yaml:"y,omitempty"`
	FromX   float64 `yaml:"fromX,omitempty"`
	FromY   float64 `yaml:"fromY,omitempty"`
	ToX     float64 `yaml:"toX,omitempty"`
	ToY     float64 `yaml:"toY,omitempty"`
	Touch   int     `yaml:"touch,omitempty"`
	Pressed bool    `yaml:"pressed,omitempty"`
	Frames  int     `yaml:"frames,omitempty"`
}

// inputScript is the top-level structure of an input script.
type inputScript struct {
	Steps []scriptStep `yaml:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true, "drag": true,
	"touch": true, "touch-end": true, "pen": true, "trigger": true, "wait": true,
}

// ScriptRunner feeds scripted input into an InjectSource one step at a time.
// Attach it to a Scene with SetInputScript.
type ScriptRunner struct {
	src       *InjectSource
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadInputScript parses a YAML (or JSON) input script whose frames are
// queued on src.
//
//	steps:
//	  - {action: press, x: 120, y: 120}
//	  - {action: move, x: 150, y: 160}
//	  - {action: wait, frames: 3}
//	  - {action: release, x: 150, y: 160}
func LoadInputScript(data []byte, src *InjectSource) (*ScriptRunner, error) {
	var script inputScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{src: src, steps: script.Steps}, nil
}

// SetInputScript attaches a runner to the scene. The runner advances from
// Scene.Update before input is polled each frame. Pass nil to detach.
func (s *Scene) SetInputScript(r *ScriptRunner) {
	s.script = r
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step() {
	if r.done {
		return
	}
	// Wait for queued frames to drain before advancing.
	if r.src.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		r.src.InjectMousePress(st.X, st.Y)
	case "move":
		r.src.InjectMouseMove(st.X, st.Y)
	case "release":
		r.src.InjectMouseRelease(st.X, st.Y)
	case "drag":
		r.src.InjectMouseDrag(Vec2{st.FromX, st.FromY}, Vec2{st.ToX, st.ToY}, st.Frames)
	case "touch":
		r.src.InjectTouch(TouchID(st.Touch), st.X, st.Y)
	case "touch-end":
		r.src.InjectTouchEnd(TouchID(st.Touch))
	case "pen":
		r.src.InjectPen(st.X, st.Y, st.Pressed)
	case "trigger":
		r.src.InjectTrigger(st.Pressed)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.src.Pending() == 0 {
		r.done = true
	}
}
