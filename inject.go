package onscreen

// InjectSource is an InputSource driven by queued frames instead of real
// hardware. Each queued frame is consumed by one InputSystem update; when the
// queue is empty the last state is held. Every Inject call starts from the
// state of the previously queued frame, so a held button stays held until it
// is released explicitly.
type InjectSource struct {
	queue []InputSnapshot
	last  InputSnapshot
}

// NewInjectSource creates an idle source with the pointer at the origin.
func NewInjectSource() *InjectSource {
	return &InjectSource{}
}

// Poll implements InputSource.
func (s *InjectSource) Poll(snap *InputSnapshot) {
	if len(s.queue) > 0 {
		s.last = s.queue[0]
		copy(s.queue, s.queue[1:])
		s.queue = s.queue[:len(s.queue)-1]
	}
	snap.Mouse = s.last.Mouse
	snap.MouseButtons = s.last.MouseButtons
	snap.Pen = s.last.Pen
	snap.PenTip = s.last.PenTip
	snap.Trigger = s.last.Trigger
	snap.Touches = append(snap.Touches[:0], s.last.Touches...)
}

// Pending returns the number of queued frames.
func (s *InjectSource) Pending() int {
	return len(s.queue)
}

// next returns a copy of the most recently queued state for modification.
func (s *InjectSource) next() InputSnapshot {
	prev := s.last
	if len(s.queue) > 0 {
		prev = s.queue[len(s.queue)-1]
	}
	prev.Touches = append([]TouchPoint(nil), prev.Touches...)
	return prev
}

func (s *InjectSource) push(f InputSnapshot) {
	s.queue = append(s.queue, f)
}

// InjectMousePress queues a left-button press at the given screen position.
func (s *InjectSource) InjectMousePress(x, y float64) {
	f := s.next()
	f.Mouse = Vec2{x, y}
	f.MouseButtons[MouseButtonLeft] = true
	s.push(f)
}

// InjectMouseMove queues a cursor move. Held buttons stay held, so use this
// between InjectMousePress and InjectMouseRelease to simulate a drag.
func (s *InjectSource) InjectMouseMove(x, y float64) {
	f := s.next()
	f.Mouse = Vec2{x, y}
	s.push(f)
}

// InjectMouseRelease queues a left-button release at the given screen position.
func (s *InjectSource) InjectMouseRelease(x, y float64) {
	f := s.next()
	f.Mouse = Vec2{x, y}
	f.MouseButtons[MouseButtonLeft] = false
	s.push(f)
}

// InjectMouseDrag queues a full drag: press at from, frames-2 linearly
// interpolated moves, and release at to. Minimum frames is 2.
func (s *InjectSource) InjectMouseDrag(from, to Vec2, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectMousePress(from.X, from.Y)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMouseMove(from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t)
	}
	s.InjectMouseRelease(to.X, to.Y)
}

// InjectTouch queues a frame where touch id is down at (x, y). The touch
// begins if it was not down before.
func (s *InjectSource) InjectTouch(id TouchID, x, y float64) {
	f := s.next()
	for i := range f.Touches {
		if f.Touches[i].ID == id {
			f.Touches[i].Position = Vec2{x, y}
			s.push(f)
			return
		}
	}
	f.Touches = append(f.Touches, TouchPoint{ID: id, Position: Vec2{x, y}})
	s.push(f)
}

// InjectTouchEnd queues a frame where touch id is lifted.
func (s *InjectSource) InjectTouchEnd(id TouchID) {
	f := s.next()
	kept := f.Touches[:0]
	for _, tp := range f.Touches {
		if tp.ID != id {
			kept = append(kept, tp)
		}
	}
	f.Touches = kept
	s.push(f)
}

// InjectPen queues a pen frame at (x, y) with the tip down or up.
func (s *InjectSource) InjectPen(x, y float64, tip bool) {
	f := s.next()
	f.Pen = Vec2{x, y}
	f.PenTip = tip
	s.push(f)
}

// InjectTrigger queues an XR trigger press or release.
func (s *InjectSource) InjectTrigger(pressed bool) {
	f := s.next()
	f.Trigger = pressed
	s.push(f)
}

// InjectIdle queues a frame that repeats the previous state.
func (s *InjectSource) InjectIdle() {
	s.push(s.next())
}
