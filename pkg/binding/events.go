package binding

import "github.com/kjkrol/goshim/pkg/gfx"

// PollEvent fetches the next pending event into the session's slot and
// reports whether there was one. When the queue is empty the slot keeps the
// last event seen.
func (s *Session) PollEvent() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.video == nil {
		return false
	}
	event, ok := s.video.PollEvent()
	if ok {
		s.last = event
	}
	return ok
}

func (s *Session) lastEvent() gfx.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Session) IsLastEventQuit() bool { return s.lastEvent().IsQuit() }

func (s *Session) LastEventType() uint32 { return uint32(s.lastEvent().Type) }

func (s *Session) MouseX() int32 { return s.lastEvent().X }

func (s *Session) MouseY() int32 { return s.lastEvent().Y }

func (s *Session) MouseXrel() int32 { return s.lastEvent().XRel }

func (s *Session) MouseYrel() int32 { return s.lastEvent().YRel }

// HandleEvents drains every pending event, leaving the last one in the slot,
// and returns how many were consumed. Running and the MouseState accessors
// reflect everything polled so far.
func (s *Session) HandleEvents() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.video == nil {
		return 0
	}
	return s.video.Drain(func(e gfx.Event) { s.last = e }, gfx.DrainAll())
}

// Running reports whether the session is initialized and no quit event has
// been polled.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.video != nil && s.video.Input().Running
}

func (s *Session) mouse() gfx.MouseState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.video.Input().Mouse
}

func (s *Session) MouseStateX() int32 { return s.mouse().X }

func (s *Session) MouseStateY() int32 { return s.mouse().Y }

func (s *Session) MouseDown() bool { return s.mouse().Down }

func (s *Session) ShowCursor(show bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.video == nil {
		return s.fail(errNotInitialized)
	}
	if err := s.video.ShowCursor(show); err != nil {
		return s.fail(err)
	}
	return StatusOK
}

func (s *Session) CursorVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.video.CursorVisible()
}

// PushQuit enqueues a quit event, as closing the last window would.
func (s *Session) PushQuit() int {
	return s.push(gfx.NewQuitEvent())
}

func (s *Session) PushMouseMotion(x, y, xrel, yrel int32) int {
	return s.push(gfx.NewMouseMotionEvent(x, y, xrel, yrel))
}

func (s *Session) PushMouseButton(down bool, button uint8, x, y int32) int {
	kind := gfx.MouseButtonUp
	if down {
		kind = gfx.MouseButtonDown
	}
	return s.push(gfx.Event{Type: kind, Button: button, X: x, Y: y})
}

func (s *Session) push(event gfx.Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.video == nil {
		return s.fail(errNotInitialized)
	}
	if err := s.video.PushEvent(event); err != nil {
		return s.fail(err)
	}
	return StatusOK
}
