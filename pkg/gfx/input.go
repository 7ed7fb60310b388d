package gfx

// MouseState is the pointer as last reported by the event queue.
type MouseState struct {
	X, Y int32
	Down bool
}

// InputState folds polled events into what a simple game loop asks every
// frame: is the program still running, and where is the mouse.
type InputState struct {
	Running bool
	Mouse   MouseState
}

func (s *InputState) update(e Event) {
	switch e.Type {
	case QuitEvent:
		s.Running = false
	case MouseMotion:
		s.Mouse.X, s.Mouse.Y = e.X, e.Y
	case MouseButtonDown:
		s.Mouse.X, s.Mouse.Y = e.X, e.Y
		s.Mouse.Down = true
	case MouseButtonUp:
		s.Mouse.X, s.Mouse.Y = e.X, e.Y
		s.Mouse.Down = false
	}
}

// Input returns the state built from every event polled so far. Running
// stays true until a quit event is seen.
func (v *Video) Input() InputState {
	if v == nil {
		return InputState{}
	}
	return v.input
}

// HandleEvents drains the queue into Input and returns how many events were
// consumed.
func (v *Video) HandleEvents() int {
	return v.Drain(func(Event) {}, DrainAll())
}

func (v *Video) ShowCursor(show bool) error {
	if v == nil {
		return newError(KindInvalid, "show cursor", nil)
	}
	if v.closed {
		return newError(KindDestroyed, "show cursor", nil)
	}
	if err := v.driver.ShowCursor(show); err != nil {
		return newError(KindRender, "show cursor", err)
	}
	return nil
}

func (v *Video) CursorVisible() bool {
	if v == nil || v.closed {
		return false
	}
	return v.driver.CursorVisible()
}
