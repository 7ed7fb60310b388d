package gfx

import (
	"log/slog"

	"github.com/kjkrol/goshim/internal/platform"
)

// Video owns the initialized video subsystem and every window created
// through it. Calls must come from the goroutine that called Open.
type Video struct {
	driver  platform.Driver
	log     *slog.Logger
	windows []*Window
	input   InputState
	closed  bool
}

// Open selects a driver and initializes its video subsystem.
func Open(conf Config) (*Video, error) {
	driver, err := platform.Select(conf.Driver)
	if err != nil {
		return nil, newError(KindInit, "open", err)
	}
	if err := driver.Init(); err != nil {
		return nil, newError(KindInit, "init", err)
	}
	logger := conf.Logger
	if logger == nil {
		logger = discardLogger()
	}
	logger.Debug("video subsystem ready", "driver", driver.Name())
	return &Video{driver: driver, log: logger, input: InputState{Running: true}}, nil
}

func (v *Video) DriverName() string {
	if v == nil || v.driver == nil {
		return ""
	}
	return v.driver.Name()
}

// LastError returns the driver's most recent diagnostic message.
func (v *Video) LastError() string {
	if v == nil || v.driver == nil {
		return ""
	}
	return v.driver.LastError()
}

// Close destroys every remaining window, children first, and shuts the
// subsystem down. Closing twice is a no-op.
func (v *Video) Close() error {
	if v == nil || v.closed {
		return nil
	}
	var first error
	for len(v.windows) > 0 {
		if err := v.windows[len(v.windows)-1].Destroy(); err != nil && first == nil {
			first = err
		}
	}
	v.driver.Quit()
	v.closed = true
	v.log.Debug("video subsystem closed", "driver", v.driver.Name())
	return first
}

func (v *Video) CreateWindow(conf WindowConfig) (*Window, error) {
	if v == nil {
		return nil, newError(KindInvalid, "create window", nil)
	}
	if v.closed {
		return nil, newError(KindDestroyed, "create window", nil)
	}
	native, err := v.driver.CreateWindow(conf.convert())
	if err != nil {
		return nil, newError(KindCreate, "create window", err)
	}
	w := &Window{video: v, native: native, title: conf.Title}
	v.windows = append(v.windows, w)
	width, height := native.Size()
	v.log.Debug("window created", "title", conf.Title, "width", width, "height", height)
	return w, nil
}

// PollEvent returns the next pending event without blocking and folds it
// into Input.
func (v *Video) PollEvent() (Event, bool) {
	if v == nil || v.closed {
		return Event{}, false
	}
	native, ok := v.driver.PollEvent()
	if !ok {
		return Event{}, false
	}
	event := convert(native)
	v.input.update(event)
	return event, true
}

// PushEvent appends an event to the native queue.
func (v *Video) PushEvent(event Event) error {
	if v == nil {
		return newError(KindInvalid, "push event", nil)
	}
	if v.closed {
		return newError(KindDestroyed, "push event", nil)
	}
	native, err := event.native()
	if err != nil {
		return err
	}
	if err := v.driver.PushEvent(native); err != nil {
		return newError(KindRender, "push event", err)
	}
	return nil
}

// Drain hands pending events to handle according to strategy (DrainAll when
// nil) and returns how many were consumed.
func (v *Video) Drain(handle func(Event), strategy EventsConsumerStrategy) int {
	if strategy == nil {
		strategy = DrainAll()
	}
	return strategy.Consume(v.PollEvent, handle)
}

func (v *Video) forget(w *Window) {
	for i, current := range v.windows {
		if current == w {
			copy(v.windows[i:], v.windows[i+1:])
			v.windows[len(v.windows)-1] = nil
			v.windows = v.windows[:len(v.windows)-1]
			return
		}
	}
}
