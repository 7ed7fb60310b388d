package gfx

import (
	"fmt"

	"github.com/kjkrol/goshim/internal/platform"
)

// EventType codes match the native library's event type values.
type EventType uint32

const (
	UnknownEvent    EventType = 0
	QuitEvent       EventType = 0x100
	WindowEvent     EventType = 0x200
	KeyDown         EventType = 0x300
	KeyUp           EventType = 0x301
	MouseMotion     EventType = 0x400
	MouseButtonDown EventType = 0x401
	MouseButtonUp   EventType = 0x402
	MouseWheel      EventType = 0x403
)

func (t EventType) String() string {
	switch t {
	case QuitEvent:
		return "quit"
	case WindowEvent:
		return "window"
	case KeyDown:
		return "key-down"
	case KeyUp:
		return "key-up"
	case MouseMotion:
		return "mouse-motion"
	case MouseButtonDown:
		return "mouse-button-down"
	case MouseButtonUp:
		return "mouse-button-up"
	case MouseWheel:
		return "mouse-wheel"
	default:
		return fmt.Sprintf("event(0x%x)", uint32(t))
	}
}

type WindowEventID uint8

const (
	WindowShown   = WindowEventID(platform.WindowShown)
	WindowHidden  = WindowEventID(platform.WindowHidden)
	WindowExposed = WindowEventID(platform.WindowExposed)
	WindowMoved   = WindowEventID(platform.WindowMoved)
	WindowResized = WindowEventID(platform.WindowResized)
	WindowEnter   = WindowEventID(platform.WindowEnter)
	WindowLeave   = WindowEventID(platform.WindowLeave)
	WindowClose   = WindowEventID(platform.WindowClose)
)

// Event is one polled input or window event. Fields that do not apply to
// Type are zero.
type Event struct {
	Type EventType

	// Mouse position, and relative motion for MouseMotion.
	X, Y       int32
	XRel, YRel int32
	Button     uint8

	// Key scancode and key name.
	Code  uint64
	Label string

	WheelX, WheelY int32
	Window         WindowEventID
}

func (e Event) IsQuit() bool        { return e.Type == QuitEvent }
func (e Event) IsMouseMotion() bool { return e.Type == MouseMotion }

func NewQuitEvent() Event { return Event{Type: QuitEvent} }

func NewMouseMotionEvent(x, y, xrel, yrel int32) Event {
	return Event{Type: MouseMotion, X: x, Y: y, XRel: xrel, YRel: yrel}
}

func convert(event platform.Event) Event {
	switch e := event.(type) {
	case platform.Quit:
		return Event{Type: QuitEvent}
	case platform.WindowChange:
		return Event{Type: WindowEvent, Window: WindowEventID(e.Event)}
	case platform.KeyPress:
		return Event{Type: KeyDown, Code: e.Code, Label: e.Label}
	case platform.KeyRelease:
		return Event{Type: KeyUp, Code: e.Code, Label: e.Label}
	case platform.ButtonPress:
		return Event{Type: MouseButtonDown, Button: e.Button, X: e.X, Y: e.Y}
	case platform.ButtonRelease:
		return Event{Type: MouseButtonUp, Button: e.Button, X: e.X, Y: e.Y}
	case platform.MotionNotify:
		return Event{Type: MouseMotion, X: e.X, Y: e.Y, XRel: e.XRel, YRel: e.YRel}
	case platform.MouseWheel:
		return Event{Type: MouseWheel, WheelX: e.DeltaX, WheelY: e.DeltaY, X: e.X, Y: e.Y}
	case platform.UnexpectedEvent:
		return Event{Type: EventType(e.Type)}
	default:
		return Event{Type: UnknownEvent}
	}
}

func (e Event) native() (platform.Event, error) {
	switch e.Type {
	case QuitEvent:
		return platform.Quit{}, nil
	case WindowEvent:
		return platform.WindowChange{Event: uint8(e.Window)}, nil
	case KeyDown:
		return platform.KeyPress{Code: e.Code, Label: e.Label}, nil
	case KeyUp:
		return platform.KeyRelease{Code: e.Code, Label: e.Label}, nil
	case MouseButtonDown:
		return platform.ButtonPress{Button: e.Button, X: e.X, Y: e.Y}, nil
	case MouseButtonUp:
		return platform.ButtonRelease{Button: e.Button, X: e.X, Y: e.Y}, nil
	case MouseMotion:
		return platform.MotionNotify{X: e.X, Y: e.Y, XRel: e.XRel, YRel: e.YRel}, nil
	case MouseWheel:
		return platform.MouseWheel{DeltaX: e.WheelX, DeltaY: e.WheelY, X: e.X, Y: e.Y}, nil
	default:
		return nil, newError(KindInvalid, "push event", fmt.Errorf("unsupported event type %s", e.Type))
	}
}
