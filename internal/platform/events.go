package platform

type Event interface{}

type Quit struct{}

type WindowChange struct {
	Event uint8
}

type KeyPress struct {
	Code  uint64
	Label string
}
type KeyRelease struct {
	Code  uint64
	Label string
}
type ButtonPress struct {
	Button uint8
	X, Y   int32
}
type ButtonRelease struct {
	Button uint8
	X, Y   int32
}
type MotionNotify struct {
	X, Y       int32
	XRel, YRel int32
}
type MouseWheel struct {
	DeltaX, DeltaY int32
	X, Y           int32
}
type UnexpectedEvent struct {
	Type uint32
}

// Window event identifiers carried by WindowChange.
const (
	WindowShown   uint8 = 1
	WindowHidden  uint8 = 2
	WindowExposed uint8 = 3
	WindowMoved   uint8 = 4
	WindowResized uint8 = 5
	WindowEnter   uint8 = 10
	WindowLeave   uint8 = 11
	WindowClose   uint8 = 14
)
