package gfx

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind tells callers which stage of the pipeline failed.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindInit: the video subsystem could not be initialized.
	KindInit
	// KindCreate: a window, renderer or texture could not be created. Decode
	// and colorkey failures land here as well.
	KindCreate
	// KindRender: a copy, clear or present call failed inside the driver.
	KindRender
	// KindDestroyed: the object, or one of its parents, was already destroyed.
	KindDestroyed
	// KindInvalid: a nil object, or a texture paired with the wrong renderer.
	KindInvalid
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init failure"
	case KindCreate:
		return "create failure"
	case KindRender:
		return "render failure"
	case KindDestroyed:
		return "use after destroy"
	case KindInvalid:
		return "invalid argument"
	default:
		return "unknown failure"
	}
}

type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Op == "" && e.Err == nil:
		return "gfx: " + e.Kind.String()
	case e.Err == nil:
		return fmt.Sprintf("gfx: %s: %s", e.Op, e.Kind)
	default:
		return fmt.Sprintf("gfx: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the kind sentinels below, so errors.Is(err, ErrRender) works
// for any wrapped *Error of that kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Op != "" || t.Err != nil {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrInit      = &Error{Kind: KindInit}
	ErrCreate    = &Error{Kind: KindCreate}
	ErrRender    = &Error{Kind: KindRender}
	ErrDestroyed = &Error{Kind: KindDestroyed}
	ErrInvalid   = &Error{Kind: KindInvalid}
)

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

func newError(kind ErrorKind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}
