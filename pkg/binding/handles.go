package binding

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/kjkrol/goshim/pkg/gfx"
)

var (
	errNotInitialized = &gfx.Error{Kind: gfx.KindInit, Op: "session", Err: errors.New("video subsystem not initialized")}
	errNullHandle     = errors.New("null handle")
)

// register must be called with s.mu held.
func (s *Session) register(obj any) Handle {
	s.next++
	h := s.next
	s.objects[h] = obj
	return h
}

// lookup resolves h to an object of type T. Must be called with s.mu held.
func lookup[T any](s *Session, h Handle) (T, error) {
	var zero T
	if h == Null {
		return zero, &gfx.Error{Kind: gfx.KindInvalid, Op: "lookup", Err: errNullHandle}
	}
	obj, ok := s.objects[h]
	if !ok {
		return zero, &gfx.Error{Kind: gfx.KindInvalid, Op: "lookup", Err: fmt.Errorf("unknown handle %d", h)}
	}
	typed, ok := obj.(T)
	if !ok {
		return zero, &gfx.Error{Kind: gfx.KindInvalid, Op: "lookup", Err: fmt.Errorf("handle %d is a %T", h, obj)}
	}
	return typed, nil
}

type destroyable interface {
	Destroyed() bool
}

// prune drops handles whose objects were destroyed, including children that
// went down with a parent.
func (s *Session) prune() {
	for h, obj := range s.objects {
		if d, ok := obj.(destroyable); ok && d.Destroyed() {
			delete(s.objects, h)
		}
	}
}

func (s *Session) fail(err error) int {
	s.lastErr = err.Error()
	s.lastKind = gfx.KindOf(err)
	return StatusError
}

func (s *Session) failHandle(err error) Handle {
	s.fail(err)
	return Null
}

// LastErrorKind returns the gfx.ErrorKind of the most recent failure, so
// callers can branch on cause without parsing LastError.
func (s *Session) LastErrorKind() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(s.lastKind)
}
