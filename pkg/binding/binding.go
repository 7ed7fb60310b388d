// Package binding flattens the gfx API into calls that take and return only
// integers, strings and booleans, so a foreign-function caller that cannot
// marshal Go values or native structs can drive it.
//
// Objects are referred to by Handle; the zero Handle is null. Fallible calls
// return a null handle or StatusError, and the message is kept for LastError.
// The most recently polled event lives in a slot owned by the Session.
package binding

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/kjkrol/goshim/pkg/gfx"
)

type Handle uint64

const Null Handle = 0

const (
	StatusOK    = 0
	StatusError = -1
)

// IsNull reports whether h is the null handle.
func IsNull(h Handle) bool { return h == Null }

type Session struct {
	mu       sync.Mutex
	conf     gfx.Config
	video    *gfx.Video
	next     Handle
	objects  map[Handle]any
	last     gfx.Event
	lastErr  string
	lastKind gfx.ErrorKind
}

func NewSession(conf gfx.Config) *Session {
	return &Session{conf: conf, objects: make(map[Handle]any)}
}

// Init opens the video subsystem. Calling it on an initialized session is a
// no-op.
func (s *Session) Init() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.video != nil {
		return StatusOK
	}
	video, err := gfx.Open(s.conf)
	if err != nil {
		return s.fail(err)
	}
	s.video = video
	return StatusOK
}

// Quit destroys every live object and shuts the subsystem down.
func (s *Session) Quit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.video == nil {
		return
	}
	if err := s.video.Close(); err != nil {
		s.fail(err)
	}
	s.video = nil
	s.objects = make(map[Handle]any)
}

func (s *Session) CreateWindow(title string, width, height int) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.video == nil {
		return s.failHandle(errNotInitialized)
	}
	w, err := s.video.CreateWindow(gfx.WindowConfig{Title: title, Width: width, Height: height})
	if err != nil {
		return s.failHandle(err)
	}
	return s.register(w)
}

// CreateRenderer binds an accelerated, vsync-gated renderer to window.
// A negative deviceIndex lets the driver choose.
func (s *Session) CreateRenderer(window Handle, deviceIndex int) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, err := lookup[*gfx.Window](s, window)
	if err != nil {
		return s.failHandle(err)
	}
	conf := gfx.DefaultRendererConfig()
	conf.DeviceIndex = deviceIndex
	r, err := w.CreateRenderer(conf)
	if err != nil {
		return s.failHandle(err)
	}
	return s.register(r)
}

func (s *Session) LoadBitmap(renderer Handle, path string) Handle {
	return s.loadBitmap(renderer, path)
}

// LoadBitmapKeyed loads with the default colorkey: magenta unless
// $GOSHIM_COLORKEY says otherwise.
func (s *Session) LoadBitmapKeyed(renderer Handle, path string) Handle {
	return s.loadBitmap(renderer, path, gfx.WithDefaultColorKey())
}

// LoadBitmapColorKey keys out (r, g, b). Components outside 0..255 fail.
func (s *Session) LoadBitmapColorKey(renderer Handle, path string, r, g, b int) Handle {
	rgb, err := components("colorkey", r, g, b)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.failHandle(err)
	}
	key := color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
	return s.loadBitmap(renderer, path, gfx.WithColorKey(key))
}

func (s *Session) loadBitmap(renderer Handle, path string, opts ...gfx.LoadOption) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := lookup[*gfx.Renderer](s, renderer)
	if err != nil {
		return s.failHandle(err)
	}
	t, err := r.LoadBitmap(path, opts...)
	if err != nil {
		return s.failHandle(err)
	}
	return s.register(t)
}

// RenderCopy stretches the whole texture over the whole target.
func (s *Session) RenderCopy(renderer, texture Handle) int {
	return s.withPair(renderer, texture, func(r *gfx.Renderer, t *gfx.Texture) error {
		return r.Copy(t)
	})
}

// RenderCopyRect scales the whole texture into (x, y, w, h).
func (s *Session) RenderCopyRect(renderer, texture Handle, x, y, w, h int) int {
	dst := image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+w, y+h)}
	return s.withPair(renderer, texture, func(r *gfx.Renderer, t *gfx.Texture) error {
		return r.CopyTo(t, dst)
	})
}

func (s *Session) SetDrawColor(renderer Handle, r, g, b, a int) int {
	rgba, err := components("draw color", r, g, b, a)
	if err != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.fail(err)
	}
	c := color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return s.withRenderer(renderer, func(rd *gfx.Renderer) error {
		return rd.SetDrawColor(c)
	})
}

func (s *Session) RenderClear(renderer Handle) int {
	return s.withRenderer(renderer, (*gfx.Renderer).Clear)
}

func (s *Session) RenderPresent(renderer Handle) int {
	return s.withRenderer(renderer, (*gfx.Renderer).Present)
}

func (s *Session) DestroyTexture(texture Handle) int {
	return destroy[*gfx.Texture](s, texture)
}

func (s *Session) DestroyRenderer(renderer Handle) int {
	return destroy[*gfx.Renderer](s, renderer)
}

func (s *Session) DestroyWindow(window Handle) int {
	return destroy[*gfx.Window](s, window)
}

// LastError returns the message of the most recent failure.
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Session) withRenderer(renderer Handle, fn func(*gfx.Renderer) error) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := lookup[*gfx.Renderer](s, renderer)
	if err != nil {
		return s.fail(err)
	}
	if err := fn(r); err != nil {
		return s.fail(err)
	}
	return StatusOK
}

func (s *Session) withPair(renderer, texture Handle, fn func(*gfx.Renderer, *gfx.Texture) error) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := lookup[*gfx.Renderer](s, renderer)
	if err != nil {
		return s.fail(err)
	}
	t, err := lookup[*gfx.Texture](s, texture)
	if err != nil {
		return s.fail(err)
	}
	if err := fn(r, t); err != nil {
		return s.fail(err)
	}
	return StatusOK
}

type destroyer interface {
	Destroy() error
}

// destroy only accepts a handle of kind T, so a texture call cannot take a
// window down with it.
func destroy[T destroyer](s *Session, h Handle) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := lookup[T](s, h)
	if err != nil {
		return s.fail(err)
	}
	err = d.Destroy()
	s.prune()
	if err != nil {
		return s.fail(err)
	}
	return StatusOK
}

// components narrows colour components to bytes, rejecting values a byte
// cannot hold instead of wrapping them.
func components(op string, values ...int) ([]uint8, error) {
	out := make([]uint8, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return nil, &gfx.Error{Kind: gfx.KindInvalid, Op: op, Err: fmt.Errorf("component %d out of range 0..255", v)}
		}
		out[i] = uint8(v)
	}
	return out, nil
}
