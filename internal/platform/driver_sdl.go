//go:build sdl

package platform

import (
	"image"
	"image/color"
	"runtime"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

func defaultDriver() Driver { return &sdlDriver{} }

func newSDLDriver() (Driver, error) { return &sdlDriver{}, nil }

type sdlDriver struct {
	locked bool
}

func (d *sdlDriver) Name() string { return DriverSDL }

// Init must run on the thread that will own every later call.
func (d *sdlDriver) Init() error {
	if !d.locked {
		runtime.LockOSThread()
		d.locked = true
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "SDL_Init")
	}
	return nil
}

func (d *sdlDriver) Quit() {
	sdl.Quit()
	if d.locked {
		runtime.UnlockOSThread()
		d.locked = false
	}
}

func (d *sdlDriver) CreateWindow(conf WindowConfig) (PlatformWindowWrapper, error) {
	window, err := sdl.CreateWindow(conf.Title,
		int32(conf.PositionX), int32(conf.PositionY),
		int32(conf.Width), int32(conf.Height), 0)
	if err != nil {
		return nil, errors.Wrap(err, "SDL_CreateWindow")
	}
	return &sdlWindowWrapper{window: window}, nil
}

func (d *sdlDriver) PollEvent() (Event, bool) {
	event := sdl.PollEvent()
	if event == nil {
		return nil, false
	}
	return convert(event), true
}

func (d *sdlDriver) PushEvent(event Event) error {
	native, err := toNative(event)
	if err != nil {
		return err
	}
	if _, err := sdl.PushEvent(native); err != nil {
		return errors.Wrap(err, "SDL_PushEvent")
	}
	return nil
}

func (d *sdlDriver) ShowCursor(show bool) error {
	toggle := sdl.DISABLE
	if show {
		toggle = sdl.ENABLE
	}
	if _, err := sdl.ShowCursor(toggle); err != nil {
		return errors.Wrap(err, "SDL_ShowCursor")
	}
	return nil
}

func (d *sdlDriver) CursorVisible() bool {
	state, err := sdl.ShowCursor(sdl.QUERY)
	return err == nil && state == sdl.ENABLE
}

func (d *sdlDriver) LastError() string {
	if err := sdl.GetError(); err != nil {
		return err.Error()
	}
	return ""
}

func convert(event sdl.Event) Event {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Quit{}
	case *sdl.WindowEvent:
		return WindowChange{Event: e.Event}
	case *sdl.KeyboardEvent:
		code := uint64(e.Keysym.Scancode)
		label := sdl.GetKeyName(e.Keysym.Sym)
		if e.Type == sdl.KEYDOWN {
			return KeyPress{Code: code, Label: label}
		}
		return KeyRelease{Code: code, Label: label}
	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return ButtonPress{Button: e.Button, X: e.X, Y: e.Y}
		}
		return ButtonRelease{Button: e.Button, X: e.X, Y: e.Y}
	case *sdl.MouseMotionEvent:
		return MotionNotify{X: e.X, Y: e.Y, XRel: e.XRel, YRel: e.YRel}
	case *sdl.MouseWheelEvent:
		dx, dy := e.X, e.Y
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dx, dy = -dx, -dy
		}
		mx, my, _ := sdl.GetMouseState()
		return MouseWheel{DeltaX: dx, DeltaY: dy, X: mx, Y: my}
	default:
		return UnexpectedEvent{Type: event.GetType()}
	}
}

func toNative(event Event) (sdl.Event, error) {
	switch e := event.(type) {
	case Quit:
		return &sdl.QuitEvent{Type: sdl.QUIT}, nil
	case WindowChange:
		return &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: e.Event}, nil
	case MotionNotify:
		return &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: e.X, Y: e.Y, XRel: e.XRel, YRel: e.YRel}, nil
	case ButtonPress:
		return &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: e.Button, State: sdl.PRESSED, X: e.X, Y: e.Y}, nil
	case ButtonRelease:
		return &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: e.Button, State: sdl.RELEASED, X: e.X, Y: e.Y}, nil
	default:
		return nil, errors.Errorf("cannot push %T", event)
	}
}

// ----------------------------------------------------------------------------

type sdlWindowWrapper struct {
	window   *sdl.Window
	renderer *sdlRendererWrapper
}

func (w *sdlWindowWrapper) CreateRenderer(conf RendererConfig) (PlatformRendererWrapper, error) {
	flags := uint32(sdl.RENDERER_ACCELERATED)
	if conf.Software {
		flags = uint32(sdl.RENDERER_SOFTWARE)
	}
	if conf.VSync {
		flags |= uint32(sdl.RENDERER_PRESENTVSYNC)
	}
	renderer, err := sdl.CreateRenderer(w.window, conf.DeviceIndex, flags)
	if err != nil {
		return nil, errors.Wrap(err, "SDL_CreateRenderer")
	}
	r := &sdlRendererWrapper{
		window:   w,
		renderer: renderer,
		textures: make(map[*sdlTextureWrapper]struct{}),
	}
	w.renderer = r
	return r, nil
}

func (w *sdlWindowWrapper) Size() (int, int) {
	width, height := w.window.GetSize()
	return int(width), int(height)
}

func (w *sdlWindowWrapper) Destroy() error {
	if w.renderer != nil {
		_ = w.renderer.Destroy()
	}
	return w.window.Destroy()
}

// ----------------------------------------------------------------------------

type sdlRendererWrapper struct {
	window   *sdlWindowWrapper
	renderer *sdl.Renderer
	textures map[*sdlTextureWrapper]struct{}
}

// LoadBitmap keeps the decoded surface only for the duration of the upload.
func (r *sdlRendererWrapper) LoadBitmap(path string, colorKey *color.RGBA) (PlatformTextureWrapper, error) {
	surface, err := sdl.LoadBMP(path)
	if err != nil {
		return nil, errors.Wrap(err, "SDL_LoadBMP")
	}
	defer surface.Free()

	if colorKey != nil {
		key := sdl.MapRGB(surface.Format, colorKey.R, colorKey.G, colorKey.B)
		if err := surface.SetColorKey(true, key); err != nil {
			return nil, errors.Wrap(err, "SDL_SetColorKey")
		}
	}

	texture, err := r.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, errors.Wrap(err, "SDL_CreateTextureFromSurface")
	}
	t := &sdlTextureWrapper{
		renderer: r,
		texture:  texture,
		width:    int(surface.W),
		height:   int(surface.H),
	}
	r.textures[t] = struct{}{}
	return t, nil
}

func (r *sdlRendererWrapper) Copy(texture PlatformTextureWrapper, dst *image.Rectangle) error {
	t, ok := texture.(*sdlTextureWrapper)
	if !ok || t == nil {
		return errors.New("Invalid texture")
	}
	var rect *sdl.Rect
	if dst != nil {
		rect = &sdl.Rect{
			X: int32(dst.Min.X),
			Y: int32(dst.Min.Y),
			W: int32(dst.Max.X - dst.Min.X),
			H: int32(dst.Max.Y - dst.Min.Y),
		}
	}
	if err := r.renderer.Copy(t.texture, nil, rect); err != nil {
		return errors.Wrap(err, "SDL_RenderCopy")
	}
	return nil
}

func (r *sdlRendererWrapper) SetDrawColor(c color.RGBA) error {
	if err := r.renderer.SetDrawColor(c.R, c.G, c.B, c.A); err != nil {
		return errors.Wrap(err, "SDL_SetRenderDrawColor")
	}
	return nil
}

func (r *sdlRendererWrapper) Clear() error {
	if err := r.renderer.Clear(); err != nil {
		return errors.Wrap(err, "SDL_RenderClear")
	}
	return nil
}

func (r *sdlRendererWrapper) Present() error {
	r.renderer.Present()
	return nil
}

func (r *sdlRendererWrapper) ReadPixels() (*image.RGBA, error) {
	width, height, err := r.OutputSize()
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if len(img.Pix) == 0 {
		return img, nil
	}
	// ABGR8888 is R,G,B,A in memory on little-endian hosts, matching image.RGBA.
	err = r.renderer.ReadPixels(nil, uint32(sdl.PIXELFORMAT_ABGR8888), unsafe.Pointer(&img.Pix[0]), img.Stride)
	if err != nil {
		return nil, errors.Wrap(err, "SDL_RenderReadPixels")
	}
	return img, nil
}

func (r *sdlRendererWrapper) OutputSize() (int, int, error) {
	width, height, err := r.renderer.GetOutputSize()
	if err != nil {
		return 0, 0, errors.Wrap(err, "SDL_GetRendererOutputSize")
	}
	return int(width), int(height), nil
}

func (r *sdlRendererWrapper) Destroy() error {
	for t := range r.textures {
		_ = t.Destroy()
	}
	if r.window != nil && r.window.renderer == r {
		r.window.renderer = nil
	}
	return r.renderer.Destroy()
}

// ----------------------------------------------------------------------------

type sdlTextureWrapper struct {
	renderer *sdlRendererWrapper
	texture  *sdl.Texture
	width    int
	height   int
}

func (t *sdlTextureWrapper) Size() (int, int) {
	return t.width, t.height
}

func (t *sdlTextureWrapper) Destroy() error {
	if t.renderer != nil {
		delete(t.renderer.textures, t)
	}
	return t.texture.Destroy()
}
