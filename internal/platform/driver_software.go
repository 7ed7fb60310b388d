package platform

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
)

// maxWindowSide mirrors the native library's upper bound on window sizes.
const maxWindowSide = 16384

// SoftwareDriver renders into in-memory RGBA targets and keeps events in a
// FIFO queue. It mirrors the native library's observable behaviour closely
// enough to stand in for it where no display is available.
type SoftwareDriver struct {
	mu          sync.Mutex
	initialized bool
	queue       []Event
	windows     map[*softWindow]struct{}
	cursorOff   bool
	lastErr     string
}

func NewSoftwareDriver() *SoftwareDriver {
	return &SoftwareDriver{windows: make(map[*softWindow]struct{})}
}

func (d *SoftwareDriver) Name() string { return DriverSoftware }

func (d *SoftwareDriver) Init() error {
	d.mu.Lock()
	d.initialized = true
	d.mu.Unlock()
	return nil
}

func (d *SoftwareDriver) Quit() {
	d.mu.Lock()
	windows := make([]*softWindow, 0, len(d.windows))
	for w := range d.windows {
		windows = append(windows, w)
	}
	d.mu.Unlock()

	for _, w := range windows {
		_ = w.Destroy()
	}

	d.mu.Lock()
	d.queue = nil
	d.cursorOff = false
	d.initialized = false
	d.mu.Unlock()
}

func (d *SoftwareDriver) CreateWindow(conf WindowConfig) (PlatformWindowWrapper, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized {
		return nil, d.failLocked("Video subsystem has not been initialized")
	}
	width, height := conf.Width, conf.Height
	if width > maxWindowSide || height > maxWindowSide {
		return nil, d.failLocked("Window is too large.")
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	w := &softWindow{driver: d, title: conf.Title, width: width, height: height}
	d.windows[w] = struct{}{}
	return w, nil
}

func (d *SoftwareDriver) PollEvent() (Event, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized || len(d.queue) == 0 {
		return nil, false
	}
	event := d.queue[0]
	d.queue[0] = nil
	d.queue = d.queue[1:]
	return event, true
}

func (d *SoftwareDriver) PushEvent(event Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized {
		return d.failLocked("Video subsystem has not been initialized")
	}
	if event == nil {
		return d.failLocked("Parameter 'event' is invalid")
	}
	d.queue = append(d.queue, event)
	return nil
}

// ShowCursor only records the request; there is no pointer to hide.
func (d *SoftwareDriver) ShowCursor(show bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized {
		return d.failLocked("Video subsystem has not been initialized")
	}
	d.cursorOff = !show
	return nil
}

func (d *SoftwareDriver) CursorVisible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.cursorOff
}

func (d *SoftwareDriver) LastError() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastErr
}

func (d *SoftwareDriver) fail(format string, args ...any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.failLocked(format, args...)
}

func (d *SoftwareDriver) failLocked(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	d.lastErr = msg
	return errors.New(msg)
}

func (d *SoftwareDriver) forget(w *softWindow) {
	d.mu.Lock()
	delete(d.windows, w)
	d.mu.Unlock()
}

// ----------------------------------------------------------------------------

type softWindow struct {
	driver    *SoftwareDriver
	title     string
	width     int
	height    int
	renderer  *softRenderer
	destroyed bool
}

func (w *softWindow) CreateRenderer(conf RendererConfig) (PlatformRendererWrapper, error) {
	if w == nil || w.destroyed {
		return nil, w.driverOrNil().fail("Invalid window")
	}
	if w.renderer != nil {
		return nil, w.driver.fail("Renderer already associated with window")
	}
	if conf.DeviceIndex < -1 || conf.DeviceIndex > 0 {
		return nil, w.driver.fail("index must be -1 or in the range of 0 - 0")
	}
	r := &softRenderer{
		window:    w,
		target:    NewRGBASurface(w.width, w.height),
		drawColor: color.RGBA{A: 255},
		textures:  make(map[*softTexture]struct{}),
		vsync:     conf.VSync,
	}
	fillSurface(r.target, r.drawColor)
	w.renderer = r
	return r, nil
}

func (w *softWindow) Size() (int, int) {
	if w == nil {
		return 0, 0
	}
	return w.width, w.height
}

func (w *softWindow) Destroy() error {
	if w == nil || w.destroyed {
		return w.driverOrNil().fail("Invalid window")
	}
	if w.renderer != nil {
		_ = w.renderer.Destroy()
	}
	w.destroyed = true
	w.driver.forget(w)
	return nil
}

func (w *softWindow) driverOrNil() *SoftwareDriver {
	if w == nil {
		return orphanDriver
	}
	return w.driver
}

// orphanDriver records errors raised on nil wrappers.
var orphanDriver = NewSoftwareDriver()

// ----------------------------------------------------------------------------

type softRenderer struct {
	window    *softWindow
	target    Surface
	drawColor color.RGBA
	textures  map[*softTexture]struct{}
	vsync     bool
	presented int
	destroyed bool
}

func (r *softRenderer) valid() bool {
	return r != nil && !r.destroyed
}

func (r *softRenderer) fail(format string, args ...any) error {
	if r == nil || r.window == nil {
		return orphanDriver.fail(format, args...)
	}
	return r.window.driver.fail(format, args...)
}

func (r *softRenderer) LoadBitmap(path string, colorKey *color.RGBA) (PlatformTextureWrapper, error) {
	if !r.valid() {
		return nil, r.fail("Invalid renderer")
	}
	surface, err := ReadBitmap(path, colorKey)
	if err != nil {
		return nil, r.fail("%s", err.Error())
	}
	t := &softTexture{renderer: r, surface: surface, blend: colorKey != nil}
	r.textures[t] = struct{}{}
	return t, nil
}

func (r *softRenderer) Copy(texture PlatformTextureWrapper, dst *image.Rectangle) error {
	if !r.valid() {
		return r.fail("Invalid renderer")
	}
	t, ok := texture.(*softTexture)
	if !ok || t == nil || t.destroyed {
		return r.fail("Invalid texture")
	}
	if t.renderer != r {
		return r.fail("Texture was not created with this renderer")
	}

	target := r.target.RGBA()
	rect := target.Rect
	if dst != nil {
		rect = *dst
	}
	if rect.Empty() {
		return nil
	}
	src := t.surface.RGBA()
	op := xdraw.Src
	if t.blend {
		op = xdraw.Over
	}
	xdraw.NearestNeighbor.Scale(target, rect, src, src.Rect, op, nil)
	return nil
}

func (r *softRenderer) SetDrawColor(c color.RGBA) error {
	if !r.valid() {
		return r.fail("Invalid renderer")
	}
	r.drawColor = c
	return nil
}

func (r *softRenderer) Clear() error {
	if !r.valid() {
		return r.fail("Invalid renderer")
	}
	fillSurface(r.target, r.drawColor)
	return nil
}

func (r *softRenderer) Present() error {
	if !r.valid() {
		return r.fail("Invalid renderer")
	}
	r.presented++
	return nil
}

func (r *softRenderer) ReadPixels() (*image.RGBA, error) {
	if !r.valid() {
		return nil, r.fail("Invalid renderer")
	}
	return snapshotSurface(r.target), nil
}

func (r *softRenderer) OutputSize() (int, int, error) {
	if !r.valid() {
		return 0, 0, r.fail("Invalid renderer")
	}
	b := r.target.Bounds()
	return b.Dx(), b.Dy(), nil
}

func (r *softRenderer) Destroy() error {
	if !r.valid() {
		return r.fail("Invalid renderer")
	}
	for t := range r.textures {
		_ = t.Destroy()
	}
	r.destroyed = true
	if r.window != nil && r.window.renderer == r {
		r.window.renderer = nil
	}
	return nil
}

// ----------------------------------------------------------------------------

type softTexture struct {
	renderer  *softRenderer
	surface   Surface
	blend     bool
	destroyed bool
}

func (t *softTexture) Size() (int, int) {
	if t == nil || t.destroyed {
		return 0, 0
	}
	b := t.surface.Bounds()
	return b.Dx(), b.Dy()
}

func (t *softTexture) Destroy() error {
	if t == nil || t.destroyed {
		var r *softRenderer
		if t != nil {
			r = t.renderer
		}
		return r.fail("Invalid texture")
	}
	t.destroyed = true
	if t.renderer != nil {
		delete(t.renderer.textures, t)
	}
	return nil
}
