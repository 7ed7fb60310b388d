package gfx

import (
	"github.com/kjkrol/goshim/internal/platform"
)

// Window owns an on-screen surface and at most one Renderer.
type Window struct {
	video     *Video
	native    platform.PlatformWindowWrapper
	title     string
	renderer  *Renderer
	destroyed bool
}

func (w *Window) Title() string {
	if w == nil {
		return ""
	}
	return w.title
}

func (w *Window) Size() (int, int) {
	if w == nil || w.destroyed {
		return 0, 0
	}
	return w.native.Size()
}

// Renderer returns the window's live renderer, or nil.
func (w *Window) Renderer() *Renderer {
	if w == nil {
		return nil
	}
	return w.renderer
}

func (w *Window) Destroyed() bool {
	return w == nil || w.destroyed
}

// CreateRenderer binds a renderer to the window. The driver decides whether a
// second renderer on the same window is allowed.
func (w *Window) CreateRenderer(conf RendererConfig) (*Renderer, error) {
	if w == nil {
		return nil, newError(KindInvalid, "create renderer", nil)
	}
	if w.destroyed {
		return nil, newError(KindDestroyed, "create renderer", nil)
	}
	native, err := w.native.CreateRenderer(conf.convert())
	if err != nil {
		return nil, newError(KindCreate, "create renderer", err)
	}
	r := &Renderer{
		window:   w,
		native:   native,
		textures: make(map[*Texture]struct{}),
	}
	w.renderer = r
	w.video.log.Debug("renderer created", "window", w.title, "device", conf.DeviceIndex, "vsync", conf.VSync)
	return r, nil
}

// Destroy releases the renderer and its textures first, then the window.
func (w *Window) Destroy() error {
	if w == nil {
		return newError(KindInvalid, "destroy window", nil)
	}
	if w.destroyed {
		return newError(KindDestroyed, "destroy window", nil)
	}
	var first error
	if w.renderer != nil {
		first = w.renderer.Destroy()
	}
	w.destroyed = true
	w.video.forget(w)
	if err := w.native.Destroy(); err != nil && first == nil {
		first = newError(KindRender, "destroy window", err)
	}
	w.video.log.Debug("window destroyed", "title", w.title)
	return first
}
