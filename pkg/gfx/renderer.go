package gfx

import (
	"image"
	"image/color"

	"github.com/kjkrol/goshim/internal/platform"
)

// Renderer draws into its window's target. It must not outlive the window,
// and its textures must not outlive it; Destroy on a parent enforces both.
type Renderer struct {
	window    *Window
	native    platform.PlatformRendererWrapper
	textures  map[*Texture]struct{}
	destroyed bool
}

type loadOptions struct {
	colorKey *color.RGBA
}

type LoadOption func(*loadOptions)

// WithColorKey makes pixels of exactly c fully transparent.
func WithColorKey(c color.Color) LoadOption {
	return func(o *loadOptions) {
		key := toRGBA(c)
		o.colorKey = &key
	}
}

func WithMagentaKey() LoadOption {
	return WithColorKey(Magenta)
}

// WithDefaultColorKey uses $GOSHIM_COLORKEY, falling back to magenta.
func WithDefaultColorKey() LoadOption {
	return WithColorKey(DefaultColorKey())
}

func (r *Renderer) Window() *Window {
	if r == nil {
		return nil
	}
	return r.window
}

func (r *Renderer) Destroyed() bool {
	return r == nil || r.destroyed
}

func (r *Renderer) check(op string) error {
	if r == nil {
		return newError(KindInvalid, op, nil)
	}
	if r.destroyed || r.window.Destroyed() {
		return newError(KindDestroyed, op, nil)
	}
	return nil
}

// LoadBitmap decodes the BMP at path and uploads it as a texture owned by r.
// The decoded surface does not outlive the call.
func (r *Renderer) LoadBitmap(path string, opts ...LoadOption) (*Texture, error) {
	if err := r.check("load bitmap"); err != nil {
		return nil, err
	}
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}
	native, err := r.native.LoadBitmap(path, o.colorKey)
	if err != nil {
		return nil, newError(KindCreate, "load bitmap", err)
	}
	width, height := native.Size()
	t := &Texture{
		renderer: r,
		native:   native,
		path:     path,
		width:    width,
		height:   height,
		keyed:    o.colorKey != nil,
	}
	r.textures[t] = struct{}{}
	r.window.video.log.Debug("texture loaded", "path", path, "width", width, "height", height, "keyed", t.keyed)
	return t, nil
}

// Copy stretches the whole texture over the whole render target.
func (r *Renderer) Copy(t *Texture) error {
	return r.copy("copy", t, nil)
}

// CopyTo scales the whole texture into dst. An empty dst draws nothing.
func (r *Renderer) CopyTo(t *Texture, dst image.Rectangle) error {
	return r.copy("copy to", t, &dst)
}

func (r *Renderer) copy(op string, t *Texture, dst *image.Rectangle) error {
	if err := r.check(op); err != nil {
		return err
	}
	if t == nil {
		return newError(KindInvalid, op, nil)
	}
	if t.destroyed {
		return newError(KindDestroyed, op, nil)
	}
	if t.renderer != r {
		return newError(KindInvalid, op, errTextureOwner)
	}
	if err := r.native.Copy(t.native, dst); err != nil {
		return newError(KindRender, op, err)
	}
	return nil
}

func (r *Renderer) SetDrawColor(c color.Color) error {
	if err := r.check("set draw color"); err != nil {
		return err
	}
	if err := r.native.SetDrawColor(toRGBA(c)); err != nil {
		return newError(KindRender, "set draw color", err)
	}
	return nil
}

// Clear fills the target with the draw colour.
func (r *Renderer) Clear() error {
	if err := r.check("clear"); err != nil {
		return err
	}
	if err := r.native.Clear(); err != nil {
		return newError(KindRender, "clear", err)
	}
	return nil
}

func (r *Renderer) Present() error {
	if err := r.check("present"); err != nil {
		return err
	}
	if err := r.native.Present(); err != nil {
		return newError(KindRender, "present", err)
	}
	return nil
}

// ReadPixels returns a copy of the current render target.
func (r *Renderer) ReadPixels() (*image.RGBA, error) {
	if err := r.check("read pixels"); err != nil {
		return nil, err
	}
	img, err := r.native.ReadPixels()
	if err != nil {
		return nil, newError(KindRender, "read pixels", err)
	}
	return img, nil
}

func (r *Renderer) OutputSize() (int, int, error) {
	if err := r.check("output size"); err != nil {
		return 0, 0, err
	}
	w, h, err := r.native.OutputSize()
	if err != nil {
		return 0, 0, newError(KindRender, "output size", err)
	}
	return w, h, nil
}

// Destroy releases every texture of r, then r itself.
func (r *Renderer) Destroy() error {
	if r == nil {
		return newError(KindInvalid, "destroy renderer", nil)
	}
	if r.destroyed {
		return newError(KindDestroyed, "destroy renderer", nil)
	}
	var first error
	for t := range r.textures {
		if err := t.Destroy(); err != nil && first == nil {
			first = err
		}
	}
	r.destroyed = true
	if r.window != nil && r.window.renderer == r {
		r.window.renderer = nil
	}
	if err := r.native.Destroy(); err != nil && first == nil {
		first = newError(KindRender, "destroy renderer", err)
	}
	return first
}
