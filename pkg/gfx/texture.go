package gfx

import (
	"github.com/pkg/errors"

	"github.com/kjkrol/goshim/internal/platform"
)

var errTextureOwner = errors.New("texture was not created with this renderer")

// Texture is pixel data uploaded to one Renderer.
type Texture struct {
	renderer  *Renderer
	native    platform.PlatformTextureWrapper
	path      string
	width     int
	height    int
	keyed     bool
	destroyed bool
}

func (t *Texture) Size() (int, int) {
	if t == nil {
		return 0, 0
	}
	return t.width, t.height
}

// Path is the file the texture was decoded from.
func (t *Texture) Path() string {
	if t == nil {
		return ""
	}
	return t.path
}

// Keyed reports whether a colorkey was applied at load time.
func (t *Texture) Keyed() bool {
	return t != nil && t.keyed
}

func (t *Texture) Renderer() *Renderer {
	if t == nil {
		return nil
	}
	return t.renderer
}

func (t *Texture) Destroyed() bool {
	return t == nil || t.destroyed
}

func (t *Texture) Destroy() error {
	if t == nil {
		return newError(KindInvalid, "destroy texture", nil)
	}
	if t.destroyed {
		return newError(KindDestroyed, "destroy texture", nil)
	}
	t.destroyed = true
	delete(t.renderer.textures, t)
	if err := t.native.Destroy(); err != nil {
		return newError(KindRender, "destroy texture", err)
	}
	return nil
}
