package platform

import (
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// WindowPosUndefined lets the window manager choose where a window appears.
const WindowPosUndefined = 0x1FFF0000

type WindowConfig struct {
	PositionX int
	PositionY int
	Width     int
	Height    int
	Title     string
}

type RendererConfig struct {
	// DeviceIndex selects a rendering device; negative lets the driver choose.
	DeviceIndex int
	Software    bool
	VSync       bool
}

// Driver is the native library surface the shim forwards to.
type Driver interface {
	Name() string
	Init() error
	Quit()
	CreateWindow(conf WindowConfig) (PlatformWindowWrapper, error)
	PollEvent() (Event, bool)
	PushEvent(event Event) error
	// ShowCursor toggles the mouse cursor over the library's windows.
	ShowCursor(show bool) error
	CursorVisible() bool
	LastError() string
}

type PlatformWindowWrapper interface {
	CreateRenderer(conf RendererConfig) (PlatformRendererWrapper, error)
	Size() (int, int)
	Destroy() error
}

type PlatformRendererWrapper interface {
	// LoadBitmap decodes a BMP file and uploads it as a texture. A non-nil
	// colorKey marks pixels of exactly that colour transparent.
	LoadBitmap(path string, colorKey *color.RGBA) (PlatformTextureWrapper, error)
	// Copy draws the whole texture into dst, or over the whole target when dst is nil.
	Copy(texture PlatformTextureWrapper, dst *image.Rectangle) error
	SetDrawColor(c color.RGBA) error
	Clear() error
	Present() error
	ReadPixels() (*image.RGBA, error)
	OutputSize() (int, int, error)
	Destroy() error
}

type PlatformTextureWrapper interface {
	Size() (int, int)
	Destroy() error
}

const (
	DriverSDL      = "sdl"
	DriverSoftware = "software"

	// DriverEnv overrides the driver chosen when none is requested explicitly.
	DriverEnv = "GOSHIM_DRIVER"
)

var ErrUnknownDriver = errors.New("unknown driver")

// Select returns a fresh driver by name. An empty name falls back to
// $GOSHIM_DRIVER and then to the build default.
func Select(name string) (Driver, error) {
	if name == "" {
		name = strings.TrimSpace(os.Getenv(DriverEnv))
	}
	switch strings.ToLower(name) {
	case "":
		return defaultDriver(), nil
	case DriverSoftware:
		return NewSoftwareDriver(), nil
	case DriverSDL:
		return newSDLDriver()
	default:
		return nil, errors.Wrap(ErrUnknownDriver, name)
	}
}
