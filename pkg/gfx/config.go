package gfx

import (
	"image"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/kjkrol/goshim/internal/platform"
)

const (
	DriverSDL      = platform.DriverSDL
	DriverSoftware = platform.DriverSoftware

	// ColorKeyEnv overrides the key used by WithDefaultColorKey, as a hex
	// colour such as "#00ff00".
	ColorKeyEnv = "GOSHIM_COLORKEY"
)

// Magenta is the default colorkey (255, 0, 255).
var Magenta = platform.Magenta

type Config struct {
	// Driver names the native driver: "sdl", "software", or empty for
	// $GOSHIM_DRIVER and then the build default.
	Driver string
	// Logger receives debug records about object lifecycles. Nil discards them.
	Logger *slog.Logger
}

type WindowConfig struct {
	Title  string
	Width  int
	Height int
	// Position places the window; nil lets the window manager choose.
	Position *image.Point
}

func (w WindowConfig) convert() platform.WindowConfig {
	conf := platform.WindowConfig{
		PositionX: platform.WindowPosUndefined,
		PositionY: platform.WindowPosUndefined,
		Width:     w.Width,
		Height:    w.Height,
		Title:     w.Title,
	}
	if w.Position != nil {
		conf.PositionX = w.Position.X
		conf.PositionY = w.Position.Y
	}
	return conf
}

type RendererConfig struct {
	// DeviceIndex selects a rendering device; negative lets the driver choose.
	DeviceIndex int
	// Software asks for a CPU renderer instead of an accelerated one.
	Software bool
	VSync    bool
}

// DefaultRendererConfig is an accelerated, vsync-gated renderer on the
// driver's preferred device.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{DeviceIndex: -1, VSync: true}
}

func (r RendererConfig) convert() platform.RendererConfig {
	return platform.RendererConfig{DeviceIndex: r.DeviceIndex, Software: r.Software, VSync: r.VSync}
}

// ParseColorKey parses a hex colour ("#ff00ff" or "#f0f") into an opaque key.
func ParseColorKey(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "colorkey %q", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// DefaultColorKey returns the key from $GOSHIM_COLORKEY, or Magenta when the
// variable is unset or malformed.
func DefaultColorKey() color.RGBA {
	if v := os.Getenv(ColorKeyEnv); v != "" {
		if key, err := ParseColorKey(v); err == nil {
			return key
		}
	}
	return Magenta
}

func toRGBA(c color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
