package main

import (
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/bmp"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/kjkrol/goshim/pkg/gfx"
)

var (
	app     = kingpin.New("demo", "Open a window, draw a bitmap and follow the mouse until the window is closed.")
	driver  = app.Flag("driver", "Native driver: sdl or software.").Envar("GOSHIM_DRIVER").String()
	title   = app.Flag("title", "Window title.").Default("goshim demo").String()
	width   = app.Flag("width", "Window width.").Default("800").Int()
	height  = app.Flag("height", "Window height.").Default("600").Int()
	bitmap  = app.Flag("bitmap", "BMP file to draw; a generated sprite when empty.").ExistingFile()
	keyed   = app.Flag("keyed", "Treat magenta (or $GOSHIM_COLORKEY) as transparent.").Default("true").Bool()
	frames  = app.Flag("frames", "Stop after this many frames; 0 runs until quit.").Int()
	cursor  = app.Flag("cursor", "Keep the mouse cursor visible.").Bool()
	verbose = app.Flag("verbose", "Debug logging.").Short('v').Bool()
)

const spriteSize = 64

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger); err != nil {
		logger.Error("demo failed", "err", err, "kind", gfx.KindOf(err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	video, err := gfx.Open(gfx.Config{Driver: *driver, Logger: logger})
	if err != nil {
		return err
	}
	defer video.Close()

	window, err := video.CreateWindow(gfx.WindowConfig{Title: *title, Width: *width, Height: *height})
	if err != nil {
		return err
	}
	renderer, err := window.CreateRenderer(gfx.DefaultRendererConfig())
	if err != nil {
		return err
	}

	path := *bitmap
	if path == "" {
		dir, err := os.MkdirTemp("", "goshim-demo")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)
		if path, err = writeSprite(filepath.Join(dir, "sprite.bmp")); err != nil {
			return err
		}
	}

	var opts []gfx.LoadOption
	if *keyed {
		opts = append(opts, gfx.WithDefaultColorKey())
	}
	sprite, err := renderer.LoadBitmap(path, opts...)
	if err != nil {
		return err
	}

	if err := video.ShowCursor(*cursor); err != nil {
		return err
	}

	limit := *frames
	software := video.DriverName() == gfx.DriverSoftware
	if software && limit == 0 {
		// Nothing can close a software window, so give the run an end.
		limit = 60
		logger.Info("software driver has no input; limiting run", "frames", limit)
	}

	w, h := sprite.Size()
	pos := image.Pt((*width-w)/2, (*height-h)/2)
	for frame := 0; video.Input().Running && (limit == 0 || frame < limit); frame++ {
		video.Drain(func(e gfx.Event) {
			if e.IsMouseMotion() {
				pos = image.Pt(int(e.X)-w/2, int(e.Y)-h/2)
			}
		}, gfx.DrainAll())

		if err := renderer.SetDrawColor(color.RGBA{R: 20, G: 20, B: 40, A: 255}); err != nil {
			return err
		}
		if err := renderer.Clear(); err != nil {
			return err
		}
		if err := renderer.CopyTo(sprite, image.Rectangle{Min: pos, Max: pos.Add(image.Pt(w, h))}); err != nil {
			return err
		}
		if err := renderer.Present(); err != nil {
			return err
		}
		if software {
			time.Sleep(time.Second / 60)
		}
	}
	logger.Info("demo finished", "driver", video.DriverName())
	return nil
}

// writeSprite draws a ring on a magenta background so the colorkey is visible.
func writeSprite(path string) (string, error) {
	img := image.NewRGBA(image.Rect(0, 0, spriteSize, spriteSize))
	c := spriteSize / 2
	for y := 0; y < spriteSize; y++ {
		for x := 0; x < spriteSize; x++ {
			dx, dy := x-c, y-c
			d := dx*dx + dy*dy
			if d < c*c && d > (c-10)*(c-10) {
				img.SetRGBA(x, y, color.RGBA{R: 240, G: 200, B: 40, A: 255})
			} else {
				img.SetRGBA(x, y, gfx.Magenta)
			}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := bmp.Encode(f, img); err != nil {
		return "", err
	}
	return path, nil
}
