package main

import (
	"image/color"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/kjkrol/goshim/pkg/gfx"
)

func TestRunSoftware(t *testing.T) {
	*driver = gfx.DriverSoftware
	*width, *height = 120, 90
	*frames = 2
	*keyed = true
	*bitmap = ""

	if err := run(slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestWriteSpriteIsKeyed(t *testing.T) {
	path, err := writeSprite(filepath.Join(t.TempDir(), "sprite.bmp"))
	if err != nil {
		t.Fatal(err)
	}
	video, err := gfx.Open(gfx.Config{Driver: gfx.DriverSoftware})
	if err != nil {
		t.Fatal(err)
	}
	defer video.Close()
	win, _ := video.CreateWindow(gfx.WindowConfig{Width: spriteSize, Height: spriteSize})
	r, err := win.CreateRenderer(gfx.DefaultRendererConfig())
	if err != nil {
		t.Fatal(err)
	}
	tex, err := r.LoadBitmap(path, gfx.WithMagentaKey())
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Copy(tex); err != nil {
		t.Fatal(err)
	}
	px, _ := r.ReadPixels()
	if corner := px.RGBAAt(0, 0); corner != (color.RGBA{A: 255}) {
		t.Fatalf("keyed corner should show the black target, got %v", corner)
	}
	if ring := px.RGBAAt(spriteSize/2, 3); ring.R != 240 {
		t.Fatalf("ring pixel missing, got %v", ring)
	}
}
