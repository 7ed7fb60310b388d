package platform

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func writeBMP(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.bmp")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()
	if err := bmp.Encode(f, img); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return path
}

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestProbeBitmap(t *testing.T) {
	path := writeBMP(t, solid(3, 2, color.RGBA{R: 10, A: 255}))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	h, err := ProbeBitmap(data)
	if err != nil {
		t.Fatalf("ProbeBitmap: %v", err)
	}
	if h.Width != 3 || h.Height != 2 {
		t.Fatalf("expected 3x2, got %dx%d", h.Width, h.Height)
	}
	if h.BitCount != 24 {
		t.Fatalf("expected 24 bpp for an opaque image, got %d", h.BitCount)
	}

	bad := append([]byte(nil), data...)
	bad[0] = 'X'
	if _, err := ProbeBitmap(bad); !errors.Is(err, ErrNotBitmap) {
		t.Fatalf("expected ErrNotBitmap for bad magic, got %v", err)
	}
	if _, err := ProbeBitmap(data[:10]); !errors.Is(err, ErrNotBitmap) {
		t.Fatalf("expected ErrNotBitmap for truncated header, got %v", err)
	}
}

func TestReadBitmapColorKey(t *testing.T) {
	img := solid(2, 1, Magenta)
	img.SetRGBA(1, 0, color.RGBA{R: 255, A: 255})
	path := writeBMP(t, img)

	plain, err := ReadBitmap(path, nil)
	if err != nil {
		t.Fatalf("ReadBitmap: %v", err)
	}
	if got := plain.RGBA().RGBAAt(0, 0); got != Magenta {
		t.Fatalf("unkeyed load should keep magenta, got %v", got)
	}

	keyed, err := ReadBitmap(path, &Magenta)
	if err != nil {
		t.Fatalf("ReadBitmap keyed: %v", err)
	}
	if got := keyed.RGBA().RGBAAt(0, 0); got.A != 0 {
		t.Fatalf("magenta pixel should be transparent, got %v", got)
	}
	if got := keyed.RGBA().RGBAAt(1, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("non-key pixel should be untouched, got %v", got)
	}
}

func TestReadBitmapMissingFile(t *testing.T) {
	if _, err := ReadBitmap(filepath.Join(t.TempDir(), "missing.bmp"), nil); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
