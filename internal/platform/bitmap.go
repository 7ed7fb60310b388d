package platform

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/go-restruct/restruct"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// Magenta is the conventional colorkey for sprite sheets.
var Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// BitmapHeader is the part of the BMP file and info headers the loader checks
// before decoding.
type BitmapHeader struct {
	Magic       [2]byte
	FileSize    uint32
	Reserved    uint32
	PixelOffset uint32
	InfoSize    uint32
	Width       int32
	Height      int32
	Planes      uint16
	BitCount    uint16
	Compression uint32
}

const bitmapHeaderSize = 34

var (
	ErrNotBitmap   = errors.New("file is not a BMP")
	ErrUnsupported = errors.New("unsupported BMP layout")
)

// ProbeBitmap parses the BMP headers at the start of data.
func ProbeBitmap(data []byte) (BitmapHeader, error) {
	var h BitmapHeader
	if len(data) < bitmapHeaderSize {
		return h, errors.Wrapf(ErrNotBitmap, "header truncated at %d bytes", len(data))
	}
	if err := restruct.Unpack(data[:bitmapHeaderSize], binary.LittleEndian, &h); err != nil {
		return h, errors.Wrap(err, "unpack BMP header")
	}
	if h.Magic != [2]byte{'B', 'M'} {
		return h, errors.Wrapf(ErrNotBitmap, "bad magic %q", h.Magic[:])
	}
	if h.InfoSize < 40 {
		return h, errors.Wrapf(ErrUnsupported, "info header of %d bytes", h.InfoSize)
	}
	if h.Width <= 0 || h.Height == 0 {
		return h, errors.Wrapf(ErrUnsupported, "dimensions %dx%d", h.Width, h.Height)
	}
	return h, nil
}

// ReadBitmap loads a BMP file into a Surface. A non-nil colorKey turns every
// pixel whose RGB matches it exactly into a fully transparent pixel.
func ReadBitmap(path string, colorKey *color.RGBA) (Surface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "couldn't open %s", path)
	}
	if _, err := ProbeBitmap(data); err != nil {
		return nil, errors.Wrap(err, path)
	}
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	b := img.Bounds()
	straight := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(straight, straight.Rect, img, b.Min, draw.Src)
	if colorKey != nil {
		applyColorKey(straight, *colorKey)
	}

	out := image.NewRGBA(straight.Rect)
	draw.Draw(out, out.Rect, straight, image.Point{}, draw.Src)
	return WrapRGBASurface(out), nil
}

func applyColorKey(img *image.NRGBA, key color.RGBA) int {
	keyed := 0
	for i := 0; i+3 < len(img.Pix); i += 4 {
		if img.Pix[i] == key.R && img.Pix[i+1] == key.G && img.Pix[i+2] == key.B {
			img.Pix[i+3] = 0
			keyed++
		}
	}
	return keyed
}
