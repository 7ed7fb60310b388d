package platform

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface is a CPU-side pixel buffer. The software driver keeps both render
// targets and uploaded textures in surfaces.
type Surface interface {
	ColorModel() color.Model
	Bounds() image.Rectangle
	At(x, y int) color.Color
	Set(x, y int, c color.Color)
	RGBA() *image.RGBA
}

// NewRGBASurface creates a Surface backed by image.RGBA. Sizes below one
// pixel are clamped to one.
func NewRGBASurface(width, height int) Surface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &rgbaSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// WrapRGBASurface exposes an existing *image.RGBA as a Surface.
func WrapRGBASurface(img *image.RGBA) Surface {
	if img == nil {
		return nil
	}
	return &rgbaSurface{img: img}
}

type rgbaSurface struct {
	img *image.RGBA
}

func (s *rgbaSurface) ColorModel() color.Model {
	return s.img.ColorModel()
}

func (s *rgbaSurface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

func (s *rgbaSurface) At(x, y int) color.Color {
	return s.img.At(x, y)
}

func (s *rgbaSurface) Set(x, y int, c color.Color) {
	s.img.Set(x, y, c)
}

func (s *rgbaSurface) RGBA() *image.RGBA {
	return s.img
}

func fillSurface(s Surface, c color.RGBA) {
	draw.Draw(s.RGBA(), s.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func snapshotSurface(s Surface) *image.RGBA {
	src := s.RGBA()
	out := image.NewRGBA(src.Rect)
	copy(out.Pix, src.Pix)
	return out
}
