// Package frame holds the RGB888 pixel buffer produced by display objects.
package frame

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Channels is the number of bytes per pixel.
const Channels = 3

// Frame is a dense (height, width, 3) buffer of 8-bit RGB values in
// row-major order.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8
}

// New returns a zero-filled (black) frame.
func New(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}
}

// Shape reports the buffer dimensions as (height, width, channels).
func (f *Frame) Shape() (h, w, c int) {
	return f.Height, f.Width, Channels
}

func (f *Frame) offset(col, row int) int {
	return (row*f.Width + col) * Channels
}

// RGBAt returns the pixel at column col, row row.
func (f *Frame) RGBAt(col, row int) (r, g, b uint8) {
	o := f.offset(col, row)
	return f.Pix[o], f.Pix[o+1], f.Pix[o+2]
}

// SetRGB sets the pixel at column col, row row.
func (f *Frame) SetRGB(col, row int, r, g, b uint8) {
	o := f.offset(col, row)
	f.Pix[o], f.Pix[o+1], f.Pix[o+2] = r, g, b
}

// SetGray sets all three channels of a pixel to v.
func (f *Frame) SetGray(col, row int, v uint8) {
	f.SetRGB(col, row, v, v, v)
}

// --- image.Image interface ---

func (f *Frame) ColorModel() color.Model { return color.RGBAModel }

func (f *Frame) Bounds() image.Rectangle { return image.Rect(0, 0, f.Width, f.Height) }

func (f *Frame) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(f.Bounds()) {
		return color.RGBA{}
	}
	r, g, b := f.RGBAt(x, y)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ToRGBA expands the frame into an opaque RGBA image.
func (f *Frame) ToRGBA() *image.RGBA {
	img := image.NewRGBA(f.Bounds())
	for i, j := 0, 0; i < len(f.Pix); i, j = i+Channels, j+4 {
		img.Pix[j] = f.Pix[i]
		img.Pix[j+1] = f.Pix[i+1]
		img.Pix[j+2] = f.Pix[i+2]
		img.Pix[j+3] = 255
	}
	return img
}

// Scaled returns the frame enlarged by factor with nearest-neighbour
// sampling so individual pixels stay sharp. A factor below 2 returns ToRGBA.
func (f *Frame) Scaled(factor int) *image.RGBA {
	src := f.ToRGBA()
	if factor < 2 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, f.Width*factor, f.Height*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
