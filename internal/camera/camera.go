// Package camera maps a rectangle of the plane onto a pixel grid.
package camera

import "iter"

// Sample pairs a pixel coordinate with the world coordinate it observes.
type Sample struct {
	I, J int
	X, Y float64
}

// Camera owns a Position. It is never mutated after New, so one Camera can
// be shared by any number of readers.
type Camera struct {
	pos Position
}

// New creates a camera looking at pos. A Position that did not come from
// NewPosition, such as the zero value, has no valid resolution and is
// replaced by DefaultPosition.
func New(pos Position) *Camera {
	if !pos.res.Valid() {
		pos = DefaultPosition()
	}
	return &Camera{pos: pos}
}

// Default creates a camera at DefaultPosition.
func Default() *Camera {
	return New(DefaultPosition())
}

// Position returns a copy of the camera's position.
func (c *Camera) Position() Position { return c.pos }

// BBox returns the edges in (xmin, xmax, ymin, ymax) order.
func (c *Camera) BBox() (xmin, xmax, ymin, ymax float64) {
	return c.pos.BBox()
}

// Resolution returns the pixel grid size as (width, height).
func (c *Camera) Resolution() Resolution { return c.pos.res }

// Len is the number of samples Samples yields.
func (c *Camera) Len() int {
	return c.pos.res.Width * c.pos.res.Height
}

// Samples yields one Sample per pixel, i over [0,width) outer and j over
// [0,height) inner. Every call starts a fresh traversal.
//
// The x bounds are spread over the width and reported in Sample.Y; the y
// bounds are spread over the height and reported in Sample.X. Consumers
// depend on this pairing.
func (c *Camera) Samples() iter.Seq[Sample] {
	pos := c.pos
	return func(yield func(Sample) bool) {
		rows := linspace(pos.xmin, pos.xmax, pos.res.Width)
		cols := linspace(pos.ymin, pos.ymax, pos.res.Height)
		for i, y := range rows {
			for j, x := range cols {
				if !yield(Sample{I: i, J: j, X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// linspace returns n evenly spaced values over [start, stop], both ends included.
func linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	out[0] = start
	if n == 1 {
		return out
	}
	step := (stop - start) / float64(n-1)
	for k := 1; k < n-1; k++ {
		out[k] = start + float64(k)*step
	}
	out[n-1] = stop
	return out
}
