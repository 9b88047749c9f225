package camera

import "fmt"

// Resolution is a pixel grid size.
type Resolution struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are strictly positive.
func (r Resolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Position is the world-space rectangle a camera observes plus the
// resolution it is sampled at.
//
// A Position is immutable. The With* methods return a new value that went
// through the same validation as NewPosition, so xmin <= xmax, ymin <= ymax
// and a positive resolution hold for every Position obtained from this
// package.
type Position struct {
	xmin, xmax float64
	ymin, ymax float64
	res        Resolution
}

// NewPosition validates res and orders the bounding box edges.
// Reversed edges are swapped rather than rejected.
func NewPosition(xmin, xmax, ymin, ymax float64, res Resolution) (Position, error) {
	if !res.Valid() {
		return Position{}, &Error{Op: "new position", Res: res, Err: ErrInvalidResolution}
	}
	p := Position{xmin: xmin, xmax: xmax, ymin: ymin, ymax: ymax, res: res}
	p.normalize()
	return p, nil
}

// DefaultPosition covers [-1,1]x[-1,1] at 800x600.
func DefaultPosition() Position {
	return Position{xmin: -1, xmax: 1, ymin: -1, ymax: 1, res: Resolution{Width: 800, Height: 600}}
}

func (p *Position) normalize() {
	if p.xmin > p.xmax {
		p.xmin, p.xmax = p.xmax, p.xmin
	}
	if p.ymin > p.ymax {
		p.ymin, p.ymax = p.ymax, p.ymin
	}
}

// WithBBox returns a copy of p observing a different rectangle.
func (p Position) WithBBox(xmin, xmax, ymin, ymax float64) Position {
	p.xmin, p.xmax, p.ymin, p.ymax = xmin, xmax, ymin, ymax
	p.normalize()
	return p
}

// WithResolution returns a copy of p sampled at res.
func (p Position) WithResolution(res Resolution) (Position, error) {
	if !res.Valid() {
		return p, &Error{Op: "set resolution", Res: res, Err: ErrInvalidResolution}
	}
	p.res = res
	return p, nil
}

// XMin is the left edge of the viewport.
func (p Position) XMin() float64 { return p.xmin }

// XMax is the right edge of the viewport.
func (p Position) XMax() float64 { return p.xmax }

// YMin is the bottom edge of the viewport.
func (p Position) YMin() float64 { return p.ymin }

// YMax is the top edge of the viewport.
func (p Position) YMax() float64 { return p.ymax }

// Resolution returns the pixel grid size.
func (p Position) Resolution() Resolution { return p.res }

// BBox returns the edges in (xmin, xmax, ymin, ymax) order.
func (p Position) BBox() (xmin, xmax, ymin, ymax float64) {
	return p.xmin, p.xmax, p.ymin, p.ymax
}

func (p Position) String() string {
	return fmt.Sprintf("[%g,%g]x[%g,%g]@%s", p.xmin, p.xmax, p.ymin, p.ymax, p.res)
}
