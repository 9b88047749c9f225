package object

import (
	"fmt"
	"math"

	"github.com/junsooki/camview/internal/frame"
)

// DefaultMaxIter is the iteration cap used when WithMaxIter is not given.
const DefaultMaxIter = 100

// Mandelbrot renders an escape-time image in grayscale: points that stay
// bounded are black, points that escape on the first step are near white.
type Mandelbrot struct {
	base
	maxIter int
}

// NewMandelbrot fails with ErrInvalidMaxIter if the cap is not positive.
func NewMandelbrot(opts ...Option) (*Mandelbrot, error) {
	o := applyOptions(opts)
	if o.maxIter <= 0 {
		return nil, fmt.Errorf("new mandelbrot: %w (got %d)", ErrInvalidMaxIter, o.maxIter)
	}
	o.logger.Debug("object.created", "kind", "Mandelbrot", "camera", o.camera.Position().String(), "max_iter", o.maxIter)
	return &Mandelbrot{base: base{cam: o.camera}, maxIter: o.maxIter}, nil
}

func (m *Mandelbrot) Name() string { return "Mandelbrot" }

func (m *Mandelbrot) MaxIter() int { return m.maxIter }

// EscapeTime iterates v = v*v + x from v = 0 while |v| < 2, up to MaxIter
// steps, and returns the number of steps taken.
//
// Only the real coordinate drives the iteration; y is accepted and ignored.
func (m *Mandelbrot) EscapeTime(x, y float64) int {
	var v float64
	n := 0
	for math.Abs(v) < 2 && n < m.maxIter {
		v = v*v + x
		n++
	}
	return n
}

// Intensity maps an escape time to a gray level in [0, 255]. n is clamped
// to [0, MaxIter] first.
func (m *Mandelbrot) Intensity(n int) uint8 {
	n = min(max(n, 0), m.maxIter)
	return uint8(255 - int(math.Round(float64(n)/float64(m.maxIter)*255)))
}

// GenerateImage samples the camera and writes one gray pixel per sample,
// at column Sample.I and row Sample.J.
func (m *Mandelbrot) GenerateImage() *frame.Frame {
	res := m.cam.Resolution()
	f := frame.New(res.Width, res.Height)
	for s := range m.cam.Samples() {
		f.SetGray(s.I, s.J, m.Intensity(m.EscapeTime(s.X, s.Y)))
	}
	return f
}
