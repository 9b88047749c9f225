package object

import (
	"github.com/pion/randutil"

	"github.com/junsooki/camview/internal/frame"
)

// Source supplies uniformly distributed 64-bit values.
type Source interface {
	Uint64() uint64
}

// RandomImage fills every channel of every pixel with independent uniform noise.
type RandomImage struct {
	base
	src Source
}

// NewRandomImage creates a noise generator. Without WithSource it draws
// from a randutil math generator seeded from crypto/rand.
func NewRandomImage(opts ...Option) *RandomImage {
	o := applyOptions(opts)
	src := o.source
	if src == nil {
		src = randutil.NewMathRandomGenerator()
	}
	o.logger.Debug("object.created", "kind", "RandomImage", "camera", o.camera.Position().String())
	return &RandomImage{base: base{cam: o.camera}, src: src}
}

func (r *RandomImage) Name() string { return "RandomImage" }

// GenerateImage returns a fresh noise frame at the camera resolution.
func (r *RandomImage) GenerateImage() *frame.Frame {
	res := r.cam.Resolution()
	f := frame.New(res.Width, res.Height)
	fillRandom(f.Pix, r.src)
	return f
}

// fillRandom spreads each 64-bit draw over eight channel bytes.
func fillRandom(pix []uint8, src Source) {
	for i := 0; i < len(pix); i += 8 {
		v := src.Uint64()
		for k := 0; k < 8 && i+k < len(pix); k++ {
			pix[i+k] = uint8(v >> (8 * k))
		}
	}
}
