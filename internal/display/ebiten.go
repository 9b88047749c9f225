package display

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/junsooki/camview/internal/frame"
	"github.com/junsooki/camview/internal/framerate"
)

// Options configures an EbitenDisplay.
type Options struct {
	Upscale int
	FPS     int
	Logger  *slog.Logger
}

// EbitenDisplay regenerates the source's frame on every tick and shows it
// in a resizable window.
type EbitenDisplay struct {
	src     FrameSource
	upscale int
	fps     int
	log     *slog.Logger

	frame       *image.RGBA
	ebitenImage *ebiten.Image
	counter     *framerate.Counter
	frames      int
}

var _ Display = (*EbitenDisplay)(nil)

// NewEbitenDisplay creates an Ebitengine-based display for src.
func NewEbitenDisplay(src FrameSource, opts Options) *EbitenDisplay {
	if opts.Upscale < 1 {
		opts.Upscale = 1
	}
	if opts.FPS < 1 {
		opts.FPS = 60
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &EbitenDisplay{
		src:     src,
		upscale: opts.Upscale,
		fps:     opts.FPS,
		log:     opts.Logger,
		counter: framerate.NewCounter(10, 500*time.Millisecond, time.Now()),
	}
}

// Run starts the Ebitengine game loop. Must be called from the main goroutine.
// It returns nil when the window is closed or Escape is pressed.
func (d *EbitenDisplay) Run() error {
	first := d.src.GenerateImage()
	ebiten.SetWindowSize(first.Width*d.upscale, first.Height*d.upscale)
	ebiten.SetWindowTitle(d.src.Name())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(d.fps)
	d.frame = first.Scaled(d.upscale)

	d.log.Info("display.start", "object", d.src.Name(), "width", first.Width, "height", first.Height, "upscale", d.upscale, "fps", d.fps)
	err := ebiten.RunGame(d)
	d.log.Info("display.stop", "frames", d.frames)
	if err != nil {
		return fmt.Errorf("ebiten.RunGame: %w", err)
	}
	return nil
}

// --- ebiten.Game interface ---

func (d *EbitenDisplay) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	start := time.Now()
	d.frame = d.src.GenerateImage().Scaled(d.upscale)
	d.frames++

	now := time.Now()
	if fps, due := d.counter.Tick(now); due {
		ebiten.SetWindowTitle(fmt.Sprintf("%s (%.2ffps)", d.src.Name(), fps))
		d.log.Debug("display.fps", "fps", fps, "generate", now.Sub(start))
	}
	return nil
}

func (d *EbitenDisplay) Draw(screen *ebiten.Image) {
	img := d.frame
	if img == nil {
		return
	}

	if d.ebitenImage == nil ||
		d.ebitenImage.Bounds().Dx() != img.Bounds().Dx() ||
		d.ebitenImage.Bounds().Dy() != img.Bounds().Dy() {
		d.ebitenImage = ebiten.NewImage(img.Bounds().Dx(), img.Bounds().Dy())
	}
	d.ebitenImage.WritePixels(img.Pix)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	fw, fh := img.Bounds().Dx(), img.Bounds().Dy()

	// The frame is already upscaled; only a resized window needs another scale.
	if sw == fw && sh == fh {
		screen.DrawImage(d.ebitenImage, nil)
		return
	}

	scale, offsetX, offsetY := frame.AspectFit(float64(sw), float64(sh), float64(fw), float64(fh))
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterNearest}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(offsetX, offsetY)
	screen.DrawImage(d.ebitenImage, op)
}

func (d *EbitenDisplay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
