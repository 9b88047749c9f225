// Package object defines the display objects that turn a camera view into
// a frame.
package object

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/junsooki/camview/internal/camera"
	"github.com/junsooki/camview/internal/frame"
)

var (
	ErrInvalidMaxIter = errors.New("max iterations must be positive")
	ErrUnknownObject  = errors.New("unknown display object")
)

// DisplayObject produces an image of whatever its camera observes.
//
// GenerateImage returns a frame of the camera's resolution, shape
// (height, width, 3). It may be called once per displayed frame and must
// not modify the camera.
type DisplayObject interface {
	Name() string
	Camera() *camera.Camera
	GenerateImage() *frame.Frame
}

// Option configures a display object on creation.
type Option func(*options)

type options struct {
	camera  *camera.Camera
	maxIter int
	source  Source
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{
		maxIter: DefaultMaxIter,
		logger:  slog.New(slog.DiscardHandler),
	}
}

// WithCamera sets the camera. The camera may be shared with other objects.
func WithCamera(c *camera.Camera) Option {
	return func(o *options) {
		o.camera = c
	}
}

// WithMaxIter sets the iteration cap of a Mandelbrot.
func WithMaxIter(n int) Option {
	return func(o *options) {
		o.maxIter = n
	}
}

// WithSource sets the random source of a RandomImage.
func WithSource(s Source) Option {
	return func(o *options) {
		o.source = s
	}
}

// WithLogger sets the logger used for construction diagnostics.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.camera == nil {
		o.camera = camera.Default()
	}
	return o
}

// base carries the camera shared by every variant.
type base struct {
	cam *camera.Camera
}

func (b base) Camera() *camera.Camera { return b.cam }

// Kinds lists the names accepted by New.
var Kinds = []string{"random", "mandelbrot"}

// New builds a display object by kind name.
func New(kind string, opts ...Option) (DisplayObject, error) {
	switch kind {
	case "random":
		return NewRandomImage(opts...), nil
	case "mandelbrot":
		return NewMandelbrot(opts...)
	default:
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownObject, kind, Kinds)
	}
}
