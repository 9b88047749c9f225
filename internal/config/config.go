package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/junsooki/camview/internal/camera"
	"github.com/junsooki/camview/internal/object"
)

// ErrInvalidConfig is wrapped by every validation failure from Parse.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all runtime configuration.
type Config struct {
	Object    string
	XMin      float64
	XMax      float64
	YMin      float64
	YMax      float64
	Width     int
	Height    int
	MaxIter   int
	Upscale   int
	FPS       int
	Debug     bool
	PrintBBox bool
}

// ParseFlags parses the process command line and exits on error.
func ParseFlags() *Config {
	cfg, err := Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return cfg
}

// Parse parses args for the viewer binary and validates the result.
func Parse(name string, args []string, usage io.Writer) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.StringVar(&cfg.Object, "object", "mandelbrot", fmt.Sprintf("Display object, one of %v", object.Kinds))
	fs.Float64Var(&cfg.XMin, "xmin", -2, "Left edge of the viewport")
	fs.Float64Var(&cfg.XMax, "xmax", 2, "Right edge of the viewport")
	fs.Float64Var(&cfg.YMin, "ymin", -2, "Bottom edge of the viewport")
	fs.Float64Var(&cfg.YMax, "ymax", 2, "Top edge of the viewport")
	fs.IntVar(&cfg.Width, "width", 100, "Horizontal resolution in pixels")
	fs.IntVar(&cfg.Height, "height", 100, "Vertical resolution in pixels")
	fs.IntVar(&cfg.MaxIter, "max-iter", 20, "Mandelbrot iteration cap")
	fs.IntVar(&cfg.Upscale, "upscale", 8, "Window pixels per image pixel")
	fs.IntVar(&cfg.FPS, "fps", 60, "Target frames per second")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&cfg.PrintBBox, "print-bbox", false, "Print a diagram of the viewport before opening the window")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields that are not covered by camera and object
// construction, then builds the camera position to surface resolution
// errors early.
func (c *Config) Validate() error {
	if !slices.Contains(object.Kinds, c.Object) {
		return fmt.Errorf("%w: object %q (want one of %v)", ErrInvalidConfig, c.Object, object.Kinds)
	}
	if c.Upscale < 1 {
		return fmt.Errorf("%w: upscale must be at least 1, got %d", ErrInvalidConfig, c.Upscale)
	}
	if c.FPS < 1 {
		return fmt.Errorf("%w: fps must be at least 1, got %d", ErrInvalidConfig, c.FPS)
	}
	if c.Object == "mandelbrot" && c.MaxIter < 1 {
		return fmt.Errorf("%w: max-iter must be at least 1, got %d", ErrInvalidConfig, c.MaxIter)
	}
	if _, err := c.Position(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Position returns the camera position described by the viewport flags.
func (c *Config) Position() (camera.Position, error) {
	return camera.NewPosition(c.XMin, c.XMax, c.YMin, c.YMax, camera.Resolution{Width: c.Width, Height: c.Height})
}
