package main

import (
	"log"
	"os"

	"github.com/junsooki/camview/internal/camera"
	"github.com/junsooki/camview/internal/config"
	"github.com/junsooki/camview/internal/display"
	"github.com/junsooki/camview/internal/logger"
	"github.com/junsooki/camview/internal/object"
)

func main() {
	cfg := config.ParseFlags()
	l := logger.Setup(logger.Config{Debug: cfg.Debug})

	pos, err := cfg.Position()
	if err != nil {
		log.Fatalf("camera position: %v", err)
	}
	cam := camera.New(pos)
	if cfg.PrintBBox {
		if err := cam.WriteBBox(os.Stdout); err != nil {
			log.Fatalf("print bbox: %v", err)
		}
	}

	l.Info("viewer.start", "object", cfg.Object, "camera", pos.String(), "max_iter", cfg.MaxIter)

	obj, err := object.New(cfg.Object,
		object.WithCamera(cam),
		object.WithMaxIter(cfg.MaxIter),
		object.WithLogger(l),
	)
	if err != nil {
		log.Fatalf("display object: %v", err)
	}

	// Ebitengine RunGame must be on the main goroutine (macOS requirement).
	var disp display.Display = display.NewEbitenDisplay(obj, display.Options{
		Upscale: cfg.Upscale,
		FPS:     cfg.FPS,
		Logger:  l,
	})
	if err := disp.Run(); err != nil {
		log.Fatalf("display: %v", err)
	}
}
