package frame

import "testing"

func TestAspectFit(t *testing.T) {
	tests := []struct {
		name              string
		viewW, viewH      float64
		frameW, frameH    float64
		scale, offX, offY float64
	}{
		{"exact fit", 800, 800, 800, 800, 1, 0, 0},
		{"uniform upscale", 1600, 1200, 800, 600, 2, 0, 0},
		{"pillarbox", 1000, 500, 100, 100, 5, 250, 0},
		{"letterbox", 400, 1000, 200, 100, 2, 0, 400},
		{"downscale", 400, 300, 800, 800, 0.375, 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale, offX, offY := AspectFit(tt.viewW, tt.viewH, tt.frameW, tt.frameH)
			if scale != tt.scale || offX != tt.offX || offY != tt.offY {
				t.Fatalf("AspectFit = (%g,%g,%g), want (%g,%g,%g)", scale, offX, offY, tt.scale, tt.offX, tt.offY)
			}
		})
	}
}
