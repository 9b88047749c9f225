package frame

import "math"

// AspectFit returns the uniform scale and offsets that fit a frameW x frameH
// image inside a viewW x viewH view, centred with letterboxing.
func AspectFit(viewW, viewH, frameW, frameH float64) (scale, offsetX, offsetY float64) {
	scale = math.Min(viewW/frameW, viewH/frameH)
	offsetX = (viewW - frameW*scale) / 2
	offsetY = (viewH - frameH*scale) / 2
	return
}
