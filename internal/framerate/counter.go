// Package framerate measures how many frames per second a loop produces.
package framerate

import "time"

// Counter reports the frame rate every Every frames, or sooner once MaxAge
// has passed since the last report.
type Counter struct {
	Every  int
	MaxAge time.Duration

	frames int
	last   time.Time
}

// NewCounter starts counting at start.
func NewCounter(every int, maxAge time.Duration, start time.Time) *Counter {
	return &Counter{Every: every, MaxAge: maxAge, last: start}
}

// Tick records one frame at now. When a report is due it returns the rate
// over the frames since the previous report.
func (c *Counter) Tick(now time.Time) (fps float64, due bool) {
	c.frames++
	elapsed := now.Sub(c.last)
	if c.frames < c.Every && elapsed <= c.MaxAge {
		return 0, false
	}
	if elapsed > 0 {
		fps = float64(c.frames) / elapsed.Seconds()
	}
	c.frames = 0
	c.last = now
	return fps, true
}
