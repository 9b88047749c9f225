package framerate

import (
	"math"
	"testing"
	"time"
)

func TestCounter_ReportsEveryNFrames(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewCounter(10, time.Hour, start)

	now := start
	for i := 1; i < 10; i++ {
		now = now.Add(10 * time.Millisecond)
		if _, due := c.Tick(now); due {
			t.Fatalf("report due after %d frames", i)
		}
	}
	now = now.Add(10 * time.Millisecond)
	fps, due := c.Tick(now)
	if !due {
		t.Fatalf("expected report on frame 10")
	}
	// 10 frames in 100ms.
	if math.Abs(fps-100) > 1e-9 {
		t.Fatalf("fps = %g, want 100", fps)
	}
}

func TestCounter_ReportsWhenStale(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewCounter(10, 500*time.Millisecond, start)

	if _, due := c.Tick(start.Add(400 * time.Millisecond)); due {
		t.Fatalf("report due before max age")
	}
	fps, due := c.Tick(start.Add(time.Second))
	if !due {
		t.Fatalf("expected stale report")
	}
	if math.Abs(fps-2) > 1e-9 {
		t.Fatalf("fps = %g, want 2", fps)
	}

	// Counting restarts after a report.
	if _, due := c.Tick(start.Add(time.Second + time.Millisecond)); due {
		t.Fatalf("report due right after previous one")
	}
}

func TestCounter_ZeroElapsed(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewCounter(1, time.Second, start)

	fps, due := c.Tick(start)
	if !due {
		t.Fatalf("expected report with Every=1")
	}
	if fps != 0 {
		t.Fatalf("fps = %g, want 0 for zero elapsed time", fps)
	}
}
