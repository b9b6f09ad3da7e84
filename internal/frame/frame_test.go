package frame

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func TestClockTick(t *testing.T) {
	fc := &fakeClock{t: time.Unix(100, 0)}
	c := NewClock(fc.now)

	fc.t = fc.t.Add(16 * time.Millisecond)
	if dt := c.Tick(); dt < 0.0159 || dt > 0.0161 {
		t.Errorf("Expected ~0.016s, got %v", dt)
	}

	if dt := c.Tick(); dt != 0 {
		t.Errorf("Expected 0 with no time passed, got %v", dt)
	}

	fc.t = fc.t.Add(-time.Second)
	if dt := c.Tick(); dt != 0 {
		t.Errorf("Expected backwards clock to clamp to 0, got %v", dt)
	}
}

func TestCounterReportsOncePerInterval(t *testing.T) {
	start := time.Unix(0, 0)
	c := NewCounter(time.Second, start)

	reports := 0
	var last float64
	for i := 1; i <= 120; i++ {
		if fps, ok := c.Frame(start.Add(time.Duration(i) * time.Second / 60)); ok {
			reports++
			last = fps
		}
	}
	if reports != 2 {
		t.Errorf("Expected 2 reports over 2s, got %d", reports)
	}
	if last < 59.9 || last > 60.1 {
		t.Errorf("Expected ~60 fps, got %v", last)
	}
}

func TestLimiterDisabledDoesNotBlock(t *testing.T) {
	l := NewLimiter(0)
	start := time.Now()
	for i := 0; i < 1000; i++ {
		l.Wait()
	}
	if time.Since(start) > 100*time.Millisecond {
		t.Errorf("Disabled limiter blocked for %v", time.Since(start))
	}
}

func TestLimiterCapsRate(t *testing.T) {
	l := NewLimiter(100)
	start := time.Now()
	for i := 0; i < 10; i++ {
		l.Wait()
	}
	// 10 frames at 100 fps take at least ~100ms
	if elapsed := time.Since(start); elapsed < 90*time.Millisecond {
		t.Errorf("Expected at least 90ms for 10 capped frames, got %v", elapsed)
	}
}
