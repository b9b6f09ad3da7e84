// Package frame provides per-frame timing: delta time, an FPS cap and an FPS counter.
package frame

import "time"

// Clock measures the time between consecutive frames
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock starts a clock at the current time. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, last: now()}
}

// Tick returns the seconds elapsed since the previous Tick.
func (c *Clock) Tick() float32 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		return 0
	}
	return float32(dt)
}

// Counter counts frames and reports a rate once per interval
type Counter struct {
	interval time.Duration
	frames   int
	since    time.Time
}

func NewCounter(interval time.Duration, start time.Time) *Counter {
	return &Counter{interval: interval, since: start}
}

// Frame records one frame at time t. When an interval has passed it
// returns the frames per second over it and true.
func (c *Counter) Frame(t time.Time) (float64, bool) {
	c.frames++
	elapsed := t.Sub(c.since)
	if elapsed < c.interval {
		return 0, false
	}
	fps := float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.since = t
	return fps, true
}
