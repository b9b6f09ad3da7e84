package frame

import "time"

// Limiter caps the frame rate with a hybrid sleep/spin wait
type Limiter struct {
	limit int
	next  time.Time
}

// NewLimiter returns a limiter for limit frames per second; 0 disables it.
func NewLimiter(limit int) *Limiter {
	return &Limiter{limit: limit}
}

// Wait blocks until the next frame is due.
func (l *Limiter) Wait() {
	if l.limit <= 0 {
		l.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(l.limit)

	if l.next.IsZero() {
		l.next = time.Now().Add(target)
	} else {
		l.next = l.next.Add(target)
	}

	for {
		remaining := time.Until(l.next)
		if remaining <= 0 {
			break
		}
		if remaining > 200*time.Microsecond {
			time.Sleep(remaining - 200*time.Microsecond)
		}
		// spin out the last few microseconds
		if time.Until(l.next) <= 0 {
			break
		}
	}

	// After a hitch resync instead of racing to catch up
	if late := -time.Until(l.next); late > target {
		l.next = time.Now().Add(target)
	}
}
