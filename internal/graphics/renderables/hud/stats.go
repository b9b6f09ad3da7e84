package hud

import "time"

const historyLen = 120

// FrameStats keeps a rolling window of frame durations
type FrameStats struct {
	history []time.Duration
	next    int

	Last time.Duration
	Min  time.Duration
	Max  time.Duration
	Avg  time.Duration
}

// Record adds one frame and recomputes min/max/avg over the window.
func (s *FrameStats) Record(d time.Duration) {
	if len(s.history) < historyLen {
		s.history = append(s.history, d)
	} else {
		s.history[s.next] = d
		s.next = (s.next + 1) % historyLen
	}
	s.Last = d

	s.Min, s.Max = s.history[0], s.history[0]
	var total time.Duration
	for _, h := range s.history {
		total += h
		s.Min = min(s.Min, h)
		s.Max = max(s.Max, h)
	}
	s.Avg = total / time.Duration(len(s.history))
}

// Frames returns how many frames are in the window
func (s *FrameStats) Frames() int {
	return len(s.history)
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
