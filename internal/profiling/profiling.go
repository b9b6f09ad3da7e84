package profiling

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Per-frame CPU timings, keyed "subsystem.Operation".
// Only the render thread records, so there is no locking.

var frameTotals = make(map[string]time.Duration)

// Track returns a stop function that records the elapsed time under name.
// Usage: defer profiling.Track("renderer.Render")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		Add(name, time.Since(start))
	}
}

// Add records d under name
func Add(name string, d time.Duration) {
	frameTotals[name] += d
}

// ResetFrame clears the totals. Call at the start of each frame.
func ResetFrame() {
	clear(frameTotals)
}

// SumWithPrefix totals every entry whose name starts with prefix
func SumWithPrefix(prefix string) time.Duration {
	var sum time.Duration
	for k, v := range frameTotals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n largest totals, largest first.
// Example: "renderer.Render:4.2ms, scene.Update:0.1ms"
func TopN(n int) string {
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(frameTotals))
	for k, v := range frameTotals {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		parts = append(parts, p.name+":"+formatMs(p.dur))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0"
func formatMs(d time.Duration) string {
	s := fmt.Sprintf("%.1f", float64(d.Microseconds())/1000.0)
	s = strings.TrimSuffix(s, ".0")
	return s + "ms"
}
