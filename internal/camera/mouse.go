package camera

// MouseTracker turns absolute cursor positions into look offsets.
// The first sample only records the position so a captured cursor
// does not make the view jump.
type MouseTracker struct {
	FirstMouse bool
	LastX      float64
	LastY      float64
}

// NewMouseTracker starts tracking from the window centre.
func NewMouseTracker(width, height int) *MouseTracker {
	return &MouseTracker{
		FirstMouse: true,
		LastX:      float64(width) / 2,
		LastY:      float64(height) / 2,
	}
}

// Offset returns the cursor delta since the previous sample, y reversed
// since window coordinates grow downwards.
func (m *MouseTracker) Offset(xpos, ypos float64) (dx, dy float32) {
	if m.FirstMouse {
		m.LastX = xpos
		m.LastY = ypos
		m.FirstMouse = false
	}

	dx = float32(xpos - m.LastX)
	dy = float32(m.LastY - ypos)
	m.LastX = xpos
	m.LastY = ypos
	return dx, dy
}
