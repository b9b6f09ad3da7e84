// Package hud draws the text overlay: frame timing, wrap mode, uv scale,
// lamp state and the most expensive tracked sections.
package hud

import (
	"fmt"
	"strings"
	"time"

	"deskscene/internal/graphics"
	"deskscene/internal/profiling"
	"deskscene/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	marginX   = 10
	topN      = 3
	lineScale = 1.0
)

var textColor = mgl32.Vec3{1.0, 1.0, 1.0}

// HUD owns the font renderer and the frame statistics it displays
type HUD struct {
	font    *graphics.FontRenderer
	enabled bool
	stats   FrameStats
	fps     float64
}

// New bakes the built-in font at fontPixels and sizes the overlay for the framebuffer.
func New(fontPixels, width, height int, enabled bool) (*HUD, error) {
	atlas, err := graphics.BuildFontAtlas(goregular.TTF, fontPixels)
	if err != nil {
		return nil, fmt.Errorf("hud font: %w", err)
	}
	fr, err := graphics.NewFontRenderer(atlas, width, height)
	if err != nil {
		return nil, err
	}
	return &HUD{font: fr, enabled: enabled}, nil
}

// Toggle flips visibility and reports the new state
func (h *HUD) Toggle() bool {
	h.enabled = !h.enabled
	return h.enabled
}

// SetViewport follows framebuffer resizes
func (h *HUD) SetViewport(width, height int) {
	h.font.SetViewport(width, height)
}

// RecordFrame feeds one frame duration into the rolling stats
func (h *HUD) RecordFrame(d time.Duration) {
	h.stats.Record(d)
}

// SetFPS stores the latest value from the frame counter
func (h *HUD) SetFPS(fps float64) {
	h.fps = fps
}

// Render draws the overlay when enabled
func (h *HUD) Render(s *scene.Scene) {
	if !h.enabled {
		return
	}
	defer profiling.Track("hud.Render")()

	prof := Profile{
		Render: profiling.SumWithPrefix("renderer."),
		Update: profiling.SumWithPrefix("scene."),
		Top:    profiling.TopN(topN),
	}
	lines := Lines(s, h.fps, &h.stats, prof)
	step := h.font.LineHeight() * lineScale
	h.font.RenderLines(lines, marginX, step, step, lineScale, textColor)
}

// Delete releases the font's GL objects
func (h *HUD) Delete() {
	h.font.Delete()
}

// Profile is the profiler data shown on the overlay
type Profile struct {
	Render time.Duration
	Update time.Duration
	// Top is a profiling.TopN string
	Top string
}

// Lines builds the overlay text.
func Lines(s *scene.Scene, fps float64, stats *FrameStats, prof Profile) []string {
	lines := make([]string, 0, 8)

	if stats.Frames() > 0 {
		lines = append(lines, fmt.Sprintf("FPS: %.0f | frame %.2fms (avg %.2f, min %.2f, max %.2f)",
			fps, ms(stats.Last), ms(stats.Avg), ms(stats.Min), ms(stats.Max)))
	} else {
		lines = append(lines, fmt.Sprintf("FPS: %.0f", fps))
	}

	lines = append(lines, fmt.Sprintf("Wrap [1-4]: %s", s.Wrap))
	lines = append(lines, fmt.Sprintf("UV scale [ / ]: %.1f x %.1f", s.UVScale.X(), s.UVScale.Y()))

	lamp := "paused"
	if s.Light.Orbiting {
		lamp = "orbiting"
	}
	lines = append(lines, fmt.Sprintf("Lamp [L/K]: %s", lamp))

	p, f := s.Camera.Position, s.Camera.Front()
	lines = append(lines, fmt.Sprintf("Camera: (%.2f, %.2f, %.2f) facing (%.2f, %.2f, %.2f) fov %.0f",
		p.X(), p.Y(), p.Z(), f.X(), f.Y(), f.Z(), s.Camera.Zoom))

	if prof.Render > 0 || prof.Update > 0 {
		lines = append(lines, fmt.Sprintf("CPU: render %.2fms, update %.2fms", ms(prof.Render), ms(prof.Update)))
	}
	for part := range strings.SplitSeq(prof.Top, ", ") {
		if part != "" && !strings.HasSuffix(part, ":0ms") {
			lines = append(lines, part)
		}
	}
	return lines
}
