package main

import (
	"fmt"
	"log/slog"

	"deskscene/internal/camera"
	"deskscene/internal/config"
	"deskscene/internal/controls"
	"deskscene/internal/graphics/renderables/hud"
	"deskscene/internal/graphics/renderer"
	"deskscene/internal/input"
	"deskscene/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func setupWindow(cfg config.Window) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("init opengl: %w", err)
	}

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

// app ties the window, input, scene and renderer together
type app struct {
	log      *slog.Logger
	window   *glfw.Window
	scene    *scene.Scene
	renderer *renderer.Renderer
	hud      *hud.HUD
	input    *input.InputManager
	mouse    *camera.MouseTracker
	fpsLimit int
}

func newApp(log *slog.Logger, window *glfw.Window, s *scene.Scene, cfg config.Settings) (*app, error) {
	log.Info("opengl context", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	s.Camera.Speed = cfg.Camera.Speed
	s.Camera.Sensitivity = cfg.Camera.Sensitivity

	r, err := renderer.New(log, config.GetTextureDir())
	if err != nil {
		return nil, err
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	overlay, err := hud.New(cfg.HUD.FontSize, fbWidth, fbHeight, cfg.HUD.Enabled)
	if err != nil {
		r.Dispose()
		return nil, err
	}

	a := &app{
		log:      log,
		window:   window,
		scene:    s,
		renderer: r,
		hud:      overlay,
		input:    input.NewInputManager(),
		mouse:    camera.NewMouseTracker(cfg.Window.Width, cfg.Window.Height),
		fpsLimit: config.GetFPSLimit(),
	}
	a.setupCallbacks()
	return a, nil
}

func (a *app) setupCallbacks() {
	a.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		a.input.HandleKeyEvent(key, action)
	})

	a.window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		a.scene.Camera.Look(a.mouse.Offset(xpos, ypos))
	})

	a.window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		a.scene.Camera.Scroll(float32(yoff))
	})

	a.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if _, ok := mouseButtons[button]; !ok {
			a.log.Info("unhandled mouse button event", "button", int(button))
			return
		}
		a.input.HandleMouseButtonEvent(button, action)
	})

	a.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		a.scene.Projection.SetViewport(width, height)
		a.hud.SetViewport(width, height)
	})
}

var mouseButtons = map[glfw.MouseButton]struct{}{
	glfw.MouseButtonLeft:   {},
	glfw.MouseButtonMiddle: {},
	glfw.MouseButtonRight:  {},
}

var mouseActions = [...]struct {
	action controls.Action
	name   string
}{
	{controls.ActionMouseLeft, "left"},
	{controls.ActionMouseMiddle, "middle"},
	{controls.ActionMouseRight, "right"},
}

func (a *app) logMouseButtons() {
	for _, m := range mouseActions {
		if a.input.JustPressed(m.action) {
			a.log.Info("mouse button", "button", m.name, "state", "pressed")
		}
		if a.input.JustReleased(m.action) {
			a.log.Info("mouse button", "button", m.name, "state", "released")
		}
	}
}

// applyChanges pushes what controls.Process changed to the GPU and the log.
func (a *app) applyChanges(c controls.Changes) {
	if c.Quit {
		a.window.SetShouldClose(true)
	}
	if c.WrapChanged {
		a.renderer.ApplyWrap(a.scene.Wrap)
		a.log.Info("texture wrapping mode", "mode", a.scene.Wrap.String())
	}
	if c.UVChanged {
		a.log.Info("uv scale", "u", a.scene.UVScale.X(), "v", a.scene.UVScale.Y())
	}
	if c.OrbitChanged {
		a.log.Info("lamp orbit", "orbiting", a.scene.Light.Orbiting)
	}
	if a.input.JustPressed(controls.ActionToggleHUD) {
		a.log.Info("hud", "visible", a.hud.Toggle())
	}
	a.logMouseButtons()
}

func (a *app) close() {
	a.hud.Delete()
	a.renderer.Dispose()
	a.log.Debug("gpu resources released", "live", a.renderer.Live())
}
