package main

import (
	"time"

	"deskscene/internal/controls"
	"deskscene/internal/frame"
	"deskscene/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func (a *app) run() {
	clock := frame.NewClock(nil)
	limiter := frame.NewLimiter(a.fpsLimit)
	fps := frame.NewCounter(time.Second, time.Now())

	for !a.window.ShouldClose() {
		profiling.ResetFrame()
		dt := clock.Tick()

		changes := controls.Process(a.input, a.scene, dt)
		a.applyChanges(changes)

		func() { defer profiling.Track("scene.Update")(); a.scene.Update(dt) }()

		a.renderer.Render(a.scene)
		a.hud.RecordFrame(time.Duration(float64(dt) * float64(time.Second)))
		a.hud.Render(a.scene)

		func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()
		a.input.PostUpdate()
		func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

		if rate, ok := fps.Frame(time.Now()); ok {
			a.hud.SetFPS(rate)
			a.log.Debug("frame stats", "fps", int(rate+0.5), "top", profiling.TopN(3))
		}
		limiter.Wait()
	}
}
