package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"deskscene/internal/config"
	"deskscene/internal/logging"
	"deskscene/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		slog.Error("deskscene failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML config file")
	textureDir := flag.String("textures", "", "texture directory (overrides config)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (overrides config)")
	flag.Parse()

	if err := config.Init(*configPath, *textureDir, *logLevel); err != nil {
		return err
	}
	cfg := config.Current()

	log, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	s := scene.Default(window.GetFramebufferSize())

	app, err := newApp(log, window, s, cfg)
	if err != nil {
		return err
	}
	defer app.close()

	app.run()
	return nil
}
