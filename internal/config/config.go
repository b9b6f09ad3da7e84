package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Window holds window creation settings
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// Textures locates the scene's texture files
type Textures struct {
	Dir string `yaml:"dir"`
}

// Camera holds fly camera tuning
type Camera struct {
	Speed       float32 `yaml:"speed"`
	Sensitivity float32 `yaml:"sensitivity"`
}

// HUD controls the on-screen text overlay
type HUD struct {
	Enabled  bool `yaml:"enabled"`
	FontSize int  `yaml:"font_size"` // pixels
}

// Log holds logger settings
type Log struct {
	Level string `yaml:"level"`
}

// Settings is the full runtime configuration
type Settings struct {
	Window   Window   `yaml:"window"`
	FPSLimit int      `yaml:"fps_limit"` // 0 = unlimited
	Textures Textures `yaml:"textures"`
	Camera   Camera   `yaml:"camera"`
	HUD      HUD      `yaml:"hud"`
	Log      Log      `yaml:"log"`
}

// Defaults returns the built-in configuration.
func Defaults() Settings {
	return Settings{
		Window: Window{
			Width:  1200,
			Height: 1000,
			Title:  "Desk Scene",
			VSync:  true,
		},
		Textures: Textures{Dir: "../../resources/textures"},
		Camera:   Camera{Speed: 2.5, Sensitivity: 0.1},
		HUD:      HUD{Enabled: true, FontSize: 18},
		Log:      Log{Level: "info"},
	}
}

var (
	mu      sync.RWMutex
	current = Defaults()
)

// Load reads a YAML file on top of the defaults and validates the result.
// Keys absent from the file keep their default values.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config %s: %w", path, err)
	}
	s := Defaults()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// Validate rejects settings the program cannot run with.
func (s Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, s.Window.Width, s.Window.Height)
	}
	if s.FPSLimit < 0 {
		return fmt.Errorf("%w: fps_limit %d", ErrInvalid, s.FPSLimit)
	}
	if s.Camera.Speed <= 0 || s.Camera.Sensitivity <= 0 {
		return fmt.Errorf("%w: camera speed %v sensitivity %v", ErrInvalid, s.Camera.Speed, s.Camera.Sensitivity)
	}
	if s.HUD.FontSize < 6 || s.HUD.FontSize > 96 {
		return fmt.Errorf("%w: hud font_size %d", ErrInvalid, s.HUD.FontSize)
	}
	switch strings.ToLower(s.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, s.Log.Level)
	}
	return nil
}

// Apply installs s as the current configuration.
func Apply(s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	current = s
	return nil
}

// Current returns a copy of the current configuration
func Current() Settings {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// GetFPSLimit returns the frame cap, 0 meaning unlimited
func GetFPSLimit() int {
	mu.RLock()
	defer mu.RUnlock()
	return current.FPSLimit
}

// GetTextureDir returns the directory texture files are resolved against
func GetTextureDir() string {
	mu.RLock()
	defer mu.RUnlock()
	return current.Textures.Dir
}

// SetTextureDir overrides the texture directory
func SetTextureDir(dir string) {
	mu.Lock()
	defer mu.Unlock()
	current.Textures.Dir = dir
}

// SetLogLevel overrides the log level; unknown levels are rejected.
func SetLogLevel(level string) error {
	mu.Lock()
	defer mu.Unlock()
	next := current
	next.Log.Level = level
	if err := next.Validate(); err != nil {
		return err
	}
	current = next
	return nil
}

// Init applies an optional YAML file, then the command-line overrides.
// Empty arguments are skipped.
func Init(path, textureDir, logLevel string) error {
	if path != "" {
		s, err := Load(path)
		if err != nil {
			return err
		}
		if err := Apply(s); err != nil {
			return err
		}
	}
	if textureDir != "" {
		SetTextureDir(textureDir)
	}
	if logLevel != "" {
		if err := SetLogLevel(logLevel); err != nil {
			return err
		}
	}
	return nil
}
