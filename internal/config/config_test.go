package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deskscene.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := writeFile(t, "window:\n  width: 800\nfps_limit: 60\ntextures:\n  dir: assets\n")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Window.Width != 800 {
		t.Errorf("Expected width 800, got %d", s.Window.Width)
	}
	if s.Window.Height != 1000 {
		t.Errorf("Expected default height 1000, got %d", s.Window.Height)
	}
	if s.FPSLimit != 60 {
		t.Errorf("Expected fps limit 60, got %d", s.FPSLimit)
	}
	if s.Textures.Dir != "assets" {
		t.Errorf("Expected texture dir 'assets', got '%s'", s.Textures.Dir)
	}
	if s.Camera.Speed != 2.5 {
		t.Errorf("Expected default camera speed 2.5, got %v", s.Camera.Speed)
	}
	if !s.HUD.Enabled || s.HUD.FontSize != 18 {
		t.Errorf("Expected default hud {true 18}, got %+v", s.HUD)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"negative width": "window:\n  width: -1\n",
		"negative fps":   "fps_limit: -5\n",
		"bad level":      "log:\n  level: loud\n",
		"zero speed":     "camera:\n  speed: 0\n",
		"tiny font":      "hud:\n  font_size: 2\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, body))
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Expected not-exist error, got %v", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	if _, err := Load(writeFile(t, "window: [1, 2\n")); err == nil {
		t.Fatal("Expected parse error")
	}
}

func TestApplyAndSetters(t *testing.T) {
	orig := Current()
	t.Cleanup(func() { _ = Apply(orig) })

	s := Defaults()
	s.FPSLimit = 144
	if err := Apply(s); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if GetFPSLimit() != 144 {
		t.Errorf("Expected fps limit 144, got %d", GetFPSLimit())
	}

	SetTextureDir("/tmp/tex")
	if GetTextureDir() != "/tmp/tex" {
		t.Errorf("Expected texture dir override, got %s", GetTextureDir())
	}

	if err := SetLogLevel("nope"); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for unknown level, got %v", err)
	}
	if Current().Log.Level != "info" {
		t.Errorf("Rejected level must not be stored, got %s", Current().Log.Level)
	}
	if err := SetLogLevel("debug"); err != nil {
		t.Errorf("SetLogLevel(debug): %v", err)
	}
}

func TestApplyRejectsInvalid(t *testing.T) {
	s := Defaults()
	s.Window.Height = 0
	if err := Apply(s); !errors.Is(err, ErrInvalid) {
		t.Fatalf("Expected ErrInvalid, got %v", err)
	}
}

func TestInitFileThenOverrides(t *testing.T) {
	orig := Current()
	t.Cleanup(func() { _ = Apply(orig) })

	path := writeFile(t, "textures:\n  dir: from-file\nfps_limit: 30\n")
	if err := Init(path, "", ""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if GetTextureDir() != "from-file" || GetFPSLimit() != 30 {
		t.Errorf("Expected file values, got dir %q fps %d", GetTextureDir(), GetFPSLimit())
	}

	if err := Init(path, "from-flag", "warn"); err != nil {
		t.Fatalf("Init with overrides: %v", err)
	}
	if GetTextureDir() != "from-flag" {
		t.Errorf("Flag should override file dir, got %q", GetTextureDir())
	}
	if Current().Log.Level != "warn" {
		t.Errorf("Expected level warn, got %q", Current().Log.Level)
	}

	if err := Init("", "", "loud"); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for bad level, got %v", err)
	}
	if err := Init(filepath.Join(t.TempDir(), "missing.yaml"), "", ""); err == nil {
		t.Error("Expected error for missing config file")
	}
}
