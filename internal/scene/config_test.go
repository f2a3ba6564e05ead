package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1280
  height: 720
paths:
  state: saved.txt
  ambient_sound: sounds/wind.qoa
debug: true
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("window = %dx%d, want 1280x720", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "LearnOpenGL" {
		t.Errorf("title = %q, want default", cfg.Window.Title)
	}
	if cfg.Paths.State != "saved.txt" || cfg.Paths.AmbientSound != "sounds/wind.qoa" {
		t.Errorf("paths = %+v", cfg.Paths)
	}
	if cfg.Paths.Shaders != DefaultConfig().Paths.Shaders {
		t.Errorf("shaders = %q, want default", cfg.Paths.Shaders)
	}
	if !cfg.Debug {
		t.Error("debug = false, want true")
	}
	if got := cfg.Aspect(); !approx(got, 1280.0/720.0) {
		t.Errorf("aspect = %v", got)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", "window: ["},
		{"zero width", "window:\n  width: 0\n"},
		{"negative height", "window:\n  height: -1\n"},
		{"zero speed", "camera:\n  speed: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("LoadConfig succeeded")
			}
		})
	}
}

func TestDefaultCameraSpeed(t *testing.T) {
	s := NewProgramState(DefaultConfig())
	s.Camera.ProcessKeyboard(Forward, 1)
	if !approxVec(s.Camera.Position(), mgl32.Vec3{0, 0, -2}) {
		t.Errorf("after 1s forward position = %v, want (0,0,-2)", s.Camera.Position())
	}
}
