package scene

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PathConfig points at everything loaded from disk. Directories are
// relative to the working directory.
type PathConfig struct {
	Shaders      string `yaml:"shaders"`
	Textures     string `yaml:"textures"`
	Models       string `yaml:"models"`
	State        string `yaml:"state"`
	Font         string `yaml:"font"`
	AmbientSound string `yaml:"ambient_sound"`
}

type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
}

type Config struct {
	Window WindowConfig `yaml:"window"`
	Paths  PathConfig   `yaml:"paths"`
	Camera CameraConfig `yaml:"camera"`
	Debug  bool         `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "LearnOpenGL",
		},
		Paths: PathConfig{
			Shaders:  "resources/shaders",
			Textures: "resources/textures",
			Models:   "resources/objects/backpack",
			State:    "resources/program_state.txt",
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0, 3},
			Speed:       5,
			Sensitivity: 0.1,
		},
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys missing from the
// file keep their defaults, and a missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Speed <= 0 {
		return fmt.Errorf("camera speed must be positive, got %v", c.Camera.Speed)
	}
	return nil
}

// Aspect is the window's width over height.
func (c Config) Aspect() float32 {
	return float32(c.Window.Width) / float32(c.Window.Height)
}

func (c CameraConfig) StartPosition() mgl32.Vec3 {
	return mgl32.Vec3(c.Position)
}
