// Package config loads tutorial settings from an optional TOML file layered over
// compile-time defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is returned when a setting is outside its allowed range.
var ErrInvalid = errors.New("invalid configuration")

// Config holds every setting a tutorial reads at startup.
type Config struct {
	Window WindowConfig `toml:"window"`
	Frame  FrameConfig  `toml:"frame"`
	Camera CameraConfig `toml:"camera"`
	Assets AssetsConfig `toml:"assets"`
	Debug  DebugConfig  `toml:"debug"`
}

// WindowConfig describes the window and its GL context.
type WindowConfig struct {
	Width      int        `toml:"width"`
	Height     int        `toml:"height"`
	Title      string     `toml:"title"`
	GLMajor    int        `toml:"gl_major"`
	GLMinor    int        `toml:"gl_minor"`
	VSync      bool       `toml:"vsync"`
	ClearColor [4]float32 `toml:"clear_color"`
}

// FrameConfig controls the render loop pacing.
type FrameConfig struct {
	// TargetFPS caps the frame rate; 0 leaves it uncapped.
	TargetFPS int `toml:"target_fps"`
}

// CameraConfig is the initial state of the fly camera.
type CameraConfig struct {
	Position       [3]float32 `toml:"position"`
	Yaw            float32    `toml:"yaw"`
	Pitch          float32    `toml:"pitch"`
	Speed          float32    `toml:"speed"`
	Sensitivity    float32    `toml:"sensitivity"`
	Zoom           float32    `toml:"zoom"`
	ConstrainPitch bool       `toml:"constrain_pitch"`
	InvertY        bool       `toml:"invert_y"`
}

// AssetsConfig locates shader and texture files.
type AssetsConfig struct {
	// BaseDir is the asset root; "~" is expanded to the home directory.
	BaseDir string `toml:"base_dir"`
}

// DebugConfig toggles development aids.
type DebugConfig struct {
	Profiling bool `toml:"profiling"`
	// ProfileInterval is the profiler report period in seconds.
	ProfileInterval float64 `toml:"profile_interval"`
	// HotReload reloads shaders when their source files change.
	HotReload bool `toml:"hot_reload"`
}

// Default returns the settings used when no file overrides them.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:      1024,
			Height:     768,
			Title:      "oxy-gl",
			GLMajor:    4,
			GLMinor:    1,
			VSync:      false,
			ClearColor: [4]float32{0.16, 0.24, 0.32, 1},
		},
		Frame: FrameConfig{TargetFPS: 60},
		Camera: CameraConfig{
			Position:       [3]float32{0, 0, 3},
			Yaw:            -90,
			Pitch:          0,
			Speed:          5,
			Sensitivity:    0.1,
			Zoom:           45,
			ConstrainPitch: true,
		},
		Assets: AssetsConfig{BaseDir: "assets"},
		Debug:  DebugConfig{ProfileInterval: 1},
	}
}

// Load reads a TOML file over the defaults. A missing file is not an error and yields
// Default().
//
// Parameters:
//   - path: the config file path
//
// Returns:
//   - Config: the merged configuration
//   - error: read or parse error, or ErrInvalid
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("[Config] %s not found, using defaults", path)
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults. Unknown keys are rejected.
//
// Parameters:
//   - data: TOML document
//
// Returns:
//   - Config: the merged configuration
//   - error: decode error, or ErrInvalid
func Parse(data []byte) (Config, error) {
	def := Default()
	cfg := def

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}

	// An explicitly empty string falls back to the default rather than failing.
	cfg.Window.Title = common.Coalesce(cfg.Window.Title, def.Window.Title)
	cfg.Assets.BaseDir = common.Coalesce(cfg.Assets.BaseDir, def.Assets.BaseDir)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ProfileInterval returns the profiler report period.
//
// Returns:
//   - time.Duration: debug.profile_interval as a duration
func (c Config) ProfileInterval() time.Duration {
	return time.Duration(c.Debug.ProfileInterval * float64(time.Second))
}

// Validate checks every range constraint.
//
// Returns:
//   - error: ErrInvalid wrapped with the first offending key
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.GLMajor < 3 || c.Window.GLMinor < 0:
		return fmt.Errorf("%w: OpenGL %d.%d is not a core profile version", ErrInvalid, c.Window.GLMajor, c.Window.GLMinor)
	case c.Frame.TargetFPS < 0:
		return fmt.Errorf("%w: frame.target_fps must not be negative, got %d", ErrInvalid, c.Frame.TargetFPS)
	case c.Camera.Pitch < -89 || c.Camera.Pitch > 89:
		return fmt.Errorf("%w: camera.pitch must be within [-89, 89], got %g", ErrInvalid, c.Camera.Pitch)
	case c.Camera.Zoom < 1 || c.Camera.Zoom > 45:
		return fmt.Errorf("%w: camera.zoom must be within [1, 45], got %g", ErrInvalid, c.Camera.Zoom)
	case c.Camera.Speed < 0:
		return fmt.Errorf("%w: camera.speed must not be negative, got %g", ErrInvalid, c.Camera.Speed)
	case c.Camera.Sensitivity <= 0:
		return fmt.Errorf("%w: camera.sensitivity must be positive, got %g", ErrInvalid, c.Camera.Sensitivity)
	case c.Debug.ProfileInterval <= 0:
		return fmt.Errorf("%w: debug.profile_interval must be positive, got %g", ErrInvalid, c.Debug.ProfileInterval)
	}
	for i, v := range c.Window.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: window.clear_color[%d] must be within [0, 1], got %g", ErrInvalid, i, v)
		}
	}
	return nil
}
