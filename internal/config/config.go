package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"

	"spincube/internal/frame"
	"spincube/internal/mathutil"
	"spincube/internal/sequence"
)

// Config holds scene, render and output settings.
type Config struct {
	// Viewport
	Width  int `json:"width" env:"SPINCUBE_WIDTH"`
	Height int `json:"height" env:"SPINCUBE_HEIGHT"`

	// Scene
	FOV      float64    `json:"fov" env:"SPINCUBE_FOV"`
	Near     float64    `json:"near" env:"SPINCUBE_NEAR"`
	Far      float64    `json:"far" env:"SPINCUBE_FAR"`
	Distance float64    `json:"distance" env:"SPINCUBE_DISTANCE"`
	PeriodMS float64    `json:"period_ms" env:"SPINCUBE_PERIOD_MS"`
	Axis     [3]float64 `json:"axis"`

	// Render settings
	Supersample  int      `json:"supersample" env:"SPINCUBE_SUPERSAMPLE"`
	Hz           int      `json:"hz" env:"SPINCUBE_HZ"`
	Background   [4]uint8 `json:"background"`
	MaxCondition float64  `json:"max_condition" env:"SPINCUBE_MAX_CONDITION"`

	// Export
	Frames    int    `json:"frames" env:"SPINCUBE_FRAMES"`
	FPS       int    `json:"fps" env:"SPINCUBE_FPS"`
	OutputDir string `json:"output_dir" env:"SPINCUBE_OUTPUT_DIR"`
	Format    string `json:"format" env:"SPINCUBE_FORMAT"`
	Workers   int    `json:"workers" env:"SPINCUBE_WORKERS"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from SPINCUBE_* environment variables.
// Unset variables leave the field alone.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Scene defaults
	def := frame.DefaultScene()
	if c.FOV <= 0 {
		c.FOV = def.FOV
	}
	if c.Near <= 0 {
		c.Near = def.Near
	}
	if c.Far <= 0 {
		c.Far = def.Far
	}
	if c.Distance == 0 {
		c.Distance = def.Distance
	}
	if c.PeriodMS <= 0 {
		c.PeriodMS = def.PeriodMS
	}
	if c.Axis == [3]float64{} {
		c.Axis = [3]float64(def.Axis)
	}

	// Defaults for render settings
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 480
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Hz <= 0 {
		c.Hz = 60
	}
	if c.MaxCondition < 0 {
		c.MaxCondition = 0
	}

	// Defaults for export
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.Frames <= 0 {
		// One full turn.
		c.Frames = int(c.PeriodMS / 1000 * float64(c.FPS))
	}
	if c.Format == "" {
		c.Format = string(sequence.FormatWebP)
	}
	if c.OutputDir == "" {
		cwd, _ := os.Getwd()
		c.OutputDir = filepath.Join(cwd, "frames")
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate rejects settings that cannot produce a picture at all.
func (c Config) Validate() error {
	if c.Near == c.Far {
		return fmt.Errorf("config: near and far planes are both %v", c.Near)
	}
	if c.Axis == [3]float64{} {
		return fmt.Errorf("config: rotation axis is zero")
	}
	if _, err := sequence.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Scene converts the scene fields for the frame driver.
func (c Config) Scene() frame.Scene {
	return frame.Scene{
		FOV:      c.FOV,
		Near:     c.Near,
		Far:      c.Far,
		Distance: c.Distance,
		PeriodMS: c.PeriodMS,
		Axis:     mathutil.Vec3(c.Axis),
	}
}

// FrameMS is the time step between exported frames.
func (c Config) FrameMS() float64 {
	return 1000 / float64(c.FPS)
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width     int
	Height    int
	Frames    int
	OutputDir string
	Format    string
	Workers   int
}
