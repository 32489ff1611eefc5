// Package config holds the tuning values for the tower defense prototype and
// loads overrides from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Vec3 is an x, y, z triple as written in YAML: [x, y, z].
type Vec3 [3]float64

// Config is the full set of tunables. Zero values are never meaningful; start
// from Default and override.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Tower  TowerConfig  `yaml:"tower"`
	Target TargetConfig `yaml:"target"`
	Camera CameraConfig `yaml:"camera"`
	Audio  AudioConfig  `yaml:"audio"`
	Debug  DebugConfig  `yaml:"debug"`
}

type WindowConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Title      string  `yaml:"title"`
	ClearColor Vec3    `yaml:"clear_color"`
	TickRate   float64 `yaml:"tick_rate"`
}

type TowerConfig struct {
	FireInterval   time.Duration `yaml:"fire_interval"`
	BulletOffset   Vec3          `yaml:"bullet_offset"`
	BulletSpeed    float64       `yaml:"bullet_speed"`
	BulletLifetime time.Duration `yaml:"bullet_lifetime"`
	Position       Vec3          `yaml:"position"`
}

type TargetConfig struct {
	Speed      float64 `yaml:"speed"`
	Health     int     `yaml:"health"`
	SpawnPoint Vec3    `yaml:"spawn_point"`
}

type CameraConfig struct {
	Position      Vec3    `yaml:"position"`
	LookAt        Vec3    `yaml:"look_at"`
	MoveSpeed     float64 `yaml:"move_speed"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	FovDegrees    float64 `yaml:"fov_degrees"`
}

type AudioConfig struct {
	Muted  bool    `yaml:"muted"`
	Volume float64 `yaml:"volume"`
}

type DebugConfig struct {
	Inspector bool `yaml:"inspector"`
}

// Default returns the values the prototype was tuned with.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Title:      "Tower Defense",
			ClearColor: Vec3{0.2, 0.2, 0.2},
			TickRate:   60,
		},
		Tower: TowerConfig{
			FireInterval:   time.Second,
			BulletOffset:   Vec3{0, 0, 0},
			BulletSpeed:    2.5,
			BulletLifetime: 5 * time.Second,
			Position:       Vec3{0, 1.1, 0},
		},
		Target: TargetConfig{
			Speed:      0.3,
			Health:     3,
			SpawnPoint: Vec3{-4, 0.4, 2.5},
		},
		Camera: CameraConfig{
			Position:      Vec3{-2, 2.5, 5},
			LookAt:        Vec3{0, 0, 0},
			MoveSpeed:     3.0,
			RotationSpeed: 1.5,
			FovDegrees:    45,
		},
		Audio: AudioConfig{
			Volume: 0.5,
		},
	}
}

// Load reads path on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML from r on top of Default and validates the result.
func Decode(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decode config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first out-of-range value, wrapped in ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %v", ErrInvalid, c.Window.TickRate)
	case c.Tower.FireInterval <= 0:
		return fmt.Errorf("%w: tower.fire_interval must be positive, got %v", ErrInvalid, c.Tower.FireInterval)
	case c.Tower.BulletLifetime <= 0:
		return fmt.Errorf("%w: tower.bullet_lifetime must be positive, got %v", ErrInvalid, c.Tower.BulletLifetime)
	case c.Tower.BulletSpeed < 0:
		return fmt.Errorf("%w: tower.bullet_speed must not be negative, got %v", ErrInvalid, c.Tower.BulletSpeed)
	case c.Target.Health <= 0:
		return fmt.Errorf("%w: target.health must be positive, got %d", ErrInvalid, c.Target.Health)
	case c.Camera.MoveSpeed < 0 || c.Camera.RotationSpeed < 0:
		return fmt.Errorf("%w: camera speeds must not be negative", ErrInvalid)
	case c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180:
		return fmt.Errorf("%w: camera.fov_degrees must be in (0, 180), got %v", ErrInvalid, c.Camera.FovDegrees)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be in [0, 1], got %v", ErrInvalid, c.Audio.Volume)
	}
	return nil
}

// TickInterval is the fixed simulation step derived from TickRate.
func (c Config) TickInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.Window.TickRate)
}
