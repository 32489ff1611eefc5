package game

import (
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/towerdefense/config"
)

// Settings holds the gameplay tuning in the units systems work with.
type Settings struct {
	FireInterval   time.Duration
	BulletOffset   mgl64.Vec3
	BulletSpeed    float64
	BulletLifetime time.Duration
	TowerPosition  mgl64.Vec3

	TargetSpeed  float64
	TargetHealth int
	TargetSpawn  mgl64.Vec3

	CameraPosition      mgl64.Vec3
	CameraLookAt        mgl64.Vec3
	CameraMoveSpeed     float64
	CameraRotationSpeed float64
	CameraFovY          float64
}

func SettingsFromConfig(cfg config.Config) Settings {
	return Settings{
		FireInterval:        cfg.Tower.FireInterval,
		BulletOffset:        mgl64.Vec3(cfg.Tower.BulletOffset),
		BulletSpeed:         cfg.Tower.BulletSpeed,
		BulletLifetime:      cfg.Tower.BulletLifetime,
		TowerPosition:       mgl64.Vec3(cfg.Tower.Position),
		TargetSpeed:         cfg.Target.Speed,
		TargetHealth:        cfg.Target.Health,
		TargetSpawn:         mgl64.Vec3(cfg.Target.SpawnPoint),
		CameraPosition:      mgl64.Vec3(cfg.Camera.Position),
		CameraLookAt:        mgl64.Vec3(cfg.Camera.LookAt),
		CameraMoveSpeed:     cfg.Camera.MoveSpeed,
		CameraRotationSpeed: cfg.Camera.RotationSpeed,
		CameraFovY:          mgl64.DegToRad(cfg.Camera.FovDegrees),
	}
}

func DefaultSettings() Settings {
	return SettingsFromConfig(config.Default())
}

// FrameEvents counts what happened during the current tick. EventResetSystem
// zeroes it first thing every tick.
type FrameEvents struct {
	Shots           int
	TargetsDown     int
	BulletsExpired  int
	TowersBuilt     int
	TargetsSpawned  int
	SelectionChange bool
}

// Stats accumulates FrameEvents over the whole session.
type Stats struct {
	Ticks            int64
	Elapsed          time.Duration
	ShotsFired       int
	TargetsDestroyed int
	BulletsExpired   int
	TowersBuilt      int
	TargetsSpawned   int

	LiveTowers  int
	LiveTargets int
	LiveBullets int
}

type ClearColor struct {
	Color color.RGBA
}

// ClearColorFromConfig converts the configured 0..1 triple.
func ClearColorFromConfig(cfg config.Config) ClearColor {
	c := cfg.Window.ClearColor
	return ClearColor{Color: RGB(c[0], c[1], c[2])}
}
