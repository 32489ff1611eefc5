package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/towerdefense/ecs"
)

var (
	towerColor       = RGB(0.5, 0.5, 0.5)
	bulletColor      = RGB(0.87, 0.44, 0.42)
	targetColor      = RGB(0.67, 0.84, 0.9)
	placeholderColor = RGB(0.3, 0.7, 0.3)
)

const (
	towerSize       = 0.25
	bulletSize      = 0.1
	targetSize      = 0.4
	placeholderSize = 0.3
)

// TowerBundle is a tower at position with a fresh cooldown timer.
func TowerBundle(settings *Settings, position mgl64.Vec3) []any {
	t := TransformFromTranslation(position)
	return []any{
		Name("Tower"),
		t,
		GlobalFromTransform(t),
		Mesh{Shape: MeshCube, Size: towerSize, Color: towerColor},
		Tower{
			ShootingTimer: ecs.NewTimer(settings.FireInterval, ecs.TimerRepeating),
			BulletOffset:  settings.BulletOffset,
		},
	}
}

// BulletBundle is a bullet at the tower-local offset. parent is the tower's
// current world transform, used to seed GlobalTransform until the next
// propagation pass.
func BulletBundle(settings *Settings, parent GlobalTransform, offset, direction mgl64.Vec3) []any {
	t := TransformFromTranslation(offset)
	return []any{
		Name("Bullet"),
		t,
		parent.Mul(t),
		Mesh{Shape: MeshCube, Size: bulletSize, Color: bulletColor},
		Lifetime{Timer: ecs.NewTimer(settings.BulletLifetime, ecs.TimerOnce)},
		Bullet{Direction: direction, Speed: settings.BulletSpeed},
	}
}

func TargetBundle(settings *Settings, position mgl64.Vec3) []any {
	t := TransformFromTranslation(position)
	return []any{
		Name("Target"),
		t,
		GlobalFromTransform(t),
		Mesh{Shape: MeshCube, Size: targetSize, Color: targetColor},
		Target{Speed: settings.TargetSpeed},
		Health{Value: settings.TargetHealth},
	}
}

func PlaceholderBundle(position mgl64.Vec3) []any {
	t := TransformFromTranslation(position)
	return []any{
		Name("Placeholder"),
		t,
		GlobalFromTransform(t),
		Mesh{Shape: MeshCube, Size: placeholderSize, Color: placeholderColor},
		Placeholder{},
		Selectable{},
	}
}
