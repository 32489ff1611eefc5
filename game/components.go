package game

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/towerdefense/ecs"
)

//go:generate go run ../cmd/componentgen -dir . -out components_gen.go

// Tower periodically fires a bullet at the nearest target.
//
//ecs:component
type Tower struct {
	ShootingTimer ecs.Timer
	BulletOffset  mgl64.Vec3
}

// Bullet travels along Direction, scaled by Speed. Direction is fixed when the
// bullet is spawned and is not normalized.
//
//ecs:component
type Bullet struct {
	Direction mgl64.Vec3
	Speed     float64
}

// Lifetime removes its entity when Timer finishes.
//
//ecs:component
type Lifetime struct {
	Timer ecs.Timer
}

// Target walks along +X at Speed units per second.
//
//ecs:component
type Target struct {
	Speed float64
}

//ecs:component
type Health struct {
	Value int
}

// Name labels an entity in the inspector and logs.
//
//ecs:component
type Name string

// Placeholder marks a spot where a tower can be built.
//
//ecs:component
type Placeholder struct{}

//ecs:component
type Selectable struct {
	Selected bool
}

type MeshShape uint8

const (
	MeshCube MeshShape = iota
	MeshPlane
)

func (s MeshShape) String() string {
	switch s {
	case MeshCube:
		return "cube"
	case MeshPlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Mesh is drawn centered on the entity's global translation. Size is the edge
// length of a cube or the side of a square plane.
//
//ecs:component
type Mesh struct {
	Shape MeshShape
	Size  float64
	Color color.RGBA
}

//ecs:component
type PointLight struct {
	Intensity float64
	Shadows   bool
}

// Camera projects the world for the entity's transform. Only one is expected.
//
//ecs:component
type Camera struct {
	FovY float64
	Near float64
	Far  float64
}

// RGB converts 0..1 channel values into an opaque color.
func RGB(r, g, b float64) color.RGBA {
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 0xff}
}

func channel(v float64) uint8 {
	v = mgl64.Clamp(v, 0, 1)
	return uint8(v*255 + 0.5)
}
