package game

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/towerdefense/ecs"
)

// PlaceholderPositions are the build spots laid out around the center cube.
var PlaceholderPositions = []mgl64.Vec3{
	{1.5, 0.15, -1.5},
	{-1.5, 0.15, -1.5},
	{1.5, 0.15, 1.0},
}

// InitialTargets are the target positions present at startup.
var InitialTargets = []mgl64.Vec3{
	{-2, 0.4, 2.5},
	{-4, 0.4, 2.5},
}

// SpawnScene populates storage with the static scene, the camera, the
// starting tower, the build placeholders and the first targets.
func SpawnScene(storage *ecs.Storage, settings *Settings) {
	spawnStatic(storage, "Ground", NewTransform(0, 0, 0), Mesh{Shape: MeshPlane, Size: 5, Color: RGB(0.9, 0.25, 0.2)})
	spawnStatic(storage, "Cube", NewTransform(0, 0.5, 0), Mesh{Shape: MeshCube, Size: 1, Color: RGB(0.2, 0.2, 0.2)})

	light := NewTransform(2, 3, 2)
	storage.Spawn(Name("Point Light"), light, GlobalFromTransform(light), PointLight{Intensity: 1500, Shadows: true})

	SpawnCamera(storage, settings)

	storage.Spawn(TowerBundle(settings, settings.TowerPosition)...)

	for _, p := range PlaceholderPositions {
		storage.Spawn(PlaceholderBundle(p)...)
	}
	for _, p := range InitialTargets {
		storage.Spawn(TargetBundle(settings, p)...)
	}
}

// SpawnCamera places the camera at the configured position looking at the
// configured point.
func SpawnCamera(storage *ecs.Storage, settings *Settings) ecs.EntityId {
	t := TransformFromTranslation(settings.CameraPosition).LookingAt(settings.CameraLookAt, mgl64.Vec3{0, 1, 0})
	return storage.Spawn(
		Name("Camera"),
		t,
		GlobalFromTransform(t),
		Camera{FovY: settings.CameraFovY, Near: 0.1, Far: 100},
	)
}

func spawnStatic(storage *ecs.Storage, name string, t Transform, mesh Mesh) {
	storage.Spawn(Name(name), t, GlobalFromTransform(t), mesh)
}
