package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/towerdefense/ecs"
)

// CameraControlSystem flies the camera: W/S/A/D move on the ground plane,
// Space/Shift move vertically, arrows turn.
type CameraControlSystem struct {
	Cameras ecs.Query[struct {
		*Camera
		*Transform
	}]
	Input    ecs.Singleton[InputState]
	Settings ecs.Singleton[Settings]
}

func (s *CameraControlSystem) Execute(frame *ecs.UpdateFrame) {
	input := s.Input.Get()
	if input == nil || input.Held == 0 {
		return
	}
	settings := s.Settings.Get()
	dt := frame.DeltaTime

	for cam := range s.Cameras.Iter() {
		moveCamera(cam.Transform, input, settings.CameraMoveSpeed*dt, settings.CameraRotationSpeed*dt)
	}
}

func moveCamera(t *Transform, input *InputState, step, turn float64) {
	forward, hasForward := flatten(t.Forward())
	left, hasLeft := flatten(t.Left())
	up := mgl64.Vec3{0, math.Copysign(1, t.Up().Y()), 0}
	if math.Abs(t.Up().Y()) < 1e-9 {
		up = mgl64.Vec3{}
	}

	var move mgl64.Vec3
	if hasForward {
		if input.IsHeld(ActionForward) {
			move = move.Add(forward)
		}
		if input.IsHeld(ActionBack) {
			move = move.Sub(forward)
		}
	}
	if hasLeft {
		if input.IsHeld(ActionLeft) {
			move = move.Add(left)
		}
		if input.IsHeld(ActionRight) {
			move = move.Sub(left)
		}
	}
	if input.IsHeld(ActionRise) {
		move = move.Add(up)
	}
	if input.IsHeld(ActionFall) {
		move = move.Sub(up)
	}
	t.Translation = t.Translation.Add(move.Mul(step))

	yAxis := mgl64.Vec3{0, 1, 0}
	xAxis := mgl64.Vec3{1, 0, 0}
	if input.IsHeld(ActionYawLeft) {
		t.RotateWorld(mgl64.QuatRotate(turn, yAxis))
	}
	if input.IsHeld(ActionYawRight) {
		t.RotateWorld(mgl64.QuatRotate(-turn, yAxis))
	}
	if input.IsHeld(ActionPitchUp) {
		t.RotateLocal(mgl64.QuatRotate(turn, xAxis))
	}
	if input.IsHeld(ActionPitchDown) {
		t.RotateLocal(mgl64.QuatRotate(-turn, xAxis))
	}
}
