package game

import (
	"iter"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/towerdefense/ecs"
)

type towerView struct {
	ecs.EntityId
	*Tower
	*GlobalTransform
}

type targetPosition struct {
	ecs.EntityId
	*Target
	*GlobalTransform
}

// TowerShootingSystem ticks every tower's cooldown and, when it completes,
// spawns a bullet aimed at the target nearest to the muzzle.
type TowerShootingSystem struct {
	Towers   ecs.Query[towerView]
	Targets  ecs.Query[targetPosition]
	Settings ecs.Singleton[Settings]
	Events   ecs.Singleton[FrameEvents]

	Log *slog.Logger
}

func (s *TowerShootingSystem) Execute(frame *ecs.UpdateFrame) {
	settings := s.Settings.Get()
	events := s.Events.Get()
	delta := frame.Delta()

	for tower := range s.Towers.Iter() {
		tower.ShootingTimer.Tick(delta)
		// Several completed cycles in one long frame still fire a single bullet
		if !tower.ShootingTimer.JustFinished() {
			continue
		}

		muzzle := tower.GlobalTransform.Translation().Add(tower.BulletOffset)
		target, ok := nearestTarget(s.Targets.Iter(), muzzle)
		if !ok {
			continue
		}

		direction := target.Sub(muzzle)
		frame.Commands.SpawnChild(tower.EntityId,
			BulletBundle(settings, *tower.GlobalTransform, tower.BulletOffset, direction)...)

		if events != nil {
			events.Shots++
		}
		logger(s.Log).Debug("tower fired",
			"tower", tower.EntityId,
			"direction", direction)
	}
}

// nearestTarget returns the world position of the target closest to from.
// On a tie the first one seen wins.
func nearestTarget(targets iter.Seq[targetPosition], from mgl64.Vec3) (mgl64.Vec3, bool) {
	var (
		best     mgl64.Vec3
		bestDist float64
		found    bool
	)
	for t := range targets {
		pos := t.GlobalTransform.Translation()
		dist := pos.Sub(from).Len()
		if !found || dist < bestDist {
			best, bestDist, found = pos, dist, true
		}
	}
	return best, found
}

// BulletMoveSystem advances bullets along their fixed direction.
type BulletMoveSystem struct {
	Bullets ecs.Query[struct {
		*Bullet
		*Transform
	}]
}

func (s *BulletMoveSystem) Execute(frame *ecs.UpdateFrame) {
	for b := range s.Bullets.Iter() {
		b.Translation = b.Translation.Add(b.Direction.Mul(b.Speed * frame.DeltaTime))
	}
}

// LifetimeSystem removes entities whose lifetime timer finished this tick.
type LifetimeSystem struct {
	Entities ecs.Query[struct {
		ecs.EntityId
		*Lifetime
	}]
	Events ecs.Singleton[FrameEvents]
}

func (s *LifetimeSystem) Execute(frame *ecs.UpdateFrame) {
	events := s.Events.Get()
	delta := frame.Delta()

	for e := range s.Entities.Iter() {
		e.Timer.Tick(delta)
		if !e.Timer.JustFinished() {
			continue
		}
		frame.Commands.DeleteRecursive(e.EntityId)
		if events != nil {
			events.BulletsExpired++
		}
	}
}
