package game

import (
	"log/slog"

	"github.com/plus3/towerdefense/ecs"
)

// MoveTargetsSystem walks every target along +X.
type MoveTargetsSystem struct {
	Targets ecs.Query[struct {
		*Target
		*Transform
	}]
}

func (s *MoveTargetsSystem) Execute(frame *ecs.UpdateFrame) {
	for t := range s.Targets.Iter() {
		t.Translation[0] += t.Speed * frame.DeltaTime
	}
}

// TargetDespawnSystem removes any entity whose health dropped to zero or
// below, along with its children.
type TargetDespawnSystem struct {
	Entities ecs.Query[struct {
		ecs.EntityId
		*Health
	}]
	Events ecs.Singleton[FrameEvents]

	Log *slog.Logger
}

func (s *TargetDespawnSystem) Execute(frame *ecs.UpdateFrame) {
	events := s.Events.Get()
	for e := range s.Entities.Iter() {
		if e.Value > 0 {
			continue
		}
		frame.Commands.DeleteRecursive(e.EntityId)
		if events != nil {
			events.TargetsDown++
		}
		logger(s.Log).Debug("target destroyed", "entity", e.EntityId, "health", e.Value)
	}
}

// SpawnTargetSystem spawns a fresh target at the spawn point on request.
type SpawnTargetSystem struct {
	Input    ecs.Singleton[InputState]
	Settings ecs.Singleton[Settings]
	Events   ecs.Singleton[FrameEvents]

	Log *slog.Logger
}

func (s *SpawnTargetSystem) Execute(frame *ecs.UpdateFrame) {
	input := s.Input.Get()
	if input == nil || !input.JustPressed(ActionSpawnTarget) {
		return
	}

	settings := s.Settings.Get()
	frame.Commands.Spawn(TargetBundle(settings, settings.TargetSpawn)...)
	if events := s.Events.Get(); events != nil {
		events.TargetsSpawned++
	}
	logger(s.Log).Debug("target spawned", "position", settings.TargetSpawn)
}
