package game

import "github.com/plus3/towerdefense/ecs"

//go:generate go tool mockgen -destination=./mocks/sound_player_mock.go -package=mocks . SoundPlayer

type Sound uint8

const (
	SoundShot Sound = iota
	SoundTargetDown
	SoundBuild
	SoundSpawn
)

func (s Sound) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundTargetDown:
		return "target-down"
	case SoundBuild:
		return "build"
	case SoundSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// SoundPlayer plays short effects. Play must not block the simulation.
type SoundPlayer interface {
	Play(sound Sound)
}

// SoundSystem turns this tick's events into sound effects, one per kind of
// event regardless of how many happened.
type SoundSystem struct {
	Events ecs.Singleton[FrameEvents]

	Player SoundPlayer
}

func (s *SoundSystem) Execute(frame *ecs.UpdateFrame) {
	events := s.Events.Get()
	if s.Player == nil || events == nil {
		return
	}
	if events.Shots > 0 {
		s.Player.Play(SoundShot)
	}
	if events.TargetsDown > 0 {
		s.Player.Play(SoundTargetDown)
	}
	if events.TowersBuilt > 0 {
		s.Player.Play(SoundBuild)
	}
	if events.TargetsSpawned > 0 {
		s.Player.Play(SoundSpawn)
	}
}
