package game

import (
	"io"
	"log/slog"

	"github.com/plus3/towerdefense/ecs"
)

// EventResetSystem clears FrameEvents at the start of every tick.
type EventResetSystem struct {
	Events ecs.Singleton[FrameEvents]
}

func (s *EventResetSystem) Execute(frame *ecs.UpdateFrame) {
	if events := s.Events.Get(); events != nil {
		*events = FrameEvents{}
	}
}

// StatsSystem folds this tick's events into the session totals and counts
// what is alive.
type StatsSystem struct {
	Events  ecs.Singleton[FrameEvents]
	Stats   ecs.Singleton[Stats]
	Towers  ecs.Query[struct{ *Tower }]
	Targets ecs.Query[struct{ *Target }]
	Bullets ecs.Query[struct{ *Bullet }]
}

func (s *StatsSystem) Execute(frame *ecs.UpdateFrame) {
	stats := s.Stats.Get()
	if stats == nil {
		return
	}
	stats.Ticks++
	stats.Elapsed += frame.Delta()

	if events := s.Events.Get(); events != nil {
		stats.ShotsFired += events.Shots
		stats.TargetsDestroyed += events.TargetsDown
		stats.BulletsExpired += events.BulletsExpired
		stats.TowersBuilt += events.TowersBuilt
		stats.TargetsSpawned += events.TargetsSpawned
	}

	// Counted before this tick's commands are flushed
	stats.LiveTowers = s.Towers.Len()
	stats.LiveTargets = s.Targets.Len()
	stats.LiveBullets = s.Bullets.Len()
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return discard
	}
	return l
}
