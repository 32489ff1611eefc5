package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/towerdefense/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovementSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
	ExecuteCount int
}

func (s *MovementSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	for item := range s.Entities.Iter() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type HealthSystem struct {
	Entities ecs.Query[struct {
		*Health
	}]
	ExecuteCount int
	TotalHealth  float64
}

func (s *HealthSystem) Execute(frame *ecs.UpdateFrame) {
	s.ExecuteCount++
	s.TotalHealth = 0
	for item := range s.Entities.Iter() {
		s.TotalHealth += float64(item.Health.Current)
	}
}

type counterSingletonSystem struct {
	Counter ecs.Singleton[Score]
}

func (s *counterSingletonSystem) Execute(frame *ecs.UpdateFrame) {
	*s.Counter.Get() += 1
}

func TestScheduler(t *testing.T) {
	registry := newTestRegistry()

	t.Run("system execution and query initialization", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		health := &HealthSystem{}

		scheduler.Register(movement)
		scheduler.Register(health)

		storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 1, DY: 2})
		storage.Spawn(Health{Current: 100, Max: 100})

		scheduler.Once(1.0)
		assert.Equal(t, 1, movement.ExecuteCount)
		assert.Equal(t, 1, health.ExecuteCount)

		scheduler.Once(1.0)
		assert.Equal(t, 2, movement.ExecuteCount)
		assert.Equal(t, 2, health.ExecuteCount)
		assert.Equal(t, 100.0, health.TotalHealth)
	})

	t.Run("queries see entities spawned by earlier frames", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		scheduler.Register(movement)

		id := storage.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 2, DY: 4})
		scheduler.Once(0.5)

		pos := ecs.ReadComponent[Position](storage, id)
		assert.Equal(t, float32(1), pos.X)
		assert.Equal(t, float32(2), pos.Y)
	})

	t.Run("singleton fields are bound", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		ecs.NewSingleton[Score](storage, 10)

		scheduler := ecs.NewScheduler(storage)
		scheduler.Register(&counterSingletonSystem{})
		scheduler.Once(0.1)
		scheduler.Once(0.1)

		var score *Score
		require.True(t, storage.ReadSingleton(&score))
		assert.Equal(t, Score(12), *score)
	})

	t.Run("run stops on cancel", func(t *testing.T) {
		storage := ecs.NewStorage(registry)
		scheduler := ecs.NewScheduler(storage)

		movement := &MovementSystem{}
		scheduler.Register(movement)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		scheduler.Run(ctx, 5*time.Millisecond)

		assert.Greater(t, movement.ExecuteCount, 0)
		assert.Equal(t, int64(movement.ExecuteCount), scheduler.GetStats().Frames)
	})
}
