package ecs_test

import "github.com/plus3/towerdefense/ecs"

// Components shared by the examples: a tiny 2D tower defense.

type Tower struct {
	Cooldown ecs.Timer
}

type Bullet struct {
	DX, DY float32
}

type Lifetime struct {
	Timer ecs.Timer
}

type Creep struct {
	Speed float32
}

func newDefenseStorage() *ecs.Storage {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Health](registry)
	ecs.RegisterComponent[Tower](registry)
	ecs.RegisterComponent[Bullet](registry)
	ecs.RegisterComponent[Lifetime](registry)
	ecs.RegisterComponent[Creep](registry)
	return ecs.NewStorage(registry)
}

func newTower(x, y float32, seconds float64) []any {
	return []any{
		Position{X: x, Y: y},
		Tower{Cooldown: ecs.TimerFromSeconds(seconds, ecs.TimerRepeating)},
	}
}
