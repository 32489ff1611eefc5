package ecs_test

import (
	"fmt"
	"reflect"

	"github.com/plus3/towerdefense/ecs"
)

// ExampleStorage demonstrates the basic API for managing entities and components.
// Storage is the core container for all entities and their component data.
// Every component type lives in its own pool indexed by the entity's slot, so an
// entity's id never changes while it is alive.
func ExampleStorage() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Health](registry)
	storage := ecs.NewStorage(registry)

	player := storage.Spawn(
		Position{X: 10, Y: 20},
		Velocity{DX: 1, DY: 0},
		Health{Current: 100, Max: 100},
	)

	pos := ecs.ReadComponent[Position](storage, player)
	fmt.Printf("Player spawned at (%.0f, %.0f)\n", pos.X, pos.Y)

	pos.X = 15
	pos.Y = 25
	fmt.Printf("Player moved to (%.0f, %.0f)\n", pos.X, pos.Y)

	storage.Delete(player)
	fmt.Printf("Player alive: %v\n", storage.IsAlive(player))

	// Output:
	// Player spawned at (10, 20)
	// Player moved to (15, 25)
	// Player alive: false
}

// ExampleStorage_addRemoveComponents shows that adding and removing components
// keeps the same entity id.
func ExampleStorage_addRemoveComponents() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Health](registry)
	storage := ecs.NewStorage(registry)

	entity := storage.Spawn(Position{X: 0, Y: 0})

	hasVel := storage.HasComponent(entity, reflect.TypeOf(Velocity{}))
	fmt.Printf("Has velocity: %v\n", hasVel)

	storage.AddComponent(entity, Velocity{DX: 5, DY: 3})
	vel := ecs.ReadComponent[Velocity](storage, entity)
	fmt.Printf("Has velocity: %v (%.0f, %.0f)\n", vel != nil, vel.DX, vel.DY)

	storage.AddComponent(entity, Health{Current: 50, Max: 50})
	health := ecs.ReadComponent[Health](storage, entity)
	fmt.Printf("Has health: %v (%d/%d)\n", health != nil, health.Current, health.Max)

	storage.RemoveComponent(entity, reflect.TypeOf(Velocity{}))
	hasVel = storage.HasComponent(entity, reflect.TypeOf(Velocity{}))
	fmt.Printf("Has velocity: %v\n", hasVel)

	// Output:
	// Has velocity: false
	// Has velocity: true (5, 3)
	// Has health: true (50/50)
	// Has velocity: false
}

// ExampleStorage_generations shows that a deleted entity's slot is reused with a
// new generation, so old handles stop resolving.
func ExampleStorage_generations() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	storage := ecs.NewStorage(registry)

	first := storage.Spawn(Position{X: 1})
	storage.Delete(first)
	second := storage.Spawn(Position{X: 2})

	fmt.Printf("same slot: %v\n", first.Index() == second.Index())
	fmt.Printf("generations: %d -> %d\n", first.Generation(), second.Generation())
	fmt.Printf("old handle resolves: %v\n", ecs.ReadComponent[Position](storage, first) != nil)

	// Output:
	// same slot: true
	// generations: 1 -> 2
	// old handle resolves: false
}

// ExampleStorage_SetParent demonstrates parent/child links and recursive deletion.
func ExampleStorage_SetParent() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	storage := ecs.NewStorage(registry)

	tower := storage.Spawn(Position{X: 0})
	bullet := storage.Spawn(Position{X: 1})
	storage.SetParent(bullet, tower)

	fmt.Printf("children: %d\n", len(storage.Children(tower)))

	storage.DeleteRecursive(tower)
	fmt.Printf("bullet alive: %v\n", storage.IsAlive(bullet))

	// Output:
	// children: 1
	// bullet alive: false
}
