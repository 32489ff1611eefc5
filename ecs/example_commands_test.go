package ecs_test

import (
	"fmt"

	"github.com/plus3/towerdefense/ecs"
)

type Kills struct {
	Count int
}

// DespawnSystem queues every creep that ran out of health for deletion.
type DespawnSystem struct {
	Creeps ecs.Query[struct {
		Id ecs.EntityId
		*Creep
		*Health
	}]
	Kills ecs.Singleton[Kills]
}

func (s *DespawnSystem) Execute(frame *ecs.UpdateFrame) {
	for c := range s.Creeps.Iter() {
		if c.Health.Current > 0 {
			continue
		}
		frame.Commands.Delete(c.Id)
		if kills := s.Kills.Get(); kills != nil {
			kills.Count++
		}
	}
}

// ExampleCommands shows that queued deletions wait for the end of the tick.
// A system iterating its snapshot can delete freely, and later systems in the
// same tick still see the entity.
func ExampleCommands() {
	storage := newDefenseStorage()

	dead := storage.Spawn(Position{X: 0}, Creep{Speed: 1}, Health{Current: 0, Max: 3})
	storage.Spawn(Position{X: 5}, Creep{Speed: 1}, Health{Current: 3, Max: 3})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&DespawnSystem{})
	scheduler.Register(ecs.SystemFunc(func(frame *ecs.UpdateFrame) {
		fmt.Printf("queued: %d, dead creep alive during tick: %v\n",
			frame.Commands.Len(), frame.Storage.IsAlive(dead))
	}))

	scheduler.Once(0.1)

	fmt.Printf("dead creep alive after tick: %v\n", storage.IsAlive(dead))
	fmt.Printf("creeps left: %d\n", ecs.NewView[struct{ *Creep }](storage).Count())

	// Output:
	// queued: 1, dead creep alive during tick: true
	// dead creep alive after tick: false
	// creeps left: 1
}

// DemolishSystem tears down every tower together with the bullets it owns.
type DemolishSystem struct {
	Towers ecs.Query[struct {
		Id ecs.EntityId
		*Tower
	}]
}

func (s *DemolishSystem) Execute(frame *ecs.UpdateFrame) {
	for t := range s.Towers.Iter() {
		frame.Commands.DeleteRecursive(t.Id)
	}
}

// ExampleCommands_spawning fires a bullet with SpawnChild so it is linked to
// its tower, then removes the tower with DeleteRecursive, which takes the
// bullet with it.
func ExampleCommands_spawning() {
	storage := newDefenseStorage()
	tower := storage.Spawn(newTower(3, 4, 1)...)

	combat := ecs.NewScheduler(storage)
	combat.Register(&TowerCooldownSystem{})
	combat.Once(1.0)

	children := storage.Children(tower)
	fmt.Printf("bullets owned by tower: %d\n", len(children))
	bullet := children[0]
	parent, _ := storage.Parent(bullet)
	pos := ecs.ReadComponent[Position](storage, bullet)
	fmt.Printf("bullet at (%.0f, %.0f), parent is tower: %v\n", pos.X, pos.Y, parent == tower)

	demolish := ecs.NewScheduler(storage)
	demolish.Register(&DemolishSystem{})
	demolish.Once(0)

	fmt.Printf("tower alive: %v, bullet alive: %v\n", storage.IsAlive(tower), storage.IsAlive(bullet))

	// Output:
	// bullets owned by tower: 1
	// bullet at (3, 4), parent is tower: true
	// tower alive: false, bullet alive: false
}
