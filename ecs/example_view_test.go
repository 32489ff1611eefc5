package ecs_test

import (
	"fmt"

	"github.com/plus3/towerdefense/ecs"
)

// ExampleView looks up a single tower through a view. Views need no scheduler,
// which makes them the tool for setup code, tests and inspectors.
func ExampleView() {
	storage := newDefenseStorage()
	tower := storage.Spawn(newTower(2, 3, 1.5)...)
	creep := storage.Spawn(Position{X: -4}, Creep{Speed: 0.3})

	towers := ecs.NewView[struct {
		*Tower
		*Position
	}](storage)

	if t := towers.Get(tower); t != nil {
		fmt.Printf("tower at (%.0f, %.0f) fires every %s\n", t.Position.X, t.Position.Y, t.Cooldown.Duration)
	}
	fmt.Printf("creep matches: %v\n", towers.Get(creep) != nil)

	// Output:
	// tower at (2, 3) fires every 1.5s
	// creep matches: false
}

// ExampleView_Iter walks every creep in slot order. The EntityId field
// receives the id of each match.
func ExampleView_Iter() {
	storage := newDefenseStorage()
	storage.Spawn(Position{X: -4}, Creep{Speed: 0.5})
	storage.Spawn(newTower(0, 0, 1)...)
	storage.Spawn(Position{X: -2}, Creep{Speed: 1})

	creeps := ecs.NewView[struct {
		Id ecs.EntityId
		*Creep
		*Position
	}](storage)

	for c := range creeps.Iter() {
		c.Position.X += c.Speed
		fmt.Printf("creep in slot %d now at x=%.1f\n", c.Id.Index(), c.Position.X)
	}

	// Output:
	// creep in slot 0 now at x=-3.5
	// creep in slot 2 now at x=-1.0
}

// ExampleView_optional matches creeps whether or not they carry Health.
// A missing optional component comes back as a nil pointer.
func ExampleView_optional() {
	storage := newDefenseStorage()
	storage.Spawn(Position{X: -4}, Creep{Speed: 0.3}, Health{Current: 3, Max: 3})
	storage.Spawn(Position{X: -2}, Creep{Speed: 0.3}, Health{Current: 1, Max: 3})
	storage.Spawn(Position{X: 0}, Creep{Speed: 0.6})

	creeps := ecs.NewView[struct {
		Creep    *Creep
		Position *Position
		Health   *Health `ecs:"optional"`
	}](storage)

	for c := range creeps.Iter() {
		if c.Health == nil {
			fmt.Printf("creep at x=%.0f cannot be hurt\n", c.Position.X)
			continue
		}
		fmt.Printf("creep at x=%.0f has %d/%d hp\n", c.Position.X, c.Health.Current, c.Health.Max)
	}

	// Output:
	// creep at x=-4 has 3/3 hp
	// creep at x=-2 has 1/3 hp
	// creep at x=0 cannot be hurt
}

// ExampleView_Spawn builds an entity from a view struct. Nil optional fields
// are left off the new entity.
func ExampleView_Spawn() {
	storage := newDefenseStorage()

	creeps := ecs.NewView[struct {
		Creep    *Creep
		Position *Position
		Health   *Health `ecs:"optional"`
	}](storage)

	armored := creeps.Spawn(struct {
		Creep    *Creep
		Position *Position
		Health   *Health `ecs:"optional"`
	}{
		Creep:    &Creep{Speed: 0.2},
		Position: &Position{X: -4, Y: 2.5},
		Health:   &Health{Current: 5, Max: 5},
	})
	ghost := creeps.Spawn(struct {
		Creep    *Creep
		Position *Position
		Health   *Health `ecs:"optional"`
	}{
		Creep:    &Creep{Speed: 1},
		Position: &Position{X: -4},
	})

	fmt.Printf("armored has health: %v\n", storage.HasComponent(armored, typeOf[Health]()))
	fmt.Printf("ghost has health: %v\n", storage.HasComponent(ghost, typeOf[Health]()))
	fmt.Printf("creeps: %d\n", creeps.Count())

	// Output:
	// armored has health: true
	// ghost has health: false
	// creeps: 2
}
