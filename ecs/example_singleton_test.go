package ecs_test

import (
	"fmt"
	"time"

	"github.com/plus3/towerdefense/ecs"
)

// Rules is the kind of tuning data a game keeps outside any entity.
type Rules struct {
	FireInterval time.Duration
	CreepHealth  int
}

type Wave struct {
	Number int
}

// ExampleNewSingleton creates a singleton from an initializer. Later calls
// without one return the existing value instead of resetting it.
func ExampleNewSingleton() {
	storage := newDefenseStorage()

	rules := ecs.NewSingleton[Rules](storage, Rules{FireInterval: time.Second, CreepHealth: 3})
	fmt.Printf("fire every %s, creeps have %d hp\n", rules.Get().FireInterval, rules.Get().CreepHealth)

	rules.Get().FireInterval = 500 * time.Millisecond

	again := ecs.NewSingleton[Rules](storage, Rules{FireInterval: time.Hour})
	fmt.Printf("fire every %s\n", again.Get().FireInterval)

	// Output:
	// fire every 1s, creeps have 3 hp
	// fire every 500ms
}

// ExampleSingleton_Set shows that every accessor for a type shares one value,
// and that Set replaces it for all of them.
func ExampleSingleton_Set() {
	storage := newDefenseStorage()

	kills := ecs.NewSingleton[Kills](storage)
	hud := ecs.NewSingleton[Kills](storage)

	kills.Get().Count += 2
	fmt.Printf("hud sees %d kills\n", hud.Get().Count)

	hud.Set(Kills{})
	fmt.Printf("after reset: %d kills\n", kills.Get().Count)

	// Output:
	// hud sees 2 kills
	// after reset: 0 kills
}

// ExampleStorage_ReadSingleton reads singletons outside of a system.
func ExampleStorage_ReadSingleton() {
	storage := newDefenseStorage()
	ecs.NewSingleton[Rules](storage, Rules{FireInterval: 2 * time.Second, CreepHealth: 5})

	var rules *Rules
	if storage.ReadSingleton(&rules) {
		fmt.Printf("creeps have %d hp\n", rules.CreepHealth)
	}

	var wave *Wave
	if storage.ReadSingleton(&wave) {
		fmt.Println("wave", wave.Number)
	} else {
		fmt.Println("no wave started")
	}

	// Output:
	// creeps have 5 hp
	// no wave started
}
