package game_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/towerdefense/ecs"
	"github.com/plus3/towerdefense/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawnPlaceholders(w *game.World) []ecs.EntityId {
	ids := make([]ecs.EntityId, len(game.PlaceholderPositions))
	for i, p := range game.PlaceholderPositions {
		ids[i] = w.Storage.Spawn(game.PlaceholderBundle(p)...)
	}
	return ids
}

func selected(w *game.World, id ecs.EntityId) bool {
	s := ecs.ReadComponent[game.Selectable](w.Storage, id)
	return s != nil && s.Selected
}

func towerPositions(w *game.World) []mgl64.Vec3 {
	var out []mgl64.Vec3
	for v := range ecs.NewView[struct {
		*game.Tower
		*game.Transform
	}](w.Storage).Iter() {
		out = append(out, v.Translation)
	}
	return out
}

func TestCycleSelection(t *testing.T) {
	w := newWorld()
	ids := spawnPlaceholders(w)

	for round := range 2 {
		for i := range ids {
			w.Input.Get().Press(game.ActionCycleSelection)
			w.Step(0.016)

			for j, id := range ids {
				assert.Equal(t, i == j, selected(w, id), "round %d press %d placeholder %d", round, i, j)
			}
		}
	}
}

func TestPickTogglesSelection(t *testing.T) {
	w := newWorld()
	ids := spawnPlaceholders(w)

	w.Input.Get().Picked = ids[1]
	w.Step(0.016)
	assert.True(t, selected(w, ids[1]))
	assert.True(t, w.Events.Get().SelectionChange)

	w.Input.Get().Picked = ids[2]
	w.Step(0.016)
	assert.True(t, selected(w, ids[1]), "picking adds to the selection")
	assert.True(t, selected(w, ids[2]))

	w.Input.Get().Picked = ids[1]
	w.Step(0.016)
	assert.False(t, selected(w, ids[1]))
	assert.True(t, selected(w, ids[2]))
}

func TestPickIgnoresOtherEntities(t *testing.T) {
	w := newWorld()
	ids := spawnPlaceholders(w)
	tower := spawnTower(w, mgl64.Vec3{})

	w.Input.Get().Picked = tower
	w.Step(0.016)

	for _, id := range ids {
		assert.False(t, selected(w, id))
	}
	assert.False(t, w.Events.Get().SelectionChange)
}

func TestBuildReplacesSelectedPlaceholders(t *testing.T) {
	w := newWorld()
	ids := spawnPlaceholders(w)

	ecs.ReadComponent[game.Selectable](w.Storage, ids[0]).Selected = true
	ecs.ReadComponent[game.Selectable](w.Storage, ids[2]).Selected = true
	w.Input.Get().Press(game.ActionBuild)

	w.Step(0.016)

	assert.False(t, w.Storage.IsAlive(ids[0]))
	assert.True(t, w.Storage.IsAlive(ids[1]))
	assert.False(t, w.Storage.IsAlive(ids[2]))

	assert.ElementsMatch(t,
		[]mgl64.Vec3{game.PlaceholderPositions[0], game.PlaceholderPositions[2]},
		towerPositions(w))
	assert.Equal(t, 2, w.Stats.Get().TowersBuilt)
}

func TestBuiltTowerHasFreshTimer(t *testing.T) {
	w := newWorld()
	ids := spawnPlaceholders(w)
	ecs.ReadComponent[game.Selectable](w.Storage, ids[0]).Selected = true
	w.Input.Get().Press(game.ActionBuild)
	w.Step(0.016)

	for v := range ecs.NewView[struct{ *game.Tower }](w.Storage).Iter() {
		assert.Equal(t, w.Settings.Get().FireInterval, v.ShootingTimer.Duration)
		assert.Zero(t, v.ShootingTimer.Elapsed)
		assert.Equal(t, mgl64.Vec3{}, v.BulletOffset)
	}
}

func TestBuildWithoutSelectionDoesNothing(t *testing.T) {
	w := newWorld()
	ids := spawnPlaceholders(w)
	w.Input.Get().Press(game.ActionBuild)

	w.Step(0.016)

	for _, id := range ids {
		assert.True(t, w.Storage.IsAlive(id))
	}
	assert.Empty(t, towerPositions(w))
}

func TestBuildUsesGlobalPosition(t *testing.T) {
	w := newWorld()
	parent := w.Storage.Spawn(game.Name("Pad"), game.NewTransform(10, 0, 0), game.GlobalFromTransform(game.NewTransform(10, 0, 0)))
	p := w.Storage.Spawn(game.PlaceholderBundle(mgl64.Vec3{1, 0.15, 0})...)
	require.True(t, w.Storage.SetParent(p, parent))

	// Let propagation place the placeholder under its parent first
	w.Step(0.016)

	ecs.ReadComponent[game.Selectable](w.Storage, p).Selected = true
	w.Input.Get().Press(game.ActionBuild)
	w.Step(0.016)

	positions := towerPositions(w)
	require.Len(t, positions, 1)
	assert.True(t, positions[0].ApproxEqual(mgl64.Vec3{11, 0.15, 0}))
}

func TestIsPlaceholder(t *testing.T) {
	w := newWorld()
	ids := spawnPlaceholders(w)
	tower := spawnTower(w, mgl64.Vec3{})

	assert.True(t, game.IsPlaceholder(w.Storage, ids[0]))
	assert.False(t, game.IsPlaceholder(w.Storage, tower))
}
