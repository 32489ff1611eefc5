package ecs_test

import (
	"testing"

	"github.com/plus3/towerdefense/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{X: 1}, Velocity{DX: 1})
	storage.Spawn(Position{X: 2})

	query := ecs.NewQuery[struct {
		*Position
		*Velocity
	}](storage)

	t.Run("iterating before execute panics", func(t *testing.T) {
		assert.Panics(t, func() { query.Iter() })
		assert.Panics(t, func() { query.Entries() })
	})

	t.Run("execute snapshots matching entities", func(t *testing.T) {
		query.Execute()
		assert.Equal(t, 1, query.Len())

		for item := range query.Iter() {
			assert.Equal(t, float32(1), item.Position.X)
		}
	})

	t.Run("snapshot is stable until the next execute", func(t *testing.T) {
		query.Execute()
		storage.Spawn(Position{X: 3}, Velocity{DX: 1})
		assert.Equal(t, 1, query.Len())

		query.Execute()
		assert.Equal(t, 2, query.Len())
	})

	t.Run("entries carry ids", func(t *testing.T) {
		query.Execute()
		for id, item := range query.Entries() {
			got := query.Get(id)
			require.NotNil(t, got)
			assert.Equal(t, item.Position, got.Position)
		}
	})
}
