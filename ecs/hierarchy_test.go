package ecs_test

import (
	"testing"

	"github.com/plus3/towerdefense/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetParent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	parent := storage.Spawn(Position{})
	child := storage.Spawn(Position{})

	require.True(t, storage.SetParent(child, parent))

	p, ok := storage.Parent(child)
	assert.True(t, ok)
	assert.Equal(t, parent, p)
	assert.Equal(t, []ecs.EntityId{child}, storage.Children(parent))

	_, ok = storage.Parent(parent)
	assert.False(t, ok)
}

func TestSetParentRejectsCyclesAndDeadEntities(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{})
	b := storage.Spawn(Position{})
	c := storage.Spawn(Position{})
	require.True(t, storage.SetParent(b, a))
	require.True(t, storage.SetParent(c, b))

	assert.False(t, storage.SetParent(a, c))
	assert.False(t, storage.SetParent(a, a))

	dead := storage.Spawn(Position{})
	storage.Delete(dead)
	assert.False(t, storage.SetParent(dead, a))
	assert.False(t, storage.SetParent(a, dead))
}

func TestReparentMovesChild(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	first := storage.Spawn(Position{})
	second := storage.Spawn(Position{})
	child := storage.Spawn(Position{})

	storage.SetParent(child, first)
	storage.SetParent(child, second)

	assert.Empty(t, storage.Children(first))
	assert.Equal(t, []ecs.EntityId{child}, storage.Children(second))

	storage.RemoveParent(child)
	_, ok := storage.Parent(child)
	assert.False(t, ok)
	assert.Empty(t, storage.Children(second))
}

func TestDescendantsPreOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	root := storage.Spawn(Position{})
	a := storage.Spawn(Position{})
	b := storage.Spawn(Position{})
	a1 := storage.Spawn(Position{})
	a2 := storage.Spawn(Position{})
	a1x := storage.Spawn(Position{})
	b1 := storage.Spawn(Position{})
	storage.SetParent(a, root)
	storage.SetParent(b, root)
	storage.SetParent(a1, a)
	storage.SetParent(a2, a)
	storage.SetParent(a1x, a1)
	storage.SetParent(b1, b)

	assert.Equal(t, []ecs.EntityId{a, a1, a1x, a2, b, b1}, storage.Descendants(root))
	assert.Equal(t, []ecs.EntityId{a1, a1x, a2}, storage.Descendants(a))
	assert.Empty(t, storage.Descendants(b1))
}

func TestDeleteOrphansChildren(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	parent := storage.Spawn(Position{})
	child := storage.Spawn(Position{})
	storage.SetParent(child, parent)

	storage.Delete(parent)

	assert.True(t, storage.IsAlive(child))
	_, ok := storage.Parent(child)
	assert.False(t, ok)
}

func TestDeleteRecursive(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	root := storage.Spawn(Position{})
	child := storage.Spawn(Position{})
	grandchild := storage.Spawn(Position{})
	bystander := storage.Spawn(Position{})
	storage.SetParent(child, root)
	storage.SetParent(grandchild, child)

	storage.DeleteRecursive(root)

	assert.False(t, storage.IsAlive(root))
	assert.False(t, storage.IsAlive(child))
	assert.False(t, storage.IsAlive(grandchild))
	assert.True(t, storage.IsAlive(bystander))
	assert.Equal(t, 1, storage.Count())
}

func TestDeleteChildDetachesFromParent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	parent := storage.Spawn(Position{})
	child := storage.Spawn(Position{})
	storage.SetParent(child, parent)

	storage.Delete(child)
	assert.Empty(t, storage.Children(parent))
}
