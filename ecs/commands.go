package ecs

import "reflect"

// Commands provides a buffer for deferred ECS operations that are executed at the end of a frame.
// This prevents structural changes to the ECS storage during system execution.
type Commands struct {
	spawns  []spawnCommand
	deletes []deleteCommand
	adds    []addComponentCommand
	removes []removeComponentCommand
	defers  []deferCommand
}

func newCommands() *Commands {
	return &Commands{}
}

type deferCommand struct {
	fn func()
}

type spawnCommand struct {
	parent     EntityId
	components []any
	onSpawn    func(EntityId)
}

type deleteCommand struct {
	entity    EntityId
	recursive bool
}

type addComponentCommand struct {
	entity    EntityId
	component any
}

type removeComponentCommand struct {
	entity   EntityId
	compType reflect.Type
}

// Defer queues a function to run after every other queued operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Spawn queues an entity spawn operation with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// SpawnThen queues a spawn and calls onSpawn with the new id once it exists.
func (c *Commands) SpawnThen(onSpawn func(EntityId), components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components, onSpawn: onSpawn})
}

// SpawnChild queues a spawn whose entity is attached to parent. The spawn is dropped
// if parent no longer exists when the buffer is flushed.
func (c *Commands) SpawnChild(parent EntityId, components ...any) {
	c.spawns = append(c.spawns, spawnCommand{parent: parent, components: components})
}

// Delete queues an entity deletion operation.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, deleteCommand{entity: entity})
}

// DeleteRecursive queues deletion of an entity together with all of its descendants.
func (c *Commands) DeleteRecursive(entity EntityId) {
	c.deletes = append(c.deletes, deleteCommand{entity: entity, recursive: true})
}

// AddComponent queues a component addition operation.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.adds = append(c.adds, addComponentCommand{
		entity:    entity,
		component: component,
	})
}

// RemoveComponent queues a component removal operation.
func (c *Commands) RemoveComponent(entity EntityId, compType reflect.Type) {
	c.removes = append(c.removes, removeComponentCommand{
		entity:   entity,
		compType: compType,
	})
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.deletes) + len(c.adds) + len(c.removes) + len(c.defers)
}

// Flush applies all commands to the provided storage, resetting the buffer state.
// Order: deletes, removes, adds, spawns, defers. Operations on entities that are
// gone by the time they apply are skipped.
func (c *Commands) Flush(storage *Storage) {
	for _, cmd := range c.deletes {
		if cmd.recursive {
			storage.DeleteRecursive(cmd.entity)
		} else {
			storage.Delete(cmd.entity)
		}
	}

	for _, cmd := range c.removes {
		storage.RemoveComponent(cmd.entity, cmd.compType)
	}

	for _, cmd := range c.adds {
		storage.AddComponent(cmd.entity, cmd.component)
	}

	for _, cmd := range c.spawns {
		if cmd.parent != 0 && !storage.IsAlive(cmd.parent) {
			continue
		}
		id := storage.Spawn(cmd.components...)
		if cmd.parent != 0 {
			storage.SetParent(id, cmd.parent)
		}
		if cmd.onSpawn != nil {
			cmd.onSpawn(id)
		}
	}

	for _, df := range c.defers {
		df.fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
