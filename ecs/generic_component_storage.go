package ecs

import (
	"iter"
	"reflect"
	"sort"
)

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own pools, but storages may share a registry.
type ComponentRegistry struct {
	factories map[reflect.Type]func() iComponentStorage
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() iComponentStorage),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be used.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	r.factories[t] = func() iComponentStorage {
		return &genericComponentStorage[T]{}
	}
}

// IsRegistered reports whether t has been registered.
func (r *ComponentRegistry) IsRegistered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

// getFactory returns the factory function for a given component type.
// Returns nil if the type is not registered.
func (r *ComponentRegistry) getFactory(t reflect.Type) func() iComponentStorage {
	return r.factories[t]
}

const (
	genericBlockSize = 64
)

// genericComponentStorage stores components of type T in fixed-size blocks indexed
// by entity slot. Blocks are heap allocated individually so pointers handed out by
// Get survive pool growth.
type genericComponentStorage[T any] struct {
	blocks []*[genericBlockSize]T
	filled []*[genericBlockSize]bool
	count  int
}

// Set stores a component at the given slot, growing the pool as needed.
// Returns false if item is not a T or *T.
func (cs *genericComponentStorage[T]) Set(index int, item any) bool {
	if index < 0 {
		return false
	}

	var concreteItem T
	if ptr, ok := item.(*T); ok {
		concreteItem = *ptr
	} else if val, ok := item.(T); ok {
		concreteItem = val
	} else {
		return false
	}

	blockIdx := index / genericBlockSize
	slotIdx := index % genericBlockSize

	for blockIdx >= len(cs.blocks) {
		cs.blocks = append(cs.blocks, new([genericBlockSize]T))
		cs.filled = append(cs.filled, new([genericBlockSize]bool))
	}

	if !cs.filled[blockIdx][slotIdx] {
		cs.count++
	}
	cs.blocks[blockIdx][slotIdx] = concreteItem
	cs.filled[blockIdx][slotIdx] = true
	return true
}

// Get returns a pointer to the component at the given index.
func (cs *genericComponentStorage[T]) Get(index int) any {
	if !cs.Has(index) {
		return nil
	}
	return &cs.blocks[index/genericBlockSize][index%genericBlockSize]
}

// Delete marks a component slot as empty.
func (cs *genericComponentStorage[T]) Delete(index int) {
	if !cs.Has(index) {
		return
	}

	blockIdx := index / genericBlockSize
	slotIdx := index % genericBlockSize

	cs.filled[blockIdx][slotIdx] = false
	var zero T
	cs.blocks[blockIdx][slotIdx] = zero
	cs.count--
}

// Has checks if a component exists at the given index.
func (cs *genericComponentStorage[T]) Has(index int) bool {
	if index < 0 {
		return false
	}

	blockIdx := index / genericBlockSize
	if blockIdx >= len(cs.blocks) {
		return false
	}

	return cs.filled[blockIdx][index%genericBlockSize]
}

// Len returns the number of stored components.
func (cs *genericComponentStorage[T]) Len() int {
	return cs.count
}

// Iter yields occupied slot indices in ascending order.
func (cs *genericComponentStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for blockIdx, filled := range cs.filled {
			for slotIdx, ok := range filled {
				if !ok {
					continue
				}
				if !yield(blockIdx*genericBlockSize + slotIdx) {
					return
				}
			}
		}
	}
}

// Types returns every registered component type sorted by name.
func (r *ComponentRegistry) Types() []reflect.Type {
	types := make([]reflect.Type, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	sort.Sort(byTypeName(types))
	return types
}
