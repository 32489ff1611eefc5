package ecs

import (
	"iter"
)

// Query wraps a View with a per-frame snapshot of the matching entities.
// The Scheduler calls Execute right before the owning system runs, so a system
// iterates a stable list even while it queues spawns and deletes.
type Query[T any] struct {
	view    *View[T]
	storage *Storage

	cachedEntities   []EntityId
	cachedComponents []T
	cacheValid       bool
}

// NewQuery creates a new Query over storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init initializes or re-initializes the Query with a storage.
// Called by the Scheduler during system registration.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.cacheValid = false
}

// Execute rebuilds the entity and component snapshot.
func (q *Query[T]) Execute() {
	q.cachedEntities = q.cachedEntities[:0]
	q.cachedComponents = q.cachedComponents[:0]

	for id, item := range q.view.Entries() {
		q.cachedEntities = append(q.cachedEntities, id)
		q.cachedComponents = append(q.cachedComponents, item)
	}

	q.cacheValid = true
}

// Entries returns an iterator over entity IDs and component data.
// Panics if Execute() has not been called.
func (q *Query[T]) Entries() iter.Seq2[EntityId, T] {
	if !q.cacheValid {
		panic("Query.Entries() called before Query.Execute()")
	}

	return func(yield func(EntityId, T) bool) {
		for i := range q.cachedEntities {
			if !yield(q.cachedEntities[i], q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Iter returns an iterator over component data only.
// Panics if Execute() has not been called.
func (q *Query[T]) Iter() iter.Seq[T] {
	if !q.cacheValid {
		panic("Query.Iter() called before Query.Execute()")
	}

	return func(yield func(T) bool) {
		for i := range q.cachedComponents {
			if !yield(q.cachedComponents[i]) {
				return
			}
		}
	}
}

// Len returns the size of the current snapshot.
func (q *Query[T]) Len() int {
	return len(q.cachedEntities)
}

// Get looks up a single entity through the underlying view, bypassing the snapshot.
func (q *Query[T]) Get(id EntityId) *T {
	return q.view.Get(id)
}
