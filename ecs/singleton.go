package ecs

import (
	"reflect"
	"unsafe"
)

// Singleton provides access to a single component instance that is not attached
// to any entity: game settings, input state, per-frame event buffers.
type Singleton[T any] struct {
	storage       *Storage
	componentPtr  unsafe.Pointer
	componentType reflect.Type
}

// NewSingleton creates a Singleton accessor for storage. If the singleton does not
// exist yet it is created from initializer (or the zero value), so it always exists
// after the call.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	componentType := reflect.TypeFor[T]()

	if storage.getSingletonEntry(componentType) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}

	s := &Singleton[T]{}
	s.Init(storage)
	return s
}

// Init initializes the Singleton with a storage reference.
// This is called automatically by the Scheduler during system registration.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.componentType = reflect.TypeFor[T]()
	s.updateCache()
}

// Get returns a pointer to the singleton component, or nil if it was never added.
func (s *Singleton[T]) Get() *T {
	if s.componentPtr == nil {
		s.updateCache()
	}
	if s.componentPtr == nil {
		return nil
	}
	return (*T)(s.componentPtr)
}

// Set replaces the singleton value, creating it if needed.
func (s *Singleton[T]) Set(value T) {
	s.storage.AddSingleton(value)
	s.updateCache()
}

// Exists returns true if the singleton component has been added to storage
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) updateCache() {
	if s.storage == nil {
		return
	}
	if entry := s.storage.getSingletonEntry(s.componentType); entry != nil {
		s.componentPtr = entry.dataPtr
	} else {
		s.componentPtr = nil
	}
}
