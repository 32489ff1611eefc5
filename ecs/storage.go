package ecs

import (
	"iter"
	"reflect"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage is the main ECS storage: an arena of entity slots plus one component pool per type.
// Entity ids are stable for the lifetime of the entity; adding or removing components never
// moves an entity.
type Storage struct {
	registry   *ComponentRegistry
	entities   entityArena
	pools      map[reflect.Type]iComponentStorage
	singletons map[reflect.Type]*singletonEntry

	parents  *intmap.Map[EntityId, EntityId]
	children *intmap.Map[EntityId, []EntityId]
}

type singletonEntry struct {
	value   reflect.Value
	dataPtr unsafe.Pointer
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		pools:      make(map[reflect.Type]iComponentStorage),
		singletons: make(map[reflect.Type]*singletonEntry),
		parents:    intmap.New[EntityId, EntityId](64),
		children:   intmap.New[EntityId, []EntityId](64),
	}
}

// Registry returns the component registry backing this storage.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// pool returns the pool for t, creating it on first use. Panics for unregistered types.
func (s *Storage) pool(t reflect.Type) iComponentStorage {
	if p, ok := s.pools[t]; ok {
		return p
	}
	factory := s.registry.getFactory(t)
	if factory == nil {
		panic("component type " + t.String() + " not registered")
	}
	p := factory()
	s.pools[t] = p
	return p
}

// existingPool returns the pool for t without creating it.
func (s *Storage) existingPool(t reflect.Type) (iComponentStorage, bool) {
	p, ok := s.pools[t]
	return p, ok
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := extractComponentTypes(components)
	pools := make([]iComponentStorage, len(types))
	for i, t := range types {
		pools[i] = s.pool(t)
	}

	id := s.entities.allocate()
	index := int(id.Index())
	for i, comp := range components {
		pools[i].Set(index, comp)
	}
	return id
}

// IsAlive reports whether id refers to a live entity.
func (s *Storage) IsAlive(id EntityId) bool {
	return s.entities.isAlive(id)
}

// Count returns the number of live entities.
func (s *Storage) Count() int {
	return s.entities.count
}

// Delete removes all data related to the entity ID. Children of the entity are kept
// and become roots. Deleting a dead or stale id is a no-op.
func (s *Storage) Delete(id EntityId) {
	if !s.entities.isAlive(id) {
		return
	}

	index := int(id.Index())
	for _, p := range s.pools {
		p.Delete(index)
	}

	s.detach(id)
	if kids, ok := s.children.Get(id); ok {
		for _, child := range kids {
			s.parents.Del(child)
		}
		s.children.Del(id)
	}

	s.entities.release(id)
}

// DeleteRecursive removes the entity and all of its descendants.
func (s *Storage) DeleteRecursive(id EntityId) {
	if !s.entities.isAlive(id) {
		return
	}
	for _, descendant := range s.Descendants(id) {
		s.Delete(descendant)
	}
	s.Delete(id)
}

// AddComponent attaches (or replaces) a component on a live entity.
func (s *Storage) AddComponent(id EntityId, component any) bool {
	if !s.entities.isAlive(id) {
		return false
	}
	return s.pool(componentTypeOf(component)).Set(int(id.Index()), component)
}

// RemoveComponent detaches a component. The entity stays alive even with no components left.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) {
	if !s.entities.isAlive(id) {
		return
	}
	if p, ok := s.existingPool(compType); ok {
		p.Delete(int(id.Index()))
	}
}

// GetComponent returns the component for the given entity ID and component type
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	if !s.entities.isAlive(id) {
		return nil
	}
	p, ok := s.existingPool(compType)
	if !ok {
		return nil
	}
	return p.Get(int(id.Index()))
}

// HasComponent checks if an entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	if !s.entities.isAlive(id) {
		return false
	}
	p, ok := s.existingPool(compType)
	return ok && p.Has(int(id.Index()))
}

// ComponentTypes returns the component types attached to id, sorted by name.
func (s *Storage) ComponentTypes(id EntityId) []reflect.Type {
	if !s.entities.isAlive(id) {
		return nil
	}
	index := int(id.Index())
	types := make([]reflect.Type, 0, 4)
	for t, p := range s.pools {
		if p.Has(index) {
			types = append(types, t)
		}
	}
	sort.Sort(byTypeName(types))
	return types
}

// Entities iterates all live entities in ascending slot order.
func (s *Storage) Entities() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for index := range s.entities.generations {
			id, ok := s.entities.idAt(uint32(index))
			if !ok {
				continue
			}
			if !yield(id) {
				return
			}
		}
	}
}

// AddSingleton stores value as the singleton of its type, replacing the previous value
// in place so existing Singleton accessors stay valid.
func (s *Storage) AddSingleton(value any) {
	t := reflect.TypeOf(value)
	if entry, ok := s.singletons[t]; ok {
		entry.value.Elem().Set(reflect.ValueOf(value))
		return
	}

	ptr := reflect.New(t)
	ptr.Elem().Set(reflect.ValueOf(value))
	s.singletons[t] = &singletonEntry{
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	}
}

// RemoveSingleton drops the singleton of the given type.
func (s *Storage) RemoveSingleton(t reflect.Type) {
	delete(s.singletons, t)
}

// ReadSingleton points *target at the stored singleton. target must be a **T.
// Returns false when no singleton of type T exists.
func (s *Storage) ReadSingleton(target any) bool {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}
	entry := s.getSingletonEntry(rv.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	rv.Elem().Set(entry.value)
	return true
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

func componentTypeOf(comp any) reflect.Type {
	compType := reflect.TypeOf(comp)
	if compType == nil {
		panic("component cannot be nil")
	}

	// If it's a pointer, get the underlying type
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
	}

	// Components can be structs or primitives (int, string, etc.)
	// But not pointers, maps, channels, or functions (those aren't value types)
	if compType.Kind() == reflect.Ptr || compType.Kind() == reflect.Map ||
		compType.Kind() == reflect.Chan || compType.Kind() == reflect.Func {
		panic("components cannot be pointers, maps, channels, or functions")
	}
	return compType
}

// extractComponentTypes returns the component type of each value, in argument order
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		types = append(types, componentTypeOf(comp))
	}
	return types
}

type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the T attached to entityId, or nil.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	c, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return c
}
