package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

var entityIdType = reflect.TypeFor[EntityId]()

// View represents a query for entities with a specific combination of components
// The type T should be a struct with embedded pointer fields for each component type
// Named fields can be marked as optional using the `ecs:"optional"` struct tag
// A field of type EntityId (embedded or named) receives the id of the matched entity
type View[T any] struct {
	storage     *Storage
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr

	idOffset uintptr
	hasId    bool
}

// NewView creates a new view for the given struct type
// The struct T should have embedded or named fields that are pointers to component types
// Embedded fields are always required
// Named fields can be marked as optional using the `ecs:"optional"` struct tag
func NewView[T any](storage *Storage) *View[T] {
	var zero T
	structType := reflect.TypeOf(zero)

	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{
		storage:     storage,
		types:       make([]reflect.Type, 0, structType.NumField()),
		optional:    make([]bool, 0, structType.NumField()),
		fieldOffset: make([]uintptr, 0, structType.NumField()),
	}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldType := field.Type

		if fieldType == entityIdType {
			if v.hasId {
				panic("View struct may contain only one EntityId field")
			}
			v.idOffset = field.Offset
			v.hasId = true
			continue
		}

		if fieldType.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		componentType := fieldType.Elem()
		if storage != nil && !storage.registry.IsRegistered(componentType) {
			panic("component type " + componentType.String() + " not registered")
		}

		// Embedded fields (field.Anonymous) are always required
		isOptional := false
		if !field.Anonymous {
			tag := field.Tag.Get("ecs")
			if tag != "" {
				if tag == "optional" {
					isOptional = true
				} else {
					panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
				}
			}
		}

		v.types = append(v.types, componentType)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
		v.optional = append(v.optional, isOptional)
	}

	return v
}

// Fill populates the provided struct pointer with component data for the given entity
// Returns false if the entity is dead or missing any required components
// Optional components are set to nil if not present
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	if !v.storage.IsAlive(id) {
		return false
	}
	return v.populateResult(unsafe.Pointer(ptr), id)
}

// Get returns a populated view struct for the given entity, or nil if the entity
// doesn't have all the required components
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

func (v *View[T]) populateResult(resultPtr unsafe.Pointer, id EntityId) bool {
	index := int(id.Index())

	for i, componentType := range v.types {
		fieldPtr := unsafe.Pointer(uintptr(resultPtr) + v.fieldOffset[i])

		var component any
		if p, ok := v.storage.existingPool(componentType); ok {
			component = p.Get(index)
		}

		if component == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(fieldPtr) = nil
			continue
		}

		// Extract the data pointer from the interface{} holding *Component
		componentPtr := (*iface)(unsafe.Pointer(&component)).data
		*(*unsafe.Pointer)(fieldPtr) = componentPtr
	}

	if v.hasId {
		*(*EntityId)(unsafe.Pointer(uintptr(resultPtr) + v.idOffset)) = id
	}
	return true
}

// driver picks the smallest required pool to iterate. ok is false when a required
// component has never been stored, meaning nothing can match.
func (v *View[T]) driver() (pool iComponentStorage, ok bool) {
	for i, t := range v.types {
		if v.optional[i] {
			continue
		}
		p, exists := v.storage.existingPool(t)
		if !exists {
			return nil, false
		}
		if pool == nil || p.Len() < pool.Len() {
			pool = p
		}
	}
	return pool, true
}

// candidates yields the slot indices worth checking, ascending.
func (v *View[T]) candidates() iter.Seq[int] {
	return func(yield func(int) bool) {
		pool, ok := v.driver()
		if !ok {
			return
		}
		if pool != nil {
			for index := range pool.Iter() {
				if !yield(index) {
					return
				}
			}
			return
		}
		for id := range v.storage.Entities() {
			if !yield(int(id.Index())) {
				return
			}
		}
	}
}

// Entries returns an iterator over all entities that have all the required components for this view
// The iterator yields (EntityId, T) pairs in ascending slot order
// Optional components are set to nil if not present
func (v *View[T]) Entries() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		var result T
		resultPtr := unsafe.Pointer(&result)

		for index := range v.candidates() {
			id, alive := v.storage.entities.idAt(uint32(index))
			if !alive {
				continue
			}
			if !v.populateResult(resultPtr, id) {
				continue
			}
			if !yield(id, result) {
				return
			}
		}
	}
}

// Iter returns an iterator over just the view structs. Add an EntityId field to
// the view struct to see which entity each value belongs to.
func (v *View[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, value := range v.Entries() {
			if !yield(value) {
				return
			}
		}
	}
}

// Count returns the number of matching entities.
func (v *View[T]) Count() int {
	n := 0
	for range v.Entries() {
		n++
	}
	return n
}

// Spawn creates a new entity with components extracted from the view struct
// nil optional fields are skipped; a nil required field panics
func (v *View[T]) Spawn(data T) EntityId {
	structPtr := unsafe.Pointer(&data)

	components := make([]any, 0, len(v.types))
	for i, componentType := range v.types {
		componentPtr := *(*unsafe.Pointer)(unsafe.Pointer(uintptr(structPtr) + v.fieldOffset[i]))
		if componentPtr == nil {
			if !v.optional[i] {
				panic("required component is nil in View.Spawn")
			}
			continue
		}
		components = append(components, reflect.NewAt(componentType, componentPtr).Elem().Interface())
	}

	return v.storage.Spawn(components...)
}
