package ecs

import "iter"

// iComponentStorage is an interface for a type-erased component pool addressed by entity slot index.
type iComponentStorage interface {
	Set(index int, item any) bool
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Iter() iter.Seq[int]
}
