package game

import (
	"github.com/plus3/towerdefense/ecs"
)

// TransformPropagateSystem recomputes GlobalTransform for every entity from
// its own Transform and its parent's global matrix. It runs last so renderers
// see this tick's movement.
type TransformPropagateSystem struct {
	Roots ecs.Query[struct {
		ecs.EntityId
		*Transform
		*GlobalTransform
	}]
}

func (s *TransformPropagateSystem) Execute(frame *ecs.UpdateFrame) {
	storage := frame.Storage
	for e := range s.Roots.Iter() {
		if _, hasParent := storage.Parent(e.EntityId); hasParent {
			continue
		}
		*e.GlobalTransform = GlobalFromTransform(*e.Transform)
		propagate(storage, e.EntityId, *e.GlobalTransform)
	}
}

func propagate(storage *ecs.Storage, parent ecs.EntityId, parentGlobal GlobalTransform) {
	for _, child := range storage.Children(parent) {
		local := ecs.ReadComponent[Transform](storage, child)
		if local == nil {
			continue
		}
		global := parentGlobal.Mul(*local)
		if g := ecs.ReadComponent[GlobalTransform](storage, child); g != nil {
			*g = global
		}
		propagate(storage, child, global)
	}
}
