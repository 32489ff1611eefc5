package ecs

// SetParent makes child a child of parent, detaching it from any previous parent.
// Returns false if either entity is dead, they are the same entity, or the link
// would create a cycle.
func (s *Storage) SetParent(child, parent EntityId) bool {
	if child == parent || !s.entities.isAlive(child) || !s.entities.isAlive(parent) {
		return false
	}
	for ancestor, ok := parent, true; ok; ancestor, ok = s.parents.Get(ancestor) {
		if ancestor == child {
			return false
		}
	}

	s.detach(child)
	s.parents.Put(child, parent)
	kids, _ := s.children.Get(parent)
	s.children.Put(parent, append(kids, child))
	return true
}

// RemoveParent turns child back into a root entity.
func (s *Storage) RemoveParent(child EntityId) {
	s.detach(child)
}

// Parent returns the parent of id, if it has one.
func (s *Storage) Parent(id EntityId) (EntityId, bool) {
	return s.parents.Get(id)
}

// Children returns a copy of the direct children of id in insertion order.
func (s *Storage) Children(id EntityId) []EntityId {
	kids, ok := s.children.Get(id)
	if !ok {
		return nil
	}
	out := make([]EntityId, len(kids))
	copy(out, kids)
	return out
}

// Descendants returns every entity below id in pre-order, depth first: each
// child is followed by its whole subtree before the next sibling.
func (s *Storage) Descendants(id EntityId) []EntityId {
	var out []EntityId
	stack := s.Children(id)
	for len(stack) > 0 {
		next := stack[0]
		stack = stack[1:]
		out = append(out, next)
		stack = append(s.Children(next), stack...)
	}
	return out
}

func (s *Storage) detach(child EntityId) {
	parent, ok := s.parents.Get(child)
	if !ok {
		return
	}
	s.parents.Del(child)

	kids, _ := s.children.Get(parent)
	for i, k := range kids {
		if k == child {
			kids = append(kids[:i], kids[i+1:]...)
			break
		}
	}
	if len(kids) == 0 {
		s.children.Del(parent)
	} else {
		s.children.Put(parent, kids)
	}
}
