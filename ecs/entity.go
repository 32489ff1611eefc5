package ecs

// EntityId encodes both the slot generation (upper 32 bits) and the slot index (lower 32 bits).
// Generations start at 1, so the zero EntityId never refers to a live entity.
type EntityId uint64

// NewEntityId creates an EntityId from a slot index and generation
func NewEntityId(index uint32, generation uint32) EntityId {
	return EntityId(uint64(generation)<<32 | uint64(index))
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & 0xFFFFFFFF)
}

// Generation extracts the slot generation from the entity ID
func (e EntityId) Generation() uint32 {
	return uint32(e >> 32)
}

// entityArena hands out slot indices and tracks which generation currently owns each slot.
type entityArena struct {
	generations []uint32
	alive       []bool
	freeSlots   []uint32
	count       int
}

func (a *entityArena) allocate() EntityId {
	var index uint32
	if n := len(a.freeSlots); n > 0 {
		index = a.freeSlots[n-1]
		a.freeSlots = a.freeSlots[:n-1]
		a.generations[index]++
		if a.generations[index] == 0 {
			a.generations[index] = 1
		}
	} else {
		index = uint32(len(a.generations))
		a.generations = append(a.generations, 1)
		a.alive = append(a.alive, false)
	}
	a.alive[index] = true
	a.count++
	return NewEntityId(index, a.generations[index])
}

func (a *entityArena) release(id EntityId) bool {
	if !a.isAlive(id) {
		return false
	}
	index := id.Index()
	a.alive[index] = false
	a.freeSlots = append(a.freeSlots, index)
	a.count--
	return true
}

func (a *entityArena) isAlive(id EntityId) bool {
	index := id.Index()
	if id == 0 || int(index) >= len(a.generations) {
		return false
	}
	return a.alive[index] && a.generations[index] == id.Generation()
}

// idAt returns the live id occupying slot index, if any
func (a *entityArena) idAt(index uint32) (EntityId, bool) {
	if int(index) >= len(a.generations) || !a.alive[index] {
		return 0, false
	}
	return NewEntityId(index, a.generations[index]), true
}
