package sim

import "iter"

// DefaultCapacity is the initial slot count of a collection. It is a hint
// only; the collection grows past it.
const DefaultCapacity = 100

// Collection is an ordered set of live entities.
//
// Removal is scoped: Begin opens a pass, RemoveAt marks slots, End compacts
// every marked slot out at once. Indices do not shift while a pass is open,
// so a forward loop over 0..Len()-1 visits every entity exactly once no
// matter how many are removed along the way.
type Collection struct {
	items   []Entity
	marked  []bool
	inPass  bool
	pending int
}

// NewCollection creates an empty collection with the given capacity hint.
func NewCollection(capacity int) *Collection {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Collection{
		items:  make([]Entity, 0, capacity),
		marked: make([]bool, 0, capacity),
	}
}

// Add appends an entity.
func (c *Collection) Add(e Entity) {
	c.items = append(c.items, e)
	if c.inPass {
		c.marked = append(c.marked, false)
	}
}

// Len returns the number of slots. While a pass is open, marked slots are
// still counted until End.
func (c *Collection) Len() int {
	return len(c.items)
}

// At returns the entity in slot i.
func (c *Collection) At(i int) *Entity {
	return &c.items[i]
}

// ForEach calls fn for every live entity in insertion order.
// Slots marked in an open pass are skipped.
func (c *Collection) ForEach(fn func(e *Entity)) {
	for i := range c.items {
		if c.inPass && c.marked[i] {
			continue
		}
		fn(&c.items[i])
	}
}

// All returns a read-only view of the live entities in insertion order.
func (c *Collection) All() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for i, e := range c.items {
			if c.inPass && c.marked[i] {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Begin opens a removal pass. Passes do not nest.
func (c *Collection) Begin() {
	if c.inPass {
		panic("sim: removal pass already open")
	}
	c.inPass = true
	c.pending = 0
	c.marked = c.marked[:0]
	for range c.items {
		c.marked = append(c.marked, false)
	}
}

// RemoveAt marks slot i for removal at End. Marking a slot twice is a no-op.
func (c *Collection) RemoveAt(i int) {
	if !c.inPass {
		panic("sim: RemoveAt outside a removal pass")
	}
	if i < 0 || i >= len(c.items) {
		panic("sim: RemoveAt index out of range")
	}
	if c.marked[i] {
		return
	}
	c.marked[i] = true
	c.pending++
}

// End closes the pass and compacts marked slots out, keeping relative order.
func (c *Collection) End() {
	if !c.inPass {
		panic("sim: End without Begin")
	}
	if c.pending > 0 {
		kept := c.items[:0]
		for i, e := range c.items {
			if !c.marked[i] {
				kept = append(kept, e)
			}
		}
		c.items = kept
	}
	c.inPass = false
	c.pending = 0
}

// Clear removes every entity.
func (c *Collection) Clear() {
	if c.inPass {
		panic("sim: Clear during a removal pass")
	}
	c.items = c.items[:0]
}
