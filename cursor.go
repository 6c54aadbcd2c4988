package foreman

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

// Cursor walks the entities matching a set of required kinds without
// building the full match slice up front.
type Cursor struct {
	query *Query
	kinds []Kind

	// Current iteration state
	required  mask.Mask
	matchable bool
	index     int
	current   Entity

	initialized bool
}

func newCursor(q *Query, kinds ...Kind) *Cursor {
	return &Cursor{
		query: q,
		kinds: kinds,
	}
}

// Next advances to the next matching entity, reporting whether one exists.
func (c *Cursor) Next() bool {
	c.initialize()
	if !c.matchable {
		return false
	}
	sto := c.query.sto
	for c.index < len(sto.order) {
		e := sto.order[c.index]
		c.index++
		if sto.records[e].mask.ContainsAll(c.required) {
			c.current = e
			return true
		}
	}
	return false
}

// Entity returns the entity at the cursor position.
func (c *Cursor) Entity() Entity {
	return c.current
}

// Entities is the range-over form of the cursor.
func (c *Cursor) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for c.Next() {
			if !yield(c.current) {
				c.Reset()
				return
			}
		}
		c.Reset()
	}
}

func (c *Cursor) initialize() {
	if c.initialized {
		return
	}
	c.required, c.matchable = c.query.requiredMask(c.kinds)
	c.initialized = true
}

func (c *Cursor) Reset() {
	c.index = 0
	c.current = 0
	c.initialized = false
}
