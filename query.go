package foreman

import "github.com/TheBitDrifter/mask"

// Query provides read-only views over an App's component storage. Every
// read observes exactly the state left by the most recent command apply;
// lookups fail soft rather than erroring.
type Query struct {
	sto *storage
}

func newQuery(sto *storage) *Query {
	return &Query{sto: sto}
}

// Filter returns every entity whose component kinds are a superset of the
// requested kinds, in the order their records were first created. With no
// kinds it returns every entity currently in storage.
func (q *Query) Filter(kinds ...Kind) []Entity {
	required, matchable := q.requiredMask(kinds)
	if !matchable {
		return nil
	}
	matched := make([]Entity, 0, len(q.sto.order))
	for _, e := range q.sto.order {
		if q.sto.records[e].mask.ContainsAll(required) {
			matched = append(matched, e)
		}
	}
	return matched
}

// Get fetches one component. ok is false when the entity has no record or
// lacks the kind.
func (q *Query) Get(e Entity, k Kind) (Component, bool) {
	rec, ok := q.sto.records[e]
	if !ok {
		return nil, false
	}
	c, ok := rec.comps[k.name]
	return c, ok
}

// GetAll fetches the requested kinds positionally: result[i] holds the
// component for kinds[i], or nil when the entity lacks that kind. ok is
// false when the entity has no record at all.
func (q *Query) GetAll(e Entity, kinds ...Kind) ([]Component, bool) {
	rec, ok := q.sto.records[e]
	if !ok {
		return nil, false
	}
	out := make([]Component, len(kinds))
	for i, k := range kinds {
		if c, present := rec.comps[k.name]; present {
			out[i] = c
		}
	}
	return out, true
}

// requiredMask builds the mask covering the requested kinds. matchable is
// false when a kind was never attached anywhere, in which case no entity
// can satisfy the filter.
func (q *Query) requiredMask(kinds []Kind) (mask.Mask, bool) {
	var required mask.Mask
	for _, k := range kinds {
		bit, ok := q.sto.schema.bitFor(k)
		if !ok {
			return required, false
		}
		required.Mark(bit)
	}
	return required, true
}
