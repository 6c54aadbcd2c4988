package foreman

import "github.com/TheBitDrifter/mask"

// record is the per-entity storage unit: the entity's components keyed by
// kind name, plus a mask of the present kinds for query tests.
type record struct {
	comps map[string]Component
	mask  mask.Mask
}

func newRecord() *record {
	return &record{comps: make(map[string]Component)}
}

func (r *record) set(bit uint32, k Kind, c Component) {
	r.comps[k.name] = c
	r.mask.Mark(bit)
}

func (r *record) remove(bit uint32, k Kind) {
	delete(r.comps, k.name)
	r.mask.Unmark(bit)
}
