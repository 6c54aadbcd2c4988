package foreman

// storage is the component store: one record per entity, the sole source of
// truth for what data an entity has. Records iterate in the order they were
// first created. The store is registry-agnostic; Commands keeps the two
// consistent.
type storage struct {
	schema  *schema
	records map[Entity]*record
	order   []Entity
}

func newStorage(schema *schema) *storage {
	return &storage{
		schema:  schema,
		records: make(map[Entity]*record),
	}
}

// attach inserts or overwrites the component under its kind key, creating
// the entity's record if absent.
func (sto *storage) attach(e Entity, c Component) error {
	k := kindOf(c)
	bit, err := sto.schema.registerKind(k)
	if err != nil {
		return err
	}
	rec, ok := sto.records[e]
	if !ok {
		rec = newRecord()
		sto.records[e] = rec
		sto.order = append(sto.order, e)
	}
	rec.set(bit, k, c)
	return nil
}

// componentsOf returns the entity's components keyed by kind name. The map
// is the live record; callers must treat it as read-only.
func (sto *storage) componentsOf(e Entity) (map[string]Component, bool) {
	rec, ok := sto.records[e]
	if !ok {
		return nil, false
	}
	return rec.comps, true
}

func (sto *storage) hasRecord(e Entity) bool {
	_, ok := sto.records[e]
	return ok
}

// detachOne removes a single kind from the entity's record if present.
func (sto *storage) detachOne(e Entity, k Kind) {
	rec, ok := sto.records[e]
	if !ok {
		return
	}
	bit, ok := sto.schema.bitFor(k)
	if !ok {
		return
	}
	rec.remove(bit, k)
}

// detachAll deletes the entity's entire record if present.
func (sto *storage) detachAll(e Entity) {
	if _, ok := sto.records[e]; !ok {
		return
	}
	delete(sto.records, e)
	for i, other := range sto.order {
		if other == e {
			sto.order = append(sto.order[:i], sto.order[i+1:]...)
			break
		}
	}
}
