package foreman

// entityRegistry allocates identities and tracks the live set. Identities
// are strictly increasing and never reused within one registry, so a
// released Entity stays invalid forever.
type entityRegistry struct {
	nextID Entity
	live   map[Entity]struct{}
}

func newEntityRegistry() *entityRegistry {
	return &entityRegistry{
		nextID: 1,
		live:   make(map[Entity]struct{}),
	}
}

// allocate returns a fresh identity and records it live.
func (r *entityRegistry) allocate() Entity {
	e := r.nextID
	r.nextID++
	r.live[e] = struct{}{}
	return e
}

// release removes the entity from the live set. Releasing an entity that is
// not live returns EntityNotFoundError; an undetected double-release would
// silently corrupt iteration, so this is never a soft failure.
func (r *entityRegistry) release(e Entity) error {
	if _, ok := r.live[e]; !ok {
		return EntityNotFoundError{Entity: e}
	}
	delete(r.live, e)
	return nil
}

func (r *entityRegistry) alive(e Entity) bool {
	_, ok := r.live[e]
	return ok
}
