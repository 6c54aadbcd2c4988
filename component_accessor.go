package foreman

// AccessibleKind pairs a Kind with typed retrieval helpers so callers can
// skip the Component type assertion.
type AccessibleKind[T any] struct {
	Kind
}

// GetFrom fetches the entity's component of this kind, typed. ok is false
// when the entity has no record or lacks the kind.
func (k AccessibleKind[T]) GetFrom(q *Query, e Entity) (T, bool) {
	c, ok := q.Get(e, k.Kind)
	if !ok {
		var zero T
		return zero, false
	}
	return c.(T), true
}

// GetFromCursor fetches the component of this kind for the cursor's current
// entity.
func (k AccessibleKind[T]) GetFromCursor(q *Query, cursor *Cursor) (T, bool) {
	return k.GetFrom(q, cursor.Entity())
}

// Check reports whether the entity currently has this kind.
func (k AccessibleKind[T]) Check(q *Query, e Entity) bool {
	_, ok := q.Get(e, k.Kind)
	return ok
}
