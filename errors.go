package foreman

import "fmt"

// EntityNotFoundError reports a despawn of an entity the registry does not
// know as live. It indicates a caller bug (double-despawn or a stale
// reference reused), so it is surfaced rather than swallowed.
type EntityNotFoundError struct {
	Entity Entity
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %d is not live", e.Entity)
}

// KindCapacityError reports that an App has registered more distinct
// component kinds than its query masks can represent.
type KindCapacityError struct {
	Capacity int
}

func (e KindCapacityError) Error() string {
	return fmt.Sprintf("component kind registry at maximum capacity (%d)", e.Capacity)
}
