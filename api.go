package foreman

// Entity is an opaque identity. It carries no data of its own; its only
// role is as a key into an App's component storage. Identities are
// monotonically increasing within one App and are never reused, so the zero
// value always means "no entity".
type Entity int

// Component is an arbitrary data value attached to an entity. Its kind is
// its dynamic Go type; an entity holds at most one component per kind.
type Component any

// Event is a typed value dispatched through the EventBus queue. Listeners
// subscribe to an event's exact dynamic type.
type Event any

// System is the unit of logic driven by an App. A system reads current
// state through the Query, queues mutations through Commands, and emits
// Events; queued commands and events are its only way to change the world.
type System func(cmd *Commands, q *Query, events *EventBus)

// SignalListener is a callback connected to a Signal.
type SignalListener func(args ...any)
