package foreman

import "reflect"

// EventBus queues typed events for deferred FIFO dispatch. Emit never
// dispatches; Process drains the queue, including events appended while
// draining, before returning.
type EventBus struct {
	listeners map[reflect.Type][]func(Event)
	queue     []Event
}

func newEventBus() *EventBus {
	return &EventBus{listeners: make(map[reflect.Type][]func(Event))}
}

// Subscribe registers fn for events whose dynamic type is exactly T.
// Listeners for a type are dispatched in subscription order.
func Subscribe[T any](b *EventBus, fn func(T)) {
	t := reflect.TypeFor[T]()
	b.listeners[t] = append(b.listeners[t], func(ev Event) {
		fn(ev.(T))
	})
}

// Emit appends the event to the back of the queue. Dispatch happens during
// Process.
func (b *EventBus) Emit(event Event) {
	b.queue = append(b.queue, event)
}

// Process dispatches queued events strictly FIFO. Dispatch for an event
// completes, including any events its listeners emit, before the next event
// starts; newly emitted events join the back of the queue and are drained
// within the same call. A panicking listener propagates to the caller.
func (b *EventBus) Process() {
	for len(b.queue) > 0 {
		event := b.queue[0]
		b.queue = b.queue[1:]
		for _, listener := range b.listeners[reflect.TypeOf(event)] {
			listener(event)
		}
	}
}

// QueueLength reports the number of events awaiting dispatch.
func (b *EventBus) QueueLength() int {
	return len(b.queue)
}

// pendingKinds lists the dynamic type names of queued events for the debug
// decorator.
func (b *EventBus) pendingKinds() []string {
	kinds := make([]string, len(b.queue))
	for i, ev := range b.queue {
		kinds[i] = reflect.TypeOf(ev).String()
	}
	return kinds
}
