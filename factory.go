package foreman

type factory struct{}

var Factory factory

// NewApp builds an App with its own registry, storage, buses, command
// buffer, and query engine.
func (f factory) NewApp(opts ...Option) *App {
	return newApp(opts...)
}

// NewCursor returns a cursor over the entities matching all given kinds.
func (f factory) NewCursor(q *Query, kinds ...Kind) *Cursor {
	return newCursor(q, kinds...)
}

// FactoryNewKind resolves the kind for component type T along with typed
// retrieval helpers.
func FactoryNewKind[T any]() AccessibleKind[T] {
	return AccessibleKind[T]{Kind: KindOf[T]()}
}

func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
